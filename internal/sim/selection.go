package sim

import "strings"

// TimeRange is the chart range tab. It is cosmetic: the tick never reads it.
type TimeRange int

const (
	Range1H TimeRange = iota
	Range24H
	Range7D
)

var timeRangeNames = []string{"1H", "24H", "7D"}

// TimeRanges lists every tab in display order.
func TimeRanges() []TimeRange {
	return []TimeRange{Range1H, Range24H, Range7D}
}

// String returns the tab label.
func (r TimeRange) String() string {
	if r < 0 || int(r) >= len(timeRangeNames) {
		return timeRangeNames[0]
	}
	return timeRangeNames[r]
}

// ParseTimeRange accepts a tab label, case-insensitively.
func ParseTimeRange(s string) (TimeRange, bool) {
	for i, name := range timeRangeNames {
		if strings.EqualFold(s, name) {
			return TimeRange(i), true
		}
	}
	return Range1H, false
}

// MenuItem is the selected navigation entry. Also cosmetic.
type MenuItem int

const (
	MenuDashboard MenuItem = iota
	MenuAnalytics
	MenuServers
	MenuLogs
	MenuSettings
)

var menuNames = []string{"Dashboard", "Analytics", "Servers", "Logs", "Settings"}

// MenuItems lists every navigation entry in display order.
func MenuItems() []MenuItem {
	return []MenuItem{MenuDashboard, MenuAnalytics, MenuServers, MenuLogs, MenuSettings}
}

// String returns the menu label.
func (m MenuItem) String() string {
	if m < 0 || int(m) >= len(menuNames) {
		return menuNames[0]
	}
	return menuNames[m]
}

// Next returns the following entry, wrapping around.
func (m MenuItem) Next() MenuItem {
	return MenuItem((int(m) + 1) % len(menuNames))
}

// Prev returns the preceding entry, wrapping around.
func (m MenuItem) Prev() MenuItem {
	return MenuItem((int(m) - 1 + len(menuNames)) % len(menuNames))
}

// ParseMenuItem accepts a menu label, case-insensitively.
func ParseMenuItem(s string) (MenuItem, bool) {
	for i, name := range menuNames {
		if strings.EqualFold(s, name) {
			return MenuItem(i), true
		}
	}
	return MenuDashboard, false
}
