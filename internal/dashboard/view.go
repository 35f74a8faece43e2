package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/nexus/internal/sim"
)

const (
	defaultWidth    = 120
	statCardWidth   = 22
	serverCardWidth = 26
	chartRows       = 3
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	f := m.Frame()
	width := m.contentWidth()

	if m.Layout() == LayoutMinimal {
		return m.renderMinimal(f, width)
	}

	sections := []string{
		m.renderHeader(f, width),
		renderMenu(f),
	}
	if f.Alert.Visible {
		sections = append(sections, renderPopup(f.Alert, width))
	}
	sections = append(sections, m.renderStatCards(f, width))

	showChart := m.height == 0 || m.height >= HeightMinimal
	switch m.Layout() {
	case LayoutCompact:
		if showChart {
			sections = append(sections, renderTraffic(f, width))
		}
		sections = append(sections,
			renderHealth(f, width),
			m.renderServers(f, width),
			renderLogs(f, width),
		)

	case LayoutStandard:
		chartWidth := width * 2 / 3
		row := renderHealth(f, width-chartWidth)
		if showChart {
			row = lipgloss.JoinHorizontal(lipgloss.Top, renderTraffic(f, chartWidth), row)
		}
		sections = append(sections, row, m.renderServers(f, width), renderLogs(f, width))

	case LayoutWide:
		chartWidth := width * 2 / 3
		row := renderHealth(f, width-chartWidth)
		if showChart {
			row = lipgloss.JoinHorizontal(lipgloss.Top, renderTraffic(f, chartWidth), row)
		}
		half := width / 2
		bottom := lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderServers(f, half),
			renderLogs(f, width-half),
		)
		sections = append(sections, row, bottom)
	}

	sections = append(sections, renderFooter())
	return strings.Join(sections, "\n")
}

func (m Model) contentWidth() int {
	if m.width == 0 {
		return defaultWidth
	}
	return m.width
}

// renderHeader renders the title bar with live status, clocks and the time
// range selector.
func (m Model) renderHeader(f sim.Frame, width int) string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("◉ NEXUS")
	subtitle := LabelStyle.Render(" Operations Dashboard")

	status := LiveStyle.Render("● " + f.Status)
	if !f.Live {
		status = PausedStyle.Render("❚❚ " + f.Status)
	}

	right := strings.Join([]string{
		status,
		LabelStyle.Render("updated ") + ValueStyle.Render(f.LastUpdate),
		LabelStyle.Render("uptime ") + ValueStyle.Render(f.Uptime),
		renderTimeRange(f.TimeRange),
	}, MutedStyle.Render(" │ "))

	left := title + subtitle
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		left = title
		gap = max(1, width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	}
	return HeaderStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// renderTimeRange renders the range selector with the current choice lit.
func renderTimeRange(selected string) string {
	var parts []string
	for _, r := range sim.TimeRanges() {
		if r.String() == selected {
			parts = append(parts, MenuSelectedStyle.Render(r.String()))
		} else {
			parts = append(parts, MenuItemStyle.Render(r.String()))
		}
	}
	return strings.Join(parts, "")
}

// renderMenu renders the navigation bar.
func renderMenu(f sim.Frame) string {
	var parts []string
	for _, item := range sim.MenuItems() {
		if item.String() == f.Menu {
			parts = append(parts, MenuSelectedStyle.Render(item.String()))
		} else {
			parts = append(parts, MenuItemStyle.Render(item.String()))
		}
	}
	return strings.Join(parts, " ")
}

// renderPopup renders the alert box aligned to the right edge.
func renderPopup(a sim.AlertView, width int) string {
	title := lipgloss.NewStyle().Foreground(ColorCritical).Bold(true).Render("⚠ ALERT")
	body := title + "\n" + a.Message + "\n" + MutedStyle.Render("d to dismiss")
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, PopupStyle.Render(body))
}

// statCard renders one headline metric.
func statCard(label, value, detail string, alert bool) string {
	style := CardStyle
	if alert {
		style = CardAlertStyle
	}
	content := LabelStyle.Render(label) + "\n" +
		ValueStyle.Render(value) + "\n" +
		detail
	return style.Width(statCardWidth).Render(content)
}

func (m Model) renderStatCards(f sim.Frame, width int) string {
	barWidth := statCardWidth - 2
	cards := []string{
		statCard("Active Users", f.Users, TrendLabel(f.UsersTrend), false),
		statCard("Bandwidth", f.Bandwidth, TrendLabel(f.BandwidthTrend), false),
		statCard("CPU Usage", f.CPU, ProgressBar(barWidth, f.CPUBar.Percent, BarColor(f.CPUBar)), f.CPUBar.Alert),
		statCard("Memory", f.Memory, ProgressBar(barWidth, f.MemoryBar.Percent, BarColor(f.MemoryBar)), f.MemoryBar.Alert),
		statCard("Disk I/O", f.DiskIO, TrendLabel(f.DiskTrend), false),
		statCard("Alerts", f.Alerts, MutedStyle.Render("active"), f.Raw.Alerts > 0),
	}
	return layoutCards(cards, statCardWidth, width)
}

// layoutCards arranges cards in rows based on terminal width.
func layoutCards(cards []string, cardWidth, width int) string {
	if len(cards) == 0 {
		return ""
	}

	// Account for card margins and borders
	effectiveCardWidth := cardWidth + 3
	cardsPerRow := width / effectiveCardWidth
	if cardsPerRow < 1 {
		cardsPerRow = 1
	}

	var rows []string
	for i := 0; i < len(cards); i += cardsPerRow {
		end := i + cardsPerRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderTraffic renders the inbound and outbound braille charts on a shared
// scale.
func renderTraffic(f sim.Frame, width int) string {
	inner := width - 4
	ceiling := chartCeiling(f.Inbound, f.Outbound)

	var lines []string
	series := []struct {
		name  string
		data  []float64
		color lipgloss.Color
	}{
		{"Inbound", f.Inbound, ColorInbound},
		{"Outbound", f.Outbound, ColorOutbound},
	}
	for _, s := range series {
		last := 0.0
		if len(s.data) > 0 {
			last = s.data[len(s.data)-1]
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(s.color).Render("■ ")+
			LabelStyle.Render(s.name)+" "+ValueStyle.Render(fmt.Sprintf("%.1f", last)))
		lines = append(lines, RenderTrafficChart(s.data, inner, chartRows, ceiling, s.color)...)
	}
	if n := len(f.Labels); n > 0 {
		first, last := f.Labels[0], f.Labels[n-1]
		gap := inner - len(first) - len(last)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, MutedStyle.Render(first+strings.Repeat(" ", gap)+last))
	}

	return Section("Network Traffic", f.TimeRange, lines, width)
}

// renderHealth renders the health gauge.
func renderHealth(f sim.Frame, width int) string {
	inner := width - 4
	color := ColorHealthy
	if f.Gauge[1] > 0 {
		color = ColorWarning
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(f.HealthText) + LabelStyle.Render(" healthy"),
		ProgressBar(inner, f.Gauge[0], color),
		"",
		LabelStyle.Render("Issues   ") + ValueStyle.Render(fmt.Sprintf("%.0f%%", f.Gauge[1])),
		LabelStyle.Render("Alerts   ") + ValueStyle.Render(f.Alerts),
		LabelStyle.Render("CPU      ") + thresholdState(f.CPUBar),
		LabelStyle.Render("Memory   ") + thresholdState(f.MemoryBar),
	}
	return Section("System Health", "", lines, width)
}

func thresholdState(b sim.Bar) string {
	if b.Alert {
		return lipgloss.NewStyle().Foreground(ColorCritical).Render("high")
	}
	return lipgloss.NewStyle().Foreground(ColorHealthy).Render("ok")
}

// serverCard renders one server with its load bar.
func serverCard(s sim.ServerCard) string {
	color := StatusColor(s.Status)
	head := lipgloss.NewStyle().Foreground(color).Render(StatusGlyph(s.Status)) + " " +
		ValueStyle.Render(s.ID) + " " + LabelStyle.Render(s.Name)
	foot := ValueStyle.Render(fmt.Sprintf("%-5s", s.LoadText)) +
		lipgloss.NewStyle().Foreground(color).Render(s.Status)
	content := head + "\n" +
		ProgressBar(serverCardWidth-2, float64(s.Load), color) + "\n" +
		foot
	return CardStyle.Width(serverCardWidth).Render(content)
}

func (m Model) renderServers(f sim.Frame, width int) string {
	cards := make([]string, len(f.Servers))
	online := 0
	for i, s := range f.Servers {
		cards[i] = serverCard(s)
		if s.Status != sim.ServerOffline.String() {
			online++
		}
	}
	title := SectionHeader("Servers", fmt.Sprintf("%d/%d up", online, len(f.Servers)), width)
	return title + "\n" + layoutCards(cards, serverCardWidth, width)
}

// renderLogs renders the activity feed, newest first.
func renderLogs(f sim.Frame, width int) string {
	var lines []string
	if len(f.Logs) == 0 {
		lines = append(lines, MutedStyle.Render("waiting for activity"))
	}
	for _, e := range f.Logs {
		sev := lipgloss.NewStyle().Foreground(SeverityColor(e.Severity)).Bold(true).Render(fmt.Sprintf("%-7s", e.Severity.Label()))
		lines = append(lines, MutedStyle.Render(e.Time)+" "+sev+" "+e.Message)
	}
	return Section("Activity Log", f.LogCount, lines, width)
}

// renderMinimal renders a flat text layout for narrow terminals.
func (m Model) renderMinimal(f sim.Frame, width int) string {
	status := LiveStyle.Render(f.Status)
	if !f.Live {
		status = PausedStyle.Render(f.Status)
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Render("NEXUS") + " " + status + " " + MutedStyle.Render(f.Uptime),
	}
	if f.Alert.Visible {
		lines = append(lines, lipgloss.NewStyle().Foreground(ColorCritical).Bold(true).Render("⚠ "+f.Alert.Message))
	}
	lines = append(lines,
		LabelStyle.Render("users ")+ValueStyle.Render(f.Users)+" "+TrendLabel(f.UsersTrend),
		LabelStyle.Render("bw    ")+ValueStyle.Render(f.Bandwidth),
		LabelStyle.Render("cpu   ")+ValueStyle.Render(f.CPU)+"  "+LabelStyle.Render("mem ")+ValueStyle.Render(f.Memory),
		LabelStyle.Render("disk  ")+ValueStyle.Render(f.DiskIO),
		LabelStyle.Render("health ")+ValueStyle.Render(f.HealthText)+"  "+LabelStyle.Render("alerts ")+ValueStyle.Render(f.Alerts),
	)
	for _, s := range f.Servers {
		lines = append(lines, lipgloss.NewStyle().Foreground(StatusColor(s.Status)).Render(StatusGlyph(s.Status))+" "+s.ID+" "+s.LoadText)
	}
	lines = append(lines, MutedStyle.Render("q quit  space pause  ? help"))

	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(lines, "\n"))
}

// renderFooter renders the keyboard help footer.
func renderFooter() string {
	hints := []string{
		"q quit",
		"space pause",
		"d dismiss",
		"1/2/3 range",
		"tab menu",
		"? help",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}
