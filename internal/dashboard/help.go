package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpGroup is one titled block of key bindings in the help overlay.
type helpGroup struct {
	title    string
	bindings [][2]string // key label, description
}

// helpGroups mirror HandleKeyMsg.
var helpGroups = []helpGroup{
	{
		title: "Simulation",
		bindings: [][2]string{
			{keyLabel(KeyPause, KeyPauseAlt), "Pause or resume"},
			{keyLabel(KeyDismiss, KeyDismissAlt), "Dismiss alert"},
		},
	},
	{
		title: "View",
		bindings: [][2]string{
			{keyLabel(KeyRange1H, KeyRange24H, KeyRange7D), "Time range 1H / 24H / 7D"},
			{keyLabel(KeyMenuNext), "Next menu item"},
			{keyLabel(KeyMenuPrev), "Previous menu item"},
		},
	},
	{
		title: "General",
		bindings: [][2]string{
			{keyLabel(KeyToggleHelp), "Toggle this help"},
			{keyLabel(KeyClose), "Close help"},
			{keyLabel(KeyQuit, KeyQuitAlt), "Quit"},
		},
	},
}

// keyLabel turns key names into display text, e.g. "space / p".
func keyLabel(keys ...string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, " / ")
}

var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Background(ColorSurfaceBg).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	helpGroupStyle = lipgloss.NewStyle().
			Foreground(ColorAccentDim).
			Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)
)

// helpKeyWidth is the widest key label plus a gap.
func helpKeyWidth() int {
	w := 0
	for _, g := range helpGroups {
		for _, b := range g.bindings {
			w = max(w, lipgloss.Width(b[0]))
		}
	}
	return w + 3
}

// renderHelpOverlay renders the key bindings and the current simulation
// status in a box centered on the screen.
func (m Model) renderHelpOverlay() string {
	f := m.Frame()
	keyStyle := helpKeyStyle.Width(helpKeyWidth())

	lines := []string{helpTitleStyle.Render("Keyboard Shortcuts"), ""}
	for i, g := range helpGroups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, helpGroupStyle.Render(g.title))
		for _, b := range g.bindings {
			lines = append(lines, "  "+keyStyle.Render(b[0])+helpDescStyle.Render(b[1]))
		}
	}

	lines = append(lines, "",
		LabelStyle.Render(fmt.Sprintf("Now: %s · %s · %s", f.Status, f.TimeRange, f.Menu)),
		LabelStyle.Render("Press ? to close"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBoxStyle.Render(strings.Join(lines, "\n")),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorDarkBg),
	)
}
