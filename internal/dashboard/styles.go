package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/nexus/internal/sim"
)

// Palette. The accent cyan, alert pink and healthy green come from the
// NEXUS brand colors; the rest are dark neutrals that let them stand out.
const (
	ColorDarkBg    = lipgloss.Color("#05070D")
	ColorSurfaceBg = lipgloss.Color("#0C1220")
	ColorBorder    = lipgloss.Color("#1E2A44")

	ColorHealthy  = lipgloss.Color("#00FF64")
	ColorWarning  = lipgloss.Color("#FFC400")
	ColorCritical = lipgloss.Color("#FF0055")

	ColorTextPrimary   = lipgloss.Color("#E8F6FF")
	ColorTextSecondary = lipgloss.Color("#8FA3BF")
	ColorTextMuted     = lipgloss.Color("#4A5A78")

	ColorAccent    = lipgloss.Color("#00F3FF")
	ColorAccentDim = lipgloss.Color("#0090A8")

	ColorInbound  = ColorAccent
	ColorOutbound = lipgloss.Color("#B45CFF")
)

func fg(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

var (
	HeaderStyle = fg(ColorTextPrimary).Background(ColorSurfaceBg).Bold(true).Padding(0, 1)
	FooterStyle = fg(ColorTextMuted).Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1)
	// CardAlertStyle is CardStyle with a critical border.
	CardAlertStyle = CardStyle.BorderForeground(ColorCritical)

	LabelStyle = fg(ColorTextSecondary)
	ValueStyle = fg(ColorTextPrimary).Bold(true)
	MutedStyle = fg(ColorTextMuted)

	MenuItemStyle     = fg(ColorTextSecondary).Padding(0, 1)
	MenuSelectedStyle = fg(ColorDarkBg).Background(ColorAccent).Bold(true).Padding(0, 1)

	LiveStyle   = fg(ColorHealthy).Bold(true)
	PausedStyle = fg(ColorWarning).Bold(true)

	PopupStyle = fg(ColorTextPrimary).
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorCritical).
			Background(ColorSurfaceBg).
			Padding(0, 2)

	sectionBorderStyle = fg(ColorBorder)
	sectionTitleStyle  = fg(ColorAccent).Bold(true)
	sectionValueStyle  = fg(ColorInbound).Bold(true)
)

// Status indicator characters
const (
	StatusOnline  = "◉"
	StatusWarning = "◔"
	StatusOffline = "◌"
	TrendUp       = "▲"
	TrendDown     = "▼"
)

// StatusColor returns the color for a server status name.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case sim.ServerOnline.String():
		return ColorHealthy
	case sim.ServerWarning.String():
		return ColorWarning
	default:
		return ColorCritical
	}
}

// StatusGlyph returns the indicator character for a server status name.
func StatusGlyph(status string) string {
	switch status {
	case sim.ServerOnline.String():
		return StatusOnline
	case sim.ServerWarning.String():
		return StatusWarning
	default:
		return StatusOffline
	}
}

// SeverityColor returns the color for a log severity.
func SeverityColor(s sim.Severity) lipgloss.Color {
	switch s {
	case sim.SeverityError:
		return ColorCritical
	case sim.SeverityWarning:
		return ColorWarning
	default:
		return ColorInbound
	}
}

// BarColor returns the fill color for a metric bar.
func BarColor(b sim.Bar) lipgloss.Color {
	if b.Alert {
		return ColorCritical
	}
	return ColorInbound
}

// ProgressBar renders a static bar of the given width filled to percent
// (0-100) using the bubbles progress component.
func ProgressBar(width int, percent float64, color lipgloss.Color) string {
	if width < 1 {
		width = 1
	}
	p := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	p.EmptyColor = string(ColorBorder)
	return p.ViewAs(min(1, max(0, percent/100)))
}

// TrendLabel renders a trend arrow and percentage colored by direction.
func TrendLabel(t sim.TrendView) string {
	if t.Direction == sim.DirectionDown {
		return lipgloss.NewStyle().Foreground(ColorCritical).Render(TrendDown + " " + t.Text)
	}
	return lipgloss.NewStyle().Foreground(ColorHealthy).Render(TrendUp + " " + t.Text)
}

// SectionHeader renders the top edge of a section box, with the title
// on the left and value on the right:
//
//	╭─ Servers ─────────────── 5/6 up ╮
func SectionHeader(title, value string, width int) string {
	width = max(width, 10)
	fill := width - lipgloss.Width(title) - lipgloss.Width(value) - 7
	return sectionBorderStyle.Render("╭─ ") +
		sectionTitleStyle.Render(title) +
		sectionBorderStyle.Render(" "+strings.Repeat("─", max(fill, 1))+" ") +
		sectionValueStyle.Render(value) +
		sectionBorderStyle.Render(" ╮")
}

// SectionContentLine renders one boxed row. Content wider than the box
// is truncated so the right edge stays aligned.
func SectionContentLine(content string, width int) string {
	inner := max(width, 4) - 4
	if lipgloss.Width(content) > inner {
		content = lipgloss.NewStyle().MaxWidth(inner).Render(content)
	}
	edge := sectionBorderStyle.Render("│")
	return edge + " " + content + strings.Repeat(" ", inner-lipgloss.Width(content)) + " " + edge
}

func sectionBottom(width int) string {
	return sectionBorderStyle.Render("╰" + strings.Repeat("─", max(width, 2)-2) + "╯")
}

// Section wraps lines in a titled box of the given width.
func Section(title, value string, lines []string, width int) string {
	out := make([]string, 0, len(lines)+2)
	out = append(out, SectionHeader(title, value, width))
	for _, l := range lines {
		out = append(out, SectionContentLine(l, width))
	}
	return strings.Join(append(out, sectionBottom(width)), "\n")
}
