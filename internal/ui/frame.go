package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/nexus/internal/sim"
)

const (
	barWidth       = 20
	sparklineWidth = sim.SeriesLength
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)
	labelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
)

// TrendText renders a trend as "▲ +1.2%" colored by direction.
func TrendText(t sim.TrendView) string {
	if t.Direction == sim.DirectionDown {
		return lipgloss.NewStyle().Foreground(ColorError).Render(SymbolDown + " " + t.Text)
	}
	return lipgloss.NewStyle().Foreground(ColorSuccess).Render(SymbolUp + " " + t.Text)
}

// StatusSymbol returns the colored indicator for a server status name.
func StatusSymbol(status string) string {
	switch status {
	case sim.ServerOnline.String():
		return lipgloss.NewStyle().Foreground(ColorSuccess).Render(SymbolOnline)
	case sim.ServerWarning.String():
		return lipgloss.NewStyle().Foreground(ColorWarning).Render(SymbolWarning)
	default:
		return lipgloss.NewStyle().Foreground(ColorError).Render(SymbolOffline)
	}
}

// SeverityStyle returns the style for a log severity.
func SeverityStyle(s sim.Severity) lipgloss.Style {
	switch s {
	case sim.SeverityError:
		return lipgloss.NewStyle().Foreground(ColorError)
	case sim.SeverityWarning:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	default:
		return lipgloss.NewStyle().Foreground(ColorInfo)
	}
}

// FormatLine renders the headline numbers of f on one line.
func FormatLine(f sim.Frame) string {
	status := SymbolLive + " " + f.Status
	if !f.Live {
		status = SymbolPaused + " " + f.Status
	}

	parts := []string{
		labelStyle.Render(f.LastUpdate),
		valueStyle.Render(status),
		"users " + valueStyle.Render(f.Users) + " " + TrendText(f.UsersTrend),
		"bw " + valueStyle.Render(f.Bandwidth),
		"cpu " + valueStyle.Render(f.CPU),
		"mem " + valueStyle.Render(f.Memory),
		"disk " + valueStyle.Render(f.DiskIO),
		"alerts " + valueStyle.Render(f.Alerts),
		"health " + valueStyle.Render(f.HealthText),
		"up " + valueStyle.Render(f.Uptime),
	}
	line := strings.Join(parts, labelStyle.Render(" | "))
	if f.Alert.Visible {
		line += " " + lipgloss.NewStyle().Foreground(ColorError).Bold(true).Render(SymbolAlert+" "+f.Alert.Message)
	}
	return line
}

// FormatFrame renders every panel of f as a multi-line block.
func FormatFrame(f sim.Frame) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %s %s  %s %s\n",
		titleStyle.Render("NEXUS"),
		valueStyle.Render(f.Status),
		labelStyle.Render("updated"), f.LastUpdate,
		labelStyle.Render("uptime"), f.Uptime)
	fmt.Fprintf(&b, "%s %s  %s %s\n\n",
		labelStyle.Render("range"), f.TimeRange,
		labelStyle.Render("view"), f.Menu)

	metric := func(label, value, extra string) {
		fmt.Fprintf(&b, "  %s %s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", label)), valueStyle.Render(fmt.Sprintf("%-12s", value)), extra)
	}
	metric("Users", f.Users, TrendText(f.UsersTrend))
	metric("Bandwidth", f.Bandwidth, TrendText(f.BandwidthTrend))
	metric("CPU", f.CPU, RenderProgressBar(f.CPUBar.Percent, barWidth, f.CPUBar.Alert))
	metric("Memory", f.Memory, RenderProgressBar(f.MemoryBar.Percent, barWidth, f.MemoryBar.Alert))
	metric("Disk I/O", f.DiskIO, TrendText(f.DiskTrend))
	metric("Alerts", f.Alerts, "")
	metric("Health", f.HealthText, RenderProgressBar(f.Gauge[0], barWidth, false))

	b.WriteString("\n")
	traffic := FitScale(f.Inbound, f.Outbound)
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", "Inbound")), RenderSparkline(f.Inbound, sparklineWidth, traffic, ColorInfo))
	fmt.Fprintf(&b, "  %s %s\n\n", labelStyle.Render(fmt.Sprintf("%-10s", "Outbound")), RenderSparkline(f.Outbound, sparklineWidth, traffic, ColorSecondary))

	b.WriteString(RenderServerTable(f.Servers))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Logs"), labelStyle.Render(f.LogCount))
	if len(f.Logs) == 0 {
		b.WriteString(labelStyle.Render("  no entries yet") + "\n")
	}
	for _, e := range f.Logs {
		fmt.Fprintf(&b, "  %s %s %s\n",
			labelStyle.Render(e.Time),
			SeverityStyle(e.Severity).Render(fmt.Sprintf("%-7s", e.Severity.Label())),
			e.Message)
	}

	if f.Alert.Visible {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(ColorError).Bold(true).Render(SymbolAlert + " " + f.Alert.Message))
		b.WriteString("\n")
	}

	return b.String()
}

// TextRenderer writes frames to w, either one line per frame or the full
// block.
type TextRenderer struct {
	w    io.Writer
	full bool
}

// NewLineRenderer returns a renderer writing FormatLine output.
func NewLineRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// NewBlockRenderer returns a renderer writing FormatFrame output.
func NewBlockRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w, full: true}
}

// Render implements sim.Renderer.
func (r *TextRenderer) Render(f sim.Frame) error {
	var out string
	if r.full {
		out = FormatFrame(f)
	} else {
		out = FormatLine(f) + "\n"
	}
	_, err := io.WriteString(r.w, out)
	return err
}
