package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Progress bar block characters.
const (
	progressFilled = "█"
	progressEmpty  = "░"
)

// filledCells returns how many of width cells a percent fills, with percent
// clamped to 0-100.
func filledCells(percent float64, width int) int {
	percent = max(0, min(100, percent))
	return int(percent / 100 * float64(width))
}

// RenderProgressBar draws a width-cell bar like ████████░░░░. The filled
// part is red when alert is set and green otherwise.
func RenderProgressBar(percent float64, width int, alert bool) string {
	if width <= 0 {
		return ""
	}
	n := filledCells(percent, width)

	color := ColorSuccess
	if alert {
		color = ColorError
	}
	filled := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(progressFilled, n))
	empty := lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Repeat(progressEmpty, width-n))
	return filled + empty
}

// PlainProgressBar is RenderProgressBar without color, for places that
// measure or truncate the result.
func PlainProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	n := filledCells(percent, width)
	return strings.Repeat(progressFilled, n) + strings.Repeat(progressEmpty, width-n)
}
