package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkLevels are the eight block heights, lowest first.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Scale is the value range a sparkline maps onto its block heights.
type Scale struct {
	Min, Max float64
}

// FitScale returns the smallest range covering every finite sample of every
// series. Drawing inbound and outbound traffic on one fitted scale keeps the
// two lines comparable.
func FitScale(series ...[]float64) Scale {
	s := Scale{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, data := range series {
		for _, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			s.Min = math.Min(s.Min, v)
			s.Max = math.Max(s.Max, v)
		}
	}
	if s.Min > s.Max {
		return Scale{}
	}
	return s
}

// level maps v to a block index. A flat scale draws mid height.
func (s Scale) level(v float64) int {
	top := len(sparkLevels) - 1
	span := s.Max - s.Min
	if span <= 0 {
		return len(sparkLevels) / 2
	}
	l := int((v - s.Min) / span * float64(top))
	return max(0, min(top, l))
}

// RenderSparkline draws the newest width samples of data on scale.
func RenderSparkline(data []float64, width int, scale Scale, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	var sb strings.Builder
	for _, v := range data {
		sb.WriteRune(sparkLevels[scale.level(v)])
	}
	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}
