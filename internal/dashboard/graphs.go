package dashboard

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Traffic charts are drawn with braille cells. Each cell is 2 dots wide and
// 4 dots tall, so a chart of cols x rows cells has 2*cols samples of 4*rows
// levels. Unicode braille starts at U+2800 with one bit per dot.
const brailleBase = '\u2800'

// brailleBits[row][col] is the bit of the dot at row (top to bottom) and
// col (left to right) within one cell.
var brailleBits = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// brailleCanvas is a cols x rows grid of braille cells.
type brailleCanvas struct {
	cols, rows int
	cells      [][]rune
}

func newBrailleCanvas(cols, rows int) *brailleCanvas {
	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = make([]rune, cols)
		for c := range cells[r] {
			cells[r][c] = brailleBase
		}
	}
	return &brailleCanvas{cols: cols, rows: rows, cells: cells}
}

// fillColumn lights the lowest height dots of dot column x.
func (c *brailleCanvas) fillColumn(x, height int) {
	height = max(0, min(c.rows*4, height))
	for dot := 0; dot < height; dot++ {
		row := c.rows - 1 - dot/4
		sub := 3 - dot%4
		c.cells[row][x/2] |= rune(1) << brailleBits[sub][x%2]
	}
}

// lines renders each cell row in style.
func (c *brailleCanvas) lines(style lipgloss.Style) []string {
	out := make([]string, c.rows)
	for r, row := range c.cells {
		out[r] = style.Render(string(row))
	}
	return out
}

// chartCeiling is the top of the traffic chart for the given series: the
// highest sample plus 10% headroom. The floor is always zero so the area
// reads as absolute volume.
func chartCeiling(series ...[]float64) float64 {
	top := 0.0
	for _, data := range series {
		for _, v := range data {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				top = math.Max(top, v)
			}
		}
	}
	if top <= 0 {
		return 1
	}
	return top * 1.1
}

// stretch linearly interpolates data onto n evenly spaced points, first and
// last sample included.
func stretch(data []float64, n int) []float64 {
	if len(data) == 0 || n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if len(data) == 1 || n == 1 {
		for i := range out {
			out[i] = data[len(data)-1]
		}
		return out
	}

	step := float64(len(data)-1) / float64(n-1)
	for i := range out {
		pos := float64(i) * step
		lo := int(pos)
		if lo >= len(data)-1 {
			out[i] = data[len(data)-1]
			continue
		}
		frac := pos - float64(lo)
		out[i] = data[lo]*(1-frac) + data[lo+1]*frac
	}
	return out
}

// RenderTrafficChart draws data as a filled braille area, cols cells wide
// and rows cells tall, scaled from zero to ceiling. It returns one string
// per cell row.
func RenderTrafficChart(data []float64, cols, rows int, ceiling float64, color lipgloss.Color) []string {
	if len(data) == 0 || cols <= 0 || rows <= 0 {
		return nil
	}
	if ceiling <= 0 {
		ceiling = 1
	}

	canvas := newBrailleCanvas(cols, rows)
	levels := float64(rows * 4)
	for x, v := range stretch(data, cols*2) {
		canvas.fillColumn(x, int(v/ceiling*levels))
	}
	return canvas.lines(lipgloss.NewStyle().Foreground(color))
}
