package sim

import (
	"fmt"
	"math"
)

// Direction classifies a trend for styling.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

// String returns "up" or "down".
func (d Direction) String() string {
	if d == DirectionDown {
		return "down"
	}
	return "up"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// TrendView is a signed percentage change ready for display.
type TrendView struct {
	Percent   float64   `json:"percent" yaml:"percent"`
	Text      string    `json:"text" yaml:"text"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// Trend computes the change from previous to current, in percent, rounded to
// one decimal. A zero previous value, or any ratio that is not finite,
// yields +0.0% up. A change that rounds to zero is shown as +0.0%.
func Trend(current, previous float64) TrendView {
	pct := 0.0
	if previous != 0 {
		pct = (current - previous) / previous * 100
	}
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		pct = 0
	}

	pct = math.Round(pct*10) / 10
	if pct == 0 {
		pct = 0 // drop negative zero
	}

	dir := DirectionUp
	if pct < 0 {
		dir = DirectionDown
	}

	return TrendView{
		Percent:   pct,
		Text:      fmt.Sprintf("%+.1f%%", pct),
		Direction: dir,
	}
}
