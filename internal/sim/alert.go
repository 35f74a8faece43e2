package sim

import "time"

// AlertDuration is how long a popup stays up before it hides itself.
const AlertDuration = 5 * time.Second

const alertChance = 0.98 // a draw above this raises a popup

var alertCatalog = []string{
	"CPU usage spike detected on US-East-1",
	"Memory threshold exceeded on Asia-Pacific",
	"Network latency increased by 150ms",
	"Disk I/O bottleneck on EU-Central",
}

// AlertCatalogSize is the number of canned alert messages.
func AlertCatalogSize() int {
	return len(alertCatalog)
}

// Alert is the single popup slot. Each Show bumps Generation; a scheduled
// expiry only applies while the popup still carries the generation it was
// scheduled for.
type Alert struct {
	Visible    bool      `json:"visible" yaml:"visible"`
	Message    string    `json:"message" yaml:"message"`
	Generation uint64    `json:"generation" yaml:"generation"`
	ShownAt    time.Time `json:"shown_at" yaml:"shown_at"`
}

// Show displays msg and returns the generation to expire it with.
func (a *Alert) Show(msg string, now time.Time) uint64 {
	a.Generation++
	a.Visible = true
	a.Message = msg
	a.ShownAt = now
	return a.Generation
}

// Dismiss hides the popup. Dismissing a hidden popup does nothing.
func (a *Alert) Dismiss() {
	a.Visible = false
}

// Expire hides the popup only if it is still showing generation gen.
// It reports whether anything was hidden.
func (a *Alert) Expire(gen uint64) bool {
	if !a.Visible || a.Generation != gen {
		return false
	}
	a.Visible = false
	return true
}
