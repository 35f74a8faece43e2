package sim

// Thresholds past which a bar switches to the alert color and the health
// score takes a penalty.
const (
	CPUAlertThreshold    = 80.0
	MemoryAlertThreshold = 85.0
)

// HealthScore is 100 minus 5 per alert, 10 for hot CPU, and 10 for hot
// memory, floored at zero.
func HealthScore(m Metrics) int {
	score := 100 - 5*m.Alerts
	if m.CPU > CPUAlertThreshold {
		score -= 10
	}
	if m.Memory > MemoryAlertThreshold {
		score -= 10
	}
	return max(0, score)
}

// Gauge splits a score into the healthy and issue slices of the gauge.
func Gauge(score int) [2]float64 {
	s := float64(min(100, max(0, score)))
	return [2]float64{s, 100 - s}
}
