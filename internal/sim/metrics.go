package sim

// Walk bounds and probabilities for the metric random walk.
const (
	MinUsers = 100

	alertNudgeChance = 0.95 // a draw above this nudges the alert count
)

// Metrics is one snapshot of the simulated headline numbers.
type Metrics struct {
	Users     int     `json:"users" yaml:"users"`
	Bandwidth float64 `json:"bandwidth" yaml:"bandwidth"`
	CPU       float64 `json:"cpu" yaml:"cpu"`
	Memory    float64 `json:"memory" yaml:"memory"`
	DiskIO    float64 `json:"disk_io" yaml:"disk_io"`
	Alerts    int     `json:"alerts" yaml:"alerts"`
}

// DefaultMetrics returns the values the dashboard starts from.
func DefaultMetrics() Metrics {
	return Metrics{
		Users:     1240,
		Bandwidth: 54.2,
		CPU:       32,
		Memory:    68,
		DiskIO:    245,
		Alerts:    2,
	}
}

// walk perturbs every metric once and clamps it back into range.
func (m Metrics) walk(src Source) Metrics {
	m.Users += src.IntN(40) - 18
	m.Bandwidth += src.Float64()*4 - 2
	m.CPU += src.Float64()*8 - 4
	m.Memory += src.Float64()*4 - 2
	m.DiskIO += src.Float64()*60 - 30

	m.Users = max(MinUsers, m.Users)
	m.Bandwidth = clampPercent(m.Bandwidth)
	m.CPU = clampPercent(m.CPU)
	m.Memory = clampPercent(m.Memory)
	m.DiskIO = max(0, m.DiskIO)

	if src.Float64() > alertNudgeChance {
		if src.Float64() > 0.5 {
			m.Alerts++
		} else {
			m.Alerts--
		}
		m.Alerts = max(0, m.Alerts)
	}

	return m
}

// clampPercent clamps v to [0, 100].
func clampPercent(v float64) float64 {
	return min(100, max(0, v))
}
