package sim

import "time"

// State is everything the dashboard simulates. It is a value: Step returns
// a new State and leaves its input alone.
type State struct {
	Metrics  Metrics
	Previous Metrics // snapshot taken at the start of the last tick

	Servers  []Server
	Inbound  Series
	Outbound Series
	Logs     LogFeed
	Alert    Alert

	Paused    bool
	StartedAt time.Time // uptime origin; wall clock, unaffected by pause
	UpdatedAt time.Time // time of the last applied tick

	TimeRange TimeRange
	Menu      MenuItem
}

// NewState builds the startup state. The initial chart samples are drawn
// from src.
func NewState(src Source, now time.Time) State {
	metrics := DefaultMetrics()
	return State{
		Metrics:   metrics,
		Previous:  metrics,
		Servers:   DefaultServers(),
		Inbound:   NewSeries(SeriesLength, func(int) float64 { return src.Float64()*50 + 20 }),
		Outbound:  NewSeries(SeriesLength, func(int) float64 { return src.Float64()*40 + 10 }),
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy that shares no slices with s.
func (s State) Clone() State {
	out := s
	if s.Servers != nil {
		out.Servers = make([]Server, len(s.Servers))
		copy(out.Servers, s.Servers)
	}
	out.Inbound = s.Inbound.clone()
	out.Outbound = s.Outbound.clone()
	out.Logs = s.Logs.clone()
	return out
}

// TogglePause flips the pause flag and returns the new value.
func (s *State) TogglePause() bool {
	s.Paused = !s.Paused
	return s.Paused
}

// DismissAlert hides the popup immediately.
func (s *State) DismissAlert() {
	s.Alert.Dismiss()
}

// ExpireAlert applies a scheduled auto-dismiss for generation gen.
func (s *State) ExpireAlert(gen uint64) bool {
	return s.Alert.Expire(gen)
}
