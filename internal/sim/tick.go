package sim

import "time"

// LogTimeFormat is the clock format used for log stamps and "last update".
const LogTimeFormat = "15:04:05"

// Effects reports what a tick did that the caller may need to act on.
type Effects struct {
	// AlertShown is the generation of a popup raised by this tick, or zero.
	// The caller schedules ExpireAlert(AlertShown) after AlertDuration.
	AlertShown uint64
	// LogAdded is set when a log entry was appended.
	LogAdded bool
}

// Step advances prev by one tick. A paused state comes back unchanged and
// the source is not touched.
func Step(prev State, src Source, now time.Time) (State, Effects) {
	next := prev.Clone()
	var fx Effects
	if next.Paused {
		return next, fx
	}

	next.Previous = next.Metrics
	next.Metrics = next.Metrics.walk(src)

	bw := next.Metrics.Bandwidth
	next.Inbound.Advance(inboundSample(src, bw))
	next.Outbound.Advance(outboundSample(src, bw))

	for i := range next.Servers {
		next.Servers[i].step(src)
	}

	stamp := now.Format(LogTimeFormat)
	if src.Float64() > logChance {
		next.Logs.Add(CatalogLog(src.IntN(len(logCatalog)), stamp))
		fx.LogAdded = true
	}

	if src.Float64() > alertChance && !next.Alert.Visible {
		msg := alertCatalog[src.IntN(len(alertCatalog))]
		fx.AlertShown = next.Alert.Show(msg, now)
	}

	next.UpdatedAt = now
	return next, fx
}
