package sim

import (
	"testing"
	"time"

	simtesting "github.com/rileyhilliard/nexus/internal/sim/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func neutralState(t *testing.T) State {
	t.Helper()
	return NewState(simtesting.NewNeutralSource(), t0)
}

func TestNewState(t *testing.T) {
	s := neutralState(t)

	assert.Equal(t, DefaultMetrics(), s.Metrics)
	assert.Equal(t, s.Metrics, s.Previous)
	assert.Len(t, s.Servers, 6)
	assert.Equal(t, SeriesLength, s.Inbound.Len())
	assert.Equal(t, SeriesLength, s.Outbound.Len())
	assert.Equal(t, 45.0, s.Inbound.Last())
	assert.Equal(t, 30.0, s.Outbound.Last())
	assert.False(t, s.Paused)
	assert.False(t, s.Alert.Visible)
	assert.Equal(t, t0, s.StartedAt)
}

func TestStep_AppliesScriptedDraws(t *testing.T) {
	prev := neutralState(t)
	src := simtesting.NewScriptedSource(
		[]float64{
			0.75, // bandwidth +1
			0.25, // cpu -2
			0.0,  // memory -2
			0.5,  // disk I/O +0
			0.97, // alert count nudge fires
			0.8,  // ... upward
			0.2,  // inbound sample
			0.5,  // outbound sample
			0.9,  // log fires
			0.99, // popup fires
		},
		[]int{
			38, // users +20
			9,  // srv-01 +4
			0,  // srv-02 -5
			5,  // srv-03 +0
			9,  // srv-04 +4, crosses into warning
			0,  // srv-05 -5
			2,  // log catalog entry
			1,  // alert catalog entry
		},
	)
	now := t0.Add(time.Second)

	next, fx := Step(prev, src, now)

	assert.Equal(t, DefaultMetrics(), next.Previous)
	assert.Equal(t, 1260, next.Metrics.Users)
	assert.InDelta(t, 55.2, next.Metrics.Bandwidth, 1e-9)
	assert.InDelta(t, 30.0, next.Metrics.CPU, 1e-9)
	assert.InDelta(t, 66.0, next.Metrics.Memory, 1e-9)
	assert.InDelta(t, 245.0, next.Metrics.DiskIO, 1e-9)
	assert.Equal(t, 3, next.Metrics.Alerts)

	assert.InDelta(t, 0.2*50+20+55.2*0.5, next.Inbound.Last(), 1e-9)
	assert.InDelta(t, 0.5*40+10+55.2*0.3, next.Outbound.Last(), 1e-9)
	assert.Equal(t, SeriesLength, next.Inbound.Len())

	loads := make([]int, len(next.Servers))
	statuses := make([]ServerStatus, len(next.Servers))
	for i, srv := range next.Servers {
		loads[i] = srv.Load
		statuses[i] = srv.Status
	}
	assert.Equal(t, []int{49, 57, 38, 89, 24, 0}, loads)
	assert.Equal(t, []ServerStatus{ServerOnline, ServerOnline, ServerOnline, ServerWarning, ServerOnline, ServerOffline}, statuses)

	require.Len(t, next.Logs.Entries, 1)
	assert.Equal(t, "High memory usage detected on srv-04", next.Logs.Entries[0].Message)
	assert.Equal(t, SeverityWarning, next.Logs.Entries[0].Severity)
	assert.Equal(t, "12:00:01", next.Logs.Entries[0].Time)
	assert.Equal(t, 1, next.Logs.Total)
	assert.True(t, fx.LogAdded)

	assert.True(t, next.Alert.Visible)
	assert.Equal(t, "Memory threshold exceeded on Asia-Pacific", next.Alert.Message)
	assert.Equal(t, uint64(1), fx.AlertShown)
	assert.Equal(t, now, next.UpdatedAt)

	assert.Empty(t, src.Floats, "every scripted float should be consumed")
	assert.Empty(t, src.Ints, "every scripted int should be consumed")
}

func TestStep_DoesNotMutateInput(t *testing.T) {
	prev := neutralState(t)
	snapshot := prev.Clone()

	src := simtesting.NewScriptedSource([]float64{0.9, 0.9, 0.9, 0.9}, []int{39, 9, 9})
	_, _ = Step(prev, src, t0.Add(time.Second))

	assert.Equal(t, snapshot, prev)
}

func TestStep_ClampsAtBounds(t *testing.T) {
	prev := neutralState(t)
	prev.Metrics = Metrics{Users: 100, Bandwidth: 0.5, CPU: 99, Memory: 99.5, DiskIO: 10, Alerts: 0}
	for i := range prev.Servers {
		if prev.Servers[i].Status != ServerOffline {
			prev.Servers[i].Load = 98
		}
	}

	src := simtesting.NewScriptedSource(
		[]float64{0.0, 0.999, 0.999, 0.0, 0.99, 0.1},
		[]int{0, 9, 9, 9, 9, 9},
	)
	next, _ := Step(prev, src, t0.Add(time.Second))

	assert.Equal(t, MinUsers, next.Metrics.Users)
	assert.Equal(t, 0.0, next.Metrics.Bandwidth)
	assert.Equal(t, 100.0, next.Metrics.CPU)
	assert.Equal(t, 100.0, next.Metrics.Memory)
	assert.Equal(t, 0.0, next.Metrics.DiskIO)
	assert.Equal(t, 0, next.Metrics.Alerts)
	for _, srv := range next.Servers {
		if srv.Status == ServerOffline {
			continue
		}
		assert.Equal(t, 100, srv.Load, srv.ID)
		assert.Equal(t, ServerWarning, srv.Status, srv.ID)
	}
}

func TestStep_PausedIsFrozen(t *testing.T) {
	prev := neutralState(t)
	prev.Paused = true
	src := simtesting.NewScriptedSource([]float64{0.99, 0.99}, []int{39})

	next := prev
	for i := 0; i < 25; i++ {
		var fx Effects
		next, fx = Step(next, src, t0.Add(time.Duration(i)*time.Second))
		assert.Equal(t, Effects{}, fx)
	}

	assert.Equal(t, prev, next)
	assert.Equal(t, 0, src.Calls(), "paused ticks must not draw")

	// Uptime still follows the wall clock.
	early := Present(next, t0.Add(time.Minute))
	late := Present(next, t0.Add(2*time.Hour))
	assert.NotEqual(t, early.Uptime, late.Uptime)
	assert.Equal(t, early.Users, late.Users)
}

func TestStep_PopupNotRaisedOverVisibleAlert(t *testing.T) {
	prev := neutralState(t)
	prev.Alert.Show("already up", t0)

	floats := []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.99}
	src := simtesting.NewScriptedSource(floats, nil)
	next, fx := Step(prev, src, t0.Add(time.Second))

	assert.Equal(t, uint64(0), fx.AlertShown)
	assert.Equal(t, "already up", next.Alert.Message)
	assert.Equal(t, uint64(1), next.Alert.Generation)
	// Users walk + five live servers; no catalog pick for the popup.
	assert.Equal(t, 6, src.IntCalls)
}

func TestStep_BoundsHoldOverManyTicks(t *testing.T) {
	src := NewSource(42)
	s := NewState(src, t0)
	offline := s.Servers[5]
	require.Equal(t, ServerOffline, offline.Status)

	for i := 0; i < 2000; i++ {
		s, _ = Step(s, src, t0.Add(time.Duration(i)*time.Second))

		m := s.Metrics
		require.GreaterOrEqual(t, m.Users, MinUsers)
		require.True(t, m.Bandwidth >= 0 && m.Bandwidth <= 100, "bandwidth %v", m.Bandwidth)
		require.True(t, m.CPU >= 0 && m.CPU <= 100, "cpu %v", m.CPU)
		require.True(t, m.Memory >= 0 && m.Memory <= 100, "memory %v", m.Memory)
		require.GreaterOrEqual(t, m.DiskIO, 0.0)
		require.GreaterOrEqual(t, m.Alerts, 0)

		require.Equal(t, SeriesLength, s.Inbound.Len())
		require.Equal(t, SeriesLength, s.Outbound.Len())
		require.LessOrEqual(t, len(s.Logs.Entries), MaxVisibleLogs)

		for _, srv := range s.Servers {
			require.True(t, srv.Load >= 0 && srv.Load <= 100)
			switch {
			case srv.ID == offline.ID:
				require.Equal(t, offline, srv)
			case srv.Load > WarningLoad:
				require.Equal(t, ServerWarning, srv.Status, srv.ID)
			case srv.Load > 0:
				require.Equal(t, ServerOnline, srv.Status, srv.ID)
			}
		}

		// Keep popups flowing so the guard is exercised.
		if s.Alert.Visible && i%7 == 0 {
			s.DismissAlert()
		}
	}
}
