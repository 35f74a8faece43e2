package sim

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"
	"time"

	simtesting "github.com/rileyhilliard/nexus/internal/sim/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrend(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		wantText string
		wantDir  Direction
	}{
		{"increase", 110, 100, "+10.0%", DirectionUp},
		{"decrease", 90, 100, "-10.0%", DirectionDown},
		{"unchanged", 100, 100, "+0.0%", DirectionUp},
		{"zero previous", 50, 0, "+0.0%", DirectionUp},
		{"zero both", 0, 0, "+0.0%", DirectionUp},
		{"tiny drop rounds to zero", 99.99, 100, "+0.0%", DirectionUp},
		{"nan input", math.NaN(), 100, "+0.0%", DirectionUp},
		{"infinite ratio", math.Inf(1), 100, "+0.0%", DirectionUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trend(tt.current, tt.previous)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantDir, got.Direction)
			assert.False(t, math.IsNaN(got.Percent))
			assert.False(t, math.IsInf(got.Percent, 0))
		})
	}
}

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name string
		m    Metrics
		want int
	}{
		{"three alerts and hot cpu", Metrics{Alerts: 3, CPU: 90, Memory: 50}, 75},
		{"healthy", Metrics{Alerts: 0, CPU: 10, Memory: 10}, 100},
		{"both hot", Metrics{Alerts: 1, CPU: 81, Memory: 86}, 75},
		{"threshold is exclusive", Metrics{CPU: 80, Memory: 85}, 100},
		{"floored at zero", Metrics{Alerts: 40, CPU: 95, Memory: 95}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HealthScore(tt.m))
		})
	}
}

func TestGauge(t *testing.T) {
	assert.Equal(t, [2]float64{75, 25}, Gauge(75))
	assert.Equal(t, [2]float64{0, 100}, Gauge(-5))
	assert.Equal(t, [2]float64{100, 0}, Gauge(120))
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0d 0h 0m"},
		{59 * time.Second, "0d 0h 0m"},
		{90 * time.Minute, "0d 1h 30m"},
		{25*time.Hour + 5*time.Minute, "1d 1h 5m"},
		{-time.Hour, "0d 0h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUptime(tt.d))
		})
	}
}

func TestSeries_AdvanceKeepsLength(t *testing.T) {
	s := NewSeries(5, func(i int) float64 { return float64(i) })
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, s.Values())

	s.Advance(5)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s.Values())
	assert.Equal(t, 5.0, s.Last())

	for v := 6; v < 13; v++ {
		s.Advance(float64(v))
	}
	assert.Equal(t, []float64{8, 9, 10, 11, 12}, s.Values())
}

func TestSeries_CloneIsIndependent(t *testing.T) {
	s := NewSeries(3, func(int) float64 { return 1 })
	c := s.clone()
	c.Advance(9)

	assert.Equal(t, []float64{1, 1, 1}, s.Values())
	assert.Equal(t, []float64{1, 1, 9}, c.Values())
}

func TestSeriesLabels(t *testing.T) {
	labels := SeriesLabels(SeriesLength)
	require.Len(t, labels, SeriesLength)
	assert.Equal(t, "0s", labels[0])
	assert.Equal(t, "29s", labels[29])
}

func TestLogFeed_Retention(t *testing.T) {
	var f LogFeed
	for i := 0; i < 11; i++ {
		f.Add(LogEntry{Message: fmt.Sprintf("m%d", i)})
	}

	require.Len(t, f.Entries, MaxVisibleLogs)
	assert.Equal(t, 11, f.Total)
	for i, e := range f.Entries {
		assert.Equal(t, fmt.Sprintf("m%d", 10-i), e.Message)
	}
}

func TestCatalogLog(t *testing.T) {
	e := CatalogLog(4, "09:15:00")
	assert.Equal(t, SeverityError, e.Severity)
	assert.Equal(t, "ERROR", e.Severity.Label())
	assert.Equal(t, "Connection timeout to srv-06", e.Message)
	assert.Equal(t, "09:15:00", e.Time)
	assert.Equal(t, 8, LogCatalogSize())
}

func TestAlert_DismissIsIdempotent(t *testing.T) {
	var a Alert
	a.Dismiss()
	assert.Equal(t, Alert{}, a)

	a.Show("cpu spike", t0)
	a.Dismiss()
	once := a
	a.Dismiss()
	assert.Equal(t, once, a)
	assert.False(t, a.Visible)
}

func TestAlert_StaleExpiryIgnored(t *testing.T) {
	var a Alert
	first := a.Show("first", t0)

	// Manual dismissal, then a new popup before the first timer fires.
	a.Dismiss()
	second := a.Show("second", t0.Add(2*time.Second))
	require.NotEqual(t, first, second)

	assert.False(t, a.Expire(first))
	assert.True(t, a.Visible)
	assert.Equal(t, "second", a.Message)

	assert.True(t, a.Expire(second))
	assert.False(t, a.Visible)
	assert.False(t, a.Expire(second))
}

func TestServerStatus_Derivation(t *testing.T) {
	assert.Equal(t, ServerWarning, deriveStatus(ServerOnline, 86))
	assert.Equal(t, ServerOnline, deriveStatus(ServerWarning, 85))
	assert.Equal(t, ServerOnline, deriveStatus(ServerWarning, 1))
	assert.Equal(t, ServerWarning, deriveStatus(ServerWarning, 0), "zero load keeps status")

	srv := Server{ID: "x", Status: ServerOffline, Load: 0}
	srv.step(simtesting.NewScriptedSource(nil, []int{9}))
	assert.Equal(t, Server{ID: "x", Status: ServerOffline, Load: 0}, srv)
}

func TestSelection(t *testing.T) {
	r, ok := ParseTimeRange("24h")
	assert.True(t, ok)
	assert.Equal(t, Range24H, r)
	_, ok = ParseTimeRange("1Y")
	assert.False(t, ok)
	assert.Equal(t, "1H", TimeRange(99).String())

	assert.Equal(t, MenuAnalytics, MenuDashboard.Next())
	assert.Equal(t, MenuSettings, MenuDashboard.Prev())
	assert.Equal(t, MenuDashboard, MenuSettings.Next())
	m, ok := ParseMenuItem("servers")
	assert.True(t, ok)
	assert.Equal(t, MenuServers, m)
}

func TestPresent(t *testing.T) {
	s := NewState(simtesting.NewNeutralSource(), t0)
	f := Present(s, t0.Add(90*time.Minute))

	assert.True(t, f.Live)
	assert.Equal(t, "LIVE", f.Status)
	assert.Equal(t, "1,240", f.Users)
	assert.Equal(t, "+0.0%", f.UsersTrend.Text)
	assert.Equal(t, "54.2 GB/s", f.Bandwidth)
	assert.Equal(t, "32%", f.CPU)
	assert.False(t, f.CPUBar.Alert)
	assert.Equal(t, "68%", f.Memory)
	assert.Equal(t, "245 MB/s", f.DiskIO)
	assert.Equal(t, "2", f.Alerts)
	assert.Equal(t, 90, f.Health)
	assert.Equal(t, "90%", f.HealthText)
	assert.Equal(t, [2]float64{90, 10}, f.Gauge)
	assert.Len(t, f.Labels, SeriesLength)
	assert.Len(t, f.Inbound, SeriesLength)
	assert.Len(t, f.Outbound, SeriesLength)
	require.Len(t, f.Servers, 6)
	assert.Equal(t, "warning", f.Servers[3].Status)
	assert.Equal(t, "85%", f.Servers[3].LoadText)
	assert.Equal(t, "0d 1h 30m", f.Uptime)
	assert.Equal(t, "12:00:00", f.LastUpdate)
	assert.Equal(t, "0 entries", f.LogCount)
	assert.False(t, f.Alert.Visible)
	assert.Equal(t, "1H", f.TimeRange)
	assert.Equal(t, "Dashboard", f.Menu)

	s.Metrics.CPU = 81.7
	s.Metrics.Memory = 90
	s.Paused = true
	f = Present(s, t0)
	assert.Equal(t, "81%", f.CPU)
	assert.True(t, f.CPUBar.Alert)
	assert.True(t, f.MemoryBar.Alert)
	assert.Equal(t, "PAUSED", f.Status)
	assert.False(t, f.Live)
}

func TestFrame_JSONUsesNames(t *testing.T) {
	s := NewState(simtesting.NewNeutralSource(), t0)
	s.Metrics.Users = 1000
	data, err := json.Marshal(Present(s, t0))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"direction":"down"`)
	assert.Contains(t, out, `"status":"offline"`)
	assert.Contains(t, out, `"users":"1,000"`)
}

func TestRendererFunc(t *testing.T) {
	var got Frame
	var r Renderer = RendererFunc(func(f Frame) error {
		got = f
		return nil
	})

	require.NoError(t, r.Render(Frame{Users: "7"}))
	assert.Equal(t, "7", got.Users)
}
