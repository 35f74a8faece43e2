package sim

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Bar is a fill bar for a percentage metric.
type Bar struct {
	Percent float64 `json:"percent" yaml:"percent"`
	Alert   bool    `json:"alert" yaml:"alert"` // past the metric's alert threshold
}

// ServerCard is the render-ready view of one server.
type ServerCard struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Status   string `json:"status" yaml:"status"`
	Load     int    `json:"load" yaml:"load"`
	LoadText string `json:"load_text" yaml:"load_text"`
}

// AlertView is the popup as the renderer sees it.
type AlertView struct {
	Visible    bool   `json:"visible" yaml:"visible"`
	Message    string `json:"message" yaml:"message"`
	Generation uint64 `json:"generation" yaml:"generation"`
}

// Frame is everything a renderer needs to draw one tick. Renderers never
// look at State directly.
type Frame struct {
	Live   bool   `json:"live" yaml:"live"`
	Status string `json:"status" yaml:"status"` // LIVE or PAUSED

	Users          string    `json:"users" yaml:"users"`
	UsersTrend     TrendView `json:"users_trend" yaml:"users_trend"`
	Bandwidth      string    `json:"bandwidth" yaml:"bandwidth"`
	BandwidthTrend TrendView `json:"bandwidth_trend" yaml:"bandwidth_trend"`
	CPU            string    `json:"cpu" yaml:"cpu"`
	CPUBar         Bar       `json:"cpu_bar" yaml:"cpu_bar"`
	Memory         string    `json:"memory" yaml:"memory"`
	MemoryBar      Bar       `json:"memory_bar" yaml:"memory_bar"`
	DiskIO         string    `json:"disk_io" yaml:"disk_io"`
	DiskTrend      TrendView `json:"disk_trend" yaml:"disk_trend"`
	Alerts         string    `json:"alerts" yaml:"alerts"`

	Health     int        `json:"health" yaml:"health"`
	HealthText string     `json:"health_text" yaml:"health_text"`
	Gauge      [2]float64 `json:"gauge" yaml:"gauge"`

	Labels   []string  `json:"labels" yaml:"labels"`
	Inbound  []float64 `json:"inbound" yaml:"inbound"`
	Outbound []float64 `json:"outbound" yaml:"outbound"`

	Servers []ServerCard `json:"servers" yaml:"servers"`

	Uptime     string `json:"uptime" yaml:"uptime"`
	LastUpdate string `json:"last_update" yaml:"last_update"`

	Logs     []LogEntry `json:"logs" yaml:"logs"`
	LogCount string     `json:"log_count" yaml:"log_count"`

	Alert AlertView `json:"alert" yaml:"alert"`

	TimeRange string `json:"time_range" yaml:"time_range"`
	Menu      string `json:"menu" yaml:"menu"`

	Raw Metrics `json:"raw" yaml:"raw"`
}

// Renderer draws frames. The TUI, the web view and test fakes implement it.
type Renderer interface {
	Render(Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame) error

// Render calls f.
func (f RendererFunc) Render(fr Frame) error {
	return f(fr)
}

// Present formats s for display. Uptime is measured against now, so it keeps
// moving while the simulation is paused.
func Present(s State, now time.Time) Frame {
	m := s.Metrics
	health := HealthScore(m)

	status := "LIVE"
	if s.Paused {
		status = "PAUSED"
	}

	servers := make([]ServerCard, len(s.Servers))
	for i, srv := range s.Servers {
		servers[i] = ServerCard{
			ID:       srv.ID,
			Name:     srv.Name,
			Status:   srv.Status.String(),
			Load:     srv.Load,
			LoadText: fmt.Sprintf("%d%%", srv.Load),
		}
	}

	logs := make([]LogEntry, len(s.Logs.Entries))
	copy(logs, s.Logs.Entries)

	return Frame{
		Live:   !s.Paused,
		Status: status,

		Users:          humanize.Comma(int64(m.Users)),
		UsersTrend:     Trend(float64(m.Users), float64(s.Previous.Users)),
		Bandwidth:      fmt.Sprintf("%.1f GB/s", m.Bandwidth),
		BandwidthTrend: Trend(m.Bandwidth, s.Previous.Bandwidth),
		CPU:            fmt.Sprintf("%d%%", floor(m.CPU)),
		CPUBar:         Bar{Percent: m.CPU, Alert: m.CPU > CPUAlertThreshold},
		Memory:         fmt.Sprintf("%d%%", floor(m.Memory)),
		MemoryBar:      Bar{Percent: m.Memory, Alert: m.Memory > MemoryAlertThreshold},
		DiskIO:         fmt.Sprintf("%d MB/s", floor(m.DiskIO)),
		DiskTrend:      Trend(m.DiskIO, s.Previous.DiskIO),
		Alerts:         fmt.Sprintf("%d", m.Alerts),

		Health:     health,
		HealthText: fmt.Sprintf("%d%%", health),
		Gauge:      Gauge(health),

		Labels:   SeriesLabels(s.Inbound.Len()),
		Inbound:  s.Inbound.Values(),
		Outbound: s.Outbound.Values(),

		Servers: servers,

		Uptime:     FormatUptime(now.Sub(s.StartedAt)),
		LastUpdate: s.UpdatedAt.Format(LogTimeFormat),

		Logs:     logs,
		LogCount: fmt.Sprintf("%d entries", s.Logs.Total),

		Alert: AlertView{
			Visible:    s.Alert.Visible,
			Message:    s.Alert.Message,
			Generation: s.Alert.Generation,
		},

		TimeRange: s.TimeRange.String(),
		Menu:      s.Menu.String(),

		Raw: m,
	}
}

func floor(v float64) int {
	return int(math.Floor(v))
}
