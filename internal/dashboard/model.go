package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/nexus/internal/logger"
	"github.com/rileyhilliard/nexus/internal/sim"
)

// LayoutMode represents the responsive layout mode based on terminal size.
type LayoutMode int

const (
	// LayoutMinimal is for terminals < 80 columns: metrics and servers as text, no charts
	LayoutMinimal LayoutMode = iota
	// LayoutCompact is for terminals 80-120 columns: one column of panels
	LayoutCompact
	// LayoutStandard is for terminals 120-160 columns: chart and health side by side
	LayoutStandard
	// LayoutWide is for terminals 160+ columns: servers and logs side by side too
	LayoutWide
)

// Width breakpoints for layout modes
const (
	BreakpointCompact  = 80
	BreakpointStandard = 120
	BreakpointWide     = 160
)

// HeightMinimal is the height below which the chart is dropped.
const HeightMinimal = 24

// Options configures the dashboard model. Zero values get defaults.
type Options struct {
	Interval      time.Duration
	AlertDuration time.Duration
	// Clock is read when drawing, for the uptime counter.
	Clock  func() time.Time
	Logger logger.Logger
}

// Model is the Bubble Tea model for the operations dashboard. It owns the
// simulation state and advances it on every tick message.
type Model struct {
	state sim.State
	src   sim.Source

	interval      time.Duration
	alertDuration time.Duration
	now           func() time.Time
	log           logger.Logger

	width    int
	height   int
	showHelp bool
	quitting bool
}

// tickMsg signals a periodic simulation step.
type tickMsg time.Time

// alertExpiredMsg is the scheduled auto-dismiss of one popup generation.
type alertExpiredMsg struct {
	gen uint64
}

// NewModel creates a dashboard model around an initial state.
func NewModel(state sim.State, src sim.Source, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.AlertDuration <= 0 {
		opts.AlertDuration = sim.AlertDuration
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	return Model{
		state:         state,
		src:           src,
		interval:      opts.Interval,
		alertDuration: opts.AlertDuration,
		now:           opts.Clock,
		log:           opts.Logger,
	}
}

// Init starts the tick timer.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		next, fx := sim.Step(m.state, m.src, time.Time(msg))
		m.state = next
		if fx.AlertShown != 0 {
			m.log.Debug("alert %d shown: %s", fx.AlertShown, next.Alert.Message)
			return m, tea.Batch(m.tickCmd(), m.expireCmd(fx.AlertShown))
		}
		return m, m.tickCmd()

	case alertExpiredMsg:
		if !m.state.ExpireAlert(msg.gen) {
			m.log.Debug("stale expiry for alert %d ignored", msg.gen)
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// State returns a copy of the current simulation state.
func (m Model) State() sim.State {
	return m.state.Clone()
}

// Frame presents the current state.
func (m Model) Frame() sim.Frame {
	return sim.Present(m.state, m.now())
}

// Layout returns the layout mode for the current terminal width.
func (m Model) Layout() LayoutMode {
	switch {
	case m.width == 0:
		return LayoutStandard
	case m.width < BreakpointCompact:
		return LayoutMinimal
	case m.width < BreakpointStandard:
		return LayoutCompact
	case m.width < BreakpointWide:
		return LayoutStandard
	default:
		return LayoutWide
	}
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// expireCmd schedules the auto-dismiss for popup generation gen.
func (m Model) expireCmd(gen uint64) tea.Cmd {
	return tea.Tick(m.alertDuration, func(time.Time) tea.Msg {
		return alertExpiredMsg{gen: gen}
	})
}
