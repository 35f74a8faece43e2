package dashboard

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/nexus/internal/logger"
	"github.com/rileyhilliard/nexus/internal/sim"
	simtesting "github.com/rileyhilliard/nexus/internal/sim/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// popupSource is neutral except that the popup roll succeeds on every
// listed tick (1-based). Each neutral tick takes nine floats; the popup
// roll is the ninth.
func popupSource(ticks int, on ...int) *simtesting.ScriptedSource {
	var floats []float64
	for i := 0; i < 2*sim.SeriesLength; i++ {
		floats = append(floats, 0.5)
	}
	hit := map[int]bool{}
	for _, n := range on {
		hit[n] = true
	}
	for tick := 1; tick <= ticks; tick++ {
		for i := 0; i < 8; i++ {
			floats = append(floats, 0.5)
		}
		if hit[tick] {
			floats = append(floats, 0.99)
		} else {
			floats = append(floats, 0.5)
		}
	}
	return simtesting.NewScriptedSource(floats, nil)
}

func newTestModel(src sim.Source) Model {
	if src == nil {
		src = simtesting.NewNeutralSource()
	}
	state := sim.NewState(src, t0)
	return NewModel(state, src, Options{
		Clock: func() time.Time { return t0.Add(90 * time.Minute) },
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	newModel, cmd := m.Update(msg)
	out, ok := newModel.(Model)
	require.True(t, ok)
	return out, cmd
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	m, _ = update(t, m, tickMsg(t0.Add(time.Duration(n)*time.Second)))
	return m
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(sim.State{}, simtesting.NewNeutralSource(), Options{})

	assert.Equal(t, time.Second, m.interval)
	assert.Equal(t, sim.AlertDuration, m.alertDuration)
	assert.NotNil(t, m.now)
	assert.NotNil(t, m.log)
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(nil)
	assert.NotNil(t, m.Init())
}

func TestModel_TickAdvancesState(t *testing.T) {
	m := newTestModel(nil)

	m, cmd := update(t, m, tickMsg(t0.Add(time.Second)))
	assert.NotNil(t, cmd, "the next tick is always scheduled")

	s := m.State()
	assert.Equal(t, t0.Add(time.Second), s.UpdatedAt)
	assert.Equal(t, sim.DefaultMetrics(), s.Previous)
	assert.Equal(t, "12:00:01", m.Frame().LastUpdate)
}

func TestModel_PausedTickKeepsState(t *testing.T) {
	src := simtesting.NewNeutralSource()
	m := newTestModel(src)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, m.State().Paused)

	before := m.State()
	calls := src.Calls()
	m, cmd := update(t, m, tickMsg(t0.Add(time.Second)))

	assert.NotNil(t, cmd, "ticking continues while paused")
	assert.Equal(t, before, m.State())
	assert.Equal(t, calls, src.Calls())
}

func TestModel_AlertLifecycle(t *testing.T) {
	m := newTestModel(popupSource(2, 1, 2))

	m = tick(t, m, 1)
	s := m.State()
	require.True(t, s.Alert.Visible)
	assert.Equal(t, uint64(1), s.Alert.Generation)

	m, _ = update(t, m, alertExpiredMsg{gen: 1})
	assert.False(t, m.State().Alert.Visible)
}

func TestModel_StaleExpiryKeepsNewerAlert(t *testing.T) {
	buf := logger.NewBufferLogger()
	src := popupSource(2, 1, 2)
	m := NewModel(sim.NewState(src, t0), src, Options{Logger: buf})

	m = tick(t, m, 1)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.False(t, m.State().Alert.Visible)

	m = tick(t, m, 2)
	require.Equal(t, uint64(2), m.State().Alert.Generation)

	m, _ = update(t, m, alertExpiredMsg{gen: 1})
	assert.True(t, m.State().Alert.Visible, "the first popup's timer must not hide the second")
	assert.True(t, buf.HasLevel("debug"))
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(nil)
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 140, Height: 50})

	assert.Nil(t, cmd)
	assert.Equal(t, 140, m.width)
	assert.Equal(t, 50, m.height)
}

func TestModel_Layout(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{0, LayoutStandard},
		{60, LayoutMinimal},
		{79, LayoutMinimal},
		{80, LayoutCompact},
		{119, LayoutCompact},
		{120, LayoutStandard},
		{159, LayoutStandard},
		{160, LayoutWide},
		{240, LayoutWide},
	}

	for _, tt := range tests {
		m := newTestModel(nil)
		m.width = tt.width
		assert.Equal(t, tt.want, m.Layout(), "width %d", tt.width)
	}
}

func TestBreakpoint_Constants(t *testing.T) {
	assert.Equal(t, 80, BreakpointCompact)
	assert.Equal(t, 120, BreakpointStandard)
	assert.Equal(t, 160, BreakpointWide)
	assert.Equal(t, 24, HeightMinimal)
}
