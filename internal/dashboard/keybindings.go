package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/nexus/internal/sim"
)

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyPause      = " "
	KeyPauseAlt   = "p"
	KeyDismiss    = "d"
	KeyDismissAlt = "x"
	KeyRange1H    = "1"
	KeyRange24H   = "2"
	KeyRange7D    = "3"
	KeyMenuNext   = "tab"
	KeyMenuPrev   = "shift+tab"
	KeyToggleHelp = "?"
	KeyClose      = "esc"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key == KeyClose {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyPause, KeyPauseAlt:
		if m.state.TogglePause() {
			m.log.Info("simulation paused")
		} else {
			m.log.Info("simulation resumed")
		}
		return true, nil

	case KeyDismiss, KeyDismissAlt:
		m.state.DismissAlert()
		return true, nil

	case KeyRange1H:
		m.state.TimeRange = sim.Range1H
		return true, nil

	case KeyRange24H:
		m.state.TimeRange = sim.Range24H
		return true, nil

	case KeyRange7D:
		m.state.TimeRange = sim.Range7D
		return true, nil

	case KeyMenuNext:
		m.state.Menu = m.state.Menu.Next()
		return true, nil

	case KeyMenuPrev:
		m.state.Menu = m.state.Menu.Prev()
		return true, nil
	}

	return false, nil
}
