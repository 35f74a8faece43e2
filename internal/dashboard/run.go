// Package dashboard provides the full-screen Bubble Tea view of the
// simulated operations dashboard: headline metric cards, a traffic chart,
// the health gauge, the server grid, the activity log and the alert popup.
package dashboard

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/nexus/internal/errors"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Run starts the dashboard TUI and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, m Model) error {
	program := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			// Cancelled from outside, e.g. by a signal.
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrRender,
			"Dashboard stopped unexpectedly",
			"Try 'nexus snapshot' or pipe the output to get plain text instead")
	}
	return nil
}
