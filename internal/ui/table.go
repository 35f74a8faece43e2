package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/nexus/internal/sim"
)

const serverLoadBarWidth = 8

// serverColumns lay out the plain-text server grid.
var serverColumns = []table.Column{
	{Title: "", Width: 1},
	{Title: "SERVER", Width: 8},
	{Title: "REGION", Width: 14},
	{Title: "STATUS", Width: 8},
	{Title: "LOAD", Width: serverLoadBarWidth + 5},
}

// statusGlyph is the uncolored status symbol. Table cells are truncated by
// width, so they must not carry escape codes.
func statusGlyph(status string) string {
	switch status {
	case sim.ServerOnline.String():
		return SymbolOnline
	case sim.ServerWarning.String():
		return SymbolWarning
	default:
		return SymbolOffline
	}
}

// newStaticTable builds an unfocused bubbles table tall enough for every row.
func newStaticTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // header line plus its bottom border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.Foreground(ColorPrimary)
	// Nothing is selected in a static table.
	s.Selected = lipgloss.NewStyle()

	t.SetStyles(s)
	return t
}

// RenderServerTable renders the server grid: glyph, id, region, status and
// a load bar. It returns "" when there are no servers.
func RenderServerTable(servers []sim.ServerCard) string {
	if len(servers) == 0 {
		return ""
	}

	rows := make([]table.Row, len(servers))
	for i, s := range servers {
		rows[i] = table.Row{
			statusGlyph(s.Status),
			s.ID,
			s.Name,
			s.Status,
			PlainProgressBar(float64(s.Load), serverLoadBarWidth) + " " + s.LoadText,
		}
	}
	return newStaticTable(serverColumns, rows).View()
}
