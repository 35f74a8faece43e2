package ui

// Unicode symbols for status indicators.
const (
	SymbolOnline  = "●"
	SymbolWarning = "◐"
	SymbolOffline = "○"
	SymbolUp      = "▲"
	SymbolDown    = "▼"
	SymbolAlert   = "⚠"
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolPaused  = "⏸"
	SymbolLive    = "◉"
)
