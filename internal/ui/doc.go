// Package ui renders dashboard frames as plain terminal text.
//
// This is the output used when nexus is not attached to a terminal (piped
// dashboard output and 'nexus snapshot'). The full-screen view lives in the
// dashboard package; both draw the same sim.Frame.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Online servers, healthy values, upward trends
//	ColorError     (red)    - Offline servers, errors, metrics past threshold
//	ColorWarning   (yellow) - Warnings and loaded servers
//	ColorInfo      (cyan)   - Informational log lines, chart series
//	ColorMuted     (gray)   - Labels and timestamps
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
//
// # Components
//
//	FormatFrame   - Multi-line block with every panel of the dashboard
//	FormatLine    - One-line summary, one per tick when streaming
//	TextRenderer  - sim.Renderer writing either form to an io.Writer
//	RenderSparkline, RenderProgressBar, RenderServerTable - building blocks
package ui
