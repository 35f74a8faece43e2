// Package logger is the printf-style logging interface used across nexus.
// Components depend on Logger only; the zerolog-backed implementations
// live here, along with test doubles.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// DebugEnv forces debug level on every zerolog-backed logger when set.
const DebugEnv = "NEXUS_DEBUG"

// Logger is implemented by every nexus logger. Messages are fmt formats.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

type zeroLogger struct {
	zl zerolog.Logger
}

// New returns a logger writing JSON lines to w. A non-empty component is
// attached to every line.
func New(w io.Writer, level zerolog.Level, component string) Logger {
	if os.Getenv(DebugEnv) != "" {
		level = zerolog.DebugLevel
	}
	c := zerolog.New(w).Level(level).With().Timestamp()
	if component != "" {
		c = c.Str("component", component)
	}
	return zeroLogger{zl: c.Logger()}
}

// NewConsoleLogger returns an uncolored human-readable logger, used on
// stderr by the headless commands.
func NewConsoleLogger(w io.Writer, level zerolog.Level, component string) Logger {
	return New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}, level, component)
}

// NewFileLogger appends JSON lines to path. Close the returned closer when
// done. The dashboard logs here because the TUI owns the terminal.
func NewFileLogger(path string, level zerolog.Level, component string) (Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level, component), f, nil
}

var levelNames = map[string]zerolog.Level{
	"":        zerolog.InfoLevel,
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

// ParseLevel maps a config level name to a zerolog level. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return l, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
}

func (l zeroLogger) Debug(format string, args ...interface{}) { l.zl.Debug().Msgf(format, args...) }
func (l zeroLogger) Info(format string, args ...interface{})  { l.zl.Info().Msgf(format, args...) }
func (l zeroLogger) Warn(format string, args ...interface{})  { l.zl.Warn().Msgf(format, args...) }
func (l zeroLogger) Error(format string, args ...interface{}) { l.zl.Error().Msgf(format, args...) }

type discard struct{}

// Noop returns a logger that drops everything.
func Noop() Logger { return discard{} }

func (discard) Debug(string, ...interface{}) {}
func (discard) Info(string, ...interface{})  {}
func (discard) Warn(string, ...interface{})  {}
func (discard) Error(string, ...interface{}) {}
