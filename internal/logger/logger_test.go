package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		level     zerolog.Level
		expectLog bool
	}{
		{
			name:      "debug dropped at info level",
			level:     zerolog.InfoLevel,
			expectLog: false,
		},
		{
			name:      "debug kept at debug level",
			level:     zerolog.DebugLevel,
			expectLog: true,
		},
		{
			name:      "NEXUS_DEBUG forces debug",
			envValue:  "1",
			level:     zerolog.ErrorLevel,
			expectLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(DebugEnv, tt.envValue)
			} else {
				os.Unsetenv(DebugEnv)
			}

			var buf bytes.Buffer
			l := New(&buf, tt.level, "test")
			l.Debug("debug message %s", "arg")

			if tt.expectLog {
				assert.Contains(t, buf.String(), `"message":"debug message arg"`)
				assert.Contains(t, buf.String(), `"component":"test"`)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNew_WritesLevelNames(t *testing.T) {
	os.Unsetenv(DebugEnv)
	var buf bytes.Buffer
	l := New(&buf, zerolog.InfoLevel, "")

	l.Info("info %d", 42)
	l.Warn("warn")
	l.Error("error")

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"message":"info 42"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"level":"error"`)
	assert.NotContains(t, out, "component")
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus.log")

	l, closer, err := NewFileLogger(path, zerolog.InfoLevel, "dashboard")
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)

	_, _, err = NewFileLogger(filepath.Join(t.TempDir(), "missing", "x.log"), zerolog.InfoLevel, "")
	assert.Error(t, err)
}

func TestNewConsoleLogger(t *testing.T) {
	t.Setenv(DebugEnv, "")
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, zerolog.InfoLevel, "engine")

	l.Debug("hidden")
	l.Warn("render failed: %s", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "render failed: boom")
	assert.Contains(t, out, "component=engine")
	assert.NotContains(t, out, "\x1b[", "console output is uncolored")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"INFO", zerolog.InfoLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()
	assert.Equal(t, LogMessage{}, l.Last())

	l.Debug("debug %s", "msg")
	l.Info("info %s", "msg")
	l.Warn("warn %s", "msg")
	l.Error("error %s", "msg")

	require.Len(t, l.Messages, 4)
	assert.Equal(t, LogMessage{Level: "debug", Message: "debug msg"}, l.Messages[0])
	assert.Equal(t, LogMessage{Level: "error", Message: "error msg"}, l.Last())
	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("fatal"))
}

func TestBufferLogger_Concurrent(t *testing.T) {
	l := NewBufferLogger()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Info("tick %d", i)
		}()
	}
	wg.Wait()
	assert.Len(t, l.Messages, 8)
}

func TestNoop(t *testing.T) {
	var l Logger = Noop()
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Error("y %d", 1)
	})
}
