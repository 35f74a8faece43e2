package logger

import (
	"fmt"
	"sync"
)

// LogMessage is one captured call.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger records messages in memory for tests. It is safe to use
// from the engine's timer goroutines.
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger returns an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) record(level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.record("debug", format, args) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.record("info", format, args) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.record("warn", format, args) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.record("error", format, args) }

// HasLevel reports whether anything was logged at level.
func (l *BufferLogger) HasLevel(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Last returns the most recent message, or a zero LogMessage.
func (l *BufferLogger) Last() LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.Messages) == 0 {
		return LogMessage{}
	}
	return l.Messages[len(l.Messages)-1]
}
