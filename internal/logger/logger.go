// Package logger provides a small leveled logging interface for keyline
// components. Packages log through Logger without caring where the output
// ends up: stderr for one-shot commands, a log file while the interactive
// session owns the terminal.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// DebugEnv enables debug output when set to any non-empty value.
const DebugEnv = "KEYLINE_DEBUG"

// Level is the severity of a log message.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// DebugEnabled reports whether debug output is on for this process.
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// stdLogger writes through the standard log package, so tea.LogToFile
// redirects it along with everything else.
type stdLogger struct {
	prefix  string
	verbose bool
}

// NewEnvLogger creates a logger whose debug output follows KEYLINE_DEBUG.
// The prefix is prepended to all log messages (e.g. "[keys]").
func NewEnvLogger(prefix string) Logger {
	return &stdLogger{prefix: prefix}
}

// NewVerboseLogger creates a logger that always prints debug messages (--verbose).
func NewVerboseLogger(prefix string) Logger {
	return &stdLogger{prefix: prefix, verbose: true}
}

func (l *stdLogger) logf(level Level, format string, args ...interface{}) {
	var sb strings.Builder
	if l.prefix != "" {
		sb.WriteString(l.prefix)
		sb.WriteString(" ")
	}
	if level == LevelWarn || level == LevelError {
		sb.WriteString(strings.ToUpper(string(level)))
		sb.WriteString(": ")
	}
	sb.WriteString(fmt.Sprintf(format, args...))
	log.Print(sb.String())
}

func (l *stdLogger) Debug(format string, args ...interface{}) {
	if l.verbose || DebugEnabled() {
		l.logf(LevelDebug, format, args...)
	}
}

func (l *stdLogger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

func (l *stdLogger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

func (l *stdLogger) Error(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Entry is one captured log message.
type Entry struct {
	Level   Level
	Message string
}

// BufferLogger captures log messages for tests. It is safe for use from
// the config watcher goroutine.
type BufferLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) add(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.add(LevelDebug, format, args...) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.add(LevelInfo, format, args...) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.add(LevelWarn, format, args...) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.add(LevelError, format, args...) }

// Entries returns a copy of everything logged so far.
func (l *BufferLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Logged reports whether a message at level containing substr was captured.
func (l *BufferLogger) Logged(level Level, substr string) bool {
	for _, e := range l.Entries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
