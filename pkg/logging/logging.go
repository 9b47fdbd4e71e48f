package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel reads a level name as String prints it, ignoring case.
func ParseLevel(s string) (LogLevel, error) {
	for _, l := range []LogLevel{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// LogEntry is the structured log entry passed to the TUI.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

// sink is where log calls end up. In TUI mode entries go to a channel the
// screen drains, and are mirrored to the handler. In CLI mode only the
// handler is used.
type sink struct {
	tui       bool
	entries   chan LogEntry
	logger    *slog.Logger
	threshold LogLevel
}

var (
	mu      sync.RWMutex
	current sink
	dropped atomic.Int64
)

const tuiChannelBufferSize = 2048

func newLogger(level LogLevel, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.SlogLevel()}))
}

// InitForCLI writes log output to output, dropping anything below level.
func InitForCLI(level LogLevel, output io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	current = sink{logger: newLogger(level, output), threshold: level}
	slog.SetDefault(current.logger)
}

// InitForTUI returns the channel the screen reads log entries from. The
// entries are also written to mirror, which may be nil; the terminal
// itself belongs to the screen.
func InitForTUI(level LogLevel, mirror io.Writer) <-chan LogEntry {
	mu.Lock()
	defer mu.Unlock()

	if mirror == nil {
		mirror = io.Discard
	}
	current = sink{
		tui:       true,
		entries:   make(chan LogEntry, tuiChannelBufferSize),
		logger:    newLogger(level, mirror),
		threshold: level,
	}
	dropped.Store(0)
	slog.SetDefault(current.logger)
	return current.entries
}

// Dropped is the number of entries the screen did not drain in time.
func Dropped() int64 {
	return dropped.Load()
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}
	now := time.Now()

	mu.RLock()
	defer mu.RUnlock()

	if current.logger == nil {
		fmt.Fprintf(os.Stderr, "[LOGGING_ERROR] Logger not initialized. Log: %s [%s] %s\n", now.Format(time.RFC3339), level, msg)
		return
	}
	if level < current.threshold {
		return
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	current.logger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)

	if !current.tui || current.entries == nil {
		return
	}
	// Never block the caller; the UI goroutine logs too.
	select {
	case current.entries <- LogEntry{Timestamp: now, Level: level, Subsystem: subsystem, Message: msg, Err: err}:
	default:
		dropped.Add(1)
	}
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// CloseTUIChannel ends TUI mode and closes the entry channel. Later log
// calls still reach the mirror.
func CloseTUIChannel() {
	mu.Lock()
	defer mu.Unlock()
	if current.entries != nil {
		close(current.entries)
		current.entries = nil
	}
	current.tui = false
}
