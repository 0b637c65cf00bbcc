// Package logger provides the levelled logger used across grepnav.
//
// Output lines are prefixed with a [HH:MM:SS] timestamp and the level name.
// Colour is applied only when the destination is a terminal, so log files and
// pipes stay plain text. The interactive UI owns the terminal while it runs,
// so in that mode logs are written to a file or discarded.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level constants, ordered from most to least verbose.
const (
	levelTrace int = iota
	levelDebug
	levelInfo
	levelWarn
	levelError
)

// Logger is the logging surface the domain and adapters depend on.
type Logger interface {
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// ConsoleLogger writes levelled messages to an io.Writer. It is safe for
// concurrent use.
type ConsoleLogger struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
	now         func() time.Time
}

// NewConsoleLogger creates a ConsoleLogger writing to w. Valid levels are
// trace, debug, info, warn and error (case-insensitive); anything else falls
// back to info. A nil writer discards every message.
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		level:       levelToInt(NormalizeLevel(level)),
		colorOutput: isTerminal(w),
		now:         time.Now,
	}
}

// NormalizeLevel lowercases and validates a level name, defaulting to info.
func NormalizeLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	default:
		return "info"
	}
}

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	normalized := strings.ToLower(strings.TrimSpace(level))

	return normalized == NormalizeLevel(normalized) && normalized != ""
}

func levelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// isTerminal reports whether w is a terminal that should receive colour.
// fatih/color already honours NO_COLOR through color.NoColor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}

	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return !color.NoColor
}

// Tracef logs a trace-level message.
func (cl *ConsoleLogger) Tracef(format string, args ...any) {
	cl.log(levelTrace, "TRACE", format, args...)
}

// Debugf logs a debug-level message.
func (cl *ConsoleLogger) Debugf(format string, args ...any) {
	cl.log(levelDebug, "DEBUG", format, args...)
}

// Infof logs an info-level message.
func (cl *ConsoleLogger) Infof(format string, args ...any) {
	cl.log(levelInfo, "INFO", format, args...)
}

// Warnf logs a warning-level message.
func (cl *ConsoleLogger) Warnf(format string, args ...any) {
	cl.log(levelWarn, "WARN", format, args...)
}

// Errorf logs an error-level message.
func (cl *ConsoleLogger) Errorf(format string, args ...any) {
	cl.log(levelError, "ERROR", format, args...)
}

func (cl *ConsoleLogger) log(level int, name, format string, args ...any) {
	if cl.writer == nil || level < cl.level {
		return
	}

	message := fmt.Sprintf(format, args...)
	ts := cl.now().Format("15:04:05")

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	label := name
	if cl.colorOutput {
		label = colorFor(name).Sprint(name)
	}

	_, _ = fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, label, message)
}

func colorFor(level string) *color.Color {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack)
	case "DEBUG":
		return color.New(color.FgCyan)
	case "WARN":
		return color.New(color.FgYellow)
	case "ERROR":
		return color.New(color.FgRed)
	default:
		return color.New(color.FgBlue)
	}
}

type nopLogger struct{}

func (nopLogger) Tracef(string, ...any) {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

// OrNop returns l, or a discarding logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}

	return l
}
