package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Logger provides structured logging with level control
type Logger struct {
	level  string
	out    io.Writer
	errOut io.Writer
}

var levelPriority = map[string]int{
	"DEBUG":   0,
	"INFO":    1,
	"WARNING": 2,
	"ERROR":   3,
}

// New creates a new logger instance. Debug mode forces the level to DEBUG.
func New(level string, debug bool) *Logger {
	upper := strings.ToUpper(level)
	if _, ok := levelPriority[upper]; !ok {
		upper = "INFO"
	}
	if debug {
		upper = "DEBUG"
	}
	return &Logger{
		level:  upper,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// shouldLog checks if messages at the given level should be logged
func (l *Logger) shouldLog(level string) bool {
	current, ok := levelPriority[l.level]
	if !ok {
		current = levelPriority["INFO"]
	}
	check, ok := levelPriority[level]
	if !ok {
		return false
	}
	return check >= current
}

// formatLog formats a log message with timestamp and padded level
// Format: "2026-01-05 14:24:38 INFO     message"
func (l *Logger) formatLog(level string, format string, args ...interface{}) string {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	return fmt.Sprintf("%s %-8s %s\n", timestamp, level, message)
}

// Debug logs debug messages (only if debug logging is enabled)
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.shouldLog("DEBUG") {
		fmt.Fprint(l.out, l.formatLog("DEBUG", format, args...))
	}
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	if l.shouldLog("INFO") {
		fmt.Fprint(l.out, l.formatLog("INFO", format, args...))
	}
}

// Warning logs warning messages
func (l *Logger) Warning(format string, args ...interface{}) {
	if l.shouldLog("WARNING") {
		fmt.Fprint(l.out, l.formatLog("WARNING", format, args...))
	}
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	if l.shouldLog("ERROR") {
		fmt.Fprint(l.errOut, l.formatLog("ERROR", format, args...))
	}
}

// IsDebugEnabled returns true if debug logging is enabled
func (l *Logger) IsDebugEnabled() bool {
	return l.shouldLog("DEBUG")
}

// Level returns the current log level
func (l *Logger) Level() string {
	return l.level
}
