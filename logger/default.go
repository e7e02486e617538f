package logger

import (
	"sync"

	"github.com/logtap/logtap/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New(Config{})
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log logs at the info level using the default logger
func Log(args ...any) *Logger {
	return Default().Log(args...)
}

// Trace logs at the trace level using the default logger
func Trace(args ...any) *Logger {
	return Default().Trace(args...)
}

// Debug logs at the debug level using the default logger
func Debug(args ...any) *Logger {
	return Default().Debug(args...)
}

// Debuglevel logs at the debug level with a verbosity cutoff check
// using the default logger
func Debuglevel(level int, args ...any) *Logger {
	return Default().Debuglevel(level, args...)
}

// Info logs at the info level using the default logger
func Info(args ...any) *Logger {
	return Default().Info(args...)
}

// Warn logs at the warn level using the default logger
func Warn(args ...any) *Logger {
	return Default().Warn(args...)
}

// Error logs at the error level using the default logger
func Error(args ...any) *Logger {
	return Default().Error(args...)
}

// Fatal logs at the fatal level using the default logger
func Fatal(args ...any) *Logger {
	return Default().Fatal(args...)
}

// File writes directly to the named file using the default logger
func File(filename string, args ...any) *Logger {
	return Default().File(filename, args...)
}

// GetEntries drains the default logger's retention buffer
func GetEntries() []core.Entry {
	return Default().GetEntries()
}

// DisplayEntries replays drained entries through the default logger's console
func DisplayEntries(entries []core.Entry, reversed bool) *Logger {
	return Default().DisplayEntries(entries, reversed)
}
