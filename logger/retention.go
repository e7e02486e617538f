package logger

import (
	"strings"

	"github.com/logtap/logtap/core"
	"github.com/logtap/logtap/handler"
)

// retention is the bounded FIFO of retained entries. All access goes
// through the Logger under its mutex.
type retention struct {
	entries []core.Entry
	cap     int
}

func newRetention(capacity int) *retention {
	return &retention{
		entries: make([]core.Entry, 0, capacity),
		cap:     capacity,
	}
}

// append pushes to the tail, evicting from the head so that length
// never exceeds capacity
func (r *retention) append(e core.Entry) {
	r.entries = append(r.entries, e)
	if drop := len(r.entries) - r.cap; drop > 0 {
		r.entries = append(r.entries[:0], r.entries[drop:]...)
	}
}

// drain returns the retained entries in insertion order and empties
// the buffer; no entry is both returned and retained
func (r *retention) drain() []core.Entry {
	out := r.entries
	r.entries = make([]core.Entry, 0, r.cap)
	return out
}

// GetEntries drains the retention buffer: it returns all retained
// entries in insertion order and clears the buffer. A second call
// without intervening log calls returns an empty slice. Returns nil
// when retention is disabled.
func (l *Logger) GetEntries() []core.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.retain == nil {
		return nil
	}
	return l.retain.drain()
}

// DisplayEntries replays drained entries through the console, picking
// the stream by severity: debug/trace to the debug stream, error and
// fatal to the error stream, warn to warn, info to info, anything
// else to the log stream. With reversed set, entries are processed
// tail to head.
func (l *Logger) DisplayEntries(entries []core.Entry, reversed bool) *Logger {
	for i := range entries {
		e := entries[i]
		if reversed {
			e = entries[len(entries)-1-i]
		}
		msg := strings.TrimSuffix(e.Message, l.id.EOL)
		if err := l.console.Print(displayStream(e.Level), e.Level, msg, []any{msg}); err != nil {
			l.writeError(err)
		}
	}
	return l
}

func displayStream(level core.Level) string {
	switch level {
	case core.DebugLevel, core.TraceLevel:
		return handler.StreamDebug
	case core.ErrorLevel, core.FatalLevel:
		return handler.StreamError
	case core.WarnLevel:
		return handler.StreamWarn
	case core.InfoLevel:
		return handler.StreamInfo
	default:
		return handler.StreamLog
	}
}
