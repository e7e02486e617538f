package logger

import (
	"context"
	"log/slog"

	"github.com/logtap/logtap/core"
)

// SlogHandler returns a slog.Handler that forwards records to this
// Logger, so logtap can serve as the backend for code that logs
// through the standard library:
//
//	slog.SetDefault(slog.New(log.SlogHandler()))
//
// Attributes are appended to the message as key=value arguments and
// group names dot-prefix the keys.
func (l *Logger) SlogHandler() slog.Handler {
	return &slogBridge{logger: l}
}

type slogBridge struct {
	logger *Logger
	attrs  []string
	group  string
}

// Enabled reports whether records at the given level reach a sink.
// Debug records honor the logger's debug gate; everything else is
// always dispatched.
func (b *slogBridge) Enabled(_ context.Context, level slog.Level) bool {
	if level < slog.LevelInfo {
		b.logger.mu.Lock()
		defer b.logger.mu.Unlock()
		return b.logger.doDebug
	}
	return true
}

// Handle converts a record to a variadic log call on the wrapped Logger
func (b *slogBridge) Handle(_ context.Context, record slog.Record) error {
	args := make([]any, 0, 1+len(b.attrs)+record.NumAttrs())
	args = append(args, record.Message)
	for _, a := range b.attrs {
		args = append(args, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		args = append(args, attrString(b.group, a))
		return true
	})

	b.logger.emit(slogLevelToCore(record.Level), args)
	return nil
}

// WithAttrs returns a bridge carrying additional pre-formatted attributes
func (b *slogBridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]string, len(b.attrs), len(b.attrs)+len(attrs))
	copy(newAttrs, b.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, attrString(b.group, a))
	}
	return &slogBridge{logger: b.logger, attrs: newAttrs, group: b.group}
}

// WithGroup returns a bridge that prefixes subsequent attribute keys
func (b *slogBridge) WithGroup(name string) slog.Handler {
	if name == "" {
		return b
	}
	group := name
	if b.group != "" {
		group = b.group + "." + name
	}
	newAttrs := make([]string, len(b.attrs))
	copy(newAttrs, b.attrs)
	return &slogBridge{logger: b.logger, attrs: newAttrs, group: group}
}

func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

func attrString(group string, a slog.Attr) string {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}
	return key + "=" + a.Value.Resolve().String()
}
