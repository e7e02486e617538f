package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/logtap/logtap/core"
	"github.com/logtap/logtap/formatter"
	"github.com/logtap/logtap/handler"
	"github.com/logtap/logtap/router"
)

// DefaultFormat is the render template used when none is configured
const DefaultFormat = "%t %L %m%E"

// Config holds the construction options. The zero value yields a
// logger with the default routing (log/error/trace console streams),
// the default template, and debug and trace disabled.
type Config struct {
	// Targets are the routing rule specs; empty means the defaults
	Targets []router.Target
	// LogLocation is the base directory prefix for non-override file
	// sinks; a trailing separator is stripped
	LogLocation string
	// Format is the default render template
	Format string
	// ConsoleNoFormat passes raw arguments through to console sinks
	// instead of the rendered string
	ConsoleNoFormat bool
	// Color enables per-level coloring on terminal console writers
	Color bool
	// Trace is the initial trace-enabled flag
	Trace bool
	// KeepLast, when positive, retains the last N entries in memory
	// instead of dispatching the first matching rule to its sink
	KeepLast int
	// Debug is the initial debug-enabled flag
	Debug bool
	// DebugLevel is the initial debug cutoff; -1 means unlimited.
	// Setting a non-zero cutoff implies Debug
	DebugLevel int
	// ConsoleOut and ConsoleErr override the console writers (tests,
	// capture). Defaults are os.Stdout and os.Stderr
	ConsoleOut io.Writer
	ConsoleErr io.Writer
	// OnWriteError receives sink write failures. With a nil hook they
	// are dropped silently; the logging calls themselves never fail
	// either way
	OnWriteError func(error)
}

// Logger routes each log call through the compiled rule table,
// renders the matching templates, and hands the results to console
// streams, files, or the retention buffer.
//
// The mutable state (gating flags, debug cutoff, retention buffer) is
// guarded by a single mutex, so a Logger is safe for concurrent use.
type Logger struct {
	table   router.Table
	fmtr    *formatter.Formatter
	console *handler.Console
	files   *handler.FileWriter
	id      core.Identity
	onErr   func(error)

	mu         sync.Mutex
	doDebug    bool
	doTrace    bool
	debugLevel int
	retain     *retention
}

// New creates a Logger from the given configuration
func New(cfg Config) *Logger {
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}

	id := core.CurrentIdentity()

	l := &Logger{
		table: router.Compile(cfg.Targets, cfg.Format),
		fmtr:  formatter.New(id),
		console: handler.NewConsole(handler.ConsoleConfig{
			Out:      cfg.ConsoleOut,
			Err:      cfg.ConsoleErr,
			NoFormat: cfg.ConsoleNoFormat,
			Color:    cfg.Color,
		}),
		files:      handler.NewFileWriter(cfg.LogLocation, id),
		id:         id,
		onErr:      cfg.OnWriteError,
		doDebug:    cfg.Debug,
		doTrace:    cfg.Trace,
		debugLevel: -1,
	}

	if cfg.DebugLevel != 0 {
		l.debugLevel = cfg.DebugLevel
		l.doDebug = true
	}
	if cfg.KeepLast > 0 {
		l.retain = newRetention(cfg.KeepLast)
	}

	return l
}

// emit is the single dispatch path every level-specific entry point
// funnels into. It never fails: render errors cannot occur and sink
// write errors go to the OnWriteError hook.
func (l *Logger) emit(level core.Level, args []any) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level == core.TraceLevel && !l.doTrace {
		return l
	}
	if level == core.DebugLevel && !l.doDebug {
		return l
	}

	// The file level consumes its leading argument as the override
	// filename rather than message content
	var overrideFile string
	if level == core.FileLevel {
		if len(args) == 0 {
			return l
		}
		if s, ok := args[0].(string); ok {
			overrideFile = s
		} else {
			overrideFile = fmt.Sprint(args[0])
		}
		args = args[1:]
		if overrideFile == "" {
			return l
		}
	}

	// One retained entry per dispatch call, independent of how many
	// rules match
	retained := false

	for _, rule := range l.table.Rules() {
		if !rule.Matches(level) {
			continue
		}

		template := rule.Format
		if level == core.TraceLevel {
			template += "%S"
		}
		rendered := l.fmtr.Render(template, level, args)

		if l.retain != nil && !retained {
			retained = true
			l.retain.append(core.Entry{Level: level, Message: rendered})
			continue
		}

		sink := rule.Sink
		if level == core.FileLevel {
			sink = overrideFile
		}

		if handler.IsStream(sink) {
			// Console sinks append their own terminator
			out := strings.TrimSuffix(rendered, l.id.EOL)
			if err := l.console.Print(sink, level, out, args); err != nil {
				l.writeError(err)
			}
			continue
		}

		path := l.files.ResolvePath(sink, level)
		if err := l.files.Append(path, rendered); err != nil {
			l.writeError(err)
		}
	}

	return l
}

func (l *Logger) writeError(err error) {
	if l.onErr != nil {
		l.onErr(err)
	}
}

// Log logs at the info level ("log" and "info" share the same slot in
// the level table)
func (l *Logger) Log(args ...any) *Logger {
	return l.emit(core.InfoLevel, args)
}

// Trace logs at the trace level; a no-op unless tracing is enabled
func (l *Logger) Trace(args ...any) *Logger {
	return l.emit(core.TraceLevel, args)
}

// Debug logs at the debug level; a no-op unless debugging is enabled
func (l *Logger) Debug(args ...any) *Logger {
	return l.emit(core.DebugLevel, args)
}

// Info logs at the info level
func (l *Logger) Info(args ...any) *Logger {
	return l.emit(core.InfoLevel, args)
}

// Warn logs at the warn level
func (l *Logger) Warn(args ...any) *Logger {
	return l.emit(core.WarnLevel, args)
}

// Error logs at the error level
func (l *Logger) Error(args ...any) *Logger {
	return l.emit(core.ErrorLevel, args)
}

// Fatal logs at the fatal level. It is a routing tag only and does
// not terminate the process.
func (l *Logger) Fatal(args ...any) *Logger {
	return l.emit(core.FatalLevel, args)
}

// File writes directly to the named file, which may itself contain
// path tokens (%p, %h, %L, %l)
func (l *Logger) File(filename string, args ...any) *Logger {
	all := make([]any, 0, len(args)+1)
	all = append(all, filename)
	all = append(all, args...)
	return l.emit(core.FileLevel, all)
}

// Debuglevel logs at the debug level when the configured cutoff is at
// least as permissive as the requested verbosity. Higher values mean
// more verbose detail; a cutoff of -1 admits everything.
func (l *Logger) Debuglevel(level int, args ...any) *Logger {
	l.mu.Lock()
	doDebug, cutoff := l.doDebug, l.debugLevel
	l.mu.Unlock()

	if !doDebug {
		return l
	}
	if cutoff != -1 && cutoff < level {
		return l
	}
	return l.emit(core.DebugLevel, args)
}

// EnableDebug turns on debug-level dispatch
func (l *Logger) EnableDebug() *Logger {
	l.mu.Lock()
	l.doDebug = true
	l.mu.Unlock()
	return l
}

// DisableDebug suppresses Debug and Debuglevel calls entirely
func (l *Logger) DisableDebug() *Logger {
	l.mu.Lock()
	l.doDebug = false
	l.mu.Unlock()
	return l
}

// EnableTrace turns on trace-level dispatch
func (l *Logger) EnableTrace() *Logger {
	l.mu.Lock()
	l.doTrace = true
	l.mu.Unlock()
	return l
}

// DisableTrace suppresses Trace calls entirely
func (l *Logger) DisableTrace() *Logger {
	l.mu.Lock()
	l.doTrace = false
	l.mu.Unlock()
	return l
}

// SetDebugLevel sets the verbosity cutoff and enables debugging. Any
// negative value means unlimited. Use DisableDebug to turn debugging
// off again.
func (l *Logger) SetDebugLevel(level int) *Logger {
	if level < 0 {
		level = -1
	}
	l.mu.Lock()
	l.debugLevel = level
	l.doDebug = true
	l.mu.Unlock()
	return l
}
