package handler

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/logtap/logtap/core"
)

// Console stream names recognized as sink descriptors. Anything else
// is a file-path template.
const (
	StreamLog   = "log"
	StreamInfo  = "info"
	StreamWarn  = "warn"
	StreamError = "error"
	StreamDebug = "debug"
	StreamTrace = "trace"
)

// IsStream reports whether a sink descriptor names a console stream
func IsStream(name string) bool {
	switch name {
	case StreamLog, StreamInfo, StreamWarn, StreamError, StreamDebug, StreamTrace:
		return true
	}
	return false
}

// Console multiplexes the six named output streams onto two writers:
// log/info/debug on the out writer, warn/error/trace on the err
// writer. Each print appends exactly one line terminator; the
// dispatcher strips the rendered EOL before handing the string over.
type Console struct {
	out      io.Writer
	err      io.Writer
	noFormat bool
	colorOut bool
	colorErr bool
	mu       sync.Mutex
}

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Out receives the log, info, and debug streams (default: os.Stdout)
	Out io.Writer
	// Err receives the warn, error, and trace streams (default: os.Stderr)
	Err io.Writer
	// NoFormat passes the raw argument list through instead of the
	// rendered string (the trace stream always gets the rendered string)
	NoFormat bool
	// Color enables per-level ANSI coloring on terminal writers
	Color bool
}

// NewConsole creates a console sink
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	return &Console{
		out:      cfg.Out,
		err:      cfg.Err,
		noFormat: cfg.NoFormat,
		colorOut: cfg.Color && isTerminal(cfg.Out),
		colorErr: cfg.Color && isTerminal(cfg.Err),
	}
}

// Print writes one line to the named stream. In no-format mode the
// raw original arguments pass through for every stream except trace.
// Unknown stream names fall back to the log stream.
func (c *Console) Print(stream string, level core.Level, rendered string, raw []any) error {
	w, colored := c.writerFor(stream)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.noFormat && stream != StreamTrace {
		_, err := fmt.Fprintln(w, raw...)
		return err
	}

	if colored {
		rendered = levelColor(level).Sprint(rendered)
	}
	_, err := fmt.Fprintln(w, rendered)
	return err
}

func (c *Console) writerFor(stream string) (io.Writer, bool) {
	switch stream {
	case StreamWarn, StreamError, StreamTrace:
		return c.err, c.colorErr
	default:
		return c.out, c.colorOut
	}
}

// levelColors follows the usual terminal conventions: warnings
// yellow, errors red, debug/trace dimmed.
var levelColors = map[core.Level]*color.Color{
	core.TraceLevel: color.New(color.FgHiBlack),
	core.DebugLevel: color.New(color.FgCyan),
	core.InfoLevel:  color.New(color.FgGreen),
	core.WarnLevel:  color.New(color.FgYellow),
	core.ErrorLevel: color.New(color.FgRed),
	core.FatalLevel: color.New(color.FgRed, color.Bold),
}

func levelColor(l core.Level) *color.Color {
	if c, ok := levelColors[l]; ok {
		return c
	}
	return color.New(color.Reset)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
