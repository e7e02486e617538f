package formatter

import (
	"runtime"
	"strconv"
	"strings"
)

const modulePrefix = "github.com/logtap/logtap/"

// captureStack renders the calling goroutine's stack for the %S token.
// Leading frames belonging to this module are trimmed so the first
// reported frame is the caller of the logging operation. Each frame
// lands on its own line, prefixed with the platform EOL.
func captureStack(eol string) string {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var b strings.Builder
	skipping := true

	for {
		fr, more := frames.Next()
		if skipping && strings.HasPrefix(fr.Function, modulePrefix) {
			if !more {
				break
			}
			continue
		}
		skipping = false

		b.WriteString(eol)
		b.WriteString("\tat ")
		b.WriteString(fr.Function)
		b.WriteString(" (")
		b.WriteString(fr.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(fr.Line))
		b.WriteByte(')')

		if !more {
			break
		}
	}

	return b.String()
}
