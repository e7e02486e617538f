package formatter

import (
	"bytes"
	"time"

	"github.com/logtap/logtap/core"
)

// Timestamp layouts for the three time tokens. %t is the normalized
// local form, %T the ISO-8601 local form, %j the JSON/UTC form.
const (
	localTimeLayout = "2006-01-02 15:04:05.000"
	jsonTimeLayout  = "2006-01-02T15:04:05.000Z"
)

// Formatter expands format templates into literal output strings. It
// carries the process identity so pid, hostname, and EOL tokens never
// trigger a lookup on the render path.
type Formatter struct {
	id core.Identity
}

// New creates a Formatter bound to the given process identity
func New(id core.Identity) *Formatter {
	return &Formatter{id: id}
}

// Identity returns the process identity the formatter was built with
func (f *Formatter) Identity() core.Identity {
	return f.id
}

// Render expands the template for one log call. The template is
// scanned in a single pass and each token value is computed only when
// its token occurs, so a template without %S never pays for a stack
// capture and one without %m never stringifies the arguments.
// Render never fails: arguments that cannot be serialized degrade to
// a fallback form instead of aborting the call.
func (f *Formatter) Render(template string, level core.Level, args []any) string {
	var buf bytes.Buffer
	buf.Grow(len(template) + 64)

	var msg string
	msgDone := false

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 == len(template) {
			buf.WriteByte(c)
			continue
		}

		switch template[i+1] {
		case 't':
			buf.Write(time.Now().AppendFormat(buf.AvailableBuffer(), localTimeLayout))
		case 'T':
			buf.Write(time.Now().AppendFormat(buf.AvailableBuffer(), time.RFC3339))
		case 'j':
			buf.Write(time.Now().UTC().AppendFormat(buf.AvailableBuffer(), jsonTimeLayout))
		case 'p':
			buf.WriteString(f.id.PIDString())
		case 'h':
			buf.WriteString(f.id.Hostname)
		case 'L':
			buf.WriteString(level.Label())
		case 'E':
			buf.WriteString(f.id.EOL)
		case 'S':
			buf.WriteString(captureStack(f.id.EOL))
		case 'm':
			if !msgDone {
				msg = Message(args)
				msgDone = true
			}
			buf.WriteString(msg)
		default:
			// Unrecognized token, pass through literally
			buf.WriteByte('%')
			buf.WriteByte(template[i+1])
		}
		i++
	}

	return buf.String()
}
