package core

import "strings"

// Level represents the severity/routing category of a log call
type Level int8

const (
	// TraceLevel for call-stack traces (gated by the trace flag)
	TraceLevel Level = iota
	// DebugLevel for debugging output (gated by the debug flag and cutoff)
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages
	FatalLevel
	// FileLevel for direct writes to a caller-named file
	FileLevel

	numLevels = int(FileLevel) + 1
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	case FileLevel:
		return "file"
	default:
		return "unknown"
	}
}

// Label returns the upper-case form used by the %L format token.
// The file level renders as an empty label.
func (l Level) Label() string {
	if l == FileLevel {
		return ""
	}
	return strings.ToUpper(l.String())
}

// levelNames maps target-spec names to levels. "log" and "info" are
// deliberate duplicate slots for the same level.
var levelNames = map[string]Level{
	"trace": TraceLevel,
	"debug": DebugLevel,
	"log":   InfoLevel,
	"info":  InfoLevel,
	"warn":  WarnLevel,
	"error": ErrorLevel,
	"fatal": FatalLevel,
	"file":  FileLevel,
}

// ParseLevel converts a level name to a Level. The second return value
// reports whether the name is part of the level universe.
func ParseLevel(s string) (Level, bool) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// LevelSet is a bitmask over the fixed level universe
type LevelSet uint8

// AllLevels returns the set containing every level
func AllLevels() LevelSet {
	return LevelSet(1<<numLevels - 1)
}

// Add returns the set with the given level included
func (s LevelSet) Add(l Level) LevelSet {
	return s | 1<<uint(l)
}

// Remove returns the set with the given level excluded
func (s LevelSet) Remove(l Level) LevelSet {
	return s &^ (1 << uint(l))
}

// Has reports whether the set contains the given level
func (s LevelSet) Has(l Level) bool {
	return s&(1<<uint(l)) != 0
}

// Empty reports whether the set contains no levels
func (s LevelSet) Empty() bool {
	return s == 0
}

// Levels returns the members of the set in level order
func (s LevelSet) Levels() []Level {
	var out []Level
	for i := 0; i < numLevels; i++ {
		if s.Has(Level(i)) {
			out = append(out, Level(i))
		}
	}
	return out
}

// ParseLevelSpec resolves a declarative level spec to an explicit set.
// A spec is "*" for all levels, a comma-separated inclusion list, or a
// comma-separated exclusion list prefixed with '!'. Unknown names are
// ignored rather than rejected.
func ParseLevelSpec(spec string) LevelSet {
	spec = strings.TrimSpace(spec)
	if spec == "*" {
		return AllLevels()
	}

	exclude := strings.HasPrefix(spec, "!")
	if exclude {
		spec = spec[1:]
	}

	var set LevelSet
	for _, name := range strings.Split(spec, ",") {
		if l, ok := ParseLevel(name); ok {
			set = set.Add(l)
		}
	}

	if exclude {
		return AllLevels() &^ set
	}
	return set
}
