package core

// Entry is a single retained log event. Entries are created by the
// dispatcher when retention is enabled and are immutable afterwards.
type Entry struct {
	Level   Level
	Message string
}
