package handler

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/logtap/logtap/core"
)

// FileWriter appends rendered messages to files named by path
// templates. Writes are create-if-absent appends; there is no
// rotation and no buffering.
type FileWriter struct {
	location string
	id       core.Identity
	mu       sync.Mutex
}

// NewFileWriter creates a file sink rooted at the given base log
// location. A trailing path separator on the location is stripped.
func NewFileWriter(location string, id core.Identity) *FileWriter {
	return &FileWriter{
		location: strings.TrimRight(location, "/\\"),
		id:       id,
	}
}

// Location returns the base log location
func (fw *FileWriter) Location() string {
	return fw.location
}

// ResolvePath expands the path tokens of a sink descriptor: %p pid,
// %h hostname, %L level label (empty for the file level), and %l the
// base log location (file level only). For any level other than file
// the resolved path is prefixed with the base log location; the file
// level names its path explicitly, so no prefix is applied.
func (fw *FileWriter) ResolvePath(sink string, level core.Level) string {
	path := sink
	path = strings.ReplaceAll(path, "%p", fw.id.PIDString())
	path = strings.ReplaceAll(path, "%h", fw.id.Hostname)
	path = strings.ReplaceAll(path, "%L", level.Label())

	if level == core.FileLevel {
		return strings.ReplaceAll(path, "%l", fw.location)
	}
	if fw.location != "" {
		return filepath.Join(fw.location, path)
	}
	return path
}

// Append writes the rendered message to the end of the file at path,
// creating the file and its parent directories when absent.
func (fw *FileWriter) Append(path, msg string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	_, werr := f.WriteString(msg)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}
