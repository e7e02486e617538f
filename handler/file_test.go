package handler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/logtap/logtap/core"
)

func testWriter(t *testing.T) (*FileWriter, string) {
	t.Helper()
	dir := t.TempDir()
	return NewFileWriter(dir, core.Identity{PID: 77, Hostname: "box", EOL: "\n"}), dir
}

func TestResolvePath_Tokens(t *testing.T) {
	fw, dir := testWriter(t)

	got := fw.ResolvePath("%h-%p-%L.log", core.ErrorLevel)
	want := filepath.Join(dir, "box-77-ERROR.log")
	if got != want {
		t.Errorf("ResolvePath() = %q, want %q", got, want)
	}
}

func TestResolvePath_FileLevel(t *testing.T) {
	fw, dir := testWriter(t)

	// file level: %l expands to the location, no prefix is applied,
	// and the level label is empty
	got := fw.ResolvePath("%l/override%L.log", core.FileLevel)
	want := dir + "/override.log"
	if got != want {
		t.Errorf("ResolvePath() = %q, want %q", got, want)
	}
}

func TestResolvePath_TrailingSeparatorStripped(t *testing.T) {
	fw := NewFileWriter("/var/log/app/", core.Identity{PID: 1, Hostname: "h", EOL: "\n"})
	if fw.Location() != "/var/log/app" {
		t.Errorf("Location() = %q", fw.Location())
	}
}

func TestResolvePath_NoLocation(t *testing.T) {
	fw := NewFileWriter("", core.Identity{PID: 1, Hostname: "h", EOL: "\n"})
	if got := fw.ResolvePath("app.log", core.InfoLevel); got != "app.log" {
		t.Errorf("ResolvePath() = %q", got)
	}
}

func TestAppend_CreatesAndAppends(t *testing.T) {
	fw, dir := testWriter(t)
	path := filepath.Join(dir, "nested", "app.log")

	if err := fw.Append(path, "first\n"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := fw.Append(path, "second\n"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("file contents = %q", data)
	}
}

func TestAppend_ErrorSurfaces(t *testing.T) {
	fw, dir := testWriter(t)

	// A path that collides with an existing directory cannot be opened
	if err := fw.Append(dir, "x"); err == nil {
		t.Error("expected an error appending to a directory path")
	}
}
