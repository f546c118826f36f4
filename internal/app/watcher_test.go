package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatcherSignalsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewFileWatcher(path)
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v", err)
	}
	defer w.Close()

	if w.Path() != path {
		t.Errorf("Path() = %q, want %q", w.Path(), path)
	}

	// Changes to other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes():
		t.Fatal("unexpected change signal for another file")
	case <-time.After(100 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change signal after writing the file")
	}
}

func TestFileWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	w, err := NewFileWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestFileWatcherMissingDir(t *testing.T) {
	if _, err := NewFileWatcher(filepath.Join(t.TempDir(), "nope", "f.txt")); err == nil {
		t.Error("NewFileWatcher() should fail for a missing directory")
	}
}
