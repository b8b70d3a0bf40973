package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsConfigWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "square:\n  push: 1\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	// unrelated files in the same directory are ignored
	writeFile(t, filepath.Join(dir, "other.yaml"), "x: 1\n")
	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for %s", got)
	case <-time.After(3 * debounce):
	}

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("square:\n  push: 2\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case got := <-w.Events:
		if got != w.Path() {
			t.Fatalf("expected %s, got %s", w.Path(), got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for config event")
	}

	// the burst of writes collapses into a single event
	select {
	case got := <-w.Events:
		t.Fatalf("expected one debounced event, got another for %s", got)
	case <-time.After(3 * debounce):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("expected events channel closed")
	}
}

func TestNewWatcherMissingDirectory(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "config.yaml")); err == nil {
		t.Fatalf("expected error watching a missing directory")
	}
}
