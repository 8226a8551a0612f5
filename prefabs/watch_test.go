package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsWatchedFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"levels/level_1.yaml", true},
		{"prefabs/player.YML", true},
		{"prefabs/scripts/square.tengo", true},
		{"assets/character.png", true},
		{"prefabs/.player.yaml.swp", false},
		{"README.md", false},
	}

	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			if got := IsWatchedFile(c.path); got != c.want {
				t.Fatalf("IsWatchedFile(%q) = %v, want %v", c.path, got, c.want)
			}
		})
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, filepath.Join(dir, "missing"))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if got := w.Watched(); len(got) != 1 {
		t.Fatalf("expected only the existing dir watched, got %v", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "level_1.yaml")
	if err := os.WriteFile(target, []byte("name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "level_1.yaml" {
			t.Fatalf("expected level_1.yaml event, got %q", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if got := w.Drain(); len(got) != 0 {
		t.Fatalf("expected nothing after close, got %v", got)
	}
}
