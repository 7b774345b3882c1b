package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type settings struct {
	Name  string            `json:"name"`
	Count int               `json:"count"`
	Extra map[string]string `json:"extra,omitempty"`
}

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledmatrix.json")
	s := settings{Name: "life", Count: 3}
	created, err := Load(path, &s)
	if err != nil || !created {
		t.Fatalf("Load = %v, %v", created, err)
	}

	var back settings
	created, err = Load(path, &back)
	if err != nil || created {
		t.Fatalf("second Load = %v, %v", created, err)
	}
	if back.Name != "life" || back.Count != 3 {
		t.Fatalf("round trip gave %+v", back)
	}
}

func TestLoadKeepsUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	if err := os.WriteFile(path, []byte(`{"count": 9}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s := settings{Name: "snake", Count: 1}
	if _, err := Load(path, &s); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "snake" || s.Count != 9 {
		t.Fatalf("got %+v", s)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	if err := os.WriteFile(path, []byte(`{"count":`), 0o644); err != nil {
		t.Fatal(err)
	}
	var s settings
	if _, err := Load(path, &s); err == nil {
		t.Fatal("truncated JSON accepted")
	}
}

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.json")
	if err := Save(path, settings{Name: "a"}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan struct{}, 16)
	done := make(chan error, 1)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	go func() {
		done <- Watch(ctx, path, logger, func() { changed <- struct{}{} })
	}()

	// Other files in the directory are ignored; writes to ours are reported.
	deadline := time.After(3 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-changed:
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("Watch: %v", err)
			}
			return
		case <-tick.C:
			// The watcher may not be registered yet; keep writing until it is.
			if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644); err != nil {
				t.Fatal(err)
			}
			if err := Save(path, settings{Name: "b"}); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no change reported")
		}
	}
}
