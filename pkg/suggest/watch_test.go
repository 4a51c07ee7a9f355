package suggest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return cond()
}

func TestWatchReloadsCorpus(t *testing.T) {
	WatchDebounce = 20 * time.Millisecond

	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0644); err != nil {
		t.Fatal(err)
	}
	engine := NewEngine()
	if err := engine.LoadCorpus(path); err != nil {
		t.Fatalf("LoadCorpus failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- engine.Watch(ctx, path) }()
	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("spelling corrector"), 0644); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, 3*time.Second, func() bool { return engine.Contains("spelling") }) {
		t.Error("expected the corpus to be reloaded after a write")
	}

	// writes to other files in the directory are ignored
	loads := engine.Stats()["loads"]
	if err := os.WriteFile(filepath.Join(filepath.Dir(path), "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if got := engine.Stats()["loads"]; got != loads {
		t.Errorf("expected no reload for unrelated files, loads went from %d to %d", loads, got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Watch did not stop after cancel")
	}
}

func TestWatchKeepsDictionaryOnFailedReload(t *testing.T) {
	WatchDebounce = 20 * time.Millisecond

	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0644); err != nil {
		t.Fatal(err)
	}
	engine := NewEngine()
	if err := engine.LoadCorpus(path); err != nil {
		t.Fatalf("LoadCorpus failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go engine.Watch(ctx, path)
	time.Sleep(100 * time.Millisecond)

	// a file replaced by a directory triggers a Create event that cannot be loaded
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)

	if !engine.Contains("hello") {
		t.Error("expected the previous dictionary to survive a failed reload")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	engine := NewEngine()
	err := engine.Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "corpus.txt"))
	if err == nil {
		t.Error("expected an error when the directory does not exist")
	}
}
