package suggest

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is how long the corpus file must stay quiet before it is reloaded.
var WatchDebounce = 250 * time.Millisecond

// Watch reloads the corpus at path whenever the file is written or replaced, until ctx
// is done. Bursts of events are collapsed into one reload. A failed reload is logged
// and the previous dictionary stays in use.
func (e *Engine) Watch(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often save by renaming a temp file over the target, which drops a
	// watch on the file itself; watching the directory survives that.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	log := e.log.WithPrefix("watch")
	log.Debug("Watching corpus", "path", absPath)

	reload := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(WatchDebounce, func() {
					select {
					case reload <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(WatchDebounce)
			}

		case <-reload:
			if err := e.LoadCorpus(path); err != nil {
				log.Warn("Reload failed, keeping previous dictionary", "err", err)
				continue
			}
			log.Info("Corpus reloaded", "path", absPath, "words", e.Stats()["distinctWords"])

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("Watcher error: %v", err)
		}
	}
}
