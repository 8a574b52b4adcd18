package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nikbrunner/cbm/internal/logging"
	"github.com/nikbrunner/cbm/internal/logging/events"
)

const watchDelay = 100 * time.Millisecond

// Watch streams a notification every time the file at path changes, until
// ctx is cancelled. The parent directory is watched so that editors which
// replace the file on save are noticed. Bursts of writes are coalesced into
// a single notification.
func Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure watch dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("storage: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("storage: watch %s: %w", dir, err)
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer watcher.Close()

		send := func() {
			select {
			case changes <- struct{}{}:
			default:
				// A notification is already pending.
			}
		}

		var (
			timer *time.Timer
			fire  <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case <-fire:
				fire = nil
				send()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Error(fmt.Errorf("storage: watcher: %w", err))
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != path {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				events.Catalog.Changed(path, evt.Op.String())
				if timer == nil {
					timer = time.NewTimer(watchDelay)
				} else {
					timer.Reset(watchDelay)
				}
				fire = timer.C
			}
		}
	}()

	return changes, nil
}
