package file

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/oberrich/paperless-export/internal/logger"
)

// debounce batches rapid successive writes (editors and exporters often
// write the manifest in several syscalls) into one change event.
const debounce = 500 * time.Millisecond

// Watch emits one element per manifest change batch until the context is
// cancelled. The export root's directory is watched rather than the file
// itself so replace-by-rename updates are seen.
func (s *Source) Watch(ctx context.Context) (<-chan struct{}, <-chan error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(s.root); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("watching %s: %w", s.root, err)
	}

	changes := make(chan struct{})
	errs := make(chan error, 1)

	go func() {
		defer close(changes)
		defer close(errs)
		defer watcher.Close()

		var timer *time.Timer
		var timerC <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.Path() {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				logger.Debug("manifest event: %s", event.Op)
				if timer == nil {
					timer = time.NewTimer(debounce)
					timerC = timer.C
				} else {
					timer.Reset(debounce)
				}

			case <-timerC:
				timer = nil
				timerC = nil
				select {
				case changes <- struct{}{}:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case errs <- err:
				default:
				}
			}
		}
	}()

	return changes, errs, nil
}
