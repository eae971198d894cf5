// Package watch reruns a regeneration callback whenever the manifest
// file changes on disk.
package watch

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/pinpoint/pkg/errors"
	"github.com/odvcencio/pinpoint/pkg/logging"
)

// Run watches path until ctx is cancelled, invoking onChange after
// each burst of file events settles for the debounce interval. The
// parent directory is watched rather than the file itself because
// most editors replace files by rename. onChange errors are logged
// and watching continues; only watcher failures end the run.
func Run(ctx context.Context, path string, debounce time.Duration, log *logging.Logger, onChange func() error) error {
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "creating file watcher")
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "resolving watch path").
			WithContext("path", path)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "watching manifest directory").
			WithContext("dir", filepath.Dir(abs))
	}

	_ = log.Info(logging.CategoryWatch, "watch_started", "watching manifest", map[string]any{
		"path":     abs,
		"debounce": debounce.String(),
	})

	trigger := make(chan struct{}, 1)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				_ = log.Debug(logging.CategoryWatch, "fs_event", ev.Op.String(), map[string]any{"path": ev.Name})
				select {
				case trigger <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				_ = log.Warn(logging.CategoryWatch, "watch_error", err.Error(), nil)
			}
		}
	})

	g.Go(func() error {
		var timer *time.Timer
		var timerC <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return ctx.Err()
			case <-trigger:
				if timer != nil && !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer = time.NewTimer(debounce)
				timerC = timer.C
			case <-timerC:
				timer = nil
				timerC = nil
				if err := onChange(); err != nil {
					_ = log.Error(logging.CategoryWatch, "regenerate_failed", err.Error(), nil)
				}
			}
		}
	})

	err = g.Wait()
	if stderrors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
