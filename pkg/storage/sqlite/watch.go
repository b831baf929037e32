package sqlite

import (
	"context"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/quillstack/quill/pkg/storage"
)

const debounceInterval = 50 * time.Millisecond

// WatchChanges implements storage.ChangeWatcher. It watches the database
// directory with fsnotify and emits one signal per burst of writes to the
// database file or its WAL/journal companions, so changes made by another
// process become visible to subscribers of this one.
//
// The returned channel holds at most one pending signal; a consumer that
// lags simply observes a single coalesced change. The channel is closed
// when ctx is canceled.
func (s *Store) WatchChanges(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &storage.Error{Op: "watch", Err: err}
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return nil, &storage.Error{Op: "watch", Err: err}
	}

	out := make(chan struct{}, 1)
	deb := newDebouncer(debounceInterval)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer s.setWatcherActive(false)
		defer close(out)
		defer watcher.Close()
		defer deb.stop()

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !s.isDatabaseFile(event.Name) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
					continue
				}
				s.logger.Debug("database change detected", "file", event.Name, "op", event.Op.String())
				deb.trigger(func() {
					select {
					case out <- struct{}{}:
					default:
						// A signal is already pending; one is enough.
					}
				})

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.logger.Error("fsnotify error", "error", werr)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("change watcher stopped", "error", err)
	}))

	return out, nil
}

// isDatabaseFile reports whether name is the database file or one of its
// SQLite companions (notes.db-wal, notes.db-shm, notes.db-journal).
func (s *Store) isDatabaseFile(name string) bool {
	pattern := filepath.Base(s.path) + "*"
	ok, err := doublestar.Match(pattern, filepath.Base(name))
	return err == nil && ok
}
