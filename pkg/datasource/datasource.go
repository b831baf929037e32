// Package datasource presents CRUD over note records with domain ordering,
// typed errors, and a change-notification broadcast.
//
// It sits between the raw storage.Store and the repository: the store only
// knows how to keep records; the data source decides what an operation
// means (a save must not target a missing row, an update must not rewrite
// the creation date) and tells every subscriber about the new truth after
// each successful mutation.
package datasource

import (
	"context"
	"log/slog"
	"sort"

	"github.com/aretw0/lifecycle"

	"github.com/quillstack/quill/pkg/core"
	"github.com/quillstack/quill/pkg/storage"
)

// DataSource is the contract the repository adapts. Source is the store
// backed implementation; tests may substitute their own.
type DataSource interface {
	// FetchAll returns all records, newest CreatedAt first. Records
	// created at the same instant keep their insertion order.
	FetchAll(ctx context.Context) ([]storage.Record, error)

	// Save persists a record. Saving an ID that already exists overwrites
	// the stored record.
	Save(ctx context.Context, r storage.Record) error

	// Update overwrites title and content of the record identified by
	// r.ID, preserving the stored CreatedAt. Fails with core.ErrNotFound
	// (wrapped in *core.UpdateError) when the ID is absent.
	Update(ctx context.Context, r storage.Record) error

	// Delete removes the record identified by r.ID. Fails with
	// core.ErrNotFound (wrapped in *core.DeleteError) when absent.
	Delete(ctx context.Context, r storage.Record) error

	// Subscribe registers a new snapshot subscriber.
	Subscribe() *Subscription
}

// Source implements DataSource over a storage.Store.
type Source struct {
	store  storage.Store
	logger *slog.Logger
	subs   *broadcaster
}

var _ DataSource = (*Source)(nil)

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger used for snapshot and watcher diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// New creates a data source over the given store.
func New(store storage.Store, opts ...Option) *Source {
	s := &Source{
		store:  store,
		logger: slog.Default(),
		subs:   newBroadcaster(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins forwarding externally detected store changes into the
// broadcast stream. It is a no-op when the store cannot watch for changes.
// The pump stops when ctx is canceled.
func (s *Source) Start(ctx context.Context) error {
	watcher, ok := s.store.(storage.ChangeWatcher)
	if !ok {
		return nil
	}
	changes, err := watcher.WatchChanges(ctx)
	if err != nil {
		return err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case _, open := <-changes:
				if !open {
					return nil
				}
				s.publish(ctx)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("change pump stopped", "error", err)
	}))
	return nil
}

// FetchAll returns all records sorted by CreatedAt descending. The sort is
// stable and ties fall back to the store's insertion sequence, so two
// notes created at the same instant keep their creation order.
func (s *Source) FetchAll(ctx context.Context) ([]storage.Record, error) {
	records, err := s.store.ScanAll(ctx)
	if err != nil {
		return nil, &core.FetchError{Err: err}
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].Seq < records[j].Seq
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// Save persists a new record and publishes a fresh snapshot.
func (s *Source) Save(ctx context.Context, r storage.Record) error {
	if err := s.store.Put(ctx, r); err != nil {
		return &core.SaveError{Err: err}
	}
	s.publish(ctx)
	return nil
}

// Update overwrites title and content of an existing record and publishes
// a fresh snapshot. The store performs the overwrite as one atomic step,
// so the stored CreatedAt and insertion sequence survive no matter what
// the caller supplies, and a record deleted concurrently stays deleted.
func (s *Source) Update(ctx context.Context, r storage.Record) error {
	replaced, err := s.store.Replace(ctx, r)
	if err != nil {
		return &core.UpdateError{Err: err}
	}
	if !replaced {
		return &core.UpdateError{Err: core.ErrNotFound}
	}
	s.publish(ctx)
	return nil
}

// Delete removes an existing record and publishes a fresh snapshot.
func (s *Source) Delete(ctx context.Context, r storage.Record) error {
	removed, err := s.store.Remove(ctx, r.ID)
	if err != nil {
		return &core.DeleteError{Err: err}
	}
	if !removed {
		return &core.DeleteError{Err: core.ErrNotFound}
	}
	s.publish(ctx)
	return nil
}

// Subscribe registers a snapshot subscriber. There is no replay: the first
// snapshot arrives with the first change after subscribing. Callers that
// need the current state fetch it once, then rely on the stream.
func (s *Source) Subscribe() *Subscription {
	return s.subs.subscribe()
}

// publish computes one snapshot and delivers it to every subscriber. A
// snapshot that cannot be computed is logged and skipped; subscribers
// simply see the next successful one.
func (s *Source) publish(ctx context.Context) {
	snapshot, err := s.FetchAll(ctx)
	if err != nil {
		s.logger.Error("snapshot after change failed", "error", err)
		return
	}
	s.subs.publish(snapshot)
}
