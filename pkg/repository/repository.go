// Package repository adapts the storage-shaped data source to the domain
// model. It is a boundary, not a feature layer: no field is dropped or
// renamed across it, and data source errors pass through unchanged, so the
// business layers stay independent of the storage technology.
package repository

import (
	"context"
	"log/slog"

	"github.com/aretw0/lifecycle"

	"github.com/quillstack/quill/pkg/core"
	"github.com/quillstack/quill/pkg/datasource"
)

// Notes implements core.Repository over a datasource.DataSource.
type Notes struct {
	source datasource.DataSource
	logger *slog.Logger
}

var _ core.Repository = (*Notes)(nil)

// Option configures a Notes repository.
type Option func(*Notes)

// WithLogger sets the logger used for snapshot mapping diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Notes) {
		n.logger = logger
	}
}

// New creates a repository over the given data source.
func New(source datasource.DataSource, opts ...Option) *Notes {
	n := &Notes{source: source, logger: slog.Default()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// FetchAll returns every note, newest first.
func (n *Notes) FetchAll(ctx context.Context) ([]core.Note, error) {
	records, err := n.source.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return toNotes(records)
}

// Add persists a new note.
func (n *Notes) Add(ctx context.Context, note core.Note) error {
	return n.source.Save(ctx, toRecord(note))
}

// Update overwrites title and content of an existing note.
func (n *Notes) Update(ctx context.Context, note core.Note) error {
	return n.source.Update(ctx, toRecord(note))
}

// Delete removes a note.
func (n *Notes) Delete(ctx context.Context, note core.Note) error {
	return n.source.Delete(ctx, toRecord(note))
}

// Observe subscribes to the data source's snapshot stream and re-exports
// it over domain notes. Semantics are unchanged: no replay, conflated
// delivery, unsubscribe detaches without disturbing other subscribers.
func (n *Notes) Observe(ctx context.Context) (*core.Subscription, error) {
	inner := n.source.Subscribe()
	out := make(chan []core.Note, 1)
	sub := core.NewSubscription(out, inner.Unsubscribe)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				inner.Unsubscribe()
				return nil
			case records, open := <-inner.Snapshots():
				if !open {
					return nil
				}
				notes, err := toNotes(records)
				if err != nil {
					// A snapshot with an unreadable record is dropped;
					// the next successful one supersedes it anyway.
					n.logger.Error("snapshot mapping failed", "error", err)
					continue
				}
				select {
				case out <- notes:
				default:
					select {
					case <-out:
					default:
					}
					out <- notes
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		n.logger.Error("snapshot bridge stopped", "error", err)
	}))

	return sub, nil
}
