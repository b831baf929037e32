// Package view holds the state a notes screen renders from: the full note
// list, the current search query, and the filtered list derived from both.
//
// The model owns no truth of its own. Mutations go through the Service and
// the local lists change only when the data source's snapshot stream says
// so; a failed mutation is logged and leaves every cell untouched.
package view

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/aretw0/lifecycle"

	"github.com/quillstack/quill/pkg/core"
)

// Model coordinates the three observable cells. Filtered always equals
// Filter(All, Query) once an update to either input has settled.
type Model struct {
	service *core.Service
	logger  *slog.Logger

	mu       sync.RWMutex
	all      []core.Note
	filtered []core.Note
	query    string

	sub     *core.Subscription
	cancel  context.CancelFunc
	changed chan struct{}
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger failed operations are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New builds the view model. One eager fetch seeds the note list (the
// stream carries no replay), then the subscription keeps it current until
// Close or ctx cancellation. A failed seed fetch is logged and leaves the
// model empty; the first snapshot fills it.
func New(ctx context.Context, service *core.Service, opts ...Option) (*Model, error) {
	m := &Model{
		service: service,
		logger:  slog.Default(),
		changed: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(m)
	}

	runCtx, cancel := context.WithCancel(ctx)
	sub, err := service.ObserveNotes(runCtx)
	if err != nil {
		cancel()
		return nil, err
	}
	m.sub = sub
	m.cancel = cancel

	if notes, err := service.FetchNotes(ctx); err != nil {
		m.logger.Error("fetching notes failed", "error", err)
	} else {
		m.applyNotes(notes)
	}

	lifecycle.Go(runCtx, func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case snapshot, open := <-sub.Snapshots():
				if !open {
					return nil
				}
				m.applyNotes(snapshot)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		m.logger.Error("snapshot loop stopped", "error", err)
	}))

	return m, nil
}

// Close detaches from the snapshot stream. The model keeps serving its
// last state but no longer updates.
func (m *Model) Close() {
	m.sub.Unsubscribe()
	m.cancel()
}

// All returns the full note list, newest first.
func (m *Model) All() []core.Note {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.all)
}

// Filtered returns the notes matching the current query, in list order.
func (m *Model) Filtered() []core.Note {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.filtered)
}

// Query returns the current search query.
func (m *Model) Query() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.query
}

// SetQuery replaces the search query and recomputes the filtered list.
func (m *Model) SetQuery(query string) {
	m.mu.Lock()
	m.query = query
	m.filtered = Filter(m.all, query)
	m.mu.Unlock()
	m.notify()
}

// Add creates a note with a fresh ID and timestamp and persists it. On
// failure the error is logged and returned; local state is untouched
// either way, since the snapshot stream is the only writer of the note list.
func (m *Model) Add(ctx context.Context, title, content string) error {
	note := core.NewNote(title, content)
	if err := m.service.AddNote(ctx, note); err != nil {
		m.logger.Error("adding note failed", "error", err)
		return err
	}
	return nil
}

// Update persists new title/content for an existing note.
func (m *Model) Update(ctx context.Context, note core.Note) error {
	if err := m.service.UpdateNote(ctx, note); err != nil {
		m.logger.Error("updating note failed", "error", err)
		return err
	}
	return nil
}

// Delete removes a note.
func (m *Model) Delete(ctx context.Context, note core.Note) error {
	if err := m.service.DeleteNote(ctx, note); err != nil {
		m.logger.Error("deleting note failed", "error", err)
		return err
	}
	return nil
}

// Changed signals after either input produced a new filtered list. The
// channel is conflated: a render loop that lags gets one wakeup covering
// everything it missed.
func (m *Model) Changed() <-chan struct{} {
	return m.changed
}

func (m *Model) applyNotes(notes []core.Note) {
	m.mu.Lock()
	m.all = notes
	m.filtered = Filter(notes, m.query)
	m.mu.Unlock()
	m.notify()
}

func (m *Model) notify() {
	select {
	case m.changed <- struct{}{}:
	default:
	}
}
