package core

import (
	"context"
	"sync"
)

// Repository defines the contract the business layers depend on. Adhering
// to this interface keeps them independent of the underlying storage
// technology and lets tests substitute an in-memory implementation.
type Repository interface {
	// FetchAll returns every note, newest creation date first.
	FetchAll(ctx context.Context) ([]Note, error)

	// Add persists a new note.
	Add(ctx context.Context, n Note) error

	// Update overwrites the title and content of the note identified by
	// n.ID. The stored creation date is preserved.
	Update(ctx context.Context, n Note) error

	// Delete removes the note identified by n.ID.
	Delete(ctx context.Context, n Note) error

	// Observe subscribes to full note snapshots, published after every
	// change. There is no replay: a subscriber only sees snapshots for
	// changes that happen after it joins. The subscription ends when ctx
	// is canceled or Unsubscribe is called.
	Observe(ctx context.Context) (*Subscription, error)
}

// Subscription delivers full note snapshots pushed after every change.
type Subscription struct {
	snapshots chan []Note
	stop      func()
	once      sync.Once
}

// NewSubscription wraps a snapshot channel and a stop function. Intended
// for Repository implementations; consumers only receive and unsubscribe.
func NewSubscription(snapshots chan []Note, stop func()) *Subscription {
	return &Subscription{snapshots: snapshots, stop: stop}
}

// Snapshots returns the snapshot channel. It is closed after the
// subscription ends.
func (s *Subscription) Snapshots() <-chan []Note {
	return s.snapshots
}

// Unsubscribe detaches from the stream. It is idempotent and has no effect
// on other subscribers.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.stop)
}
