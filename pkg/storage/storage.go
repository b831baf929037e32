// Package storage defines the durable keyed persistence contract the data
// source builds on. Implementations live in the subpackages (sqlite, memory).
package storage

import (
	"context"
	"fmt"
	"time"
)

// Record is the storage shape of a note. Seq is the insertion sequence
// assigned by the store; it never leaves the persistence layer and only
// keeps ordering stable between records created at the same instant.
type Record struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	Seq       int64
}

// Store is durable keyed storage for note records.
//
// Implementations must serialize mutations internally. Concurrent readers
// may interleave with a pending write and observe either the pre- or
// post-state, but never a torn record. A successful Put or Remove is
// visible to subsequent ScanAll/Get calls in the same process.
type Store interface {
	// ScanAll returns every stored record, in no particular order.
	ScanAll(ctx context.Context) ([]Record, error)

	// Get retrieves a record by ID. The boolean reports existence;
	// a missing record is not an error.
	Get(ctx context.Context, id string) (Record, bool, error)

	// Put inserts or replaces the record identified by r.ID.
	Put(ctx context.Context, r Record) error

	// Replace overwrites title and content of the record identified by
	// r.ID in one atomic step, preserving the stored CreatedAt and Seq,
	// and reports whether the record existed. Unlike a Get/Put pair it
	// cannot resurrect a record a concurrent Remove just deleted.
	Replace(ctx context.Context, r Record) (bool, error)

	// Remove deletes a record by ID and reports whether it existed.
	Remove(ctx context.Context, id string) (bool, error)

	// Close releases the underlying resources.
	Close() error
}

// ChangeWatcher is implemented by stores that can detect changes made
// outside this process (e.g. another process writing the same database).
type ChangeWatcher interface {
	// WatchChanges emits a signal after the underlying storage changed.
	// The channel is closed when ctx is canceled.
	WatchChanges(ctx context.Context) (<-chan struct{}, error)
}

// Error wraps a raw store I/O failure with the operation that produced it.
// Layers above translate it into operation-scoped error kinds; the store
// itself raises nothing richer.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("storage %s: %v", e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }
