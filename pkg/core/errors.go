package core

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that an update or delete targeted an ID that is not
// stored. It is always delivered wrapped in the operation-scoped error for
// the failed call, so errors.Is(err, ErrNotFound) works through either.
var ErrNotFound = errors.New("note not found")

// The operation-scoped errors below are produced at the data source
// boundary only. Repository and Service propagate them unchanged, so a
// caller can tell which operation failed without inspecting storage
// internals.

// FetchError reports a failed fetch of the note list.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch notes: %v", e.Err) }

func (e *FetchError) Unwrap() error { return e.Err }

// SaveError reports a failed save of a new note.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return fmt.Sprintf("save note: %v", e.Err) }

func (e *SaveError) Unwrap() error { return e.Err }

// UpdateError reports a failed update of an existing note.
type UpdateError struct {
	Err error
}

func (e *UpdateError) Error() string { return fmt.Sprintf("update note: %v", e.Err) }

func (e *UpdateError) Unwrap() error { return e.Err }

// DeleteError reports a failed delete of an existing note.
type DeleteError struct {
	Err error
}

func (e *DeleteError) Error() string { return fmt.Sprintf("delete note: %v", e.Err) }

func (e *DeleteError) Unwrap() error { return e.Err }
