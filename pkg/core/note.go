package core

import (
	"time"

	"github.com/google/uuid"
)

// Note is the central entity of the domain. A Note handed to a caller is a
// by-value snapshot, never a live reference into storage.
type Note struct {
	ID           uuid.UUID
	Title        string
	Content      string
	CreationDate time.Time
}

// NewNote mints a Note with a fresh identifier and creation timestamp.
// Both are immutable for the rest of the note's life.
func NewNote(title, content string) Note {
	return Note{
		ID:           uuid.New(),
		Title:        title,
		Content:      content,
		CreationDate: time.Now(),
	}
}
