package repository

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/quillstack/quill/pkg/core"
	"github.com/quillstack/quill/pkg/storage"
)

// toRecord converts a domain note to its storage shape. Seq is left zero:
// the store owns insertion sequencing.
func toRecord(n core.Note) storage.Record {
	return storage.Record{
		ID:        n.ID.String(),
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreationDate,
	}
}

func toNote(r storage.Record) (core.Note, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return core.Note{}, fmt.Errorf("parse note id %q: %w", r.ID, err)
	}
	return core.Note{
		ID:           id,
		Title:        r.Title,
		Content:      r.Content,
		CreationDate: r.CreatedAt,
	}, nil
}

func toNotes(records []storage.Record) ([]core.Note, error) {
	notes := make([]core.Note, 0, len(records))
	for _, r := range records {
		note, err := toNote(r)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}
