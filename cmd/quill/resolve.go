package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/quillstack/quill"
	"github.com/quillstack/quill/pkg/core"
)

// findNote resolves an ID argument against the stored notes. A unique
// prefix is accepted so users can paste the first few characters.
func findNote(ctx context.Context, app *quill.App, idArg string) (core.Note, error) {
	notes, err := app.Service.FetchNotes(ctx)
	if err != nil {
		return core.Note{}, err
	}

	var matches []core.Note
	for _, n := range notes {
		id := n.ID.String()
		if id == idArg {
			return n, nil
		}
		if strings.HasPrefix(id, idArg) {
			matches = append(matches, n)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return core.Note{}, fmt.Errorf("no note with id %q", idArg)
	default:
		return core.Note{}, fmt.Errorf("id %q is ambiguous (%d matches)", idArg, len(matches))
	}
}
