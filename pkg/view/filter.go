package view

import (
	"strings"

	"github.com/quillstack/quill/pkg/core"
)

// Filter returns the notes whose title or content contains query,
// case-insensitively, preserving their relative order. An empty query is
// the identity. The function is pure; it never mutates its input.
func Filter(notes []core.Note, query string) []core.Note {
	if query == "" {
		return notes
	}
	q := strings.ToLower(query)
	var matched []core.Note
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			matched = append(matched, n)
		}
	}
	return matched
}
