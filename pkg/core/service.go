package core

import (
	"context"
)

// Service handles the business logic for notes. Today every operation
// forwards to the Repository unchanged; validation and authorization rules
// belong here when they arrive, keeping them out of the storage layers.
type Service struct {
	repo Repository
}

// NewService creates a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FetchNotes retrieves all notes, newest first.
func (s *Service) FetchNotes(ctx context.Context) ([]Note, error) {
	return s.repo.FetchAll(ctx)
}

// AddNote persists a new note.
func (s *Service) AddNote(ctx context.Context, n Note) error {
	return s.repo.Add(ctx, n)
}

// UpdateNote overwrites the title and content of an existing note.
func (s *Service) UpdateNote(ctx context.Context, n Note) error {
	return s.repo.Update(ctx, n)
}

// DeleteNote removes a note.
func (s *Service) DeleteNote(ctx context.Context, n Note) error {
	return s.repo.Delete(ctx, n)
}

// ObserveNotes subscribes to note snapshots.
func (s *Service) ObserveNotes(ctx context.Context) (*Subscription, error) {
	return s.repo.Observe(ctx)
}
