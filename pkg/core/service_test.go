package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillstack/quill/pkg/core"
)

// MockRepository implements core.Repository in memory and records which
// operations were called.
type MockRepository struct {
	notes []core.Note
	calls []string
}

func (m *MockRepository) FetchAll(ctx context.Context) ([]core.Note, error) {
	m.calls = append(m.calls, "fetch")
	out := make([]core.Note, len(m.notes))
	copy(out, m.notes)
	return out, nil
}

func (m *MockRepository) Add(ctx context.Context, n core.Note) error {
	m.calls = append(m.calls, "add")
	m.notes = append(m.notes, n)
	return nil
}

func (m *MockRepository) Update(ctx context.Context, n core.Note) error {
	m.calls = append(m.calls, "update")
	for i, existing := range m.notes {
		if existing.ID == n.ID {
			m.notes[i].Title = n.Title
			m.notes[i].Content = n.Content
			return nil
		}
	}
	return &core.UpdateError{Err: core.ErrNotFound}
}

func (m *MockRepository) Delete(ctx context.Context, n core.Note) error {
	m.calls = append(m.calls, "delete")
	for i, existing := range m.notes {
		if existing.ID == n.ID {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return nil
		}
	}
	return &core.DeleteError{Err: core.ErrNotFound}
}

func (m *MockRepository) Observe(ctx context.Context) (*core.Subscription, error) {
	m.calls = append(m.calls, "observe")
	ch := make(chan []core.Note, 1)
	return core.NewSubscription(ch, func() { close(ch) }), nil
}

func TestService_ForwardsAllOperations(t *testing.T) {
	repo := &MockRepository{}
	svc := core.NewService(repo)
	ctx := context.Background()

	note := core.NewNote("forwarded", "straight through")
	require.NoError(t, svc.AddNote(ctx, note))

	notes, err := svc.FetchNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, note.ID, notes[0].ID)

	note.Title = "edited"
	require.NoError(t, svc.UpdateNote(ctx, note))
	require.NoError(t, svc.DeleteNote(ctx, note))

	sub, err := svc.ObserveNotes(ctx)
	require.NoError(t, err)
	sub.Unsubscribe()

	assert.Equal(t, []string{"add", "fetch", "update", "delete", "observe"}, repo.calls)
}

func TestService_PropagatesErrorsUnchanged(t *testing.T) {
	repo := &MockRepository{}
	svc := core.NewService(repo)
	ctx := context.Background()

	err := svc.UpdateNote(ctx, core.NewNote("ghost", ""))
	var updateErr *core.UpdateError
	require.ErrorAs(t, err, &updateErr)
	assert.ErrorIs(t, err, core.ErrNotFound)

	err = svc.DeleteNote(ctx, core.NewNote("ghost", ""))
	var deleteErr *core.DeleteError
	require.ErrorAs(t, err, &deleteErr)
}

func TestNewNote_MintsIdentityAndTimestamp(t *testing.T) {
	first := core.NewNote("a", "1")
	second := core.NewNote("b", "2")

	assert.NotEqual(t, first.ID, second.ID, "IDs must never repeat")
	assert.False(t, first.CreationDate.IsZero())
	assert.Equal(t, "a", first.Title)
	assert.Equal(t, "1", first.Content)
}
