package view_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillstack/quill/pkg/core"
	"github.com/quillstack/quill/pkg/datasource"
	"github.com/quillstack/quill/pkg/repository"
	"github.com/quillstack/quill/pkg/storage"
	"github.com/quillstack/quill/pkg/storage/memory"
	"github.com/quillstack/quill/pkg/view"
)

const settleTimeout = 2 * time.Second

// newModel wires the full stack over a seeded in-memory store, mirroring
// how the application composes it.
func newModel(t *testing.T, seed ...storage.Record) *view.Model {
	t.Helper()

	store := memory.New()
	store.Seed(seed...)
	source := datasource.New(store)
	repo := repository.New(source)
	svc := core.NewService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m, err := view.New(ctx, svc)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

// sampleNotes returns the classic three-note seed, oldest first so the
// sorted view reads Title 3, Title 2, Title 1.
func sampleNotes() []storage.Record {
	base := time.Date(2025, 7, 27, 12, 0, 0, 0, time.UTC)
	return []storage.Record{
		{ID: uuid.NewString(), Title: "Title 1", Content: "This is Note Number 1", CreatedAt: base},
		{ID: uuid.NewString(), Title: "Title 2", Content: "This is Note Number 2", CreatedAt: base.Add(time.Minute)},
		{ID: uuid.NewString(), Title: "Title 3", Content: "This is Note Number 3", CreatedAt: base.Add(2 * time.Minute)},
	}
}

func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	require.Eventually(t, cond, settleTimeout, 10*time.Millisecond, msg)
}

func TestNew_SeedsFromEagerFetch(t *testing.T) {
	m := newModel(t, sampleNotes()...)

	all := m.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Title 3", all[0].Title)
	assert.Equal(t, "Title 2", all[1].Title)
	assert.Equal(t, "Title 1", all[2].Title)
	assert.Equal(t, all, m.Filtered(), "empty query shows everything")
}

func TestAdd_IncreasesCount(t *testing.T) {
	m := newModel(t, sampleNotes()...)
	before := len(m.All())

	require.NoError(t, m.Add(context.Background(), "New Note", "This is a new note"))

	eventually(t, func() bool { return len(m.All()) == before+1 }, "snapshot should arrive")
}

func TestAdd_StoresDetailsAndMintsIdentity(t *testing.T) {
	m := newModel(t)

	require.NoError(t, m.Add(context.Background(), "Test correctness", "details survive the round trip"))

	eventually(t, func() bool { return len(m.All()) == 1 }, "snapshot should arrive")
	got := m.All()[0]
	assert.Equal(t, "Test correctness", got.Title)
	assert.Equal(t, "details survive the round trip", got.Content)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.CreationDate.IsZero())
}

func TestUpdate_PreservesIdentityChangesContent(t *testing.T) {
	m := newModel(t, sampleNotes()...)
	ctx := context.Background()

	target := m.All()[1] // Title 2
	id, created := target.ID, target.CreationDate
	target.Title = "Title 2 (edited)"
	target.Content = "rewritten"
	require.NoError(t, m.Update(ctx, target))

	eventually(t, func() bool {
		for _, n := range m.All() {
			if n.Title == "Title 2 (edited)" {
				return true
			}
		}
		return false
	}, "updated snapshot should arrive")

	var got core.Note
	for _, n := range m.All() {
		if n.ID == id {
			got = n
		}
	}
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "rewritten", got.Content)
	assert.True(t, got.CreationDate.Equal(created), "creation date is immutable")
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	m := newModel(t, sampleNotes()...)
	before := len(m.All())

	target := m.All()[0]
	require.NoError(t, m.Delete(context.Background(), target))

	eventually(t, func() bool { return len(m.All()) == before-1 }, "snapshot should arrive")
	for _, n := range m.All() {
		assert.NotEqual(t, target.ID, n.ID)
	}
}

func TestMutationFailure_LeavesStateUntouched(t *testing.T) {
	m := newModel(t, sampleNotes()...)
	ctx := context.Background()
	before := m.All()

	ghost := core.NewNote("ghost", "never stored")
	require.Error(t, m.Update(ctx, ghost))
	require.Error(t, m.Delete(ctx, ghost))

	// Nothing changed, so no snapshot may arrive; give it a moment.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, m.All())
	assert.Equal(t, before, m.Filtered())
}

func TestSetQuery_DerivesFilteredList(t *testing.T) {
	m := newModel(t, sampleNotes()...)

	m.SetQuery("2")
	filtered := m.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Title 2", filtered[0].Title)

	m.SetQuery("")
	restored := m.Filtered()
	require.Len(t, restored, 3)
	assert.Equal(t, "Title 3", restored[0].Title)
	assert.Equal(t, "Title 2", restored[1].Title)
	assert.Equal(t, "Title 1", restored[2].Title)
}

func TestQueryAppliesToLaterSnapshots(t *testing.T) {
	m := newModel(t, sampleNotes()...)
	ctx := context.Background()

	m.SetQuery("brand")
	assert.Empty(t, m.Filtered())

	require.NoError(t, m.Add(ctx, "Brand new", "fresh off the press"))

	eventually(t, func() bool { return len(m.Filtered()) == 1 }, "new note should match the standing query")
	assert.Equal(t, "Brand new", m.Filtered()[0].Title)
	assert.Len(t, m.All(), 4)
}

func TestChanged_SignalsOnEitherInput(t *testing.T) {
	m := newModel(t, sampleNotes()...)

	drain(m.Changed())
	m.SetQuery("1")
	select {
	case <-m.Changed():
	case <-time.After(settleTimeout):
		t.Fatal("expected a change signal after SetQuery")
	}

	drain(m.Changed())
	require.NoError(t, m.Add(context.Background(), "another", "note"))
	select {
	case <-m.Changed():
	case <-time.After(settleTimeout):
		t.Fatal("expected a change signal after a snapshot")
	}
}

func TestClose_StopsUpdates(t *testing.T) {
	m := newModel(t, sampleNotes()...)
	m.Close()

	require.NoError(t, m.Add(context.Background(), "late", "after close"))
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, m.All(), 3, "a closed model keeps its last state")
}

func drain(ch <-chan struct{}) {
	select {
	case <-ch:
	default:
	}
}
