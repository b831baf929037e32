package quill_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/quillstack/quill"
	"github.com/quillstack/quill/pkg/core"
)

// Example_basic demonstrates wiring the stack over a sqlite database,
// saving a note and reading the sorted list back.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "quill-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ctx := context.Background()

	app, err := quill.New(ctx, filepath.Join(tmpDir, "notes.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	// 1. Save a note
	if err := app.Service.AddNote(ctx, core.NewNote("hello-world", "My first note.")); err != nil {
		log.Fatal(err)
	}

	// 2. Read the list back, newest first
	notes, err := app.Service.FetchNotes(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d note(s), first titled %q\n", len(notes), notes[0].Title)
	// Output:
	// Found 1 note(s), first titled "hello-world"
}

// Example_filteredView demonstrates the query-driven view model.
func Example_filteredView() {
	tmpDir, err := os.MkdirTemp("", "quill-view-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ctx := context.Background()

	app, err := quill.New(ctx, filepath.Join(tmpDir, "notes.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	for i, title := range []string{"groceries", "meeting notes", "gift ideas"} {
		note := core.Note{
			ID:           uuid.New(),
			Title:        title,
			CreationDate: base.Add(time.Duration(i) * time.Minute),
		}
		if err := app.Service.AddNote(ctx, note); err != nil {
			log.Fatal(err)
		}
	}

	vm, err := app.NewView(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer vm.Close()

	vm.SetQuery("g")
	for _, n := range vm.Filtered() {
		fmt.Println(n.Title)
	}
	// Output:
	// gift ideas
	// meeting notes
	// groceries
}
