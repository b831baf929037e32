// Package quill is the composition root for the quill note stack.
//
// It connects the core business logic (Domain Layer) with the persistence
// adapters using a hexagonal layout: the store only keeps records, the
// data source adds ordering, typed errors and change broadcast, the
// repository adapts records to domain notes, and the service is the seam
// where business rules live.
//
// Reactivity:
//
// Every successful save, update or delete, and every change another
// process makes to the same database, publishes a complete, freshly
// sorted snapshot of the note set to all current subscribers. The view
// model in pkg/view consumes that stream and derives a filtered list from
// the note set and a search query.
//
// Usage:
//
//	// Wire the stack over a sqlite database
//	app, err := quill.New(ctx, "/home/me/.quill/notes.db",
//		quill.WithLogger(logger),
//	)
//
//	// Work with notes through the service
//	err = app.Service.AddNote(ctx, core.NewNote("groceries", "milk, eggs"))
//
//	// Or drive a screen through the view model
//	vm, err := app.NewView(ctx)
//	vm.SetQuery("eggs")
//	notes := vm.Filtered()
package quill
