package platform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quillstack/quill/pkg/core"
	"github.com/quillstack/quill/pkg/datasource"
	"github.com/quillstack/quill/pkg/repository"
	"github.com/quillstack/quill/pkg/storage"
	"github.com/quillstack/quill/pkg/storage/sqlite"
	"github.com/quillstack/quill/pkg/view"
)

// App bundles one wired stack: store, data source, service. Construction
// is explicit and injected top-down; there is no process-wide singleton.
type App struct {
	Store   storage.Store
	Source  *datasource.Source
	Service *core.Service

	logger *slog.Logger
}

// New opens (or creates) the note store at path and wires the full stack
// on top of it. Background plumbing (the external-change pump) stops when
// ctx is canceled.
//
//	app, err := quill.New(ctx, "~/.quill/notes.db", quill.WithLogger(logger))
func New(ctx context.Context, path string, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		var err error
		store, err = sqlite.Open(sqlite.Config{Path: path, Logger: o.logger})
		if err != nil {
			return nil, fmt.Errorf("open note store: %w", err)
		}
	}

	source := datasource.New(store, datasource.WithLogger(o.logger))
	if o.watch {
		if err := source.Start(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("start change watcher: %w", err)
		}
	}

	repo := repository.New(source, repository.WithLogger(o.logger))
	service := core.NewService(repo)

	return &App{
		Store:   store,
		Source:  source,
		Service: service,
		logger:  o.logger,
	}, nil
}

// NewView builds a view model over the app's service.
func (a *App) NewView(ctx context.Context) (*view.Model, error) {
	return view.New(ctx, a.Service, view.WithLogger(a.logger))
}

// Close releases the store. Subscriptions end when their contexts do.
func (a *App) Close() error {
	return a.Store.Close()
}
