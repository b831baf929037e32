package quill

import (
	"context"
	"log/slog"

	"github.com/quillstack/quill/internal/platform"
	"github.com/quillstack/quill/pkg/storage"
)

// --- Types ---

// App is the wired stack returned by New.
type App = platform.App

// --- Configuration ---

// Option defines a functional option for configuring quill.
type Option = platform.Option

// WithLogger sets the logger for every layer of the stack.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore injects a custom store implementation (e.g. memory.New() for
// tests). The path argument of New is ignored when a store is injected.
func WithStore(store storage.Store) Option {
	return platform.WithStore(store)
}

// WithWatch enables or disables external-change watching on the store.
func WithWatch(enabled bool) Option {
	return platform.WithWatch(enabled)
}

// --- Factory ---

// New opens the note store at path and wires the full stack.
func New(ctx context.Context, path string, opts ...Option) (*App, error) {
	return platform.New(ctx, path, opts...)
}
