package platform

import (
	"log/slog"

	"github.com/quillstack/quill/pkg/storage"
)

// options holds the internal configuration for the quill stack.
type options struct {
	store  storage.Store
	logger *slog.Logger
	watch  bool
}

// Option defines a functional option for configuring quill.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		store:  nil,
		logger: slog.Default(),
		watch:  true,
	}
}

// WithLogger sets the logger for every layer of the stack.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore injects a custom store (e.g. the in-memory one for tests).
// When provided, the default sqlite store is skipped and the path argument
// is ignored.
func WithStore(store storage.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithWatch enables or disables watching the store for changes made by
// other processes. Enabled by default; stores that cannot watch make it a
// no-op.
func WithWatch(enabled bool) Option {
	return func(o *options) {
		o.watch = enabled
	}
}
