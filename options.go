package framegraph

import "log/slog"

// Option configures a System during construction.
//
// Example:
//
//	sys := framegraph.NewSystem(
//		framegraph.WithBackend(myBackend),
//		framegraph.WithLogger(slog.Default()),
//	)
type Option func(*systemOptions)

// systemOptions holds optional configuration applied by NewSystem before
// the System is returned.
type systemOptions struct {
	backend Backend
	logger  *slog.Logger
}

// defaultOptions returns the default system options.
func defaultOptions() systemOptions {
	return systemOptions{
		backend: nil, // set via WithBackend or SetBackend; without one, Execute is a no-op
		logger:  nil, // falls back to the package-level Logger()
	}
}

// WithBackend sets the Backend a System compiles and executes against.
// Equivalent to calling SetBackend after construction.
//
// Example:
//
//	sys := framegraph.NewSystem(framegraph.WithBackend(myBackend))
func WithBackend(b Backend) Option {
	return func(o *systemOptions) {
		o.backend = b
	}
}

// WithLogger sets a logger private to this System, overriding the
// package-level logger installed by SetLogger for diagnostics emitted
// during this System's Compile/Execute calls.
//
// Example:
//
//	sys := framegraph.NewSystem(framegraph.WithLogger(slog.New(handler)))
func WithLogger(l *slog.Logger) Option {
	return func(o *systemOptions) {
		o.logger = l
	}
}
