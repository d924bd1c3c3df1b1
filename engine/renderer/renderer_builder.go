package renderer

import "log/slog"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithLogger sets the logger used for frame diagnostics.
//
// Parameters:
//   - logger: the logger to use; nil keeps the default
//
// Returns:
//   - RendererBuilderOption: a function that applies the logger option to a renderer
func WithLogger(logger *slog.Logger) RendererBuilderOption {
	return func(r *renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithPresentCallback registers a function called after every Present command is executed.
//
// Parameters:
//   - fn: the callback, receiving the number of frames presented so far
//
// Returns:
//   - RendererBuilderOption: a function that applies the callback option to a renderer
func WithPresentCallback(fn func(frame uint64)) RendererBuilderOption {
	return func(r *renderer) {
		r.onPresent = fn
	}
}
