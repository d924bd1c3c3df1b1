package scene

import "log/slog"

// sceneConfig collects construction options for NewScene.
type sceneConfig struct {
	width, height int
	logger        *slog.Logger
}

// SceneBuilderOption is a functional option applied during NewScene.
type SceneBuilderOption func(*sceneConfig)

// WithViewport sets the drawable size the camera is created for.
//
// Parameters:
//   - width, height: the size in pixels
//
// Returns:
//   - SceneBuilderOption: a function that applies the viewport option
func WithViewport(width, height int) SceneBuilderOption {
	return func(c *sceneConfig) {
		c.width = width
		c.height = height
	}
}

// WithLogger sets the logger for event diagnostics.
func WithLogger(logger *slog.Logger) SceneBuilderOption {
	return func(c *sceneConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
