package window

// WindowBuilderOption is a functional option for configuring a window.
// Use the With* functions to create options.
type WindowBuilderOption func(c *Config)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(c *Config) {
		c.Title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(c *Config) {
		c.Width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(c *Config) {
		c.Height = height
	}
}

// WithPosition sets the initial screen position of the window.
//
// Parameters:
//   - x, y: position of the top-left corner in screen coordinates
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithPosition(x, y int) WindowBuilderOption {
	return func(c *Config) {
		c.X = x
		c.Y = y
	}
}

// WithDoubleBuffer selects double or single buffering.
//
// Parameters:
//   - enabled: true for a back-buffered surface
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithDoubleBuffer(enabled bool) WindowBuilderOption {
	return func(c *Config) {
		c.DoubleBuffered = enabled
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) WindowBuilderOption {
	return func(c *Config) {
		*c = cfg
	}
}
