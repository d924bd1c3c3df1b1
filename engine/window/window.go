package window

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/event"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
// All methods must be called from the thread that created the window.
type Window interface {
	// SetEventCallback sets the function that receives every window and input event.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetEventCallback(callback func(e event.Event))

	// Title returns the title displayed in the title bar.
	Title() string

	// WaitEvents blocks until at least one event is available, then dispatches
	// all pending events to the event callback.
	WaitEvents()

	// SwapBuffers publishes the back buffer. It is a no-op for single-buffered windows.
	SwapBuffers()

	// DoubleBuffered reports whether the window presents through a back buffer.
	DoubleBuffered() bool

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// Config is the creation-time configuration shared by Window implementations.
type Config struct {
	// Title is the window title displayed in the title bar.
	Title string

	// Width and Height are the requested client area size in pixels.
	Width, Height int

	// X and Y are the requested screen position of the window.
	X, Y int

	// DoubleBuffered selects a back-buffered surface presented with SwapBuffers.
	DoubleBuffered bool
}

// NewConfig returns the default Config with each option applied in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Config: the configuration
func NewConfig(options ...WindowBuilderOption) Config {
	c := Config{
		Title:          "Default Window Title",
		Width:          500,
		Height:         500,
		X:              100,
		Y:              100,
		DoubleBuffered: true,
	}
	for _, opt := range options {
		opt(&c)
	}
	return c
}
