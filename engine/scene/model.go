package scene

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
)

// Model describes one demo: its fixed presentation, its parameter state S and
// the pure functions that update and draw that state. Models hold no mutable
// state of their own; the current S is owned by the Scene driving the model.
type Model[S any] interface {
	// Name returns the short identifier used to launch the demo.
	Name() string

	// Title returns the window title.
	Title() string

	// Interaction returns the key help printed at startup, one line per entry.
	Interaction() []string

	// DoubleBuffered reports whether frames are presented through a back buffer.
	DoubleBuffered() bool

	// Initial returns the state the demo starts in and resets to.
	Initial() S

	// NewCamera returns the view mapping for a drawable of the given size.
	//
	// Parameters:
	//   - width, height: the drawable size in pixels
	//
	// Returns:
	//   - camera.Camera: the camera
	NewCamera(width, height int) camera.Camera

	// Setup returns the one-time pipeline configuration run before the first frame.
	Setup() []renderer.Command

	// Key applies a character key to s.
	//
	// Parameters:
	//   - s: the current state
	//   - char: the character pressed
	//
	// Returns:
	//   - S: the new state
	//   - bool: false if the key is not bound, in which case s is returned unchanged
	Key(s S, char rune) (S, bool)

	// SpecialKey applies an arrow or page key to s, with the same contract as Key.
	SpecialKey(s S, key common.Key) (S, bool)

	// Render returns the draw pass for s, from clearing the frame to presenting it.
	// It must not depend on anything but s and cam.
	//
	// Parameters:
	//   - s: the state to draw
	//   - cam: the current view mapping
	//
	// Returns:
	//   - []renderer.Command: the frame
	Render(s S, cam camera.Camera) []renderer.Command
}

// KeyBindings maps keys to state transitions. Models embed it to implement
// the Key and SpecialKey methods of Model from a table.
type KeyBindings[S any] struct {
	Keys    map[rune]func(S) S
	Special map[common.Key]func(S) S
}

// Key applies the transition bound to char, if any.
func (b KeyBindings[S]) Key(s S, char rune) (S, bool) {
	fn, ok := b.Keys[char]
	if !ok {
		return s, false
	}
	return fn(s), true
}

// SpecialKey applies the transition bound to key, if any.
func (b KeyBindings[S]) SpecialKey(s S, key common.Key) (S, bool) {
	fn, ok := b.Special[key]
	if !ok {
		return s, false
	}
	return fn(s), true
}
