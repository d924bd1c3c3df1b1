package scene

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/event"
)

// Effect tells the event loop what to do after an event has been applied.
type Effect uint8

const (
	// EffectNone means nothing changed.
	EffectNone Effect = 0

	// EffectRedraw asks for the frame to be drawn again.
	EffectRedraw Effect = 1 << 0

	// EffectQuit ends the event loop successfully.
	EffectQuit Effect = 1 << 1
)

// Has reports whether all bits of f are set in e.
func (e Effect) Has(f Effect) bool {
	return e&f == f && f != 0
}

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectRedraw:
		return "redraw"
	case EffectQuit:
		return "quit"
	default:
		return "redraw|quit"
	}
}

// Update is the transition function shared by every demo. It applies e to s
// and reports the follow-up effect; it never mutates anything outside its result.
//
//   - Redraw and Resize leave s unchanged and ask for a redraw. The view mapping
//     is not part of s; callers resize their camera on Resize.
//   - The Escape character asks to quit.
//   - A bound key returns the updated state and asks for a redraw.
//   - Anything else is ignored.
//
// Parameters:
//   - m: the demo model
//   - s: the current state
//   - e: the event to apply
//
// Returns:
//   - S: the next state
//   - Effect: what the event loop should do next
func Update[S any](m Model[S], s S, e event.Event) (S, Effect) {
	switch e.Kind {
	case event.KindRedraw, event.KindResize:
		return s, EffectRedraw
	case event.KindKeyPress:
		if e.Char == common.CharEscape {
			return s, EffectQuit
		}
		if next, ok := m.Key(s, e.Char); ok {
			return next, EffectRedraw
		}
	case event.KindSpecialKeyPress:
		if next, ok := m.SpecialKey(s, e.Key); ok {
			return next, EffectRedraw
		}
	}
	return s, EffectNone
}
