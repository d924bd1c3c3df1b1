// Package event defines the input and window events delivered to a scene by the event loop.
package event

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

// Kind identifies which of the four event kinds an Event carries.
type Kind int

const (
	// KindRedraw asks for the frame to be repainted.
	KindRedraw Kind = iota

	// KindResize reports a new drawable size in pixels.
	KindResize

	// KindKeyPress reports a character key.
	KindKeyPress

	// KindSpecialKeyPress reports a non-character key such as an arrow or page key.
	KindSpecialKeyPress
)

func (k Kind) String() string {
	switch k {
	case KindRedraw:
		return "Redraw"
	case KindResize:
		return "Resize"
	case KindKeyPress:
		return "KeyPress"
	case KindSpecialKeyPress:
		return "SpecialKeyPress"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a single event from the windowing collaborator.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind Kind

	// Width and Height are the new drawable size for KindResize.
	Width, Height int

	// Char is the character for KindKeyPress.
	Char rune

	// Key is the key code for KindSpecialKeyPress.
	Key common.Key

	// X and Y are the cursor position at the time of a key press.
	X, Y int
}

// Redraw returns a redraw request.
func Redraw() Event {
	return Event{Kind: KindRedraw}
}

// Resize returns a resize notification.
//
// Parameters:
//   - width, height: the new drawable size in pixels
//
// Returns:
//   - Event: the resize event
func Resize(width, height int) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}

// KeyPress returns a character key press.
//
// Parameters:
//   - char: the character typed
//   - x, y: the cursor position
//
// Returns:
//   - Event: the key press event
func KeyPress(char rune, x, y int) Event {
	return Event{Kind: KindKeyPress, Char: char, X: x, Y: y}
}

// SpecialKeyPress returns a non-character key press.
//
// Parameters:
//   - key: the key code
//   - x, y: the cursor position
//
// Returns:
//   - Event: the special key press event
func SpecialKeyPress(key common.Key, x, y int) Event {
	return Event{Kind: KindSpecialKeyPress, Key: key, X: x, Y: y}
}

func (e Event) String() string {
	switch e.Kind {
	case KindResize:
		return fmt.Sprintf("Resize(%d, %d)", e.Width, e.Height)
	case KindKeyPress:
		return fmt.Sprintf("KeyPress(%q)", e.Char)
	case KindSpecialKeyPress:
		return fmt.Sprintf("SpecialKeyPress(%s)", e.Key)
	default:
		return e.Kind.String()
	}
}

// FromKeys turns a string of key presses into events. Printable characters become
// KeyPress events; a name in angle brackets, such as "<PageUp>", becomes a
// SpecialKeyPress, and "<Esc>" becomes the Escape character.
//
// Parameters:
//   - keys: the key script, e.g. "aaa<PageDown>r"
//
// Returns:
//   - []Event: the decoded events in order
//   - error: error if a bracketed name is unknown or unterminated
func FromKeys(keys string) ([]Event, error) {
	var events []Event
	runes := []rune(keys)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '<' {
			events = append(events, KeyPress(runes[i], 0, 0))
			continue
		}
		end := i + 1
		for end < len(runes) && runes[end] != '>' {
			end++
		}
		if end == len(runes) {
			return nil, fmt.Errorf("unterminated key name at offset %d in %q", i, keys)
		}
		name := string(runes[i+1 : end])
		switch {
		case name == "Esc":
			events = append(events, KeyPress(common.CharEscape, 0, 0))
		default:
			k, ok := common.ParseKey(name)
			if !ok {
				return nil, fmt.Errorf("unknown key name %q", name)
			}
			events = append(events, SpecialKeyPress(k, 0, 0))
		}
		i = end
	}
	return events, nil
}
