package common

import "strconv"

// Key is a non-character key code delivered with a special key press.
// Values match GLFW key codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key int

// Special keys recognised by the demos.
const (
	KeyEscape   Key = 256 // Escape key (GLFW)
	KeyRight    Key = 262 // Right arrow (GLFW)
	KeyLeft     Key = 263 // Left arrow (GLFW)
	KeyDown     Key = 264 // Down arrow (GLFW)
	KeyUp       Key = 265 // Up arrow (GLFW)
	KeyPageUp   Key = 266 // Page Up (GLFW)
	KeyPageDown Key = 267 // Page Down (GLFW)
)

// CharEscape is the character code delivered for the Escape key (ASCII ESC).
const CharEscape rune = 27

var keyNames = map[Key]string{
	KeyEscape:   "Escape",
	KeyRight:    "Right",
	KeyLeft:     "Left",
	KeyDown:     "Down",
	KeyUp:       "Up",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
}

// String returns the key's name, or its numeric code if the key is unnamed.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// ParseKey returns the Key with the given name as produced by Key.String.
//
// Parameters:
//   - name: the key name, e.g. "PageUp"
//
// Returns:
//   - Key: the matching key
//   - bool: false if no key has that name
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}
