// package common contains plain value types and helpers shared by the engine packages and the demos.
// They are not interface-wrapped structs, just plain data.
package common

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// RGBA is a colour or reflectance vector in the layout expected by the fixed-function pipeline.
type RGBA [4]float32

// Opaque returns an RGBA with the given channels and alpha 1.
//
// Parameters:
//   - r, g, b: colour channels
//
// Returns:
//   - RGBA: the colour with alpha 1
func Opaque(r, g, b float32) RGBA {
	return RGBA{r, g, b, 1}
}

// Gray returns an opaque RGBA with all three colour channels set to v.
func Gray(v float32) RGBA {
	return RGBA{v, v, v, 1}
}

// Black is opaque black, the fixed-function default for ambient light and emission.
var Black = Opaque(0, 0, 0)

// White is opaque white.
var White = Opaque(1, 1, 1)

// Vec3 returns the colour channels as a vector, dropping alpha.
func (c RGBA) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c[0], c[1], c[2]}
}

// FormatReadout renders a value for the on-screen parameter readout: the "%f"
// formatting of the value cut to its first four characters, so 1 reads "1.00"
// and 128 reads "128.".
//
// Parameters:
//   - v: the value to format
//
// Returns:
//   - string: at most four characters
func FormatReadout(v float32) string {
	s := fmt.Sprintf("%f", float64(v))
	if len(s) > 4 {
		s = s[:4]
	}
	return s
}
