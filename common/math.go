package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// StepClamped adds delta to v and clamps the result into the closed interval [lo, hi].
//
// Parameters:
//   - v: the current value
//   - delta: the signed step to apply
//   - lo, hi: the interval bounds
//
// Returns:
//   - float32: the stepped and clamped value
func StepClamped(v, delta, lo, hi float32) float32 {
	return mgl32.Clamp(v+delta, lo, hi)
}

// StepAtMost adds delta to v and caps the result at hi. There is no lower bound.
//
// Parameters:
//   - v: the current value
//   - delta: the signed step to apply
//   - hi: the upper bound
//
// Returns:
//   - float32: the stepped value, at most hi
func StepAtMost(v, delta, hi float32) float32 {
	return math32.Min(v+delta, hi)
}

// StepAtLeast adds delta to v and floors the result at lo. There is no upper bound.
//
// Parameters:
//   - v: the current value
//   - delta: the signed step to apply
//   - lo: the lower bound
//
// Returns:
//   - float32: the stepped value, at least lo
func StepAtLeast(v, delta, lo float32) float32 {
	return math32.Max(v+delta, lo)
}

// WrapDegrees normalises an angle in degrees into [0, 360).
//
// Parameters:
//   - deg: the angle in degrees, any sign or magnitude
//
// Returns:
//   - float32: the equivalent angle in [0, 360)
func WrapDegrees(deg float32) float32 {
	d := math32.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// a tiny negative remainder rounds up to exactly 360 when shifted
	if d >= 360 {
		d -= 360
	}
	return d
}

// Toggle01 flips a {0, 1} flag stored as a float.
func Toggle01(v float32) float32 {
	if v != 0 {
		return 0
	}
	return 1
}
