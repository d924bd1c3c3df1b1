package light

import "github.com/Carmen-Shannon/oxy-gl/common"

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithAmbient sets the light's ambient colour.
//
// Parameters:
//   - c: the ambient colour
//
// Returns:
//   - LightBuilderOption: a function that applies the ambient colour to a lightImpl
func WithAmbient(c common.RGBA) LightBuilderOption {
	return func(l *lightImpl) {
		l.ambient = c
	}
}

// WithDiffuse sets the light's diffuse colour.
//
// Parameters:
//   - c: the diffuse colour
//
// Returns:
//   - LightBuilderOption: a function that applies the diffuse colour to a lightImpl
func WithDiffuse(c common.RGBA) LightBuilderOption {
	return func(l *lightImpl) {
		l.diffuse = c
	}
}

// WithSpecular sets the light's specular colour.
//
// Parameters:
//   - c: the specular colour
//
// Returns:
//   - LightBuilderOption: a function that applies the specular colour to a lightImpl
func WithSpecular(c common.RGBA) LightBuilderOption {
	return func(l *lightImpl) {
		l.specular = c
	}
}

// WithDiffuseAndSpecular sets the diffuse and specular colours to the same value,
// which is how the demos describe a coloured lamp.
//
// Parameters:
//   - c: the colour for both terms
//
// Returns:
//   - LightBuilderOption: a function that applies both colours to a lightImpl
func WithDiffuseAndSpecular(c common.RGBA) LightBuilderOption {
	return func(l *lightImpl) {
		l.diffuse = c
		l.specular = c
	}
}

// WithPosition sets the homogeneous position of the light.
//
// Parameters:
//   - x, y, z: the position or direction components
//   - w: 1 for a positional light, 0 for a directional one
//
// Returns:
//   - LightBuilderOption: a function that applies the position to a lightImpl
func WithPosition(x, y, z, w float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = [4]float32{x, y, z, w}
	}
}

// WithQuadraticAttenuation sets the quadratic distance attenuation factor.
//
// Parameters:
//   - t: the attenuation factor
//
// Returns:
//   - LightBuilderOption: a function that applies the attenuation to a lightImpl
func WithQuadraticAttenuation(t float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.quadraticAttenuation = t
	}
}

// WithEnabled sets whether the light unit is switched on.
//
// Parameters:
//   - enabled: true to switch on
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled flag to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}
