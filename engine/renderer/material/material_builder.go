package material

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MaterialBuilderOption is a function that configures a Material instance during construction.
type MaterialBuilderOption func(*material)

// WithName sets the material's identifier.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithFace sets which faces the material applies to.
//
// Parameters:
//   - face: the target faces
//
// Returns:
//   - MaterialBuilderOption: a function that applies the face option to a material
func WithFace(face Face) MaterialBuilderOption {
	return func(m *material) {
		m.face = face
	}
}

// WithAmbient sets the ambient reflectance.
//
// Parameters:
//   - c: the ambient reflectance
//
// Returns:
//   - MaterialBuilderOption: a function that applies the ambient reflectance to a material
func WithAmbient(c common.RGBA) MaterialBuilderOption {
	return func(m *material) {
		m.ambient = c
	}
}

// WithDiffuse sets the diffuse reflectance.
//
// Parameters:
//   - c: the diffuse reflectance
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse reflectance to a material
func WithDiffuse(c common.RGBA) MaterialBuilderOption {
	return func(m *material) {
		m.diffuse = c
	}
}

// WithAmbientAndDiffuse sets the ambient and diffuse reflectance to the same value.
//
// Parameters:
//   - c: the reflectance for both terms
//
// Returns:
//   - MaterialBuilderOption: a function that applies both reflectances to a material
func WithAmbientAndDiffuse(c common.RGBA) MaterialBuilderOption {
	return func(m *material) {
		m.ambient = c
		m.diffuse = c
	}
}

// WithSpecular sets the specular reflectance.
//
// Parameters:
//   - c: the specular reflectance
//
// Returns:
//   - MaterialBuilderOption: a function that applies the specular reflectance to a material
func WithSpecular(c common.RGBA) MaterialBuilderOption {
	return func(m *material) {
		m.specular = c
	}
}

// WithEmission sets the emitted colour.
//
// Parameters:
//   - c: the emitted colour
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emission to a material
func WithEmission(c common.RGBA) MaterialBuilderOption {
	return func(m *material) {
		m.emission = c
	}
}

// WithShininess sets the specular exponent, clamped into [0, MaxShininess].
//
// Parameters:
//   - shininess: the specular exponent
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shininess to a material
func WithShininess(shininess float32) MaterialBuilderOption {
	return func(m *material) {
		m.shininess = mgl32.Clamp(shininess, 0, MaxShininess)
	}
}
