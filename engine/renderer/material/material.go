package material

import "github.com/Carmen-Shannon/oxy-gl/common"

// Face selects which polygon faces a material applies to.
type Face int

const (
	// FaceFront applies to front faces only.
	FaceFront Face = iota

	// FaceBack applies to back faces only.
	FaceBack

	// FaceFrontAndBack applies to both faces.
	FaceFrontAndBack
)

func (f Face) String() string {
	switch f {
	case FaceBack:
		return "back"
	case FaceFrontAndBack:
		return "front_and_back"
	default:
		return "front"
	}
}

// MaxShininess is the largest specular exponent the fixed-function pipeline accepts.
const MaxShininess = 128

// material is the implementation of the Material interface.
type material struct {
	name      string
	face      Face
	ambient   common.RGBA
	diffuse   common.RGBA
	specular  common.RGBA
	emission  common.RGBA
	shininess float32
}

// Material describes the reflectance of a surface under the fixed-function
// lighting model: ambient, diffuse and specular reflectance, the specular
// exponent, and emitted light.
//
// Materials are immutable once built. The demos build a fresh one each frame
// from their current parameters.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Face retrieves the faces the material applies to.
	Face() Face

	// Ambient retrieves the ambient reflectance.
	Ambient() common.RGBA

	// Diffuse retrieves the diffuse reflectance.
	Diffuse() common.RGBA

	// Specular retrieves the specular reflectance.
	Specular() common.RGBA

	// Emission retrieves the emitted colour.
	Emission() common.RGBA

	// Shininess retrieves the specular exponent in [0, MaxShininess].
	Shininess() float32
}

var _ Material = &material{}

// NewMaterial creates a new Material with fixed-function defaults and any provided
// options applied. Defaults: front faces, ambient 0.2 grey, diffuse 0.8 grey,
// black specular and emission, shininess 0.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		face:     FaceFront,
		ambient:  common.Gray(0.2),
		diffuse:  common.Gray(0.8),
		specular: common.Black,
		emission: common.Black,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Face() Face {
	return m.face
}

func (m *material) Ambient() common.RGBA {
	return m.ambient
}

func (m *material) Diffuse() common.RGBA {
	return m.diffuse
}

func (m *material) Specular() common.RGBA {
	return m.specular
}

func (m *material) Emission() common.RGBA {
	return m.emission
}

func (m *material) Shininess() float32 {
	return m.shininess
}
