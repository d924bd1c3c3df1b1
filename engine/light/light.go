package light

import "github.com/Carmen-Shannon/oxy-gl/common"

// LightType identifies the kind of light source, derived from the w component of its position.
type LightType int

const (
	// LightTypeDirectional is a light at infinity (w = 0). It shines along its
	// position vector toward the origin with no distance attenuation.
	LightTypeDirectional LightType = iota

	// LightTypePositional is a light at a finite point (w != 0) that emits in all
	// directions and is subject to distance attenuation.
	LightTypePositional
)

func (t LightType) String() string {
	if t == LightTypePositional {
		return "positional"
	}
	return "directional"
}

// MaxLights is the number of light units the fixed-function pipeline guarantees.
const MaxLights = 8

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	index                int
	ambient              common.RGBA
	diffuse              common.RGBA
	specular             common.RGBA
	position             [4]float32
	quadraticAttenuation float32
	enabled              bool
}

// Light describes one fixed-function light unit: its colours, its homogeneous
// position and its quadratic distance attenuation. Lights are plain descriptions;
// the renderer turns them into configure, position and enable commands.
type Light interface {
	// Index returns the light unit number in [0, MaxLights).
	Index() int

	// Type returns whether the light is directional or positional.
	//
	// Returns:
	//   - LightType: derived from the w component of Position
	Type() LightType

	// Ambient returns the light's ambient colour.
	Ambient() common.RGBA

	// Diffuse returns the light's diffuse colour.
	Diffuse() common.RGBA

	// Specular returns the light's specular colour.
	Specular() common.RGBA

	// Position returns the homogeneous position. w = 0 makes the light directional.
	//
	// Returns:
	//   - [4]float32: position as (x, y, z, w)
	Position() [4]float32

	// QuadraticAttenuation returns the quadratic distance attenuation factor.
	QuadraticAttenuation() float32

	// Enabled returns whether the light unit is switched on.
	Enabled() bool

	// SetEnabled switches the light unit on or off.
	//
	// Parameters:
	//   - enabled: true to switch on
	SetEnabled(enabled bool)

	// SetDiffuseAndSpecular sets the diffuse and specular colours together.
	//
	// Parameters:
	//   - c: the colour for both terms
	SetDiffuseAndSpecular(c common.RGBA)

	// SetPosition sets the homogeneous position.
	//
	// Parameters:
	//   - x, y, z, w: the position; w = 0 for a directional light
	SetPosition(x, y, z, w float32)

	// SetQuadraticAttenuation sets the quadratic attenuation factor.
	//
	// Parameters:
	//   - t: the attenuation factor (>= 0)
	SetQuadraticAttenuation(t float32)
}

var _ Light = &lightImpl{}

// NewLight creates a Light for the given unit with fixed-function defaults and
// any provided options applied. Defaults: black ambient, white diffuse and
// specular, directional along +z, no attenuation, enabled.
//
// Parameters:
//   - index: the light unit number in [0, MaxLights)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(index int, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		index:    index,
		ambient:  common.Black,
		diffuse:  common.White,
		specular: common.White,
		position: [4]float32{0, 0, 1, 0},
		enabled:  true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Index() int {
	return l.index
}

func (l *lightImpl) Type() LightType {
	if l.position[3] == 0 {
		return LightTypeDirectional
	}
	return LightTypePositional
}

func (l *lightImpl) Ambient() common.RGBA {
	return l.ambient
}

func (l *lightImpl) Diffuse() common.RGBA {
	return l.diffuse
}

func (l *lightImpl) Specular() common.RGBA {
	return l.specular
}

func (l *lightImpl) Position() [4]float32 {
	return l.position
}

func (l *lightImpl) QuadraticAttenuation() float32 {
	return l.quadraticAttenuation
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func (l *lightImpl) SetDiffuseAndSpecular(c common.RGBA) {
	l.diffuse = c
	l.specular = c
}

func (l *lightImpl) SetPosition(x, y, z, w float32) {
	l.position = [4]float32{x, y, z, w}
}

func (l *lightImpl) SetQuadraticAttenuation(t float32) {
	l.quadraticAttenuation = t
}
