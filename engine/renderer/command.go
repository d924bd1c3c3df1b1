package renderer

import (
	"fmt"
	"io"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

// Op identifies the kind of a Command.
type Op int

const (
	OpClear Op = iota
	OpCapability
	OpCullFace
	OpViewport
	OpLoadProjection
	OpLoadIdentity
	OpMultMatrix
	OpPushMatrix
	OpPopMatrix
	OpTranslate
	OpRotate
	OpColor
	OpLineWidth
	OpDraw
	OpSphere
	OpConfigureLight
	OpPositionLight
	OpEnableLight
	OpLightModel
	OpMaterial
	OpText
	OpPresent
)

var opNames = [...]string{
	OpClear:          "clear",
	OpCapability:     "capability",
	OpCullFace:       "cull_face",
	OpViewport:       "viewport",
	OpLoadProjection: "load_projection",
	OpLoadIdentity:   "load_identity",
	OpMultMatrix:     "mult_matrix",
	OpPushMatrix:     "push_matrix",
	OpPopMatrix:      "pop_matrix",
	OpTranslate:      "translate",
	OpRotate:         "rotate",
	OpColor:          "color",
	OpLineWidth:      "line_width",
	OpDraw:           "draw",
	OpSphere:         "sphere",
	OpConfigureLight: "configure_light",
	OpPositionLight:  "position_light",
	OpEnableLight:    "enable_light",
	OpLightModel:     "light_model",
	OpMaterial:       "material",
	OpText:           "text",
	OpPresent:        "present",
}

func (o Op) String() string {
	if o >= 0 && int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Command is one step of a frame description. A scene renders to an ordered
// list of commands and a RendererBackend executes them against the drawing
// collaborator, so frames can be inspected without a display.
type Command interface {
	// Op returns the kind of the command.
	Op() Op
}

// Capability is a pipeline feature that can be switched on and off.
type Capability int

const (
	CapabilityDepthTest Capability = iota
	CapabilityLighting
	CapabilityCullFace
)

func (c Capability) String() string {
	switch c {
	case CapabilityDepthTest:
		return "depth_test"
	case CapabilityLighting:
		return "lighting"
	case CapabilityCullFace:
		return "cull_face"
	default:
		return fmt.Sprintf("capability(%d)", int(c))
	}
}

// PrimitiveMode selects how the vertices of a Draw command are assembled.
type PrimitiveMode int

const (
	// PrimitiveLineStrip joins consecutive vertices with line segments.
	PrimitiveLineStrip PrimitiveMode = iota

	// PrimitiveLines draws one segment per vertex pair.
	PrimitiveLines

	// PrimitivePolygon fills a convex polygon.
	PrimitivePolygon
)

func (p PrimitiveMode) String() string {
	switch p {
	case PrimitiveLineStrip:
		return "line_strip"
	case PrimitiveLines:
		return "lines"
	case PrimitivePolygon:
		return "polygon"
	default:
		return fmt.Sprintf("primitive(%d)", int(p))
	}
}

// Clear clears the colour buffer, and the depth buffer when Depth is set.
type Clear struct {
	Color common.RGBA
	Depth bool
}

// SetCapability switches a pipeline capability.
type SetCapability struct {
	Capability Capability
	Enabled    bool
}

// CullFace selects which faces are culled while CapabilityCullFace is on.
type CullFace struct {
	Face material.Face
}

// Viewport sets the drawable area in pixels.
type Viewport struct {
	Width, Height int
}

// LoadProjection replaces the projection matrix.
type LoadProjection struct {
	Matrix mgl32.Mat4
}

// LoadIdentity resets the model-view matrix.
type LoadIdentity struct{}

// MultMatrix multiplies the model-view matrix by Matrix, e.g. a look-at view transform.
type MultMatrix struct {
	Matrix mgl32.Mat4
}

// PushMatrix saves the model-view matrix.
type PushMatrix struct{}

// PopMatrix restores the last saved model-view matrix.
type PopMatrix struct{}

// Translate multiplies the model-view matrix by a translation.
type Translate struct {
	X, Y, Z float32
}

// Rotate multiplies the model-view matrix by a rotation of Degrees about Axis.
type Rotate struct {
	Degrees float32
	Axis    mgl32.Vec3
}

// SetColor sets the current colour used by unlit primitives.
type SetColor struct {
	R, G, B float32
}

// LineWidth sets the rasterised width of lines.
type LineWidth struct {
	Width float32
}

// Draw emits a primitive from Vertices.
type Draw struct {
	Mode     PrimitiveMode
	Vertices []mgl32.Vec3
}

// Sphere draws a sphere centred at the model-view origin, solid with normals or as a wire frame.
type Sphere struct {
	Radius         float32
	Slices, Stacks int
	Wire           bool
}

// ConfigureLight sets the colour and attenuation terms of a light unit.
type ConfigureLight struct {
	Light                int
	Ambient              common.RGBA
	Diffuse              common.RGBA
	Specular             common.RGBA
	QuadraticAttenuation float32
}

// PositionLight places a light unit. The position is transformed by the current model-view matrix.
type PositionLight struct {
	Light    int
	Position [4]float32
}

// EnableLight switches a light unit on or off.
type EnableLight struct {
	Light   int
	Enabled bool
}

// LightModel sets the global ambient light and the viewer model used for specular highlights.
type LightModel struct {
	GlobalAmbient common.RGBA
	LocalViewer   bool
}

// ApplyMaterial sets the current material for subsequently lit geometry.
type ApplyMaterial struct {
	Face      material.Face
	Ambient   common.RGBA
	Diffuse   common.RGBA
	Specular  common.RGBA
	Emission  common.RGBA
	Shininess float32
}

// Text draws a bitmap string whose lower-left corner is at Position in the current model-view space.
type Text struct {
	Position mgl32.Vec3
	Color    common.RGBA
	Text     string
}

// Present publishes the finished frame.
type Present struct{}

func (Clear) Op() Op          { return OpClear }
func (SetCapability) Op() Op  { return OpCapability }
func (CullFace) Op() Op       { return OpCullFace }
func (Viewport) Op() Op       { return OpViewport }
func (LoadProjection) Op() Op { return OpLoadProjection }
func (LoadIdentity) Op() Op   { return OpLoadIdentity }
func (MultMatrix) Op() Op     { return OpMultMatrix }
func (PushMatrix) Op() Op     { return OpPushMatrix }
func (PopMatrix) Op() Op      { return OpPopMatrix }
func (Translate) Op() Op      { return OpTranslate }
func (Rotate) Op() Op         { return OpRotate }
func (SetColor) Op() Op       { return OpColor }
func (LineWidth) Op() Op      { return OpLineWidth }
func (Draw) Op() Op           { return OpDraw }
func (Sphere) Op() Op         { return OpSphere }
func (ConfigureLight) Op() Op { return OpConfigureLight }
func (PositionLight) Op() Op  { return OpPositionLight }
func (EnableLight) Op() Op    { return OpEnableLight }
func (LightModel) Op() Op     { return OpLightModel }
func (ApplyMaterial) Op() Op  { return OpMaterial }
func (Text) Op() Op           { return OpText }
func (Present) Op() Op        { return OpPresent }

// Enable returns a command that switches a capability on.
func Enable(c Capability) Command {
	return SetCapability{Capability: c, Enabled: true}
}

// Disable returns a command that switches a capability off.
func Disable(c Capability) Command {
	return SetCapability{Capability: c, Enabled: false}
}

// ConfigureLightFrom builds the configure command for a light's colour and attenuation terms.
//
// Parameters:
//   - l: the light to describe
//
// Returns:
//   - ConfigureLight: the command
func ConfigureLightFrom(l light.Light) ConfigureLight {
	return ConfigureLight{
		Light:                l.Index(),
		Ambient:              l.Ambient(),
		Diffuse:              l.Diffuse(),
		Specular:             l.Specular(),
		QuadraticAttenuation: l.QuadraticAttenuation(),
	}
}

// PositionLightFrom builds the command that places a light under the current model-view matrix.
func PositionLightFrom(l light.Light) PositionLight {
	return PositionLight{Light: l.Index(), Position: l.Position()}
}

// EnableLightFrom builds the command that switches a light unit to its enabled state.
func EnableLightFrom(l light.Light) EnableLight {
	return EnableLight{Light: l.Index(), Enabled: l.Enabled()}
}

// ApplyMaterialFrom builds the command that makes m the current material.
//
// Parameters:
//   - m: the material to apply
//
// Returns:
//   - ApplyMaterial: the command
func ApplyMaterialFrom(m material.Material) ApplyMaterial {
	return ApplyMaterial{
		Face:      m.Face(),
		Ambient:   m.Ambient(),
		Diffuse:   m.Diffuse(),
		Specular:  m.Specular(),
		Emission:  m.Emission(),
		Shininess: m.Shininess(),
	}
}

// Readout layout in eye space: lines start at the top-left of the view and step downward.
const (
	ReadoutX       = -1.0
	ReadoutTop     = 1.05
	ReadoutZ       = -2.0
	ReadoutSpacing = 0.05
)

// Readout returns the commands that draw white text lines at the top-left of a
// perspective view with lighting switched off around them. It must be emitted
// while the model-view matrix is the identity.
//
// Parameters:
//   - lines: the text lines, top to bottom
//
// Returns:
//   - []Command: the readout commands
func Readout(lines ...string) []Command {
	cmds := make([]Command, 0, len(lines)+2)
	cmds = append(cmds, Disable(CapabilityLighting))
	for i, line := range lines {
		cmds = append(cmds, Text{
			Position: mgl32.Vec3{ReadoutX, ReadoutTop - ReadoutSpacing*float32(i), ReadoutZ},
			Color:    common.White,
			Text:     line,
		})
	}
	return append(cmds, Enable(CapabilityLighting))
}

// Dump writes one line per command in a human-readable form.
//
// Parameters:
//   - w: the destination
//   - cmds: the commands to describe
//
// Returns:
//   - error: the first write error
func Dump(w io.Writer, cmds []Command) error {
	for _, cmd := range cmds {
		var err error
		switch c := cmd.(type) {
		case Draw:
			_, err = fmt.Fprintf(w, "%-16s %s vertices=%d\n", c.Op(), c.Mode, len(c.Vertices))
		case LoadProjection:
			_, err = fmt.Fprintf(w, "%-16s %v\n", c.Op(), [16]float32(c.Matrix))
		case MultMatrix:
			_, err = fmt.Fprintf(w, "%-16s %v\n", c.Op(), [16]float32(c.Matrix))
		case SetCapability:
			_, err = fmt.Fprintf(w, "%-16s %s=%t\n", c.Op(), c.Capability, c.Enabled)
		case Text:
			_, err = fmt.Fprintf(w, "%-16s %q at %v\n", c.Op(), c.Text, [3]float32(c.Position))
		case PushMatrix, PopMatrix, LoadIdentity, Present:
			_, err = fmt.Fprintf(w, "%s\n", c.Op())
		default:
			_, err = fmt.Fprintf(w, "%-16s %+v\n", c.Op(), c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
