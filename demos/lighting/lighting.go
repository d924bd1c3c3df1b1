// Package lighting shows a blue ball under a white light that can be rotated,
// dimmed, attenuated and switched between positional and directional, and a
// fixed green positional light.
package lighting

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/demos/internal/lit"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// Parameter steps and bounds.
const (
	IntensityStep   = 0.05
	AttenuationStep = 0.01
	AngleStep       = 1.0
	MoveStep        = 0.1
	MaxZMove        = 3.0
	ArrowWidth      = 3.0
)

// State holds the light parameters, the ball offset and the white light's rotation.
type State struct {
	Light0On      bool
	Light1On      bool
	Diffuse       float32 // white light diffuse and specular intensity in [0,1]
	GlobalAmbient float32 // in [0,1]
	LocalViewer   bool
	Positional    float32 // 1 positional, 0 directional
	Attenuation   float32 // quadratic attenuation, at least 0
	ZMove         float32 // at most MaxZMove
	XAngle        float32 // degrees in [0,360)
	YAngle        float32 // degrees in [0,360)
}

// Initial is the state at startup and after reset.
var Initial = State{
	Light0On:      true,
	Light1On:      true,
	Diffuse:       1,
	GlobalAmbient: 0.2,
	LocalViewer:   true,
	Positional:    1,
}

// arrow points along the incoming light of a directional white light.
var arrow = []mgl32.Vec3{
	{0, 0, 0.25}, {0, 0, -0.25},
	{0, 0, -0.25}, {0.05, 0, -0.2},
	{0, 0, -0.25}, {-0.05, 0, -0.2},
}

// Model is the light demo.
type Model struct {
	scene.KeyBindings[State]
}

var _ scene.Model[State] = Model{}

// New creates the light demo.
func New() Model {
	toggleViewer := func(s State) State { s.LocalViewer = !s.LocalViewer; return s }
	togglePositional := func(s State) State { s.Positional = common.Toggle01(s.Positional); return s }
	return Model{scene.KeyBindings[State]{
		Keys: map[rune]func(State) State{
			'w': func(s State) State { s.Light0On = !s.Light0On; return s },
			'g': func(s State) State { s.Light1On = !s.Light1On; return s },
			'l': toggleViewer,
			'L': toggleViewer,
			'p': togglePositional,
			'P': togglePositional,
			'd': func(s State) State { s.Diffuse = intensity(s.Diffuse, -1); return s },
			'D': func(s State) State { s.Diffuse = intensity(s.Diffuse, 1); return s },
			'm': func(s State) State { s.GlobalAmbient = intensity(s.GlobalAmbient, -1); return s },
			'M': func(s State) State { s.GlobalAmbient = intensity(s.GlobalAmbient, 1); return s },
			't': func(s State) State { s.Attenuation = common.StepAtLeast(s.Attenuation, -AttenuationStep, 0); return s },
			'T': func(s State) State { s.Attenuation += AttenuationStep; return s },
			'r': func(State) State { return Initial },
		},
		Special: map[common.Key]func(State) State{
			common.KeyDown:     func(s State) State { s.XAngle = common.WrapDegrees(s.XAngle + AngleStep); return s },
			common.KeyUp:       func(s State) State { s.XAngle = common.WrapDegrees(s.XAngle - AngleStep); return s },
			common.KeyRight:    func(s State) State { s.YAngle = common.WrapDegrees(s.YAngle + AngleStep); return s },
			common.KeyLeft:     func(s State) State { s.YAngle = common.WrapDegrees(s.YAngle - AngleStep); return s },
			common.KeyPageUp:   func(s State) State { s.ZMove -= MoveStep; return s },
			common.KeyPageDown: func(s State) State { s.ZMove = common.StepAtMost(s.ZMove, MoveStep, MaxZMove); return s },
		},
	}}
}

func intensity(v, sign float32) float32 {
	return common.StepClamped(v, sign*IntensityStep, 0, 1)
}

// Lights returns the white and green lights configured for s.
//
// Parameters:
//   - s: the demo state
//
// Returns:
//   - light.Light: the white light, unit 0
//   - light.Light: the green light, unit 1
func Lights(s State) (light.Light, light.Light) {
	white := light.NewLight(0,
		light.WithAmbient(common.Black),
		light.WithDiffuseAndSpecular(common.Gray(s.Diffuse)),
		light.WithPosition(0, 0, 3, s.Positional),
		light.WithQuadraticAttenuation(s.Attenuation),
		light.WithEnabled(s.Light0On),
	)
	green := light.NewLight(1,
		light.WithAmbient(common.Black),
		light.WithDiffuseAndSpecular(common.Opaque(0, 1, 0)),
		light.WithPosition(1, 2, 0, 1),
		light.WithQuadraticAttenuation(s.Attenuation),
		light.WithEnabled(s.Light1On),
	)
	return white, green
}

// Readout returns the parameter lines drawn in the top-left corner.
func Readout(s State) []string {
	viewpoint := "Infinite viewpoint."
	if s.LocalViewer {
		viewpoint = "Local viewpoint."
	}
	return []string{
		"Diffuse and specular white light intensity: " + common.FormatReadout(s.Diffuse),
		"Global ambient white light intensity: " + common.FormatReadout(s.GlobalAmbient),
		"Quadratic attenuation: " + common.FormatReadout(s.Attenuation),
		viewpoint,
	}
}

func (Model) Name() string         { return "lighting" }
func (Model) Title() string        { return "lightAndMaterial2.cpp" }
func (Model) DoubleBuffered() bool { return true }
func (Model) Initial() State       { return Initial }

func (Model) Interaction() []string {
	return []string{
		"Interaction:",
		"Press 'w' to toggle the white light off/on.",
		"Press 'g' to toggle the green light off/on.",
		"Press 'd/D' to decrease/increase the white light's diffuse and specular intensity.",
		"Press 'm/M' to decrease/increase global ambient white light intensity.",
		"Press 't/T' to decrease/increase the quadratic attenuation parameter.",
		"Press 'l' to toggle between infinite and local viewpoint.",
		"Press 'p' to toggle between positional and directional white light.",
		"Press the page up/down keys to move the ball.",
		"Press arrow keys to rotate the white light about the original position of the ball.",
		"Press 'r' to reset the ball and white light to their original positions.",
	}
}

func (Model) NewCamera(width, height int) camera.Camera {
	return lit.NewCamera(width, height)
}

func (Model) Setup() []renderer.Command {
	ball := material.NewMaterial(
		material.WithName("ball"),
		material.WithAmbientAndDiffuse(common.Opaque(0, 0, 1)),
		material.WithSpecular(common.White),
		material.WithShininess(50),
	)
	return append(lit.Setup(), renderer.ApplyMaterialFrom(ball))
}

func (Model) Render(s State, cam camera.Camera) []renderer.Command {
	white, green := Lights(s)
	cmds := []renderer.Command{
		renderer.ConfigureLightFrom(white),
		renderer.ConfigureLightFrom(green),
		renderer.LightModel{GlobalAmbient: common.Gray(s.GlobalAmbient), LocalViewer: s.LocalViewer},
		renderer.EnableLightFrom(white),
		renderer.EnableLightFrom(green),
		renderer.Clear{Color: common.RGBA{}, Depth: true},
		renderer.LoadIdentity{},
	}
	cmds = append(cmds, renderer.Readout(Readout(s)...)...)
	cmds = append(cmds,
		renderer.MultMatrix{Matrix: cam.ViewMatrix()},
		renderer.Disable(renderer.CapabilityLighting),
	)

	// The white light and its marker turn with the arrow keys.
	cmds = append(cmds,
		renderer.PushMatrix{},
		renderer.Rotate{Degrees: s.XAngle, Axis: mgl32.Vec3{1, 0, 0}},
		renderer.Rotate{Degrees: s.YAngle, Axis: mgl32.Vec3{0, 1, 0}},
	)
	if s.Positional != 0 {
		cmds = append(cmds, lit.Marker(white, renderer.SetColor{R: s.Diffuse, G: s.Diffuse, B: s.Diffuse}, s.Light0On)...)
	} else {
		cmds = append(cmds, directionalMarker(white, s)...)
	}
	cmds = append(cmds, renderer.PopMatrix{})

	cmds = append(cmds, lit.Marker(green, renderer.SetColor{R: 0, G: 1, B: 0}, s.Light1On)...)
	cmds = append(cmds, renderer.Enable(renderer.CapabilityLighting))
	cmds = append(cmds, lit.Ball(s.ZMove)...)
	return append(cmds, renderer.Present{})
}

// directionalMarker positions a directional white light and draws the arrow
// along its incoming direction while the light is on.
func directionalMarker(white light.Light, s State) []renderer.Command {
	pos := white.Position()
	cmds := []renderer.Command{
		renderer.PositionLightFrom(white),
		renderer.Translate{X: pos[0], Y: pos[1], Z: pos[2]},
		renderer.SetColor{R: s.Diffuse, G: s.Diffuse, B: s.Diffuse},
	}
	if !s.Light0On {
		return cmds
	}
	return append(cmds,
		renderer.LineWidth{Width: ArrowWidth},
		renderer.Draw{Mode: renderer.PrimitiveLines, Vertices: arrow},
		renderer.LineWidth{Width: 1},
	)
}
