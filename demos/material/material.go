// Package material shows a blue ball under a white and a green positional light,
// with the ball's reflectance, shininess and emittance under keyboard control.
package material

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/demos/internal/lit"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	mat "github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
)

// Parameter steps and bounds.
const (
	ReflectanceStep = 0.05
	ShininessStep   = 1.0
	MoveStep        = 0.1
	MaxZMove        = 3.0
)

// State holds the ball's material parameters and its offset along z.
type State struct {
	Ambient   float32 // blue ambient reflectance in [0,1]
	Diffuse   float32 // blue diffuse reflectance in [0,1]
	Specular  float32 // white specular reflectance in [0,1]
	Shininess float32 // in [0,128]
	Emission  float32 // blue emittance in [0,1]
	ZMove     float32 // at most MaxZMove
}

// Initial is the state at startup and after reset.
var Initial = State{Ambient: 1, Diffuse: 1, Specular: 1, Shininess: 50}

// Model is the material demo.
type Model struct {
	scene.KeyBindings[State]
	white, green light.Light
}

var _ scene.Model[State] = Model{}

// New creates the material demo.
func New() Model {
	return Model{
		KeyBindings: scene.KeyBindings[State]{
			Keys: map[rune]func(State) State{
				'a': func(s State) State { s.Ambient = reflectance(s.Ambient, -1); return s },
				'A': func(s State) State { s.Ambient = reflectance(s.Ambient, 1); return s },
				'd': func(s State) State { s.Diffuse = reflectance(s.Diffuse, -1); return s },
				'D': func(s State) State { s.Diffuse = reflectance(s.Diffuse, 1); return s },
				's': func(s State) State { s.Specular = reflectance(s.Specular, -1); return s },
				'S': func(s State) State { s.Specular = reflectance(s.Specular, 1); return s },
				'e': func(s State) State { s.Emission = reflectance(s.Emission, -1); return s },
				'E': func(s State) State { s.Emission = reflectance(s.Emission, 1); return s },
				'h': func(s State) State {
					s.Shininess = common.StepClamped(s.Shininess, -ShininessStep, 0, mat.MaxShininess)
					return s
				},
				'H': func(s State) State {
					s.Shininess = common.StepClamped(s.Shininess, ShininessStep, 0, mat.MaxShininess)
					return s
				},
				'r': func(State) State { return Initial },
			},
			Special: map[common.Key]func(State) State{
				common.KeyPageUp:   func(s State) State { s.ZMove -= MoveStep; return s },
				common.KeyPageDown: func(s State) State { s.ZMove = common.StepAtMost(s.ZMove, MoveStep, MaxZMove); return s },
			},
		},
		white: light.NewLight(0,
			light.WithAmbient(common.Black),
			light.WithDiffuseAndSpecular(common.White),
			light.WithPosition(0, 2, 2.5, 1),
		),
		green: light.NewLight(1,
			light.WithAmbient(common.Black),
			light.WithDiffuseAndSpecular(common.Opaque(0, 1, 0)),
			light.WithPosition(1, 2, 0, 1),
		),
	}
}

func reflectance(v, sign float32) float32 {
	return common.StepClamped(v, sign*ReflectanceStep, 0, 1)
}

// Ball returns the ball's material for s.
//
// Parameters:
//   - s: the demo state
//
// Returns:
//   - mat.Material: blue ambient, diffuse and emission, white specular
func Ball(s State) mat.Material {
	return mat.NewMaterial(
		mat.WithName("ball"),
		mat.WithAmbient(common.Opaque(0, 0, s.Ambient)),
		mat.WithDiffuse(common.Opaque(0, 0, s.Diffuse)),
		mat.WithSpecular(common.Gray(s.Specular)),
		mat.WithShininess(s.Shininess),
		mat.WithEmission(common.Opaque(0, 0, s.Emission)),
	)
}

// Readout returns the parameter lines drawn in the top-left corner.
func Readout(s State) []string {
	return []string{
		"Blue ambient reflectance: " + common.FormatReadout(s.Ambient),
		"Blue diffuse reflectance: " + common.FormatReadout(s.Diffuse),
		"White specular reflectance: " + common.FormatReadout(s.Specular),
		"Shininess: " + common.FormatReadout(s.Shininess),
		"Blue emittance: " + common.FormatReadout(s.Emission),
	}
}

func (Model) Name() string         { return "material" }
func (Model) Title() string        { return "lightAndMaterial1.cpp" }
func (Model) DoubleBuffered() bool { return true }
func (Model) Initial() State       { return Initial }

func (Model) Interaction() []string {
	return []string{
		"Interaction:",
		"Press 'a/A' to decrease/increase the ball's blue ambient reflectance.",
		"Press 'd/D' to decrease/increase the ball's blue diffuse reflectance.",
		"Press 's/S' to decrease/increase the ball's white specular reflectance.",
		"Press 'h/H' to decrease/increase the ball's shininess.",
		"Press 'e/E' to decrease/increase the ball's blue emittance.",
		"Press the page up/down keys to move the ball.",
		"Press 'r' to reset the ball.",
	}
}

func (Model) NewCamera(width, height int) camera.Camera {
	return lit.NewCamera(width, height)
}

func (m Model) Setup() []renderer.Command {
	cmds := lit.Setup()
	return append(cmds,
		renderer.ConfigureLightFrom(m.white),
		renderer.ConfigureLightFrom(m.green),
		renderer.EnableLightFrom(m.white),
		renderer.EnableLightFrom(m.green),
		renderer.LightModel{GlobalAmbient: common.Gray(0.2), LocalViewer: true},
	)
}

func (m Model) Render(s State, cam camera.Camera) []renderer.Command {
	cmds := []renderer.Command{
		renderer.Clear{Color: common.RGBA{}, Depth: true},
		renderer.LoadIdentity{},
	}
	cmds = append(cmds, renderer.Readout(Readout(s)...)...)
	cmds = append(cmds,
		renderer.MultMatrix{Matrix: cam.ViewMatrix()},
		renderer.Disable(renderer.CapabilityLighting),
	)
	cmds = append(cmds, lit.Marker(m.white, renderer.SetColor{R: 1, G: 1, B: 1}, true)...)
	cmds = append(cmds, lit.Marker(m.green, renderer.SetColor{R: 0, G: 1, B: 0}, true)...)
	cmds = append(cmds,
		renderer.Enable(renderer.CapabilityLighting),
		renderer.ApplyMaterialFrom(Ball(s)),
	)
	cmds = append(cmds, lit.Ball(s.ZMove)...)
	return append(cmds, renderer.Present{})
}
