// Package squares draws a green square over a red one under an orthographic view.
package squares

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// State is empty: the squares have no parameters.
type State struct{}

// Model is the two-squares demo.
type Model struct {
	scene.KeyBindings[State]
}

var _ scene.Model[State] = Model{}

// New creates the two-squares demo.
func New() Model {
	return Model{}
}

// square returns the corners of an axis-aligned square in the z=0 plane, counter-clockwise.
func square(lo, hi float32) []mgl32.Vec3 {
	return []mgl32.Vec3{{lo, lo, 0}, {hi, lo, 0}, {hi, hi, 0}, {lo, hi, 0}}
}

func (Model) Name() string          { return "squares" }
func (Model) Title() string         { return "experimentTwoSquares.cpp" }
func (Model) Interaction() []string { return nil }
func (Model) DoubleBuffered() bool  { return false }
func (Model) Initial() State        { return State{} }

func (Model) NewCamera(width, height int) camera.Camera {
	return camera.NewCamera(
		camera.WithOrthographic(0, 100, 0, 100, -1, 1),
		camera.WithViewport(width, height),
	)
}

func (Model) Setup() []renderer.Command {
	return []renderer.Command{renderer.LoadIdentity{}}
}

func (Model) Render(State, camera.Camera) []renderer.Command {
	return []renderer.Command{
		renderer.Clear{Color: common.RGBA{1, 1, 1, 0}},
		renderer.LoadIdentity{},
		renderer.SetColor{R: 1, G: 0, B: 0},
		renderer.Draw{Mode: renderer.PrimitivePolygon, Vertices: square(20, 80)},
		renderer.SetColor{R: 0, G: 1, B: 0},
		renderer.Draw{Mode: renderer.PrimitivePolygon, Vertices: square(40, 60)},
		renderer.Present{},
	}
}
