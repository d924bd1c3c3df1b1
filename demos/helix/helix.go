// Package helix draws a helix as a single line strip under an orthographic view.
package helix

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Radius of the helix.
	Radius = 20.0

	// Steps is the number of segments between t = -10π and t = 10π.
	Steps = 400

	// depthOffset pushes the helix into the orthographic box.
	depthOffset = -60.0
)

// State is empty: the helix has no parameters.
type State struct{}

// Model is the helix demo.
type Model struct {
	scene.KeyBindings[State]
	vertices []mgl32.Vec3
}

var _ scene.Model[State] = Model{}

// New creates the helix demo.
func New() Model {
	return Model{vertices: Vertices()}
}

// Vertices returns the helix points (R·cos t, t, R·sin t − 60) for t from −10π
// to 10π in steps of π/20.
func Vertices() []mgl32.Vec3 {
	vs := make([]mgl32.Vec3, 0, Steps+1)
	for i := 0; i <= Steps; i++ {
		t := -10*math32.Pi + float32(i)*math32.Pi/20
		vs = append(vs, mgl32.Vec3{Radius * math32.Cos(t), t, Radius*math32.Sin(t) + depthOffset})
	}
	return vs
}

func (Model) Name() string          { return "helix" }
func (Model) Title() string         { return "helix.cpp" }
func (Model) Interaction() []string { return nil }
func (Model) DoubleBuffered() bool  { return false }
func (Model) Initial() State        { return State{} }

func (Model) NewCamera(width, height int) camera.Camera {
	return camera.NewCamera(
		camera.WithOrthographic(-50, 50, -50, 50, 0, 100),
		camera.WithViewport(width, height),
	)
}

func (Model) Setup() []renderer.Command {
	return []renderer.Command{renderer.LoadIdentity{}}
}

func (m Model) Render(State, camera.Camera) []renderer.Command {
	return []renderer.Command{
		renderer.Clear{Color: common.RGBA{1, 1, 1, 0}},
		renderer.LoadIdentity{},
		renderer.SetColor{R: 0, G: 0, B: 0},
		renderer.Draw{Mode: renderer.PrimitiveLineStrip, Vertices: m.vertices},
		renderer.Present{},
	}
}
