// Package lit holds the view and geometry shared by the lit ball demos.
package lit

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

// Ball and marker tessellation.
const (
	BallRadius   = 1.5
	BallSlices   = 200
	MarkerRadius = 0.05
	MarkerSlices = 8
)

// Eye is where the viewer stands, looking at the origin with +y up.
var Eye = mgl32.Vec3{0, 3, 5}

// NewCamera returns the 60° perspective view of the ball.
//
// Parameters:
//   - width, height: the drawable size in pixels
//
// Returns:
//   - camera.Camera: the camera
func NewCamera(width, height int) camera.Camera {
	return camera.NewCamera(
		camera.WithPerspective(60, 1, 20),
		camera.WithLookAt(Eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
		camera.WithViewport(width, height),
	)
}

// Setup enables depth testing, lighting and back-face culling.
func Setup() []renderer.Command {
	return []renderer.Command{
		renderer.Enable(renderer.CapabilityDepthTest),
		renderer.Enable(renderer.CapabilityLighting),
		renderer.Enable(renderer.CapabilityCullFace),
		renderer.CullFace{Face: material.FaceBack},
	}
}

// Marker positions l under the current model-view matrix and draws a small wire
// sphere at its position in the given colour.
//
// Parameters:
//   - l: the light to place
//   - color: the marker colour
//   - visible: whether to draw the sphere; the light is positioned either way
//
// Returns:
//   - []renderer.Command: the commands, balanced in the matrix stack
func Marker(l light.Light, color renderer.SetColor, visible bool) []renderer.Command {
	pos := l.Position()
	cmds := []renderer.Command{
		renderer.PushMatrix{},
		renderer.PositionLightFrom(l),
		renderer.Translate{X: pos[0], Y: pos[1], Z: pos[2]},
		color,
	}
	if visible {
		cmds = append(cmds, renderer.Sphere{Radius: MarkerRadius, Slices: MarkerSlices, Stacks: MarkerSlices, Wire: true})
	}
	return append(cmds, renderer.PopMatrix{})
}

// Ball moves along z by zMove and draws the solid ball.
func Ball(zMove float32) []renderer.Command {
	return []renderer.Command{
		renderer.Translate{Z: zMove},
		renderer.Sphere{Radius: BallRadius, Slices: BallSlices, Stacks: BallSlices},
	}
}
