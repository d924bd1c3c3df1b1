package squares

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	m := New()
	cmds := m.Render(State{}, m.NewCamera(500, 500))
	require.Len(t, cmds, 7)
	assert.Equal(t, renderer.Clear{Color: common.RGBA{1, 1, 1, 0}}, cmds[0])
	assert.Equal(t, renderer.SetColor{R: 1}, cmds[2])
	assert.Equal(t, renderer.SetColor{G: 1}, cmds[4])

	red := cmds[3].(renderer.Draw)
	assert.Equal(t, renderer.PrimitivePolygon, red.Mode)
	assert.Equal(t, []mgl32.Vec3{{20, 20, 0}, {80, 20, 0}, {80, 80, 0}, {20, 80, 0}}, red.Vertices)

	green := cmds[5].(renderer.Draw)
	assert.Equal(t, []mgl32.Vec3{{40, 40, 0}, {60, 40, 0}, {60, 60, 0}, {40, 60, 0}}, green.Vertices)
	assert.Equal(t, renderer.Present{}, cmds[6])
}

func TestCamera(t *testing.T) {
	cam := New().NewCamera(300, 600)
	assert.Equal(t, mgl32.Ortho(0, 100, 0, 100, -1, 1), cam.ProjectionMatrix())
	assert.Equal(t, "experimentTwoSquares.cpp", New().Title())
}
