package helix

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/event"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertices(t *testing.T) {
	vs := Vertices()
	require.Len(t, vs, 401)

	first, last := vs[0], vs[len(vs)-1]
	assert.InDelta(t, -10*math32.Pi, first.Y(), 1e-4)
	assert.InDelta(t, 10*math32.Pi, last.Y(), 1e-4)
	assert.InDelta(t, Radius, first.X(), 1e-3)
	assert.InDelta(t, -60, first.Z(), 1e-3)

	for _, v := range vs {
		r := mgl32.Vec2{v.X(), v.Z() + 60}.Len()
		assert.InDelta(t, Radius, r, 1e-3)
	}
}

func TestRender(t *testing.T) {
	m := New()
	cmds := m.Render(State{}, m.NewCamera(500, 500))
	require.Len(t, cmds, 5)
	assert.Equal(t, renderer.Clear{Color: common.RGBA{1, 1, 1, 0}}, cmds[0])
	assert.Equal(t, renderer.SetColor{}, cmds[2])
	draw := cmds[3].(renderer.Draw)
	assert.Equal(t, renderer.PrimitiveLineStrip, draw.Mode)
	assert.Len(t, draw.Vertices, Steps+1)
	assert.Equal(t, renderer.Present{}, cmds[4])
	assert.False(t, m.DoubleBuffered())
}

func TestCamera(t *testing.T) {
	cam := New().NewCamera(500, 0)
	l, r, b, top := cam.Bounds()
	assert.Equal(t, [4]float32{-50, 50, -50, 50}, [4]float32{l, r, b, top})
	assert.Equal(t, float32(0), cam.Near())
	assert.Equal(t, float32(100), cam.Far())
	assert.Equal(t, mgl32.Ortho(-50, 50, -50, 50, 0, 100), cam.ProjectionMatrix())
}

func TestOnlyEscapeIsHandled(t *testing.T) {
	m := New()
	_, effect := scene.Update[State](m, State{}, event.KeyPress('a', 0, 0))
	assert.Equal(t, scene.EffectNone, effect)
	_, effect = scene.Update[State](m, State{}, event.SpecialKeyPress(common.KeyUp, 0, 0))
	assert.Equal(t, scene.EffectNone, effect)
	_, effect = scene.Update[State](m, State{}, event.KeyPress(common.CharEscape, 0, 0))
	assert.Equal(t, scene.EffectQuit, effect)
}
