package material

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/event"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	mat "github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m Model, s State, keys string) State {
	t.Helper()
	events, err := event.FromKeys(keys)
	require.NoError(t, err)
	for _, e := range events {
		s, _ = scene.Update[State](m, s, e)
	}
	return s
}

func TestAmbientScenario(t *testing.T) {
	m := New()
	s := press(t, m, Initial, "aaa")
	assert.InDelta(t, 0.85, s.Ambient, 1e-5)

	s = press(t, m, s, "<PageUp>r")
	assert.Equal(t, Initial, s)
	assert.Equal(t, float32(1), s.Ambient)
	assert.Zero(t, s.ZMove)
}

func TestBoundedFieldsStayInRange(t *testing.T) {
	m := New()
	tests := []struct {
		name   string
		down   string
		up     string
		field  func(State) float32
		lo, hi float32
	}{
		{"ambient", "a", "A", func(s State) float32 { return s.Ambient }, 0, 1},
		{"diffuse", "d", "D", func(s State) float32 { return s.Diffuse }, 0, 1},
		{"specular", "s", "S", func(s State) float32 { return s.Specular }, 0, 1},
		{"emission", "e", "E", func(s State) float32 { return s.Emission }, 0, 1},
		{"shininess", "h", "H", func(s State) float32 { return s.Shininess }, 0, mat.MaxShininess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Initial
			for i := 0; i < 200; i++ {
				s, _ = scene.Update[State](m, s, event.KeyPress(rune(tt.up[0]), 0, 0))
				assert.LessOrEqual(t, tt.field(s), tt.hi)
			}
			assert.Equal(t, tt.hi, tt.field(s))
			for i := 0; i < 200; i++ {
				s, _ = scene.Update[State](m, s, event.KeyPress(rune(tt.down[0]), 0, 0))
				assert.GreaterOrEqual(t, tt.field(s), tt.lo)
			}
			assert.Equal(t, tt.lo, tt.field(s))
		})
	}
}

func TestZMove(t *testing.T) {
	m := New()
	s := press(t, m, Initial, "<PageUp><PageUp>")
	assert.InDelta(t, -0.2, s.ZMove, 1e-6)

	for i := 0; i < 100; i++ {
		s = press(t, m, s, "<PageDown>")
	}
	assert.Equal(t, float32(MaxZMove), s.ZMove)

	for i := 0; i < 100; i++ {
		s = press(t, m, s, "<PageUp>")
	}
	assert.InDelta(t, -7.0, s.ZMove, 1e-4, "moving away is unbounded")
}

func TestResetIsTotalAndIdempotent(t *testing.T) {
	m := New()
	s := press(t, m, Initial, "adseh<PageUp>")
	once := press(t, m, s, "r")
	twice := press(t, m, once, "r")
	assert.Equal(t, Initial, once)
	assert.Equal(t, once, twice)
}

func TestUnboundKeys(t *testing.T) {
	m := New()
	for _, e := range []event.Event{
		event.KeyPress('w', 0, 0),
		event.KeyPress('x', 0, 0),
		event.SpecialKeyPress(common.KeyLeft, 0, 0),
	} {
		s, effect := scene.Update[State](m, Initial, e)
		assert.Equal(t, Initial, s)
		assert.Equal(t, scene.EffectNone, effect)
	}
	_, effect := scene.Update[State](m, Initial, event.KeyPress(common.CharEscape, 0, 0))
	assert.Equal(t, scene.EffectQuit, effect)
}

func TestBallMaterial(t *testing.T) {
	b := Ball(State{Ambient: 0.5, Diffuse: 0.25, Specular: 0.75, Shininess: 10, Emission: 0.1})
	assert.Equal(t, common.Opaque(0, 0, 0.5), b.Ambient())
	assert.Equal(t, common.Opaque(0, 0, 0.25), b.Diffuse())
	assert.Equal(t, common.Gray(0.75), b.Specular())
	assert.Equal(t, common.Opaque(0, 0, 0.1), b.Emission())
	assert.Equal(t, float32(10), b.Shininess())
	assert.Equal(t, mat.FaceFront, b.Face())
}

func TestReadout(t *testing.T) {
	lines := Readout(Initial)
	require.Len(t, lines, 5)
	assert.Equal(t, "Blue ambient reflectance: 1.00", lines[0])
	assert.Equal(t, "Shininess: 50.0", lines[3])
	assert.Equal(t, "Blue emittance: 0.00", lines[4])
}

func TestSetup(t *testing.T) {
	cmds := New().Setup()
	assert.Contains(t, cmds, renderer.Enable(renderer.CapabilityDepthTest))
	assert.Contains(t, cmds, renderer.Enable(renderer.CapabilityLighting))
	assert.Contains(t, cmds, renderer.CullFace{Face: mat.FaceBack})
	assert.Contains(t, cmds, renderer.LightModel{GlobalAmbient: common.Gray(0.2), LocalViewer: true})
	assert.Contains(t, cmds, renderer.Command(renderer.EnableLight{Light: 1, Enabled: true}))
}

func TestRender(t *testing.T) {
	m := New()
	s := State{Ambient: 0.5, Diffuse: 1, Specular: 1, Shininess: 50, ZMove: -0.3}
	cam := m.NewCamera(500, 500)
	cmds := m.Render(s, cam)

	require.NotEmpty(t, cmds)
	assert.Equal(t, renderer.Clear{Depth: true}, cmds[0])
	assert.Equal(t, renderer.LoadIdentity{}, cmds[1])
	assert.Equal(t, renderer.Present{}, cmds[len(cmds)-1])
	assert.Equal(t, renderer.Sphere{Radius: 1.5, Slices: 200, Stacks: 200}, cmds[len(cmds)-2])
	assert.Equal(t, renderer.Translate{Z: -0.3}, cmds[len(cmds)-3])
	assert.Equal(t, renderer.ApplyMaterialFrom(Ball(s)), cmds[len(cmds)-4])

	var texts []string
	var view, markers int
	for _, c := range cmds {
		switch c := c.(type) {
		case renderer.Text:
			texts = append(texts, c.Text)
		case renderer.MultMatrix:
			assert.Equal(t, cam.ViewMatrix(), c.Matrix)
			view++
		case renderer.Sphere:
			if c.Wire {
				markers++
			}
		}
	}
	assert.Equal(t, Readout(s), texts)
	assert.Equal(t, 1, view)
	assert.Equal(t, 2, markers)
	assert.Equal(t, cmds, m.Render(s, cam))
}
