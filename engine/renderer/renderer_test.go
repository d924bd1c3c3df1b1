package renderer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBackend struct {
	Recorder
	initErr error
	failOn  Op
}

func (f *failingBackend) Init() error {
	if f.initErr != nil {
		return f.initErr
	}
	return f.Recorder.Init()
}

func (f *failingBackend) Execute(cmd Command) error {
	if cmd.Op() == f.failOn {
		return errors.New("boom")
	}
	return f.Recorder.Execute(cmd)
}

func TestNewRendererRequiresBackend(t *testing.T) {
	_, err := NewRenderer(nil)
	assert.Error(t, err)
}

func TestNewRendererInitError(t *testing.T) {
	_, err := NewRenderer(&failingBackend{initErr: errors.New("no context")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no context")
}

func TestExecuteCountsFrames(t *testing.T) {
	rec := NewRecorder()
	var presented []uint64
	r, err := NewRenderer(rec, WithPresentCallback(func(n uint64) { presented = append(presented, n) }))
	require.NoError(t, err)

	frame := []Command{Clear{Color: common.White}, LoadIdentity{}, Present{}}
	require.NoError(t, r.Execute(frame))
	require.NoError(t, r.Execute(frame))

	assert.Equal(t, uint64(2), r.FrameCount())
	assert.Equal(t, []uint64{1, 2}, presented)
	assert.Len(t, rec.Frames(), 2)
	assert.Equal(t, frame, rec.LastFrame())
	assert.Equal(t, BackendTypeRecorder, r.Backend().Type())

	r.Release()
	assert.ErrorIs(t, r.Execute(frame), ErrNotInitialised)
}

func TestSetupIsKeptOutOfFrames(t *testing.T) {
	rec := NewRecorder()
	r, err := NewRenderer(rec)
	require.NoError(t, err)

	setup := []Command{Enable(CapabilityDepthTest), CullFace{Face: material.FaceBack}}
	frame := []Command{Viewport{Width: 500, Height: 500}, Clear{Color: common.White}, Present{}}
	require.NoError(t, r.Setup(setup))
	require.NoError(t, r.Execute(frame))

	assert.Equal(t, setup, rec.SetupCommands())
	require.Len(t, rec.Frames(), 1)
	assert.Equal(t, frame, rec.LastFrame())
	assert.Len(t, rec.Commands(), len(setup)+len(frame))
	assert.Equal(t, uint64(1), r.FrameCount())
}

func TestExecuteStopsAtFailure(t *testing.T) {
	r, err := NewRenderer(&failingBackend{failOn: OpSphere})
	require.NoError(t, err)

	err = r.Execute([]Command{LoadIdentity{}, Sphere{Radius: 1, Slices: 8, Stacks: 8}, Present{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sphere")
	assert.Zero(t, r.FrameCount())
}

func TestExecuteRejectsNilCommand(t *testing.T) {
	r, err := NewRenderer(NewRecorder())
	require.NoError(t, err)
	assert.Error(t, r.Execute([]Command{nil}))
}

func TestRecorderRequiresInit(t *testing.T) {
	rec := NewRecorder()
	assert.ErrorIs(t, rec.Execute(Present{}), ErrNotInitialised)
}

func TestLightAndMaterialCommands(t *testing.T) {
	l := light.NewLight(1, light.WithDiffuseAndSpecular(common.Opaque(0, 1, 0)), light.WithPosition(1, 2, 0, 1), light.WithQuadraticAttenuation(0.5))
	cfg := ConfigureLightFrom(l)
	assert.Equal(t, 1, cfg.Light)
	assert.Equal(t, common.Opaque(0, 1, 0), cfg.Diffuse)
	assert.Equal(t, float32(0.5), cfg.QuadraticAttenuation)
	assert.Equal(t, PositionLight{Light: 1, Position: [4]float32{1, 2, 0, 1}}, PositionLightFrom(l))

	l.SetEnabled(false)
	assert.Equal(t, EnableLight{Light: 1, Enabled: false}, EnableLightFrom(l))

	m := material.NewMaterial(material.WithShininess(50), material.WithAmbientAndDiffuse(common.Opaque(0, 0, 1)))
	am := ApplyMaterialFrom(m)
	assert.Equal(t, material.FaceFront, am.Face)
	assert.Equal(t, float32(50), am.Shininess)
	assert.Equal(t, common.Opaque(0, 0, 1), am.Diffuse)
	assert.Equal(t, OpMaterial, am.Op())
}

func TestReadout(t *testing.T) {
	cmds := Readout("one", "two")
	require.Len(t, cmds, 4)
	assert.Equal(t, Disable(CapabilityLighting), cmds[0])
	assert.Equal(t, Enable(CapabilityLighting), cmds[3])

	second := cmds[2].(Text)
	assert.Equal(t, "two", second.Text)
	assert.InDelta(t, 1.0, second.Position.Y(), 1e-6)
	assert.Equal(t, float32(-1), second.Position.X())
	assert.Equal(t, float32(-2), second.Position.Z())
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	err := Dump(&buf, []Command{
		Enable(CapabilityDepthTest),
		Draw{Mode: PrimitiveLineStrip, Vertices: make([]mgl32.Vec3, 3)},
		Text{Text: "hi"},
		Present{},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "depth_test=true")
	assert.Contains(t, out, "line_strip vertices=3")
	assert.Contains(t, out, `"hi"`)
	assert.Contains(t, out, "present\n")
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "load_projection", OpLoadProjection.String())
	assert.Equal(t, "op(99)", Op(99).String())
}
