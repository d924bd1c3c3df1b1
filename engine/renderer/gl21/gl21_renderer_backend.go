// Package gl21 executes renderer commands with the OpenGL 2.1 fixed-function pipeline.
package gl21

import (
	"fmt"
	"log/slog"

	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/go-gl/gl/v2.1/gl"
)

// sphereKey identifies a cached sphere tessellation.
type sphereKey struct {
	radius         float32
	slices, stacks int
}

// glBackend is the OpenGL 2.1 implementation of renderer.RendererBackend.
// It must be driven from the thread that owns the window's GL context.
type glBackend struct {
	window window.Window
	logger *slog.Logger

	solid map[sphereKey][]renderer.SphereStrip
	wire  map[sphereKey][][]float32
}

var _ renderer.RendererBackend = &glBackend{}

// NewBackend creates a backend drawing into the current GL context of win.
//
// Parameters:
//   - win: the window owning the GL context; Present swaps its buffers
//   - logger: logger for context diagnostics, or nil for the default
//
// Returns:
//   - renderer.RendererBackend: the backend, not yet initialised
func NewBackend(win window.Window, logger *slog.Logger) renderer.RendererBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &glBackend{
		window: win,
		logger: logger,
		solid:  make(map[sphereKey][]renderer.SphereStrip),
		wire:   make(map[sphereKey][][]float32),
	}
}

func (b *glBackend) Type() renderer.RendererBackendType {
	return renderer.BackendTypeGL21
}

// Init loads the GL function pointers for the current context.
// Reference: https://pkg.go.dev/github.com/go-gl/gl/v2.1/gl#Init
func (b *glBackend) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	b.logger.Info("opengl context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	gl.MatrixMode(gl.MODELVIEW)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return nil
}

func (b *glBackend) Execute(cmd renderer.Command) error {
	switch c := cmd.(type) {
	case renderer.Clear:
		gl.ClearColor(c.Color[0], c.Color[1], c.Color[2], c.Color[3])
		mask := uint32(gl.COLOR_BUFFER_BIT)
		if c.Depth {
			mask |= gl.DEPTH_BUFFER_BIT
		}
		gl.Clear(mask)
	case renderer.SetCapability:
		glCap, err := capability(c.Capability)
		if err != nil {
			return err
		}
		if c.Enabled {
			gl.Enable(glCap)
		} else {
			gl.Disable(glCap)
		}
	case renderer.CullFace:
		gl.CullFace(face(c.Face))
	case renderer.Viewport:
		gl.Viewport(0, 0, int32(c.Width), int32(c.Height))
	case renderer.LoadProjection:
		gl.MatrixMode(gl.PROJECTION)
		gl.LoadMatrixf(&c.Matrix[0])
		gl.MatrixMode(gl.MODELVIEW)
	case renderer.LoadIdentity:
		gl.LoadIdentity()
	case renderer.MultMatrix:
		gl.MultMatrixf(&c.Matrix[0])
	case renderer.PushMatrix:
		gl.PushMatrix()
	case renderer.PopMatrix:
		gl.PopMatrix()
	case renderer.Translate:
		gl.Translatef(c.X, c.Y, c.Z)
	case renderer.Rotate:
		gl.Rotatef(c.Degrees, c.Axis[0], c.Axis[1], c.Axis[2])
	case renderer.SetColor:
		gl.Color3f(c.R, c.G, c.B)
	case renderer.LineWidth:
		gl.LineWidth(c.Width)
	case renderer.Draw:
		mode, err := primitive(c.Mode)
		if err != nil {
			return err
		}
		gl.Begin(mode)
		for _, v := range c.Vertices {
			gl.Vertex3f(v[0], v[1], v[2])
		}
		gl.End()
	case renderer.Sphere:
		b.drawSphere(c)
	case renderer.ConfigureLight:
		id, err := lightID(c.Light)
		if err != nil {
			return err
		}
		gl.Lightfv(id, gl.AMBIENT, &c.Ambient[0])
		gl.Lightfv(id, gl.DIFFUSE, &c.Diffuse[0])
		gl.Lightfv(id, gl.SPECULAR, &c.Specular[0])
		gl.Lightf(id, gl.QUADRATIC_ATTENUATION, c.QuadraticAttenuation)
	case renderer.PositionLight:
		id, err := lightID(c.Light)
		if err != nil {
			return err
		}
		gl.Lightfv(id, gl.POSITION, &c.Position[0])
	case renderer.EnableLight:
		id, err := lightID(c.Light)
		if err != nil {
			return err
		}
		if c.Enabled {
			gl.Enable(id)
		} else {
			gl.Disable(id)
		}
	case renderer.LightModel:
		gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &c.GlobalAmbient[0])
		local := int32(gl.FALSE)
		if c.LocalViewer {
			local = gl.TRUE
		}
		gl.LightModeli(gl.LIGHT_MODEL_LOCAL_VIEWER, local)
	case renderer.ApplyMaterial:
		f := face(c.Face)
		gl.Materialfv(f, gl.AMBIENT, &c.Ambient[0])
		gl.Materialfv(f, gl.DIFFUSE, &c.Diffuse[0])
		gl.Materialfv(f, gl.SPECULAR, &c.Specular[0])
		gl.Materialfv(f, gl.EMISSION, &c.Emission[0])
		gl.Materialf(f, gl.SHININESS, c.Shininess)
	case renderer.Text:
		drawText(c)
	case renderer.Present:
		gl.Flush()
		b.window.SwapBuffers()
	default:
		return fmt.Errorf("unsupported command %s", cmd.Op())
	}
	return nil
}

func (b *glBackend) Release() {
	clear(b.solid)
	clear(b.wire)
}

// drawSphere draws a cached tessellation, with normals when solid.
func (b *glBackend) drawSphere(c renderer.Sphere) {
	key := sphereKey{radius: c.Radius, slices: c.Slices, stacks: c.Stacks}
	if c.Wire {
		lines, ok := b.wire[key]
		if !ok {
			for _, l := range renderer.WireSphere(c.Radius, c.Slices, c.Stacks) {
				flat := make([]float32, 0, 3*len(l))
				for _, v := range l {
					flat = append(flat, v[0], v[1], v[2])
				}
				lines = append(lines, flat)
			}
			b.wire[key] = lines
		}
		for _, l := range lines {
			gl.Begin(gl.LINE_STRIP)
			for i := 0; i < len(l); i += 3 {
				gl.Vertex3f(l[i], l[i+1], l[i+2])
			}
			gl.End()
		}
		return
	}

	strips, ok := b.solid[key]
	if !ok {
		strips = renderer.SolidSphere(c.Radius, c.Slices, c.Stacks)
		b.solid[key] = strips
	}
	for _, s := range strips {
		gl.Begin(gl.QUAD_STRIP)
		for i, v := range s.Vertices {
			n := s.Normals[i]
			gl.Normal3f(n[0], n[1], n[2])
			gl.Vertex3f(v[0], v[1], v[2])
		}
		gl.End()
	}
}

// drawText rasterises the string and blits it at the projected raster position.
// Nothing is drawn when the raster position is clipped.
func drawText(c renderer.Text) {
	img := renderer.RasterizeText(c.Text, c.Color)
	if img == nil {
		return
	}
	img = renderer.FlipRows(img)
	gl.PushAttrib(gl.ENABLE_BIT | gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.LIGHTING)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.RasterPos3f(c.Position[0], c.Position[1], c.Position[2])
	b := img.Bounds()
	gl.DrawPixels(int32(b.Dx()), int32(b.Dy()), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PopAttrib()
}

func capability(c renderer.Capability) (uint32, error) {
	switch c {
	case renderer.CapabilityDepthTest:
		return gl.DEPTH_TEST, nil
	case renderer.CapabilityLighting:
		return gl.LIGHTING, nil
	case renderer.CapabilityCullFace:
		return gl.CULL_FACE, nil
	default:
		return 0, fmt.Errorf("unknown capability %s", c)
	}
}

func primitive(m renderer.PrimitiveMode) (uint32, error) {
	switch m {
	case renderer.PrimitiveLineStrip:
		return gl.LINE_STRIP, nil
	case renderer.PrimitiveLines:
		return gl.LINES, nil
	case renderer.PrimitivePolygon:
		return gl.POLYGON, nil
	default:
		return 0, fmt.Errorf("unknown primitive %s", m)
	}
}

func face(f material.Face) uint32 {
	switch f {
	case material.FaceBack:
		return gl.BACK
	case material.FaceFrontAndBack:
		return gl.FRONT_AND_BACK
	default:
		return gl.FRONT
	}
}

func lightID(index int) (uint32, error) {
	if index < 0 || index >= light.MaxLights {
		return 0, fmt.Errorf("light index %d out of range", index)
	}
	return gl.LIGHT0 + uint32(index), nil
}
