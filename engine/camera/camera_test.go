package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func finite(m mgl32.Mat4) bool {
	for _, v := range m {
		if v != v || v > 1e30 || v < -1e30 {
			return false
		}
	}
	return true
}

func TestOrthographicIgnoresAspect(t *testing.T) {
	c := NewCamera(WithOrthographic(0, 100, 0, 100, -1, 1), WithViewport(500, 500))
	before := c.ProjectionMatrix()
	c.Resize(800, 200)
	assert.Equal(t, before, c.ProjectionMatrix())

	w, h := c.Viewport()
	assert.Equal(t, 800, w)
	assert.Equal(t, 200, h)

	// (50, 50) is the centre of the box and maps to the clip-space origin.
	p := c.ProjectionMatrix().Mul4x1(mgl32.Vec4{50, 50, 0, 1})
	assert.InDelta(t, 0, p[0], 1e-6)
	assert.InDelta(t, 0, p[1], 1e-6)
}

func TestPerspectiveFollowsAspect(t *testing.T) {
	c := NewCamera(WithPerspective(60, 1, 20), WithViewport(500, 500))
	assert.Equal(t, ProjectionPerspective, c.Projection())
	assert.Equal(t, float32(1), c.Aspect())

	c.Resize(1000, 500)
	assert.Equal(t, float32(2), c.Aspect())
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(60), 2, 1, 20), c.ProjectionMatrix())
}

func TestResizeZeroHeight(t *testing.T) {
	c := NewCamera(WithPerspective(60, 1, 20))
	assert.NotPanics(t, func() { c.Resize(640, 0) })
	assert.Equal(t, float32(640), c.Aspect())
	assert.True(t, finite(c.ProjectionMatrix()))

	w, h := c.Viewport()
	assert.Equal(t, 640, w)
	assert.Equal(t, 0, h)

	c.Resize(0, 0)
	assert.Equal(t, float32(1), c.Aspect())
	assert.True(t, finite(c.ProjectionMatrix()))
}

func TestLookAt(t *testing.T) {
	plain := NewCamera()
	assert.False(t, plain.HasView())
	assert.Equal(t, mgl32.Ident4(), plain.ViewMatrix())

	eye := mgl32.Vec3{0, 3, 5}
	c := NewCamera(WithPerspective(60, 1, 20), WithLookAt(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))
	assert.True(t, c.HasView())

	// The eye maps to the view-space origin.
	p := c.ViewMatrix().Mul4x1(eye.Vec4(1))
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.InDelta(t, 0, p[2], 1e-5)
}
