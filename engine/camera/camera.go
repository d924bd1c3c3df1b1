package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionType selects how the camera maps eye space onto the viewport.
type ProjectionType int

const (
	// ProjectionOrthographic maps a fixed logical box onto the viewport regardless of its aspect ratio.
	ProjectionOrthographic ProjectionType = iota

	// ProjectionPerspective maps a view frustum whose horizontal extent follows the viewport aspect ratio.
	ProjectionPerspective
)

func (p ProjectionType) String() string {
	if p == ProjectionPerspective {
		return "perspective"
	}
	return "orthographic"
}

type cameraImpl struct {
	projection ProjectionType

	// orthographic box
	left, right, bottom, top float32

	// perspective frustum, fov in degrees
	fov float32

	near, far float32

	width, height int
	aspect        float32

	eye, target, up mgl32.Vec3
	hasView         bool

	projectionMatrix mgl32.Mat4
	viewMatrix       mgl32.Mat4
}

// Camera holds the view mapping of a scene: the viewport size, the projection
// from eye space, and an optional look-at view transform.
// The projection is recomputed on every Resize.
type Camera interface {
	// Projection returns the projection type.
	//
	// Returns:
	//   - ProjectionType: orthographic or perspective
	Projection() ProjectionType

	// Bounds returns the orthographic box edges. Meaningless for perspective cameras.
	//
	// Returns:
	//   - left, right, bottom, top: the box edges in eye space
	Bounds() (left, right, bottom, top float32)

	// Fov returns the vertical field of view in degrees. Meaningless for orthographic cameras.
	//
	// Returns:
	//   - float32: the field of view in degrees
	Fov() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// Aspect returns the aspect ratio used by the last projection recompute.
	//
	// Returns:
	//   - float32: width / height, with zero dimensions substituted by 1
	Aspect() float32

	// Viewport returns the drawable size the projection was last computed for.
	//
	// Returns:
	//   - width, height: the viewport size in pixels
	Viewport() (width, height int)

	// ProjectionMatrix returns the current projection matrix (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// HasView reports whether a look-at view transform was configured.
	HasView() bool

	// ViewMatrix returns the look-at view matrix, or the identity if none was configured.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// Resize records a new viewport size and recomputes the projection.
	// Zero or negative dimensions never cause a division fault: the viewport is
	// clamped to zero and the aspect ratio substitutes 1 for the bad dimension.
	//
	// Parameters:
	//   - width, height: the new drawable size in pixels
	Resize(width, height int)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera with the given options applied.
// Without options the camera is orthographic over [-1, 1] in every axis with a 1x1 viewport.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		projection: ProjectionOrthographic,
		left:       -1,
		right:      1,
		bottom:     -1,
		top:        1,
		fov:        60,
		near:       -1,
		far:        1,
		width:      1,
		height:     1,
		up:         mgl32.Vec3{0, 1, 0},
		viewMatrix: mgl32.Ident4(),
	}
	for _, opt := range options {
		opt(c)
	}
	if c.hasView {
		c.viewMatrix = mgl32.LookAtV(c.eye, c.target, c.up)
	}
	c.Resize(c.width, c.height)
	return c
}

func (c *cameraImpl) Projection() ProjectionType {
	return c.projection
}

func (c *cameraImpl) Bounds() (left, right, bottom, top float32) {
	return c.left, c.right, c.bottom, c.top
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Viewport() (width, height int) {
	return c.width, c.height
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.projectionMatrix
}

func (c *cameraImpl) HasView() bool {
	return c.hasView
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.viewMatrix
}

func (c *cameraImpl) Resize(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
	c.aspect = float32(max(width, 1)) / float32(max(height, 1))
	c.updateProjection()
}

// updateProjection recomputes the projection matrix from the current settings and aspect ratio.
func (c *cameraImpl) updateProjection() {
	switch c.projection {
	case ProjectionPerspective:
		c.projectionMatrix = mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
	default:
		c.projectionMatrix = mgl32.Ortho(c.left, c.right, c.bottom, c.top, c.near, c.far)
	}
}
