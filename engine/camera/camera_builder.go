package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithOrthographic makes the camera orthographic over a fixed logical box.
//
// Parameters:
//   - left, right, bottom, top: the box edges in eye space
//   - near, far: the clipping plane distances
//
// Returns:
//   - CameraBuilderOption: a function that sets an orthographic projection
func WithOrthographic(left, right, bottom, top, near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = ProjectionOrthographic
		c.left, c.right, c.bottom, c.top = left, right, bottom, top
		c.near, c.far = near, far
	}
}

// WithPerspective makes the camera perspective.
//
// Parameters:
//   - fovDeg: vertical field of view in degrees
//   - near, far: the clipping plane distances (near must be > 0)
//
// Returns:
//   - CameraBuilderOption: a function that sets a perspective projection
func WithPerspective(fovDeg, near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = ProjectionPerspective
		c.fov = fovDeg
		c.near, c.far = near, far
	}
}

// WithLookAt sets a view transform that places the eye and aims it at a target.
//
// Parameters:
//   - eye: the eye position
//   - target: the point looked at
//   - up: the up direction
//
// Returns:
//   - CameraBuilderOption: a function that sets the view transform
func WithLookAt(eye, target, up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.eye, c.target, c.up = eye, target, up
		c.hasView = true
	}
}

// WithViewport sets the initial viewport size.
//
// Parameters:
//   - width, height: the viewport size in pixels
//
// Returns:
//   - CameraBuilderOption: a function that sets the viewport
func WithViewport(width, height int) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.width, c.height = width, height
	}
}
