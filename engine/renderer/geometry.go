package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SphereStrip is one band of a tessellated sphere, drawn as a quad strip.
// Normals[i] is the unit normal of Vertices[i].
type SphereStrip struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
}

// spherePoint returns the unit-sphere point at longitude theta and latitude phi.
func spherePoint(theta, phi float32) mgl32.Vec3 {
	cp := math32.Cos(phi)
	return mgl32.Vec3{cp * math32.Sin(theta), math32.Sin(phi), cp * math32.Cos(theta)}
}

// SolidSphere tessellates a sphere of the given radius into stacks bands of
// slices quads each, from the south pole upward. Each band alternates upper and
// lower vertices so its quads wind counter-clockwise when seen from outside.
//
// Parameters:
//   - radius: the sphere radius
//   - slices: subdivisions around the vertical axis, at least 3
//   - stacks: subdivisions from pole to pole, at least 2
//
// Returns:
//   - []SphereStrip: the bands, or nil when slices or stacks are too small
func SolidSphere(radius float32, slices, stacks int) []SphereStrip {
	if slices < 3 || stacks < 2 {
		return nil
	}
	strips := make([]SphereStrip, 0, stacks)
	dPhi := math32.Pi / float32(stacks)
	dTheta := 2 * math32.Pi / float32(slices)
	for j := 0; j < stacks; j++ {
		lower := -math32.Pi/2 + float32(j)*dPhi
		upper := lower + dPhi
		s := SphereStrip{
			Vertices: make([]mgl32.Vec3, 0, 2*(slices+1)),
			Normals:  make([]mgl32.Vec3, 0, 2*(slices+1)),
		}
		for i := 0; i <= slices; i++ {
			theta := float32(i%slices) * dTheta
			nu := spherePoint(theta, upper)
			nl := spherePoint(theta, lower)
			s.Vertices = append(s.Vertices, nu.Mul(radius), nl.Mul(radius))
			s.Normals = append(s.Normals, nu, nl)
		}
		strips = append(strips, s)
	}
	return strips
}

// WireSphere returns the polylines of a wire-frame sphere: one closed ring per
// interior latitude and one pole-to-pole meridian per slice.
//
// Parameters:
//   - radius: the sphere radius
//   - slices: number of meridians, at least 3
//   - stacks: number of latitude bands, at least 2
//
// Returns:
//   - [][]mgl32.Vec3: the polylines, each drawn as a line strip
func WireSphere(radius float32, slices, stacks int) [][]mgl32.Vec3 {
	if slices < 3 || stacks < 2 {
		return nil
	}
	dPhi := math32.Pi / float32(stacks)
	dTheta := 2 * math32.Pi / float32(slices)
	lines := make([][]mgl32.Vec3, 0, stacks-1+slices)
	for j := 1; j < stacks; j++ {
		phi := -math32.Pi/2 + float32(j)*dPhi
		ring := make([]mgl32.Vec3, 0, slices+1)
		for i := 0; i <= slices; i++ {
			ring = append(ring, spherePoint(float32(i%slices)*dTheta, phi).Mul(radius))
		}
		lines = append(lines, ring)
	}
	for i := 0; i < slices; i++ {
		theta := float32(i) * dTheta
		meridian := make([]mgl32.Vec3, 0, stacks+1)
		for j := 0; j <= stacks; j++ {
			meridian = append(meridian, spherePoint(theta, -math32.Pi/2+float32(j)*dPhi).Mul(radius))
		}
		lines = append(lines, meridian)
	}
	return lines
}
