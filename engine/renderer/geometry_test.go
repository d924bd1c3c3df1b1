package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolidSphere(t *testing.T) {
	strips := SolidSphere(1.5, 8, 4)
	require.Len(t, strips, 4)
	for _, s := range strips {
		require.Len(t, s.Vertices, 18)
		require.Len(t, s.Normals, 18)
		for i, v := range s.Vertices {
			assert.InDelta(t, 1.5, v.Len(), 1e-4)
			assert.InDelta(t, 1.0, s.Normals[i].Len(), 1e-4)
			assert.True(t, v.Normalize().ApproxEqualThreshold(s.Normals[i], 1e-4))
		}
		// Upper vertex precedes lower vertex in each pair.
		assert.Greater(t, s.Vertices[0].Y(), s.Vertices[1].Y())
	}
	assert.InDelta(t, -1.5, strips[0].Vertices[1].Y(), 1e-4)
	assert.InDelta(t, 1.5, strips[3].Vertices[0].Y(), 1e-4)
}

func TestSolidSphereOutwardWinding(t *testing.T) {
	s := SolidSphere(1, 16, 8)[3]
	// First triangle of the strip: upper0, lower0, upper1.
	a, b, c := s.Vertices[0], s.Vertices[1], s.Vertices[2]
	n := b.Sub(a).Cross(c.Sub(a))
	assert.Greater(t, n.Dot(a.Add(b).Add(c)), float32(0))
}

func TestWireSphere(t *testing.T) {
	lines := WireSphere(1, 6, 4)
	require.Len(t, lines, 3+6)
	assert.Len(t, lines[0], 7)
	assert.Len(t, lines[3], 5)
	for _, line := range lines {
		for _, v := range line {
			assert.InDelta(t, 1.0, v.Len(), 1e-4)
		}
	}
}

func TestSphereRejectsDegenerateTessellation(t *testing.T) {
	assert.Nil(t, SolidSphere(1, 2, 4))
	assert.Nil(t, WireSphere(1, 8, 1))
}
