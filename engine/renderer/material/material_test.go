package material

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	m := NewMaterial()
	assert.Equal(t, FaceFront, m.Face())
	assert.Equal(t, common.Gray(0.2), m.Ambient())
	assert.Equal(t, common.Gray(0.8), m.Diffuse())
	assert.Equal(t, common.Black, m.Specular())
	assert.Equal(t, common.Black, m.Emission())
	assert.Zero(t, m.Shininess())
}

func TestOptions(t *testing.T) {
	blue := common.Opaque(0, 0, 1)
	m := NewMaterial(
		WithName("ball"),
		WithFace(FaceFrontAndBack),
		WithAmbientAndDiffuse(blue),
		WithSpecular(common.White),
		WithEmission(common.Opaque(0, 0, 0.5)),
		WithShininess(50),
	)
	assert.Equal(t, "ball", m.Name())
	assert.Equal(t, "front_and_back", m.Face().String())
	assert.Equal(t, blue, m.Ambient())
	assert.Equal(t, blue, m.Diffuse())
	assert.Equal(t, common.White, m.Specular())
	assert.Equal(t, common.Opaque(0, 0, 0.5), m.Emission())
	assert.Equal(t, float32(50), m.Shininess())

	m = NewMaterial(WithAmbient(common.Gray(1)), WithDiffuse(common.Gray(0)))
	assert.Equal(t, common.Gray(1), m.Ambient())
	assert.Equal(t, common.Gray(0), m.Diffuse())
}

func TestShininessClamped(t *testing.T) {
	assert.Equal(t, float32(MaxShininess), NewMaterial(WithShininess(500)).Shininess())
	assert.Equal(t, float32(0), NewMaterial(WithShininess(-3)).Shininess())
}
