package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizeText(t *testing.T) {
	assert.Nil(t, RasterizeText("", common.White))

	img := RasterizeText("1.00", common.White)
	require.NotNil(t, img)
	assert.Equal(t, 28, img.Bounds().Dx())
	assert.Equal(t, 13, img.Bounds().Dy())

	lit := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			lit++
			assert.Equal(t, uint8(255), img.Pix[i-1])
		}
	}
	assert.Positive(t, lit)
}

func TestFlipRows(t *testing.T) {
	img := RasterizeText("_", common.White)
	flipped := FlipRows(img)
	h := img.Bounds().Dy()
	for y := 0; y < h; y++ {
		assert.Equal(t,
			img.Pix[y*img.Stride:(y+1)*img.Stride],
			flipped.Pix[(h-1-y)*flipped.Stride:(h-y)*flipped.Stride])
	}
}

func TestChannel(t *testing.T) {
	assert.Equal(t, uint8(0), channel(-1))
	assert.Equal(t, uint8(255), channel(2))
	assert.Equal(t, uint8(128), channel(0.5))
}
