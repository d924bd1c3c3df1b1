package renderer

import (
	"image"
	"image/color"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextFace is the bitmap face used for on-screen text.
var TextFace = basicfont.Face7x13

// RasterizeText renders s with TextFace onto a transparent image just large
// enough to hold it. Rows are stored top-down as usual for image.RGBA.
//
// Parameters:
//   - s: the text to render
//   - c: the text colour
//
// Returns:
//   - *image.RGBA: the rendered text, or nil for an empty string
func RasterizeText(s string, c common.RGBA) *image.RGBA {
	if s == "" {
		return nil
	}
	metrics := TextFace.Metrics()
	width := font.MeasureString(TextFace, s).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(toNRGBA(c)),
		Face: TextFace,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(s)
	return img
}

// FlipRows returns a copy of img with its rows in bottom-up order, the layout
// expected by pixel upload calls whose origin is the lower-left corner.
func FlipRows(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		dst := out.Pix[(b.Dy()-1-y)*out.Stride:]
		copy(dst, src)
	}
	return out
}

func toNRGBA(c common.RGBA) color.NRGBA {
	return color.NRGBA{
		R: channel(c[0]),
		G: channel(c[1]),
		B: channel(c[2]),
		A: channel(c[3]),
	}
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
