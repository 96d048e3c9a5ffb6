package render

import (
	"image"
	"image/color"
)

// Snapshot renders binary cell data into a two-tone RGBA image of the given
// dimensions. It is the headless counterpart of GridPainter.Blit, used for
// PNG output and tests.
func Snapshot(cells []uint8, w, h int, on, off color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(cells) != w*h {
		return img
	}
	fillBinaryRGBA(img.Pix, cells, on, off)
	return img
}
