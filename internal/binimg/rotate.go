package binimg

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// RotateShear returns a copy of src rotated clockwise by the given angle
// (radians) about its center, with white background brought in at the
// exposed corners. The output has the same dimensions as the input: the
// rotated raster is cropped back to the original frame, the convention
// scanned-page pipelines expect from a deskew step.
//
// The result is rethresholded at the midpoint so the raster stays bitonal
// after the rotation's edge interpolation.
func RotateShear(src *image.Gray, radians float64) *image.Gray {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	// imaging.Rotate is counter-clockwise positive in display
	// orientation; our skew convention is clockwise positive.
	degrees := -radians * 180.0 / math.Pi
	rotated := imaging.Rotate(src, degrees, color.White)
	cropped := imaging.CropCenter(rotated, w, h)

	dst := image.NewGray(image.Rect(0, 0, w, h))
	cb := cropped.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := cropped.At(cb.Min.X+x, cb.Min.Y+y).RGBA()
			// Luma on 16-bit channels, ITU-R BT.601 weights.
			luma := (299*r + 587*g + 114*b) / 1000
			if luma < 0x8000 {
				dst.Pix[dst.PixOffset(x, y)] = 0
			} else {
				dst.Pix[dst.PixOffset(x, y)] = 255
			}
		}
	}
	return dst
}
