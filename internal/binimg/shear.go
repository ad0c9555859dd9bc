package binimg

import (
	"image"
	"math"
)

// VShearCorner writes into dst a vertical shear of src about its upper-left
// corner: column x is displaced downward by round(x*tan(radians)) pixels
// for a positive angle, upward for a negative one. White background is
// brought in where the shear exposes the raster. dst and src must have
// equal dimensions; dst is fully overwritten.
//
// A vertical shear by the textline angle makes the textlines raster
// aligned, which is what lets row profiles stand in for profiles along
// tilted lines. The small-angle approximation is good to well beyond the
// few degrees of skew seen in practice.
func VShearCorner(dst, src *image.Gray, radians float64) {
	sb := src.Bounds()
	db := dst.Bounds()
	w := sb.Dx()
	h := sb.Dy()
	if db.Dx() != w || db.Dy() != h {
		return
	}

	tangent := math.Tan(radians)
	for x := 0; x < w; x++ {
		shift := int(math.Round(tangent * float64(x)))
		for y := 0; y < h; y++ {
			sy := y - shift
			var v uint8 = 255
			if sy >= 0 && sy < h {
				v = src.Pix[src.PixOffset(sb.Min.X+x, sb.Min.Y+sy)]
			}
			dst.Pix[dst.PixOffset(db.Min.X+x, db.Min.Y+y)] = v
		}
	}
}
