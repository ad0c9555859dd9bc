package binimg

import "image"

// foregroundMax is the highest gray value counted as foreground (black ink).
const foregroundMax = 127

// IsForeground reports whether a gray value represents an ink pixel.
func IsForeground(v uint8) bool {
	return v <= foregroundMax
}

// Clone returns a deep copy of src with the same bounds and pixel data.
func Clone(src *image.Gray) *image.Gray {
	dst := image.NewGray(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// IsAllBackground reports whether src contains no foreground pixels.
func IsAllBackground(src *image.Gray) bool {
	bounds := src.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := src.Pix[src.PixOffset(bounds.Min.X, y) : src.PixOffset(bounds.Min.X, y)+bounds.Dx()]
		for _, v := range row {
			if IsForeground(v) {
				return false
			}
		}
	}
	return true
}

// IsBinary reports whether every pixel of img is fully black or fully
// white. Unlike the midpoint threshold used by the raster primitives, this
// is a strict check; it is what the top-level deskew entry points use to
// reject grayscale input.
func IsBinary(img image.Image) bool {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if !(r == 0 && g == 0 && b == 0) && !(r == 0xffff && g == 0xffff && b == 0xffff) {
				return false
			}
		}
	}
	return true
}
