package deskew

import (
	"image"
	"math"

	"github.com/scantools/deskew/internal/binimg"
)

// createPage creates an all-white page image.
func createPage(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

// createTextlines creates a page with full-width black bars standing in
// for textlines: `count` bars of the given thickness, evenly spaced
// starting at startY.
func createTextlines(width, height, startY, spacing, thickness, count int) *image.Gray {
	img := createPage(width, height)
	for n := 0; n < count; n++ {
		y := startY + n*spacing
		for t := 0; t < thickness; t++ {
			if y+t < 0 || y+t >= height {
				continue
			}
			for x := 0; x < width; x++ {
				img.Pix[img.PixOffset(x, y+t)] = 0
			}
		}
	}
	return img
}

// skewPage returns src vertically sheared by the given angle in degrees.
// Shearing by -theta produces a page whose deskew angle is +theta.
func skewPage(src *image.Gray, degrees float64) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	binimg.VShearCorner(dst, src, degrees*math.Pi/180.0)
	return dst
}

// flipVertical returns src with its row order reversed.
func flipVertical(src *image.Gray) *image.Gray {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(dst.Pix[dst.PixOffset(0, h-1-y):dst.PixOffset(0, h-1-y)+w],
			src.Pix[src.PixOffset(0, y):src.PixOffset(0, y)+w])
	}
	return dst
}
