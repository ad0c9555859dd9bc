package binimg

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// lightness returns the perceptual lightness of a pixel on a 0-255 scale,
// using the L component of CIE Lab. Perceptual lightness separates ink
// from paper more reliably than raw luma on tinted or aged scans.
func lightness(img image.Image, x, y int) uint8 {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		// Fully transparent pixel; treat as background.
		return 255
	}
	l, _, _ := c.Lab()
	if l <= 0 {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return uint8(l*255.0 + 0.5)
}

// OtsuThreshold computes a global binarization threshold for img using
// Otsu's method over a 256-bin lightness histogram: the threshold that
// maximizes the between-class variance of the two resulting pixel classes.
func OtsuThreshold(img image.Image) uint8 {
	bounds := img.Bounds()

	var hist [256]int
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[lightness(img, x, y)]++
			total++
		}
	}
	if total == 0 {
		return 128
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var sumBack, weightBack float64
	bestThreshold := 128
	bestVariance := -1.0
	for t := 0; t < 256; t++ {
		weightBack += float64(hist[t])
		if weightBack == 0 {
			continue
		}
		weightFore := float64(total) - weightBack
		if weightFore == 0 {
			break
		}
		sumBack += float64(t) * float64(hist[t])

		meanBack := sumBack / weightBack
		meanFore := (sum - sumBack) / weightFore
		diff := meanBack - meanFore
		variance := weightBack * weightFore * diff * diff
		if variance > bestVariance {
			bestVariance = variance
			bestThreshold = t
		}
	}
	return uint8(bestThreshold)
}

// Binarize converts img to a strictly bitonal *image.Gray: pixels with
// lightness at or below the threshold become foreground (0), the rest
// background (255). A threshold of 0 selects Otsu's method automatically.
func Binarize(img image.Image, threshold uint8) *image.Gray {
	if threshold == 0 {
		threshold = OtsuThreshold(img)
	}
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if lightness(img, bounds.Min.X+x, bounds.Min.Y+y) <= threshold {
				dst.Pix[dst.PixOffset(x, y)] = 0
			} else {
				dst.Pix[dst.PixOffset(x, y)] = 255
			}
		}
	}
	return dst
}
