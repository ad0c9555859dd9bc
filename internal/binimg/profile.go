package binimg

import "image"

// RowForegroundCounts returns the pixel profile of src: the number of
// foreground pixels in each row, top to bottom. The returned slice has
// length equal to the image height.
func RowForegroundCounts(src *image.Gray) []int {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	counts := make([]int, h)
	for y := 0; y < h; y++ {
		off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		row := src.Pix[off : off+w]
		n := 0
		for _, v := range row {
			if IsForeground(v) {
				n++
			}
		}
		counts[y] = n
	}
	return counts
}
