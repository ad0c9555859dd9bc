package binimg

import "image"

// ReduceRankCascade reduces src by a factor of two per rank value, using
// rank-filtered 2x2 subsampling: an output pixel is foreground when the
// number of foreground pixels in its 2x2 source block is at least the rank
// for that level (1..4). Rank 1 is a logical OR over the block and
// preserves thin strokes; rank 4 is a logical AND.
//
// With no ranks the source is returned as a copy. Ranks outside 1..4 are
// clamped. Odd trailing rows and columns are dropped at each level.
func ReduceRankCascade(src *image.Gray, ranks ...int) *image.Gray {
	if len(ranks) == 0 {
		return Clone(src)
	}
	out := src
	for _, rank := range ranks {
		if rank < 1 {
			rank = 1
		} else if rank > 4 {
			rank = 4
		}
		out = reduceRank2(out, rank)
	}
	return out
}

// reduceRank2 performs one 2x reduction level.
func reduceRank2(src *image.Gray, rank int) *image.Gray {
	bounds := src.Bounds()
	w := bounds.Dx() / 2
	h := bounds.Dy() / 2
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		sy := bounds.Min.Y + 2*y
		row0 := src.Pix[src.PixOffset(bounds.Min.X, sy):]
		row1 := src.Pix[src.PixOffset(bounds.Min.X, sy+1):]
		drow := dst.Pix[dst.PixOffset(0, y):]
		for x := 0; x < w; x++ {
			count := 0
			if IsForeground(row0[2*x]) {
				count++
			}
			if IsForeground(row0[2*x+1]) {
				count++
			}
			if IsForeground(row1[2*x]) {
				count++
			}
			if IsForeground(row1[2*x+1]) {
				count++
			}
			if count >= rank {
				drow[x] = 0
			} else {
				drow[x] = 255
			}
		}
	}
	return dst
}

// ReductionRanks returns the rank chain that reduces an image by the given
// linear factor (1, 2, 4 or 8). The chain keeps early levels at rank 1 so
// that thin text strokes survive the cascade. It returns nil for factor 1
// and ok=false for any other unsupported factor.
func ReductionRanks(factor int) (ranks []int, ok bool) {
	switch factor {
	case 1:
		return nil, true
	case 2:
		return []int{1}, true
	case 4:
		return []int{1, 1}, true
	case 8:
		return []int{1, 1, 2}, true
	}
	return nil, false
}

// SecondaryReductionRanks returns the rank chain for reducing an already
// reduced image by a further factor (1, 2, 4 or 8), as used to derive the
// sweep image from the search image. Later levels use higher ranks because
// strokes have already thickened relative to the raster.
func SecondaryReductionRanks(factor int) (ranks []int, ok bool) {
	switch factor {
	case 1:
		return nil, true
	case 2:
		return []int{1}, true
	case 4:
		return []int{1, 2}, true
	case 8:
		return []int{1, 2, 2}, true
	}
	return nil, false
}
