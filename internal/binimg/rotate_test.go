package binimg

import (
	"math"
	"testing"
)

func TestRotateShear_PreservesDimensions(t *testing.T) {
	src := createWhite(123, 77)
	out := RotateShear(src, 3.0*math.Pi/180.0)
	if out.Bounds().Dx() != 123 || out.Bounds().Dy() != 77 {
		t.Errorf("dimensions changed: %v", out.Bounds())
	}
}

func TestRotateShear_OutputIsBitonal(t *testing.T) {
	src := createWhite(100, 100)
	for x := 10; x < 90; x++ {
		for y := 48; y < 52; y++ {
			src.Pix[src.PixOffset(x, y)] = 0
		}
	}

	out := RotateShear(src, 1.5*math.Pi/180.0)
	for _, v := range out.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("non-bitonal pixel value %d after rotation", v)
		}
	}
	if IsAllBackground(out) {
		t.Error("bar vanished under rotation")
	}
}

func TestRotateShear_ClockwisePositive(t *testing.T) {
	// Ink on the right half of a horizontal bar. A positive (clockwise)
	// rotation must move the right side down.
	src := createWhite(100, 100)
	for x := 50; x < 100; x++ {
		src.Pix[src.PixOffset(x, 50)] = 0
	}

	out := RotateShear(src, 10.0*math.Pi/180.0)

	sumY, n := 0, 0
	for y := 0; y < 100; y++ {
		for x := 80; x < 100; x++ {
			if IsForeground(out.Pix[out.PixOffset(x, y)]) {
				sumY += y
				n++
			}
		}
	}
	if n == 0 {
		t.Fatal("right edge of bar vanished")
	}
	if avg := float64(sumY) / float64(n); avg <= 50 {
		t.Errorf("right side moved up (avg y %.1f); rotation direction is wrong", avg)
	}
}

func TestRotateShear_FillsBackgroundWhite(t *testing.T) {
	src := createWhite(80, 80)
	out := RotateShear(src, 5.0*math.Pi/180.0)
	if !IsAllBackground(out) {
		t.Error("rotation of a blank page introduced ink")
	}
}
