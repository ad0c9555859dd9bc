package deskew

import (
	"image"
	"math"

	"github.com/scantools/deskew/internal/binimg"
)

// Default search parameters used by FindSkew, FindSkewAndDeskew and
// Deskew. They trade a strongly reduced sweep for speed against a finer
// search image for accuracy; the expected accuracy is not better than the
// inverse image width in pixels, about 0.03 degrees for a typical page.
const (
	// DefaultSweepRange is half the swept range in degrees.
	DefaultSweepRange = 5.0

	// DefaultSweepDelta is the sweep step in degrees.
	DefaultSweepDelta = 1.0

	// DefaultMinSearchDelta is the binary search increment at which
	// refinement stops, in degrees.
	DefaultMinSearchDelta = 0.01

	// DefaultSweepReduction is the linear reduction factor of the
	// sweep image.
	DefaultSweepReduction = 4

	// DefaultSearchReduction is the linear reduction factor of the
	// binary search image used by FindSkew.
	DefaultSearchReduction = 2
)

// Gates applied by Deskew and FindSkewAndDeskew before rotating.
const (
	// MinDeskewAngle is the smallest angle worth correcting, in
	// degrees. Below it the input is returned unrotated.
	MinDeskewAngle = 0.1

	// MinAllowedConfidence is the smallest confidence at which an
	// estimate is trusted enough to rotate the image.
	MinAllowedConfidence = 3.0
)

// Validity thresholds for the confidence computation.
const (
	// minValidMaxScore is the smallest maximum score that can yield a
	// nonzero confidence.
	minValidMaxScore = 10000.0

	// minScoreThresholdConstant, multiplied by height*width² of the
	// search image, is the smallest minimum score that can yield a
	// nonzero confidence.
	minScoreThresholdConstant = 0.000002
)

// Deskew returns a deskewed copy of a bitonal image. It finds the skew
// angle using default sweep parameters and the given binary search
// reduction factor (1, 2 or 4); if the angle is large enough and the
// measurement trustworthy, the returned image is rotated to correct it,
// otherwise it is an unmodified copy of the input.
//
// Fails only on invalid input: a nil image, pixels that are not strictly
// black or white, or a reduction factor outside {1, 2, 4}.
func Deskew(src *image.Gray, redSearch int) (*image.Gray, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	if !binimg.IsBinary(src) {
		return nil, ErrNotBinary
	}
	if redSearch != 1 && redSearch != 2 && redSearch != 4 {
		return nil, ErrBadReduction
	}
	dst, _, err := FindSkewAndDeskew(src, redSearch)
	return dst, err
}

// FindSkewAndDeskew is Deskew with the measured skew exposed to the
// caller. The returned Skew carries the angle and confidence even when
// the image was not rotated; a degenerate (all background) input yields
// an unmodified copy and a zero-value Skew rather than an error.
func FindSkewAndDeskew(src *image.Gray, redSearch int) (*image.Gray, *Skew, error) {
	if src == nil {
		return nil, nil, ErrNilImage
	}
	if redSearch != 1 && redSearch != 2 && redSearch != 4 {
		return nil, nil, ErrBadReduction
	}

	skew, err := FindSkewSweepAndSearch(src, DefaultSweepReduction, redSearch,
		DefaultSweepRange, DefaultSweepDelta, DefaultMinSearchDelta)
	if err != nil {
		// The angle could not be measured; pass the image through.
		return binimg.Clone(src), &Skew{}, nil
	}

	if math.Abs(skew.AngleDegrees) < MinDeskewAngle || skew.Confidence < MinAllowedConfidence {
		return binimg.Clone(src), skew, nil
	}

	rotated := binimg.RotateShear(src, degToRad*skew.AngleDegrees)
	return rotated, skew, nil
}

// FindSkew measures the deskew angle and confidence of a bitonal image
// using the default parameters. It fails with ErrAllBackground when the
// image is degenerate and no measurement can be made; a successful return
// still requires checking Skew.Confidence before trusting the angle.
func FindSkew(src *image.Gray) (*Skew, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	return FindSkewSweepAndSearch(src, DefaultSweepReduction, DefaultSearchReduction,
		DefaultSweepRange, DefaultSweepDelta, DefaultMinSearchDelta)
}
