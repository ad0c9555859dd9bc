package deskew

import (
	"image"
	"math"

	"github.com/scantools/deskew/internal/binimg"
)

const degToRad = math.Pi / 180.0

// sample is one evaluated (angle, score) pair. Sweep and search keep their
// samples in evaluation order, not angle order.
type sample struct {
	angle float64 // degrees
	score float64
}

// sweepScores evaluates the differential square sum at every angle in
// {center-halfRange, center-halfRange+delta, ..., center+halfRange},
// shearing src about its upper-left corner for each. The scratch image is
// reused across evaluations; samples are returned in evaluation order.
func sweepScores(src *image.Gray, center, halfRange, delta float64, trace TraceFunc) ([]sample, error) {
	n := int(2.0*halfRange/delta) + 1
	samples := make([]sample, 0, n)
	scratch := image.NewGray(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))

	left := center - halfRange
	for i := 0; i < n; i++ {
		theta := left + float64(i)*delta
		binimg.VShearCorner(scratch, src, degToRad*theta)
		score, err := FindDifferentialSquareSum(scratch)
		if err != nil {
			return nil, err
		}
		if trace != nil {
			trace(StageSweep, theta, score)
		}
		samples = append(samples, sample{angle: theta, score: score})
	}
	return samples, nil
}

// maxSample returns the index of the highest-scoring sample.
func maxSample(samples []sample) int {
	best := 0
	for i, s := range samples {
		if s.score > samples[best].score {
			best = i
		}
	}
	return best
}

// fitPeakAngle estimates the sub-step angle of the score maximum by
// fitting a quadratic through three samples (Lagrangian three-point
// interpolation) and returning the abscissa of its vertex. Falls back to
// x2 when the three points are collinear.
func fitPeakAngle(x1, y1, x2, y2, x3, y3 float64) float64 {
	denom := 2.0 * (y1*(x2-x3) + y2*(x3-x1) + y3*(x1-x2))
	if denom == 0 {
		return x2
	}
	num := y1*(x2*x2-x3*x3) + y2*(x3*x3-x1*x1) + y3*(x1*x1-x2*x2)
	return num / denom
}

// FindSkewSweep estimates the deskew angle of a bitonal image by scoring a
// coarse sweep of evenly spaced angles in [-sweepRange, +sweepRange]
// degrees with step sweepDelta, on an image reduced by the given linear
// factor (1, 2, 4 or 8). The peak is refined below the step size by
// quadratic interpolation through the maximum sample and its two angular
// neighbors; when the maximum sits at either end of the scan the raw
// sample angle is returned instead.
//
// Returns ErrAllBackground for an image with no foreground pixels at the
// scoring resolution. The returned angle is degrees, clockwise positive.
func FindSkewSweep(src *image.Gray, reduction int, sweepRange, sweepDelta float64) (float64, error) {
	return FindSkewSweepTrace(src, reduction, sweepRange, sweepDelta, nil)
}

// FindSkewSweepTrace is FindSkewSweep with sample tracing. Every scored
// angle is reported with StageSweep; when the maximum lands at either end
// of the scanned range the estimate is unreliable (the true peak may lie
// outside the range) and StageSweepEdge is reported with the edge sample
// before its raw angle is returned.
func FindSkewSweepTrace(src *image.Gray, reduction int, sweepRange, sweepDelta float64, trace TraceFunc) (float64, error) {
	if src == nil {
		return 0, ErrNilImage
	}
	ranks, ok := binimg.ReductionRanks(reduction)
	if !ok {
		return 0, ErrBadReduction
	}

	reduced := binimg.ReduceRankCascade(src, ranks...)
	if binimg.IsAllBackground(reduced) {
		return 0, ErrAllBackground
	}

	samples, err := sweepScores(reduced, 0, sweepRange, sweepDelta, trace)
	if err != nil {
		return 0, err
	}

	i := maxSample(samples)
	if i == 0 || i == len(samples)-1 {
		if trace != nil {
			trace(StageSweepEdge, samples[i].angle, samples[i].score)
		}
		return samples[i].angle, nil
	}
	return fitPeakAngle(
		samples[i-1].angle, samples[i-1].score,
		samples[i].angle, samples[i].score,
		samples[i+1].angle, samples[i+1].score,
	), nil
}
