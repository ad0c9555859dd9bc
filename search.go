package deskew

import (
	"image"

	"github.com/scantools/deskew/internal/binimg"
)

// Trace stages passed to a TraceFunc.
const (
	// StageSweep marks a sample evaluated during the coarse sweep.
	StageSweep = "sweep"

	// StageSearch marks a sample evaluated during binary search
	// refinement.
	StageSearch = "search"

	// StageSweepEdge marks the unreliable-result warning emitted when
	// the sweep maximum lands at the edge of the scanned range. The
	// accompanying angle and score are the edge sample's.
	StageSweepEdge = "sweep.edge"
)

// TraceFunc receives every (angle, score) sample evaluated during skew
// estimation, tagged with the stage that produced it. It replaces inline
// debug output in the algorithm: wire it to a logger or a plot collector
// at the call site. A nil TraceFunc disables tracing.
type TraceFunc func(stage string, angleDegrees, score float64)

// Skew is the result of a skew measurement.
type Skew struct {
	// AngleDegrees is the rotation required to deskew the image,
	// clockwise positive. Zero when the measurement is untrusted.
	AngleDegrees float64 `json:"angle_degrees"`

	// Confidence is the ratio of the best to the worst score observed
	// during refinement, or 0 when the measurement is untrusted. Do not
	// use AngleDegrees when Confidence is below MinAllowedConfidence.
	Confidence float64 `json:"confidence"`

	// MaxScore is the alignment score at the final angle. It allows
	// evaluating the estimate independently of Confidence.
	MaxScore float64 `json:"max_score"`
}

// SearchParams carries the full parameter set of
// FindSkewSweepAndSearchScore. The zero value is not useful; populate
// every field except Trace and SweepCenter (both optional).
type SearchParams struct {
	// SweepReduction is the linear reduction factor of the sweep image:
	// 1, 2, 4 or 8.
	SweepReduction int

	// SearchReduction is the linear reduction factor of the binary
	// search image: 1, 2, 4 or 8, and at most SweepReduction.
	SearchReduction int

	// SweepCenter is the angle the sweep is centered on, in degrees.
	// Normally 0.
	SweepCenter float64

	// SweepRange is half the swept range, in degrees about SweepCenter.
	SweepRange float64

	// SweepDelta is the sweep step, in degrees.
	SweepDelta float64

	// MinSearchDelta is the binary search increment at which refinement
	// stops, in degrees.
	MinSearchDelta float64

	// Trace optionally observes every evaluated sample.
	Trace TraceFunc
}

// FindSkewSweepAndSearch estimates the deskew angle in two stages: a
// coarse sweep of [-sweepRange, +sweepRange] degrees with step sweepDelta
// on an image reduced by redSweep, then interval-halving binary search on
// an image reduced by redSearch (at most redSweep) until the increment
// falls below minSearchDelta.
//
// Returns ErrAllBackground on a degenerate image. Callers must check
// Skew.Confidence, not only the error, before trusting the angle.
func FindSkewSweepAndSearch(src *image.Gray, redSweep, redSearch int, sweepRange, sweepDelta, minSearchDelta float64) (*Skew, error) {
	return FindSkewSweepAndSearchScore(src, SearchParams{
		SweepReduction:  redSweep,
		SearchReduction: redSearch,
		SweepRange:      sweepRange,
		SweepDelta:      sweepDelta,
		MinSearchDelta:  minSearchDelta,
	})
}

// FindSkewSweepAndSearchScore is FindSkewSweepAndSearch with an explicit
// sweep center and sample tracing.
//
// The sweep finds the raw maximum-scoring angle as the search seed; no
// interpolation is applied, since the binary search supersedes it. If the
// sweep maximum lands at either end of the scanned range the true optimum
// may not be bracketed: the warning is signaled through p.Trace with
// StageSweepEdge, refinement is skipped and a zero-confidence Skew is
// returned without error.
//
// The binary search keeps a five-sample window at offsets {-2,-1,0,+1,+2}
// around the current center, at angular spacing delta. Each iteration
// scores the inner offsets, takes the maximum among {-1,0,+1} only (the
// peak is unimodal near the center; the outer two are interpolation
// support), re-centers the window on it, and halves delta, stopping when
// delta drops below p.MinSearchDelta.
//
// The confidence is the ratio of the running maximum score to the minimum
// over every sample evaluated during refinement; see Skew.Confidence for
// the conditions that force it to zero.
func FindSkewSweepAndSearchScore(src *image.Gray, p SearchParams) (*Skew, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	searchRanks, ok := binimg.ReductionRanks(p.SearchReduction)
	if !ok {
		return nil, ErrBadReduction
	}
	if _, ok := binimg.ReductionRanks(p.SweepReduction); !ok {
		return nil, ErrBadReduction
	}
	if p.SearchReduction > p.SweepReduction {
		return nil, ErrBadReduction
	}

	// Reduced image for the binary search, and a further reduction of
	// it for the sweep.
	searchImg := binimg.ReduceRankCascade(src, searchRanks...)
	if binimg.IsAllBackground(searchImg) {
		return nil, ErrAllBackground
	}
	ratioRanks, _ := binimg.SecondaryReductionRanks(p.SweepReduction / p.SearchReduction)
	sweepImg := binimg.ReduceRankCascade(searchImg, ratioRanks...)

	sweep, err := sweepScores(sweepImg, p.SweepCenter, p.SweepRange, p.SweepDelta, p.Trace)
	if err != nil {
		return nil, err
	}
	seed := maxSample(sweep)
	maxScore := sweep[seed].score

	// A maximum at the edge of the scan is unreliable: the true peak
	// may lie outside the swept range. Report it and bail out with
	// zero confidence rather than refining a possibly false optimum.
	if seed == 0 || seed == len(sweep)-1 {
		if p.Trace != nil {
			p.Trace(StageSweepEdge, sweep[seed].angle, maxScore)
		}
		return &Skew{}, nil
	}

	center := sweep[seed].angle
	scratch := image.NewGray(image.Rect(0, 0, searchImg.Bounds().Dx(), searchImg.Bounds().Dy()))
	window, samples, err := initSearchWindow(searchImg, scratch, center, p.SweepDelta, p.Trace)
	if err != nil {
		return nil, err
	}

	// Interval halving. Samples accumulate across iterations for the
	// confidence ratio; the sweep samples are not part of it.
	delta := 0.5 * p.SweepDelta
	for delta >= p.MinSearchDelta {
		var evaluated [2]sample
		window, center, evaluated, err = refineStep(searchImg, scratch, window, center, delta, p.Trace)
		if err != nil {
			return nil, err
		}
		samples = append(samples, evaluated[0], evaluated[1])
		maxScore = window[2]
		delta = 0.5 * delta
	}

	conf := confidence(samples, maxScore, center, p, searchImg.Bounds().Dx(), searchImg.Bounds().Dy())
	return &Skew{AngleDegrees: center, Confidence: conf, MaxScore: window[2]}, nil
}

// initSearchWindow scores the seed angle and its two sweep-step neighbors,
// placing them at window offsets 0, -2 and +2. The inner offsets are
// computed fresh on each refinement step.
func initSearchWindow(img, scratch *image.Gray, center, sweepDelta float64, trace TraceFunc) ([5]float64, []sample, error) {
	var window [5]float64

	angles := [3]float64{center, center - sweepDelta, center + sweepDelta}
	slots := [3]int{2, 0, 4}
	samples := make([]sample, 0, 16)
	for i, theta := range angles {
		binimg.VShearCorner(scratch, img, degToRad*theta)
		score, err := FindDifferentialSquareSum(scratch)
		if err != nil {
			return window, nil, err
		}
		if trace != nil {
			trace(StageSearch, theta, score)
		}
		window[slots[i]] = score
		samples = append(samples, sample{angle: theta, score: score})
	}
	return window, samples, nil
}

// refineStep performs one interval-halving step: scores the window's inner
// offsets at center-delta and center+delta, finds the maximum among the
// middle three slots,
// and rebuilds the window re-centered on it. Returns the new window, the
// new center angle and the two samples evaluated during the step.
func refineStep(img, scratch *image.Gray, window [5]float64, center, delta float64, trace TraceFunc) ([5]float64, float64, [2]sample, error) {
	var evaluated [2]sample

	for i, p := range [2]struct {
		slot  int
		theta float64
	}{{1, center - delta}, {3, center + delta}} {
		binimg.VShearCorner(scratch, img, degToRad*p.theta)
		score, err := FindDifferentialSquareSum(scratch)
		if err != nil {
			return window, center, evaluated, err
		}
		if trace != nil {
			trace(StageSearch, p.theta, score)
		}
		window[p.slot] = score
		evaluated[i] = sample{angle: p.theta, score: score}
	}

	// The maximum must come from the middle three slots; the outer two
	// exist only as neighbors for the next window.
	maxIndex := 1
	for i := 2; i <= 3; i++ {
		if window[i] > window[maxIndex] {
			maxIndex = i
		}
	}

	next := [5]float64{}
	next[0] = window[maxIndex-1]
	next[2] = window[maxIndex]
	next[4] = window[maxIndex+1]

	newCenter := center + delta*float64(maxIndex-2)
	return next, newCenter, evaluated, nil
}
