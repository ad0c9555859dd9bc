package deskew

// confidence derives the trust value for a refined angle from the samples
// retained during binary search.
//
// The base value is the ratio of the running maximum score to the minimum
// over all samples. The ratio is meaningless when the minimum is tiny: a
// nearly all-black image gets a profile step from its sheared top and
// bottom edges at every nonzero angle, and that contribution vanishes at
// zero shear, leaving a minimum driven by the few stray white pixels. The
// signal scales with height*width², so the minimum is required to clear a
// threshold normalized by those dimensions.
//
// The confidence is also forced to zero when the final angle lies within
// one sweep step of either end of the swept range (the sweep may not have
// bracketed the true maximum) or when the maximum score is below an
// absolute floor.
func confidence(samples []sample, maxScore, finalAngle float64, p SearchParams, width, height int) float64 {
	if len(samples) == 0 {
		return 0
	}
	minScore := samples[0].score
	for _, s := range samples[1:] {
		if s.score < minScore {
			minScore = s.score
		}
	}

	conf := 0.0
	minThreshold := minScoreThresholdConstant * float64(width) * float64(width) * float64(height)
	if minScore > minThreshold {
		conf = maxScore / minScore
	}

	rangeLeft := p.SweepCenter - p.SweepRange
	if finalAngle > rangeLeft+2.0*p.SweepRange-p.SweepDelta ||
		finalAngle < rangeLeft+p.SweepDelta ||
		maxScore < minValidMaxScore {
		conf = 0
	}
	return conf
}
