package deskew

import (
	"errors"
	"math"
	"testing"
)

func TestFindSkewSweep_NilImage(t *testing.T) {
	_, err := FindSkewSweep(nil, 4, DefaultSweepRange, DefaultSweepDelta)
	if !errors.Is(err, ErrNilImage) {
		t.Fatalf("expected ErrNilImage, got %v", err)
	}
}

func TestFindSkewSweep_BadReduction(t *testing.T) {
	img := createTextlines(200, 200, 40, 20, 4, 6)
	for _, reduction := range []int{0, 3, 16, -1} {
		_, err := FindSkewSweep(img, reduction, DefaultSweepRange, DefaultSweepDelta)
		if !errors.Is(err, ErrBadReduction) {
			t.Errorf("reduction %d: expected ErrBadReduction, got %v", reduction, err)
		}
	}
}

func TestFindSkewSweep_AllBackground(t *testing.T) {
	img := createPage(500, 500)

	angle, err := FindSkewSweep(img, 4, DefaultSweepRange, DefaultSweepDelta)
	if !errors.Is(err, ErrAllBackground) {
		t.Fatalf("expected ErrAllBackground, got %v", err)
	}
	if angle != 0 {
		t.Errorf("angle should stay 0 on degenerate input, got %v", angle)
	}
}

func TestFindSkewSweep_RecoversAngle(t *testing.T) {
	straight := createTextlines(1000, 1000, 100, 80, 8, 11)
	skewed := skewPage(straight, -2.0)

	angle, err := FindSkewSweep(skewed, 4, 5.0, 1.0)
	if err != nil {
		t.Fatalf("FindSkewSweep failed: %v", err)
	}
	if math.Abs(angle-2.0) > 0.5 {
		t.Errorf("expected angle near 2.0, got %.3f", angle)
	}
}

func TestFindSkewSweep_InterpolatesBetweenSteps(t *testing.T) {
	// True angle halfway between sweep samples; the quadratic fit
	// through the peak and its neighbors should land well inside the
	// one-degree step.
	straight := createTextlines(1000, 1000, 100, 80, 8, 11)
	skewed := skewPage(straight, -1.5)

	angle, err := FindSkewSweep(skewed, 4, 5.0, 1.0)
	if err != nil {
		t.Fatalf("FindSkewSweep failed: %v", err)
	}
	if math.Abs(angle-1.5) > 0.4 {
		t.Errorf("expected interpolated angle near 1.5, got %.3f", angle)
	}
	t.Logf("interpolated angle: %.3f", angle)
}

func TestFindSkewSweepTrace_EdgeMaximumSignaled(t *testing.T) {
	// True angle beyond the swept range: the maximum lands on the
	// boundary sample, so no interpolation is possible and the raw
	// edge angle is returned, with the unreliable-result warning
	// reported through the trace.
	straight := createTextlines(1000, 1000, 100, 80, 8, 11)
	skewed := skewPage(straight, -4.9)

	edgeSignaled := false
	edgeAngle := math.NaN()
	angle, err := FindSkewSweepTrace(skewed, 4, 3.0, 1.0, func(stage string, a, score float64) {
		if stage == StageSweepEdge {
			edgeSignaled = true
			edgeAngle = a
		}
	})
	if err != nil {
		t.Fatalf("FindSkewSweepTrace failed: %v", err)
	}
	if !edgeSignaled {
		t.Fatal("expected the sweep-edge warning to be signaled")
	}
	if edgeAngle != 3.0 {
		t.Errorf("expected the warning at the +3 boundary, got %.1f", edgeAngle)
	}
	if angle != edgeAngle {
		t.Errorf("expected the raw edge angle %.1f, got %.3f", edgeAngle, angle)
	}
}

func TestFindSkewSweepTrace_InteriorMaximumNotSignaled(t *testing.T) {
	straight := createTextlines(1000, 1000, 100, 80, 8, 11)
	skewed := skewPage(straight, -2.0)

	sweepSamples := 0
	_, err := FindSkewSweepTrace(skewed, 4, 5.0, 1.0, func(stage string, a, score float64) {
		switch stage {
		case StageSweep:
			sweepSamples++
		case StageSweepEdge:
			t.Errorf("unexpected edge warning at %.1f", a)
		}
	})
	if err != nil {
		t.Fatalf("FindSkewSweepTrace failed: %v", err)
	}
	if sweepSamples != 11 {
		t.Errorf("expected 11 sweep samples, got %d", sweepSamples)
	}
}

func TestFitPeakAngle(t *testing.T) {
	// Exact parabola y = 10 - (x-1.25)^2 sampled at 0, 1, 2.
	peak := func(x float64) float64 { return 10 - (x-1.25)*(x-1.25) }
	got := fitPeakAngle(0, peak(0), 1, peak(1), 2, peak(2))
	if math.Abs(got-1.25) > 1e-9 {
		t.Errorf("expected vertex 1.25, got %v", got)
	}

	// Collinear points have no vertex; fall back to the middle sample.
	got = fitPeakAngle(0, 1, 1, 2, 2, 3)
	if got != 1 {
		t.Errorf("expected fallback to middle abscissa 1, got %v", got)
	}
}
