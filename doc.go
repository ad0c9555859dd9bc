// Package deskew estimates and corrects the rotational skew of scanned
// bitonal document images.
//
// Skew is determined from pixel profiles: the per-row foreground pixel
// counts of the image. Vertically shearing the image by a candidate angle
// makes textlines at that angle raster-aligned, so the profile can be
// computed along raster rows rather than along tilted lines. The score for
// a candidate angle is the sum over adjacent rows of the squared difference
// of their profile values, and the skew angle is the angle that maximizes
// this score. The differential signal is used (rather than the plain
// variance of row sums) because it cancels the background contribution of
// the total ink count and peaks sharply when baselines and x-height lines
// align with the raster.
//
// The search runs in two stages: a coarse sweep over evenly spaced angles
// on a strongly reduced image to find the approximate maximum, then an
// interval-halving binary search at higher resolution that refines the
// angle to 1/20 degree or better.
//
// # Entry Points
//
// From highest to lowest level:
//
//   - Deskew, FindSkewAndDeskew: find the skew angle and, if it is both
//     large enough and trustworthy, return a rotated copy of the image.
//   - FindSkew: find the angle and confidence with default parameters.
//   - FindSkewSweepAndSearch, FindSkewSweepAndSearchScore: full parameter
//     control over both search stages.
//   - FindSkewSweep: coarse sweep only, with quadratic interpolation of
//     the peak.
//   - FindDifferentialSquareSum: the raw alignment score of one image.
//
// # Image Representation
//
// All functions operate on *image.Gray with black (0) foreground and white
// (255) background, the grayscale analog of a 1 bit/pixel scan. The
// top-level Deskew rejects images that are not strictly bitonal; use
// binarization upstream for raw scanner output. All angles in the API are
// degrees, clockwise positive; the returned angle is the rotation required
// to deskew, not the skew itself.
//
// # Confidence
//
// Every angle estimate carries a confidence value: the ratio of the best
// to the worst score observed during refinement. The confidence is forced
// to zero when the score minimum is too small to be meaningful (nearly
// uniform profiles, e.g. solid-black images), when the best score is below
// an absolute floor, or when the estimate landed at the edge of the swept
// range and the true maximum may not have been bracketed. Callers must
// check the confidence, not only the error value, before trusting an
// angle. Deskew and FindSkewAndDeskew apply this gate internally and
// return an unmodified copy when the estimate is small or untrusted.
//
// # Concurrency
//
// The package holds no global state. Inputs are never modified, every call
// is independent, and concurrent calls on different images are safe.
package deskew
