package deskew

import "errors"

// Sentinel errors returned by the estimation functions. Wrap-aware callers
// should match them with errors.Is.
var (
	// ErrNilImage indicates a nil source image.
	ErrNilImage = errors.New("deskew: image not defined")

	// ErrNotBinary indicates an image whose pixels are not all fully
	// black or fully white. Only the top-level entry points check this.
	ErrNotBinary = errors.New("deskew: image not bitonal")

	// ErrBadReduction indicates a reduction factor outside the allowed
	// set for the operation.
	ErrBadReduction = errors.New("deskew: invalid reduction factor")

	// ErrAllBackground indicates a degenerate image with no foreground
	// pixels at the scoring resolution; no angle can be measured.
	ErrAllBackground = errors.New("deskew: image has no foreground pixels")
)
