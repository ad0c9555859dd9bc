// Package binimg provides the bitonal raster primitives that the skew
// estimator is built on: rank-filtered reduction, vertical shear, rotation,
// row profiles, and binarization.
//
// # Image Representation
//
// Images are *image.Gray with black foreground and white background, the
// grayscale analog of a 1 bit/pixel scan. Foreground tests use a midpoint
// threshold (value < 128), so strictly bitonal input is not required by the
// primitives themselves; Binarize produces strictly bitonal output.
//
// # Coordinate System
//
// All operations use the standard image convention: origin at the top-left
// corner, X increasing rightward, Y increasing downward. Geometric
// operations take angles in radians; degree-to-radian conversion belongs to
// the caller.
//
// # Thread Safety
//
// All functions are stateless and never modify their source image (the
// explicit destination of VShearCorner excepted). Concurrent calls on
// independent images are safe.
package binimg
