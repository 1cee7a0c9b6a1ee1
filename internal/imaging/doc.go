// Package imaging provides the pixel-level operations behind the asset tools.
//
// This package implements loading, alpha normalisation, edge color sampling,
// brightness thresholding, background classification, and sprite strip
// splitting. All operations work with standard Go image.Image types and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Pixel Representation
//
// Every transform that edits pixels works on *image.NRGBA, i.e. 8-bit
// channels with straight (non-premultiplied) alpha. This matters for the
// background remover: a pixel made transparent keeps its color channels,
// which a premultiplied *image.RGBA cannot represent. Use EnsureAlpha to get
// an editable NRGBA copy of any decoded image.
//
// # Color Math
//
//   - Brightness: arithmetic mean of R, G and B.
//   - Color distance: Euclidean distance between RGB triples, alpha ignored.
//
// Comparisons against thresholds are done in integer arithmetic (sums and
// squared distances) so results are exact at the boundary.
//
// # Thread Safety
//
// Functions are stateless. Operations that mutate an image must not run
// concurrently on the same image.
//
// # Error Handling
//
// Functions return errors for:
//   - File I/O errors during image loading
//   - Undecodable image data
//   - Invalid split parameters (non-positive strip count, image narrower than
//     the strip count)
package imaging
