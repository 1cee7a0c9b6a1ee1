package imaging

import (
	"image"
)

// DefaultEdgeSampleSize is the depth in pixels of each border band.
const DefaultEdgeSampleSize = 5

// edgeSampleSteps bounds the number of samples taken along each band.
const edgeSampleSteps = 50

// SampleEdges collects colors from the four border bands of img.
//
// The bands are, in order:
//  1. the top sampleSize rows, sampled along X
//  2. the bottom sampleSize rows, sampled along X
//  3. the left sampleSize columns, sampled along Y
//  4. the right sampleSize columns, sampled along Y
//
// Along a band the stride is max(1, dimension/50), so the sample count stays
// roughly constant regardless of image size. Bands overlap, so corner pixels
// are counted more than once.
func SampleEdges(img *image.NRGBA, sampleSize int) []RGBAColor {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 || sampleSize <= 0 {
		return nil
	}

	strideX := max(1, width/edgeSampleSteps)
	strideY := max(1, height/edgeSampleSteps)

	at := func(x, y int) RGBAColor {
		return FromNRGBA(img.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y))
	}

	var samples []RGBAColor
	for y := 0; y < min(sampleSize, height); y++ {
		for x := 0; x < width; x += strideX {
			samples = append(samples, at(x, y))
		}
	}
	for y := max(0, height-sampleSize); y < height; y++ {
		for x := 0; x < width; x += strideX {
			samples = append(samples, at(x, y))
		}
	}
	for x := 0; x < min(sampleSize, width); x++ {
		for y := 0; y < height; y += strideY {
			samples = append(samples, at(x, y))
		}
	}
	for x := max(0, width-sampleSize); x < width; x++ {
		for y := 0; y < height; y += strideY {
			samples = append(samples, at(x, y))
		}
	}

	return samples
}
