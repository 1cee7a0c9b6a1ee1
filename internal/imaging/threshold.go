package imaging

import (
	"image"
)

// DefaultBrightnessThreshold is the channel cutoff used by the transparency tool.
const DefaultBrightnessThreshold = 240

// ApplyBrightnessThreshold clears light pixels in place.
//
// A pixel whose R, G and B are all strictly greater than threshold becomes
// (255,255,255,0). Every other pixel, alpha included, is left untouched.
// Returns the number of pixels that matched.
//
// Applying the same threshold twice is a no-op the second time: a cleared
// pixel still matches and is rewritten with the same value.
func ApplyBrightnessThreshold(img *image.NRGBA, threshold int) int {
	bounds := img.Bounds()
	width := bounds.Dx()
	matched := 0

	for y := 0; y < bounds.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for i := 0; i < len(row); i += 4 {
			if int(row[i]) > threshold && int(row[i+1]) > threshold && int(row[i+2]) > threshold {
				row[i], row[i+1], row[i+2], row[i+3] = 255, 255, 255, 0
				matched++
			}
		}
	}

	return matched
}
