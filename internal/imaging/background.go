package imaging

import (
	"image"
)

// BackgroundOptions tunes the edge-sampled background classifier.
type BackgroundOptions struct {
	// Threshold is the maximum RGB distance to a candidate color for a pixel
	// to count as background. Typical value: 40.
	Threshold int

	// SampleSize is the depth of the border bands sampled for candidates.
	SampleSize int

	// Candidates is how many of the most frequent edge colors are kept.
	Candidates int

	// Compared is how many of the kept candidates pixels are matched against,
	// and how many feed the average edge brightness.
	Compared int

	// LightCutoff: pixels brighter than this are background.
	LightCutoff int

	// DarkEdgeCutoff: below this average candidate brightness the background
	// is treated as dark.
	DarkEdgeCutoff int

	// DarkPixelCutoff: on a dark background, pixels darker than this are
	// background.
	DarkPixelCutoff int
}

// DefaultBackgroundOptions returns the classifier settings used by the
// background remover.
func DefaultBackgroundOptions() BackgroundOptions {
	return BackgroundOptions{
		Threshold:       40,
		SampleSize:      DefaultEdgeSampleSize,
		Candidates:      5,
		Compared:        3,
		LightCutoff:     220,
		DarkEdgeCutoff:  100,
		DarkPixelCutoff: 60,
	}
}

// BackgroundProfile describes what the edges of an image say about its background.
type BackgroundProfile struct {
	// Samples is the number of edge pixels inspected.
	Samples int

	// Candidates are the most frequent exact edge colors, most frequent first.
	Candidates []ColorFrequency

	// AverageEdgeBrightness is the mean brightness of the compared candidates.
	// Zero when there are no candidates.
	AverageEdgeBrightness float64

	// DarkBackground is true when AverageEdgeBrightness < DarkEdgeCutoff and
	// there is at least one candidate.
	DarkBackground bool
}

// DetectBackground samples the borders of img and ranks candidate background colors.
func DetectBackground(img *image.NRGBA, opts BackgroundOptions) *BackgroundProfile {
	samples := SampleEdges(img, opts.SampleSize)
	candidates := TopColors(samples, opts.Candidates)

	profile := &BackgroundProfile{
		Samples:    len(samples),
		Candidates: candidates,
	}

	compared := compareSet(candidates, opts.Compared)
	if len(compared) > 0 {
		sum := 0
		brightness := 0.0
		for _, c := range compared {
			sum += c.Sum()
			brightness += c.Brightness()
		}
		profile.AverageEdgeBrightness = brightness / float64(len(compared))
		profile.DarkBackground = sum < opts.DarkEdgeCutoff*3*len(compared)
	}

	return profile
}

// RemovalResult reports what RemoveBackground did to an image.
type RemovalResult struct {
	Profile *BackgroundProfile

	// Cleared is the number of pixels classified as background.
	Cleared int

	// Total is the number of pixels in the image.
	Total int
}

// RemoveBackground makes the background of img transparent, in place.
//
// # Algorithm
//
//  1. Edge sampling and candidate ranking (see DetectBackground).
//  2. A pixel is background if ANY of:
//     - its RGB distance to one of the first Compared candidates is <= Threshold
//     - its brightness is above LightCutoff
//     - the background is dark and the pixel brightness is below DarkPixelCutoff
//  3. Background pixels get alpha 0 with their color channels kept. Other
//     pixels are not modified.
//
// The rules are ORed, so light or dark foreground detail can be cleared along
// with the background.
func RemoveBackground(img *image.NRGBA, opts BackgroundOptions) *RemovalResult {
	profile := DetectBackground(img, opts)
	compared := compareSet(profile.Candidates, opts.Compared)

	// Brightness cutoffs expressed as channel sums.
	lightSum := opts.LightCutoff * 3
	darkSum := opts.DarkPixelCutoff * 3

	bounds := img.Bounds()
	width := bounds.Dx()
	cleared := 0

	for y := 0; y < bounds.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for i := 0; i < len(row); i += 4 {
			px := RGBAColor{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
			sum := px.Sum()

			background := sum > lightSum || (profile.DarkBackground && sum < darkSum)
			for _, c := range compared {
				if background {
					break
				}
				background = WithinDistance(px, c, opts.Threshold)
			}

			if background {
				row[i+3] = 0
				cleared++
			}
		}
	}

	return &RemovalResult{
		Profile: profile,
		Cleared: cleared,
		Total:   width * bounds.Dy(),
	}
}

func compareSet(candidates []ColorFrequency, n int) []RGBAColor {
	n = min(n, len(candidates))
	out := make([]RGBAColor, 0, max(n, 0))
	for _, c := range candidates[:max(n, 0)] {
		out = append(out, c.Color)
	}
	return out
}
