package imaging

import (
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
//
// RGBAColor is comparable and is used directly as a map key when counting
// exact color tuples.
type RGBAColor struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
	A uint8 // Alpha/opacity component (0-255)
}

// FromNRGBA converts a straight-alpha color to an RGBAColor.
func FromNRGBA(c color.NRGBA) RGBAColor {
	return RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Sum returns R+G+B. Brightness comparisons use the sum to stay in integers.
func (c RGBAColor) Sum() int {
	return int(c.R) + int(c.G) + int(c.B)
}

// Brightness returns the arithmetic mean of the color channels.
func (c RGBAColor) Brightness() float64 {
	return Brightness(c.R, c.G, c.B)
}

// Hex returns the color as "#rrggbb" (alpha excluded).
func (c RGBAColor) Hex() string {
	cf, _ := colorful.MakeColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return cf.Hex()
}

// Brightness returns (r+g+b)/3.
func Brightness(r, g, b uint8) float64 {
	return float64(int(r)+int(g)+int(b)) / 3
}

// WithinDistance reports whether the Euclidean distance between the RGB parts
// of a and b is at most threshold. Alpha is ignored.
//
// The comparison is exact: squared distance against squared threshold. A
// negative threshold never matches.
func WithinDistance(a, b RGBAColor, threshold int) bool {
	if threshold < 0 {
		return false
	}
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr+dg*dg+db*db <= threshold*threshold
}

// ColorFrequency is an exact color tuple and how many samples matched it.
type ColorFrequency struct {
	Color RGBAColor
	Count int
}

// TopColors ranks the exact RGBA tuples in samples by frequency and returns
// at most n of them, most frequent first.
//
// Colors with equal counts keep the order in which they first appear in
// samples. An empty sample set or n <= 0 yields an empty result.
func TopColors(samples []RGBAColor, n int) []ColorFrequency {
	if n <= 0 || len(samples) == 0 {
		return []ColorFrequency{}
	}

	index := make(map[RGBAColor]int)
	var ranked []ColorFrequency
	for _, c := range samples {
		if i, ok := index[c]; ok {
			ranked[i].Count++
			continue
		}
		index[c] = len(ranked)
		ranked = append(ranked, ColorFrequency{Color: c, Count: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
