package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Strip is one vertical slice of a sprite sheet.
type Strip struct {
	// Index is the 0-based position of the strip from the left.
	Index int

	// Left and Right are the source X bounds (Left inclusive, Right exclusive).
	Left  int
	Right int

	// Image is the cropped strip with its origin at (0,0).
	Image *image.NRGBA
}

// Width returns Right-Left.
func (s Strip) Width() int {
	return s.Right - s.Left
}

// CutPoints returns the n+1 X positions that divide width into n strips.
//
// Point i is i*width/n with integer division, so the first point is 0, the
// last is width, and strip widths differ by at most one pixel. For
// width=1024, n=5 the points are 0, 204, 409, 614, 819, 1024.
func CutPoints(width, n int) []int {
	points := make([]int, n+1)
	for i := 0; i <= n; i++ {
		points[i] = i * width / n
	}
	return points
}

// SplitStrips crops img into n full-height vertical strips.
//
// Returns an error if n is not positive or img is narrower than n pixels,
// since some strips would be empty.
func SplitStrips(img image.Image, n int) ([]Strip, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid strip count %d: must be positive", n)
	}

	bounds := img.Bounds()
	if bounds.Dx() < n {
		return nil, fmt.Errorf("image width %d is smaller than strip count %d", bounds.Dx(), n)
	}

	points := CutPoints(bounds.Dx(), n)
	strips := make([]Strip, 0, n)
	for i := 0; i < n; i++ {
		rect := image.Rect(bounds.Min.X+points[i], bounds.Min.Y, bounds.Min.X+points[i+1], bounds.Max.Y)
		strips = append(strips, Strip{
			Index: i,
			Left:  points[i],
			Right: points[i+1],
			Image: imaging.Crop(img, rect),
		})
	}

	return strips, nil
}
