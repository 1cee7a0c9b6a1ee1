package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load opens and decodes an image file.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF and WebP.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the image format
//     and color model (e.g., *image.RGBA, *image.NRGBA, *image.Paletted).
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The file handle is released before Load returns.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return img, nil
}

// ImageInfo contains metadata about a decoded image file.
type ImageInfo struct {
	Width  int
	Height int

	// HasAlpha is true when at least one pixel is not fully opaque.
	HasAlpha bool

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64
}

// LoadImageInfo loads an image and returns it together with its metadata.
func LoadImageInfo(path string) (image.Image, *ImageInfo, error) {
	img, err := Load(path)
	if err != nil {
		return nil, nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	bounds := img.Bounds()
	return img, &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		HasAlpha:      HasAlpha(img),
		FileSizeBytes: stat.Size(),
	}, nil
}

// HasAlpha reports whether any pixel of img is not fully opaque.
//
// PNG files without an alpha channel decode to opaque images, so this is
// false for them even when the Go type (e.g. *image.RGBA) has an alpha field.
func HasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return true
}

// EnsureAlpha returns an editable NRGBA copy of img with its origin at (0,0).
//
// Images without an alpha channel come back fully opaque. Images that already
// have alpha keep their per-pixel alpha values. The source is never modified.
func EnsureAlpha(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}
