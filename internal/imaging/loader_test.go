package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage writes a solid-color PNG into a temp dir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return path
}

func TestLoad(t *testing.T) {
	imgPath := createTestImage(t, 100, 80, color.RGBA{255, 0, 0, 255})

	img, err := Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x80", bounds.Dx(), bounds.Dy())
	}
}

func TestLoad_NonExistent(t *testing.T) {
	_, err := Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestLoad_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestLoadImageInfo(t *testing.T) {
	imgPath := createTestImage(t, 200, 150, color.RGBA{255, 128, 64, 255})

	img, info, err := LoadImageInfo(imgPath)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 150 {
		t.Errorf("image bounds: got %v", img.Bounds())
	}
	if info.Width != 200 {
		t.Errorf("Width: got %d, want 200", info.Width)
	}
	if info.Height != 150 {
		t.Errorf("Height: got %d, want 150", info.Height)
	}
	if info.HasAlpha {
		t.Error("HasAlpha: opaque PNG reported as having alpha")
	}
	if info.FileSizeBytes <= 0 {
		t.Error("FileSizeBytes should be positive")
	}
}

func TestLoadImageInfo_Transparent(t *testing.T) {
	imgPath := createTestImage(t, 10, 10, color.NRGBA{255, 0, 0, 128})

	_, info, err := LoadImageInfo(imgPath)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if !info.HasAlpha {
		t.Error("HasAlpha: translucent PNG reported as opaque")
	}
}

func TestLoadImageInfo_NonExistent(t *testing.T) {
	_, _, err := LoadImageInfo("/nonexistent/image.png")
	if err == nil {
		t.Error("LoadImageInfo should fail for non-existent file")
	}
}

func TestHasAlpha(t *testing.T) {
	rect := image.Rect(0, 0, 2, 2)

	opaqueRGBA := image.NewRGBA(rect)
	for i := 3; i < len(opaqueRGBA.Pix); i += 4 {
		opaqueRGBA.Pix[i] = 255
	}

	transparentPalette := image.NewPaletted(rect, color.Palette{color.Black, color.Transparent})
	transparentPalette.SetColorIndex(1, 1, 1)

	tests := []struct {
		name string
		img  image.Image
		want bool
	}{
		{"zero rgba", image.NewRGBA(rect), true},
		{"opaque rgba", opaqueRGBA, false},
		{"zero nrgba", image.NewNRGBA(rect), true},
		{"gray", image.NewGray(rect), false},
		{"gray16", image.NewGray16(rect), false},
		{"ycbcr", image.NewYCbCr(rect, image.YCbCrSubsampleRatio444), false},
		{"opaque palette", image.NewPaletted(rect, color.Palette{color.Black, color.White}), false},
		{"transparent palette entry in use", transparentPalette, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAlpha(tt.img); got != tt.want {
				t.Errorf("HasAlpha: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnsureAlpha_Opaque(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 30, 20))
	for i := range src.Pix {
		src.Pix[i] = 128
	}

	dst := EnsureAlpha(src)

	if dst.Bounds().Dx() != 30 || dst.Bounds().Dy() != 20 {
		t.Fatalf("dimensions: got %dx%d, want 30x20", dst.Bounds().Dx(), dst.Bounds().Dy())
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			c := dst.NRGBAAt(x, y)
			if c.A != 255 {
				t.Fatalf("pixel (%d,%d) alpha: got %d, want 255", x, y, c.A)
			}
			if c.R != 128 || c.G != 128 || c.B != 128 {
				t.Fatalf("pixel (%d,%d): got %v, want gray 128", x, y, c)
			}
		}
	}
}

func TestEnsureAlpha_KeepsAlphaAndColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 0})
	src.SetNRGBA(1, 0, color.NRGBA{40, 50, 60, 128})

	dst := EnsureAlpha(src)

	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{10, 20, 30, 0}) {
		t.Errorf("pixel 0: got %v, want {10 20 30 0}", got)
	}
	if got := dst.NRGBAAt(1, 0); got != (color.NRGBA{40, 50, 60, 128}) {
		t.Errorf("pixel 1: got %v, want {40 50 60 128}", got)
	}

	// The copy must not alias the source
	dst.SetNRGBA(0, 0, color.NRGBA{1, 1, 1, 1})
	if src.NRGBAAt(0, 0) == dst.NRGBAAt(0, 0) {
		t.Error("EnsureAlpha returned an image sharing pixels with the source")
	}
}

func TestEnsureAlpha_NonZeroOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 20, 15))
	dst := EnsureAlpha(src)

	if dst.Bounds().Min != (image.Point{}) {
		t.Errorf("origin: got %v, want (0,0)", dst.Bounds().Min)
	}
	if dst.Bounds().Dx() != 10 || dst.Bounds().Dy() != 5 {
		t.Errorf("dimensions: got %dx%d, want 10x5", dst.Bounds().Dx(), dst.Bounds().Dy())
	}
}
