package codec

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/anthonynsimon/bild/imgio"
)

// ErrWebPUnavailable is returned when the binary was built without a WebP encoder.
var ErrWebPUnavailable = errors.New("webp encoder not available")

// InstallHint tells the user how to get a working WebP encoder.
const InstallHint = `Error: WebP encoder (libwebp) not found.
Please install libwebp and rebuild with CGO_ENABLED=1:
  Ubuntu/Debian: sudo apt-get install libwebp-dev
  macOS:         brew install webp
WebP 인코더를 찾을 수 없습니다. libwebp를 설치한 뒤 CGO_ENABLED=1 로 다시 빌드하세요.`

// WebPOptions controls lossy WebP encoding.
type WebPOptions struct {
	// Quality is the lossy quality factor (0-100).
	Quality float32

	// Method is the compression effort (0 = fastest, 6 = slowest/best).
	Method int
}

// DefaultWebPOptions returns quality 80 at the best compression effort.
func DefaultWebPOptions() WebPOptions {
	return WebPOptions{Quality: 80, Method: 6}
}

func (o WebPOptions) validate() error {
	if o.Quality < 0 || o.Quality > 100 {
		return fmt.Errorf("invalid webp quality %v: must be 0-100", o.Quality)
	}
	if o.Method < 0 || o.Method > 6 {
		return fmt.Errorf("invalid webp method %d: must be 0-6", o.Method)
	}
	return nil
}

// Available reports whether WebP encoding works in this build.
// It returns nil or an error wrapping ErrWebPUnavailable.
func Available() error {
	return webpAvailable()
}

// EncodeWebP writes img to w as lossy WebP with alpha.
func EncodeWebP(w io.Writer, img image.Image, opts WebPOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	return encodeWebP(w, img, opts)
}

// SaveWebP encodes img to path, replacing any existing file, and returns the
// size of the written file in bytes.
//
// On an encode error the file may be left partially written.
func SaveWebP(path string, img image.Image, opts WebPOptions) (int64, error) {
	if err := Available(); err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output: %w", err)
	}

	if err := EncodeWebP(f, img, opts); err != nil {
		f.Close()
		return 0, fmt.Errorf("failed to encode webp: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close output: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat output: %w", err)
	}
	return stat.Size(), nil
}

// SavePNG encodes img to path as PNG, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save png: %w", err)
	}
	return nil
}
