//go:build !cgo

package codec

import (
	"fmt"
	"image"
	"io"
)

func webpAvailable() error {
	return fmt.Errorf("%w: binary built without cgo", ErrWebPUnavailable)
}

func encodeWebP(w io.Writer, img image.Image, opts WebPOptions) error {
	return webpAvailable()
}
