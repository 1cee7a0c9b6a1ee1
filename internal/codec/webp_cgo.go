//go:build cgo

package codec

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

func webpAvailable() error {
	return nil
}

// encodeWebP hands the image to libwebp as straight-alpha RGBA.
func encodeWebP(w io.Writer, img image.Image, opts WebPOptions) error {
	if _, ok := img.(*image.NRGBA); !ok {
		img = imaging.Clone(img)
	}

	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, opts.Quality)
	if err != nil {
		return err
	}
	options.Method = opts.Method

	return webp.Encode(w, img, options)
}
