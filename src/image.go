// image.go
package adbot

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	_ "image/gif"
	_ "image/png"
)

// DecodeImage reads an uploaded screenshot in any of the accepted formats
// (JPEG, PNG, GIF). The result is format-agnostic; transmission always
// re-encodes.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// encodeJPEG re-encodes an in-memory raster to JPEG for transmission. Both
// engines send images as base64 JPEG, whatever the upload format was.
func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
