package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const ContentTypeWebP = "image/webp"

var ErrUnsupportedImage = errors.New("unsupported image")

// MaxUploadBytes caps what is read from an upload before decoding.
const MaxUploadBytes = 5 << 20

// NormalizeAvatar decodes a JPEG, PNG or WebP image, scales it so the
// longest side is at most maxPx, and re-encodes it as lossy WebP.
func NormalizeAvatar(r io.Reader, maxPx int) ([]byte, error) {
	src, _, err := image.Decode(io.LimitReader(r, MaxUploadBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	img := fit(src, maxPx)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func fit(src image.Image, maxPx int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxPx <= 0 || (w <= maxPx && h <= maxPx) {
		return src
	}

	if w >= h {
		h = h * maxPx / w
		w = maxPx
	} else {
		w = w * maxPx / h
		h = maxPx
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
