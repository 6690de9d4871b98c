// Package images transcodes decoded images into lossy webp buffers for
// on-the-fly response optimization. It is independent of the serving
// path and can be used from any pipeline that has an image.Image in hand.
package images

import (
	"bytes"
	"errors"
	"image"

	"github.com/chai2010/webp"
)

// ErrUnsupportedFormat is returned when the source image's pixel layout
// cannot be fed to the webp encoder. There is no fallback encoding.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// WebP owns an encoded webp buffer, immutable after construction.
type WebP struct {
	data []byte
}

// Data returns the encoded bytes.
func (w *WebP) Data() []byte {
	return w.data
}

// ToWebP encodes img with the fixed lossy profile at the given quality
// (0-100). The output is deterministic for a given image, quality and
// autofilter combination.
//
// The profile is lossy with libwebp's default alpha handling (alpha
// quality 50, alpha compression on, alpha filtering off) and filter
// settings. Autofilter is part of the call contract of the optimization
// pipeline; the binding in use drives libwebp's own filter selection, so
// the flag does not alter its output.
//
// Only gray and RGBA-family pixel layouts are encodable; anything else
// fails with ErrUnsupportedFormat, never an empty buffer.
func ToWebP(img image.Image, quality float32, autofilter bool) (*WebP, error) {
	switch img.(type) {
	case *image.Gray, *image.RGBA, *image.NRGBA:
	default:
		return nil, ErrUnsupportedFormat
	}

	var buf bytes.Buffer
	err := webp.Encode(&buf, img, &webp.Options{
		Lossless: false,
		Quality:  quality,
	})
	if err != nil {
		return nil, err
	}
	return &WebP{data: buf.Bytes()}, nil
}
