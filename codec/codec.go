// Package codec moves images between encoded files, the standard library
// image types and pix buffers.
//
// Importing codec registers the PNG, JPEG and GIF decoders from the
// standard library and the BMP, TIFF and WebP decoders from
// golang.org/x/image, so Decode accepts any of those formats.
package codec

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/color"
)

// ErrEmptyImage is returned when a decoded bitmap has no pixels.
var ErrEmptyImage = errors.New("codec: empty image")

// Decode decodes an image in any registered format into a new RGBA image
// whose top-left pixel is at (0, 0).
//
// A bitmap with zero width or height yields an empty image together with
// ErrEmptyImage.
func Decode(r io.Reader) (*pix.RGBA, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}
	out := FromImage(img)
	if out.Rect.Empty() {
		return out, fmt.Errorf("codec: decode %s: %w", format, ErrEmptyImage)
	}
	return out, nil
}

// DecodeConfig returns the dimensions and color model of an encoded image
// without decoding its pixels, along with the format name.
func DecodeConfig(r io.Reader) (pix.Config, string, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return pix.Config{}, "", fmt.Errorf("codec: decode config: %w", err)
	}
	return pix.Config{
		ColorModel: color.ModelFunc(func(c color.Color) color.Color { return cfg.ColorModel.Convert(c) }),
		Width:      cfg.Width,
		Height:     cfg.Height,
	}, format, nil
}

// FromImage copies img into a new RGBA image. The result has the same size
// as img but its bounds start at (0, 0).
func FromImage(img image.Image) *pix.RGBA {
	b := img.Bounds()
	out := pix.NewRGBA(pix.Rect(0, 0, b.Dx(), b.Dy()))
	if out.Rect.Empty() {
		return out
	}

	if src, ok := img.(*image.RGBA); ok {
		// Both layouts hold premultiplied 8-bit RGBA.
		n := b.Dx() * 4
		for y := range b.Dy() {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Pix[y*out.Stride:y*out.Stride+n], src.Pix[i:i+n])
		}
		return out
	}

	pix.Logger().Debug("codec: per-pixel conversion", "type", fmt.Sprintf("%T", img),
		"width", b.Dx(), "height", b.Dy())
	for y := range b.Dy() {
		for x := range b.Dx() {
			out.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

// ToImage returns a standard library view of p. The two images share the
// same pixel buffer.
func ToImage(p *pix.RGBA) *image.RGBA {
	return &image.RGBA{
		Pix:    p.Pix,
		Stride: p.Stride,
		Rect:   image.Rect(p.Rect.Min.X, p.Rect.Min.Y, p.Rect.Max.X, p.Rect.Max.Y),
	}
}

// EncodePNG writes p to w in PNG format.
func EncodePNG(w io.Writer, p *pix.RGBA) error {
	if p.Rect.Empty() {
		return fmt.Errorf("codec: encode PNG: %w", ErrEmptyImage)
	}
	if err := png.Encode(w, ToImage(p)); err != nil {
		return fmt.Errorf("codec: encode PNG: %w", err)
	}
	return nil
}
