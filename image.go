package pix

import (
	"errors"

	"github.com/gogpu/pix/color"
)

// Construction errors for images built over caller-supplied buffers.
var (
	// ErrInvalidRect is returned when a rectangle is not well-formed.
	ErrInvalidRect = errors.New("pix: rectangle is not well-formed")

	// ErrInvalidStride is returned when stride is less than one row of pixels.
	ErrInvalidStride = errors.New("pix: stride too small for width")

	// ErrDataTooSmall is returned when the buffer cannot hold height*stride bytes.
	ErrDataTooSmall = errors.New("pix: data buffer too small")
)

// Config holds an image's color model and dimensions.
type Config struct {
	ColorModel    color.Model
	Width, Height int
}

// Image is a finite rectangular grid of color.Color values taken from a
// color model.
//
// Reads outside Bounds return the zero color and writes outside Bounds are
// dropped. Neither is an error.
type Image interface {
	// ColorModel returns the Image's color model.
	ColorModel() color.Model
	// Bounds returns the domain for which At can return non-zero color.
	Bounds() Rectangle
	// At returns the color of the pixel at (x, y).
	At(x, y int) color.Color
	// Set stores c at (x, y) after converting it to the image's model.
	Set(x, y int, c color.Color)
}

func checkLayout(r Rectangle, stride, bpp, n int) error {
	if r != r.Canon() {
		return ErrInvalidRect
	}
	if stride < r.Dx()*bpp {
		return ErrInvalidStride
	}
	if n < r.Dy()*stride {
		return ErrDataTooSmall
	}
	return nil
}
