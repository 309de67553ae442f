package pix

import (
	"fmt"

	"github.com/gogpu/pix/color"
)

// Alpha is an in-memory image whose At method returns color.Alpha values.
// It is typically used as a coverage mask.
type Alpha struct {
	// Pix holds the image's pixels, one byte each. The pixel at (x, y) is
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect Rectangle
}

// NewAlpha returns a new zero-filled Alpha image with the given bounds.
func NewAlpha(r Rectangle) *Alpha {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &Alpha{
		Pix:    make([]uint8, w*h),
		Stride: w,
		Rect:   r,
	}
}

// NewAlphaFromPix returns an Alpha image borrowing the caller's buffer.
func NewAlphaFromPix(pix []uint8, stride int, r Rectangle) (*Alpha, error) {
	if err := checkLayout(r, stride, 1, len(pix)); err != nil {
		return nil, fmt.Errorf("new alpha %v stride %d: %w", r, stride, err)
	}
	return &Alpha{Pix: pix, Stride: stride, Rect: r}, nil
}

func (p *Alpha) ColorModel() color.Model { return color.AlphaModel }

func (p *Alpha) Bounds() Rectangle { return p.Rect }

func (p *Alpha) At(x, y int) color.Color {
	return p.AlphaAt(x, y)
}

// AlphaAt returns the alpha at (x, y), or zero if (x, y) is out of bounds.
func (p *Alpha) AlphaAt(x, y int) color.Alpha {
	if !(Point{x, y}.In(p.Rect)) {
		return color.Alpha{}
	}
	return color.Alpha{A: p.Pix[p.PixOffset(x, y)]}
}

// PixOffset returns the index of the element of Pix that corresponds to the
// pixel at (x, y).
func (p *Alpha) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *Alpha) Set(x, y int, c color.Color) {
	if !(Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = color.AlphaModel.Convert(c).(color.Alpha).A
}

// SetAlpha stores c at (x, y) without model conversion.
func (p *Alpha) SetAlpha(x, y int, c color.Alpha) {
	if !(Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = c.A
}

// SubImage returns an image representing the portion of p visible through
// r. The returned image shares pixels with p. An empty intersection yields
// a new, empty image.
func (p *Alpha) SubImage(r Rectangle) Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &Alpha{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &Alpha{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}

// Opaque scans the image and reports whether every pixel is 0xff.
func (p *Alpha) Opaque() bool {
	if p.Rect.Empty() {
		return true
	}
	i0, i1 := 0, p.Rect.Dx()
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for i := i0; i < i1; i++ {
			if p.Pix[i] != 0xff {
				return false
			}
		}
		i0 += p.Stride
		i1 += p.Stride
	}
	return true
}
