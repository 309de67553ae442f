package pix

import (
	"fmt"

	"github.com/gogpu/pix/color"
)

// RGBA is an in-memory image whose At method returns color.RGBA values.
//
// Pix holds four bytes per pixel in R, G, B, A order. The bytes are the
// channels of a color.RGBA; widening to 16 bits happens in At and narrowing
// happens in Set.
type RGBA struct {
	// Pix holds the image's pixels. The pixel at (x, y) starts at
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*4].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect Rectangle
}

// NewRGBA returns a new zero-filled RGBA image with the given bounds.
func NewRGBA(r Rectangle) *RGBA {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &RGBA{
		Pix:    make([]uint8, 4*w*h),
		Stride: 4 * w,
		Rect:   r,
	}
}

// NewRGBAFromPix returns an RGBA image over the caller's buffer. No copy is
// made: the image borrows pix, and writes through either are visible to
// the other.
func NewRGBAFromPix(pix []uint8, stride int, r Rectangle) (*RGBA, error) {
	if err := checkLayout(r, stride, 4, len(pix)); err != nil {
		return nil, fmt.Errorf("new rgba %v stride %d: %w", r, stride, err)
	}
	return &RGBA{Pix: pix, Stride: stride, Rect: r}, nil
}

func (p *RGBA) ColorModel() color.Model { return color.RGBAModel }

func (p *RGBA) Bounds() Rectangle { return p.Rect }

func (p *RGBA) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// RGBAAt returns the color at (x, y), or the zero color if (x, y) is out
// of bounds.
func (p *RGBA) RGBAAt(x, y int) color.RGBA {
	if !(Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+4 : i+4]
	return color.RGBA{s[0], s[1], s[2], s[3]}
}

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y).
func (p *RGBA) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func (p *RGBA) Set(x, y int, c color.Color) {
	if !(Point{x, y}.In(p.Rect)) {
		return
	}
	p.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// SetRGBA stores c at (x, y) without model conversion.
func (p *RGBA) SetRGBA(x, y int, c color.RGBA) {
	if !(Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+4 : i+4]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
	s[3] = c.A
}

// SubImage returns an image representing the portion of p visible through
// r. The returned image shares pixels with p: writes through either are
// visible through the other. If r does not overlap p the result is a new,
// empty image that shares nothing with p.
func (p *RGBA) SubImage(r Rectangle) Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &RGBA{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &RGBA{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}

// Opaque scans the image and reports whether it is fully opaque.
func (p *RGBA) Opaque() bool {
	if p.Rect.Empty() {
		return true
	}
	i0, i1 := 3, p.Rect.Dx()*4
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for i := i0; i < i1; i += 4 {
			if p.Pix[i] != 0xff {
				return false
			}
		}
		i0 += p.Stride
		i1 += p.Stride
	}
	return true
}

// Packed returns a copy of the pixels with rows laid out back to back
// (stride 4*width), the layout texture uploads expect.
func (p *RGBA) Packed() []uint8 {
	if p.Rect.Empty() {
		return nil
	}
	n := p.Rect.Dx() * 4
	out := make([]uint8, n*p.Rect.Dy())
	for y, i := 0, 0; y < p.Rect.Dy(); y, i = y+1, i+p.Stride {
		copy(out[y*n:(y+1)*n], p.Pix[i:i+n])
	}
	return out
}
