package pix

import "github.com/gogpu/pix/color"

// Uniform is an infinite-sized Image of uniform color. It implements
// color.Color, color.Model and Image. Set is a no-op.
//
// Uniform represents solid fills and glyph tints without allocating a
// pixel buffer.
type Uniform struct {
	C color.Color
}

// NewUniform returns a Uniform image of color c.
func NewUniform(c color.Color) *Uniform {
	return &Uniform{c}
}

func (c *Uniform) RGBA() (r, g, b, a uint32) {
	return c.C.RGBA()
}

func (c *Uniform) ColorModel() color.Model {
	return c
}

// Convert ignores its argument and returns the uniform color.
func (c *Uniform) Convert(color.Color) color.Color {
	return c.C
}

// Bounds returns a rectangle large enough to cover any practical image.
func (c *Uniform) Bounds() Rectangle {
	return Rectangle{Point{-1e9, -1e9}, Point{1e9, 1e9}}
}

func (c *Uniform) At(x, y int) color.Color {
	return c.C
}

func (c *Uniform) Set(x, y int, _ color.Color) {}

// Opaque reports whether the uniform color is fully opaque.
func (c *Uniform) Opaque() bool {
	_, _, _, a := c.C.RGBA()
	return a == 0xffff
}

// Common uniform images.
var (
	Black       = NewUniform(color.Black)
	White       = NewUniform(color.White)
	Transparent = NewUniform(color.Transparent)
	Opaque      = NewUniform(color.Opaque)
)
