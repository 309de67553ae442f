// Package color implements the color model used by pix images.
//
// Every color reports alpha-premultiplied 16-bit-per-channel RGBA values.
// Four concrete representations are provided, together with a Model for
// each that canonicalizes arbitrary colors into that representation.
package color

// Color can convert itself to alpha-premultiplied 16-bits per channel RGBA.
// The conversion may be lossy.
type Color interface {
	// RGBA returns the alpha-premultiplied red, green, blue and alpha values
	// for the color. Each value ranges within [0, 0xffff], but is represented
	// by a uint32 so that multiplying by a blend factor up to 0xffff will not
	// overflow.
	RGBA() (r, g, b, a uint32)
}

// RGBA represents a traditional 32-bit alpha-premultiplied color, having 8
// bits for each of red, green, blue and alpha.
type RGBA struct {
	R, G, B, A uint8
}

// RGBA widens each channel by byte replication, so 0x80 becomes 0x8080.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8
	return r, g, b, a
}

// RGBA16 represents a 64-bit alpha-premultiplied color, having 16 bits for
// each of red, green, blue and alpha.
type RGBA16 struct {
	R, G, B, A uint16
}

func (c RGBA16) RGBA() (r, g, b, a uint32) {
	return uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A)
}

// Alpha represents an 8-bit alpha color. It reports its alpha for all four
// channels.
type Alpha struct {
	A uint8
}

func (c Alpha) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	return a, a, a, a
}

// Alpha16 represents a 16-bit alpha color.
type Alpha16 struct {
	A uint16
}

func (c Alpha16) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	return a, a, a, a
}

// Standard colors.
var (
	Black       = RGBA16{0, 0, 0, 0xffff}
	White       = RGBA16{0xffff, 0xffff, 0xffff, 0xffff}
	Transparent = Alpha16{0}
	Opaque      = Alpha16{0xffff}
)
