package color

import (
	"errors"
	"fmt"
)

// ErrInvalidHex is returned by Hex for malformed color strings.
var ErrInvalidHex = errors.New("color: invalid hex color")

// Hex parses a hex color string into a premultiplied RGBA.
// Supported forms are "RGB", "RGBA", "RRGGBB" and "RRGGBBAA", with an
// optional leading '#'. The parsed channels are straight (non-premultiplied)
// and are premultiplied by the parsed alpha.
func Hex(s string) (RGBA, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint32
	v[3] = 0xff
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			n, ok := parseHex(hex[i : i+1])
			if !ok {
				return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			v[i] = n * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			n, ok := parseHex(hex[i : i+2])
			if !ok {
				return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			v[i/2] = n
		}
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	a := v[3]
	return RGBA{
		R: uint8((v[0]*a + 127) / 255),
		G: uint8((v[1]*a + 127) / 255),
		B: uint8((v[2]*a + 127) / 255),
		A: uint8(a),
	}, nil
}

func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}
