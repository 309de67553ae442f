package draw

import "github.com/gogpu/pix"

// kind enumerates the image variants the compositor specializes on.
// Dispatch switches list every kind; kindOther is the fallback arm for
// Image implementations defined outside pix.
type kind uint8

const (
	kindOther kind = iota
	kindRGBA
	kindAlpha
	kindUniform
)

func kindOf(img pix.Image) kind {
	switch img.(type) {
	case *pix.RGBA:
		return kindRGBA
	case *pix.Alpha:
		return kindAlpha
	case *pix.Uniform:
		return kindUniform
	default:
		return kindOther
	}
}

// pixOf returns the backing buffer of a buffered image, or nil.
func pixOf(img pix.Image) []uint8 {
	switch kindOf(img) {
	case kindRGBA:
		return img.(*pix.RGBA).Pix
	case kindAlpha:
		return img.(*pix.Alpha).Pix
	case kindUniform, kindOther:
	}
	return nil
}

// sameBuffer reports whether a and b are backed by the same pixel buffer.
// A SubImage view slices its parent's Pix from an offset to the end, so a
// parent and all of its views share the last element of the backing array.
func sameBuffer(a, b pix.Image) bool {
	pa, pb := pixOf(a), pixOf(b)
	if cap(pa) == 0 || cap(pb) == 0 {
		return false
	}
	pa, pb = pa[:cap(pa)], pb[:cap(pb)]
	return &pa[len(pa)-1] == &pb[len(pb)-1]
}
