package draw

import (
	"github.com/gogpu/pix"
	"github.com/gogpu/pix/color"
)

// drawRGBA picks a specialized loop for dst, falling back to
// drawRGBAGeneric. r is already clipped and non-empty.
func drawRGBA(dst *pix.RGBA, r pix.Rectangle, src pix.Image, sp pix.Point, mask pix.Image, mp pix.Point, op Op) {
	switch op {
	case Over:
		if mask == nil {
			switch kindOf(src) {
			case kindUniform:
				drawFillOver(dst, r, src.(*pix.Uniform))
				return
			case kindRGBA:
				drawCopyOver(dst, r, src.(*pix.RGBA), sp)
				return
			case kindAlpha, kindOther:
			}
		} else if kindOf(mask) == kindAlpha && kindOf(src) == kindUniform {
			drawGlyphOver(dst, r, src.(*pix.Uniform), mask.(*pix.Alpha), mp)
			return
		}
	case Src:
		if mask == nil {
			switch kindOf(src) {
			case kindUniform:
				drawFillSrc(dst, r, src.(*pix.Uniform))
				return
			case kindRGBA:
				drawCopySrc(dst, r, src.(*pix.RGBA), sp)
				return
			case kindAlpha, kindOther:
			}
		}
	}
	drawRGBAGeneric(dst, r, src, sp, mask, mp, op)
}

func drawFillOver(dst *pix.RGBA, r pix.Rectangle, src *pix.Uniform) {
	sr, sg, sb, sa := src.RGBA()
	// a carries the 0x101 that widens the 8-bit destination channels.
	a := (m - sa) * 0x101
	i0 := dst.PixOffset(r.Min.X, r.Min.Y)
	i1 := i0 + r.Dx()*4
	for y := r.Min.Y; y != r.Max.Y; y++ {
		for i := i0; i < i1; i += 4 {
			d := dst.Pix[i : i+4 : i+4]
			dr := uint32(d[0])
			dg := uint32(d[1])
			db := uint32(d[2])
			da := uint32(d[3])

			d[0] = uint8((dr*a/m + sr) >> 8)
			d[1] = uint8((dg*a/m + sg) >> 8)
			d[2] = uint8((db*a/m + sb) >> 8)
			d[3] = uint8((da*a/m + sa) >> 8)
		}
		i0 += dst.Stride
		i1 += dst.Stride
	}
}

func drawFillSrc(dst *pix.RGBA, r pix.Rectangle, src *pix.Uniform) {
	sr, sg, sb, sa := src.RGBA()
	c := [4]uint8{uint8(sr >> 8), uint8(sg >> 8), uint8(sb >> 8), uint8(sa >> 8)}
	i0 := dst.PixOffset(r.Min.X, r.Min.Y)
	i1 := i0 + r.Dx()*4
	for y := r.Min.Y; y != r.Max.Y; y++ {
		for i := i0; i < i1; i += 4 {
			copy(dst.Pix[i:i+4:i+4], c[:])
		}
		i0 += dst.Stride
		i1 += dst.Stride
	}
}

func drawCopyOver(dst *pix.RGBA, r pix.Rectangle, src *pix.RGBA, sp pix.Point) {
	dx, dy := r.Dx(), r.Dy()
	d0 := dst.PixOffset(r.Min.X, r.Min.Y)
	s0 := src.PixOffset(sp.X, sp.Y)
	var (
		ddelta, sdelta int
		i0, i1, idelta int
	)
	if !processBackward(dst, r, src, sp) {
		ddelta = dst.Stride
		sdelta = src.Stride
		i0, i1, idelta = 0, dx*4, +4
	} else {
		// Source rows start above (or level with and left of) the
		// destination in the shared buffer: go bottom-up, right-to-left.
		d0 += (dy - 1) * dst.Stride
		s0 += (dy - 1) * src.Stride
		ddelta = -dst.Stride
		sdelta = -src.Stride
		i0, i1, idelta = (dx-1)*4, -4, -4
	}
	for ; dy > 0; dy-- {
		dpix := dst.Pix[d0:]
		spix := src.Pix[s0:]
		for i := i0; i != i1; i += idelta {
			s := spix[i : i+4 : i+4]
			sr := uint32(s[0]) * 0x101
			sg := uint32(s[1]) * 0x101
			sb := uint32(s[2]) * 0x101
			sa := uint32(s[3]) * 0x101

			d := dpix[i : i+4 : i+4]
			dr := uint32(d[0])
			dg := uint32(d[1])
			db := uint32(d[2])
			da := uint32(d[3])

			a := (m - sa) * 0x101

			d[0] = uint8((dr*a/m + sr) >> 8)
			d[1] = uint8((dg*a/m + sg) >> 8)
			d[2] = uint8((db*a/m + sb) >> 8)
			d[3] = uint8((da*a/m + sa) >> 8)
		}
		d0 += ddelta
		s0 += sdelta
	}
}

func drawCopySrc(dst *pix.RGBA, r pix.Rectangle, src *pix.RGBA, sp pix.Point) {
	n, dy := 4*r.Dx(), r.Dy()
	d0 := dst.PixOffset(r.Min.X, r.Min.Y)
	s0 := src.PixOffset(sp.X, sp.Y)
	var ddelta, sdelta int
	if !processBackward(dst, r, src, sp) {
		ddelta = dst.Stride
		sdelta = src.Stride
	} else {
		d0 += (dy - 1) * dst.Stride
		s0 += (dy - 1) * src.Stride
		ddelta = -dst.Stride
		sdelta = -src.Stride
	}
	// copy handles overlap within a row.
	for ; dy > 0; dy-- {
		copy(dst.Pix[d0:d0+n], src.Pix[s0:s0+n])
		d0 += ddelta
		s0 += sdelta
	}
}

func drawGlyphOver(dst *pix.RGBA, r pix.Rectangle, src *pix.Uniform, mask *pix.Alpha, mp pix.Point) {
	i0 := dst.PixOffset(r.Min.X, r.Min.Y)
	i1 := i0 + r.Dx()*4
	mi0 := mask.PixOffset(mp.X, mp.Y)
	sr, sg, sb, sa := src.RGBA()
	for y := r.Min.Y; y != r.Max.Y; y++ {
		for i, mi := i0, mi0; i < i1; i, mi = i+4, mi+1 {
			ma := uint32(mask.Pix[mi])
			if ma == 0 {
				continue
			}
			ma |= ma << 8

			d := dst.Pix[i : i+4 : i+4]
			dr := uint32(d[0])
			dg := uint32(d[1])
			db := uint32(d[2])
			da := uint32(d[3])

			a := (m - (sa * ma / m)) * 0x101

			d[0] = uint8((dr*a + sr*ma) / m >> 8)
			d[1] = uint8((dg*a + sg*ma) / m >> 8)
			d[2] = uint8((db*a + sb*ma) / m >> 8)
			d[3] = uint8((da*a + sa*ma) / m >> 8)
		}
		i0 += dst.Stride
		i1 += dst.Stride
		mi0 += mask.Stride
	}
}

// drawRGBAGeneric is the reference per-pixel path for an RGBA destination.
// Source and mask are read through At, so any Image works.
func drawRGBAGeneric(dst *pix.RGBA, r pix.Rectangle, src pix.Image, sp pix.Point, mask pix.Image, mp pix.Point, op Op) {
	x0, x1, dx := r.Min.X, r.Max.X, 1
	y0, y1, dy := r.Min.Y, r.Max.Y, 1
	if processBackward(dst, r, src, sp) {
		x0, x1, dx = x1-1, x0-1, -1
		y0, y1, dy = y1-1, y0-1, -1
	}

	sy := sp.Y + y0 - r.Min.Y
	my := mp.Y + y0 - r.Min.Y
	sx0 := sp.X + x0 - r.Min.X
	mx0 := mp.X + x0 - r.Min.X
	sx1 := sx0 + (x1 - x0)
	i0 := dst.PixOffset(x0, y0)
	di := dx * 4
	for y := y0; y != y1; y, sy, my = y+dy, sy+dy, my+dy {
		for i, sx, mx := i0, sx0, mx0; sx != sx1; i, sx, mx = i+di, sx+dx, mx+dx {
			ma := uint32(m)
			if mask != nil {
				_, _, _, ma = mask.At(mx, my).RGBA()
			}
			d := dst.Pix[i : i+4 : i+4]
			switch {
			case ma == 0:
				if op == Src {
					d[0], d[1], d[2], d[3] = 0, 0, 0, 0
				}
			case ma == m && op == Src:
				c := color.RGBAModel.Convert(src.At(sx, sy)).(color.RGBA)
				d[0], d[1], d[2], d[3] = c.R, c.G, c.B, c.A
			default:
				sr, sg, sb, sa := src.At(sx, sy).RGBA()
				if op == Over {
					dr := uint32(d[0])
					dg := uint32(d[1])
					db := uint32(d[2])
					da := uint32(d[3])

					// d holds 8-bit channels; scaling a by 0x101 widens
					// them to 16 bits inside the same multiply.
					a := (m - (sa * ma / m)) * 0x101

					d[0] = uint8((dr*a + sr*ma) / m >> 8)
					d[1] = uint8((dg*a + sg*ma) / m >> 8)
					d[2] = uint8((db*a + sb*ma) / m >> 8)
					d[3] = uint8((da*a + sa*ma) / m >> 8)
				} else {
					d[0] = uint8(sr * ma / m >> 8)
					d[1] = uint8(sg * ma / m >> 8)
					d[2] = uint8(sb * ma / m >> 8)
					d[3] = uint8(sa * ma / m >> 8)
				}
			}
		}
		i0 += dy * dst.Stride
	}
}
