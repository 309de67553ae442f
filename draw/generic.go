package draw

import (
	"github.com/gogpu/pix"
	"github.com/gogpu/pix/color"
)

// drawGeneric composites through At and Set only. It serves destinations
// without a specialized loop (currently *pix.Alpha) and is the reference
// the buffer loops are checked against.
func drawGeneric(dst pix.Image, r pix.Rectangle, src pix.Image, sp pix.Point, mask pix.Image, mp pix.Point, op Op) {
	x0, x1, dx := r.Min.X, r.Max.X, 1
	y0, y1, dy := r.Min.Y, r.Max.Y, 1
	if processBackward(dst, r, src, sp) {
		x0, x1, dx = x1-1, x0-1, -1
		y0, y1, dy = y1-1, y0-1, -1
	}

	var out color.RGBA
	sy := sp.Y + y0 - r.Min.Y
	my := mp.Y + y0 - r.Min.Y
	for y := y0; y != y1; y, sy, my = y+dy, sy+dy, my+dy {
		sx := sp.X + x0 - r.Min.X
		mx := mp.X + x0 - r.Min.X
		for x := x0; x != x1; x, sx, mx = x+dx, sx+dx, mx+dx {
			ma := uint32(m)
			if mask != nil {
				_, _, _, ma = mask.At(mx, my).RGBA()
			}
			switch {
			case ma == 0:
				if op == Src {
					dst.Set(x, y, color.Transparent)
				}
			case ma == m && op == Src:
				dst.Set(x, y, src.At(sx, sy))
			default:
				sr, sg, sb, sa := src.At(sx, sy).RGBA()
				if op == Over {
					dr, dg, db, da := dst.At(x, y).RGBA()
					a := m - (sa * ma / m)
					out.R = uint8((dr*a + sr*ma) / m >> 8)
					out.G = uint8((dg*a + sg*ma) / m >> 8)
					out.B = uint8((db*a + sb*ma) / m >> 8)
					out.A = uint8((da*a + sa*ma) / m >> 8)
				} else {
					out.R = uint8(sr * ma / m >> 8)
					out.G = uint8(sg * ma / m >> 8)
					out.B = uint8(sb * ma / m >> 8)
					out.A = uint8(sa * ma / m >> 8)
				}
				dst.Set(x, y, out)
			}
		}
	}
}
