package draw

import (
	"bytes"
	"image"
	stdcolor "image/color"
	"math/rand/v2"
	"testing"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/color"
)

func stdRect(r pix.Rectangle) image.Rectangle {
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

func toStdRGBA(p *pix.RGBA) *image.RGBA {
	return &image.RGBA{Pix: append([]uint8(nil), p.Pix...), Stride: p.Stride, Rect: stdRect(p.Rect)}
}

func toStdAlpha(p *pix.Alpha) *image.Alpha {
	return &image.Alpha{Pix: append([]uint8(nil), p.Pix...), Stride: p.Stride, Rect: stdRect(p.Rect)}
}

// TestDrawMatchesXImage cross-checks the compositor against
// golang.org/x/image/draw, which uses the same premultiplied 16-bit
// arithmetic and must agree bit for bit.
func TestDrawMatchesXImage(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	b := pix.Rect(0, 0, 6, 6)
	r := pix.Rect(-1, 1, 5, 7)
	sp, mp := pix.Pt(1, 0), pix.Pt(0, 1)

	for i := 0; i < 8; i++ {
		for _, op := range []Op{Over, Src} {
			for _, srcKind := range []string{"rgba", "uniform", "alpha"} {
				for _, withMask := range []bool{false, true} {
					dst := randRGBA(rng, b)
					stdDst := toStdRGBA(dst)

					var (
						src    pix.Image
						stdSrc image.Image
					)
					switch srcKind {
					case "rgba":
						s := randRGBA(rng, b)
						src, stdSrc = s, toStdRGBA(s)
					case "uniform":
						a := uint8(rng.IntN(256))
						c := color.RGBA{uint8(rng.IntN(int(a) + 1)), uint8(rng.IntN(int(a) + 1)), uint8(rng.IntN(int(a) + 1)), a}
						src = pix.NewUniform(c)
						stdSrc = image.NewUniform(stdcolor.RGBA{c.R, c.G, c.B, c.A})
					case "alpha":
						s := randMask(rng, b)
						src, stdSrc = s, toStdAlpha(s)
					}

					var (
						mask    pix.Image
						stdMask image.Image
					)
					if withMask {
						mk := randMask(rng, b)
						mask, stdMask = mk, toStdAlpha(mk)
					}

					if err := DrawMask(dst, r, src, sp, mask, mp, op); err != nil {
						t.Fatalf("DrawMask: %v", err)
					}
					stdOp := xdraw.Over
					if op == Src {
						stdOp = xdraw.Src
					}
					xdraw.DrawMask(stdDst, stdRect(r), stdSrc, image.Pt(sp.X, sp.Y), stdMask, image.Pt(mp.X, mp.Y), stdOp)

					if !bytes.Equal(dst.Pix, stdDst.Pix) {
						t.Errorf("round %d %v src=%s mask=%v:\n got %v\nwant %v",
							i, op, srcKind, withMask, dst.Pix, stdDst.Pix)
					}
				}
			}
		}
	}
}

func TestDrawAlphaMatchesXImage(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 24))
	b := pix.Rect(0, 0, 5, 5)
	for _, op := range []Op{Over, Src} {
		dst := randMask(rng, b)
		src := randRGBA(rng, b)
		mask := randMask(rng, b)
		stdDst := toStdAlpha(dst)

		if err := DrawMask(dst, b, src, pix.ZP, mask, pix.ZP, op); err != nil {
			t.Fatalf("DrawMask: %v", err)
		}
		stdOp := xdraw.Over
		if op == Src {
			stdOp = xdraw.Src
		}
		xdraw.DrawMask(stdDst, stdRect(b), toStdRGBA(src), image.Point{}, toStdAlpha(mask), image.Point{}, stdOp)

		if !bytes.Equal(dst.Pix, stdDst.Pix) {
			t.Errorf("%v:\n got %v\nwant %v", op, dst.Pix, stdDst.Pix)
		}
	}
}
