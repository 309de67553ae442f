package placeholder

import (
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/color"
	"github.com/gogpu/pix/internal/cache"
)

var face font.Face = basicfont.Face7x13

// glyphs holds rendered cells keyed by rune. The face covers Latin-1, so
// the working set is small.
var glyphs = cache.New[rune, *pix.Alpha](128)

// cellSize returns the width and height of one character cell.
func cellSize() pix.Point {
	adv, _ := face.GlyphAdvance('M')
	return pix.Pt(adv.Ceil(), face.Metrics().Height.Ceil())
}

// glyphMask returns the coverage mask of r over a full cell with its
// origin at (0, 0). Masks are shared and must not be modified.
func glyphMask(r rune) *pix.Alpha {
	return glyphs.GetOrCreate(r, func() *pix.Alpha {
		return renderGlyph(r)
	})
}

func renderGlyph(r rune) *pix.Alpha {
	size := cellSize()
	cell := pix.NewAlpha(pix.Rect(0, 0, size.X, size.Y))

	dot := fixed.P(0, face.Metrics().Ascent.Ceil())
	dr, mask, mp, _, ok := face.Glyph(dot, r)
	if !ok {
		pix.Logger().Debug("placeholder: no glyph", "rune", string(r))
		return cell
	}
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
			cell.SetAlpha(x, y, color.Alpha{A: uint8(a >> 8)})
		}
	}
	return cell
}

// foldLabel reduces s to printable ASCII: accents are stripped from
// letters and anything else outside the range becomes '?'.
func foldLabel(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			if r < 0x20 || r > 0x7e {
				return '?'
			}
			return r
		}),
		norm.NFC,
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		pix.Logger().Debug("placeholder: label folding failed", "label", s, "err", err)
		return ""
	}
	return out
}
