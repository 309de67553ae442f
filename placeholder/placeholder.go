// Package placeholder synthesizes stand-in thumbnails for images that
// could not be decoded.
//
// A placeholder is a solid background, an optional one-pixel frame and an
// optional single-line label set in a 7x13 bitmap face:
//
//	img := placeholder.New(pix.Rect(0, 0, 64, 64),
//		placeholder.WithBackground(color.Black),
//		placeholder.WithLabel("missing"),
//	)
package placeholder

import (
	"github.com/gogpu/pix"
	"github.com/gogpu/pix/draw"
)

// New returns an RGBA image covering r filled according to opts.
func New(r pix.Rectangle, opts ...Option) *pix.RGBA {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	img := pix.NewRGBA(r)
	if r.Empty() {
		return img
	}

	// Errors are impossible below: the destination is a *pix.RGBA and
	// the operators are fixed.
	_ = draw.Draw(img, r, pix.NewUniform(o.background), pix.ZP, draw.Src)

	if o.border != nil {
		frame := pix.NewUniform(o.border)
		for _, edge := range frameEdges(r) {
			_ = draw.Draw(img, edge, frame, pix.ZP, draw.Over)
		}
	}

	if o.label != "" {
		drawLabel(img, foldLabel(o.label), pix.NewUniform(o.foreground))
	}
	return img
}

// frameEdges returns the strips of r not covered by r.Inset(1). The strips
// do not overlap, so a translucent frame is blended once per pixel.
func frameEdges(r pix.Rectangle) []pix.Rectangle {
	in := r.Inset(1)
	if in.Empty() {
		return []pix.Rectangle{r}
	}
	return []pix.Rectangle{
		pix.Rect(r.Min.X, r.Min.Y, r.Max.X, in.Min.Y),
		pix.Rect(r.Min.X, in.Max.Y, r.Max.X, r.Max.Y),
		pix.Rect(r.Min.X, in.Min.Y, in.Min.X, in.Max.Y),
		pix.Rect(in.Max.X, in.Min.Y, r.Max.X, in.Max.Y),
	}
}

// drawLabel centres s in img, dropping trailing characters that do not
// fit the width.
func drawLabel(img *pix.RGBA, s string, fg *pix.Uniform) {
	cell := cellSize()
	b := img.Bounds()
	runes := []rune(s)
	if n := b.Dx() / cell.X; len(runes) > n {
		runes = runes[:n]
	}
	if len(runes) == 0 {
		return
	}

	dot := pix.Pt(
		b.Min.X+(b.Dx()-len(runes)*cell.X)/2,
		b.Min.Y+(b.Dy()-cell.Y)/2,
	)
	for _, r := range runes {
		mask := glyphMask(r)
		_ = draw.DrawMask(img, pix.Rectangle{Min: dot, Max: dot.Add(cell)}, fg, pix.ZP, mask, pix.ZP, draw.Over)
		dot.X += cell.X
	}
}
