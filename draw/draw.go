// Package draw provides Porter-Duff image composition.
//
// Draw and DrawMask composite a source image into a destination image over
// a clipped rectangle. Common combinations of image types take specialized
// loops that work directly on the pixel buffers; every other combination
// takes a per-pixel path. Both produce bit-identical output.
package draw

import (
	"errors"
	"fmt"

	"github.com/gogpu/pix"
)

// m is the maximum color value returned by color.Color.RGBA.
const m = 1<<16 - 1

// Errors returned by Draw and DrawMask.
var (
	// ErrUnsupportedDestination is returned when the destination image has
	// no writable channel layout that the compositor knows about.
	ErrUnsupportedDestination = errors.New("draw: unsupported destination image")

	// ErrUnknownOp is returned for an Op other than Over or Src.
	ErrUnknownOp = errors.New("draw: unknown op")
)

// Op is a Porter-Duff compositing operator.
type Op uint8

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota
	// Src specifies ``src in mask''.
	Src
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case Over:
		return "Over"
	case Src:
		return "Src"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Draw implements the Drawer interface by calling the Draw function with
// this Op.
func (op Op) Draw(dst pix.Image, r pix.Rectangle, src pix.Image, sp pix.Point) error {
	return DrawMask(dst, r, src, sp, nil, pix.ZP, op)
}

// Drawer contains the Draw method.
type Drawer interface {
	// Draw aligns r.Min in dst with sp in src and then replaces the
	// rectangle r in dst with the result of drawing src on dst.
	Draw(dst pix.Image, r pix.Rectangle, src pix.Image, sp pix.Point) error
}

// Draw calls DrawMask with a nil mask.
func Draw(dst pix.Image, r pix.Rectangle, src pix.Image, sp pix.Point, op Op) error {
	return DrawMask(dst, r, src, sp, nil, pix.ZP, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then
// replaces the rectangle r in dst with the result of a Porter-Duff
// composition. A nil mask is treated as opaque.
//
// An r that clips to nothing is a no-op. DrawMask returns
// ErrUnsupportedDestination, without writing any pixel, when dst is not a
// *pix.RGBA or *pix.Alpha.
func DrawMask(dst pix.Image, r pix.Rectangle, src pix.Image, sp pix.Point, mask pix.Image, mp pix.Point, op Op) error {
	if op != Over && op != Src {
		return fmt.Errorf("%w: %v", ErrUnknownOp, op)
	}

	switch kindOf(dst) {
	case kindRGBA, kindAlpha:
	case kindUniform, kindOther:
		pix.Logger().Debug("draw: unsupported destination", "type", fmt.Sprintf("%T", dst), "op", op)
		return fmt.Errorf("%w: %T", ErrUnsupportedDestination, dst)
	}

	clip(dst, &r, src, &sp, mask, &mp)
	if r.Empty() {
		return nil
	}

	switch kindOf(dst) {
	case kindRGBA:
		drawRGBA(dst.(*pix.RGBA), r, src, sp, mask, mp, op)
	case kindAlpha:
		drawGeneric(dst, r, src, sp, mask, mp, op)
	case kindUniform, kindOther:
		// Rejected above.
	}
	return nil
}

// clip clips r against each image's bounds (after translating into the
// destination image's coordinate space) and shifts the points sp and mp by
// the same amount as the change in r.Min.
func clip(dst pix.Image, r *pix.Rectangle, src pix.Image, sp *pix.Point, mask pix.Image, mp *pix.Point) {
	orig := r.Min
	*r = r.Intersect(dst.Bounds())
	*r = r.Intersect(src.Bounds().Add(orig.Sub(*sp)))
	if mask != nil {
		*r = r.Intersect(mask.Bounds().Add(orig.Sub(*mp)))
	}
	dx := r.Min.X - orig.X
	dy := r.Min.Y - orig.Y
	if dx == 0 && dy == 0 {
		return
	}
	sp.X += dx
	sp.Y += dy
	mp.X += dx
	mp.Y += dy
}

// processBackward reports whether a top-left to bottom-right scan would
// overwrite source pixels of the shared buffer before reading them.
func processBackward(dst pix.Image, r pix.Rectangle, src pix.Image, sp pix.Point) bool {
	return sameBuffer(dst, src) &&
		r.Overlaps(r.Add(sp.Sub(r.Min))) &&
		(sp.Y < r.Min.Y || (sp.Y == r.Min.Y && sp.X < r.Min.X))
}
