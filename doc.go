// Package pix implements a small 2-D raster image library.
//
// # Overview
//
// pix provides integer geometry (Point, Rectangle), pixel-buffer images
// (RGBA, Alpha) and a constant-color image (Uniform). Colors live in the
// color sub-package and Porter-Duff compositing lives in draw.
//
//	dst := pix.NewRGBA(pix.Rect(0, 0, 64, 64))
//	_ = draw.Draw(dst, dst.Bounds(), pix.NewUniform(color.RGBA{0x80, 0x80, 0x80, 0xff}), pix.ZP, draw.Src)
//
// # Pixel layout
//
// RGBA stores four bytes per pixel, row-major, with Stride bytes between
// rows. The bytes are the 8-bit premultiplied channels of color.RGBA.
// Alpha stores one byte per pixel with the same addressing.
//
// # Aliasing
//
// SubImage returns a view that shares the parent's Pix slice starting at
// the view's top-left pixel. Writes through the view are visible in the
// parent and the other way round. Compositing an image onto an
// overlapping view of itself is safe: draw detects the shared buffer and
// scans in the direction that reads every source pixel before it is
// overwritten.
//
// # Concurrency
//
// Images do no locking. Callers compositing into or reading from the same
// buffer on several goroutines must serialize access themselves.
package pix
