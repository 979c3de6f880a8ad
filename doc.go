// Package gdi is a pure-Go 2D drawing core for widget toolkits.
//
// # Overview
//
// gdi draws shapes, text and images onto pixel surfaces that differ in
// channel order, alpha premultiplication, row order, ownership and scale
// factor. A [Canvas] is bound to one [surface.Surface] and hides those
// differences: callers use logical coordinates with the origin at the top
// left, and the canvas composes the surface's base matrix (a vertical flip
// for bottom-up buffers, then the device scale) outermost.
//
// # Quick Start
//
//	import "github.com/gogpu/gdi"
//
//	bmp := gdi.NewBitmap(200, 100)
//	c := gdi.NewCanvas(bmp.Surface())
//	defer c.Close()
//
//	c.SetBrush(gdi.NewBrush(colors.FromKnown(colors.CornflowerBlue)))
//	c.SetPen(gdi.NewPen(colors.FromKnown(colors.Black), 2))
//	c.DrawRoundedRectangle(10, 10, 180, 80, 8) // fill, then stroke
//	c.DrawText("Hello", 20, 40)
//
//	bmp.Save(w, gdi.BitmapTypePNG, 0)
//
// # Surfaces
//
// The surface package provides four acquisition strategies: a borrowed view
// of a Bitmap's pixels, a locked native window buffer, a cached
// device-independent buffer presented through its dirty rectangle, and a
// GPU-backed surface bound to a window's rendering context. A surface that
// reports IsOk() == false (zero area or failed acquisition) is a normal
// condition: every draw call against it is a silent no-op.
//
// # Errors
//
// Programmer errors (a nil or malformed pen, brush or font, an index out of
// range) return [ErrInvalidPen], [ErrInvalidBrush], [ErrInvalidFont] or
// [ErrIndexOutOfRange]. Built with the gdidebug tag they panic instead.
// Operations the rasterizer does not implement return [ErrUnsupported].
// Bitmap I/O reports failures through boolean results and the logger.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Matrix angles are radians; text and arc angles are degrees,
//     counter-clockwise, as on classic GDI
package gdi
