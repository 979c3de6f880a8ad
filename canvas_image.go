package gdi

import (
	"fmt"
	"image"
)

// DrawImage draws b with its top-left corner at (x, y). The bitmap's own
// scale factor gives its logical size.
//
// When Settings.UnscaledDrawImages is on, bitmap pixels map one to one
// onto device pixels: the draw runs inside a Push/Pop pair that scales by
// 1/surface scale around (x, y), and the Pop runs even if drawing fails.
func (c *Canvas) DrawImage(b *Bitmap, x, y float64) error {
	if b == nil {
		return misuse(fmt.Errorf("%w: nil bitmap", ErrInvalidBitmap))
	}
	if !c.IsOk() {
		return nil
	}
	w, h := b.LogicalSize()
	if Settings.UnscaledDrawImages() {
		c.Push()
		defer func() { _ = c.Pop() }()
		s := c.surface.Scale()
		c.Translate(x, y)
		c.Scale(1/s, 1/s)
		x, y = 0, 0
		w, h = float64(b.Width()), float64(b.Height())
	}
	return c.DrawImageRect(b, b.Bounds(), x, y, w, h)
}

// DrawImageRect draws the src pixels of b stretched over the logical
// rectangle (x, y, w, h).
func (c *Canvas) DrawImageRect(b *Bitmap, src image.Rectangle, x, y, w, h float64) error {
	if b == nil {
		return misuse(fmt.Errorf("%w: nil bitmap", ErrInvalidBitmap))
	}
	if !c.IsOk() {
		return nil
	}
	sr := src.Intersect(b.Bounds())
	if sr.Empty() || w <= 0 || h <= 0 {
		return nil
	}
	// Source pixels to target pixels.
	t := c.device().
		Multiply(Translate(x, y)).
		Multiply(Scale(w/float64(src.Dx()), h/float64(src.Dy()))).
		Multiply(Translate(-float64(src.Min.X), -float64(src.Min.Y)))
	c.drawImageTransformed(b.rgba(), sr, t)
	return nil
}
