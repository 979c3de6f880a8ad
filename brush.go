package gdi

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gdi/colors"
)

// BrushStyle selects how a brush fills.
type BrushStyle uint8

const (
	// BrushStyleSolid fills with Brush.Color.
	BrushStyleSolid BrushStyle = iota
	// BrushStyleTransparent fills nothing.
	BrushStyleTransparent
	// BrushStyleImage tiles Brush.Pattern from the device origin.
	BrushStyleImage
)

// Brush describes how interiors are filled.
type Brush struct {
	Color   colors.Color
	Style   BrushStyle
	Pattern *Bitmap
}

// NewBrush returns a solid brush.
func NewBrush(c colors.Color) *Brush {
	return &Brush{Color: c, Style: BrushStyleSolid}
}

// NewImageBrush returns a brush tiling b.
func NewImageBrush(b *Bitmap) *Brush {
	return &Brush{Style: BrushStyleImage, Pattern: b}
}

// TransparentBrush returns a brush that fills nothing.
func TransparentBrush() *Brush {
	return &Brush{Style: BrushStyleTransparent}
}

// IsOk reports whether b can fill.
func (b *Brush) IsOk() bool {
	return b.validate() == nil
}

func (b *Brush) validate() error {
	switch {
	case b == nil:
		return fmt.Errorf("%w: nil brush", ErrInvalidBrush)
	case b.Style > BrushStyleImage:
		return fmt.Errorf("%w: style %d", ErrInvalidBrush, b.Style)
	case b.Style == BrushStyleImage && (!b.Pattern.IsOk() || b.Pattern.Width() == 0 || b.Pattern.Height() == 0):
		return fmt.Errorf("%w: empty pattern", ErrInvalidBrush)
	}
	return nil
}

// source returns the image composited through coverage masks, or nil when
// the brush paints nothing.
func (b *Brush) source() image.Image {
	switch b.Style {
	case BrushStyleSolid:
		if b.Color.A() == 0 {
			return nil
		}
		return image.NewUniform(b.Color)
	case BrushStyleImage:
		return &tiledImage{src: b.Pattern.rgba()}
	}
	return nil
}

// tiledImage repeats src over the whole plane.
type tiledImage struct {
	src *image.RGBA
}

func (t *tiledImage) ColorModel() color.Model { return color.RGBAModel }

func (t *tiledImage) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (t *tiledImage) At(x, y int) color.Color {
	r := t.src.Rect
	x = r.Min.X + mod(x-r.Min.X, r.Dx())
	y = r.Min.Y + mod(y-r.Min.Y, r.Dy())
	return t.src.RGBAAt(x, y)
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
