package gdi

import (
	"fmt"
	"image"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gdi/colors"
)

// DrawText draws s with its top-left corner at (x, y) using the canvas
// font and text colors. Lines are separated by '\n'. In BackgroundSolid
// mode the measured extent is filled with the text background first.
func (c *Canvas) DrawText(s string, x, y float64) error {
	bg := colors.Empty
	if c.bgMode == BackgroundSolid {
		bg = c.textBg
	}
	return c.DrawTextWith(s, x, y, c.font, c.textFg, bg)
}

// DrawTextWith draws s with an explicit font and colors. An empty or fully
// transparent bg draws no background block.
func (c *Canvas) DrawTextWith(s string, x, y float64, f *Font, fg, bg colors.Color) error {
	if !f.IsOk() {
		return misuse(fmt.Errorf("%w: nil font", ErrInvalidFont))
	}
	if !c.IsOk() {
		return nil
	}

	w, h := f.Extent(s)
	if bg.IsOk() && bg.A() != 0 && w > 0 {
		m := c.device()
		block := transformPoints(m, []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}})
		c.fillDevice([][]Point{block}, image.NewUniform(bg), false)
	}
	if s == "" || fg.A() == 0 {
		return nil
	}

	m := c.device().Multiply(Translate(x, y))
	scale := m.ScaleFactor()
	mask, pad, err := glyphMask(s, f, scale)
	if err != nil {
		return misuse(err)
	}
	if mask == nil {
		return nil
	}
	// Mask pixels are device-sized and the text origin sits at (pad, pad).
	t := m.Multiply(Scale(1/scale, 1/scale)).Multiply(Translate(-pad, -pad))
	c.drawMaskTransformed(mask, t, image.NewUniform(fg))
	return nil
}

// glyphMask renders s upright at scale device pixels per logical pixel.
// The text's top-left corner is at (pad, pad) in the mask.
func glyphMask(s string, f *Font, scale float64) (*image.Alpha, float64, error) {
	face, err := f.face(scale)
	if err != nil {
		return nil, 0, err
	}
	w, h := f.Extent(s)
	met := f.Metrics()
	pad := math.Ceil(math.Max(2, 0.25*met.lineHeight()*scale))

	mw := int(math.Ceil(w*scale + 2*pad))
	mh := int(math.Ceil(h*scale + 2*pad))
	if mw <= 0 || mh <= 0 {
		return nil, 0, nil
	}
	mask := image.NewAlpha(image.Rect(0, 0, mw, mh))
	d := font.Drawer{Dst: mask, Src: image.Opaque, Face: face}
	for i, line := range strings.Split(s, "\n") {
		baseline := (float64(i)*met.lineHeight() + met.Ascent) * scale
		d.Dot = fixed.Point26_6{X: floatToFixed(pad), Y: floatToFixed(pad + baseline)}
		d.DrawString(line)
	}
	return mask, pad, nil
}

// DrawRotatedText draws s rotated by angle degrees counter-clockwise
// around (x, y).
func (c *Canvas) DrawRotatedText(s string, x, y, angle float64) error {
	c.Push()
	defer func() { _ = c.Pop() }()
	c.Translate(x, y)
	c.Rotate(-angle * math.Pi / 180)
	return c.DrawText(s, 0, 0)
}

// GetTextExtent measures s in logical pixels: the advance of the widest
// line by ascent plus descent per line. A nil font measures with the
// canvas font.
func (c *Canvas) GetTextExtent(s string, f *Font) (w, h float64) {
	if f == nil {
		f = c.font
	}
	if !f.IsOk() {
		return 0, 0
	}
	return f.Extent(s)
}
