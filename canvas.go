package gdi

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gdi/colors"
	"github.com/gogpu/gdi/region"
	"github.com/gogpu/gdi/surface"
)

// FillRule selects how overlapping subpaths are filled.
type FillRule uint8

const (
	// FillRuleNonZero fills every point with a non-zero winding number.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd is not implemented by the rasterizer; fills using it
	// return ErrUnsupported.
	FillRuleEvenOdd
)

// BackgroundMode selects whether text is drawn over an opaque block.
type BackgroundMode uint8

const (
	// BackgroundTransparent draws glyphs only.
	BackgroundTransparent BackgroundMode = iota
	// BackgroundSolid fills the text extent with the text background first.
	BackgroundSolid
)

// flattenTolerance is the maximum curve error in device pixels.
const flattenTolerance = 0.2

// canvasState is what Push saves.
type canvasState struct {
	user       Matrix
	clip       *region.Region
	pen        *Pen
	brush      *Brush
	font       *Font
	textFg     colors.Color
	textBg     colors.Color
	background colors.Color
	bgMode     BackgroundMode
	fillRule   FillRule
}

// Canvas is an immediate-mode drawing context bound to one surface.
//
// Coordinates are logical pixels with the origin at the top left. The
// device matrix is base * user, where base flips bottom-up surfaces and
// applies the surface scale, so the scale is always applied outermost.
// The clip is kept in target pixels.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	surface surface.Surface
	base    Matrix
	canvasState

	antialias bool
	interp    Interpolation

	stack  []canvasState
	dirty  image.Rectangle
	closed bool
}

// NewCanvas returns a canvas drawing onto s. A nil surface yields a canvas
// on which every operation is a no-op.
//
// Example:
//
//	bmp := gdi.NewBitmap(64, 64)
//	c := gdi.NewCanvas(bmp.Surface(), gdi.WithAntialias(false))
//	defer c.Close()
func NewCanvas(s surface.Surface, opts ...CanvasOption) *Canvas {
	if s == nil {
		s = surface.Null("", 1)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fg := Settings.DefaultForeground()
	bg := Settings.DefaultBackground()
	c := &Canvas{
		surface:   s,
		base:      baseMatrix(s),
		antialias: o.antialias,
		interp:    o.interpolation,
		canvasState: canvasState{
			user:       Identity(),
			pen:        o.pen,
			brush:      o.brush,
			font:       o.font,
			textFg:     fg,
			textBg:     bg,
			background: bg,
		},
	}
	if c.pen == nil {
		c.pen = NewPen(fg, 1)
	}
	if c.brush == nil {
		c.brush = NewBrush(bg)
	}
	if c.font == nil {
		c.font = Settings.DefaultFont()
	}
	return c
}

// baseMatrix maps logical coordinates to target pixels: scale first, then
// a vertical flip for bottom-up memory.
func baseMatrix(s surface.Surface) Matrix {
	scale := s.Scale()
	if scale <= 0 || math.IsNaN(scale) {
		scale = 1
	}
	m := Scale(scale, scale)
	if s.Orientation() == surface.BottomUp {
		flip := Matrix{A: 1, E: -1, F: float64(s.Height())}
		m = flip.Multiply(m)
	}
	return m
}

// Surface returns the bound surface.
func (c *Canvas) Surface() surface.Surface { return c.surface }

// IsOk reports whether drawing reaches any pixels.
func (c *Canvas) IsOk() bool {
	return !c.closed && c.surface.IsOk()
}

// ScaleFactor returns the surface's logical-to-device scale.
func (c *Canvas) ScaleFactor() float64 { return c.surface.Scale() }

// Size returns the surface size in logical pixels.
func (c *Canvas) Size() (w, h float64) {
	s := c.base.ScaleFactor()
	return float64(c.surface.Width()) / s, float64(c.surface.Height()) / s
}

// device returns the matrix from user space to target pixels.
func (c *Canvas) device() Matrix {
	return c.base.Multiply(c.user)
}

// SetPen sets the pen used by stroke operations.
func (c *Canvas) SetPen(p *Pen) error {
	if err := p.validate(); err != nil {
		return misuse(err)
	}
	c.pen = p
	return nil
}

// Pen returns the current pen.
func (c *Canvas) Pen() *Pen { return c.pen }

// SetBrush sets the brush used by fill operations.
func (c *Canvas) SetBrush(b *Brush) error {
	if err := b.validate(); err != nil {
		return misuse(err)
	}
	c.brush = b
	return nil
}

// Brush returns the current brush.
func (c *Canvas) Brush() *Brush { return c.brush }

// SetFont sets the font used by DrawText.
func (c *Canvas) SetFont(f *Font) error {
	if !f.IsOk() {
		return misuse(fmt.Errorf("%w: nil font", ErrInvalidFont))
	}
	c.font = f
	return nil
}

// Font returns the current font.
func (c *Canvas) Font() *Font { return c.font }

// SetTextForeground sets the glyph color.
func (c *Canvas) SetTextForeground(col colors.Color) { c.textFg = col }

// SetTextBackground sets the block color behind text in BackgroundSolid
// mode.
func (c *Canvas) SetTextBackground(col colors.Color) { c.textBg = col }

// SetBackgroundMode selects whether DrawText fills its extent first.
func (c *Canvas) SetBackgroundMode(m BackgroundMode) { c.bgMode = m }

// SetBackground sets the color used by Clear.
func (c *Canvas) SetBackground(col colors.Color) { c.background = col }

// SetFillRule sets the rule for subsequent fills.
func (c *Canvas) SetFillRule(r FillRule) { c.fillRule = r }

// SetAntialias switches antialiasing of shapes and text.
func (c *Canvas) SetAntialias(on bool) { c.antialias = on }

// Antialias reports whether antialiasing is on.
func (c *Canvas) Antialias() bool { return c.antialias }

// SetInterpolation sets the resampling kernel for transformed images.
func (c *Canvas) SetInterpolation(i Interpolation) { c.interp = i }

// SetTransform replaces the user transform. The device scale stays
// outermost: device = base * m.
func (c *Canvas) SetTransform(m Matrix) { c.user = m }

// GetTransform returns the user transform.
func (c *Canvas) GetTransform() Matrix { return c.user }

// ResetTransform restores the identity user transform.
func (c *Canvas) ResetTransform() { c.user = Identity() }

// Transform applies m before the current user transform.
func (c *Canvas) Transform(m Matrix) { c.user = c.user.Multiply(m) }

// Translate moves the user origin by (x, y).
func (c *Canvas) Translate(x, y float64) { c.Transform(Translate(x, y)) }

// Scale scales user space by (sx, sy).
func (c *Canvas) Scale(sx, sy float64) { c.Transform(Scale(sx, sy)) }

// Rotate rotates user space by angle radians, clockwise on screen.
func (c *Canvas) Rotate(angle float64) { c.Transform(Rotate(angle)) }

// Push saves the transform, clip, pen, brush, font and text settings.
func (c *Canvas) Push() {
	st := c.canvasState
	if st.clip != nil {
		st.clip = st.clip.Clone()
	}
	c.stack = append(c.stack, st)
}

// Pop restores the state saved by the matching Push.
func (c *Canvas) Pop() error {
	n := len(c.stack)
	if n == 0 {
		return misuse(fmt.Errorf("%w: Pop without Push", ErrIndexOutOfRange))
	}
	c.canvasState = c.stack[n-1]
	c.stack = c.stack[:n-1]
	return nil
}

// DirtyRect returns the union of target pixels touched since creation.
func (c *Canvas) DirtyRect() image.Rectangle { return c.dirty }

func (c *Canvas) markDirty(r image.Rectangle) {
	c.dirty = c.dirty.Union(r)
	if dt, ok := c.surface.(surface.DirtyTracker); ok {
		dt.MarkDirty(r)
	}
}

// Flush pushes drawn pixels to the surface's destination.
func (c *Canvas) Flush() error {
	if c.closed {
		return nil
	}
	return c.surface.Flush()
}

// Close flushes the surface and drops the canvas state. The surface itself
// stays open; it belongs to the caller. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	err := c.surface.Flush()
	c.closed = true
	c.stack = nil
	c.clip = nil
	return err
}
