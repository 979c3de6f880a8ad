package gdi

import (
	"fmt"
	"math"

	"github.com/gogpu/gdi/colors"
)

// PenStyle selects how a pen breaks its line.
type PenStyle uint8

const (
	// PenStyleSolid draws an unbroken line.
	PenStyleSolid PenStyle = iota
	// PenStyleDot draws short dots.
	PenStyleDot
	// PenStyleLongDash draws long dashes.
	PenStyleLongDash
	// PenStyleShortDash draws short dashes.
	PenStyleShortDash
	// PenStyleDotDash alternates long dashes and dots.
	PenStyleDotDash
	// PenStyleUserDash uses Pen.Dashes.
	PenStyleUserDash
	// PenStyleTransparent strokes nothing.
	PenStyleTransparent

	penStyleCount
)

var penStyleNames = [penStyleCount]string{
	"Solid", "Dot", "LongDash", "ShortDash", "DotDash", "UserDash", "Transparent",
}

func (s PenStyle) String() string {
	if s >= penStyleCount {
		return fmt.Sprintf("PenStyle(%d)", s)
	}
	return penStyleNames[s]
}

// LineCap is the shape of open line ends.
type LineCap uint8

const (
	// LineCapRound ends lines with a half circle.
	LineCapRound LineCap = iota
	// LineCapSquare ends lines with a half square.
	LineCapSquare
	// LineCapButt ends lines exactly at the endpoint.
	LineCapButt
)

// LineJoin is the shape of corners between segments.
type LineJoin uint8

const (
	// LineJoinRound rounds corners.
	LineJoinRound LineJoin = iota
	// LineJoinBevel cuts corners off.
	LineJoinBevel
	// LineJoinMiter extends corners to a point, up to MiterLimit.
	LineJoinMiter
)

// Default pen properties.
const (
	DefaultMiterLimit = 10.0
)

// Built-in dash patterns, in multiples of the pen width.
var (
	dashDot       = []float64{1, 2}
	dashLong      = []float64{8, 4}
	dashShort     = []float64{4, 4}
	dashDotDash   = []float64{8, 3, 1, 3}
	builtinDashes = map[PenStyle][]float64{
		PenStyleDot:       dashDot,
		PenStyleLongDash:  dashLong,
		PenStyleShortDash: dashShort,
		PenStyleDotDash:   dashDotDash,
	}
)

// Pen describes how outlines are stroked. A width of zero draws a hairline
// one device pixel wide at any scale.
type Pen struct {
	Color      colors.Color
	Width      float64
	Style      PenStyle
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64

	// Dashes is the pattern for PenStyleUserDash, in multiples of Width.
	Dashes []float64
}

// NewPen returns a solid pen with round caps and joins, matching the
// classic GDI default.
func NewPen(c colors.Color, width float64) *Pen {
	return &Pen{
		Color:      c,
		Width:      width,
		Style:      PenStyleSolid,
		Cap:        LineCapRound,
		Join:       LineJoinRound,
		MiterLimit: DefaultMiterLimit,
	}
}

// WithStyle returns a copy of p with style s.
func (p Pen) WithStyle(s PenStyle) *Pen {
	p.Style = s
	return &p
}

// WithCap returns a copy of p with cap c.
func (p Pen) WithCap(c LineCap) *Pen {
	p.Cap = c
	return &p
}

// WithJoin returns a copy of p with join j.
func (p Pen) WithJoin(j LineJoin) *Pen {
	p.Join = j
	return &p
}

// WithDashes returns a copy of p using the user dash pattern dashes.
func (p Pen) WithDashes(dashes ...float64) *Pen {
	p.Style = PenStyleUserDash
	p.Dashes = append([]float64(nil), dashes...)
	return &p
}

// IsOk reports whether p can stroke: a non-negative finite width, a known
// style and, for PenStyleUserDash, a pattern with a positive length.
func (p *Pen) IsOk() bool {
	return p.validate() == nil
}

func (p *Pen) validate() error {
	switch {
	case p == nil:
		return fmt.Errorf("%w: nil pen", ErrInvalidPen)
	case p.Width < 0 || math.IsNaN(p.Width) || math.IsInf(p.Width, 0):
		return fmt.Errorf("%w: width %v", ErrInvalidPen, p.Width)
	case p.Style >= penStyleCount:
		return fmt.Errorf("%w: %v", ErrInvalidPen, p.Style)
	case p.Cap > LineCapButt || p.Join > LineJoinMiter:
		return fmt.Errorf("%w: cap %d join %d", ErrInvalidPen, p.Cap, p.Join)
	case p.Style == PenStyleUserDash && NewDash(p.Dashes...) == nil:
		return fmt.Errorf("%w: empty user dash pattern", ErrInvalidPen)
	}
	return nil
}

// dash returns the pattern for a pen of the given effective width, or nil
// for a solid line.
func (p *Pen) dash(width float64) *Dash {
	var arr []float64
	if p.Style == PenStyleUserDash {
		arr = p.Dashes
	} else {
		arr = builtinDashes[p.Style]
	}
	if arr == nil {
		return nil
	}
	return NewDash(arr...).Scale(math.Max(width, 1e-3))
}

func (p *Pen) miterLimit() float64 {
	if p.MiterLimit < 1 {
		return DefaultMiterLimit
	}
	return p.MiterLimit
}
