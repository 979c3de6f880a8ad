package gdi

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gdi/colors"
)

// FloodStyle selects the FloodFill boundary test.
type FloodStyle uint8

const (
	// FloodSurface fills while pixels match the given color.
	FloodSurface FloodStyle = iota
	// FloodBorder fills until pixels match the given color.
	FloodBorder
)

// RasterOp is a logical pixel operation for Blit.
type RasterOp uint8

const (
	// RasterOpCopy copies source pixels, blending by alpha.
	RasterOpCopy RasterOp = iota
	// RasterOpXor, RasterOpInvert, RasterOpAnd and RasterOpOr combine
	// source and destination bits. They are not supported.
	RasterOpXor
	RasterOpInvert
	RasterOpAnd
	RasterOpOr
)

// shape describes which halves of a combined draw run.
type shape uint8

const (
	fillOnly shape = 1 << iota
	strokeOnly
	fillAndStroke = fillOnly | strokeOnly
)

// render validates the pen and brush it needs, then fills before it
// strokes so the outline is never covered. Validation runs whether or not
// the surface is ok.
func (c *Canvas) render(p *Path, what shape) error {
	if what&fillOnly != 0 && c.fillRule == FillRuleEvenOdd {
		return ErrUnsupported
	}
	if what&strokeOnly != 0 {
		if err := c.pen.validate(); err != nil {
			return misuse(err)
		}
	}
	if what&fillOnly != 0 {
		if err := c.brush.validate(); err != nil {
			return misuse(err)
		}
	}
	if !c.IsOk() {
		return nil
	}
	if what&fillOnly != 0 {
		c.fill(p)
	}
	if what&strokeOnly != 0 {
		c.stroke(p)
	}
	return nil
}

func (c *Canvas) fill(p *Path) {
	src := c.brush.source()
	if src == nil {
		return
	}
	m := c.device()
	lines := p.flatten(flattenTolerance / m.ScaleFactor())
	polys := make([][]Point, 0, len(lines))
	for _, l := range lines {
		if len(l.pts) >= 3 {
			polys = append(polys, transformPoints(m, l.pts))
		}
	}
	c.fillDevice(polys, src, c.antialias)
}

func (c *Canvas) stroke(p *Path) {
	pen := c.pen
	if pen.Style == PenStyleTransparent || pen.Color.A() == 0 {
		return
	}
	m := c.device()
	sf := m.ScaleFactor()
	width := pen.Width
	if width == 0 {
		width = 1 / sf
	}
	tol := flattenTolerance / sf

	lines := p.flatten(tol)
	if d := pen.dash(width); d != nil {
		lines = d.apply(lines)
	}
	polys := newStroker(width, pen, tol).stroke(lines)
	for i, poly := range polys {
		polys[i] = transformPoints(m, poly)
	}
	c.fillDevice(polys, image.NewUniform(pen.Color), c.antialias)
}

func rectPath(x, y, w, h float64) *Path {
	p := NewPath()
	p.Rectangle(x, y, w, h)
	return p
}

// StrokeRectangle outlines a rectangle with the pen.
func (c *Canvas) StrokeRectangle(x, y, w, h float64) error {
	return c.render(rectPath(x, y, w, h), strokeOnly)
}

// FillRectangle fills a rectangle with the brush.
func (c *Canvas) FillRectangle(x, y, w, h float64) error {
	return c.render(rectPath(x, y, w, h), fillOnly)
}

// DrawRectangle fills a rectangle, then outlines it.
func (c *Canvas) DrawRectangle(x, y, w, h float64) error {
	return c.render(rectPath(x, y, w, h), fillAndStroke)
}

func roundedPath(x, y, w, h, r float64) *Path {
	p := NewPath()
	p.RoundedRectangle(x, y, w, h, r)
	return p
}

// StrokeRoundedRectangle outlines a rectangle with corners of radius r.
// A negative r is a proportion of the shorter side.
func (c *Canvas) StrokeRoundedRectangle(x, y, w, h, r float64) error {
	return c.render(roundedPath(x, y, w, h, r), strokeOnly)
}

// FillRoundedRectangle fills a rounded rectangle.
func (c *Canvas) FillRoundedRectangle(x, y, w, h, r float64) error {
	return c.render(roundedPath(x, y, w, h, r), fillOnly)
}

// DrawRoundedRectangle fills a rounded rectangle, then outlines it.
func (c *Canvas) DrawRoundedRectangle(x, y, w, h, r float64) error {
	return c.render(roundedPath(x, y, w, h, r), fillAndStroke)
}

func ellipsePath(x, y, w, h float64) *Path {
	p := NewPath()
	p.Ellipse(x+w/2, y+h/2, w/2, h/2)
	return p
}

// StrokeEllipse outlines the ellipse inscribed in the rectangle.
func (c *Canvas) StrokeEllipse(x, y, w, h float64) error {
	return c.render(ellipsePath(x, y, w, h), strokeOnly)
}

// FillEllipse fills the ellipse inscribed in the rectangle.
func (c *Canvas) FillEllipse(x, y, w, h float64) error {
	return c.render(ellipsePath(x, y, w, h), fillOnly)
}

// DrawEllipse fills, then outlines, the ellipse inscribed in the rectangle.
func (c *Canvas) DrawEllipse(x, y, w, h float64) error {
	return c.render(ellipsePath(x, y, w, h), fillAndStroke)
}

// StrokeCircle outlines a circle.
func (c *Canvas) StrokeCircle(cx, cy, r float64) error {
	return c.StrokeEllipse(cx-r, cy-r, 2*r, 2*r)
}

// FillCircle fills a circle.
func (c *Canvas) FillCircle(cx, cy, r float64) error {
	return c.FillEllipse(cx-r, cy-r, 2*r, 2*r)
}

// DrawCircle fills, then outlines, a circle.
func (c *Canvas) DrawCircle(cx, cy, r float64) error {
	return c.DrawEllipse(cx-r, cy-r, 2*r, 2*r)
}

func polygonPath(pts []Point) (*Path, error) {
	if len(pts) < 2 {
		return nil, misuse(fmt.Errorf("%w: polygon needs 2 points, got %d", ErrIndexOutOfRange, len(pts)))
	}
	p := NewPath()
	p.Polygon(pts)
	return p, nil
}

// StrokePolygon outlines the closed polygon through pts.
func (c *Canvas) StrokePolygon(pts []Point) error {
	p, err := polygonPath(pts)
	if err != nil {
		return err
	}
	return c.render(p, strokeOnly)
}

// FillPolygon fills the polygon through pts with the current fill rule.
func (c *Canvas) FillPolygon(pts []Point) error {
	p, err := polygonPath(pts)
	if err != nil {
		return err
	}
	return c.render(p, fillOnly)
}

// DrawPolygon fills, then outlines, the polygon through pts.
func (c *Canvas) DrawPolygon(pts []Point) error {
	p, err := polygonPath(pts)
	if err != nil {
		return err
	}
	return c.render(p, fillAndStroke)
}

// DrawLine strokes a line from (x1, y1) to (x2, y2).
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) error {
	p := NewPath()
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return c.render(p, strokeOnly)
}

// DrawLines strokes the open polyline through pts.
func (c *Canvas) DrawLines(pts []Point) error {
	if len(pts) < 2 {
		return misuse(fmt.Errorf("%w: polyline needs 2 points, got %d", ErrIndexOutOfRange, len(pts)))
	}
	p := NewPath()
	p.Polyline(pts)
	return c.render(p, strokeOnly)
}

// DrawBezier strokes one cubic Bézier curve.
func (c *Canvas) DrawBezier(p0, c1, c2, p1 Point) error {
	return c.DrawBeziers([]Point{p0, c1, c2, p1})
}

// DrawBeziers strokes connected cubic curves: a start point followed by
// three points per curve.
func (c *Canvas) DrawBeziers(pts []Point) error {
	if len(pts) < 4 || (len(pts)-1)%3 != 0 {
		return misuse(fmt.Errorf("%w: %d Bézier points", ErrIndexOutOfRange, len(pts)))
	}
	p := NewPath()
	p.MoveTo(pts[0].X, pts[0].Y)
	for i := 1; i+2 < len(pts); i += 3 {
		p.CubicTo(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, pts[i+2].X, pts[i+2].Y)
	}
	return c.render(p, strokeOnly)
}

// DrawArc strokes a circular arc around (cx, cy) starting at start degrees
// and sweeping sweep degrees counter-clockwise.
func (c *Canvas) DrawArc(cx, cy, r, start, sweep float64) error {
	p := NewPath()
	a1, a2 := screenAngles(start, sweep)
	p.Arc(cx, cy, r, a1, a2)
	return c.render(p, strokeOnly)
}

func piePath(x, y, w, h, start, sweep float64) *Path {
	p := NewPath()
	if math.Abs(sweep) >= 360 {
		p.Ellipse(x+w/2, y+h/2, w/2, h/2)
		return p
	}
	p.PieSlice(x, y, w, h, start, sweep)
	return p
}

// DrawPieSlice fills, then outlines, a wedge of the ellipse inscribed in
// the rectangle. Angles are degrees, counter-clockwise from three o'clock.
func (c *Canvas) DrawPieSlice(x, y, w, h, start, sweep float64) error {
	return c.render(piePath(x, y, w, h, start, sweep), fillAndStroke)
}

// FillPieSlice fills a wedge of the ellipse inscribed in the rectangle.
func (c *Canvas) FillPieSlice(x, y, w, h, start, sweep float64) error {
	return c.render(piePath(x, y, w, h, start, sweep), fillOnly)
}

// StrokePath outlines p with the pen.
func (c *Canvas) StrokePath(p *Path) error {
	if p == nil {
		return nil
	}
	return c.render(p, strokeOnly)
}

// FillPath fills p with the brush and the current fill rule.
func (c *Canvas) FillPath(p *Path) error {
	if p == nil {
		return nil
	}
	return c.render(p, fillOnly)
}

// DrawPath fills, then outlines, p.
func (c *Canvas) DrawPath(p *Path) error {
	if p == nil {
		return nil
	}
	return c.render(p, fillAndStroke)
}

// DrawPoint sets the pixel at (x, y) to the pen color.
func (c *Canvas) DrawPoint(x, y float64) error {
	if err := c.pen.validate(); err != nil {
		return misuse(err)
	}
	if !c.IsOk() {
		return nil
	}
	if c.pen.Style == PenStyleTransparent {
		return nil
	}
	return c.SetPixel(x, y, c.pen.Color)
}

// SetPixel replaces the logical pixel at (x, y) with col. At a device
// scale above one it covers every device pixel of that logical pixel.
func (c *Canvas) SetPixel(x, y float64, col colors.Color) error {
	if !c.IsOk() {
		return nil
	}
	m := c.device()
	corners := transformPoints(m, []Point{
		{math.Floor(x), math.Floor(y)}, {math.Floor(x) + 1, math.Floor(y) + 1},
	})
	r := deviceBox(corners)
	if r.Empty() {
		return nil
	}
	c.fillRect(r, image.NewUniform(col), draw.Src)
	return nil
}

// Clear fills the clip area with the background color, replacing what
// was there.
func (c *Canvas) Clear() error {
	if !c.IsOk() {
		return nil
	}
	c.fillRect(c.clipBounds(), image.NewUniform(c.background), draw.Src)
	return nil
}

// FloodFill is not supported by the rasterizer.
func (c *Canvas) FloodFill(x, y float64, col colors.Color, style FloodStyle) error {
	return ErrUnsupported
}

// Blit copies the w x h logical area of src starting at source pixel
// (sx, sy) to (x, y). Only RasterOpCopy is supported.
func (c *Canvas) Blit(x, y, w, h float64, src *Bitmap, sx, sy int, rop RasterOp) error {
	if rop != RasterOpCopy {
		return ErrUnsupported
	}
	if src == nil {
		return misuse(fmt.Errorf("%w: nil source", ErrInvalidBitmap))
	}
	s := src.ScaleFactor()
	sr := image.Rect(sx, sy, sx+int(math.Ceil(w*s)), sy+int(math.Ceil(h*s)))
	return c.DrawImageRect(src, sr, x, y, w, h)
}
