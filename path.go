package gdi

import "math"

// PathElement is one command of a Path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bézier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bézier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a sequence of subpaths in logical coordinates. The zero value is
// an empty path ready to use.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
	open     bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start, p.current, p.open = pt, pt, true
}

// LineTo adds a line to (x, y). Without a current point it acts as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.open {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo adds a quadratic Bézier curve with control point (cx, cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	if !p.open {
		p.MoveTo(cx, cy)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo adds a cubic Bézier curve with control points (c1x, c1y) and
// (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.open {
		p.MoveTo(c1x, c1y)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath back to its start. The next segment
// starts a new subpath at that point.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
	p.open = false
}

// Clear removes all elements.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start, p.current, p.open = Point{}, Point{}, false
}

// Elements returns the path elements. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the end of the last segment.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform returns a copy of p with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    m.TransformPoint(p.start),
		current:  m.TransformPoint(p.current),
		open:     p.open,
	}
	for i, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			out.elements[i] = MoveTo{Point: m.TransformPoint(e.Point)}
		case LineTo:
			out.elements[i] = LineTo{Point: m.TransformPoint(e.Point)}
		case QuadTo:
			out.elements[i] = QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			}
		case CubicTo:
			out.elements[i] = CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			}
		case Close:
			out.elements[i] = e
		}
	}
	return out
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	out := *p
	out.elements = append([]PathElement(nil), p.elements...)
	return &out
}

// Rectangle adds a closed rectangle.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Polygon adds a closed polygon through pts.
func (p *Path) Polygon(pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// Polyline adds an open subpath through pts.
func (p *Path) Polyline(pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
}

// Circle adds a closed circle.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse adds a closed axis-aligned ellipse built from four cubic curves.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	kx, ky := k*rx, k*ry
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
}

// Arc adds a circular arc from angle1 to angle2 (radians, y down). The
// arc runs toward angle2 in whichever direction its sign gives.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	p.EllipticalArc(cx, cy, r, r, angle1, angle2)
}

// EllipticalArc adds an arc of the axis-aligned ellipse centred on
// (cx, cy). The arc connects to the current point with a line; without
// one it starts a new subpath.
func (p *Path) EllipticalArc(cx, cy, rx, ry, angle1, angle2 float64) {
	x0, y0 := cx+rx*math.Cos(angle1), cy+ry*math.Sin(angle1)
	if p.open {
		p.LineTo(x0, y0)
	} else {
		p.MoveTo(x0, y0)
	}

	sweep := angle2 - angle1
	if sweep == 0 {
		return
	}
	const maxSweep = math.Pi / 2
	n := int(math.Ceil(math.Abs(sweep) / maxSweep))
	step := sweep / float64(n)
	alpha := math.Sin(step) * (math.Sqrt(4+3*math.Pow(math.Tan(step/2), 2)) - 1) / 3

	a1 := angle1
	for range n {
		a2 := a1 + step
		sin1, cos1 := math.Sincos(a1)
		sin2, cos2 := math.Sincos(a2)
		p.CubicTo(
			cx+rx*(cos1-alpha*sin1), cy+ry*(sin1+alpha*cos1),
			cx+rx*(cos2+alpha*sin2), cy+ry*(sin2-alpha*cos2),
			cx+rx*cos2, cy+ry*sin2,
		)
		a1 = a2
	}
}

// RoundedRectangle adds a closed rectangle with circular corners of radius
// r. A negative r is a proportion of the shorter side, so -0.25 rounds a
// quarter of it. The radius is clamped to half the shorter side.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	short := math.Min(math.Abs(w), math.Abs(h))
	if r < 0 {
		r = -r * short
	}
	r = math.Min(r, short/2)
	if r <= 0 {
		p.Rectangle(x, y, w, h)
		return
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.Close()
}

// PieSlice adds a closed wedge of the ellipse inscribed in (x, y, w, h),
// starting at start degrees and sweeping sweep degrees counter-clockwise
// on screen.
func (p *Path) PieSlice(x, y, w, h, start, sweep float64) {
	cx, cy := x+w/2, y+h/2
	p.MoveTo(cx, cy)
	a1, a2 := screenAngles(start, sweep)
	p.EllipticalArc(cx, cy, w/2, h/2, a1, a2)
	p.Close()
}

// screenAngles converts counter-clockwise degrees into radians for a y-down
// coordinate system.
func screenAngles(start, sweep float64) (a1, a2 float64) {
	a1 = -start * math.Pi / 180
	a2 = -(start + sweep) * math.Pi / 180
	return a1, a2
}
