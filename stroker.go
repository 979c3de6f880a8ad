package gdi

import "math"

// stroker expands polylines into filled outlines. Every outline piece is
// emitted with the same orientation so that the non-zero rule unions them.
type stroker struct {
	hw         float64 // half width
	cap        LineCap
	join       LineJoin
	miterLimit float64
	// tol is the flattening tolerance for round caps and joins.
	tol float64

	out [][]Point
}

func newStroker(width float64, p *Pen, tol float64) *stroker {
	return &stroker{
		hw:         width / 2,
		cap:        p.Cap,
		join:       p.Join,
		miterLimit: p.miterLimit(),
		tol:        tol,
	}
}

func (s *stroker) stroke(lines []polyline) [][]Point {
	for _, pl := range lines {
		s.polyline(pl)
	}
	return s.out
}

func (s *stroker) polyline(pl polyline) {
	pts := pl.pts
	if len(pts) == 1 {
		if !pl.closed {
			s.dot(pts[0])
		}
		return
	}

	n := len(pts)
	segs := n - 1
	if pl.closed {
		segs = n
	}
	for i := range segs {
		s.segment(pts[i], pts[(i+1)%n])
	}

	if pl.closed {
		for i := range n {
			s.joinAt(pts[(i+n-1)%n], pts[i], pts[(i+1)%n])
		}
		return
	}
	for i := 1; i < n-1; i++ {
		s.joinAt(pts[i-1], pts[i], pts[i+1])
	}
	s.capAt(pts[0], pts[0].Sub(pts[1]).Normalize())
	s.capAt(pts[n-1], pts[n-1].Sub(pts[n-2]).Normalize())
}

// segment emits the rectangle covering a - b.
func (s *stroker) segment(a, b Point) {
	d := b.Sub(a).Normalize()
	if d == (Point{}) {
		return
	}
	n := d.Perp().Mul(s.hw)
	s.emit([]Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

// joinAt fills the wedge left open on the outside of the corner at v.
func (s *stroker) joinAt(prev, v, next Point) {
	d0 := v.Sub(prev).Normalize()
	d1 := next.Sub(v).Normalize()
	if d0 == (Point{}) || d1 == (Point{}) {
		return
	}
	cross := d0.Cross(d1)
	if math.Abs(cross) < 1e-9 && d0.Dot(d1) > 0 {
		return
	}

	if s.join == LineJoinRound {
		s.emit(s.circle(v))
		return
	}

	side := -1.0
	if cross < 0 {
		side = 1
	}
	a := v.Add(d0.Perp().Mul(side * s.hw))
	b := v.Add(d1.Perp().Mul(side * s.hw))

	if s.join == LineJoinMiter {
		// cos of half the angle between the offset directions.
		mid := d0.Perp().Add(d1.Perp())
		if l := mid.Length(); l > 1e-9 {
			cosHalf := mid.Mul(1 / l).Dot(d0.Perp())
			if cosHalf > 0 && 1/cosHalf <= s.miterLimit {
				tip := v.Add(mid.Mul(side * s.hw / (l * cosHalf)))
				s.emit([]Point{v, a, tip, b})
				return
			}
		}
	}
	s.emit([]Point{v, a, b})
}

// capAt closes the end v of a line leaving in direction dir.
func (s *stroker) capAt(v, dir Point) {
	switch s.cap {
	case LineCapRound:
		s.emit(s.circle(v))
	case LineCapSquare:
		n := dir.Perp().Mul(s.hw)
		e := dir.Mul(s.hw)
		s.emit([]Point{v.Add(n), v.Add(n).Add(e), v.Sub(n).Add(e), v.Sub(n)})
	}
}

// dot marks a zero-length line, visible with round or square caps only.
func (s *stroker) dot(v Point) {
	switch s.cap {
	case LineCapRound:
		s.emit(s.circle(v))
	case LineCapSquare:
		h := s.hw
		s.emit([]Point{{v.X - h, v.Y - h}, {v.X + h, v.Y - h}, {v.X + h, v.Y + h}, {v.X - h, v.Y + h}})
	}
}

func (s *stroker) circle(c Point) []Point {
	n := circleSegments(s.hw, s.tol)
	pts := make([]Point, n)
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = Point{c.X + s.hw*cos, c.Y + s.hw*sin}
	}
	return pts
}

// circleSegments returns the vertex count keeping a polygon within tol of
// a circle of radius r.
func circleSegments(r, tol float64) int {
	if r <= tol {
		return 8
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-tol/r)))
	return min(max(n, 8), 256)
}

func (s *stroker) emit(poly []Point) {
	if signedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	s.out = append(s.out, poly)
}

// signedArea returns the shoelace area of poly.
func signedArea(poly []Point) float64 {
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.Cross(q)
	}
	return a / 2
}
