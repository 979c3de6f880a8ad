package gdi

// polyline is one flattened subpath.
type polyline struct {
	pts    []Point
	closed bool
}

const maxFlattenDepth = 12

// flatten converts p into polylines whose distance from the true curves is
// at most tol. Consecutive duplicate points are dropped.
func (p *Path) flatten(tol float64) []polyline {
	var (
		out   []polyline
		cur   polyline
		pos   Point
		drawn bool
	)
	flush := func() {
		if len(cur.pts) > 1 || (len(cur.pts) == 1 && drawn) {
			out = append(out, cur)
		}
		cur, drawn = polyline{}, false
	}
	add := func(pt Point) {
		if n := len(cur.pts); n > 0 && cur.pts[n-1] == pt {
			return
		}
		cur.pts = append(cur.pts, pt)
	}
	begin := func() {
		if len(cur.pts) == 0 {
			add(pos)
		}
		drawn = true
	}

	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			flush()
			pos = e.Point
			add(pos)
		case LineTo:
			begin()
			add(e.Point)
			pos = e.Point
		case QuadTo:
			begin()
			flattenQuad(pos, e.Control, e.Point, tol, 0, add)
			pos = e.Point
		case CubicTo:
			begin()
			flattenCubic(pos, e.Control1, e.Control2, e.Point, tol, 0, add)
			pos = e.Point
		case Close:
			if n := len(cur.pts); n > 1 && cur.pts[n-1] == cur.pts[0] {
				cur.pts = cur.pts[:n-1]
			}
			cur.closed = true
			if len(cur.pts) > 0 {
				pos = cur.pts[0]
			}
			flush()
		}
	}
	flush()
	return out
}

// flattenQuad subdivides until the control point lies within tol of the
// chord. The start point is assumed already emitted.
func flattenQuad(p0, c, p1 Point, tol float64, depth int, add func(Point)) {
	chord := p1.Sub(p0)
	l2 := chord.Dot(chord)
	d := c.Sub(p0).Cross(chord)
	if depth >= maxFlattenDepth || (l2 > 1e-12 && d*d <= tol*tol*l2) || (l2 <= 1e-12 && c.Distance(p0) <= tol) {
		add(p1)
		return
	}
	q0 := p0.Lerp(c, 0.5)
	q1 := c.Lerp(p1, 0.5)
	m := q0.Lerp(q1, 0.5)
	flattenQuad(p0, q0, m, tol, depth+1, add)
	flattenQuad(m, q1, p1, tol, depth+1, add)
}

// flattenCubic subdivides until both control points lie within tol of the
// chord.
func flattenCubic(p0, c1, c2, p1 Point, tol float64, depth int, add func(Point)) {
	if depth >= maxFlattenDepth || cubicFlat(p0, c1, c2, p1, tol) {
		add(p1)
		return
	}
	a := p0.Lerp(c1, 0.5)
	b := c1.Lerp(c2, 0.5)
	c := c2.Lerp(p1, 0.5)
	ab := a.Lerp(b, 0.5)
	bc := b.Lerp(c, 0.5)
	m := ab.Lerp(bc, 0.5)
	flattenCubic(p0, a, ab, m, tol, depth+1, add)
	flattenCubic(m, bc, c, p1, tol, depth+1, add)
}

func cubicFlat(p0, c1, c2, p1 Point, tol float64) bool {
	chord := p1.Sub(p0)
	l2 := chord.Dot(chord)
	if l2 <= 1e-12 {
		return c1.Distance(p0) <= tol && c2.Distance(p0) <= tol
	}
	d1 := c1.Sub(p0).Cross(chord)
	d2 := c2.Sub(p0).Cross(chord)
	lim := tol * tol * l2
	return d1*d1 <= lim && d2*d2 <= lim
}
