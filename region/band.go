package region

import "slices"

// span is a half-open run [x0, x1) of covered device pixels in a band.
type span struct {
	x0, x1 int
}

// band covers rows [y0, y1) with the same sorted, disjoint, non-adjacent
// spans. Bands in a region are sorted by y, disjoint, and two vertically
// touching bands never carry equal spans, so every pixel set has exactly
// one representation.
type band struct {
	y0, y1 int
	spans  []span
}

func (op Operation) keep(inA, inB bool) bool {
	switch op {
	case Union:
		return inA || inB
	case Intersect:
		return inA && inB
	case Subtract:
		return inA && !inB
	case Xor:
		return inA != inB
	default:
		return false
	}
}

// combineBands sweeps the y boundaries of both operands and combines the
// spans active in each elementary interval.
func combineBands(a, b []band, op Operation) []band {
	ys := make([]int, 0, 2*(len(a)+len(b)))
	for _, bd := range a {
		ys = append(ys, bd.y0, bd.y1)
	}
	for _, bd := range b {
		ys = append(ys, bd.y0, bd.y1)
	}
	slices.Sort(ys)
	ys = slices.Compact(ys)

	var out []band
	ia, ib := 0, 0
	for i := 0; i+1 < len(ys); i++ {
		y0, y1 := ys[i], ys[i+1]
		sa := spansAt(a, &ia, y0)
		sb := spansAt(b, &ib, y0)
		if sa == nil && sb == nil {
			continue
		}
		s := combineSpans(sa, sb, op)
		if len(s) == 0 {
			continue
		}
		out = appendBand(out, band{y0: y0, y1: y1, spans: s})
	}
	return out
}

func spansAt(bands []band, i *int, y int) []span {
	for *i < len(bands) && bands[*i].y1 <= y {
		*i++
	}
	if *i < len(bands) && bands[*i].y0 <= y {
		return bands[*i].spans
	}
	return nil
}

func combineSpans(a, b []span, op Operation) []span {
	xs := make([]int, 0, 2*(len(a)+len(b)))
	for _, s := range a {
		xs = append(xs, s.x0, s.x1)
	}
	for _, s := range b {
		xs = append(xs, s.x0, s.x1)
	}
	slices.Sort(xs)
	xs = slices.Compact(xs)

	var out []span
	ia, ib := 0, 0
	for i := 0; i+1 < len(xs); i++ {
		x0, x1 := xs[i], xs[i+1]
		for ia < len(a) && a[ia].x1 <= x0 {
			ia++
		}
		for ib < len(b) && b[ib].x1 <= x0 {
			ib++
		}
		inA := ia < len(a) && a[ia].x0 <= x0
		inB := ib < len(b) && b[ib].x0 <= x0
		if !op.keep(inA, inB) {
			continue
		}
		if n := len(out); n > 0 && out[n-1].x1 == x0 {
			out[n-1].x1 = x1
		} else {
			out = append(out, span{x0: x0, x1: x1})
		}
	}
	return out
}

// appendBand appends bd, coalescing it into the previous band when they
// touch and cover the same columns.
func appendBand(bands []band, bd band) []band {
	if n := len(bands); n > 0 {
		last := &bands[n-1]
		if last.y1 == bd.y0 && slices.Equal(last.spans, bd.spans) {
			last.y1 = bd.y1
			return bands
		}
	}
	return append(bands, bd)
}

func equalBands(a, b []band) bool {
	return slices.EqualFunc(a, b, func(x, y band) bool {
		return x.y0 == y.y0 && x.y1 == y.y1 && slices.Equal(x.spans, y.spans)
	})
}

func cloneBands(bands []band) []band {
	if bands == nil {
		return nil
	}
	out := make([]band, len(bands))
	for i, bd := range bands {
		out[i] = band{y0: bd.y0, y1: bd.y1, spans: slices.Clone(bd.spans)}
	}
	return out
}
