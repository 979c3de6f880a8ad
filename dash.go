package gdi

import "math"

// Dash is a dash pattern of alternating dash and gap lengths, in multiples
// of the pen width. An odd-length pattern repeats itself once to become
// even, so [5] means five on, five off.
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash creates a pattern from alternating dash/gap lengths. Negative
// lengths are taken as their absolute value. It returns nil when no length
// is positive.
//
//	NewDash(5, 3)        // 5 dash, 3 gap
//	NewDash(10, 5, 2, 5) // dash-dot
func NewDash(lengths ...float64) *Dash {
	arr := make([]float64, len(lengths))
	positive := false
	for i, l := range lengths {
		arr[i] = math.Abs(l)
		positive = positive || arr[i] > 0
	}
	if !positive {
		return nil
	}
	return &Dash{Array: arr}
}

// WithOffset returns a copy of d starting offset units into the pattern.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the length of one full cycle, counting the
// repetition of odd-length patterns.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether d describes a broken line.
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// Clone returns a deep copy of d.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: append([]float64(nil), d.Array...), Offset: d.Offset}
}

// Scale returns d with every length multiplied by factor.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	arr := make([]float64, len(d.Array))
	for i, l := range d.Array {
		arr[i] = l * factor
	}
	return &Dash{Array: arr, Offset: d.Offset * factor}
}

// normalizedOffset returns Offset wrapped into one cycle.
func (d *Dash) normalizedOffset() float64 {
	n := d.PatternLength()
	if n <= 0 {
		return 0
	}
	off := math.Mod(d.Offset, n)
	if off < 0 {
		off += n
	}
	return off
}

// effectiveArray returns the even-length form of Array.
func (d *Dash) effectiveArray() []float64 {
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	return append(append(make([]float64, 0, 2*len(d.Array)), d.Array...), d.Array...)
}

// apply splits lines into the "on" pieces of the pattern. The pattern
// restarts at every subpath; closed subpaths become open pieces.
func (d *Dash) apply(lines []polyline) []polyline {
	if !d.IsDashed() {
		return lines
	}
	arr := d.effectiveArray()
	var out []polyline

	for _, pl := range lines {
		pts := pl.pts
		if pl.closed && len(pts) > 1 {
			pts = append(append([]Point(nil), pts...), pts[0])
		}
		if len(pts) < 2 {
			continue
		}

		// Position inside the pattern.
		idx, rem := 0, arr[0]
		for off := d.normalizedOffset(); off > 0; {
			if off < rem {
				rem -= off
				break
			}
			off -= rem
			idx = (idx + 1) % len(arr)
			rem = arr[idx]
		}

		var piece []Point
		if idx%2 == 0 {
			piece = []Point{pts[0]}
		}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			seg := b.Distance(a)
			pos := 0.0
			for seg-pos > rem {
				pos += rem
				pt := a.Lerp(b, pos/seg)
				if idx%2 == 0 {
					out = append(out, polyline{pts: append(piece, pt)})
					piece = nil
				} else {
					piece = []Point{pt}
				}
				idx = (idx + 1) % len(arr)
				rem = arr[idx]
			}
			rem -= seg - pos
			if idx%2 == 0 {
				piece = append(piece, b)
			}
		}
		if idx%2 == 0 && len(piece) > 1 {
			out = append(out, polyline{pts: piece})
		}
	}
	return out
}
