package gdi

import (
	"math"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name      string
		lengths   []float64
		wantNil   bool
		wantArray []float64
	}{
		{name: "nil input", lengths: nil, wantNil: true},
		{name: "all zeros", lengths: []float64{0, 0}, wantNil: true},
		{name: "dash and gap", lengths: []float64{5, 3}, wantArray: []float64{5, 3}},
		{name: "negative taken as absolute", lengths: []float64{-4, 2}, wantArray: []float64{4, 2}},
		{name: "single value", lengths: []float64{5}, wantArray: []float64{5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.lengths...)
			if tt.wantNil {
				if d != nil {
					t.Errorf("NewDash(%v) = %+v, want nil", tt.lengths, d)
				}
				return
			}
			if d == nil {
				t.Fatalf("NewDash(%v) = nil", tt.lengths)
			}
			if len(d.Array) != len(tt.wantArray) {
				t.Fatalf("Array = %v, want %v", d.Array, tt.wantArray)
			}
			for i := range d.Array {
				if d.Array[i] != tt.wantArray[i] {
					t.Errorf("Array[%d] = %v, want %v", i, d.Array[i], tt.wantArray[i])
				}
			}
		})
	}
}

func TestDashPatternLength(t *testing.T) {
	tests := []struct {
		name string
		d    *Dash
		want float64
	}{
		{"nil", nil, 0},
		{"even", NewDash(5, 3), 8},
		{"odd repeats", NewDash(5), 10},
		{"three values", NewDash(1, 2, 3), 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.PatternLength(); got != tt.want {
				t.Errorf("PatternLength() = %v, want %v", got, tt.want)
			}
			if got := tt.d.IsDashed(); got != (tt.want > 0) {
				t.Errorf("IsDashed() = %v", got)
			}
		})
	}
}

func TestDashNormalizedOffset(t *testing.T) {
	tests := []struct {
		offset, want float64
	}{
		{0, 0},
		{3, 3},
		{8, 0},
		{11, 3},
		{-2, 6},
	}
	for _, tt := range tests {
		d := NewDash(5, 3).WithOffset(tt.offset)
		if got := d.normalizedOffset(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("offset %v: normalizedOffset() = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestDashScaleAndClone(t *testing.T) {
	d := NewDash(2, 1).WithOffset(1)
	s := d.Scale(3)
	if s.Array[0] != 6 || s.Array[1] != 3 || s.Offset != 3 {
		t.Errorf("Scale(3) = %+v", s)
	}
	if d.Array[0] != 2 {
		t.Error("Scale modified the receiver")
	}

	c := d.Clone()
	c.Array[0] = 99
	if d.Array[0] != 2 {
		t.Error("Clone shares its array with the original")
	}
}

func TestDashApply(t *testing.T) {
	line := []polyline{{pts: []Point{{0, 0}, {20, 0}}}}

	tests := []struct {
		name   string
		d      *Dash
		starts []float64
		ends   []float64
	}{
		{"even pattern", NewDash(5, 5), []float64{0, 10}, []float64{5, 15}},
		{"offset into gap", NewDash(5, 5).WithOffset(7), []float64{3, 13}, []float64{8, 18}},
		{"odd pattern", NewDash(4), []float64{0, 8, 16}, []float64{4, 12, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.d.apply(line)
			if len(got) != len(tt.starts) {
				t.Fatalf("apply() gave %d pieces, want %d: %v", len(got), len(tt.starts), got)
			}
			for i, pl := range got {
				first, last := pl.pts[0], pl.pts[len(pl.pts)-1]
				if math.Abs(first.X-tt.starts[i]) > 1e-9 || math.Abs(last.X-tt.ends[i]) > 1e-9 {
					t.Errorf("piece %d = [%v, %v], want [%v, %v]", i, first.X, last.X, tt.starts[i], tt.ends[i])
				}
				if pl.closed {
					t.Errorf("piece %d is closed", i)
				}
			}
		})
	}
}

func TestDashApplyAcrossCorner(t *testing.T) {
	// 6 on, 100 off: the only dash bends around the corner at (4, 0).
	line := []polyline{{pts: []Point{{0, 0}, {4, 0}, {4, 10}}}}
	got := NewDash(6, 100).apply(line)
	if len(got) != 1 {
		t.Fatalf("apply() gave %d pieces, want 1", len(got))
	}
	pts := got[0].pts
	if len(pts) != 3 || pts[1] != (Point{4, 0}) || !pointsNear(pts[2], Pt(4, 2), 1e-9) {
		t.Errorf("piece = %v, want [(0,0) (4,0) (4,2)]", pts)
	}
}

func TestDashApplyClosedReopens(t *testing.T) {
	square := []polyline{{pts: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, closed: true}}
	got := NewDash(100, 1).apply(square)
	if len(got) != 1 {
		t.Fatalf("apply() gave %d pieces, want 1", len(got))
	}
	pts := got[0].pts
	if last := pts[len(pts)-1]; last != (Point{0, 0}) {
		t.Errorf("closed outline should end at its start, got %v", last)
	}
}

func TestDashApplySolid(t *testing.T) {
	line := []polyline{{pts: []Point{{0, 0}, {1, 0}}}}
	var d *Dash
	if got := d.apply(line); len(got) != 1 {
		t.Errorf("nil dash apply() = %v, want the input", got)
	}
}
