package region

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gdi/colors"
)

func sampleRegions() map[string]*Region {
	l := FromRect(NewRect(0, 0, 40, 10), 1)
	l.Union(NewRect(0, 10, 10, 30))

	holed := FromRect(NewRect(0, 0, 50, 50), 2)
	holed.Subtract(NewRect(10, 10, 20, 20))

	return map[string]*Region{
		"empty":    New(1),
		"rect":     FromRect(NewRect(5, 5, 20, 10), 1),
		"l-shape":  l,
		"holed":    holed,
		"triangle": FromPolygon([]Point{{0, 0}, {30, 0}, {0, 30}}, 1),
	}
}

func TestSelfCombinationLaws(t *testing.T) {
	for name, r := range sampleRegions() {
		t.Run(name, func(t *testing.T) {
			for _, op := range []Operation{Union, Intersect} {
				got := r.Clone()
				if err := got.Combine(r, op); err != nil {
					t.Fatalf("Combine(%v): %v", op, err)
				}
				if !got.Equal(r) {
					t.Errorf("%v(r, r) = %v, want %v", op, got, r)
				}
			}
			for _, op := range []Operation{Subtract, Xor} {
				got := r.Clone()
				if err := got.Combine(r, op); err != nil {
					t.Fatalf("Combine(%v): %v", op, err)
				}
				if !got.IsEmpty() {
					t.Errorf("%v(r, r) = %v, want empty", op, got)
				}
			}
		})
	}
}

func TestIntersectBounds(t *testing.T) {
	for _, scale := range []float64{1, 1.5, 2} {
		r := FromRect(NewRect(0, 0, 100, 100), scale)
		r.Intersect(NewRect(50, 50, 100, 100))
		if got, want := r.Bounds(), NewRect(50, 50, 50, 50); got != want {
			t.Errorf("scale %g: Bounds() = %+v, want %+v", scale, got, want)
		}
	}
}

func TestDeviceBoundsCoversEveryBand(t *testing.T) {
	tests := []struct {
		name  string
		rects []Rect
		want  image.Rectangle
	}{
		{"single", []Rect{NewRect(50, 50, 50, 50)}, image.Rect(50, 50, 100, 100)},
		{"later band wider", []Rect{NewRect(10, 0, 10, 10), NewRect(0, 20, 40, 5)}, image.Rect(0, 0, 40, 25)},
		{"first band wider", []Rect{NewRect(0, 0, 40, 5), NewRect(15, 5, 5, 5)}, image.Rect(0, 0, 40, 10)},
		{"negative", []Rect{NewRect(-30, -20, 10, 10), NewRect(5, 5, 5, 5)}, image.Rect(-30, -20, 10, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(1)
			for _, rc := range tt.rects {
				r.Union(rc)
			}
			if got := r.DeviceBounds(); got != tt.want {
				t.Errorf("DeviceBounds() = %v, want %v", got, tt.want)
			}
			b := r.Bounds()
			if got := image.Rect(int(b.X), int(b.Y), int(b.X+b.W), int(b.Y+b.H)); got != tt.want {
				t.Errorf("Bounds() = %+v, want %v", b, tt.want)
			}
			if got := r.Image(colors.FromKnown(colors.Red)).Bounds(); got != tt.want {
				t.Errorf("Image bounds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvalidOperation(t *testing.T) {
	bogus := Xor + 1
	r := FromRect(NewRect(0, 0, 10, 10), 1)
	want := r.Clone()

	r.Op(NewRect(5, 5, 10, 10), bogus)
	if !r.Equal(want) {
		t.Errorf("Op(%v) changed the region to %v", bogus, r)
	}
	r.OpDevice(image.Rect(5, 5, 15, 15), bogus)
	if !r.Equal(want) {
		t.Errorf("OpDevice(%v) changed the region to %v", bogus, r)
	}
	if err := r.Combine(want.Clone(), bogus); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Combine(%v): err = %v, want ErrInvalidOperation", bogus, err)
	}
	if !r.Equal(want) {
		t.Errorf("Combine(%v) changed the region to %v", bogus, r)
	}
}

func TestLogicalToDeviceRounding(t *testing.T) {
	r := FromRect(NewRect(0.2, 0.2, 1.5, 1.5), 2)
	if got, want := r.DeviceBounds(), image.Rect(0, 0, 4, 4); got != want {
		t.Errorf("DeviceBounds() = %v, want %v", got, want)
	}
}

func TestOperations(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 0, 10, 10)
	tests := []struct {
		op    Operation
		rects []image.Rectangle
	}{
		{Union, []image.Rectangle{image.Rect(0, 0, 15, 10)}},
		{Intersect, []image.Rectangle{image.Rect(5, 0, 10, 10)}},
		{Subtract, []image.Rectangle{image.Rect(0, 0, 5, 10)}},
		{Xor, []image.Rectangle{image.Rect(0, 0, 5, 10), image.Rect(10, 0, 15, 10)}},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			r := FromRect(a, 1)
			r.Op(b, tt.op)
			got := r.DeviceRects()
			if len(got) != len(tt.rects) {
				t.Fatalf("DeviceRects() = %v, want %v", got, tt.rects)
			}
			for i := range got {
				if got[i] != tt.rects[i] {
					t.Errorf("rect %d = %v, want %v", i, got[i], tt.rects[i])
				}
			}
		})
	}
}

func TestBandsAreCanonical(t *testing.T) {
	// Two stacked halves must equal one rectangle.
	r := FromRect(NewRect(0, 0, 10, 5), 1)
	r.Union(NewRect(0, 5, 10, 5))
	if !r.Equal(FromRect(NewRect(0, 0, 10, 10), 1)) {
		t.Errorf("stacked halves = %v, want single rect", r)
	}
	if n := len(r.DeviceRects()); n != 1 {
		t.Errorf("DeviceRects() has %d rects, want 1", n)
	}
}

func TestContains(t *testing.T) {
	r := sampleRegions()["holed"] // 0..50 minus 10..30, scale 2

	pts := []struct {
		x, y float64
		want Containment
	}{
		{1, 1, Inside},
		{20, 20, Outside},
		{49.9, 49.9, Inside},
		{50, 50, Outside},
		{-1, 5, Outside},
	}
	for _, p := range pts {
		if got := r.ContainsPoint(p.x, p.y); got != p.want {
			t.Errorf("ContainsPoint(%g, %g) = %v, want %v", p.x, p.y, got, p.want)
		}
	}

	rects := []struct {
		rect Rect
		want Containment
	}{
		{NewRect(0, 0, 10, 50), Inside},
		{NewRect(0, 0, 20, 20), Outside}, // overlaps the hole
		{NewRect(12, 12, 5, 5), Outside},
		{NewRect(0, 0, 0, 0), Outside},
	}
	for _, rc := range rects {
		if got := r.ContainsRect(rc.rect); got != rc.want {
			t.Errorf("ContainsRect(%+v) = %v, want %v", rc.rect, got, rc.want)
		}
	}
}

func TestCombineBackends(t *testing.T) {
	a := NewForBackend("software", 1)
	a.Union(NewRect(0, 0, 10, 10))
	b := NewForBackend("gpu", 1)
	b.Union(NewRect(0, 0, 10, 10))

	if err := a.Combine(b, Union); !errors.Is(err, ErrIncompatible) {
		t.Errorf("Combine across backends: err = %v, want ErrIncompatible", err)
	}
	if err := a.Combine(nil, Union); !errors.Is(err, ErrIncompatible) {
		t.Errorf("Combine(nil): err = %v, want ErrIncompatible", err)
	}
}

func TestCombineConvertsScale(t *testing.T) {
	a := FromRect(NewRect(0, 0, 10, 10), 2)
	b := FromRect(NewRect(5, 5, 10, 10), 1)
	if err := a.Combine(b, Intersect); err != nil {
		t.Fatal(err)
	}
	if got, want := a.DeviceBounds(), image.Rect(10, 10, 20, 20); got != want {
		t.Errorf("DeviceBounds() = %v, want %v", got, want)
	}
}

func TestOffsetAndClear(t *testing.T) {
	r := FromRect(NewRect(0, 0, 10, 10), 2)
	r.Offset(5, -1)
	if got, want := r.DeviceBounds(), image.Rect(10, -2, 30, 18); got != want {
		t.Errorf("DeviceBounds() after Offset = %v, want %v", got, want)
	}
	c := r.Clone()
	r.Clear()
	if !r.IsEmpty() || c.IsEmpty() {
		t.Error("Clear must not affect clones")
	}
}

func TestFromPolygon(t *testing.T) {
	sq := FromPolygon([]Point{{2, 2}, {12, 2}, {12, 8}, {2, 8}}, 1)
	if !sq.Equal(FromRect(NewRect(2, 2, 10, 6), 1)) {
		t.Errorf("axis-aligned polygon = %v, want rect", sq)
	}

	tri := sampleRegions()["triangle"]
	if tri.ContainsPoint(2, 2) != Inside {
		t.Error("triangle should contain (2, 2)")
	}
	if tri.ContainsPoint(25, 25) != Outside {
		t.Error("triangle should not contain (25, 25)")
	}
	if !FromPolygon([]Point{{0, 0}, {1, 1}}, 1).IsEmpty() {
		t.Error("degenerate polygon should be empty")
	}
}

func TestImage(t *testing.T) {
	r := sampleRegions()["l-shape"]
	img := r.Image(colors.FromKnown(colors.Red))
	if img.Bounds() != r.DeviceBounds() {
		t.Fatalf("Bounds() = %v, want %v", img.Bounds(), r.DeviceBounds())
	}
	if got := img.RGBAAt(1, 1); got.R != 0xFF || got.A != 0xFF {
		t.Errorf("covered pixel = %v, want red", got)
	}
	if got := img.RGBAAt(30, 30); got.A != 0 {
		t.Errorf("uncovered pixel = %v, want transparent", got)
	}
}
