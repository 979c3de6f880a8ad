// Package region implements pixel regions with boolean set algebra, used
// by gdi for clipping and hit-testing.
//
// A Region stores device pixels. Every operation that takes logical
// coordinates converts them with the region's scale factor first: the
// minimum edge is floored and the maximum edge ceiled, so a logical
// rectangle always covers every device pixel it touches.
package region

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"
	"sort"

	"github.com/gogpu/gdi/colors"
	"github.com/gogpu/gdi/internal/glog"
)

// ErrIncompatible is returned when combining regions created by different
// drawing backends.
var ErrIncompatible = errors.New("region: incompatible region backends")

// ErrInvalidOperation is returned for an Operation outside Union..Xor.
var ErrInvalidOperation = errors.New("region: invalid operation")

// Operation is a boolean set operation.
type Operation uint8

const (
	// Union keeps pixels covered by either operand.
	Union Operation = iota

	// Intersect keeps pixels covered by both operands.
	Intersect

	// Subtract keeps pixels of the receiver not covered by the argument.
	Subtract

	// Xor keeps pixels covered by exactly one operand.
	Xor
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case Union:
		return "Union"
	case Intersect:
		return "Intersect"
	case Subtract:
		return "Subtract"
	case Xor:
		return "Xor"
	default:
		return fmt.Sprintf("Operation(%d)", op)
	}
}

func (op Operation) valid() bool { return op <= Xor }

// Containment is the result of a containment query.
type Containment uint8

const (
	// Outside means the point or rectangle is not (fully) covered.
	Outside Containment = iota

	// Partial is reserved for partial overlap. Queries do not report it;
	// a rectangle that is not entirely covered is Outside.
	Partial

	// Inside means the point or every pixel of the rectangle is covered.
	Inside
)

// String returns the containment name.
func (c Containment) String() string {
	switch c {
	case Outside:
		return "Outside"
	case Partial:
		return "Partial"
	case Inside:
		return "Inside"
	default:
		return fmt.Sprintf("Containment(%d)", c)
	}
}

// Rect is a rectangle in logical pixels.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Point is a point in logical pixels.
type Point struct {
	X, Y float64
}

// Region is a mutable set of device pixels with a logical scale factor
// and the name of the backend that created it.
//
// A Region is not safe for concurrent mutation.
type Region struct {
	bands   []band
	scale   float64
	backend string
}

// New returns an empty region for the generic backend.
func New(scale float64) *Region {
	return NewForBackend("", scale)
}

// NewForBackend returns an empty region tagged with backend. Regions only
// combine with regions of the same backend. A non-positive scale is
// treated as 1.
func NewForBackend(backend string, scale float64) *Region {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return &Region{scale: scale, backend: backend}
}

// FromRect returns a region covering the logical rectangle r.
func FromRect(r Rect, scale float64) *Region {
	rg := New(scale)
	rg.bands = deviceBands(rg.toDevice(r))
	return rg
}

// FromDeviceRect returns a region covering the device rectangle r.
func FromDeviceRect(r image.Rectangle, scale float64) *Region {
	rg := New(scale)
	rg.bands = deviceBands(r)
	return rg
}

func deviceBands(r image.Rectangle) []band {
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	return []band{{y0: r.Min.Y, y1: r.Max.Y, spans: []span{{x0: r.Min.X, x1: r.Max.X}}}}
}

// toDevice converts a logical rectangle, flooring the minimum and ceiling
// the maximum edge.
func (r *Region) toDevice(lr Rect) image.Rectangle {
	if lr.IsEmpty() {
		return image.Rectangle{}
	}
	s := r.scale
	return image.Rect(
		int(math.Floor(lr.X*s)),
		int(math.Floor(lr.Y*s)),
		int(math.Ceil((lr.X+lr.W)*s)),
		int(math.Ceil((lr.Y+lr.H)*s)),
	)
}

func (r *Region) toLogical(dr image.Rectangle) Rect {
	s := r.scale
	return Rect{
		X: float64(dr.Min.X) / s,
		Y: float64(dr.Min.Y) / s,
		W: float64(dr.Dx()) / s,
		H: float64(dr.Dy()) / s,
	}
}

// Scale returns the logical-to-device scale factor.
func (r *Region) Scale() float64 { return r.scale }

// Backend returns the name of the backend that created r.
func (r *Region) Backend() string { return r.backend }

// IsEmpty reports whether r covers no pixels.
func (r *Region) IsEmpty() bool { return len(r.bands) == 0 }

// Clear removes every pixel from r.
func (r *Region) Clear() { r.bands = nil }

// Clone returns an independent copy of r.
func (r *Region) Clone() *Region {
	return &Region{bands: cloneBands(r.bands), scale: r.scale, backend: r.backend}
}

// Equal reports whether r and o cover the same device pixels at the same
// scale.
func (r *Region) Equal(o *Region) bool {
	if o == nil {
		return false
	}
	return r.scale == o.scale && equalBands(r.bands, o.bands)
}

// Op combines r with the logical rectangle rect. An invalid op leaves r
// unchanged and logs a warning.
func (r *Region) Op(rect Rect, op Operation) {
	if !op.valid() {
		glog.L().Warn("region: invalid operation ignored", "op", op)
		return
	}
	r.bands = combineBands(r.bands, deviceBands(r.toDevice(rect)), op)
}

// OpDevice combines r with the device rectangle rect.
func (r *Region) OpDevice(rect image.Rectangle, op Operation) {
	if !op.valid() {
		glog.L().Warn("region: invalid operation ignored", "op", op)
		return
	}
	r.bands = combineBands(r.bands, deviceBands(rect), op)
}

// Union adds the logical rectangle rect to r.
func (r *Region) Union(rect Rect) { r.Op(rect, Union) }

// Intersect restricts r to the logical rectangle rect.
func (r *Region) Intersect(rect Rect) { r.Op(rect, Intersect) }

// Subtract removes the logical rectangle rect from r.
func (r *Region) Subtract(rect Rect) { r.Op(rect, Subtract) }

// Xor toggles the pixels of the logical rectangle rect.
func (r *Region) Xor(rect Rect) { r.Op(rect, Xor) }

// Combine applies op with o as the right operand. Regions from different
// backends cannot be combined, and an invalid op returns
// ErrInvalidOperation with r unchanged. When the scale factors differ, o is
// converted through logical coordinates first.
func (r *Region) Combine(o *Region, op Operation) error {
	if !op.valid() {
		return fmt.Errorf("%w: %v", ErrInvalidOperation, op)
	}
	if o == nil {
		return fmt.Errorf("%w: nil region", ErrIncompatible)
	}
	if o.backend != r.backend {
		return fmt.Errorf("%w: %q and %q", ErrIncompatible, r.backend, o.backend)
	}
	other := o.bands
	if o.scale != r.scale {
		var conv []band
		for _, dr := range o.DeviceRects() {
			conv = combineBands(conv, deviceBands(r.toDevice(o.toLogical(dr))), Union)
		}
		other = conv
	}
	r.bands = combineBands(r.bands, other, op)
	return nil
}

// Offset moves r by (dx, dy) logical pixels, rounded to device pixels.
func (r *Region) Offset(dx, dy float64) {
	ox := int(math.Round(dx * r.scale))
	oy := int(math.Round(dy * r.scale))
	if ox == 0 && oy == 0 {
		return
	}
	for i := range r.bands {
		bd := &r.bands[i]
		bd.y0 += oy
		bd.y1 += oy
		for j := range bd.spans {
			bd.spans[j].x0 += ox
			bd.spans[j].x1 += ox
		}
	}
}

// ContainsPoint reports whether the device pixel holding the logical point
// (x, y) is covered.
func (r *Region) ContainsPoint(x, y float64) Containment {
	px := int(math.Floor(x * r.scale))
	py := int(math.Floor(y * r.scale))

	i := sort.Search(len(r.bands), func(i int) bool { return r.bands[i].y1 > py })
	if i == len(r.bands) || r.bands[i].y0 > py {
		return Outside
	}
	spans := r.bands[i].spans
	j := sort.Search(len(spans), func(j int) bool { return spans[j].x1 > px })
	if j < len(spans) && spans[j].x0 <= px {
		return Inside
	}
	return Outside
}

// ContainsRect reports Inside when every device pixel of the logical
// rectangle rect is covered, Outside otherwise.
func (r *Region) ContainsRect(rect Rect) Containment {
	want := deviceBands(r.toDevice(rect))
	if want == nil {
		return Outside
	}
	if equalBands(combineBands(want, r.bands, Intersect), want) {
		return Inside
	}
	return Outside
}

// DeviceBounds returns the smallest device rectangle containing r.
func (r *Region) DeviceBounds() image.Rectangle {
	if len(r.bands) == 0 {
		return image.Rectangle{}
	}
	first, last := r.bands[0], r.bands[len(r.bands)-1]
	b := image.Rectangle{
		Min: image.Pt(first.spans[0].x0, first.y0),
		Max: image.Pt(first.spans[len(first.spans)-1].x1, last.y1),
	}
	for _, bd := range r.bands[1:] {
		b.Min.X = min(b.Min.X, bd.spans[0].x0)
		b.Max.X = max(b.Max.X, bd.spans[len(bd.spans)-1].x1)
	}
	return b
}

// Bounds returns the bounding box of r in logical pixels.
func (r *Region) Bounds() Rect {
	if len(r.bands) == 0 {
		return Rect{}
	}
	return r.toLogical(r.DeviceBounds())
}

// DeviceRects returns the disjoint device rectangles making up r, in
// y-then-x order.
func (r *Region) DeviceRects() []image.Rectangle {
	var out []image.Rectangle
	for _, bd := range r.bands {
		for _, s := range bd.spans {
			out = append(out, image.Rect(s.x0, bd.y0, s.x1, bd.y1))
		}
	}
	return out
}

// Rects returns the disjoint rectangles making up r in logical pixels.
func (r *Region) Rects() []Rect {
	dev := r.DeviceRects()
	out := make([]Rect, len(dev))
	for i, dr := range dev {
		out[i] = r.toLogical(dr)
	}
	return out
}

// Image renders r for debugging: covered pixels are painted with fill on a
// transparent image whose bounds equal DeviceBounds.
func (r *Region) Image(fill colors.Color) *image.RGBA {
	img := image.NewRGBA(r.DeviceBounds())
	src := image.NewUniform(fill)
	for _, dr := range r.DeviceRects() {
		draw.Draw(img, dr, src, image.Point{}, draw.Src)
	}
	return img
}

// String returns a short description for logs.
func (r *Region) String() string {
	return fmt.Sprintf("region{backend=%q scale=%g bounds=%v rects=%d}",
		r.backend, r.scale, r.DeviceBounds(), len(r.DeviceRects()))
}
