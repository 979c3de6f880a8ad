package gdi

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/gdi/surface"
)

// clipRects returns the target rectangles drawing may touch.
func (c *Canvas) clipRects() []image.Rectangle {
	target := c.surface.Target()
	if target == nil {
		return nil
	}
	b := target.Bounds()
	if c.clip == nil {
		return []image.Rectangle{b}
	}
	rects := c.clip.DeviceRects()
	out := rects[:0]
	for _, r := range rects {
		if r = r.Intersect(b); !r.Empty() {
			out = append(out, r)
		}
	}
	return out
}

// clipBounds returns the bounding box of clipRects.
func (c *Canvas) clipBounds() image.Rectangle {
	target := c.surface.Target()
	if target == nil {
		return image.Rectangle{}
	}
	b := target.Bounds()
	if c.clip == nil {
		return b
	}
	return c.clip.DeviceBounds().Intersect(b)
}

// transformPoints maps pts through m into a new slice.
func transformPoints(m Matrix, pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// deviceBox returns the pixel rectangle covering pts.
func deviceBox(pts ...[]Point) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range pts {
		for _, p := range poly {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if minX > maxX || math.IsNaN(minX) || math.IsNaN(minY) {
		return image.Rectangle{}
	}
	const lim = 1 << 28
	clampf := func(v float64) int { return int(math.Max(-lim, math.Min(lim, v))) }
	return image.Rect(
		clampf(math.Floor(minX)), clampf(math.Floor(minY)),
		clampf(math.Ceil(maxX)), clampf(math.Ceil(maxY)),
	)
}

// coverage rasterizes device-space polygons with the non-zero rule into an
// alpha mask whose Rect lies in target pixels. It returns nil when nothing
// inside the clip is covered. Without antialiasing the mask is thresholded
// at half coverage.
func (c *Canvas) coverage(polys [][]Point, aa bool) *image.Alpha {
	box := deviceBox(polys...).Intersect(c.clipBounds())
	if box.Empty() {
		return nil
	}

	w, h := box.Dx(), box.Dy()
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	ras := vector.NewRasterizer(w, h)
	drawn := false
	for _, poly := range polys {
		poly = clipPolygon(poly, ox-1, oy-1, ox+float64(w)+1, oy+float64(h)+1)
		if len(poly) < 3 {
			continue
		}
		ras.MoveTo(float32(poly[0].X-ox), float32(poly[0].Y-oy))
		for _, p := range poly[1:] {
			ras.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		ras.ClosePath()
		drawn = true
	}
	if !drawn {
		return nil
	}

	// The rasterizer's fast path wants a zero-origin destination; the mask
	// is moved to target coordinates afterwards.
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = box

	if !aa {
		threshold(mask)
	}
	return mask
}

// threshold snaps coverage to 0 or 255.
func threshold(mask *image.Alpha) {
	for i, v := range mask.Pix {
		if v >= 0x80 {
			mask.Pix[i] = 0xFF
		} else {
			mask.Pix[i] = 0
		}
	}
}

// clipPolygon clips poly to the rectangle [x0,x1]x[y0,y1] with the
// Sutherland-Hodgman algorithm. Coverage inside the rectangle is kept.
func clipPolygon(poly []Point, x0, y0, x1, y1 float64) []Point {
	inside := true
	for _, p := range poly {
		if p.X < x0 || p.X > x1 || p.Y < y0 || p.Y > y1 {
			inside = false
			break
		}
	}
	if inside {
		return poly
	}

	edges := []struct {
		in    func(Point) bool
		cross func(a, b Point) Point
	}{
		{func(p Point) bool { return p.X >= x0 }, func(a, b Point) Point { return atX(a, b, x0) }},
		{func(p Point) bool { return p.X <= x1 }, func(a, b Point) Point { return atX(a, b, x1) }},
		{func(p Point) bool { return p.Y >= y0 }, func(a, b Point) Point { return atY(a, b, y0) }},
		{func(p Point) bool { return p.Y <= y1 }, func(a, b Point) Point { return atY(a, b, y1) }},
	}
	out := poly
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]Point, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.in(cur) && e.in(prev):
				out = append(out, cur)
			case e.in(cur):
				out = append(out, e.cross(prev, cur), cur)
			case e.in(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func atX(a, b Point, x float64) Point {
	t := (x - a.X) / (b.X - a.X)
	return Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func atY(a, b Point, y float64) Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return Point{X: a.X + t*(b.X-a.X), Y: y}
}

// composite draws src through mask onto every clip rectangle.
func (c *Canvas) composite(mask *image.Alpha, src image.Image, op draw.Op) {
	target := c.surface.Target()
	for _, r := range c.clipRects() {
		r = r.Intersect(mask.Rect)
		if r.Empty() {
			continue
		}
		draw.DrawMask(target, r, src, r.Min, mask, r.Min, op)
		c.markDirty(r)
	}
}

// fillDevice rasterizes device polygons and paints them with src.
func (c *Canvas) fillDevice(polys [][]Point, src image.Image, aa bool) {
	if mask := c.coverage(polys, aa); mask != nil {
		c.composite(mask, src, draw.Over)
	}
}

// fillRect fills the device rectangle r with src, ignoring antialiasing.
func (c *Canvas) fillRect(r image.Rectangle, src image.Image, op draw.Op) {
	target := c.surface.Target()
	for _, cr := range c.clipRects() {
		cr = cr.Intersect(r)
		if cr.Empty() {
			continue
		}
		draw.Draw(target, cr, src, cr.Min, op)
		c.markDirty(cr)
	}
}

// drawMaskTransformed maps a mask in its own pixel space through t into
// target pixels and paints src through it.
func (c *Canvas) drawMaskTransformed(mask *image.Alpha, t Matrix, src image.Image) {
	if t.IsTranslation() {
		off := image.Pt(int(math.Round(t.C)), int(math.Round(t.F)))
		moved := *mask
		moved.Rect = mask.Rect.Add(off)
		c.composite(&moved, src, draw.Over)
		return
	}

	b := mask.Rect
	corners := transformPoints(t, []Point{
		{float64(b.Min.X), float64(b.Min.Y)}, {float64(b.Max.X), float64(b.Min.Y)},
		{float64(b.Max.X), float64(b.Max.Y)}, {float64(b.Min.X), float64(b.Max.Y)},
	})
	box := deviceBox(corners).Intersect(c.clipBounds())
	if box.Empty() {
		return
	}
	dst := image.NewAlpha(box)
	xdraw.BiLinear.Transform(dst, t.Aff3(), mask, mask.Rect, xdraw.Over, nil)
	if !c.antialias {
		threshold(dst)
	}
	c.composite(dst, src, draw.Over)
}

// drawImageTransformed maps src pixels in sr through t into target pixels.
func (c *Canvas) drawImageTransformed(src image.Image, sr image.Rectangle, t Matrix) {
	target := c.surface.Target()
	b := sr
	corners := transformPoints(t, []Point{
		{float64(b.Min.X), float64(b.Min.Y)}, {float64(b.Max.X), float64(b.Min.Y)},
		{float64(b.Max.X), float64(b.Max.Y)}, {float64(b.Min.X), float64(b.Max.Y)},
	})
	box := deviceBox(corners)

	if t.IsTranslation() && isIntegral(t.C) && isIntegral(t.F) {
		off := image.Pt(int(t.C), int(t.F))
		for _, r := range c.clipRects() {
			r = r.Intersect(sr.Add(off))
			if r.Empty() {
				continue
			}
			draw.Draw(target, r, src, r.Min.Sub(off), draw.Over)
			c.markDirty(r)
		}
		return
	}

	interp := c.interp.interpolator()
	for _, r := range c.clipRects() {
		r = r.Intersect(box)
		if r.Empty() {
			continue
		}
		interp.Transform(subImage(target, r), t.Aff3(), src, sr, xdraw.Over, nil)
		c.markDirty(r)
	}
}

func isIntegral(v float64) bool {
	return math.Abs(v-math.Round(v)) < 1e-9
}

// subImage restricts dst to r, keeping the concrete type where the draw
// packages have fast paths for it.
func subImage(dst draw.Image, r image.Rectangle) draw.Image {
	switch d := dst.(type) {
	case *image.RGBA:
		return d.SubImage(r).(*image.RGBA)
	case *image.NRGBA:
		return d.SubImage(r).(*image.NRGBA)
	case *surface.Pixels:
		return d.Sub(r)
	}
	return &boundedImage{Image: dst, r: r.Intersect(dst.Bounds())}
}

// boundedImage narrows the bounds of a draw.Image.
type boundedImage struct {
	draw.Image
	r image.Rectangle
}

func (b *boundedImage) Bounds() image.Rectangle { return b.r }
