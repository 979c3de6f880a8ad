package gdi

import (
	"fmt"
	"image"

	"github.com/gogpu/gdi/region"
)

// NewRegion returns an empty region tagged with the canvas surface's
// backend and scale, ready for SetClippingRegionFrom.
func (c *Canvas) NewRegion() *region.Region {
	return region.NewForBackend(c.surface.Backend(), c.surface.Scale())
}

// SetClippingRegion intersects the clip with the rectangle (x, y, w, h)
// in user coordinates. Under rotation the clip is the rectangle's
// bounding box in device pixels.
func (c *Canvas) SetClippingRegion(x, y, w, h float64) {
	r := deviceBox(transformPoints(c.device(), []Point{
		{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h},
	}))
	if w <= 0 || h <= 0 {
		r = image.Rectangle{}
	}
	c.intersectClip(r)
}

// SetClippingRegionFrom intersects the clip with rg. The region is in
// top-down device pixels of its own scale; it must come from the same
// backend as the canvas surface or be untagged.
func (c *Canvas) SetClippingRegionFrom(rg *region.Region) error {
	if rg == nil {
		return misuse(fmt.Errorf("%w: nil region", region.ErrIncompatible))
	}
	if b := rg.Backend(); b != "" && b != c.surface.Backend() {
		return misuse(fmt.Errorf("%w: region for %q on %q surface", region.ErrIncompatible, b, c.surface.Backend()))
	}

	clip := c.NewRegion()
	for _, lr := range rg.Rects() {
		clip.OpDevice(deviceBox(transformPoints(c.base, []Point{
			{lr.X, lr.Y}, {lr.X + lr.W, lr.Y + lr.H},
		})), region.Union)
	}
	if c.clip != nil {
		if err := clip.Combine(c.clip, region.Intersect); err != nil {
			return misuse(err)
		}
	}
	c.clip = clip
	return nil
}

func (c *Canvas) intersectClip(r image.Rectangle) {
	if c.clip == nil {
		c.clip = c.NewRegion()
		c.clip.OpDevice(r, region.Union)
		return
	}
	c.clip.OpDevice(r, region.Intersect)
}

// DestroyClippingRegion removes the clip.
func (c *Canvas) DestroyClippingRegion() {
	c.clip = nil
}

// GetClippingBox returns the bounds of the effective clip in user
// coordinates. Without a clip it is the whole surface. An empty clip
// returns zeros.
func (c *Canvas) GetClippingBox() (x, y, w, h float64) {
	var r image.Rectangle
	if c.clip == nil {
		r = image.Rect(0, 0, c.surface.Width(), c.surface.Height())
	} else {
		r = c.clip.DeviceBounds()
	}
	if r.Empty() {
		return 0, 0, 0, 0
	}
	inv := c.device().Invert()
	pts := transformPoints(inv, []Point{
		{float64(r.Min.X), float64(r.Min.Y)}, {float64(r.Max.X), float64(r.Min.Y)},
		{float64(r.Max.X), float64(r.Max.Y)}, {float64(r.Min.X), float64(r.Max.Y)},
	})
	minP, maxP := pts[0], pts[0]
	for _, p := range pts[1:] {
		minP.X, minP.Y = min(minP.X, p.X), min(minP.Y, p.Y)
		maxP.X, maxP.Y = max(maxP.X, p.X), max(maxP.Y, p.Y)
	}
	return minP.X, minP.Y, maxP.X - minP.X, maxP.Y - minP.Y
}
