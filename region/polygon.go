package region

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// coverageThreshold selects pixels whose centre lies inside the polygon.
const coverageThreshold = 0x80

// FromPolygon returns the region covered by the closed polygon pts (in
// logical pixels) under the nonzero winding rule.
func FromPolygon(pts []Point, scale float64) *Region {
	rg := New(scale)
	if len(pts) < 3 {
		return rg
	}
	rg.bands = polygonBands(pts, rg.scale)
	return rg
}

// UnionPolygon adds the polygon pts (logical pixels) to r.
func (r *Region) UnionPolygon(pts []Point) {
	if len(pts) < 3 {
		return
	}
	r.bands = combineBands(r.bands, polygonBands(pts, r.scale), Union)
}

func polygonBands(pts []Point, scale float64) []band {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		x, y := p.X*scale, p.Y*scale
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	b := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	if b.Empty() {
		return nil
	}

	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	ras.MoveTo(float32(pts[0].X*scale-ox), float32(pts[0].Y*scale-oy))
	for _, p := range pts[1:] {
		ras.LineTo(float32(p.X*scale-ox), float32(p.Y*scale-oy))
	}
	ras.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return maskBands(mask, b.Min, coverageThreshold)
}

// maskBands converts an alpha mask into bands. Row y of Pix maps to
// device row origin.Y+y. Pixels with coverage >= threshold are included.
func maskBands(mask *image.Alpha, origin image.Point, threshold uint8) []band {
	var out []band
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		var spans []span
		for x := 0; x < w; {
			if row[x] < threshold {
				x++
				continue
			}
			x0 := x
			for x < w && row[x] >= threshold {
				x++
			}
			spans = append(spans, span{x0: x0 + origin.X, x1: x + origin.X})
		}
		if len(spans) == 0 {
			continue
		}
		out = appendBand(out, band{y0: y + origin.Y, y1: y + origin.Y + 1, spans: spans})
	}
	return out
}

// FromMask returns the region of pixels in mask with coverage at least
// threshold. Mask coordinates are device pixels.
func FromMask(mask *image.Alpha, threshold uint8, scale float64) *Region {
	rg := New(scale)
	if threshold == 0 {
		threshold = 1
	}
	rg.bands = maskBands(mask, mask.Rect.Min, threshold)
	return rg
}
