package gdi

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gdi/surface"
)

// Bitmap depths. Pixels are always stored with 32 bits.
const (
	// DefaultDepth creates an opaque bitmap.
	DefaultDepth = -1
	// DepthRGB creates an opaque bitmap.
	DepthRGB = 24
	// DepthARGB creates a bitmap with an alpha channel.
	DepthARGB = 32
)

// DefaultDisabledBrightness is the gray level ConvertToDisabled blends
// toward by default.
const DefaultDisabledBrightness = 255

// errCopy is logged when a pixel copy cannot run.
var errCopy = errors.New("gdi: pixel copy failed")

// Bitmap is an owned image in premultiplied RGBA with an alpha flag and a
// scale factor. A bitmap without alpha keeps every pixel opaque.
//
// Failed operations leave a bitmap valid: a failed decode yields an empty
// bitmap, a failed rescale or alpha change keeps the old pixels.
type Bitmap struct {
	pix      *surface.Pixels
	hasAlpha bool
	scale    float64
}

// NewBitmap returns an opaque black w x h bitmap.
func NewBitmap(w, h int) *Bitmap {
	return NewBitmapWithDepth(w, h, DefaultDepth)
}

// NewBitmapWithDepth returns a w x h bitmap. DepthARGB gives a transparent
// bitmap with alpha, DefaultDepth and DepthRGB an opaque black one. Other
// depths are stored as 32 bits with alpha, and a warning is logged.
func NewBitmapWithDepth(w, h, depth int) *Bitmap {
	switch depth {
	case DefaultDepth, DepthRGB, DepthARGB:
	default:
		Logger().Warn("gdi: unsupported bitmap depth, using 32", "depth", depth)
		depth = DepthARGB
	}
	b := &Bitmap{
		pix:      surface.NewPixels(w, h, surface.FormatRGBAPremul),
		hasAlpha: depth == DepthARGB,
		scale:    1,
	}
	if !b.hasAlpha {
		makeOpaque(b.pix)
	}
	return b
}

// NewBitmapFromImage copies img. The alpha flag follows the image type:
// formats that carry alpha set it, formats that cannot hold alpha never
// do, and generic RGBA images set it only when some pixel is translucent.
func NewBitmapFromImage(img image.Image) *Bitmap {
	b := &Bitmap{scale: 1}
	if img == nil {
		b.pix = surface.NewPixels(0, 0, surface.FormatRGBAPremul)
		return b
	}
	b.pix = pixelsFromRGBA(clone.AsRGBA(img))
	b.hasAlpha = imageHasAlpha(img)
	if !b.hasAlpha {
		makeOpaque(b.pix)
	}
	return b
}

// pixelsFromRGBA adopts a compact RGBA buffer, moving its origin to (0, 0).
func pixelsFromRGBA(img *image.RGBA) *surface.Pixels {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	return &surface.Pixels{
		Pix:    img.Pix,
		Stride: img.Stride,
		Rect:   image.Rect(0, 0, w, h),
		Format: surface.FormatRGBAPremul,
	}
}

// imageHasAlpha decides the alpha flag for a decoded or supplied image.
func imageHasAlpha(img image.Image) bool {
	switch m := img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA, *image.Alpha, *image.Alpha16:
		return true
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		return false
	case interface{ Opaque() bool }:
		return !m.Opaque()
	}
	return true
}

// makeOpaque composites p over black in place.
func makeOpaque(p *surface.Pixels) {
	w := p.Width() * 4
	for y := 0; y < p.Height(); y++ {
		row := p.Pix[y*p.Stride : y*p.Stride+w]
		for x := 3; x < w; x += 4 {
			row[x] = 0xFF
		}
	}
}

// IsOk reports whether b holds pixels.
func (b *Bitmap) IsOk() bool {
	return b != nil && !b.pix.Empty()
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int {
	if b == nil || b.pix == nil {
		return 0
	}
	return b.pix.Width()
}

// Height returns the height in pixels.
func (b *Bitmap) Height() int {
	if b == nil || b.pix == nil {
		return 0
	}
	return b.pix.Height()
}

// Size returns the size in pixels.
func (b *Bitmap) Size() (w, h int) { return b.Width(), b.Height() }

// Bounds returns the pixel rectangle, always anchored at (0, 0).
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width(), b.Height())
}

// ScaleFactor returns the pixels per logical pixel.
func (b *Bitmap) ScaleFactor() float64 { return b.scale }

// SetScaleFactor sets the pixels per logical pixel. Non-positive values
// mean 1.
func (b *Bitmap) SetScaleFactor(s float64) {
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		s = 1
	}
	b.scale = s
}

// LogicalSize returns the size in logical pixels.
func (b *Bitmap) LogicalSize() (w, h float64) {
	return float64(b.Width()) / b.scale, float64(b.Height()) / b.scale
}

// HasAlpha reports whether the bitmap carries an alpha channel.
func (b *Bitmap) HasAlpha() bool { return b.hasAlpha }

// SetHasAlpha switches the alpha channel. The pixels are copied into a new
// buffer; dropping alpha composites them over black. If the copy fails
// the old buffer and flag stay and an error is logged, so callers should
// read HasAlpha back.
func (b *Bitmap) SetHasAlpha(on bool) {
	if on == b.hasAlpha {
		return
	}
	if b.pix.Empty() {
		b.hasAlpha = on
		return
	}
	next, err := copyPixels(b.pix)
	if err != nil {
		Logger().Error("gdi: alpha change", "err", err)
		return
	}
	if !on {
		makeOpaque(next)
	}
	b.pix, b.hasAlpha = next, on
}

func copyPixels(p *surface.Pixels) (*surface.Pixels, error) {
	if p == nil || p.Format != surface.FormatRGBAPremul {
		return nil, errCopy
	}
	c := p.Clone()
	if c.Rect.Size() != p.Rect.Size() {
		return nil, fmt.Errorf("%w: %v into %v", errCopy, p.Rect, c.Rect)
	}
	c.Rect = image.Rect(0, 0, c.Rect.Dx(), c.Rect.Dy())
	return c, nil
}

// Depth returns 32.
func (b *Bitmap) Depth() int { return DepthARGB }

// SetDepth is kept for callers that set depths explicitly. Storage is
// always 32 bits; other values are logged and ignored.
func (b *Bitmap) SetDepth(depth int) {
	if depth != DepthARGB {
		Logger().Warn("gdi: unsupported bitmap depth, using 32", "depth", depth)
	}
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{hasAlpha: b.hasAlpha, scale: b.scale}
	if p, err := copyPixels(b.pix); err == nil {
		c.pix = p
	} else {
		c.pix = surface.NewPixels(0, 0, surface.FormatRGBAPremul)
	}
	return c
}

// SubBitmap copies the pixels inside r. A rectangle that is empty or not
// inside the bitmap yields a blank bitmap of the requested size and a
// warning.
func (b *Bitmap) SubBitmap(r image.Rectangle) *Bitmap {
	if r.Empty() || !r.In(b.Bounds()) {
		Logger().Warn("gdi: sub-bitmap out of bounds", "rect", r, "bounds", b.Bounds())
		out := NewBitmapWithDepth(r.Dx(), r.Dy(), DepthARGB)
		out.hasAlpha = b.hasAlpha
		if !out.hasAlpha {
			makeOpaque(out.pix)
		}
		out.scale = b.scale
		return out
	}
	p, err := copyPixels(b.pix.Sub(r))
	if err != nil {
		Logger().Error("gdi: sub-bitmap copy", "err", err)
		return &Bitmap{pix: surface.NewPixels(r.Dx(), r.Dy(), surface.FormatRGBAPremul), hasAlpha: true, scale: b.scale}
	}
	return &Bitmap{pix: p, hasAlpha: b.hasAlpha, scale: b.scale}
}

// Rescale resamples to w x h pixels with bilinear interpolation.
func (b *Bitmap) Rescale(w, h int) bool {
	return b.RescaleWith(w, h, InterpolationBilinear)
}

// RescaleWith resamples to w x h pixels. Rescaling to the current size
// leaves the pixels untouched. On failure the old buffer stays and false
// is returned.
func (b *Bitmap) RescaleWith(w, h int, interp Interpolation) bool {
	if w <= 0 || h <= 0 {
		Logger().Warn("gdi: rescale to empty size", "width", w, "height", h)
		return false
	}
	if w == b.Width() && h == b.Height() {
		return true
	}
	if !b.IsOk() {
		Logger().Warn("gdi: rescale of empty bitmap")
		return false
	}

	src := b.rgba()
	var next *surface.Pixels
	if interp == InterpolationLanczos {
		next = pixelsFromRGBA(transform.Resize(src, w, h, transform.Lanczos))
	} else {
		next = surface.NewPixels(w, h, surface.FormatRGBAPremul)
		interp.interpolator().Scale(next.StdImage(), next.Rect, src, src.Rect, xdraw.Src, nil)
	}
	if next.Width() != w || next.Height() != h {
		Logger().Warn("gdi: rescale failed", "width", w, "height", h)
		return false
	}
	if !b.hasAlpha {
		makeOpaque(next)
	}
	b.pix = next
	return true
}

// ConvertToGreyscale returns a grey copy using luma weights.
func (b *Bitmap) ConvertToGreyscale() *Bitmap {
	return b.mapPixels(func(c color.RGBA) color.RGBA {
		g := luma(c)
		return color.RGBA{R: g, G: g, B: g, A: c.A}
	})
}

// ConvertToDisabled returns a grey copy blended 40% toward the gray level
// brightness, the look of a disabled toolbar icon.
func (b *Bitmap) ConvertToDisabled(brightness uint8) *Bitmap {
	return b.mapPixels(func(c color.RGBA) color.RGBA {
		g := int(luma(c))
		target := int(brightness) * int(c.A) / 0xFF
		g += (target - g) * 2 / 5
		return color.RGBA{R: uint8(g), G: uint8(g), B: uint8(g), A: c.A}
	})
}

// luma weighs premultiplied channels, so the result never exceeds alpha.
func luma(c color.RGBA) uint8 {
	return uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000)
}

func (b *Bitmap) mapPixels(fn func(color.RGBA) color.RGBA) *Bitmap {
	if !b.IsOk() {
		return b.Clone()
	}
	return &Bitmap{
		pix:      pixelsFromRGBA(adjust.Apply(b.rgba(), fn)),
		hasAlpha: b.hasAlpha,
		scale:    b.scale,
	}
}

// Image returns a view of the pixels sharing b's memory.
func (b *Bitmap) Image() image.Image {
	return b.rgba()
}

// At returns the color of pixel (x, y).
func (b *Bitmap) At(x, y int) color.Color {
	return b.rgba().At(x, y)
}

// rgba returns the pixels as *image.RGBA sharing memory.
func (b *Bitmap) rgba() *image.RGBA {
	if b == nil || b.pix == nil {
		return &image.RGBA{}
	}
	return &image.RGBA{Pix: b.pix.Pix, Stride: b.pix.Stride, Rect: b.pix.Rect}
}

// Surface returns a surface drawing into the bitmap's own pixels. The
// bitmap keeps ownership; close the surface before the bitmap.
func (b *Bitmap) Surface() surface.Surface {
	return surface.FromPixels(b.pix, b.scale)
}

// Close releases the pixels, leaving an empty bitmap.
func (b *Bitmap) Close() {
	b.pix = surface.NewPixels(0, 0, surface.FormatRGBAPremul)
	b.hasAlpha = false
}

// reset empties b after a failed load.
func (b *Bitmap) reset() {
	b.Close()
	if b.scale == 0 {
		b.scale = 1
	}
}
