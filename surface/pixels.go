// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

// Errors returned when wrapping raw pixel memory.
var (
	// ErrInvalidDimensions is returned for non-positive width or height.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrInvalidFormat is returned for an unknown pixel format.
	ErrInvalidFormat = errors.New("surface: invalid format")

	// ErrInvalidStride is returned when a row is shorter than width pixels.
	ErrInvalidStride = errors.New("surface: stride too small for width")

	// ErrDataTooSmall is returned when the buffer cannot hold every row.
	ErrDataTooSmall = errors.New("surface: data buffer too small")
)

// Pixels is a 32-bit pixel buffer in any Format. Row y starts at
// Pix[(y-Rect.Min.Y)*Stride]; Stride is always positive. Bottom-up native
// buffers are described by the owning Surface's Orientation, not by a
// negative stride.
//
// Pixels implements draw.Image. Reading and writing through At/Set
// converts between the buffer's layout and image/color values.
type Pixels struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
	Format Format
}

// Verify Pixels implements draw.Image.
var _ draw.Image = (*Pixels)(nil)

// NewPixels allocates a zeroed w×h buffer.
func NewPixels(w, h int, f Format) *Pixels {
	w, h = max(w, 0), max(h, 0)
	return &Pixels{
		Pix:    make([]byte, 4*w*h),
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
		Format: f,
	}
}

// WrapPixels creates a Pixels view over existing memory without copying.
func WrapPixels(data []byte, stride, w, h int, f Format) (*Pixels, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !f.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < 4*w {
		return nil, ErrInvalidStride
	}
	need := stride*(h-1) + 4*w
	if len(data) < need {
		return nil, ErrDataTooSmall
	}
	return &Pixels{
		Pix:    data[:need],
		Stride: stride,
		Rect:   image.Rect(0, 0, w, h),
		Format: f,
	}, nil
}

// Width returns the buffer width in pixels.
func (p *Pixels) Width() int { return p.Rect.Dx() }

// Height returns the buffer height in pixels.
func (p *Pixels) Height() int { return p.Rect.Dy() }

// Empty reports whether the buffer has no pixels.
func (p *Pixels) Empty() bool { return p == nil || p.Rect.Empty() }

// ColorModel implements image.Image.
func (p *Pixels) ColorModel() color.Model {
	if p.Format.Alpha == AlphaStraight {
		return color.NRGBAModel
	}
	return color.RGBAModel
}

// Bounds implements image.Image.
func (p *Pixels) Bounds() image.Rectangle { return p.Rect }

// PixOffset returns the index of the first byte of pixel (x, y).
func (p *Pixels) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

// At implements image.Image.
func (p *Pixels) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		if p.Format.Alpha == AlphaStraight {
			return color.NRGBA{}
		}
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	fi := p.Format.Info()
	s := p.Pix[i : i+4 : i+4]
	switch p.Format.Alpha {
	case AlphaStraight:
		return color.NRGBA{R: s[fi.R], G: s[fi.G], B: s[fi.B], A: s[fi.A]}
	case AlphaIgnored:
		return color.RGBA{R: s[fi.R], G: s[fi.G], B: s[fi.B], A: 0xFF}
	default:
		return color.RGBA{R: s[fi.R], G: s[fi.G], B: s[fi.B], A: s[fi.A]}
	}
}

// Set implements draw.Image.
func (p *Pixels) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	if p.Format.Alpha == AlphaStraight {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		p.store(i, n.R, n.G, n.B, n.A)
		return
	}
	r := color.RGBAModel.Convert(c).(color.RGBA)
	if p.Format.Alpha == AlphaIgnored {
		r.A = 0xFF
	}
	p.store(i, r.R, r.G, r.B, r.A)
}

// store writes channels already in p's alpha layout.
func (p *Pixels) store(i int, r, g, b, a uint8) {
	fi := p.Format.Info()
	s := p.Pix[i : i+4 : i+4]
	s[fi.R], s[fi.G], s[fi.B], s[fi.A] = r, g, b, a
}

// loadPremul reads pixel i as premultiplied RGBA.
func (p *Pixels) loadPremul(i int) (r, g, b, a uint8) {
	fi := p.Format.Info()
	s := p.Pix[i : i+4 : i+4]
	r, g, b, a = s[fi.R], s[fi.G], s[fi.B], s[fi.A]
	switch p.Format.Alpha {
	case AlphaStraight:
		r, g, b = premul(r, a), premul(g, a), premul(b, a)
	case AlphaIgnored:
		a = 0xFF
	}
	return r, g, b, a
}

// storePremul writes premultiplied RGBA into pixel i.
func (p *Pixels) storePremul(i int, r, g, b, a uint8) {
	switch p.Format.Alpha {
	case AlphaStraight:
		r, g, b = unpremul(r, a), unpremul(g, a), unpremul(b, a)
	case AlphaIgnored:
		a = 0xFF
	}
	p.store(i, r, g, b, a)
}

func premul(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}

func unpremul(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	if c >= a {
		return 0xFF
	}
	return uint8((uint32(c)*255 + uint32(a)/2) / uint32(a))
}

// StdImage returns a standard library view sharing p's memory when the
// layout allows one: *image.RGBA for premultiplied RGBA and *image.NRGBA
// for straight RGBA. Other layouts return nil.
func (p *Pixels) StdImage() draw.Image {
	if p.Format.Order != OrderRGBA {
		return nil
	}
	switch p.Format.Alpha {
	case AlphaPremultiplied:
		return &image.RGBA{Pix: p.Pix, Stride: p.Stride, Rect: p.Rect}
	case AlphaStraight:
		return &image.NRGBA{Pix: p.Pix, Stride: p.Stride, Rect: p.Rect}
	}
	return nil
}

// DrawTarget returns the fastest draw.Image view of p: the StdImage view
// when one exists, p itself otherwise.
func (p *Pixels) DrawTarget() draw.Image {
	if img := p.StdImage(); img != nil {
		return img
	}
	return p
}

// Sub returns a view of the part of p inside r, sharing memory.
func (p *Pixels) Sub(r image.Rectangle) *Pixels {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &Pixels{Format: p.Format, Stride: p.Stride}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &Pixels{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
		Format: p.Format,
	}
}

// ConvertTo copies the pixels of p that overlap dst into dst, converting
// channel order and alpha layout. Identical layouts copy whole rows.
func (p *Pixels) ConvertTo(dst *Pixels) {
	r := p.Rect.Intersect(dst.Rect)
	if r.Empty() {
		return
	}
	n := r.Dx() * 4
	if p.Format == dst.Format {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			si, di := p.PixOffset(r.Min.X, y), dst.PixOffset(r.Min.X, y)
			copy(dst.Pix[di:di+n], p.Pix[si:si+n])
		}
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si, di := p.PixOffset(r.Min.X, y), dst.PixOffset(r.Min.X, y)
		for x := 0; x < n; x += 4 {
			cr, cg, cb, ca := p.loadPremul(si + x)
			dst.storePremul(di+x, cr, cg, cb, ca)
		}
	}
}

// Clone returns a compact deep copy of p with the same bounds and format.
func (p *Pixels) Clone() *Pixels {
	c := &Pixels{
		Pix:    make([]byte, 4*p.Rect.Dx()*p.Rect.Dy()),
		Stride: 4 * p.Rect.Dx(),
		Rect:   p.Rect,
		Format: p.Format,
	}
	p.ConvertTo(c)
	return c
}

// Opaque reports whether every pixel is fully opaque.
func (p *Pixels) Opaque() bool {
	if p.Format.Alpha == AlphaIgnored || p.Rect.Empty() {
		return true
	}
	a := p.Format.Info().A
	w := p.Rect.Dx() * 4
	for y := 0; y < p.Rect.Dy(); y++ {
		row := p.Pix[y*p.Stride : y*p.Stride+w]
		for x := a; x < w; x += 4 {
			if row[x] != 0xFF {
				return false
			}
		}
	}
	return true
}

// Clear sets every pixel to transparent black (opaque black for
// AlphaIgnored layouts).
func (p *Pixels) Clear() {
	w := p.Rect.Dx() * 4
	for y := 0; y < p.Rect.Dy(); y++ {
		row := p.Pix[y*p.Stride : y*p.Stride+w]
		clear(row)
		if p.Format.Alpha == AlphaIgnored {
			a := p.Format.Info().A
			for x := a; x < w; x += 4 {
				row[x] = 0xFF
			}
		}
	}
}
