// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/draw"

	"github.com/gogpu/gdi/internal/glog"
)

// Orientation is the row order of a surface's memory.
type Orientation uint8

const (
	// TopDown surfaces store the top image row first.
	TopDown Orientation = iota

	// BottomUp surfaces store the bottom image row first. Canvases flip
	// them vertically so logical (0, 0) stays at the top-left.
	BottomUp
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == BottomUp {
		return "BottomUp"
	}
	return "TopDown"
}

// Ownership tells who releases a surface's pixel memory.
type Ownership uint8

const (
	// Owned memory is released when the surface (or its cache) is closed.
	Owned Ownership = iota

	// Borrowed memory belongs to someone else; the surface only reads and
	// writes it while open.
	Borrowed
)

// String returns the ownership name.
func (o Ownership) String() string {
	if o == Borrowed {
		return "Borrowed"
	}
	return "Owned"
}

// Surface is a drawable pixel buffer, whatever its origin.
//
// Width and Height are in device pixels; Scale converts logical pixels
// to device pixels. A surface that could not be acquired, or that has
// zero area, reports IsOk() == false: Target returns nil and every other
// method is a harmless no-op. Callers treat that as a normal condition
// and skip drawing.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine.
//
// Example usage:
//
//	s := surface.FromPixels(surface.NewPixels(800, 600, surface.FormatRGBAPremul), 1)
//	defer s.Close()
//
//	c := gdi.NewCanvas(s)
//	c.FillRectangle(10, 10, 100, 50)
type Surface interface {
	// Width returns the surface width in device pixels.
	Width() int

	// Height returns the surface height in device pixels.
	Height() int

	// Format returns the pixel layout of the target memory.
	Format() Format

	// Scale returns the logical-to-device scale factor.
	Scale() float64

	// Orientation reports whether memory rows run top-down or bottom-up.
	Orientation() Orientation

	// Ownership reports who releases the pixel memory.
	Ownership() Ownership

	// Backend names the acquisition strategy.
	Backend() string

	// IsOk reports whether the surface can be drawn on.
	IsOk() bool

	// Target returns the pixels to draw into, in memory row order, or nil
	// when the surface is not ok or already closed.
	Target() draw.Image

	// Flush pushes pending pixels to their destination. For memory-backed
	// surfaces it is a no-op.
	Flush() error

	// Close flushes, then releases what the surface acquired.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// DirtyTracker is implemented by surfaces that record which device
// rectangle has been drawn on since the last present.
type DirtyTracker interface {
	// MarkDirty adds r (in target coordinates) to the dirty rectangle.
	MarkDirty(r image.Rectangle)

	// DirtyRect returns the accumulated dirty rectangle.
	DirtyRect() image.Rectangle
}

// PixelSurface is implemented by surfaces whose target is a Pixels buffer.
type PixelSurface interface {
	Surface

	// Pixels returns the target buffer, or nil when not ok.
	Pixels() *Pixels
}

// pixelSurface is the shared implementation of the memory-backed
// strategies. flush and release are optional hooks.
type pixelSurface struct {
	pix     *Pixels
	scale   float64
	orient  Orientation
	own     Ownership
	backend string
	dirty   image.Rectangle
	closed  bool

	flush   func() error
	release func() error
}

func newPixelSurface(pix *Pixels, scale float64, backend string) *pixelSurface {
	if scale <= 0 {
		scale = 1
	}
	return &pixelSurface{pix: pix, scale: scale, backend: backend}
}

func (s *pixelSurface) Width() int               { return s.pix.Width() }
func (s *pixelSurface) Height() int              { return s.pix.Height() }
func (s *pixelSurface) Format() Format           { return s.pix.Format }
func (s *pixelSurface) Scale() float64           { return s.scale }
func (s *pixelSurface) Orientation() Orientation { return s.orient }
func (s *pixelSurface) Ownership() Ownership     { return s.own }
func (s *pixelSurface) Backend() string          { return s.backend }

func (s *pixelSurface) IsOk() bool {
	return !s.closed && !s.pix.Empty()
}

func (s *pixelSurface) Target() draw.Image {
	if !s.IsOk() {
		return nil
	}
	return s.pix.DrawTarget()
}

func (s *pixelSurface) Pixels() *Pixels {
	if !s.IsOk() {
		return nil
	}
	return s.pix
}

func (s *pixelSurface) MarkDirty(r image.Rectangle) {
	r = r.Intersect(s.pix.Rect)
	if r.Empty() {
		return
	}
	s.dirty = s.dirty.Union(r)
}

func (s *pixelSurface) DirtyRect() image.Rectangle { return s.dirty }

// resetDirty clears the dirty rectangle after a present.
func (s *pixelSurface) resetDirty() { s.dirty = image.Rectangle{} }

func (s *pixelSurface) Flush() error {
	if s.closed || s.flush == nil {
		return nil
	}
	return s.flush()
}

func (s *pixelSurface) Close() error {
	if s.closed {
		return nil
	}
	err := s.Flush()
	s.closed = true
	if s.release != nil {
		if rerr := s.release(); rerr != nil {
			glog.L().Warn("surface: release failed", "backend", s.backend, "err", rerr)
			if err == nil {
				err = rerr
			}
		}
	}
	return err
}

// FromPixels returns a borrowed surface drawing directly into p, for
// example the buffer of an explicit bitmap. The caller keeps ownership of
// p. A nil or empty buffer yields a null surface.
func FromPixels(p *Pixels, scale float64) Surface {
	if p.Empty() {
		glog.L().Warn("surface: zero-size bitmap surface")
		return Null(BackendBitmap, scale)
	}
	s := newPixelSurface(p, scale, BackendBitmap)
	s.own = Borrowed
	return s
}

// NewSoftware returns an owned top-down surface with a freshly allocated
// premultiplied RGBA buffer. Zero-area sizes yield a null surface.
func NewSoftware(w, h int, scale float64) Surface {
	if w <= 0 || h <= 0 {
		glog.L().Warn("surface: zero-size software surface", "width", w, "height", h)
		return Null(BackendSoftware, scale)
	}
	s := newPixelSurface(NewPixels(w, h, FormatRGBAPremul), scale, BackendSoftware)
	s.release = func() error {
		s.pix = &Pixels{Format: s.pix.Format}
		return nil
	}
	return s
}

// Backend names.
const (
	BackendBitmap   = "bitmap"
	BackendSoftware = "software"
	BackendLocked   = "locked"
	BackendDIB      = "dib"
	BackendGPU      = "gpu"
)

// Verify implementations.
var (
	_ PixelSurface = (*pixelSurface)(nil)
	_ DirtyTracker = (*pixelSurface)(nil)
)
