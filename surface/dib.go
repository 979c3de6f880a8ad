// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/gogpu/gdi/internal/glog"
)

// DIBCache keeps one native device-independent buffer (32-bit BGRA,
// premultiplied, top-down) alive across paint cycles. The buffer is reused
// while the requested size matches exactly and reallocated in full
// otherwise.
//
// A DIBCache is meant for one painting goroutine; the process-wide
// DefaultDIBCache serializes Acquire so backends can share it.
type DIBCache struct {
	mu     sync.Mutex
	buf    []byte
	free   func() error
	w, h   int
	active *DIBSurface
	allocs int
	alloc  func(size int) ([]byte, func() error, error)
}

// NewDIBCache returns an empty cache.
func NewDIBCache() *DIBCache {
	return &DIBCache{alloc: allocNative}
}

var (
	defaultDIBOnce  sync.Once
	defaultDIBCache *DIBCache
)

// DefaultDIBCache returns the process-wide cache used by the "dib" backend.
func DefaultDIBCache() *DIBCache {
	defaultDIBOnce.Do(func() { defaultDIBCache = NewDIBCache() })
	return defaultDIBCache
}

// DIBSurface is an owned surface drawing into a DIBCache buffer. It
// tracks the dirty rectangle so Present copies only what changed.
type DIBSurface struct {
	*pixelSurface
	cache *DIBCache
}

// Acquire returns a surface over a w×h buffer. A previously acquired
// surface from the same cache is closed first. Zero-area sizes and
// allocation failures yield a null surface.
func (c *DIBCache) Acquire(w, h int, scale float64) Surface {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		c.active.closed = true
		c.active = nil
	}
	if w <= 0 || h <= 0 {
		glog.L().Warn("surface: zero-size DIB requested", "width", w, "height", h)
		return Null(BackendDIB, scale)
	}

	if c.buf == nil || c.w != w || c.h != h {
		if err := c.reallocate(w, h); err != nil {
			glog.L().Warn("surface: DIB allocation failed", "err", err)
			return Null(BackendDIB, scale)
		}
	} else {
		glog.L().Debug("surface: DIB reused", "width", w, "height", h)
	}

	pix := &Pixels{
		Pix:    c.buf,
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
		Format: NativeFormat,
	}
	s := &DIBSurface{pixelSurface: newPixelSurface(pix, scale, BackendDIB), cache: c}
	s.own = Owned
	c.active = s
	return s
}

// reallocate drops the current buffer and maps a new one. Must be called
// with c.mu held.
func (c *DIBCache) reallocate(w, h int) error {
	if err := c.releaseLocked(); err != nil {
		glog.L().Error("surface: DIB release failed", "err", err)
	}
	buf, free, err := c.alloc(4 * w * h)
	if err != nil {
		return fmt.Errorf("surface: allocate %dx%d DIB: %w", w, h, err)
	}
	c.buf, c.free, c.w, c.h = buf, free, w, h
	c.allocs++
	glog.L().Debug("surface: DIB allocated", "width", w, "height", h)
	return nil
}

func (c *DIBCache) releaseLocked() error {
	if c.buf == nil {
		return nil
	}
	free := c.free
	c.buf, c.free, c.w, c.h = nil, nil, 0, 0
	if free != nil {
		return free()
	}
	return nil
}

// Size returns the cached buffer size, or (0, 0) when nothing is cached.
func (c *DIBCache) Size() (w, h int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w, c.h
}

// Allocations returns how many buffers the cache has allocated.
func (c *DIBCache) Allocations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allocs
}

// Busy reports whether a surface acquired from c is still open.
func (c *DIBCache) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active != nil
}

// Close releases the cached buffer. Surfaces acquired earlier stop being
// ok.
func (c *DIBCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil {
		c.active.closed = true
		c.active = nil
	}
	return c.releaseLocked()
}

// Present copies the dirty rectangle to dst at offset at in one bulk
// copy and clears it. When dst is a *Pixels the rows are copied directly,
// converting the layout if needed; other images go through draw.Draw.
func (s *DIBSurface) Present(dst draw.Image, at image.Point) {
	if !s.IsOk() || s.dirty.Empty() {
		return
	}
	r := s.dirty
	src := s.pix.Sub(r)
	if p, ok := dst.(*Pixels); ok {
		moved := *src
		moved.Rect = r.Add(at)
		moved.ConvertTo(p)
	} else {
		draw.Draw(dst, r.Add(at), s.pix.DrawTarget(), r.Min, draw.Src)
	}
	glog.L().Debug("surface: DIB presented", "rect", r)
	s.resetDirty()
}

// Close ends this paint cycle; the buffer stays in the cache.
func (s *DIBSurface) Close() error {
	if s.closed {
		return nil
	}
	err := s.pixelSurface.Close()
	s.cache.mu.Lock()
	if s.cache.active == s {
		s.cache.active = nil
	}
	s.cache.mu.Unlock()
	return err
}

var _ DirtyTracker = (*DIBSurface)(nil)
