// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/gogpu/gdi/internal/glog"
)

// LockedPixels describes native memory returned by NativeBuffer.LockPixels.
//
// Data holds every row in memory order, starting at the lowest address.
// Stride is signed: a negative stride means the image is stored
// bottom-up, so the first row in Data is the image's last row.
type LockedPixels struct {
	Data   []byte
	Stride int
	Width  int
	Height int
	Format Format
}

// NativeBuffer is a platform window or device buffer that can be locked
// for direct pixel access. Every successful LockPixels is followed by
// exactly one UnlockPixels.
type NativeBuffer interface {
	LockPixels() (LockedPixels, error)
	UnlockPixels() error
}

// Lock locks buf and returns a borrowed surface over its memory. Close
// unlocks it. If locking fails, or the locked area is empty or malformed,
// Lock returns a null surface; a buffer that was locked is unlocked again
// before returning.
//
// Prefer WithLocked, which pairs the unlock with the lock on every path.
func Lock(buf NativeBuffer, scale float64) Surface {
	lp, err := buf.LockPixels()
	if err != nil {
		glog.L().Warn("surface: lock pixels failed", "err", err)
		return Null(BackendLocked, scale)
	}

	pix, orient, err := lp.view()
	if err != nil {
		glog.L().Warn("surface: unusable locked buffer", "err", err,
			"width", lp.Width, "height", lp.Height, "stride", lp.Stride)
		if uerr := buf.UnlockPixels(); uerr != nil {
			glog.L().Warn("surface: unlock pixels failed", "err", uerr)
		}
		return Null(BackendLocked, scale)
	}

	s := newPixelSurface(pix, scale, BackendLocked)
	s.own = Borrowed
	s.orient = orient
	s.release = buf.UnlockPixels
	glog.L().Debug("surface: locked native buffer",
		"width", lp.Width, "height", lp.Height, "orientation", orient)
	return s
}

// view normalizes the stride sign: memory is addressed top-to-bottom with
// |Stride| and the orientation records whether that is the image order.
func (lp LockedPixels) view() (*Pixels, Orientation, error) {
	stride, orient := lp.Stride, TopDown
	if stride < 0 {
		stride, orient = -stride, BottomUp
	}
	pix, err := WrapPixels(lp.Data, stride, lp.Width, lp.Height, lp.Format)
	if err != nil {
		return nil, orient, fmt.Errorf("surface: locked pixels: %w", err)
	}
	return pix, orient, nil
}

// WithLocked locks buf, calls fn with the surface and unlocks afterwards,
// even if fn panics. A surface that is not ok is still passed to fn.
func WithLocked(buf NativeBuffer, scale float64, fn func(Surface) error) (err error) {
	s := Lock(buf, scale)
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(s)
}
