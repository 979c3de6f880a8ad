// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface unifies the pixel buffers gdi draws on.
//
// The same drawing code must work whether the pixels live in an explicit
// bitmap, a locked native window buffer, a cached native device-independent
// buffer or a GPU context's staging memory. Those buffers differ in channel
// order, alpha premultiplication, row order and ownership. A Surface hides
// the differences behind one contract:
//
//   - Width, Height and Scale describe device pixels and the
//     logical-to-device factor.
//   - Format describes channel order and alpha layout.
//   - Orientation reports bottom-up memory; the canvas compensates with a
//     vertical flip so logical (0, 0) stays at the top-left.
//   - Ownership tells whether closing the surface releases the memory.
//   - IsOk is false for zero-area or failed acquisitions. Such surfaces
//     are safe no-ops.
//
// # Acquisition strategies
//
//   - FromPixels: a borrowed view of an explicit bitmap's buffer.
//   - Lock / WithLocked: a borrowed view of a NativeBuffer between
//     LockPixels and UnlockPixels.
//   - DIBCache.Acquire: an owned BGRA buffer reused across paint cycles,
//     presented by copying only its dirty rectangle.
//   - NewGPU: a staging buffer uploaded to a GPU context on Flush.
//
// # Registry
//
// Memory-backed strategies register under a name with a priority and the
// orientation and ownership of the surfaces they produce. Open picks the
// best ready one and falls back when a strategy yields a null surface:
//
//	s, err := surface.Open(surface.Request{Width: 800, Height: 600, Scale: 2})
//
// The "software" and "dib" strategies are always registered. "dib" is not
// ready while a surface from the default DIB cache is still open.
package surface
