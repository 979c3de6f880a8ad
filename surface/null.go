// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "image/draw"

// nullSurface stands in for a zero-area or failed acquisition.
type nullSurface struct {
	backend string
	scale   float64
}

// Null returns a surface that reports IsOk() == false. It keeps the
// backend name and scale so diagnostics still say where it came from.
func Null(backend string, scale float64) Surface {
	if scale <= 0 {
		scale = 1
	}
	return nullSurface{backend: backend, scale: scale}
}

func (nullSurface) Width() int               { return 0 }
func (nullSurface) Height() int              { return 0 }
func (nullSurface) Format() Format           { return NativeFormat }
func (s nullSurface) Scale() float64         { return s.scale }
func (nullSurface) Orientation() Orientation { return TopDown }
func (nullSurface) Ownership() Ownership     { return Borrowed }
func (s nullSurface) Backend() string        { return s.backend }
func (nullSurface) IsOk() bool               { return false }
func (nullSurface) Target() draw.Image       { return nil }
func (nullSurface) Flush() error             { return nil }
func (nullSurface) Close() error             { return nil }

var _ Surface = nullSurface{}
