// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"
)

// TestSurfaceInterface verifies the Surface interface contract.
func TestSurfaceInterface(t *testing.T) {
	var _ Surface = (*pixelSurface)(nil)
	var _ Surface = (*DIBSurface)(nil)
	var _ Surface = (*GPUSurface)(nil)
	var _ Surface = nullSurface{}
}

func TestFromPixelsIsBorrowed(t *testing.T) {
	p := NewPixels(8, 4, FormatRGBAPremul)
	s := FromPixels(p, 2)

	if !s.IsOk() || s.Width() != 8 || s.Height() != 4 || s.Scale() != 2 {
		t.Fatalf("surface = ok:%v %dx%d scale %g", s.IsOk(), s.Width(), s.Height(), s.Scale())
	}
	if s.Ownership() != Borrowed || s.Backend() != BackendBitmap {
		t.Errorf("ownership %v backend %q", s.Ownership(), s.Backend())
	}
	if _, ok := s.Target().(*image.RGBA); !ok {
		t.Errorf("Target() = %T, want *image.RGBA fast path", s.Target())
	}

	s.Target().Set(1, 1, color.RGBA{R: 9, A: 255})
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if p.At(1, 1) != (color.RGBA{R: 9, A: 255}) {
		t.Error("drawing must land in the borrowed buffer and survive Close")
	}
	if s.IsOk() || s.Target() != nil {
		t.Error("closed surface must not be drawable")
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestZeroSizeSurfacesAreNull(t *testing.T) {
	surfaces := map[string]Surface{
		"bitmap":   FromPixels(NewPixels(0, 10, FormatRGBAPremul), 1),
		"nil":      FromPixels(nil, 1),
		"software": NewSoftware(10, 0, 1),
		"dib":      NewDIBCache().Acquire(0, 0, 1),
	}
	for name, s := range surfaces {
		t.Run(name, func(t *testing.T) {
			if s.IsOk() {
				t.Error("IsOk() = true, want false")
			}
			if s.Target() != nil {
				t.Error("Target() should be nil")
			}
			if err := s.Flush(); err != nil {
				t.Errorf("Flush() = %v", err)
			}
			if err := s.Close(); err != nil {
				t.Errorf("Close() = %v", err)
			}
		})
	}
}

// mockBuffer is a NativeBuffer over a byte slice.
type mockBuffer struct {
	data      []byte
	stride    int
	w, h      int
	lockErr   error
	unlockErr error
	locks     int
	unlocks   int
}

func (m *mockBuffer) LockPixels() (LockedPixels, error) {
	if m.lockErr != nil {
		return LockedPixels{}, m.lockErr
	}
	m.locks++
	return LockedPixels{Data: m.data, Stride: m.stride, Width: m.w, Height: m.h, Format: FormatBGRX}, nil
}

func (m *mockBuffer) UnlockPixels() error {
	m.unlocks++
	return m.unlockErr
}

func newMockBuffer(w, h int, bottomUp bool) *mockBuffer {
	stride := 4 * w
	if bottomUp {
		stride = -stride
	}
	return &mockBuffer{data: make([]byte, 4*w*h), stride: stride, w: w, h: h}
}

func TestLockNormalizesStride(t *testing.T) {
	tests := []struct {
		name     string
		bottomUp bool
		want     Orientation
	}{
		{"top-down", false, TopDown},
		{"bottom-up", true, BottomUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newMockBuffer(4, 3, tt.bottomUp)
			s := Lock(buf, 1)
			if !s.IsOk() {
				t.Fatal("locked surface should be ok")
			}
			if s.Orientation() != tt.want {
				t.Errorf("Orientation() = %v, want %v", s.Orientation(), tt.want)
			}
			ps := s.(PixelSurface)
			if ps.Pixels().Stride != 16 {
				t.Errorf("Stride = %d, want 16", ps.Pixels().Stride)
			}
			// Memory row 0 is always the first 16 bytes.
			s.Target().Set(0, 0, color.RGBA{R: 1, A: 255})
			if buf.data[2] != 1 {
				t.Error("row 0 must address the start of memory")
			}
			if err := s.Close(); err != nil {
				t.Fatal(err)
			}
			if buf.locks != 1 || buf.unlocks != 1 {
				t.Errorf("locks=%d unlocks=%d, want 1/1", buf.locks, buf.unlocks)
			}
		})
	}
}

func TestLockFailures(t *testing.T) {
	failing := &mockBuffer{lockErr: errors.New("device lost")}
	if s := Lock(failing, 1); s.IsOk() {
		t.Error("failed lock should give a null surface")
	}
	if failing.unlocks != 0 {
		t.Error("a failed lock must not be unlocked")
	}

	empty := newMockBuffer(0, 0, false)
	if s := Lock(empty, 1); s.IsOk() {
		t.Error("empty lock should give a null surface")
	}
	if empty.locks != 1 || empty.unlocks != 1 {
		t.Errorf("empty buffer locks=%d unlocks=%d, want 1/1", empty.locks, empty.unlocks)
	}
}

func TestWithLockedUnlocksOnEveryPath(t *testing.T) {
	buf := newMockBuffer(2, 2, true)
	want := errors.New("draw failed")
	if err := WithLocked(buf, 1, func(Surface) error { return want }); !errors.Is(err, want) {
		t.Errorf("err = %v, want %v", err, want)
	}
	if buf.unlocks != 1 {
		t.Errorf("unlocks = %d after error, want 1", buf.unlocks)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic should propagate")
			}
		}()
		_ = WithLocked(buf, 1, func(Surface) error { panic("boom") })
	}()
	if buf.unlocks != 2 {
		t.Errorf("unlocks = %d after panic, want 2", buf.unlocks)
	}

	buf.unlockErr = errors.New("unlock failed")
	if err := WithLocked(buf, 1, func(Surface) error { return nil }); !errors.Is(err, buf.unlockErr) {
		t.Errorf("err = %v, want unlock error", err)
	}
}

func TestDIBCacheReuse(t *testing.T) {
	c := NewDIBCache()
	defer c.Close()

	s1 := c.Acquire(64, 32, 1)
	if !s1.IsOk() || s1.Format() != NativeFormat || s1.Orientation() != TopDown || s1.Ownership() != Owned {
		t.Fatalf("DIB surface = ok:%v %v %v %v", s1.IsOk(), s1.Format(), s1.Orientation(), s1.Ownership())
	}
	s1.Target().Set(3, 3, color.RGBA{G: 77, A: 255})
	_ = s1.Close()

	s2 := c.Acquire(64, 32, 1)
	if c.Allocations() != 1 {
		t.Errorf("Allocations() = %d after same-size acquire, want 1", c.Allocations())
	}
	if s2.Target().At(3, 3) != (color.RGBA{G: 77, A: 255}) {
		t.Error("reused buffer should keep its contents")
	}

	s3 := c.Acquire(65, 32, 1)
	if c.Allocations() != 2 {
		t.Errorf("Allocations() = %d after resize, want 2", c.Allocations())
	}
	if s2.IsOk() {
		t.Error("acquiring again must invalidate the previous surface")
	}
	if w, h := c.Size(); w != 65 || h != 32 || s3.Width() != 65 {
		t.Errorf("Size() = %dx%d", w, h)
	}
}

// countingImage records how many pixels draw.Draw touched.
type countingImage struct {
	*image.RGBA
	sets int
}

func (c *countingImage) Set(x, y int, col color.Color) {
	c.sets++
	c.RGBA.Set(x, y, col)
}

func (c *countingImage) SetRGBA64(x, y int, col color.RGBA64) {
	c.sets++
	c.RGBA.SetRGBA64(x, y, col)
}

func TestDIBPresentCopiesDirtyRect(t *testing.T) {
	c := NewDIBCache()
	defer c.Close()
	s := c.Acquire(20, 20, 1).(*DIBSurface)

	draw.Draw(s.Target(), image.Rect(2, 2, 6, 5), image.NewUniform(color.RGBA{R: 255, A: 255}), image.Point{}, draw.Src)
	s.MarkDirty(image.Rect(2, 2, 6, 5))
	s.MarkDirty(image.Rect(100, 100, 110, 110)) // clipped away
	if got := s.DirtyRect(); got != image.Rect(2, 2, 6, 5) {
		t.Fatalf("DirtyRect() = %v", got)
	}

	dst := &countingImage{RGBA: image.NewRGBA(image.Rect(0, 0, 40, 40))}
	s.Present(dst, image.Pt(10, 10))
	if dst.sets != 12 {
		t.Errorf("copied %d pixels, want 12", dst.sets)
	}
	if dst.RGBAAt(12, 12) != (color.RGBA{R: 255, A: 255}) {
		t.Error("dirty pixel not presented at offset")
	}
	if !s.DirtyRect().Empty() {
		t.Error("Present should reset the dirty rect")
	}

	// Direct row copy into a native buffer with another layout.
	s.MarkDirty(image.Rect(2, 2, 6, 5))
	native := NewPixels(20, 20, FormatRGBA)
	s.Present(native, image.Point{})
	if native.At(3, 3) != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("native present = %v", native.At(3, 3))
	}
}

func TestDIBAllocationFailure(t *testing.T) {
	c := NewDIBCache()
	c.alloc = func(int) ([]byte, func() error, error) { return nil, nil, errors.New("out of memory") }
	if s := c.Acquire(10, 10, 1); s.IsOk() {
		t.Error("allocation failure should give a null surface")
	}
}
