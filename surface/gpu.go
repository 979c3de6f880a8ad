// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gdi/internal/glog"
)

// GPUWindow is a native window that can host a GPU rendering context.
// The platform layer implements it; gdi never calls windowing APIs
// directly.
type GPUWindow interface {
	// AcquireHandle obtains the native window handle.
	AcquireHandle() (uintptr, error)

	// ReleaseHandle gives the handle back.
	ReleaseHandle(handle uintptr) error

	// Size returns the client area in device pixels.
	Size(handle uintptr) (width, height int)

	// OpenDevice obtains the device context of the window.
	OpenDevice(handle uintptr) (GPUDevice, error)
}

// GPUDevice is a window's device context.
type GPUDevice interface {
	// SetPixelFormat configures the framebuffer layout.
	SetPixelFormat(format gputypes.TextureFormat) error

	// CreateContext creates a rendering context on the device.
	CreateContext() (GPUContext, error)

	// Release gives the device context back to the window.
	Release() error
}

// GPUContext is a rendering context bound to one device.
type GPUContext interface {
	// MakeCurrent binds the context to the calling thread and returns the
	// context that was current before, or nil.
	MakeCurrent() (previous GPUContext, err error)

	// ClearCurrent unbinds any context from the calling thread.
	ClearCurrent() error

	// Upload copies staged pixels into the context's framebuffer.
	Upload(p *Pixels) error

	// Release destroys the context.
	Release() error
}

// GPUSurface draws into an owned staging buffer and uploads it to a GPU
// context on Flush. Close flushes, restores the context that was current
// before, then releases the rendering context, the device context and the
// window handle, in that order.
type GPUSurface struct {
	*pixelSurface

	window   GPUWindow
	handle   uintptr
	device   GPUDevice
	ctx      GPUContext
	previous GPUContext
	provider gpucontext.DeviceProvider
	texture  gputypes.TextureFormat
}

// NewGPU binds a GPU context to window. The framebuffer format comes from
// provider.SurfaceFormat(); a nil provider or an undefined format selects
// BGRA8. Any failure releases what was acquired so far, in reverse order,
// and returns a null surface.
func NewGPU(window GPUWindow, provider gpucontext.DeviceProvider, scale float64) Surface {
	texture := gputypes.TextureFormatBGRA8Unorm
	if provider != nil && provider.SurfaceFormat() != gputypes.TextureFormatUndefined {
		texture = provider.SurfaceFormat()
	}
	format, ok := formatForTexture(texture)
	if !ok {
		glog.L().Warn("surface: unsupported GPU surface format, using BGRA8", "format", texture)
		texture, format = gputypes.TextureFormatBGRA8Unorm, NativeFormat
	}

	var undo []func() error
	fail := func(stage string, err error) Surface {
		glog.L().Warn("surface: GPU acquisition failed", "stage", stage, "err", err)
		for i := len(undo) - 1; i >= 0; i-- {
			if uerr := undo[i](); uerr != nil {
				glog.L().Warn("surface: GPU cleanup failed", "err", uerr)
			}
		}
		return Null(BackendGPU, scale)
	}

	handle, err := window.AcquireHandle()
	if err != nil {
		return fail("window handle", err)
	}
	undo = append(undo, func() error { return window.ReleaseHandle(handle) })

	w, h := window.Size(handle)
	if w <= 0 || h <= 0 {
		return fail("window size", ErrInvalidDimensions)
	}

	dev, err := window.OpenDevice(handle)
	if err != nil {
		return fail("device context", err)
	}
	undo = append(undo, dev.Release)

	if err := dev.SetPixelFormat(texture); err != nil {
		return fail("pixel format", err)
	}

	ctx, err := dev.CreateContext()
	if err != nil {
		return fail("rendering context", err)
	}
	undo = append(undo, ctx.Release)

	prev, err := ctx.MakeCurrent()
	if err != nil {
		return fail("make current", err)
	}

	s := &GPUSurface{
		pixelSurface: newPixelSurface(NewPixels(w, h, format), scale, BackendGPU),
		window:       window,
		handle:       handle,
		device:       dev,
		ctx:          ctx,
		previous:     prev,
		provider:     provider,
		texture:      texture,
	}
	s.own = Owned
	s.flush = s.upload
	s.release = s.releaseChain
	glog.L().Info("surface: GPU context bound", "width", w, "height", h, "format", format)
	return s
}

func formatForTexture(tf gputypes.TextureFormat) (Format, bool) {
	switch tf {
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatBGRAPremul, true
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatRGBAPremul, true
	default:
		return Format{}, false
	}
}

func (s *GPUSurface) upload() error {
	return s.ctx.Upload(s.pix)
}

// releaseChain restores the previous context, then releases in reverse
// acquisition order. It returns the first error and logs the rest.
func (s *GPUSurface) releaseChain() error {
	var first error
	note := func(stage string, err error) {
		if err == nil {
			return
		}
		if first == nil {
			first = err
			return
		}
		glog.L().Warn("surface: GPU release failed", "stage", stage, "err", err)
	}

	if s.previous != nil {
		_, err := s.previous.MakeCurrent()
		note("restore context", err)
	} else {
		note("clear context", s.ctx.ClearCurrent())
	}
	note("rendering context", s.ctx.Release())
	note("device context", s.device.Release())
	note("window handle", s.window.ReleaseHandle(s.handle))

	s.pix = &Pixels{Format: s.pix.Format}
	return first
}

// Provider returns the device provider the surface was created with.
func (s *GPUSurface) Provider() gpucontext.DeviceProvider { return s.provider }

// TextureFormat returns the framebuffer format configured on the device.
func (s *GPUSurface) TextureFormat() gputypes.TextureFormat { return s.texture }

var _ PixelSurface = (*GPUSurface)(nil)
