package gdi

import (
	xdraw "golang.org/x/image/draw"
)

// Interpolation selects an image resampling kernel.
type Interpolation uint8

const (
	// InterpolationNearest picks the nearest source pixel.
	InterpolationNearest Interpolation = iota
	// InterpolationBilinear blends the four nearest pixels.
	InterpolationBilinear
	// InterpolationCatmullRom uses the Catmull-Rom cubic kernel.
	InterpolationCatmullRom
	// InterpolationLanczos uses a Lanczos-3 kernel. Canvas transforms fall
	// back to Catmull-Rom; Bitmap.RescaleWith uses bild.
	InterpolationLanczos
)

func (i Interpolation) String() string {
	switch i {
	case InterpolationNearest:
		return "Nearest"
	case InterpolationBilinear:
		return "Bilinear"
	case InterpolationCatmullRom:
		return "CatmullRom"
	case InterpolationLanczos:
		return "Lanczos"
	}
	return "Interpolation(?)"
}

// interpolator returns the x/image/draw kernel for i.
func (i Interpolation) interpolator() xdraw.Interpolator {
	switch i {
	case InterpolationNearest:
		return xdraw.NearestNeighbor
	case InterpolationCatmullRom, InterpolationLanczos:
		return xdraw.CatmullRom
	default:
		return xdraw.BiLinear
	}
}
