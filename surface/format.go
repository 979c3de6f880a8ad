// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "fmt"

// ChannelOrder is the byte order of the color channels in a 32-bit pixel.
type ChannelOrder uint8

const (
	// OrderRGBA stores red, green, blue, alpha in ascending byte order.
	OrderRGBA ChannelOrder = iota

	// OrderBGRA stores blue, green, red, alpha. Native on Windows DIBs and
	// most swap chains.
	OrderBGRA

	orderCount
)

// AlphaLayout describes how the alpha byte relates to the color channels.
type AlphaLayout uint8

const (
	// AlphaStraight stores color channels independent of alpha.
	AlphaStraight AlphaLayout = iota

	// AlphaPremultiplied stores color channels pre-scaled by alpha.
	AlphaPremultiplied

	// AlphaIgnored treats every pixel as opaque; the alpha byte is padding.
	AlphaIgnored

	alphaCount
)

// Format is a 32-bit pixel layout.
type Format struct {
	Order ChannelOrder
	Alpha AlphaLayout
}

// Common formats.
var (
	FormatRGBA       = Format{Order: OrderRGBA, Alpha: AlphaStraight}
	FormatRGBAPremul = Format{Order: OrderRGBA, Alpha: AlphaPremultiplied}
	FormatRGBX       = Format{Order: OrderRGBA, Alpha: AlphaIgnored}
	FormatBGRA       = Format{Order: OrderBGRA, Alpha: AlphaStraight}
	FormatBGRAPremul = Format{Order: OrderBGRA, Alpha: AlphaPremultiplied}
	FormatBGRX       = Format{Order: OrderBGRA, Alpha: AlphaIgnored}
)

// NativeFormat is the layout of native device-independent buffers.
var NativeFormat = FormatBGRAPremul

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is always 4.
	BytesPerPixel int

	// HasAlpha indicates the alpha byte carries transparency.
	HasAlpha bool

	// IsPremultiplied indicates color channels are pre-scaled by alpha.
	IsPremultiplied bool

	// R, G, B, A are the byte offsets of each channel within a pixel.
	R, G, B, A int
}

var formatInfoTable = [orderCount][alphaCount]FormatInfo{
	OrderRGBA: {
		AlphaStraight:      {BytesPerPixel: 4, HasAlpha: true, R: 0, G: 1, B: 2, A: 3},
		AlphaPremultiplied: {BytesPerPixel: 4, HasAlpha: true, IsPremultiplied: true, R: 0, G: 1, B: 2, A: 3},
		AlphaIgnored:       {BytesPerPixel: 4, R: 0, G: 1, B: 2, A: 3},
	},
	OrderBGRA: {
		AlphaStraight:      {BytesPerPixel: 4, HasAlpha: true, R: 2, G: 1, B: 0, A: 3},
		AlphaPremultiplied: {BytesPerPixel: 4, HasAlpha: true, IsPremultiplied: true, R: 2, G: 1, B: 0, A: 3},
		AlphaIgnored:       {BytesPerPixel: 4, R: 2, G: 1, B: 0, A: 3},
	},
}

// IsValid reports whether f is a known layout.
func (f Format) IsValid() bool {
	return f.Order < orderCount && f.Alpha < alphaCount
}

// Info returns metadata for f. Invalid formats report the RGBA layout.
func (f Format) Info() FormatInfo {
	if !f.IsValid() {
		return formatInfoTable[OrderRGBA][AlphaStraight]
	}
	return formatInfoTable[f.Order][f.Alpha]
}

// String returns a human-readable name such as "BGRA8Premul".
func (f Format) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Format(%d,%d)", f.Order, f.Alpha)
	}
	name := "RGBA8"
	if f.Order == OrderBGRA {
		name = "BGRA8"
	}
	switch f.Alpha {
	case AlphaPremultiplied:
		name += "Premul"
	case AlphaIgnored:
		name = name[:3] + "X8"
	}
	return name
}
