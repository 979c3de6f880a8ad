// Package colors provides the packed ARGB color used by gdi, symbolic
// known colors resolved through a palette, and the HLS shading used for
// 3-D effects.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrBadHex is returned by ParseHex for malformed input.
var ErrBadHex = errors.New("colors: malformed hex color")

type state uint8

const (
	stateEmpty state = iota
	stateARGB
	stateKnown
)

// Color is an immutable 32-bit ARGB color with an identity.
//
// A Color is either empty (the zero value), an explicit ARGB value, or a
// known color whose value is looked up in the current Palette. Two colors
// are equal only if state, explicit value and known identity all match, so
// FromKnown(Control) never equals the explicit color with the same value.
// Colors can be compared with ==.
type Color struct {
	argb  uint32
	known KnownColor
	state state
}

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

// Empty is the uninitialized color.
var Empty = Color{}

// FromARGB creates an explicit color from its channels.
func FromARGB(a, r, g, b uint8) Color {
	return Color{
		argb:  uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b),
		state: stateARGB,
	}
}

// FromRGB creates an opaque explicit color.
func FromRGB(r, g, b uint8) Color {
	return FromARGB(0xFF, r, g, b)
}

// FromUint32 creates an explicit color from a packed 0xAARRGGBB value.
func FromUint32(argb uint32) Color {
	return Color{argb: argb, state: stateARGB}
}

// FromKnown creates a color bound to a palette entry.
// An invalid KnownColor yields Empty.
func FromKnown(k KnownColor) Color {
	if !k.IsValid() {
		return Empty
	}
	return Color{known: k, state: stateKnown}
}

// FromName returns the known color with the given name, ignoring case.
func FromName(name string) (Color, bool) {
	k, ok := LookupKnown(name)
	if !ok {
		return Empty, false
	}
	return FromKnown(k), true
}

// FromStd converts any image/color value into an explicit color.
func FromStd(c color.Color) Color {
	if c == nil {
		return Empty
	}
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromARGB(n.A, n.R, n.G, n.B)
}

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (the leading '#' is
// optional) into an explicit color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	var v [8]uint8
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok || i >= len(v) {
			return Empty, fmt.Errorf("%w: %q", ErrBadHex, s)
		}
		v[i] = d
	}

	switch len(s) {
	case 3:
		return FromRGB(v[0]*17, v[1]*17, v[2]*17), nil
	case 6:
		return FromRGB(v[0]<<4|v[1], v[2]<<4|v[3], v[4]<<4|v[5]), nil
	case 8:
		return FromARGB(v[6]<<4|v[7], v[0]<<4|v[1], v[2]<<4|v[3], v[4]<<4|v[5]), nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// IsEmpty reports whether c is uninitialized.
func (c Color) IsEmpty() bool { return c.state == stateEmpty }

// IsOk reports whether c holds a value.
func (c Color) IsOk() bool { return c.state != stateEmpty }

// IsKnown reports whether c is bound to a palette entry.
func (c Color) IsKnown() bool { return c.state == stateKnown }

// Known returns the palette entry c is bound to, or KnownNone.
func (c Color) Known() KnownColor { return c.known }

// ARGB returns the packed 0xAARRGGBB value. Known colors are resolved
// through CurrentPalette on every call; empty colors and unresolvable
// entries yield 0.
func (c Color) ARGB() uint32 {
	switch c.state {
	case stateARGB:
		return c.argb
	case stateKnown:
		v, _ := CurrentPalette().Resolve(c.known)
		return v
	default:
		return 0
	}
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c.ARGB() >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c.ARGB() >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c.ARGB() >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c.ARGB()) }

// Equal reports whether c and o have the same state, value and identity.
func (c Color) Equal(o Color) bool { return c == o }

// WithAlpha returns an explicit color with c's resolved RGB and alpha a.
func (c Color) WithAlpha(a uint8) Color {
	v := c.ARGB()
	return FromUint32(v&0x00FFFFFF | uint32(a)<<24)
}

// NRGBA returns the non-premultiplied 8-bit representation.
func (c Color) NRGBA() color.NRGBA {
	v := c.ARGB()
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}
}

// RGBA implements color.Color. The result is alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Name returns the known color name, or "" for explicit and empty colors.
func (c Color) Name() string {
	if c.state != stateKnown {
		return ""
	}
	return c.known.String()
}

// Hex formats the resolved value as "#RRGGBB", or "#RRGGBBAA" when the
// color is not opaque.
func (c Color) Hex() string {
	n := c.NRGBA()
	if n.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	switch c.state {
	case stateKnown:
		return c.known.String()
	case stateARGB:
		return c.Hex()
	default:
		return "Empty"
	}
}
