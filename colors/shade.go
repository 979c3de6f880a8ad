package colors

// Light returns c lightened by fraction p (0..1).
//
// The Control known color is shaded by interpolating between ControlLight
// and ControlLightLight from the current palette instead of the HLS
// formula, so buttons keep the platform's own highlight colors. A zero
// fraction returns c unchanged for every color.
func Light(c Color, p float64) Color {
	if p == 0 {
		return c
	}
	h := NewHLS(c)
	if h.IsControlFace() {
		return lerpKnown(ControlLight, ControlLightLight, p, c.A())
	}
	return h.Lighter(p)
}

// Dark returns c darkened by fraction p (0..1).
//
// The Control known color interpolates between ControlDark and
// ControlDarkDark. A zero fraction returns c unchanged.
func Dark(c Color, p float64) Color {
	if p == 0 {
		return c
	}
	h := NewHLS(c)
	if h.IsControlFace() {
		return lerpKnown(ControlDark, ControlDarkDark, p, c.A())
	}
	return h.Darker(p)
}

// IsDarker reports whether c1 has a lower HLS luminosity than c2.
// Alpha and hue are ignored.
func IsDarker(c1, c2 Color) bool {
	return NewHLS(c1).Luminosity < NewHLS(c2).Luminosity
}

func lerpKnown(from, to KnownColor, p float64, alpha uint8) Color {
	a, b := FromKnown(from), FromKnown(to)
	ch := func(x, y uint8) uint8 {
		return clamp8(int(x) + int(float64(int(y)-int(x))*p))
	}
	return FromARGB(alpha, ch(a.R(), b.R()), ch(a.G(), b.G()), ch(a.B(), b.B()))
}
