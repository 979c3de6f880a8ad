package colors

// HLS ranges and luminosity adjustments used for 3-D shading.
const (
	HLSMax = 240
	rgbMax = 255

	// undefinedHue is reported for achromatic colors.
	undefinedHue = HLSMax * 2 / 3

	shadowAdj    = -333
	highlightAdj = 500
)

// HLSColor is a hue/luminosity/saturation triple derived from a Color.
// Each component is in [0, HLSMax]. It is computed on demand and only
// used to derive lighter and darker shades.
type HLSColor struct {
	Hue        int
	Luminosity int
	Saturation int

	alpha       uint8
	controlFace bool
}

// NewHLS derives the HLS components of c.
func NewHLS(c Color) HLSColor {
	r, g, b := int(c.R()), int(c.G()), int(c.B())
	hi := max(r, g, b)
	lo := min(r, g, b)
	sum := hi + lo

	h := HLSColor{
		Luminosity:  (sum*HLSMax + rgbMax) / (2 * rgbMax),
		alpha:       c.A(),
		controlFace: c.IsKnown() && c.Known() == Control,
	}

	dif := hi - lo
	if dif == 0 {
		h.Hue = undefinedHue
		return h
	}

	if h.Luminosity <= HLSMax/2 {
		h.Saturation = (dif*HLSMax + sum/2) / sum
	} else {
		h.Saturation = (dif*HLSMax + (2*rgbMax-sum)/2) / (2*rgbMax - sum)
	}

	rd := ((hi-r)*(HLSMax/6) + dif/2) / dif
	gd := ((hi-g)*(HLSMax/6) + dif/2) / dif
	bd := ((hi-b)*(HLSMax/6) + dif/2) / dif

	switch hi {
	case r:
		h.Hue = bd - gd
	case g:
		h.Hue = HLSMax/3 + rd - bd
	default:
		h.Hue = 2*HLSMax/3 + gd - rd
	}
	if h.Hue < 0 {
		h.Hue += HLSMax
	}
	if h.Hue > HLSMax {
		h.Hue -= HLSMax
	}
	return h
}

// IsControlFace reports whether the source color was the Control known color.
func (h HLSColor) IsControlFace() bool { return h.controlFace }

// ToColor converts back to an explicit color, keeping the source alpha.
func (h HLSColor) ToColor() Color {
	return fromHLS(h.Hue, h.Luminosity, h.Saturation, h.alpha)
}

// Lighter moves luminosity toward the highlight luminosity by fraction p.
func (h HLSColor) Lighter(p float64) Color {
	target := newLuma(h.Luminosity, highlightAdj)
	lum := h.Luminosity + int(float64(target-h.Luminosity)*p)
	return fromHLS(h.Hue, clampHLS(lum), h.Saturation, h.alpha)
}

// Darker moves luminosity toward the shadow luminosity by fraction p.
func (h HLSColor) Darker(p float64) Color {
	target := newLuma(h.Luminosity, shadowAdj)
	lum := h.Luminosity - int(float64(h.Luminosity-target)*p)
	return fromHLS(h.Hue, clampHLS(lum), h.Saturation, h.alpha)
}

// newLuma scales luminosity toward white (n > 0) or black (n < 0); n is in
// thousandths.
func newLuma(lum, n int) int {
	switch {
	case n > 0:
		return (lum*(1000-n) + (HLSMax+1)*n) / 1000
	case n < 0:
		return lum * (n + 1000) / 1000
	default:
		return lum
	}
}

func fromHLS(hue, lum, sat int, alpha uint8) Color {
	var r, g, b int
	if sat == 0 {
		r = lum * rgbMax / HLSMax
		g, b = r, r
	} else {
		var m2 int
		if lum <= HLSMax/2 {
			m2 = (lum*(HLSMax+sat) + HLSMax/2) / HLSMax
		} else {
			m2 = lum + sat - (lum*sat+HLSMax/2)/HLSMax
		}
		m1 := 2*lum - m2
		r = (hueToRGB(m1, m2, hue+HLSMax/3)*rgbMax + HLSMax/2) / HLSMax
		g = (hueToRGB(m1, m2, hue)*rgbMax + HLSMax/2) / HLSMax
		b = (hueToRGB(m1, m2, hue-HLSMax/3)*rgbMax + HLSMax/2) / HLSMax
	}
	return FromARGB(alpha, clamp8(r), clamp8(g), clamp8(b))
}

func hueToRGB(n1, n2, hue int) int {
	if hue < 0 {
		hue += HLSMax
	}
	if hue > HLSMax {
		hue -= HLSMax
	}
	switch {
	case hue < HLSMax/6:
		return n1 + ((n2-n1)*hue+HLSMax/12)/(HLSMax/6)
	case hue < HLSMax/2:
		return n2
	case hue < HLSMax*2/3:
		return n1 + ((n2-n1)*(HLSMax*2/3-hue)+HLSMax/12)/(HLSMax/6)
	default:
		return n1
	}
}

func clampHLS(v int) int {
	return min(max(v, 0), HLSMax)
}

func clamp8(v int) uint8 {
	return uint8(min(max(v, 0), rgbMax))
}
