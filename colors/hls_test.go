package colors

import "testing"

func TestHLSPrimaries(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want HLSColor
	}{
		{"red", FromRGB(255, 0, 0), HLSColor{Hue: 0, Luminosity: 120, Saturation: 240}},
		{"green", FromRGB(0, 255, 0), HLSColor{Hue: 80, Luminosity: 120, Saturation: 240}},
		{"blue", FromRGB(0, 0, 255), HLSColor{Hue: 160, Luminosity: 120, Saturation: 240}},
		{"white", FromRGB(255, 255, 255), HLSColor{Hue: undefinedHue, Luminosity: 240}},
		{"black", FromRGB(0, 0, 0), HLSColor{Hue: undefinedHue}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHLS(tt.c)
			if h.Hue != tt.want.Hue || h.Luminosity != tt.want.Luminosity || h.Saturation != tt.want.Saturation {
				t.Errorf("NewHLS() = (%d, %d, %d), want (%d, %d, %d)",
					h.Hue, h.Luminosity, h.Saturation,
					tt.want.Hue, tt.want.Luminosity, tt.want.Saturation)
			}
			if got := h.ToColor(); got.ARGB() != tt.c.ARGB() {
				t.Errorf("ToColor() = %v, want %v", got, tt.c)
			}
		})
	}
}

func TestZeroPercentShadingIsIdentity(t *testing.T) {
	for _, c := range []Color{
		FromRGB(128, 128, 128),
		FromARGB(0x40, 12, 200, 99),
		FromKnown(Control),
		FromKnown(Highlight),
		Empty,
	} {
		if got := Light(c, 0); got != c {
			t.Errorf("Light(%v, 0) = %v, want identity", c, got)
		}
		if got := Dark(c, 0); got != c {
			t.Errorf("Dark(%v, 0) = %v, want identity", c, got)
		}
	}
}

func TestLightDarkMoveLuminosity(t *testing.T) {
	c := FromRGB(40, 90, 160)
	base := NewHLS(c).Luminosity

	light := Light(c, 1)
	dark := Dark(c, 1)
	if NewHLS(light).Luminosity <= base {
		t.Errorf("Light luminosity %d not above %d", NewHLS(light).Luminosity, base)
	}
	if NewHLS(dark).Luminosity >= base {
		t.Errorf("Dark luminosity %d not below %d", NewHLS(dark).Luminosity, base)
	}
	if !IsDarker(dark, c) || !IsDarker(c, light) {
		t.Error("IsDarker ordering violated")
	}
	if light.A() != c.A() || dark.A() != c.A() {
		t.Error("shading must keep alpha")
	}
}

func TestControlFaceUsesPaletteReferences(t *testing.T) {
	face := FromKnown(Control)

	if got, want := Light(face, 1).ARGB(), FromKnown(ControlLightLight).ARGB(); got != want {
		t.Errorf("Light(Control, 1) = %#08x, want ControlLightLight %#08x", got, want)
	}
	if got, want := Dark(face, 1).ARGB(), FromKnown(ControlDarkDark).ARGB(); got != want {
		t.Errorf("Dark(Control, 1) = %#08x, want ControlDarkDark %#08x", got, want)
	}

	half := Dark(face, 0.5)
	d, dd := FromKnown(ControlDark), FromKnown(ControlDarkDark)
	if half.R() > d.R() || half.R() < dd.R() {
		t.Errorf("Dark(Control, 0.5).R = %d, want between %d and %d", half.R(), dd.R(), d.R())
	}

	// The same value without the Control identity takes the HLS branch.
	explicit := FromUint32(face.ARGB())
	if Light(explicit, 1) == Light(face, 1) {
		t.Error("explicit color should not use the control-face policy")
	}
}

func TestIsDarkerIgnoresAlpha(t *testing.T) {
	if IsDarker(FromARGB(0, 200, 200, 200), FromARGB(0xFF, 200, 200, 200)) {
		t.Error("alpha must not affect IsDarker")
	}
	if !IsDarker(FromRGB(0, 0, 0), FromRGB(255, 255, 255)) {
		t.Error("black should be darker than white")
	}
}
