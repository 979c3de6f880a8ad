package gdi

import (
	"testing"

	"github.com/gogpu/gdi/colors"
)

func TestNewCanvasDefaults(t *testing.T) {
	c := NewCanvas(NewBitmap(10, 10).Surface())
	if !c.Antialias() {
		t.Error("antialiasing should default to on")
	}
	if c.interp != InterpolationBilinear {
		t.Errorf("interpolation = %v, want bilinear", c.interp)
	}
	if got := c.Pen(); got == nil || got.Width != 1 || !got.Color.Equal(Settings.DefaultForeground()) {
		t.Errorf("default pen = %+v, want one pixel in the default foreground", got)
	}
	if got := c.Brush(); got == nil || !got.Color.Equal(Settings.DefaultBackground()) {
		t.Errorf("default brush = %+v, want the default background", got)
	}
	if c.Font() != Settings.DefaultFont() {
		t.Error("default font should be Settings.DefaultFont()")
	}
	if !c.GetTransform().IsIdentity() {
		t.Error("user transform should start as identity")
	}
}

func TestCanvasOptions(t *testing.T) {
	pen := NewPen(colors.FromRGB(255, 0, 0), 3)
	brush := NewBrush(colors.FromRGB(0, 0, 255))
	f := Settings.DefaultFont().WithSize(20)

	c := NewCanvas(NewBitmap(10, 10).Surface(),
		WithAntialias(false),
		WithInterpolation(InterpolationNearest),
		WithPen(pen),
		WithBrush(brush),
		WithFont(f),
	)
	if c.Antialias() {
		t.Error("WithAntialias(false) ignored")
	}
	if c.interp != InterpolationNearest {
		t.Errorf("interpolation = %v, want nearest", c.interp)
	}
	if c.Pen() != pen || c.Brush() != brush || c.Font() != f {
		t.Error("WithPen/WithBrush/WithFont not applied")
	}
}

func TestSettingsDefaultColors(t *testing.T) {
	t.Cleanup(func() { Settings.SetDefaultColors(colors.Empty, colors.Empty) })

	red, green := colors.FromRGB(255, 0, 0), colors.FromRGB(0, 255, 0)
	Settings.SetDefaultColors(red, green)
	c := NewCanvas(NewBitmap(4, 4).Surface())
	if !c.Pen().Color.Equal(red) || !c.Brush().Color.Equal(green) {
		t.Errorf("canvas defaults = pen %v brush %v, want red and green", c.Pen().Color, c.Brush().Color)
	}

	Settings.SetDefaultColors(colors.Empty, colors.Empty)
	if !Settings.DefaultForeground().Equal(colors.FromKnown(colors.WindowText)) {
		t.Error("empty foreground should restore WindowText")
	}
}

func TestSettingsDefaultFont(t *testing.T) {
	t.Cleanup(func() { Settings.SetDefaultFont(nil) })

	f := Settings.DefaultFont()
	if !f.IsOk() || f.Size() != DefaultFontSize {
		t.Fatalf("DefaultFont() = %v, want Go Regular at %v", f, DefaultFontSize)
	}
	big := f.WithSize(30)
	Settings.SetDefaultFont(big)
	if Settings.DefaultFont() != big {
		t.Error("SetDefaultFont not applied")
	}
	Settings.SetDefaultFont(nil)
	if got := Settings.DefaultFont(); got == nil || got.Size() != DefaultFontSize {
		t.Error("SetDefaultFont(nil) should restore the built-in font")
	}
}

func TestInterpolationString(t *testing.T) {
	tests := []struct {
		i    Interpolation
		want string
	}{
		{InterpolationNearest, "Nearest"},
		{InterpolationBilinear, "Bilinear"},
		{InterpolationCatmullRom, "CatmullRom"},
		{InterpolationLanczos, "Lanczos"},
	}
	for _, tt := range tests {
		if got := tt.i.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if tt.i.interpolator() == nil {
			t.Errorf("%v has no interpolator", tt.i)
		}
	}
}
