package gdi

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/gogpu/gdi/colors"
)

func TestNewBitmapDepths(t *testing.T) {
	tests := []struct {
		name      string
		depth     int
		wantAlpha bool
		wantPixel color.RGBA
	}{
		{"default", DefaultDepth, false, color.RGBA{A: 0xFF}},
		{"rgb", DepthRGB, false, color.RGBA{A: 0xFF}},
		{"argb", DepthARGB, true, color.RGBA{}},
		{"coerced", 16, true, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBitmapWithDepth(3, 2, tt.depth)
			if w, h := b.Size(); w != 3 || h != 2 {
				t.Errorf("Size() = %d x %d, want 3 x 2", w, h)
			}
			if b.HasAlpha() != tt.wantAlpha {
				t.Errorf("HasAlpha() = %v, want %v", b.HasAlpha(), tt.wantAlpha)
			}
			if b.Depth() != DepthARGB {
				t.Errorf("Depth() = %d, want 32", b.Depth())
			}
			if got := b.At(1, 1); got != tt.wantPixel {
				t.Errorf("At(1,1) = %v, want %v", got, tt.wantPixel)
			}
		})
	}
}

func TestNewBitmapFromImageAlpha(t *testing.T) {
	translucentRGBA := image.NewRGBA(image.Rect(0, 0, 2, 2))
	opaqueRGBA := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 3; i < len(opaqueRGBA.Pix); i += 4 {
		opaqueRGBA.Pix[i] = 0xFF
	}

	tests := []struct {
		name string
		img  image.Image
		want bool
	}{
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 2, 2)), true},
		{"gray", image.NewGray(image.Rect(0, 0, 2, 2)), false},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420), false},
		{"opaque rgba", opaqueRGBA, false},
		{"translucent rgba", translucentRGBA, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBitmapFromImage(tt.img)
			if b.HasAlpha() != tt.want {
				t.Errorf("HasAlpha() = %v, want %v", b.HasAlpha(), tt.want)
			}
			if !b.IsOk() {
				t.Error("bitmap should hold pixels")
			}
		})
	}
}

func TestNewBitmapFromImageRebases(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 14, 23))
	img.Set(10, 20, color.RGBA{R: 255, A: 255})
	b := NewBitmapFromImage(img)
	if b.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %v, want origin at (0, 0)", b.Bounds())
	}
	if got := b.At(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("At(0,0) = %v, want red", got)
	}
}

func TestSubBitmap(t *testing.T) {
	b := NewBitmapWithDepth(4, 3, DepthARGB)
	for y := range 3 {
		for x := range 4 {
			b.pix.Set(x, y, colors.FromARGB(uint8(100+x), uint8(10*x), uint8(10*y), 7))
		}
	}

	full := b.SubBitmap(b.Bounds())
	if !bitmapsEqual(full, b) {
		t.Error("SubBitmap of the full bounds differs from the original")
	}
	full.pix.Set(0, 0, colors.FromRGB(1, 2, 3))
	if bitmapsEqual(full, b) {
		t.Error("SubBitmap shares memory with the original")
	}

	part := b.SubBitmap(image.Rect(1, 1, 3, 3))
	if part.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("part Bounds() = %v", part.Bounds())
	}
	if part.At(0, 0) != b.At(1, 1) {
		t.Errorf("part At(0,0) = %v, want %v", part.At(0, 0), b.At(1, 1))
	}
	if !part.HasAlpha() {
		t.Error("SubBitmap should keep the alpha flag")
	}
}

func TestSubBitmapOutOfBounds(t *testing.T) {
	b := NewBitmap(4, 4)
	out := b.SubBitmap(image.Rect(2, 2, 8, 7))
	if w, h := out.Size(); w != 6 || h != 5 {
		t.Errorf("Size() = %d x %d, want the requested 6 x 5", w, h)
	}
	if out.HasAlpha() {
		t.Error("blank sub-bitmap should keep the source's alpha flag")
	}
}

func TestRescale(t *testing.T) {
	b := solidBitmap(4, 4, red)
	before := b.Clone()
	if !b.Rescale(4, 4) {
		t.Fatal("Rescale to the same size failed")
	}
	if !bitmapsEqual(b, before) {
		t.Error("Rescale to the same size changed pixels")
	}

	for _, interp := range []Interpolation{InterpolationNearest, InterpolationBilinear, InterpolationCatmullRom, InterpolationLanczos} {
		t.Run(interp.String(), func(t *testing.T) {
			c := before.Clone()
			if !c.RescaleWith(9, 5, interp) {
				t.Fatal("RescaleWith failed")
			}
			if w, h := c.Size(); w != 9 || h != 5 {
				t.Errorf("Size() = %d x %d, want 9 x 5", w, h)
			}
			if got := c.At(4, 2).(color.RGBA); got.R < 0xF0 || got.A != 0xFF {
				t.Errorf("centre = %v, want opaque red", got)
			}
		})
	}

	if b.Rescale(0, 4) {
		t.Error("Rescale to an empty size should fail")
	}
	if w, h := b.Size(); w != 4 || h != 4 {
		t.Error("failed Rescale changed the size")
	}
}

func TestSetHasAlpha(t *testing.T) {
	b := NewBitmapWithDepth(2, 2, DepthARGB)
	b.pix.Set(0, 0, color.RGBA{R: 0x40, A: 0x80})

	b.SetHasAlpha(false)
	if b.HasAlpha() {
		t.Fatal("SetHasAlpha(false) ignored")
	}
	if got := b.At(0, 0); got != (color.RGBA{R: 0x40, A: 0xFF}) {
		t.Errorf("At(0,0) = %v, want composited over black", got)
	}
	if got := b.At(1, 1); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("At(1,1) = %v, want opaque black", got)
	}

	b.SetHasAlpha(true)
	if !b.HasAlpha() {
		t.Error("SetHasAlpha(true) ignored")
	}
}

func TestGreyscaleAndDisabled(t *testing.T) {
	b := NewBitmapWithDepth(2, 1, DepthARGB)
	b.pix.Set(0, 0, color.RGBA{R: 0xFF, A: 0xFF})
	b.pix.Set(1, 0, color.RGBA{G: 0x80, A: 0x80})

	g := b.ConvertToGreyscale()
	for x := range 2 {
		c := g.At(x, 0).(color.RGBA)
		if c.R != c.G || c.G != c.B {
			t.Errorf("grey pixel %d = %v, want equal channels", x, c)
		}
		if c.A != b.At(x, 0).(color.RGBA).A {
			t.Errorf("grey pixel %d alpha changed", x)
		}
	}
	if got := g.At(0, 0).(color.RGBA).R; got != 76 {
		t.Errorf("grey red = %d, want 76", got)
	}

	d := b.ConvertToDisabled(DefaultDisabledBrightness)
	if got := d.At(0, 0).(color.RGBA).R; got <= 76 {
		t.Errorf("disabled red = %d, want lighter than its grey", got)
	}
	if b.At(0, 0) != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Error("conversions modified the source")
	}
}

func TestBitmapRoundTrip(t *testing.T) {
	src := solidBitmap(6, 5, colors.FromRGB(200, 40, 40))
	tests := []struct {
		typ   BitmapType
		exact bool
	}{
		{BitmapTypePNG, true},
		{BitmapTypeBMP, true},
		{BitmapTypeTIFF, true},
		{BitmapTypeJPEG, false},
		{BitmapTypeGIF, false},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if !src.Save(&buf, tt.typ, 95) {
				t.Fatal("Save failed")
			}
			if got := DetectBitmapType(buf.Bytes()); got != tt.typ {
				t.Errorf("DetectBitmapType() = %v, want %v", got, tt.typ)
			}
			b, ok := LoadBitmap(bytes.NewReader(buf.Bytes()), BitmapTypeAny)
			if !ok {
				t.Fatal("LoadBitmap failed")
			}
			if w, h := b.Size(); w != 6 || h != 5 {
				t.Errorf("Size() = %d x %d, want 6 x 5", w, h)
			}
			if b.HasAlpha() {
				t.Error("opaque bitmap came back with alpha")
			}
			if tt.exact && !bitmapsEqual(b, src) {
				t.Errorf("lossless %v changed pixels: %v", tt.typ, b.At(0, 0))
			}
		})
	}
}

func TestPNGKeepsAlphaFlag(t *testing.T) {
	b := NewBitmapWithDepth(10, 10, DepthARGB)
	c := NewCanvas(b.Surface(), WithBrush(NewBrush(red)))
	if err := c.FillRectangle(0, 0, 10, 10); err != nil {
		t.Fatal(err)
	}
	_ = c.Close()

	var buf bytes.Buffer
	if !b.Save(&buf, BitmapTypePNG, 0) {
		t.Fatal("Save failed")
	}
	// Every pixel is opaque, yet the file carries an alpha channel.
	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := img.(*image.NRGBA); !ok {
		t.Errorf("decoded %T, want *image.NRGBA", img)
	}

	back, ok := LoadBitmap(bytes.NewReader(buf.Bytes()), BitmapTypePNG)
	if !ok || !back.HasAlpha() {
		t.Errorf("reloaded HasAlpha() = %v (ok %v), want true", back.HasAlpha(), ok)
	}
}

func TestPNGTranslucentRoundTrip(t *testing.T) {
	b := NewBitmapWithDepth(2, 1, DepthARGB)
	b.pix.Set(0, 0, color.NRGBA{R: 255, A: 0x80})

	var buf bytes.Buffer
	if !b.Save(&buf, BitmapTypePNG, 0) {
		t.Fatal("Save failed")
	}
	back, _ := LoadBitmap(&buf, BitmapTypePNG)
	got := back.At(0, 0).(color.RGBA)
	if got.A != 0x80 || got.R < 0x7E || got.R > 0x81 {
		t.Errorf("At(0,0) = %v, want half transparent red", got)
	}
	if back.At(1, 0).(color.RGBA).A != 0 {
		t.Error("transparent pixel came back visible")
	}
}

func TestLoadFailureLeavesEmptyBitmap(t *testing.T) {
	b := solidBitmap(3, 3, red)
	b.SetScaleFactor(2)
	b.SetHasAlpha(true)

	if b.Load(strings.NewReader("definitely not an image"), BitmapTypeAny) {
		t.Fatal("Load of garbage succeeded")
	}
	if b.IsOk() {
		t.Error("IsOk() after failed Load = true, want false")
	}
	if w, h := b.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = %d x %d, want 0 x 0", w, h)
	}
	if b.HasAlpha() {
		t.Error("HasAlpha() after failed Load = true")
	}
	if b.ScaleFactor() != 2 {
		t.Errorf("ScaleFactor() = %v, want it kept", b.ScaleFactor())
	}

	// The empty bitmap stays usable.
	if c := b.Clone(); c.IsOk() {
		t.Error("clone of an empty bitmap holds pixels")
	}
	if b.Rescale(2, 2) {
		t.Error("Rescale of an empty bitmap should fail")
	}
}

func TestLoadWrongExplicitType(t *testing.T) {
	var buf bytes.Buffer
	solidBitmap(2, 2, red).Save(&buf, BitmapTypePNG, 0)
	if _, ok := LoadBitmap(&buf, BitmapTypeJPEG); ok {
		t.Error("PNG data decoded as JPEG")
	}
}

func TestSaveUnsupported(t *testing.T) {
	var buf bytes.Buffer
	if solidBitmap(2, 2, red).Save(&buf, BitmapTypeWebP, 0) {
		t.Error("WebP Save should fail")
	}
	if NewBitmap(0, 0).Save(&buf, BitmapTypePNG, 0) {
		t.Error("Save of an empty bitmap should fail")
	}
}

func TestBitmapSurfaceDrawsIntoPixels(t *testing.T) {
	b := NewBitmap(8, 8)
	b.SetScaleFactor(2)
	if w, h := b.LogicalSize(); w != 4 || h != 4 {
		t.Errorf("LogicalSize() = %v x %v, want 4 x 4", w, h)
	}
	s := b.Surface()
	c := NewCanvas(s, WithBrush(NewBrush(green)))
	_ = c.FillRectangle(0, 0, 1, 1)
	_ = c.Close()
	_ = s.Close()

	if got := b.At(1, 1); got != (color.RGBA{G: 0xFF, A: 0xFF}) {
		t.Errorf("At(1,1) = %v, want green", got)
	}
	if got := b.At(2, 2); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("At(2,2) = %v, want untouched black", got)
	}
}

func TestBitmapTypeString(t *testing.T) {
	if got := BitmapTypeTIFF.String(); got != "tiff" {
		t.Errorf("String() = %q", got)
	}
	if got := BitmapType(99).String(); got != "BitmapType(99)" {
		t.Errorf("String() = %q", got)
	}
}

func bitmapsEqual(a, b *Bitmap) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	for y := range a.Height() {
		for x := range a.Width() {
			if a.At(x, y) != b.At(x, y) {
				return false
			}
		}
	}
	return true
}
