package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gdi"
	"github.com/gogpu/gdi/colors"
	"github.com/gogpu/gdi/surface"
)

func TestRenderBackendsAgree(t *testing.T) {
	top := color.RGBA{25, 50, 100, 255}
	bottom := color.RGBA{124, 124, 149, 255}

	for _, backend := range []string{surface.BackendSoftware, surface.BackendDIB, surface.BackendLocked} {
		t.Run(backend, func(t *testing.T) {
			img, err := render(runConfig{width: 800, height: 600, scale: 1, backend: backend})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got := img.Bounds(); got != image.Rect(0, 0, 800, 600) {
				t.Fatalf("bounds = %v", got)
			}
			if got := color.RGBAModel.Convert(img.At(0, 0)); got != top {
				t.Errorf("top-left = %v, want %v", got, top)
			}
			if got := color.RGBAModel.Convert(img.At(0, 599)); got != bottom {
				t.Errorf("bottom-left = %v, want %v", got, bottom)
			}
		})
	}
}

func TestRenderUnknownBackend(t *testing.T) {
	if _, err := render(runConfig{width: 10, height: 10, scale: 1, backend: "plotter"}); err == nil {
		t.Error("unknown backend rendered")
	}
}

func TestRenderScaled(t *testing.T) {
	img, err := render(runConfig{width: 400, height: 300, scale: 1.5, backend: surface.BackendSoftware})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(600, 450) {
		t.Errorf("size = %v, want 600x450", got)
	}
}

func TestSave(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	path := filepath.Join(t.TempDir(), "sheet.png")
	if err := save(img, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := gdi.DetectBitmapType(data); got != gdi.BitmapTypePNG {
		t.Errorf("detected %v, want png", got)
	}
	b, ok := gdi.LoadBitmap(bytes.NewReader(data), gdi.BitmapTypeAny)
	if !ok || b.Width() != 4 || b.Height() != 3 {
		t.Errorf("reload: ok=%v size=%dx%d", ok, b.Width(), b.Height())
	}
}

func TestLoadPalette(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("colors:\n  Highlight: \"#102030\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := loadPalette(path); err != nil {
		t.Fatalf("loadPalette: %v", err)
	}
	t.Cleanup(func() { colors.SetPalette(nil) })

	if err := loadPalette(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("missing palette file loaded")
	}
}
