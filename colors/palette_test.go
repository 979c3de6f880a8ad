package colors

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultPaletteIsComplete(t *testing.T) {
	p := DefaultPalette()
	if p.Len() != int(knownCount)-1 {
		t.Errorf("Len() = %d, want %d", p.Len(), knownCount-1)
	}
	if DefaultPalette() != p {
		t.Error("DefaultPalette should be built once")
	}
}

func TestLoadPaletteTOML(t *testing.T) {
	src := `
[colors]
Control = "#ECECEC"
highlighttext = "#000000"
`
	p, err := LoadPalette(strings.NewReader(src), PaletteTOML)
	if err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}
	if v, _ := p.Resolve(Control); v != 0xFFECECEC {
		t.Errorf("Control = %#08x, want 0xffececec", v)
	}
	if v, _ := p.Resolve(HighlightText); v != 0xFF000000 {
		t.Errorf("HighlightText = %#08x", v)
	}
	// Untouched entries keep built-in values.
	if v, _ := p.Resolve(Window); v != builtinValues[Window] {
		t.Errorf("Window = %#08x, want built-in", v)
	}
}

func TestLoadPaletteYAML(t *testing.T) {
	src := "colors:\n  ControlDark: \"#707070\"\n"
	p, err := LoadPalette(strings.NewReader(src), PaletteYAML)
	if err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}
	if v, _ := p.Resolve(ControlDark); v != 0xFF707070 {
		t.Errorf("ControlDark = %#08x", v)
	}
}

func TestLoadPaletteErrors(t *testing.T) {
	_, err := LoadPalette(strings.NewReader("[colors]\nNoSuchColor = \"#fff\"\n"), PaletteTOML)
	if !errors.Is(err, ErrUnknownName) {
		t.Errorf("err = %v, want ErrUnknownName", err)
	}
	_, err = LoadPalette(strings.NewReader("[colors]\nControl = \"#ff\"\n"), PaletteTOML)
	if !errors.Is(err, ErrBadHex) {
		t.Errorf("err = %v, want ErrBadHex", err)
	}
	_, err = LoadPalette(strings.NewReader(""), PaletteFormat(9))
	if !errors.Is(err, ErrBadFormat) {
		t.Errorf("err = %v, want ErrBadFormat", err)
	}
}
