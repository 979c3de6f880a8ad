package gdi

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font is a parsed OpenType or TrueType font at a point size. At 72 DPI a
// point is one logical pixel. Faces are built per device scale on first
// use and cached. Like the faces it hands out, a Font is meant to be used
// from the drawing goroutine.
type Font struct {
	sfnt *opentype.Font
	size float64

	mu    sync.Mutex
	faces map[float64]font.Face
}

// FontMetrics are vertical font measurements in logical pixels.
type FontMetrics struct {
	Ascent  float64
	Descent float64
	Height  float64
}

// NewFont parses TrueType or OpenType data.
func NewFont(data []byte, size float64) (*Font, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: size %v", ErrInvalidFont, size)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	return &Font{sfnt: f, size: size}, nil
}

// Size returns the point size.
func (f *Font) Size() float64 { return f.size }

// Family returns the family name recorded in the font, or "".
func (f *Font) Family() string {
	name, err := f.sfnt.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// WithSize returns a font sharing f's parsed data at another size.
func (f *Font) WithSize(size float64) *Font {
	if size <= 0 {
		size = f.size
	}
	return &Font{sfnt: f.sfnt, size: size}
}

// IsOk reports whether f holds parsed font data.
func (f *Font) IsOk() bool {
	return f != nil && f.sfnt != nil
}

// face returns the face rasterizing f at scale device pixels per logical
// pixel.
func (f *Font) face(scale float64) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[scale]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    f.size * scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	if f.faces == nil {
		f.faces = make(map[float64]font.Face)
	}
	f.faces[scale] = face
	return face, nil
}

// Metrics returns the vertical metrics of f.
func (f *Font) Metrics() FontMetrics {
	face, err := f.face(1)
	if err != nil {
		return FontMetrics{}
	}
	m := face.Metrics()
	return FontMetrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Height:  fixedToFloat(m.Height),
	}
}

// lineHeight is the extent of one line: ascent plus descent.
func (m FontMetrics) lineHeight() float64 {
	return m.Ascent + m.Descent
}

// Extent returns the size of s drawn with f: the widest line's advance by
// the number of lines times ascent plus descent.
func (f *Font) Extent(s string) (w, h float64) {
	face, err := f.face(1)
	if err != nil {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		w = math.Max(w, fixedToFloat(font.MeasureString(face, line)))
	}
	return w, float64(len(lines)) * f.Metrics().lineHeight()
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
