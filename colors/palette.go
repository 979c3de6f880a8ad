package colors

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gdi/internal/glog"
)

// Palette errors.
var (
	// ErrUnknownName is returned when a palette file names a color that is
	// not a KnownColor.
	ErrUnknownName = errors.New("colors: unknown color name")

	// ErrBadFormat is returned for an unsupported PaletteFormat.
	ErrBadFormat = errors.New("colors: unsupported palette format")
)

// Palette is a name→value table used to resolve known colors.
// The platform layer supplies one with its system colors; the core only
// reads it. Palette is safe for concurrent use.
type Palette struct {
	mu     sync.RWMutex
	values map[KnownColor]uint32
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{values: make(map[KnownColor]uint32)}
}

// Set assigns an 0xAARRGGBB value to k.
func (p *Palette) Set(k KnownColor, argb uint32) {
	if !k.IsValid() {
		return
	}
	p.mu.Lock()
	p.values[k] = argb
	p.mu.Unlock()
}

// Resolve returns the value registered for k.
func (p *Palette) Resolve(k KnownColor) (uint32, bool) {
	p.mu.RLock()
	v, ok := p.values[k]
	p.mu.RUnlock()
	return v, ok
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.values)
}

// Clone returns an independent copy.
func (p *Palette) Clone() *Palette {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c := &Palette{values: make(map[KnownColor]uint32, len(p.values))}
	for k, v := range p.values {
		c.values[k] = v
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultPalette *Palette
	current        atomic.Pointer[Palette]
)

// DefaultPalette returns the built-in palette. It is built on first use.
func DefaultPalette() *Palette {
	defaultOnce.Do(func() {
		p := NewPalette()
		for k := KnownNone + 1; k < knownCount; k++ {
			p.values[k] = builtinValues[k]
		}
		defaultPalette = p
	})
	return defaultPalette
}

// CurrentPalette returns the palette used to resolve known colors.
func CurrentPalette() *Palette {
	if p := current.Load(); p != nil {
		return p
	}
	return DefaultPalette()
}

// SetPalette registers p as the palette for known-color resolution.
// Passing nil restores the built-in palette.
func SetPalette(p *Palette) {
	current.Store(p)
}

var (
	nameOnce  sync.Once
	nameIndex map[string]KnownColor
)

// LookupKnown finds a known color by name, ignoring case.
func LookupKnown(name string) (KnownColor, bool) {
	nameOnce.Do(func() {
		fold := cases.Fold()
		nameIndex = make(map[string]KnownColor, knownCount)
		for k := KnownNone + 1; k < knownCount; k++ {
			nameIndex[fold.String(knownNames[k])] = k
		}
	})
	k, ok := nameIndex[cases.Fold().String(name)]
	return k, ok
}

// PaletteFormat selects the palette file syntax.
type PaletteFormat uint8

const (
	// PaletteTOML reads a [colors] table from TOML.
	PaletteTOML PaletteFormat = iota

	// PaletteYAML reads a colors: mapping from YAML.
	PaletteYAML
)

type paletteFile struct {
	Colors map[string]string `toml:"colors" yaml:"colors"`
}

// LoadPalette reads a palette file. Entries override the built-in values,
// so a file only needs to list the colors it changes:
//
//	[colors]
//	Control = "#ECECEC"
//	Highlight = "#3874D8"
func LoadPalette(r io.Reader, format PaletteFormat) (*Palette, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("colors: read palette: %w", err)
	}

	var file paletteFile
	switch format {
	case PaletteTOML:
		err = toml.Unmarshal(data, &file)
	case PaletteYAML:
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, ErrBadFormat
	}
	if err != nil {
		return nil, fmt.Errorf("colors: parse palette: %w", err)
	}

	p := DefaultPalette().Clone()
	for name, value := range file.Colors {
		k, ok := LookupKnown(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
		}
		c, err := ParseHex(value)
		if err != nil {
			return nil, fmt.Errorf("colors: palette entry %q: %w", name, err)
		}
		p.Set(k, c.ARGB())
	}
	glog.L().Debug("colors: palette loaded", "entries", len(file.Colors))
	return p, nil
}
