package gdi

import (
	"sync"
	"sync/atomic"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gdi/colors"
)

// DefaultFontSize is the point size of the built-in default font.
const DefaultFontSize = 12

// Settings holds process-wide drawing defaults: the font, foreground and
// background colors new canvases start with, and the unscaled-image mode.
// Values are initialised lazily on first read. Settings is safe for
// concurrent use.
var Settings = &GlobalSettings{}

// GlobalSettings is the type of Settings.
type GlobalSettings struct {
	fontOnce sync.Once
	font     atomic.Pointer[Font]

	mu sync.RWMutex
	fg colors.Color
	bg colors.Color

	unscaled atomic.Bool
}

// DefaultFont returns the font new canvases start with. Unless replaced
// with SetDefaultFont it is Go Regular at DefaultFontSize points.
func (s *GlobalSettings) DefaultFont() *Font {
	s.fontOnce.Do(func() {
		if s.font.Load() != nil {
			return
		}
		f, err := NewFont(goregular.TTF, DefaultFontSize)
		if err != nil {
			Logger().Error("gdi: built-in font", "err", err)
			return
		}
		s.font.CompareAndSwap(nil, f)
	})
	return s.font.Load()
}

// SetDefaultFont replaces the default font. A nil font restores Go
// Regular.
func (s *GlobalSettings) SetDefaultFont(f *Font) {
	s.fontOnce.Do(func() {})
	if f == nil {
		f, _ = NewFont(goregular.TTF, DefaultFontSize)
	}
	s.font.Store(f)
}

// DefaultForeground returns the default text and pen color, the
// WindowText known color unless changed.
func (s *GlobalSettings) DefaultForeground() colors.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fg.IsEmpty() {
		return colors.FromKnown(colors.WindowText)
	}
	return s.fg
}

// DefaultBackground returns the default text background and clear color,
// the Window known color unless changed.
func (s *GlobalSettings) DefaultBackground() colors.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bg.IsEmpty() {
		return colors.FromKnown(colors.Window)
	}
	return s.bg
}

// SetDefaultColors replaces the default foreground and background. Empty
// colors restore the built-in defaults.
func (s *GlobalSettings) SetDefaultColors(fg, bg colors.Color) {
	s.mu.Lock()
	s.fg, s.bg = fg, bg
	s.mu.Unlock()
}

// UnscaledDrawImages reports whether DrawImage maps bitmap pixels one to
// one onto device pixels instead of scaling them with the surface.
func (s *GlobalSettings) UnscaledDrawImages() bool {
	return s.unscaled.Load()
}

// SetUnscaledDrawImages switches the unscaled-image mode.
func (s *GlobalSettings) SetUnscaledDrawImages(on bool) {
	s.unscaled.Store(on)
}
