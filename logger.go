package gdi

import (
	"log/slog"

	"github.com/gogpu/gdi/internal/glog"
)

// SetLogger configures the logger for gdi and all its sub-packages.
// By default, gdi produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by gdi:
//   - [slog.LevelDebug]: buffer allocation, cache reuse, backend fallback
//   - [slog.LevelInfo]: lifecycle events (GPU context bound)
//   - [slog.LevelWarn]: expected failures (decode, rescale, depth coercion)
//   - [slog.LevelError]: copies that failed and left state unchanged
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	gdi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	glog.Set(l)
}

// Logger returns the current logger used by gdi.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return glog.L()
}
