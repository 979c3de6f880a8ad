package gdi

import "errors"

// Programmer errors. They are returned from the call, or raised as a panic
// when built with the gdidebug tag.
var (
	// ErrInvalidPen is returned when a stroke runs with a nil or malformed pen.
	ErrInvalidPen = errors.New("gdi: invalid pen")

	// ErrInvalidBrush is returned when a fill runs with a nil or malformed brush.
	ErrInvalidBrush = errors.New("gdi: invalid brush")

	// ErrInvalidFont is returned for a nil font or unparsable font data.
	ErrInvalidFont = errors.New("gdi: invalid font")

	// ErrInvalidBitmap is returned when a nil bitmap is drawn.
	ErrInvalidBitmap = errors.New("gdi: invalid bitmap")

	// ErrIndexOutOfRange is returned for point or segment counts that do
	// not fit the requested primitive.
	ErrIndexOutOfRange = errors.New("gdi: index out of range")
)

// ErrUnsupported is returned by operations the rasterizer does not
// implement: the even-odd fill rule, flood fill and non-copy raster
// operations.
var ErrUnsupported = errors.New("gdi: unsupported operation")

// misuse reports a programmer error.
func misuse(err error) error {
	if debugChecks {
		panic(err)
	}
	return err
}
