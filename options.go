package gdi

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Crisp pixel art: no antialiasing, nearest-neighbour images.
//	c := gdi.NewCanvas(s,
//	    gdi.WithAntialias(false),
//	    gdi.WithInterpolation(gdi.InterpolationNearest))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	antialias     bool
	interpolation Interpolation
	pen           *Pen
	brush         *Brush
	font          *Font
}

// defaultOptions returns the options of a canvas created without any.
// Pen, brush and font stay nil until NewCanvas reads Settings.
func defaultOptions() canvasOptions {
	return canvasOptions{
		antialias:     true,
		interpolation: InterpolationBilinear,
	}
}

// WithAntialias switches antialiasing of shapes and text. When off, every
// pixel is either fully covered or untouched.
func WithAntialias(on bool) CanvasOption {
	return func(o *canvasOptions) {
		o.antialias = on
	}
}

// WithInterpolation sets the resampling used by DrawImage when the image
// is transformed.
func WithInterpolation(i Interpolation) CanvasOption {
	return func(o *canvasOptions) {
		o.interpolation = i
	}
}

// WithPen sets the initial pen instead of a one pixel pen in the default
// foreground color.
func WithPen(p *Pen) CanvasOption {
	return func(o *canvasOptions) {
		o.pen = p
	}
}

// WithBrush sets the initial brush instead of a solid brush in the default
// background color.
func WithBrush(b *Brush) CanvasOption {
	return func(o *canvasOptions) {
		o.brush = b
	}
}

// WithFont sets the initial font instead of Settings.DefaultFont.
func WithFont(f *Font) CanvasOption {
	return func(o *canvasOptions) {
		o.font = f
	}
}
