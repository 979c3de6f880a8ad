// Command gdidemo renders a sample sheet with the gdi drawing library.
//
// The sheet is drawn through one of the surface strategies (an owned
// software buffer, the cached DIB or a locked bottom-up native buffer) and
// written as an image file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gdi"
	"github.com/gogpu/gdi/colors"
	"github.com/gogpu/gdi/region"
	"github.com/gogpu/gdi/surface"
)

type runConfig struct {
	width, height int
	scale         float64
	backend       string
	palette       string
	output        string
	verbose       bool
}

func getConfig() (runConfig, error) {
	var conf runConfig
	flag.IntVar(&conf.width, "width", 800, "logical image width")
	flag.IntVar(&conf.height, "height", 600, "logical image height")
	flag.Float64Var(&conf.scale, "scale", 1, "device pixels per logical pixel")
	flag.StringVar(&conf.backend, "backend", surface.BackendSoftware, "surface: software, dib or locked")
	flag.StringVar(&conf.palette, "palette", "", "TOML or YAML palette file")
	flag.StringVar(&conf.output, "output", "demo.png", "output file")
	flag.BoolVar(&conf.verbose, "v", false, "log debug messages")
	flag.Parse()

	if conf.width <= 0 || conf.height <= 0 {
		return conf, fmt.Errorf("invalid size %dx%d", conf.width, conf.height)
	}
	if conf.scale <= 0 {
		return conf, fmt.Errorf("invalid scale %v", conf.scale)
	}
	return conf, nil
}

func main() {
	conf, err := getConfig()
	if err != nil {
		slog.Error("gdidemo", "err", err)
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if conf.verbose {
		level = slog.LevelDebug
	}
	gdi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if conf.palette != "" {
		if err := loadPalette(conf.palette); err != nil {
			slog.Error("gdidemo: palette", "path", conf.palette, "err", err)
			os.Exit(1)
		}
	}

	img, err := render(conf)
	if err != nil {
		slog.Error("gdidemo: render", "backend", conf.backend, "err", err)
		os.Exit(1)
	}
	if err := save(img, conf.output); err != nil {
		slog.Error("gdidemo: save", "path", conf.output, "err", err)
		os.Exit(1)
	}
	slog.Info("gdidemo: saved", "path", conf.output,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy(), "backend", conf.backend)
}

func loadPalette(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	format := colors.PaletteTOML
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = colors.PaletteYAML
	}
	p, err := colors.LoadPalette(f, format)
	if err != nil {
		return err
	}
	colors.SetPalette(p)
	return nil
}

// render draws the sheet and returns a top-down copy of the device pixels.
func render(conf runConfig) (image.Image, error) {
	dw := int(math.Ceil(float64(conf.width) * conf.scale))
	dh := int(math.Ceil(float64(conf.height) * conf.scale))

	switch conf.backend {
	case surface.BackendSoftware:
		s, err := surface.OpenStrategy(conf.backend,
			surface.Request{Width: dw, Height: dh, Scale: conf.scale})
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return drawOn(s)

	case surface.BackendDIB:
		cache := surface.NewDIBCache()
		defer cache.Close()
		s := cache.Acquire(dw, dh, conf.scale)
		if err := drawSheet(s); err != nil {
			return nil, err
		}
		out := image.NewRGBA(image.Rect(0, 0, dw, dh))
		if dib, ok := s.(*surface.DIBSurface); ok {
			dib.Present(out, image.Point{})
		}
		return out, nil

	case surface.BackendLocked:
		var out image.Image
		buf := newBottomUpBuffer(dw, dh)
		err := surface.WithLocked(buf, conf.scale, func(s surface.Surface) error {
			var err error
			out, err = drawOn(s)
			return err
		})
		return out, err
	}
	return nil, fmt.Errorf("unknown backend %q", conf.backend)
}

func drawOn(s surface.Surface) (image.Image, error) {
	if err := drawSheet(s); err != nil {
		return nil, err
	}
	return snapshot(s)
}

// snapshot copies the surface target in image row order.
func snapshot(s surface.Surface) (image.Image, error) {
	target := s.Target()
	if target == nil {
		return nil, errors.New("surface is not ok")
	}
	b := target.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if s.Orientation() == surface.TopDown {
		draw.Draw(out, out.Rect, target, b.Min, draw.Src)
		return out, nil
	}
	for y := 0; y < b.Dy(); y++ {
		row := image.Rect(0, y, b.Dx(), y+1)
		draw.Draw(out, row, target, image.Pt(b.Min.X, b.Max.Y-1-y), draw.Src)
	}
	return out, nil
}

func save(img image.Image, path string) error {
	t := gdi.BitmapTypePNG
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		t = gdi.BitmapTypeJPEG
	case ".bmp":
		t = gdi.BitmapTypeBMP
	case ".tif", ".tiff":
		t = gdi.BitmapTypeTIFF
	case ".gif":
		t = gdi.BitmapTypeGIF
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bm := gdi.NewBitmapFromImage(img)
	if !bm.Save(f, t, 90) {
		f.Close()
		return fmt.Errorf("encode %v failed", t)
	}
	return f.Close()
}

func drawSheet(s surface.Surface) error {
	c := gdi.NewCanvas(s)
	defer c.Close()
	if !c.IsOk() {
		return fmt.Errorf("%s surface is not ok", s.Backend())
	}

	w, h := c.Size()
	drawBackground(c, w, h)
	drawShapes(c)
	drawTransforms(c)
	drawPaths(c)
	drawClipped(c)
	if err := drawLabels(c, w, h); err != nil {
		return err
	}
	return c.Flush()
}

func drawBackground(c *gdi.Canvas, w, h float64) {
	_ = c.SetPen(gdi.NewPen(colors.FromKnown(colors.Transparent), 0))
	const steps = 100
	for i := range steps {
		t := float64(i) / steps
		col := colors.FromRGB(uint8(25+t*100), uint8(50+t*75), uint8(100+t*50))
		_ = c.SetBrush(gdi.NewBrush(col))
		_ = c.FillRectangle(0, h*t, w, h/steps+1)
	}
}

func drawShapes(c *gdi.Canvas) {
	for _, s := range []struct {
		col    colors.Color
		cx, cy float64
	}{
		{colors.FromKnown(colors.Red).WithAlpha(200), 150, 150},
		{colors.FromKnown(colors.Lime).WithAlpha(200), 200, 150},
		{colors.FromKnown(colors.Blue).WithAlpha(200), 175, 200},
	} {
		_ = c.SetBrush(gdi.NewBrush(s.col))
		_ = c.FillCircle(s.cx, s.cy, 60)
	}

	_ = c.SetBrush(gdi.NewBrush(colors.FromKnown(colors.Gold)))
	_ = c.SetPen(gdi.NewPen(colors.FromKnown(colors.White), 4))
	_ = c.DrawRoundedRectangle(350, 100, 120, 80, 15)

	_ = c.SetPen(gdi.NewPen(colors.FromKnown(colors.Highlight), 3).WithStyle(gdi.PenStyleShortDash))
	_ = c.DrawLine(350, 210, 470, 210)
}

func drawTransforms(c *gdi.Canvas) {
	base := colors.NewHLS(colors.FromKnown(colors.CornflowerBlue))
	_ = c.SetPen(gdi.NewPen(colors.FromKnown(colors.Black), 1))
	for i := range 8 {
		c.Push()
		c.Translate(600, 150)
		c.Rotate(float64(i) * math.Pi / 4)
		col := base.Lighter(float64(i) / 8)
		if i%2 == 1 {
			col = base.Darker(float64(i) / 8)
		}
		_ = c.SetBrush(gdi.NewBrush(col.WithAlpha(180)))
		_ = c.DrawRectangle(-30, -30, 60, 60)
		_ = c.Pop()
	}
}

func drawPaths(c *gdi.Canvas) {
	c.Push()
	defer func() { _ = c.Pop() }()
	c.Translate(150, 400)

	_ = c.SetPen(gdi.NewPen(colors.FromKnown(colors.Orange), 6).WithCap(gdi.LineCapRound))
	_ = c.DrawBeziers([]gdi.Point{
		{X: 0, Y: 0}, {X: 50, Y: -50}, {X: 100, Y: 50}, {X: 150, Y: 0},
		{X: 200, Y: -30}, {X: 250, Y: 30}, {X: 300, Y: 0},
	})

	const points = 5
	star := make([]gdi.Point, 0, points*2)
	for i := range points * 2 {
		r := 60.0
		if i%2 == 1 {
			r = 30
		}
		a := float64(i)*math.Pi/points - math.Pi/2
		star = append(star, gdi.Point{X: 400 + r*math.Cos(a), Y: r * math.Sin(a)})
	}
	_ = c.SetPen(gdi.NewPen(colors.FromKnown(colors.Maroon), 2).WithJoin(gdi.LineJoinMiter))
	_ = c.SetBrush(gdi.NewBrush(colors.FromKnown(colors.Yellow)))
	_ = c.DrawPolygon(star)

	_ = c.SetBrush(gdi.NewBrush(colors.FromKnown(colors.Teal)))
	_ = c.DrawPieSlice(520, -50, 100, 100, 30, 300)
}

func drawClipped(c *gdi.Canvas) {
	c.Push()
	defer func() { _ = c.Pop() }()

	rg := c.NewRegion()
	rg.Union(region.NewRect(40, 480, 60, 60))
	rg.Union(region.NewRect(120, 480, 60, 60))
	if err := c.SetClippingRegionFrom(rg); err != nil {
		return
	}
	_ = c.SetPen(gdi.NewPen(colors.FromKnown(colors.Navy), 1))
	_ = c.SetBrush(gdi.NewBrush(colors.FromKnown(colors.Pink)))
	_ = c.DrawEllipse(30, 470, 160, 80)
}

func drawLabels(c *gdi.Canvas, w, h float64) error {
	c.SetTextForeground(colors.FromKnown(colors.HighlightText))
	c.SetTextBackground(colors.FromKnown(colors.Highlight))
	c.SetBackgroundMode(gdi.BackgroundSolid)
	label := fmt.Sprintf("gdi %s surface at %gx", c.Surface().Backend(), c.ScaleFactor())
	tw, th := c.GetTextExtent(label, nil)
	if err := c.DrawText(label, w-tw-10, h-th-10); err != nil {
		return err
	}

	c.SetBackgroundMode(gdi.BackgroundTransparent)
	c.SetTextForeground(colors.FromKnown(colors.White))
	return c.DrawRotatedText("rotated", 40, h-40, 30)
}

// bottomUpBuffer stands in for a native window buffer stored bottom-up,
// the way Windows DIB sections usually are.
type bottomUpBuffer struct {
	data          []byte
	width, height int
	locked        bool
}

func newBottomUpBuffer(w, h int) *bottomUpBuffer {
	return &bottomUpBuffer{data: make([]byte, w*h*4), width: w, height: h}
}

func (b *bottomUpBuffer) LockPixels() (surface.LockedPixels, error) {
	if b.locked {
		return surface.LockedPixels{}, errors.New("buffer already locked")
	}
	b.locked = true
	return surface.LockedPixels{
		Data:   b.data,
		Stride: -b.width * 4,
		Width:  b.width,
		Height: b.height,
		Format: surface.FormatBGRAPremul,
	}, nil
}

func (b *bottomUpBuffer) UnlockPixels() error {
	b.locked = false
	return nil
}
