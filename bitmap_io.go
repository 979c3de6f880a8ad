package gdi

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// BitmapType selects an image file format.
type BitmapType uint8

const (
	// BitmapTypeAny detects the format from the content when loading.
	BitmapTypeAny BitmapType = iota
	BitmapTypePNG
	BitmapTypeJPEG
	BitmapTypeGIF
	BitmapTypeBMP
	BitmapTypeTIFF
	// BitmapTypeWebP can be loaded but not saved.
	BitmapTypeWebP
)

func (t BitmapType) String() string {
	switch t {
	case BitmapTypeAny:
		return "any"
	case BitmapTypePNG:
		return "png"
	case BitmapTypeJPEG:
		return "jpeg"
	case BitmapTypeGIF:
		return "gif"
	case BitmapTypeBMP:
		return "bmp"
	case BitmapTypeTIFF:
		return "tiff"
	case BitmapTypeWebP:
		return "webp"
	}
	return fmt.Sprintf("BitmapType(%d)", t)
}

var errUnknownFormat = errors.New("gdi: unknown image format")

// typeByExtension maps filetype matcher extensions to formats.
var typeByExtension = map[string]BitmapType{
	"png":  BitmapTypePNG,
	"jpg":  BitmapTypeJPEG,
	"gif":  BitmapTypeGIF,
	"bmp":  BitmapTypeBMP,
	"tif":  BitmapTypeTIFF,
	"webp": BitmapTypeWebP,
}

// DetectBitmapType identifies the format of encoded image data from its
// leading bytes. It returns BitmapTypeAny when the format is unknown.
func DetectBitmapType(data []byte) BitmapType {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return BitmapTypeAny
	}
	return typeByExtension[kind.Extension]
}

// LoadBitmap decodes a bitmap from r. On failure it returns an empty,
// valid bitmap and false.
func LoadBitmap(r io.Reader, t BitmapType) (*Bitmap, bool) {
	b := &Bitmap{scale: 1}
	ok := b.Load(r, t)
	return b, ok
}

// Load replaces b's pixels with the image decoded from r. A failed decode
// leaves b empty (zero pixels, no alpha), logs a warning and returns
// false. The scale factor is kept.
func (b *Bitmap) Load(r io.Reader, t BitmapType) bool {
	img, t, err := decodeBitmap(r, t)
	if err != nil {
		Logger().Warn("gdi: bitmap decode failed", "type", t, "err", err)
		b.reset()
		return false
	}
	scale := b.scale
	*b = *NewBitmapFromImage(img)
	b.SetScaleFactor(scale)
	return true
}

func decodeBitmap(r io.Reader, t BitmapType) (image.Image, BitmapType, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, t, err
	}
	if t == BitmapTypeAny {
		if t = DetectBitmapType(data); t == BitmapTypeAny {
			return nil, t, errUnknownFormat
		}
	}

	rd := bytes.NewReader(data)
	var img image.Image
	switch t {
	case BitmapTypePNG:
		img, err = png.Decode(rd)
	case BitmapTypeJPEG:
		img, err = jpeg.Decode(rd)
	case BitmapTypeGIF:
		img, err = gif.Decode(rd)
	case BitmapTypeBMP:
		img, err = bmp.Decode(rd)
	case BitmapTypeTIFF:
		img, err = tiff.Decode(rd)
	case BitmapTypeWebP:
		img, err = webp.Decode(rd)
	default:
		err = fmt.Errorf("unknown bitmap type %v", t)
	}
	return img, t, err
}

// Save encodes b to w. quality applies to JPEG: 1..100, with 0 meaning
// the encoder default. A bitmap with alpha is written with an alpha
// channel even when every pixel is opaque, where the format allows it.
// WebP cannot be saved. Failures are logged and reported as false.
func (b *Bitmap) Save(w io.Writer, t BitmapType, quality int) bool {
	if !b.IsOk() {
		Logger().Warn("gdi: save of empty bitmap", "type", t)
		return false
	}
	img := b.encodable(t)

	var err error
	switch t {
	case BitmapTypePNG:
		err = png.Encode(w, img)
	case BitmapTypeJPEG:
		opts := &jpeg.Options{Quality: jpeg.DefaultQuality}
		if quality > 0 {
			opts.Quality = min(quality, 100)
		}
		err = jpeg.Encode(w, img, opts)
	case BitmapTypeGIF:
		err = gif.Encode(w, img, nil)
	case BitmapTypeBMP:
		err = bmp.Encode(w, img)
	case BitmapTypeTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("cannot encode %v", t)
	}
	if err != nil {
		Logger().Warn("gdi: bitmap encode failed", "type", t, "err", err)
		return false
	}
	return true
}

// encodable returns b as the image handed to the encoder for t. Opaque
// bitmaps are passed as opaque RGBA. Bitmaps with alpha use straight
// alpha; for PNG they are marked translucent so the encoder keeps the
// channel even when every pixel is opaque.
func (b *Bitmap) encodable(t BitmapType) image.Image {
	if !b.hasAlpha {
		p := b.pix.Clone()
		makeOpaque(p)
		return p.StdImage()
	}
	src := b.rgba()
	n := image.NewNRGBA(src.Rect)
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		for x := src.Rect.Min.X; x < src.Rect.Max.X; x++ {
			n.SetNRGBA(x, y, color.NRGBAModel.Convert(src.RGBAAt(x, y)).(color.NRGBA))
		}
	}
	if t == BitmapTypePNG && n.Opaque() {
		return translucent{n}
	}
	return n
}

// translucent reports itself as not opaque so that encoders choosing a
// color type from Opaque write an alpha channel.
type translucent struct {
	*image.NRGBA
}

func (translucent) Opaque() bool { return false }
