// Package imagefx applies color filters to encoded images and converts
// images into a format the PDF backend can embed.
package imagefx

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Sentinel errors for image processing.
var (
	ErrDecode        = errors.New("failed to decode image")
	ErrEncode        = errors.New("failed to encode image")
	ErrUnknownFilter = errors.New("unknown filter")
)

// Filter names a color transformation.
type Filter string

const (
	None      Filter = ""
	Greyscale Filter = "greyscale"
	Sepia     Filter = "sepia"
	Negative  Filter = "negative"
)

// SepiaTint is the chroma applied by the sepia filter.
var SepiaTint = color.NRGBA{R: 112, G: 66, B: 20, A: 255}

// jpegQuality is used when a filtered JPEG is re-encoded.
const jpegQuality = 92

// ParseFilter parses a filter name. "grayscale" is accepted as a spelling of
// greyscale; "" and "none" disable filtering.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "greyscale", "grayscale":
		return Greyscale, nil
	case "sepia":
		return Sepia, nil
	case "negative":
		return Negative, nil
	}
	return None, fmt.Errorf("%w: %q (must be greyscale, sepia, or negative)", ErrUnknownFilter, s)
}

// Names returns the recognised filter names.
func Names() []string {
	return []string{string(Greyscale), string(Sepia), string(Negative)}
}

// Apply runs the filter over an encoded image and returns the re-encoded
// result. JPEG input stays JPEG; every other format is re-encoded as PNG.
// None and unrecognised filters return data unchanged without decoding it.
func Apply(data []byte, f Filter) ([]byte, error) {
	var transform func(image.Image) *image.NRGBA
	switch f {
	case Greyscale:
		transform = imaging.Grayscale
	case Sepia:
		transform = func(img image.Image) *image.NRGBA { return Tint(img, SepiaTint) }
	case Negative:
		transform = imaging.Invert
	default:
		return data, nil
	}

	img, format, err := decode(data)
	if err != nil {
		return nil, err
	}

	out := imaging.PNG
	if format == "jpeg" {
		out = imaging.JPEG
	}
	return encode(transform(img), out)
}

// Tint recolours img with the chroma of c while keeping each pixel's
// luminance. Alpha is preserved.
func Tint(img image.Image, c color.NRGBA) *image.NRGBA {
	tintY := luma(float64(c.R), float64(c.G), float64(c.B))
	dr := float64(c.R) - tintY
	dg := float64(c.G) - tintY
	db := float64(c.B) - tintY

	return imaging.AdjustFunc(img, func(px color.NRGBA) color.NRGBA {
		y := luma(float64(px.R), float64(px.G), float64(px.B))
		return color.NRGBA{
			R: clamp(y + dr),
			G: clamp(y + dg),
			B: clamp(y + db),
			A: px.A,
		}
	})
}

// Normalize returns data in a format the PDF backend embeds natively along
// with its backend type name ("JPG", "PNG" or "GIF"). JPEG, PNG and GIF pass
// through untouched; other decodable formats (WebP, BMP, TIFF) become PNG.
func Normalize(data []byte) ([]byte, string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	switch format {
	case "jpeg":
		return data, "JPG", nil
	case "png":
		return data, "PNG", nil
	case "gif":
		return data, "GIF", nil
	}

	img, _, err := decode(data)
	if err != nil {
		return nil, "", err
	}
	out, err := encode(img, imaging.PNG)
	if err != nil {
		return nil, "", err
	}
	return out, "PNG", nil
}

// decode returns the image with EXIF orientation applied and the name of
// the format it was stored in.
func decode(data []byte) (image.Image, string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return img, format, nil
}

func encode(img image.Image, format imaging.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// luma uses the same Rec. 601 weights as imaging.Grayscale.
func luma(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}

func clamp(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
