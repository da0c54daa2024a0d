package img2pdf

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alnah/go-img2pdf/internal/imagefx"
	"github.com/alnah/go-img2pdf/internal/layout"
	"github.com/alnah/go-img2pdf/internal/numfmt"
	"github.com/alnah/go-img2pdf/internal/render"
	"github.com/alnah/go-img2pdf/internal/source"
)

// DefaultOutput is the output path used when Input.Output is empty.
const DefaultOutput = "output.pdf"

// Defaults applied by DefaultOptions.
const (
	DefaultMargin       = 50
	DefaultBorderMargin = 20
	DefaultBorderWidth  = 1
	DefaultFontSize     = 12
)

// Layout enumerations.
type (
	ScaleMode = layout.ScaleMode
	HAlign    = layout.HAlign
	VAlign    = layout.VAlign
	VPosition = layout.VPosition
)

const (
	ScaleFit  = layout.ScaleFit
	ScaleFill = layout.ScaleFill
	ScaleNone = layout.ScaleNone

	AlignLeft   = layout.AlignLeft
	AlignCenter = layout.AlignCenter
	AlignRight  = layout.AlignRight

	VAlignTop    = layout.VAlignTop
	VAlignCenter = layout.VAlignCenter
	VAlignBottom = layout.VAlignBottom

	PositionTop    = layout.PositionTop
	PositionBottom = layout.PositionBottom
)

// NumberFormat selects how page numbers are written.
type NumberFormat = numfmt.Style

const (
	NumberArabic     = numfmt.Arabic
	NumberAlphaLower = numfmt.AlphaLower
	NumberAlphaUpper = numfmt.AlphaUpper
	NumberRomanLower = numfmt.RomanLower
	NumberRomanUpper = numfmt.RomanUpper
)

// Filter is a color transformation applied to every image.
type Filter = imagefx.Filter

const (
	FilterNone      = imagefx.None
	FilterGreyscale = imagefx.Greyscale
	FilterSepia     = imagefx.Sepia
	FilterNegative  = imagefx.Negative
)

// Margins holds the four page margins in points.
type Margins = layout.Margins

// UniformMargins returns margins with the same value on every side.
func UniformMargins(v float64) Margins { return layout.UniformMargins(v) }

// Source is one page image: a file path, an encoded buffer or a base64 data URI.
type Source = source.Source

// FromPath, FromBytes and FromDataURI build image sources; ParseSource
// classifies a string argument as a data URI or a path.
var (
	FromPath    = source.FromPath
	FromBytes   = source.FromBytes
	FromDataURI = source.FromDataURI
	ParseSource = source.Parse
)

// PageSize is a page width and height in points.
type PageSize struct {
	Width  float64
	Height float64
}

func (s PageSize) layout() layout.Size {
	return layout.Size{Width: s.Width, Height: s.Height}
}

// Border configures the frame drawn around the usable area.
type Border struct {
	Margin float64 // distance outside the usable area
	Width  float64 // stroke width; 0 disables the border
}

// PageNumbers configures page numbering.
type PageNumbers struct {
	Enabled    bool
	Format     NumberFormat // empty means arabic
	Vertical   VPosition    // empty means bottom
	Horizontal HAlign       // empty means center
	FontSize   float64      // 0 means DefaultFontSize
}

// Metadata is written to the PDF information dictionary.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
}

// Options holds document-wide settings. Start from DefaultOptions; in a
// zero Options, margins and border are 0 and empty enumerations take their
// defaults.
type Options struct {
	PageSize    PageSize // zero means Letter
	Margins     Margins
	Scale       ScaleMode
	Align       HAlign
	VAlign      VAlign
	Background  string // "#rrggbb", "#rgb" or a color name; empty for none
	Filter      Filter
	Border      Border
	PageNumbers PageNumbers
	Metadata    Metadata
	Verify      bool // validate the produced PDF and its page count with pdfcpu
	Optimize    bool // rewrite the produced PDF with pdfcpu's optimizer
}

// DefaultOptions returns Letter pages with 50pt margins, fitted and centred
// images, a 1pt border 20pt outside the margins and no page numbers.
func DefaultOptions() Options {
	return Options{
		PageSize: Letter,
		Margins:  UniformMargins(DefaultMargin),
		Scale:    ScaleFit,
		Align:    AlignCenter,
		VAlign:   VAlignCenter,
		Border:   Border{Margin: DefaultBorderMargin, Width: DefaultBorderWidth},
		PageNumbers: PageNumbers{
			Format:     NumberArabic,
			Vertical:   PositionBottom,
			Horizontal: AlignCenter,
			FontSize:   DefaultFontSize,
		},
	}
}

// Validate checks every option and returns the first problem found,
// wrapping one of the ErrInvalid* sentinels.
func (o *Options) Validate() error {
	if o == nil {
		return nil
	}

	if o.PageSize.Width < 0 || o.PageSize.Height < 0 ||
		(o.PageSize != (PageSize{}) && (o.PageSize.Width == 0 || o.PageSize.Height == 0)) {
		return fmt.Errorf("%w: %gx%g (width and height must be positive)", ErrInvalidPageSize, o.PageSize.Width, o.PageSize.Height)
	}

	m := o.Margins
	if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 {
		return fmt.Errorf("%w: margins must not be negative", ErrInvalidMargin)
	}

	if _, err := layout.ParseScaleMode(string(o.Scale)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScale, err)
	}
	if _, err := layout.ParseHAlign(string(o.Align)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAlign, err)
	}
	if _, err := layout.ParseVAlign(string(o.VAlign)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAlign, err)
	}

	if o.Background != "" {
		if _, err := render.ParseColor(o.Background); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidColor, err)
		}
	}
	if _, err := imagefx.ParseFilter(string(o.Filter)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	if o.Border.Width < 0 || o.Border.Margin < 0 {
		return fmt.Errorf("%w: width and margin must not be negative", ErrInvalidBorder)
	}

	return o.PageNumbers.validate()
}

func (p PageNumbers) validate() error {
	if _, err := numfmt.ParseStyle(string(p.Format)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNumberFormat, err)
	}
	if _, err := layout.ParseVPosition(string(p.Vertical)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	}
	if _, err := layout.ParseHAlign(string(p.Horizontal)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	}
	if p.FontSize < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidFontSize, p.FontSize)
	}
	return nil
}

// Input describes one conversion. Set either Dir or Sources.
type Input struct {
	Dir     string    // directory scanned for .jpg, .jpeg and .png files
	Sources []Source  // explicit page list, in order
	Output  string    // output path; DefaultOutput when empty
	Writer  io.Writer // when set, the PDF is written here instead of Output
}

// Document describes a finished conversion.
type Document struct {
	Path  string // file written, empty when Input.Writer was used
	Pages int
	PDF   []byte
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for per-page debug records and warnings.
// The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock sets the time source used for the PDF creation date.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// WithCreator sets the default creator written to the PDF metadata when
// Options.Metadata.Creator is empty.
func WithCreator(creator string) Option {
	return func(c *Converter) {
		c.creator = creator
	}
}
