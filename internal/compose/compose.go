// Package compose draws image pages onto a Surface: background, placed
// image, border and page number, always in that order.
package compose

import (
	"context"
	"fmt"
	"image/color"

	"github.com/alnah/go-img2pdf/internal/imagefx"
	"github.com/alnah/go-img2pdf/internal/layout"
	"github.com/alnah/go-img2pdf/internal/numfmt"
	"github.com/alnah/go-img2pdf/internal/source"
)

// DefaultFontSize is the page-number size in points.
const DefaultFontSize = 12

// Numbering configures page-number rendering.
type Numbering struct {
	Enabled    bool
	Style      numfmt.Style
	Vertical   layout.VPosition
	Horizontal layout.HAlign
	FontSize   float64 // 0 uses DefaultFontSize
}

// Options holds the per-page decoration settings. They are uniform across
// a document.
type Options struct {
	Margins      layout.Margins
	Placement    layout.Placement
	Background   color.Color // nil leaves the page blank
	Filter       imagefx.Filter
	BorderMargin float64
	BorderWidth  float64 // 0 disables the border
	Numbering    Numbering
}

// Composer renders single pages. It keeps no state between pages, so one
// Composer can serve any number of documents.
type Composer struct {
	opts Options
}

// New returns a Composer for the given options.
func New(opts Options) *Composer {
	if opts.Numbering.FontSize <= 0 {
		opts.Numbering.FontSize = DefaultFontSize
	}
	return &Composer{opts: opts}
}

// Options returns the settings the Composer was built with.
func (c *Composer) Options() Options { return c.opts }

// ComposePage draws page number pageNum from src on the current page of s and
// returns the rectangle the image was placed in.
func (c *Composer) ComposePage(ctx context.Context, s Surface, pageNum int, src source.Source) (layout.Rect, error) {
	if err := ctx.Err(); err != nil {
		return layout.Rect{}, err
	}

	page := s.PageSize()

	if c.opts.Background != nil {
		s.FillPage(c.opts.Background)
		s.ResetFill()
	}

	img, err := c.loadImage(s, src)
	if err != nil {
		return layout.Rect{}, err
	}
	placed := layout.PlaceImage(page, c.opts.Margins, img.Natural, c.opts.Placement)
	s.DrawImage(img, placed)

	if c.opts.BorderWidth > 0 {
		s.StrokeRect(layout.BorderBox(page, c.opts.Margins, c.opts.BorderMargin), c.opts.BorderWidth)
	}

	if n := c.opts.Numbering; n.Enabled {
		text, err := numfmt.Format(pageNum, n.Style)
		if err != nil {
			return layout.Rect{}, fmt.Errorf("page number: %w", err)
		}
		anchor := layout.PageNumberAnchor(page, c.opts.Margins, n.Vertical, n.Horizontal)
		s.DrawText(text, anchor, n.FontSize)
	}

	return placed, s.Err()
}

// loadImage resolves src, applies the color filter and registers the result
// with the surface. Data URIs are embedded as decoded, without filtering.
func (c *Composer) loadImage(s Surface, src source.Source) (Image, error) {
	data, err := src.Bytes()
	if err != nil {
		return Image{}, err
	}

	if src.Kind() != source.KindDataURI {
		data, err = imagefx.Apply(data, c.opts.Filter)
		if err != nil {
			return Image{}, err
		}
	}

	data, format, err := imagefx.Normalize(data)
	if err != nil {
		return Image{}, err
	}
	return s.LoadImage(data, format)
}
