package img2pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"time"

	"github.com/alnah/go-img2pdf/internal/compose"
	"github.com/alnah/go-img2pdf/internal/fileutil"
	"github.com/alnah/go-img2pdf/internal/imagefx"
	"github.com/alnah/go-img2pdf/internal/layout"
	"github.com/alnah/go-img2pdf/internal/numfmt"
	"github.com/alnah/go-img2pdf/internal/pdfcheck"
	"github.com/alnah/go-img2pdf/internal/render"
	"github.com/alnah/go-img2pdf/internal/source"
)

// Converter turns image lists into PDF documents. A Converter holds no
// per-document state and is safe for concurrent use.
type Converter struct {
	opts     Options
	page     layout.Size
	composer *compose.Composer
	logger   *slog.Logger
	now      func() time.Time
	creator  string
}

// NewConverter validates opts and returns a Converter using them for every
// document.
func NewConverter(opts Options, options ...Option) (*Converter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Converter{
		opts:   opts,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, o := range options {
		o(c)
	}

	c.page = opts.PageSize.layout()
	if opts.PageSize == (PageSize{}) {
		c.page = Letter.layout()
	}

	composeOpts, err := c.composeOptions()
	if err != nil {
		return nil, err
	}
	c.composer = compose.New(composeOpts)

	if box := layout.UsableBox(c.page, opts.Margins); box.Empty() {
		c.logger.Warn("margins leave no room for images",
			"page_width", c.page.Width, "page_height", c.page.Height,
			"usable_width", box.Width, "usable_height", box.Height)
	}

	return c, nil
}

// Options returns the options the Converter was built with.
func (c *Converter) Options() Options { return c.opts }

// composeOptions maps validated public options to the composer's settings,
// filling empty enumerations with their defaults.
func (c *Converter) composeOptions() (compose.Options, error) {
	o := c.opts

	scale, _ := layout.ParseScaleMode(string(o.Scale))
	align, _ := layout.ParseHAlign(string(o.Align))
	valign, _ := layout.ParseVAlign(string(o.VAlign))
	filter, _ := imagefx.ParseFilter(string(o.Filter))
	style, _ := numfmt.ParseStyle(string(o.PageNumbers.Format))
	vertical, _ := layout.ParseVPosition(string(o.PageNumbers.Vertical))
	horizontal, _ := layout.ParseHAlign(string(o.PageNumbers.Horizontal))

	var background color.Color
	if o.Background != "" {
		bg, err := render.ParseColor(o.Background)
		if err != nil {
			return compose.Options{}, fmt.Errorf("%w: %w", ErrInvalidColor, err)
		}
		background = bg
	}

	return compose.Options{
		Margins:      o.Margins,
		Placement:    layout.Placement{Scale: scale, Align: align, VAlign: valign},
		Background:   background,
		Filter:       filter,
		BorderMargin: o.Border.Margin,
		BorderWidth:  o.Border.Width,
		Numbering: compose.Numbering{
			Enabled:    o.PageNumbers.Enabled,
			Style:      style,
			Vertical:   vertical,
			Horizontal: horizontal,
			FontSize:   o.PageNumbers.FontSize,
		},
	}, nil
}

// Convert builds one PDF with a page per image and writes it to in.Writer or
// in.Output. The context is checked before every page.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, in Input) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	sources, err := resolveSources(in)
	if err != nil {
		return nil, err
	}

	surface := render.New(c.page, c.metadata())
	pages := compose.NewDocument(surface)

	for i, src := range sources {
		placed, err := pages.Append(ctx, c.composer, src)
		if err != nil {
			return nil, pageError(ctx, i+1, src, err)
		}
		c.logger.Debug("page composed", "page", i+1, "source", src.String(),
			"x", placed.X, "y", placed.Y, "width", placed.Width, "height", placed.Height)
		if placed.Empty() {
			c.logger.Warn("image has no visible area", "page", i+1, "source", src.String())
		}
	}

	var buf bytes.Buffer
	if err := pages.Finalize(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPDFGeneration, err)
	}
	pdf := buf.Bytes()

	if c.opts.Optimize {
		if pdf, err = pdfcheck.Optimize(pdf); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPDFGeneration, err)
		}
	}
	if c.opts.Verify {
		if err := pdfcheck.Verify(pdf, len(sources)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrVerify, err)
		}
	}

	result := &Document{Pages: pages.Pages(), PDF: pdf}
	if err := c.write(in, result); err != nil {
		return nil, err
	}

	c.logger.Debug("document written", "path", result.Path, "pages", result.Pages, "bytes", len(pdf))
	return result, nil
}

func (c *Converter) metadata() render.Metadata {
	m := c.opts.Metadata
	creator := m.Creator
	if creator == "" {
		creator = c.creator
	}
	return render.Metadata{
		Title:    m.Title,
		Author:   m.Author,
		Subject:  m.Subject,
		Keywords: m.Keywords,
		Creator:  creator,
		Created:  c.now(),
	}
}

func (c *Converter) write(in Input, doc *Document) error {
	if in.Writer != nil {
		if _, err := io.Copy(in.Writer, bytes.NewReader(doc.PDF)); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}

	path := in.Output
	if path == "" {
		path = DefaultOutput
	}
	if err := fileutil.WriteFileAtomic(path, doc.PDF); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	doc.Path = path
	return nil
}

// resolveSources returns the page list: the explicit sources, or the images
// found in the input directory in listing order.
func resolveSources(in Input) ([]Source, error) {
	if in.Dir != "" && len(in.Sources) > 0 {
		return nil, fmt.Errorf("%w: set either Dir or Sources, not both", ErrInvalidInput)
	}

	sources := in.Sources
	if in.Dir != "" {
		found, err := source.ScanDir(in.Dir)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("%w: no %v files in %s", ErrNoImages, source.Extensions(), in.Dir)
		}
		sources = found
	}

	if len(sources) == 0 {
		return nil, ErrNoImages
	}
	return sources, nil
}

// pageError attributes a failure to its page. Cancellation and source errors
// (unreadable file, empty buffer, malformed data URI) keep their own
// identity; everything else is an image error.
func pageError(ctx context.Context, page int, src Source, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return err
	}
	if errors.Is(err, source.ErrReadImage) || errors.Is(err, source.ErrEmptySource) ||
		errors.Is(err, source.ErrInvalidDataURI) {
		return fmt.Errorf("page %d: %w", page, err)
	}
	return fmt.Errorf("%w: page %d (%s): %w", ErrImage, page, src, err)
}
