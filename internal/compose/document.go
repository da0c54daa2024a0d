package compose

import (
	"context"
	"errors"
	"io"

	"github.com/alnah/go-img2pdf/internal/layout"
	"github.com/alnah/go-img2pdf/internal/source"
)

// ErrFinalized is returned when a finalized document is modified.
var ErrFinalized = errors.New("document already finalized")

// Document is an append-only page sequence on a Surface. It starts with the
// surface's first page and moves to the finalized state after Finalize;
// every call after that fails with ErrFinalized.
type Document struct {
	surface   Surface
	pages     int
	used      bool // the current page already holds an image
	finalized bool
}

// NewDocument wraps a surface whose first page already exists.
func NewDocument(s Surface) *Document {
	return &Document{surface: s, pages: 1}
}

// Pages returns the number of pages in the document.
func (d *Document) Pages() int { return d.pages }

// Finalized reports whether Finalize has been called.
func (d *Document) Finalized() bool { return d.finalized }

// AddPage starts a new page.
func (d *Document) AddPage() error {
	if d.finalized {
		return ErrFinalized
	}
	d.surface.NewPage()
	d.pages++
	d.used = false
	return nil
}

// Append composes src onto the document, starting a new page first unless
// the current page is still empty. n appended images produce n pages and
// n-1 page breaks.
func (d *Document) Append(ctx context.Context, c *Composer, src source.Source) (layout.Rect, error) {
	if d.finalized {
		return layout.Rect{}, ErrFinalized
	}
	if d.used {
		if err := d.AddPage(); err != nil {
			return layout.Rect{}, err
		}
	}
	d.used = true
	return c.ComposePage(ctx, d.surface, d.pages, src)
}

// Finalize serializes the document to w. The document is finalized even when
// writing fails.
func (d *Document) Finalize(w io.Writer) error {
	if d.finalized {
		return ErrFinalized
	}
	d.finalized = true
	if err := d.surface.Err(); err != nil {
		return err
	}
	return d.surface.Output(w)
}
