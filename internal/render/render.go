// Package render implements compose.Surface on top of fpdf.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/alnah/go-img2pdf/internal/compose"
	"github.com/alnah/go-img2pdf/internal/layout"
)

// ErrLoadImage is returned when the PDF backend rejects an image.
var ErrLoadImage = errors.New("failed to load image")

// Font used for page numbers. Core fonts need no embedding.
const (
	fontFamily = "Helvetica"

	// Helvetica ascender and descender, as a fraction of the font size.
	ascent  = 0.718
	descent = 0.207
)

// Metadata is written to the PDF information dictionary.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Created  time.Time // zero leaves fpdf's default (now)
}

// Surface draws pages with fpdf. Units are points, origin top-left.
type Surface struct {
	pdf    *fpdf.Fpdf
	page   layout.Size
	images int
}

var _ compose.Surface = (*Surface)(nil)

// New creates a document whose pages are all page-sized, with its first page
// already added.
func New(page layout.Size, meta Metadata) *Surface {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	if meta.Subject != "" {
		pdf.SetSubject(meta.Subject, true)
	}
	if meta.Keywords != "" {
		pdf.SetKeywords(meta.Keywords, true)
	}
	if meta.Creator != "" {
		pdf.SetCreator(meta.Creator, true)
	}
	if !meta.Created.IsZero() {
		pdf.SetCreationDate(meta.Created)
	}

	pdf.AddPage()
	return &Surface{pdf: pdf, page: page}
}

func (s *Surface) PageSize() layout.Size { return s.page }

// PageCount returns the number of pages added so far.
func (s *Surface) PageCount() int { return s.pdf.PageNo() }

func (s *Surface) FillPage(c color.Color) {
	r, g, b := rgb(c)
	s.pdf.SetFillColor(r, g, b)
	s.pdf.Rect(0, 0, s.page.Width, s.page.Height, "F")
}

func (s *Surface) ResetFill() {
	s.pdf.SetFillColor(0, 0, 0)
}

// LoadImage registers an encoded JPG, PNG or GIF image under a fresh name.
func (s *Surface) LoadImage(data []byte, format string) (compose.Image, error) {
	s.images++
	name := fmt.Sprintf("img%d", s.images)

	info := s.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: format}, bytes.NewReader(data))
	if err := s.pdf.Error(); err != nil {
		return compose.Image{}, fmt.Errorf("%w: %w", ErrLoadImage, err)
	}
	if info == nil {
		return compose.Image{}, fmt.Errorf("%w: unsupported %s data", ErrLoadImage, format)
	}

	return compose.Image{
		Name:    name,
		Natural: layout.Size{Width: info.Width(), Height: info.Height()},
	}, nil
}

// DrawImage places img in r. Empty rectangles draw nothing; fpdf would
// otherwise fall back to the image's natural size.
func (s *Surface) DrawImage(img compose.Image, r layout.Rect) {
	if r.Empty() {
		return
	}
	s.pdf.ImageOptions(img.Name, r.X, r.Y, r.Width, r.Height, false,
		fpdf.ImageOptions{AllowNegativePosition: true}, 0, "")
}

func (s *Surface) StrokeRect(r layout.Rect, width float64) {
	s.pdf.SetDrawColor(0, 0, 0)
	s.pdf.SetLineWidth(width)
	s.pdf.Rect(r.X, r.Y, r.Width, r.Height, "D")
}

// DrawText writes a single line of text at the anchor. fpdf draws text on
// its baseline, so the anchor's y is shifted by the font's ascent or descent.
func (s *Surface) DrawText(text string, a layout.Anchor, fontSize float64) {
	s.pdf.SetFont(fontFamily, "", fontSize)
	s.pdf.SetTextColor(0, 0, 0)

	w := s.pdf.GetStringWidth(text)
	x := a.Point.X
	switch a.Align {
	case layout.AlignCenter:
		x -= w / 2
	case layout.AlignRight:
		x -= w
	}

	y := a.Point.Y + ascent*fontSize
	if a.Baseline == layout.BaselineBottom {
		y = a.Point.Y - descent*fontSize
	}

	s.pdf.Text(x, y, text)
}

func (s *Surface) NewPage() {
	s.pdf.AddPage()
}

// Output writes the finished PDF to w. The surface cannot be drawn on
// afterwards.
func (s *Surface) Output(w io.Writer) error {
	return s.pdf.Output(w)
}

func (s *Surface) Err() error {
	return s.pdf.Error()
}

// rgb converts c to 8-bit channels, un-premultiplying any alpha.
func rgb(c color.Color) (r, g, b int) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B)
}
