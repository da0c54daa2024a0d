package compose

import (
	"image/color"
	"io"

	"github.com/alnah/go-img2pdf/internal/layout"
)

// Image is a picture registered with a Surface, ready to be drawn.
type Image struct {
	Name    string
	Natural layout.Size // intrinsic size in points
}

// Surface is the drawing backend a page is composed on. Coordinates are in
// points from the top-left corner of the current page.
//
// Drawing methods do not return errors; a backend records the first failure
// and reports it from Err, the way fpdf does. LoadImage takes the format
// names returned by imagefx.Normalize.
type Surface interface {
	PageSize() layout.Size
	FillPage(c color.Color)
	ResetFill()
	LoadImage(data []byte, format string) (Image, error)
	DrawImage(img Image, r layout.Rect)
	StrokeRect(r layout.Rect, width float64)
	DrawText(text string, a layout.Anchor, fontSize float64)
	NewPage()
	Output(w io.Writer) error
	Err() error
}
