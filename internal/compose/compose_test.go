package compose

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/alnah/go-img2pdf/internal/imagefx"
	"github.com/alnah/go-img2pdf/internal/layout"
	"github.com/alnah/go-img2pdf/internal/numfmt"
	"github.com/alnah/go-img2pdf/internal/source"
)

// ---------------------------------------------------------------------------
// Recording surface
// ---------------------------------------------------------------------------

type recorder struct {
	page   layout.Size
	calls  []string
	texts  []string
	loaded [][]byte
	err    error
}

func newRecorder() *recorder {
	return &recorder{page: layout.Size{Width: 612, Height: 792}}
}

func (r *recorder) PageSize() layout.Size { return r.page }

func (r *recorder) FillPage(c color.Color) {
	cr, cg, cb, _ := c.RGBA()
	r.calls = append(r.calls, fmt.Sprintf("fill(%d,%d,%d)", cr>>8, cg>>8, cb>>8))
}

func (r *recorder) ResetFill() { r.calls = append(r.calls, "reset") }

func (r *recorder) LoadImage(data []byte, format string) (Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, err
	}
	r.loaded = append(r.loaded, data)
	r.calls = append(r.calls, "load("+format+")")
	return Image{Name: "img", Natural: layout.Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}}, nil
}

func (r *recorder) DrawImage(_ Image, rect layout.Rect) {
	r.calls = append(r.calls, fmt.Sprintf("image(%g,%g,%g,%g)", rect.X, rect.Y, rect.Width, rect.Height))
}

func (r *recorder) StrokeRect(rect layout.Rect, width float64) {
	r.calls = append(r.calls, fmt.Sprintf("stroke(%g,%g,%g,%g,%g)", rect.X, rect.Y, rect.Width, rect.Height, width))
}

func (r *recorder) DrawText(text string, a layout.Anchor, size float64) {
	r.texts = append(r.texts, text)
	r.calls = append(r.calls, fmt.Sprintf("text(%s,%g,%g,%s,%g)", text, a.Point.X, a.Point.Y, a.Align, size))
}

func (r *recorder) NewPage() { r.calls = append(r.calls, "newpage") }

func (r *recorder) Output(w io.Writer) error {
	_, err := io.WriteString(w, "%PDF")
	return err
}

func (r *recorder) Err() error { return r.err }

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func defaultOptions() Options {
	return Options{
		Margins:      layout.UniformMargins(50),
		Placement:    layout.DefaultPlacement(),
		BorderMargin: 20,
		BorderWidth:  1,
	}
}

// ---------------------------------------------------------------------------
// TestComposePage
// ---------------------------------------------------------------------------

func TestComposePage_DrawOrder(t *testing.T) {
	t.Parallel()

	opts := defaultOptions()
	opts.Background = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	opts.Numbering = Numbering{Enabled: true, Style: numfmt.Arabic, Vertical: layout.PositionBottom, Horizontal: layout.AlignCenter}

	rec := newRecorder()
	src := source.FromBytes(pngBytes(t, 100, 50, color.White))

	placed, err := New(opts).ComposePage(context.Background(), rec, 1, src)
	if err != nil {
		t.Fatalf("ComposePage() error: %v", err)
	}

	want := []string{
		"fill(255,0,0)",
		"reset",
		"load(PNG)",
		"image(50,268,512,256)",
		"stroke(30,30,552,732,1)",
		"text(1,306,767,center,12)",
	}
	if strings.Join(rec.calls, " ") != strings.Join(want, " ") {
		t.Errorf("calls =\n  %v\nwant\n  %v", rec.calls, want)
	}
	if placed != (layout.Rect{X: 50, Y: 268, Width: 512, Height: 256}) {
		t.Errorf("placed = %+v", placed)
	}
}

func TestComposePage_OptionalSteps(t *testing.T) {
	t.Parallel()

	opts := defaultOptions()
	opts.BorderWidth = 0

	rec := newRecorder()
	if _, err := New(opts).ComposePage(context.Background(), rec, 1, source.FromBytes(pngBytes(t, 10, 10, color.Black))); err != nil {
		t.Fatal(err)
	}

	// Notes:
	// - no background, border or numbering: only the image is drawn
	if rec.count("fill") != 0 || rec.count("stroke") != 0 || rec.count("text") != 0 {
		t.Errorf("unexpected decorations: %v", rec.calls)
	}
	if rec.count("image") != 1 {
		t.Errorf("image drawn %d times, want 1", rec.count("image"))
	}
}

func TestComposePage_NumberStyle(t *testing.T) {
	t.Parallel()

	opts := defaultOptions()
	opts.Numbering = Numbering{Enabled: true, Style: numfmt.RomanUpper, Vertical: layout.PositionTop, Horizontal: layout.AlignRight, FontSize: 9}

	rec := newRecorder()
	if _, err := New(opts).ComposePage(context.Background(), rec, 14, source.FromBytes(pngBytes(t, 4, 4, color.Black))); err != nil {
		t.Fatal(err)
	}
	if got := rec.calls[len(rec.calls)-1]; got != "text(XIV,562,25,right,9)" {
		t.Errorf("last call = %q", got)
	}
}

func TestComposePage_DataURIBypassesFilter(t *testing.T) {
	t.Parallel()

	raw := pngBytes(t, 3, 3, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	opts := defaultOptions()
	opts.Filter = imagefx.Negative

	rec := newRecorder()
	c := New(opts)
	if _, err := c.ComposePage(context.Background(), rec, 1, source.FromDataURI(uri)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ComposePage(context.Background(), rec, 2, source.FromBytes(raw)); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(rec.loaded[0], raw) {
		t.Error("data URI image was filtered")
	}
	if bytes.Equal(rec.loaded[1], raw) {
		t.Error("buffer image was not filtered")
	}
}

func TestComposePage_Errors(t *testing.T) {
	t.Parallel()

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		rec := newRecorder()
		_, err := New(defaultOptions()).ComposePage(ctx, rec, 1, source.FromBytes(pngBytes(t, 1, 1, color.Black)))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
		if len(rec.calls) != 0 {
			t.Errorf("surface touched after cancel: %v", rec.calls)
		}
	})

	t.Run("corrupt image", func(t *testing.T) {
		t.Parallel()
		_, err := New(defaultOptions()).ComposePage(context.Background(), newRecorder(), 1, source.FromBytes([]byte("junk")))
		if !errors.Is(err, imagefx.ErrDecode) {
			t.Errorf("error = %v, want imagefx.ErrDecode", err)
		}
	})

	t.Run("bad data uri", func(t *testing.T) {
		t.Parallel()
		_, err := New(defaultOptions()).ComposePage(context.Background(), newRecorder(), 1, source.FromDataURI("data:image/png;base64,@@"))
		if !errors.Is(err, source.ErrInvalidDataURI) {
			t.Errorf("error = %v, want source.ErrInvalidDataURI", err)
		}
	})

	t.Run("surface error", func(t *testing.T) {
		t.Parallel()
		rec := newRecorder()
		rec.err = errors.New("backend broke")
		_, err := New(defaultOptions()).ComposePage(context.Background(), rec, 1, source.FromBytes(pngBytes(t, 1, 1, color.Black)))
		if err == nil || err.Error() != "backend broke" {
			t.Errorf("error = %v, want backend error", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestDocument
// ---------------------------------------------------------------------------

func TestDocument_PageBreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		images    int
		wantBreak int
	}{
		{1, 0},
		{3, 2},
		{10, 9},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d images", tt.images), func(t *testing.T) {
			t.Parallel()

			rec := newRecorder()
			doc := NewDocument(rec)
			c := New(defaultOptions())
			img := pngBytes(t, 2, 2, color.White)

			for i := 0; i < tt.images; i++ {
				if _, err := doc.Append(context.Background(), c, source.FromBytes(img)); err != nil {
					t.Fatalf("Append(%d) error: %v", i, err)
				}
			}

			if got := rec.count("newpage"); got != tt.wantBreak {
				t.Errorf("new pages = %d, want %d", got, tt.wantBreak)
			}
			if doc.Pages() != tt.images {
				t.Errorf("Pages() = %d, want %d", doc.Pages(), tt.images)
			}
		})
	}
}

func TestDocument_PageNumbersFollowPages(t *testing.T) {
	t.Parallel()

	opts := defaultOptions()
	opts.Numbering = Numbering{Enabled: true, Style: numfmt.AlphaLower}

	rec := newRecorder()
	doc := NewDocument(rec)
	c := New(opts)
	img := pngBytes(t, 2, 2, color.White)
	for i := 0; i < 11; i++ {
		if _, err := doc.Append(context.Background(), c, source.FromBytes(img)); err != nil {
			t.Fatal(err)
		}
	}

	if got := strings.Join(rec.texts, ","); got != "1,2,3,4,5,6,7,8,9,a,b" {
		t.Errorf("page numbers = %s", got)
	}
}

func TestDocument_Finalize(t *testing.T) {
	t.Parallel()

	rec := newRecorder()
	doc := NewDocument(rec)
	c := New(defaultOptions())
	if _, err := doc.Append(context.Background(), c, source.FromBytes(pngBytes(t, 2, 2, color.White))); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := doc.Finalize(&buf); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if buf.String() != "%PDF" {
		t.Errorf("output = %q", buf.String())
	}
	if !doc.Finalized() {
		t.Error("Finalized() = false")
	}

	if err := doc.Finalize(&buf); !errors.Is(err, ErrFinalized) {
		t.Errorf("second Finalize() error = %v, want ErrFinalized", err)
	}
	if err := doc.AddPage(); !errors.Is(err, ErrFinalized) {
		t.Errorf("AddPage() error = %v, want ErrFinalized", err)
	}
	if _, err := doc.Append(context.Background(), c, source.FromBytes([]byte("x"))); !errors.Is(err, ErrFinalized) {
		t.Errorf("Append() error = %v, want ErrFinalized", err)
	}
}

func TestDocument_FinalizeSurfaceError(t *testing.T) {
	t.Parallel()

	rec := newRecorder()
	rec.err = errors.New("broken")
	doc := NewDocument(rec)

	var buf bytes.Buffer
	if err := doc.Finalize(&buf); err == nil {
		t.Fatal("Finalize() succeeded with a failed surface")
	}
	if buf.Len() != 0 {
		t.Errorf("output written despite error: %q", buf.String())
	}
}
