package layout

import (
	"errors"
	"testing"
)

var (
	letter  = Size{Width: 612, Height: 792}
	margin0 = UniformMargins(50)
)

func TestUsableBox(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      Size
		margins   Margins
		want      Rect
		wantEmpty bool
	}{
		{
			name:    "uniform margins",
			page:    letter,
			margins: margin0,
			want:    Rect{X: 50, Y: 50, Width: 512, Height: 692},
		},
		{
			name:    "per-side margins",
			page:    letter,
			margins: Margins{Top: 10, Bottom: 20, Left: 30, Right: 40},
			want:    Rect{X: 30, Y: 10, Width: 542, Height: 762},
		},
		{
			name:      "margins exceed half the page",
			page:      Size{Width: 100, Height: 100},
			margins:   UniformMargins(60),
			want:      Rect{X: 60, Y: 60, Width: -20, Height: -20},
			wantEmpty: true,
		},
		{
			name:      "margins exactly half the page",
			page:      Size{Width: 100, Height: 100},
			margins:   UniformMargins(50),
			want:      Rect{X: 50, Y: 50, Width: 0, Height: 0},
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := UsableBox(tt.page, tt.margins)
			if got != tt.want {
				t.Errorf("UsableBox() = %+v, want %+v", got, tt.want)
			}
			if got.Empty() != tt.wantEmpty {
				t.Errorf("Empty() = %v, want %v", got.Empty(), tt.wantEmpty)
			}
		})
	}
}

func TestPlaceImage(t *testing.T) {
	t.Parallel()

	wide := Size{Width: 1000, Height: 500}
	tall := Size{Width: 100, Height: 200}

	tests := []struct {
		name    string
		natural Size
		p       Placement
		want    Rect
	}{
		{
			name:    "fit wide image centred",
			natural: wide,
			p:       Placement{ScaleFit, AlignCenter, VAlignCenter},
			want:    Rect{X: 50, Y: 268, Width: 512, Height: 256},
		},
		{
			name:    "fit wide image top",
			natural: wide,
			p:       Placement{ScaleFit, AlignCenter, VAlignTop},
			want:    Rect{X: 50, Y: 50, Width: 512, Height: 256},
		},
		{
			name:    "fit wide image bottom",
			natural: wide,
			p:       Placement{ScaleFit, AlignLeft, VAlignBottom},
			want:    Rect{X: 50, Y: 486, Width: 512, Height: 256},
		},
		{
			name:    "fit tall image left",
			natural: tall,
			p:       Placement{ScaleFit, AlignLeft, VAlignCenter},
			want:    Rect{X: 50, Y: 50, Width: 346, Height: 692},
		},
		{
			name:    "fit tall image centred",
			natural: tall,
			p:       Placement{ScaleFit, AlignCenter, VAlignCenter},
			want:    Rect{X: 133, Y: 50, Width: 346, Height: 692},
		},
		{
			name:    "fit tall image right",
			natural: tall,
			p:       Placement{ScaleFit, AlignRight, VAlignCenter},
			want:    Rect{X: 216, Y: 50, Width: 346, Height: 692},
		},
		{
			name:    "fill ignores aspect and alignment",
			natural: tall,
			p:       Placement{ScaleFill, AlignRight, VAlignBottom},
			want:    Rect{X: 50, Y: 50, Width: 512, Height: 692},
		},
		{
			name:    "none keeps natural size at origin",
			natural: tall,
			p:       Placement{ScaleNone, AlignRight, VAlignBottom},
			want:    Rect{X: 50, Y: 50, Width: 100, Height: 200},
		},
		{
			name:    "zero-size image",
			natural: Size{},
			p:       Placement{ScaleFit, AlignLeft, VAlignTop},
			want:    Rect{X: 50, Y: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := PlaceImage(letter, margin0, tt.natural, tt.p)
			if got != tt.want {
				t.Errorf("PlaceImage() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlaceImage_FitScalesUp(t *testing.T) {
	t.Parallel()

	got := PlaceImage(letter, margin0, Size{Width: 64, Height: 64}, DefaultPlacement())
	want := Rect{X: 50, Y: 140, Width: 512, Height: 512}
	if got != want {
		t.Errorf("PlaceImage() = %+v, want %+v", got, want)
	}
}

func TestBorderBox(t *testing.T) {
	t.Parallel()

	got := BorderBox(letter, margin0, 20)
	want := Rect{X: 30, Y: 30, Width: 552, Height: 732}
	if got != want {
		t.Errorf("BorderBox() = %+v, want %+v", got, want)
	}

	if got := BorderBox(letter, margin0, 0); got != UsableBox(letter, margin0) {
		t.Errorf("BorderBox with zero margin = %+v, want usable box", got)
	}
}

func TestPageNumberAnchor(t *testing.T) {
	t.Parallel()

	m := Margins{Top: 40, Bottom: 50, Left: 30, Right: 20}

	tests := []struct {
		name string
		v    VPosition
		h    HAlign
		want Anchor
	}{
		{"bottom center", PositionBottom, AlignCenter, Anchor{Point{306, 767}, AlignCenter, BaselineTop}},
		{"bottom left", PositionBottom, AlignLeft, Anchor{Point{30, 767}, AlignLeft, BaselineTop}},
		{"bottom right", PositionBottom, AlignRight, Anchor{Point{592, 767}, AlignRight, BaselineTop}},
		{"top center", PositionTop, AlignCenter, Anchor{Point{306, 20}, AlignCenter, BaselineBottom}},
		{"top right", PositionTop, AlignRight, Anchor{Point{592, 20}, AlignRight, BaselineBottom}},
		{"unknown align falls back to left", PositionBottom, HAlign("middle"), Anchor{Point{30, 767}, AlignLeft, BaselineTop}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := PageNumberAnchor(letter, m, tt.v, tt.h)
			if got != tt.want {
				t.Errorf("PageNumberAnchor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("scale", func(t *testing.T) {
		t.Parallel()
		for in, want := range map[string]ScaleMode{"": ScaleFit, "FIT": ScaleFit, "fill": ScaleFill, " none ": ScaleNone} {
			got, err := ParseScaleMode(in)
			if err != nil || got != want {
				t.Errorf("ParseScaleMode(%q) = %q, %v; want %q", in, got, err, want)
			}
		}
		if _, err := ParseScaleMode("cover"); !errors.Is(err, ErrUnknownScale) {
			t.Errorf("ParseScaleMode(cover) error = %v, want ErrUnknownScale", err)
		}
	})

	t.Run("align", func(t *testing.T) {
		t.Parallel()
		for in, want := range map[string]HAlign{"": AlignCenter, "left": AlignLeft, "Right": AlignRight} {
			got, err := ParseHAlign(in)
			if err != nil || got != want {
				t.Errorf("ParseHAlign(%q) = %q, %v; want %q", in, got, err, want)
			}
		}
		if _, err := ParseHAlign("justify"); !errors.Is(err, ErrUnknownAlign) {
			t.Errorf("ParseHAlign(justify) error = %v, want ErrUnknownAlign", err)
		}
	})

	t.Run("valign", func(t *testing.T) {
		t.Parallel()
		for in, want := range map[string]VAlign{"": VAlignCenter, "top": VAlignTop, "BOTTOM": VAlignBottom} {
			got, err := ParseVAlign(in)
			if err != nil || got != want {
				t.Errorf("ParseVAlign(%q) = %q, %v; want %q", in, got, err, want)
			}
		}
		if _, err := ParseVAlign("middle"); !errors.Is(err, ErrUnknownVAlign) {
			t.Errorf("ParseVAlign(middle) error = %v, want ErrUnknownVAlign", err)
		}
	})

	t.Run("position", func(t *testing.T) {
		t.Parallel()
		for in, want := range map[string]VPosition{"": PositionBottom, "top": PositionTop, "bottom": PositionBottom} {
			got, err := ParseVPosition(in)
			if err != nil || got != want {
				t.Errorf("ParseVPosition(%q) = %q, %v; want %q", in, got, err, want)
			}
		}
		if _, err := ParseVPosition("center"); !errors.Is(err, ErrUnknownPosition) {
			t.Errorf("ParseVPosition(center) error = %v, want ErrUnknownPosition", err)
		}
	})
}
