// Package layout computes page geometry: the usable box left by the margins,
// where an image lands in it, the decorative border box and the anchor point
// for page numbers. All functions are pure; coordinates are in points with the
// origin at the top-left corner of the page and y growing downwards.
package layout

// Size is a width/height pair in points.
type Size struct {
	Width  float64
	Height float64
}

// Margins holds the four page margins in points.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// UniformMargins returns margins with the same value on every side.
func UniformMargins(v float64) Margins {
	return Margins{Top: v, Bottom: v, Left: v, Right: v}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Empty reports whether the rectangle has no visible area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Point is a position on the page.
type Point struct {
	X float64
	Y float64
}

// Placement groups the image scaling and alignment choices.
type Placement struct {
	Scale  ScaleMode
	Align  HAlign
	VAlign VAlign
}

// DefaultPlacement is fit, centred on both axes.
func DefaultPlacement() Placement {
	return Placement{Scale: ScaleFit, Align: AlignCenter, VAlign: VAlignCenter}
}

// UsableBox returns the page area inside the margins.
// Margins larger than the page yield a box with zero or negative size;
// callers can detect this with Rect.Empty.
func UsableBox(page Size, m Margins) Rect {
	return Rect{
		X:      m.Left,
		Y:      m.Top,
		Width:  page.Width - m.Left - m.Right,
		Height: page.Height - m.Top - m.Bottom,
	}
}

// PlaceImage returns the rectangle an image of the given natural size occupies.
func PlaceImage(page Size, m Margins, natural Size, p Placement) Rect {
	box := UsableBox(page, m)

	switch p.Scale {
	case ScaleFill:
		return box
	case ScaleNone:
		return Rect{X: box.X, Y: box.Y, Width: natural.Width, Height: natural.Height}
	}

	w, h := fitSize(natural, Size{Width: box.Width, Height: box.Height})

	x := box.X
	switch p.Align {
	case AlignCenter:
		x += (box.Width - w) / 2
	case AlignRight:
		x += box.Width - w
	}

	y := box.Y
	switch p.VAlign {
	case VAlignCenter:
		y += (box.Height - h) / 2
	case VAlignBottom:
		y += box.Height - h
	}

	return Rect{X: x, Y: y, Width: w, Height: h}
}

// fitSize scales natural to the largest size that fits in bounds while
// keeping its aspect ratio.
func fitSize(natural, bounds Size) (w, h float64) {
	if natural.Width <= 0 || natural.Height <= 0 {
		return 0, 0
	}
	ratio := natural.Width / natural.Height
	if bounds.Width/ratio > bounds.Height {
		return bounds.Height * ratio, bounds.Height
	}
	return bounds.Width, bounds.Width / ratio
}

// BorderBox returns the frame drawn around the usable box, pushed outwards
// by borderMargin on every side.
func BorderBox(page Size, m Margins, borderMargin float64) Rect {
	box := UsableBox(page, m)
	return Rect{
		X:      box.X - borderMargin,
		Y:      box.Y - borderMargin,
		Width:  box.Width + 2*borderMargin,
		Height: box.Height + 2*borderMargin,
	}
}

// Anchor is where page-number text is attached.
// Align tells how the text extends horizontally from Point.X and Baseline
// tells whether it sits above or hangs below Point.Y.
type Anchor struct {
	Point    Point
	Align    HAlign
	Baseline Baseline
}

// PageNumberAnchor computes the anchor for a page number. The number is
// placed halfway into the top or bottom margin band. Top-positioned text sits
// on the anchor, bottom-positioned text hangs from it, so it reads inside the
// band instead of running off the page edge.
func PageNumberAnchor(page Size, m Margins, v VPosition, h HAlign) Anchor {
	a := Anchor{Align: h}

	switch h {
	case AlignCenter:
		a.Point.X = page.Width / 2
	case AlignRight:
		a.Point.X = page.Width - m.Right
	default:
		a.Align = AlignLeft
		a.Point.X = m.Left
	}

	if v == PositionTop {
		a.Point.Y = m.Top / 2
		a.Baseline = BaselineBottom
	} else {
		a.Point.Y = page.Height - m.Bottom/2
		a.Baseline = BaselineTop
	}

	return a
}
