package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for option parsing.
var (
	ErrUnknownScale    = errors.New("unknown scale mode")
	ErrUnknownAlign    = errors.New("unknown horizontal alignment")
	ErrUnknownVAlign   = errors.New("unknown vertical alignment")
	ErrUnknownPosition = errors.New("unknown vertical position")
)

// ScaleMode decides how an image is sized inside the usable box.
type ScaleMode string

const (
	ScaleFit  ScaleMode = "fit"  // keep aspect ratio, fit inside the box
	ScaleFill ScaleMode = "fill" // stretch to the box
	ScaleNone ScaleMode = "none" // natural size at the box origin
)

// HAlign is a horizontal alignment.
type HAlign string

const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"
)

// VAlign is a vertical alignment inside the usable box.
type VAlign string

const (
	VAlignTop    VAlign = "top"
	VAlignCenter VAlign = "center"
	VAlignBottom VAlign = "bottom"
)

// VPosition selects the margin band that holds the page number.
type VPosition string

const (
	PositionTop    VPosition = "top"
	PositionBottom VPosition = "bottom"
)

// Baseline tells on which side of the anchor's y the text is drawn.
type Baseline int

const (
	// BaselineTop puts the top of the text at the anchor; the text hangs below.
	BaselineTop Baseline = iota
	// BaselineBottom puts the bottom of the text at the anchor; the text sits above.
	BaselineBottom
)

// ParseScaleMode parses fit, fill or none. Empty yields ScaleFit.
func ParseScaleMode(s string) (ScaleMode, error) {
	switch v := ScaleMode(normalize(s)); v {
	case "":
		return ScaleFit, nil
	case ScaleFit, ScaleFill, ScaleNone:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q (must be fit, fill, or none)", ErrUnknownScale, s)
}

// ParseHAlign parses left, center or right. Empty yields AlignCenter.
func ParseHAlign(s string) (HAlign, error) {
	switch v := HAlign(normalize(s)); v {
	case "":
		return AlignCenter, nil
	case AlignLeft, AlignCenter, AlignRight:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q (must be left, center, or right)", ErrUnknownAlign, s)
}

// ParseVAlign parses top, center or bottom. Empty yields VAlignCenter.
func ParseVAlign(s string) (VAlign, error) {
	switch v := VAlign(normalize(s)); v {
	case "":
		return VAlignCenter, nil
	case VAlignTop, VAlignCenter, VAlignBottom:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q (must be top, center, or bottom)", ErrUnknownVAlign, s)
}

// ParseVPosition parses top or bottom. Empty yields PositionBottom.
func ParseVPosition(s string) (VPosition, error) {
	switch v := VPosition(normalize(s)); v {
	case "":
		return PositionBottom, nil
	case PositionTop, PositionBottom:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q (must be top or bottom)", ErrUnknownPosition, s)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
