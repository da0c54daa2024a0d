package img2pdf

import (
	"fmt"
	"slices"
	"strings"
)

// Orientation values.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Common page sizes in points (1/72 inch), portrait.
var (
	Letter = PageSize{Width: 612, Height: 792}
	Legal  = PageSize{Width: 612, Height: 1008}
	A4     = PageSize{Width: 595.28, Height: 841.89}
)

// pageSizes maps lowercase names to portrait dimensions in points.
var pageSizes = map[string]PageSize{
	"letter":    Letter,
	"legal":     Legal,
	"tabloid":   {Width: 792, Height: 1224},
	"executive": {Width: 521.86, Height: 756},
	"folio":     {Width: 612, Height: 936},

	"4a0": {Width: 4768.18, Height: 6740.79},
	"2a0": {Width: 3370.39, Height: 4767.87},
	"a0":  {Width: 2383.94, Height: 3370.39},
	"a1":  {Width: 1683.78, Height: 2383.94},
	"a2":  {Width: 1190.55, Height: 1683.78},
	"a3":  {Width: 841.89, Height: 1190.55},
	"a4":  A4,
	"a5":  {Width: 419.53, Height: 595.28},
	"a6":  {Width: 297.64, Height: 419.53},
	"a7":  {Width: 209.76, Height: 297.64},
	"a8":  {Width: 147.40, Height: 209.76},
	"a9":  {Width: 104.88, Height: 147.40},
	"a10": {Width: 73.70, Height: 104.88},

	"b0":  {Width: 2834.65, Height: 4008.19},
	"b1":  {Width: 2004.09, Height: 2834.65},
	"b2":  {Width: 1417.32, Height: 2004.09},
	"b3":  {Width: 1000.63, Height: 1417.32},
	"b4":  {Width: 708.66, Height: 1000.63},
	"b5":  {Width: 498.90, Height: 708.66},
	"b6":  {Width: 354.33, Height: 498.90},
	"b7":  {Width: 249.45, Height: 354.33},
	"b8":  {Width: 175.75, Height: 249.45},
	"b9":  {Width: 124.72, Height: 175.75},
	"b10": {Width: 87.87, Height: 124.72},

	"c0":  {Width: 2599.37, Height: 3676.54},
	"c1":  {Width: 1836.85, Height: 2599.37},
	"c2":  {Width: 1298.27, Height: 1836.85},
	"c3":  {Width: 918.43, Height: 1298.27},
	"c4":  {Width: 649.13, Height: 918.43},
	"c5":  {Width: 459.21, Height: 649.13},
	"c6":  {Width: 323.15, Height: 459.21},
	"c7":  {Width: 229.61, Height: 323.15},
	"c8":  {Width: 161.57, Height: 229.61},
	"c9":  {Width: 113.39, Height: 161.57},
	"c10": {Width: 79.37, Height: 113.39},
}

// PageSizeNames returns the recognised page size names, sorted.
func PageSizeNames() []string {
	names := make([]string, 0, len(pageSizes))
	for name := range pageSizes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LookupPageSize resolves a named size, case-insensitively, and applies the
// orientation. An empty orientation means portrait.
func LookupPageSize(name, orientation string) (PageSize, error) {
	size, ok := pageSizes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return PageSize{}, fmt.Errorf("%w: %q", ErrInvalidPageSize, name)
	}
	return size.Orient(orientation)
}

// Orient returns the size rotated to the given orientation.
func (s PageSize) Orient(orientation string) (PageSize, error) {
	portrait := PageSize{Width: min(s.Width, s.Height), Height: max(s.Width, s.Height)}

	switch strings.ToLower(strings.TrimSpace(orientation)) {
	case "", OrientationPortrait:
		return portrait, nil
	case OrientationLandscape:
		return PageSize{Width: portrait.Height, Height: portrait.Width}, nil
	}
	return PageSize{}, fmt.Errorf("%w: %q (must be portrait or landscape)", ErrInvalidOrientation, orientation)
}
