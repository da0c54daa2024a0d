package img2pdf

import (
	"errors"

	"github.com/alnah/go-img2pdf/internal/source"
)

// Sentinel errors for library operations.
var (
	ErrNoImages      = errors.New("no images to convert")
	ErrInvalidInput  = errors.New("invalid input")
	ErrImage         = errors.New("image could not be placed")
	ErrPDFGeneration = errors.New("PDF generation failed")
	ErrWriteOutput   = errors.New("failed to write output")
	ErrVerify        = errors.New("PDF verification failed")

	// Image source errors.
	ErrReadImage      = source.ErrReadImage
	ErrInvalidDataURI = source.ErrInvalidDataURI

	// Option validation errors.
	ErrInvalidPageSize     = errors.New("invalid page size")
	ErrInvalidOrientation  = errors.New("invalid orientation")
	ErrInvalidMargin       = errors.New("invalid margin")
	ErrInvalidScale        = errors.New("invalid scale mode")
	ErrInvalidAlign        = errors.New("invalid alignment")
	ErrInvalidPosition     = errors.New("invalid page number position")
	ErrInvalidNumberFormat = errors.New("invalid page number format")
	ErrInvalidFontSize     = errors.New("invalid font size")
	ErrInvalidFilter       = errors.New("invalid filter")
	ErrInvalidColor        = errors.New("invalid color")
	ErrInvalidBorder       = errors.New("invalid border")
)
