package main

import (
	"errors"
	"os"

	img2pdf "github.com/alnah/go-img2pdf"
	"github.com/alnah/go-img2pdf/internal/config"
)

// Exit codes for img2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // Image decoding or PDF generation errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, img2pdf.ErrImage) ||
		errors.Is(err, img2pdf.ErrPDFGeneration) ||
		errors.Is(err, img2pdf.ErrVerify) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, img2pdf.ErrReadImage) ||
		errors.Is(err, img2pdf.ErrWriteOutput) ||
		errors.Is(err, img2pdf.ErrNoImages) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, img2pdf.ErrInvalidInput) ||
		errors.Is(err, img2pdf.ErrInvalidDataURI) ||
		errors.Is(err, img2pdf.ErrInvalidPageSize) ||
		errors.Is(err, img2pdf.ErrInvalidOrientation) ||
		errors.Is(err, img2pdf.ErrInvalidMargin) ||
		errors.Is(err, img2pdf.ErrInvalidScale) ||
		errors.Is(err, img2pdf.ErrInvalidAlign) ||
		errors.Is(err, img2pdf.ErrInvalidPosition) ||
		errors.Is(err, img2pdf.ErrInvalidNumberFormat) ||
		errors.Is(err, img2pdf.ErrInvalidFontSize) ||
		errors.Is(err, img2pdf.ErrInvalidFilter) ||
		errors.Is(err, img2pdf.ErrInvalidColor) ||
		errors.Is(err, img2pdf.ErrInvalidBorder) {
		return ExitUsage
	}

	return ExitGeneral
}
