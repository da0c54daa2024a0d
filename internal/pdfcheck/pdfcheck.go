// Package pdfcheck inspects and post-processes generated PDFs with pdfcpu.
package pdfcheck

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Sentinel errors for PDF checks.
var (
	ErrInvalidPDF       = errors.New("invalid PDF")
	ErrPageMismatch     = errors.New("page count mismatch")
	ErrOptimize         = errors.New("failed to optimize PDF")
	errNothingToInspect = errors.New("empty PDF data")
)

var disableConfigDir sync.Once

// config returns a relaxed pdfcpu configuration. pdfcpu's on-disk config
// directory is never created.
func config() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PageCount returns the number of pages in pdf.
func PageCount(pdf []byte) (int, error) {
	if len(pdf) == 0 {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPDF, errNothingToInspect)
	}
	n, err := api.PageCount(bytes.NewReader(pdf), config())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPDF, err)
	}
	return n, nil
}

// Verify validates pdf and checks that it has exactly wantPages pages.
func Verify(pdf []byte, wantPages int) error {
	if len(pdf) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPDF, errNothingToInspect)
	}
	if err := api.Validate(bytes.NewReader(pdf), config()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPDF, err)
	}

	got, err := PageCount(pdf)
	if err != nil {
		return err
	}
	if got != wantPages {
		return fmt.Errorf("%w: got %d, want %d", ErrPageMismatch, got, wantPages)
	}
	return nil
}

// Optimize rewrites pdf with pdfcpu's optimizer (shared resources merged,
// unused objects dropped) and returns the result.
func Optimize(pdf []byte) ([]byte, error) {
	if len(pdf) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrOptimize, errNothingToInspect)
	}
	var out bytes.Buffer
	if err := api.Optimize(bytes.NewReader(pdf), &out, config()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOptimize, err)
	}
	return out.Bytes(), nil
}
