package main

import (
	"errors"
	"fmt"

	img2pdf "github.com/alnah/go-img2pdf"
	"github.com/alnah/go-img2pdf/internal/hints"
	"github.com/alnah/go-img2pdf/internal/imagefx"
	"github.com/alnah/go-img2pdf/internal/numfmt"
	"github.com/alnah/go-img2pdf/internal/source"
	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrUsage              = errors.New("invalid usage")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// usageError wraps a flag parsing error. Help requests are not errors.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// withHint appends an actionable hint to errors that have one.
func withHint(err error) error {
	if err == nil {
		return nil
	}
	if h := hintFor(err); h != "" {
		return fmt.Errorf("%w%s", err, h)
	}
	return err
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, img2pdf.ErrNoImages):
		return hints.ForNoImages(source.Extensions())
	case errors.Is(err, img2pdf.ErrInvalidPageSize):
		return hints.ForPageSize(img2pdf.PageSizeNames())
	case errors.Is(err, img2pdf.ErrInvalidOrientation):
		return hints.ForChoices("--orientation", []string{img2pdf.OrientationPortrait, img2pdf.OrientationLandscape})
	case errors.Is(err, img2pdf.ErrInvalidScale):
		return hints.ForChoices("--scale", []string{"fit", "fill", "none"})
	case errors.Is(err, img2pdf.ErrInvalidAlign):
		return hints.Join(
			hints.ForChoices("--align", []string{"left", "center", "right"}),
			hints.ForChoices("--valign", []string{"top", "center", "bottom"}),
		)
	case errors.Is(err, img2pdf.ErrInvalidNumberFormat):
		return hints.ForChoices("--number-format", append([]string{"1", "a", "A", "i", "I"}, numfmt.Names()...))
	case errors.Is(err, img2pdf.ErrInvalidFilter):
		return hints.ForChoices("--filter", imagefx.Names())
	case errors.Is(err, img2pdf.ErrImage):
		return hints.ForImageDecode()
	case errors.Is(err, img2pdf.ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
