package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	img2pdf "github.com/alnah/go-img2pdf"
	"github.com/alnah/go-img2pdf/internal/config"
	"github.com/alnah/go-img2pdf/internal/source"
)

// stdoutOutput as the output path writes the PDF to standard output.
const stdoutOutput = "-"

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, in img2pdf.Input) (*img2pdf.Document, error)
}

// Compile-time interface implementation check.
var _ Converter = (*img2pdf.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Pages      int
	Err        error
	Duration   time.Duration
}

// runConvert orchestrates the convert command: one PDF from a directory or
// a list of images.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return usageError(err)
	}
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	mergeFlags(&flags.document, cfg)

	in, label, err := resolveInput(positional)
	if err != nil {
		return err
	}

	output := resolveOutputPath(flags.output, cfg)
	if output == stdoutOutput {
		in.Writer = env.Stdout
	} else {
		in.Output = output
	}

	conv, err := newConverter(cfg, flags.common.verbose, env)
	if err != nil {
		return withHint(err)
	}

	result := convertOne(ctx, conv, in, label)
	if result.Err != nil {
		return withHint(result.Err)
	}

	if output == stdoutOutput {
		if flags.common.verbose {
			fmt.Fprintf(env.Stderr, "%s -> stdout (%d pages, %v)\n", label, result.Pages, result.Duration.Round(time.Millisecond))
		}
		return nil
	}

	printResultsWithWriter([]ConversionResult{result}, flags.common.quiet, flags.common.verbose, env)
	return nil
}

// newConverter builds a converter from the merged config.
func newConverter(cfg *config.Config, verbose bool, env *Environment) (*img2pdf.Converter, error) {
	opts, err := buildOptions(cfg)
	if err != nil {
		return nil, err
	}

	return img2pdf.NewConverter(opts,
		img2pdf.WithLogger(newLogger(verbose, env.Stderr)),
		img2pdf.WithClock(env.Now),
		img2pdf.WithCreator("img2pdf "+Version),
	)
}

// newLogger returns a debug-level text logger in verbose mode, nil otherwise
// (the converter then discards its records).
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// resolveInput turns positional arguments into a converter input.
// A single directory argument is scanned; anything else is a list of
// image paths or data URIs, in order.
func resolveInput(args []string) (img2pdf.Input, string, error) {
	if len(args) == 0 {
		return img2pdf.Input{}, "", fmt.Errorf("%w: pass a directory or one or more images", ErrNoInput)
	}

	if len(args) == 1 && source.IsDir(args[0]) {
		return img2pdf.Input{Dir: args[0]}, args[0], nil
	}

	sources := make([]img2pdf.Source, 0, len(args))
	for _, arg := range args {
		sources = append(sources, img2pdf.ParseSource(arg))
	}

	label := sources[0].String()
	if len(sources) > 1 {
		label = fmt.Sprintf("%d images", len(sources))
	}
	return img2pdf.Input{Sources: sources}, label, nil
}

// resolveOutputPath determines the output file.
// Priority: --output flag > config/env output.path > img2pdf.DefaultOutput.
func resolveOutputPath(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	if cfg.Output.Path != "" {
		return cfg.Output.Path
	}
	return img2pdf.DefaultOutput
}

// convertOne runs a single conversion and times it.
func convertOne(ctx context.Context, conv Converter, in img2pdf.Input, label string) ConversionResult {
	start := time.Now()
	doc, err := conv.Convert(ctx, in)

	result := ConversionResult{
		InputPath:  label,
		OutputPath: in.Output,
		Err:        err,
		Duration:   time.Since(start),
	}
	if err == nil {
		result.Pages = doc.Pages
		if doc.Path != "" {
			result.OutputPath = doc.Path
		}
	}
	return result
}
