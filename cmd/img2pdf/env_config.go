package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-img2pdf/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string // IMG2PDF_CONFIG: config file name or path
	Output     string // IMG2PDF_OUTPUT: convert output file
	OutputDir  string // IMG2PDF_OUTPUT_DIR: batch output directory
	Workers    int    // IMG2PDF_WORKERS: batch parallel workers

	// Tier 2 - Page
	PageSize    string   // IMG2PDF_PAGE_SIZE: letter, a4, ...
	Orientation string   // IMG2PDF_ORIENTATION: portrait, landscape
	Margin      *float64 // IMG2PDF_MARGIN: uniform margin in points

	// Tier 3 - Style and metadata
	Scale      string // IMG2PDF_SCALE: fit, fill, none
	Filter     string // IMG2PDF_FILTER: greyscale, sepia, negative
	Background string // IMG2PDF_BACKGROUND: page background color
	Format     string // IMG2PDF_NUMBER_FORMAT: 1, a, A, i, I
	Author     string // IMG2PDF_AUTHOR: PDF author
}

// knownEnvVars lists valid IMG2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"IMG2PDF_CONFIG":     true,
	"IMG2PDF_OUTPUT":     true,
	"IMG2PDF_OUTPUT_DIR": true,
	"IMG2PDF_WORKERS":    true,
	// Tier 2 - Page
	"IMG2PDF_PAGE_SIZE":   true,
	"IMG2PDF_ORIENTATION": true,
	"IMG2PDF_MARGIN":      true,
	// Tier 3 - Style and metadata
	"IMG2PDF_SCALE":         true,
	"IMG2PDF_FILTER":        true,
	"IMG2PDF_BACKGROUND":    true,
	"IMG2PDF_NUMBER_FORMAT": true,
	"IMG2PDF_AUTHOR":        true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized IMG2PDF_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:  os.Getenv("IMG2PDF_CONFIG"),
		Output:      os.Getenv("IMG2PDF_OUTPUT"),
		OutputDir:   os.Getenv("IMG2PDF_OUTPUT_DIR"),
		PageSize:    os.Getenv("IMG2PDF_PAGE_SIZE"),
		Orientation: os.Getenv("IMG2PDF_ORIENTATION"),
		Scale:       os.Getenv("IMG2PDF_SCALE"),
		Filter:      os.Getenv("IMG2PDF_FILTER"),
		Background:  os.Getenv("IMG2PDF_BACKGROUND"),
		Format:      os.Getenv("IMG2PDF_NUMBER_FORMAT"),
		Author:      os.Getenv("IMG2PDF_AUTHOR"),
	}

	// Parse float for margin; invalid or negative values are ignored
	if margin := os.Getenv("IMG2PDF_MARGIN"); margin != "" {
		if m, err := strconv.ParseFloat(margin, 64); err == nil && m >= 0 {
			cfg.Margin = &m
		}
	}

	// Parse int for workers
	if workers := os.Getenv("IMG2PDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized IMG2PDF_* variables.
// Helps catch typos like IMG2PDF_PAGESIZE instead of IMG2PDF_PAGE_SIZE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "IMG2PDF_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/unset.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1 - Output
	if env.Output != "" && cfg.Output.Path == "" {
		cfg.Output.Path = env.Output
	}
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}

	// Tier 2 - Page
	if env.PageSize != "" && cfg.Page.Size == "" {
		cfg.Page.Size = env.PageSize
	}
	if env.Orientation != "" && cfg.Page.Orientation == "" {
		cfg.Page.Orientation = env.Orientation
	}
	if env.Margin != nil && cfg.Page.Margin == nil {
		m := *env.Margin
		cfg.Page.Margin = &m
	}

	// Tier 3 - Style
	if env.Scale != "" && cfg.Layout.Scale == "" {
		cfg.Layout.Scale = env.Scale
	}
	if env.Filter != "" && cfg.Style.Filter == "" {
		cfg.Style.Filter = env.Filter
	}
	if env.Background != "" && cfg.Style.Background == "" {
		cfg.Style.Background = env.Background
	}

	// Tier 3 - Numbering format (does not enable numbering)
	if env.Format != "" && cfg.Numbering.Format == "" {
		cfg.Numbering.Format = env.Format
	}

	// Tier 3 - Metadata
	if env.Author != "" && cfg.Metadata.Author == "" {
		cfg.Metadata.Author = env.Author
	}
}
