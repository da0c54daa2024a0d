package main

// Notes:
// - loadEnvConfig: we test every IMG2PDF_* variable. Invalid values for
//   margin and workers are ignored, not errors.
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig: we test that env never overrides config values.
// - Tests use t.Setenv() which prevents t.Parallel().

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-img2pdf/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("IMG2PDF_CONFIG", "album")
		t.Setenv("IMG2PDF_OUTPUT", "out.pdf")
		t.Setenv("IMG2PDF_OUTPUT_DIR", "/pdfs")
		t.Setenv("IMG2PDF_WORKERS", "3")
		t.Setenv("IMG2PDF_PAGE_SIZE", "a4")
		t.Setenv("IMG2PDF_ORIENTATION", "landscape")
		t.Setenv("IMG2PDF_MARGIN", "12.5")
		t.Setenv("IMG2PDF_SCALE", "fill")
		t.Setenv("IMG2PDF_FILTER", "sepia")
		t.Setenv("IMG2PDF_BACKGROUND", "#000")
		t.Setenv("IMG2PDF_NUMBER_FORMAT", "I")
		t.Setenv("IMG2PDF_AUTHOR", "Ada")

		cfg := loadEnvConfig()

		checks := []struct{ name, got, want string }{
			{"ConfigPath", cfg.ConfigPath, "album"},
			{"Output", cfg.Output, "out.pdf"},
			{"OutputDir", cfg.OutputDir, "/pdfs"},
			{"PageSize", cfg.PageSize, "a4"},
			{"Orientation", cfg.Orientation, "landscape"},
			{"Scale", cfg.Scale, "fill"},
			{"Filter", cfg.Filter, "sepia"},
			{"Background", cfg.Background, "#000"},
			{"Format", cfg.Format, "I"},
			{"Author", cfg.Author, "Ada"},
		}
		for _, c := range checks {
			if c.got != c.want {
				t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
			}
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Workers)
		}
		if cfg.Margin == nil || *cfg.Margin != 12.5 {
			t.Errorf("Margin = %v, want 12.5", cfg.Margin)
		}
	})

	t.Run("invalid numbers are ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("IMG2PDF_WORKERS", "-2")
		t.Setenv("IMG2PDF_MARGIN", "wide")

		cfg := loadEnvConfig()

		if cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0", cfg.Workers)
		}
		if cfg.Margin != nil {
			t.Errorf("Margin = %v, want nil", *cfg.Margin)
		}
	})

	t.Run("zero margin is kept", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("IMG2PDF_MARGIN", "0")

		cfg := loadEnvConfig()
		if cfg.Margin == nil || *cfg.Margin != 0 {
			t.Errorf("Margin = %v, want 0", cfg.Margin)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("IMG2PDF_PAGESIZE", "a4")
	t.Setenv("IMG2PDF_PAGE_SIZE", "a4")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "warning: unknown environment variable IMG2PDF_PAGESIZE (typo?)") {
		t.Errorf("missing warning for typo, got %q", out)
	}
	if strings.Contains(out, "IMG2PDF_PAGE_SIZE ") {
		t.Errorf("known variable reported: %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Priority between environment and config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	margin := 5.0
	env := &envConfig{
		Output:      "env.pdf",
		OutputDir:   "env-dir",
		PageSize:    "a4",
		Orientation: "landscape",
		Margin:      &margin,
		Scale:       "fill",
		Filter:      "negative",
		Background:  "navy",
		Format:      "a",
		Author:      "Env",
	}

	t.Run("fills empty config", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{}
		applyEnvConfig(env, cfg)

		if cfg.Output.Path != "env.pdf" || cfg.Output.Dir != "env-dir" {
			t.Errorf("Output = %+v", cfg.Output)
		}
		if cfg.Page.Size != "a4" || cfg.Page.Orientation != "landscape" {
			t.Errorf("Page = %+v", cfg.Page)
		}
		if cfg.Page.Margin == nil || *cfg.Page.Margin != 5 {
			t.Errorf("Page.Margin = %v, want 5", cfg.Page.Margin)
		}
		if cfg.Layout.Scale != "fill" || cfg.Style.Filter != "negative" || cfg.Style.Background != "navy" {
			t.Errorf("Layout/Style = %+v %+v", cfg.Layout, cfg.Style)
		}
		if cfg.Numbering.Format != "a" || cfg.Numbering.Enabled {
			t.Errorf("Numbering = %+v, want format a and still disabled", cfg.Numbering)
		}
		if cfg.Metadata.Author != "Env" {
			t.Errorf("Metadata.Author = %q", cfg.Metadata.Author)
		}

		*cfg.Page.Margin = 99
		if margin != 5 {
			t.Error("config margin aliases the environment value")
		}
	})

	t.Run("config values win", func(t *testing.T) {
		t.Parallel()

		fileMargin := 30.0
		cfg := &config.Config{
			Output: config.OutputConfig{Path: "file.pdf"},
			Page:   config.PageConfig{Size: "legal", Margin: &fileMargin},
			Style:  config.StyleConfig{Filter: "sepia"},
		}
		applyEnvConfig(env, cfg)

		if cfg.Output.Path != "file.pdf" {
			t.Errorf("Output.Path = %q, want file.pdf", cfg.Output.Path)
		}
		if cfg.Page.Size != "legal" {
			t.Errorf("Page.Size = %q, want legal", cfg.Page.Size)
		}
		if *cfg.Page.Margin != 30 {
			t.Errorf("Page.Margin = %g, want 30", *cfg.Page.Margin)
		}
		if cfg.Style.Filter != "sepia" {
			t.Errorf("Style.Filter = %q, want sepia", cfg.Style.Filter)
		}
	})
}
