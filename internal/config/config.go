package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-img2pdf/internal/fileutil"
	"github.com/alnah/go-img2pdf/internal/imagefx"
	"github.com/alnah/go-img2pdf/internal/layout"
	"github.com/alnah/go-img2pdf/internal/numfmt"
	"github.com/alnah/go-img2pdf/internal/render"
	"github.com/alnah/go-img2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory under os.UserConfigDir searched for named configs.
const AppDir = "go-img2pdf"

// Field length limits.
const (
	MaxPathLength        = 4096
	MaxPageSizeLength    = 20  // "letter", "a4", "tabloid"
	MaxOrientationLength = 10  // "portrait", "landscape"
	MaxColorLength       = 30  // "#rrggbb" or "lightgoldenrodyellow"
	MaxMetadataLength    = 500 // title, subject, keywords
	MaxNameLength        = 100 // author, creator
	MaxFontSize          = 144
)

// Config holds all configuration for document generation.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Page      PageConfig      `yaml:"page"`
	Layout    LayoutConfig    `yaml:"layout"`
	Border    BorderConfig    `yaml:"border"`
	Numbering NumberingConfig `yaml:"numbering"`
	Style     StyleConfig     `yaml:"style"`
	Metadata  MetadataConfig  `yaml:"metadata"`
	Verify    bool            `yaml:"verify"`   // validate the PDF with pdfcpu after writing
	Optimize  bool            `yaml:"optimize"` // rewrite the PDF with pdfcpu's optimizer
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Path string `yaml:"path"` // convert: output file (default "output.pdf")
	Dir  string `yaml:"dir"`  // batch: output directory (default: the batch root)
}

// PageConfig defines page geometry. Width and Height (points) override Size
// when both are set.
type PageConfig struct {
	Size        string         `yaml:"size"`        // named size (default: "letter")
	Orientation string         `yaml:"orientation"` // "portrait", "landscape"
	Width       float64        `yaml:"width"`
	Height      float64        `yaml:"height"`
	Margin      *float64       `yaml:"margin"`  // uniform margin in points (default 50)
	Margins     *MarginsConfig `yaml:"margins,omitempty"` // per-side overrides
}

// MarginsConfig overrides individual sides; unset sides keep Margin.
type MarginsConfig struct {
	Top    *float64 `yaml:"top"`
	Bottom *float64 `yaml:"bottom"`
	Left   *float64 `yaml:"left"`
	Right  *float64 `yaml:"right"`
}

// LayoutConfig defines image scaling and alignment.
type LayoutConfig struct {
	Scale  string `yaml:"scale"`  // "fit", "fill", "none"
	Align  string `yaml:"align"`  // "left", "center", "right"
	VAlign string `yaml:"valign"` // "top", "center", "bottom"
}

// BorderConfig defines the frame drawn around the usable area.
type BorderConfig struct {
	Width  *float64 `yaml:"width"`  // stroke width, 0 disables (default 1)
	Margin *float64 `yaml:"margin"` // distance outside the usable area (default 20)
}

// NumberingConfig defines page-number options.
type NumberingConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Format     string  `yaml:"format"`     // "1", "a", "A", "i", "I" or the style name
	Vertical   string  `yaml:"vertical"`   // "top", "bottom"
	Horizontal string  `yaml:"horizontal"` // "left", "center", "right"
	FontSize   float64 `yaml:"fontSize"`   // default 12
}

// StyleConfig defines page background and image color filter.
type StyleConfig struct {
	Background string `yaml:"background"` // "#rrggbb" or color name, empty = none
	Filter     string `yaml:"filter"`     // "greyscale", "sepia", "negative"
}

// MetadataConfig is written to the PDF information dictionary.
type MetadataConfig struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Subject  string `yaml:"subject"`
	Keywords string `yaml:"keywords"`
	Creator  string `yaml:"creator"`
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}

	if err := c.validatePage(); err != nil {
		return err
	}

	if _, err := layout.ParseScaleMode(c.Layout.Scale); err != nil {
		return invalid("layout.scale", err)
	}
	if _, err := layout.ParseHAlign(c.Layout.Align); err != nil {
		return invalid("layout.align", err)
	}
	if _, err := layout.ParseVAlign(c.Layout.VAlign); err != nil {
		return invalid("layout.valign", err)
	}

	if err := validateNonNegative("border.width", c.Border.Width); err != nil {
		return err
	}
	if err := validateNonNegative("border.margin", c.Border.Margin); err != nil {
		return err
	}

	if err := c.validateNumbering(); err != nil {
		return err
	}

	if err := validateFieldLength("style.background", c.Style.Background, MaxColorLength); err != nil {
		return err
	}
	if c.Style.Background != "" {
		if _, err := render.ParseColor(c.Style.Background); err != nil {
			return invalid("style.background", err)
		}
	}
	if _, err := imagefx.ParseFilter(c.Style.Filter); err != nil {
		return invalid("style.filter", err)
	}

	return c.validateMetadata()
}

func (c *Config) validatePage() error {
	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}
	switch strings.ToLower(c.Page.Orientation) {
	case "", "portrait", "landscape":
	default:
		return fmt.Errorf("%w: page.orientation %q (must be portrait or landscape)", ErrInvalidValue, c.Page.Orientation)
	}

	if c.Page.Width < 0 || c.Page.Height < 0 {
		return fmt.Errorf("%w: page.width and page.height must be positive", ErrInvalidValue)
	}
	if (c.Page.Width > 0) != (c.Page.Height > 0) {
		return fmt.Errorf("%w: page.width and page.height must be set together", ErrInvalidValue)
	}

	if err := validateNonNegative("page.margin", c.Page.Margin); err != nil {
		return err
	}
	if m := c.Page.Margins; m != nil {
		for name, v := range map[string]*float64{
			"page.margins.top":    m.Top,
			"page.margins.bottom": m.Bottom,
			"page.margins.left":   m.Left,
			"page.margins.right":  m.Right,
		} {
			if err := validateNonNegative(name, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Config) validateNumbering() error {
	n := c.Numbering
	if _, err := numfmt.ParseStyle(n.Format); err != nil {
		return invalid("numbering.format", err)
	}
	if _, err := layout.ParseVPosition(n.Vertical); err != nil {
		return invalid("numbering.vertical", err)
	}
	if _, err := layout.ParseHAlign(n.Horizontal); err != nil {
		return invalid("numbering.horizontal", err)
	}
	if n.FontSize < 0 || n.FontSize > MaxFontSize {
		return fmt.Errorf("%w: numbering.fontSize must be between 0 and %d, got %g", ErrInvalidValue, MaxFontSize, n.FontSize)
	}
	return nil
}

func (c *Config) validateMetadata() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"metadata.title", c.Metadata.Title, MaxMetadataLength},
		{"metadata.author", c.Metadata.Author, MaxNameLength},
		{"metadata.subject", c.Metadata.Subject, MaxMetadataLength},
		{"metadata.keywords", c.Metadata.Keywords, MaxMetadataLength},
		{"metadata.creator", c.Metadata.Creator, MaxNameLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func validateNonNegative(fieldName string, v *float64) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidValue, fieldName, *v)
	}
	return nil
}

func invalid(fieldName string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidValue, fieldName, err)
}

// DefaultConfig returns a configuration spelling out every default, suitable
// as a starting point for a config file.
func DefaultConfig() *Config {
	margin, borderWidth, borderMargin := 50.0, 1.0, 20.0
	return &Config{
		Output: OutputConfig{Path: "output.pdf"},
		Page: PageConfig{
			Size:        "letter",
			Orientation: "portrait",
			Margin:      &margin,
		},
		Layout: LayoutConfig{Scale: "fit", Align: "center", VAlign: "center"},
		Border: BorderConfig{Width: &borderWidth, Margin: &borderMargin},
		Numbering: NumberingConfig{
			Format:     "1",
			Vertical:   "bottom",
			Horizontal: "center",
			FontSize:   12,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.ReadFile(configPath, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup
// order: current directory then the user config directory, each with
// .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
