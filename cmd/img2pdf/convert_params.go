package main

import (
	"errors"
	"fmt"

	img2pdf "github.com/alnah/go-img2pdf"
	"github.com/alnah/go-img2pdf/internal/config"
	"github.com/alnah/go-img2pdf/internal/hints"
)

// loadConfig loads the named config, or an empty one when name is empty,
// then fills unset values from the environment.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}

	cfg := &config.Config{}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// String flags apply when non-empty, numeric flags when given explicitly.
func mergeFlags(f *documentFlags, cfg *config.Config) {
	// Page flags
	if f.page.size != "" {
		cfg.Page.Size = f.page.size
		// A named size on the command line replaces custom config dimensions
		cfg.Page.Width, cfg.Page.Height = 0, 0
	}
	if f.page.orientation != "" {
		cfg.Page.Orientation = f.page.orientation
	}
	if f.set("width") {
		cfg.Page.Width = f.page.width
	}
	if f.set("height") {
		cfg.Page.Height = f.page.height
	}
	if f.set("margin") {
		cfg.Page.Margin = ptr(f.page.margin)
		// A uniform margin on the command line replaces per-side config values
		cfg.Page.Margins = nil
	}
	if f.set("margin-top") {
		sideMargins(cfg).Top = ptr(f.page.marginTop)
	}
	if f.set("margin-bottom") {
		sideMargins(cfg).Bottom = ptr(f.page.marginBottom)
	}
	if f.set("margin-left") {
		sideMargins(cfg).Left = ptr(f.page.marginLeft)
	}
	if f.set("margin-right") {
		sideMargins(cfg).Right = ptr(f.page.marginRight)
	}

	// Layout flags
	if f.layout.scale != "" {
		cfg.Layout.Scale = f.layout.scale
	}
	if f.layout.align != "" {
		cfg.Layout.Align = f.layout.align
	}
	if f.layout.valign != "" {
		cfg.Layout.VAlign = f.layout.valign
	}

	// Border flags
	if f.set("border-margin") {
		cfg.Border.Margin = ptr(f.border.margin)
	}
	if f.set("border-width") {
		cfg.Border.Width = ptr(f.border.width)
	}
	if f.border.disabled {
		cfg.Border.Width = ptr(0)
	}

	// Numbering flags
	if f.numbers.enabled {
		cfg.Numbering.Enabled = true
	}
	if f.numbers.format != "" {
		cfg.Numbering.Format = f.numbers.format
	}
	if f.numbers.vertical != "" {
		cfg.Numbering.Vertical = f.numbers.vertical
	}
	if f.numbers.horizontal != "" {
		cfg.Numbering.Horizontal = f.numbers.horizontal
	}
	if f.set("number-size") {
		cfg.Numbering.FontSize = f.numbers.fontSize
	}

	// Style flags
	if f.style.background != "" {
		cfg.Style.Background = f.style.background
	}
	if f.style.filter != "" {
		cfg.Style.Filter = f.style.filter
	}

	// Metadata flags
	if f.metadata.title != "" {
		cfg.Metadata.Title = f.metadata.title
	}
	if f.metadata.author != "" {
		cfg.Metadata.Author = f.metadata.author
	}
	if f.metadata.subject != "" {
		cfg.Metadata.Subject = f.metadata.subject
	}
	if f.metadata.keywords != "" {
		cfg.Metadata.Keywords = f.metadata.keywords
	}

	// Output checks
	if f.check.verify {
		cfg.Verify = true
	}
	if f.check.optimize {
		cfg.Optimize = true
	}
}

func ptr(v float64) *float64 { return &v }

// sideMargins returns the per-side margin overrides, creating them if needed.
func sideMargins(cfg *config.Config) *config.MarginsConfig {
	if cfg.Page.Margins == nil {
		cfg.Page.Margins = &config.MarginsConfig{}
	}
	return cfg.Page.Margins
}

// buildOptions turns a merged config into converter options, starting from
// img2pdf.DefaultOptions for every unset value.
func buildOptions(cfg *config.Config) (img2pdf.Options, error) {
	opts := img2pdf.DefaultOptions()

	page, err := buildPageSize(cfg.Page)
	if err != nil {
		return opts, err
	}
	opts.PageSize = page
	opts.Margins = buildMargins(cfg.Page)

	if cfg.Layout.Scale != "" {
		opts.Scale = img2pdf.ScaleMode(cfg.Layout.Scale)
	}
	if cfg.Layout.Align != "" {
		opts.Align = img2pdf.HAlign(cfg.Layout.Align)
	}
	if cfg.Layout.VAlign != "" {
		opts.VAlign = img2pdf.VAlign(cfg.Layout.VAlign)
	}

	if cfg.Border.Width != nil {
		opts.Border.Width = *cfg.Border.Width
	}
	if cfg.Border.Margin != nil {
		opts.Border.Margin = *cfg.Border.Margin
	}

	n := cfg.Numbering
	opts.PageNumbers.Enabled = n.Enabled
	if n.Format != "" {
		opts.PageNumbers.Format = img2pdf.NumberFormat(n.Format)
	}
	if n.Vertical != "" {
		opts.PageNumbers.Vertical = img2pdf.VPosition(n.Vertical)
	}
	if n.Horizontal != "" {
		opts.PageNumbers.Horizontal = img2pdf.HAlign(n.Horizontal)
	}
	if n.FontSize != 0 {
		opts.PageNumbers.FontSize = n.FontSize
	}

	opts.Background = cfg.Style.Background
	opts.Filter = img2pdf.Filter(cfg.Style.Filter)

	opts.Metadata = img2pdf.Metadata{
		Title:    cfg.Metadata.Title,
		Author:   cfg.Metadata.Author,
		Subject:  cfg.Metadata.Subject,
		Keywords: cfg.Metadata.Keywords,
		Creator:  cfg.Metadata.Creator,
	}
	opts.Verify = cfg.Verify
	opts.Optimize = cfg.Optimize

	return opts, opts.Validate()
}

// buildPageSize resolves custom dimensions or a named size.
// Custom dimensions are only rotated when an orientation is given.
func buildPageSize(p config.PageConfig) (img2pdf.PageSize, error) {
	if p.Width != 0 || p.Height != 0 {
		size := img2pdf.PageSize{Width: p.Width, Height: p.Height}
		if p.Width <= 0 || p.Height <= 0 {
			return size, fmt.Errorf("%w: --width and --height must both be positive", img2pdf.ErrInvalidPageSize)
		}
		if p.Orientation == "" {
			return size, nil
		}
		return size.Orient(p.Orientation)
	}

	name := p.Size
	if name == "" {
		name = "letter"
	}
	return img2pdf.LookupPageSize(name, p.Orientation)
}

// buildMargins applies the uniform margin, then per-side overrides.
func buildMargins(p config.PageConfig) img2pdf.Margins {
	m := img2pdf.UniformMargins(img2pdf.DefaultMargin)
	if p.Margin != nil {
		m = img2pdf.UniformMargins(*p.Margin)
	}
	if p.Margins == nil {
		return m
	}
	if p.Margins.Top != nil {
		m.Top = *p.Margins.Top
	}
	if p.Margins.Bottom != nil {
		m.Bottom = *p.Margins.Bottom
	}
	if p.Margins.Left != nil {
		m.Left = *p.Margins.Left
	}
	if p.Margins.Right != nil {
		m.Right = *p.Margins.Right
	}
	return m
}
