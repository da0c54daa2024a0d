package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page geometry flags.
type pageFlags struct {
	size         string
	orientation  string
	width        float64
	height       float64
	margin       float64
	marginTop    float64
	marginBottom float64
	marginLeft   float64
	marginRight  float64
}

// layoutFlags holds image placement flags.
type layoutFlags struct {
	scale  string
	align  string
	valign string
}

// borderFlags holds border flags.
type borderFlags struct {
	margin   float64
	width    float64
	disabled bool
}

// numberFlags holds page numbering flags.
type numberFlags struct {
	enabled    bool
	format     string
	vertical   string
	horizontal string
	fontSize   float64
}

// styleFlags holds background and filter flags.
type styleFlags struct {
	background string
	filter     string
}

// metadataFlags holds PDF information dictionary flags.
type metadataFlags struct {
	title    string
	author   string
	subject  string
	keywords string
}

// checkFlags holds output post-processing flags.
type checkFlags struct {
	verify   bool
	optimize bool
}

// documentFlags groups every flag that shapes the produced PDF.
// changed records the flags given on the command line, so that explicit
// zero values (--margin 0) still override the config file.
type documentFlags struct {
	page     pageFlags
	layout   layoutFlags
	border   borderFlags
	numbers  numberFlags
	style    styleFlags
	metadata metadataFlags
	check    checkFlags
	changed  map[string]bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	document documentFlags
}

// batchFlags holds all flags for the batch command.
type batchFlags struct {
	common    commonFlags
	outputDir string
	workers   int
	document  documentFlags
}

// set reports whether the named flag was given on the command line.
func (f *documentFlags) set(name string) bool {
	return f.changed[name]
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page details and timing")
}

// addPageFlags adds page geometry flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "named page size (see 'img2pdf sizes')")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.width, "width", 0, "custom page width in points")
	fs.Float64Var(&f.height, "height", 0, "custom page height in points")
	fs.Float64Var(&f.margin, "margin", 0, "margin on every side in points (default 50)")
	fs.Float64Var(&f.marginTop, "margin-top", 0, "top margin in points")
	fs.Float64Var(&f.marginBottom, "margin-bottom", 0, "bottom margin in points")
	fs.Float64Var(&f.marginLeft, "margin-left", 0, "left margin in points")
	fs.Float64Var(&f.marginRight, "margin-right", 0, "right margin in points")
}

// addLayoutFlags adds image placement flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.StringVar(&f.scale, "scale", "", "scale mode: fit, fill, none")
	fs.StringVar(&f.align, "align", "", "horizontal alignment: left, center, right")
	fs.StringVar(&f.valign, "valign", "", "vertical alignment: top, center, bottom")
}

// addBorderFlags adds border flags to a FlagSet.
func addBorderFlags(fs *flag.FlagSet, f *borderFlags) {
	fs.Float64Var(&f.margin, "border-margin", 0, "border distance outside the margins (default 20)")
	fs.Float64Var(&f.width, "border-width", 0, "border stroke width (default 1)")
	fs.BoolVar(&f.disabled, "no-border", false, "disable the border")
}

// addNumberFlags adds page numbering flags to a FlagSet.
func addNumberFlags(fs *flag.FlagSet, f *numberFlags) {
	fs.BoolVar(&f.enabled, "page-numbers", false, "print page numbers")
	fs.StringVar(&f.format, "number-format", "", "number format: 1, a, A, i, I")
	fs.StringVar(&f.vertical, "number-vertical", "", "number position: top, bottom")
	fs.StringVar(&f.horizontal, "number-horizontal", "", "number position: left, center, right")
	fs.Float64Var(&f.fontSize, "number-size", 0, "number font size in points (default 12)")
}

// addStyleFlags adds background and filter flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.background, "background", "", "page background: #rrggbb or color name")
	fs.StringVar(&f.filter, "filter", "", "image filter: greyscale, sepia, negative")
}

// addMetadataFlags adds PDF metadata flags to a FlagSet.
func addMetadataFlags(fs *flag.FlagSet, f *metadataFlags) {
	fs.StringVar(&f.title, "title", "", "PDF title")
	fs.StringVar(&f.author, "author", "", "PDF author")
	fs.StringVar(&f.subject, "subject", "", "PDF subject")
	fs.StringVar(&f.keywords, "keywords", "", "PDF keywords")
}

// addCheckFlags adds output post-processing flags to a FlagSet.
func addCheckFlags(fs *flag.FlagSet, f *checkFlags) {
	fs.BoolVar(&f.verify, "verify", false, "validate the PDF and its page count")
	fs.BoolVar(&f.optimize, "optimize", false, "optimize the PDF before writing")
}

// addDocumentFlags adds every document flag group to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	addPageFlags(fs, &f.page)
	addLayoutFlags(fs, &f.layout)
	addBorderFlags(fs, &f.border)
	addNumberFlags(fs, &f.numbers)
	addStyleFlags(fs, &f.style)
	addMetadataFlags(fs, &f.metadata)
	addCheckFlags(fs, &f.check)
}

// recordChanged stores the names of the flags set on the command line.
func recordChanged(fs *flag.FlagSet, f *documentFlags) {
	f.changed = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) {
		f.changed[fl.Name] = true
	})
}

// newConvertFlagSet registers the convert command flags into f.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path (\"-\" = stdout)")
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	return fs
}

// newBatchFlagSet registers the batch command flags into f.
func newBatchFlagSet(f *batchFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.StringVar(&f.outputDir, "output-dir", "", "directory receiving the PDFs (default: the root)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	recordChanged(fs, &f.document)

	return f, fs.Args(), nil
}

// parseBatchFlags parses batch command flags and returns positional args.
func parseBatchFlags(args []string) (*batchFlags, []string, error) {
	f := &batchFlags{}
	fs := newBatchFlagSet(f)
	fs.Usage = func() { printBatchUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	recordChanged(fs, &f.document)

	return f, fs.Args(), nil
}
