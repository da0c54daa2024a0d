package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: img2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert a directory or a list of images to one PDF")
	fmt.Fprintln(w, "  batch       Convert each image subdirectory of a root to its own PDF")
	fmt.Fprintln(w, "  sizes       List named page sizes")
	fmt.Fprintln(w, "  config      Print a config file holding every default")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'img2pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: img2pdf convert <dir | image...> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert images to a PDF with one page per image.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir       Directory scanned for .jpg, .jpeg and .png files (not recursive)")
	fmt.Fprintln(w, "  image     Image paths or data:image/...;base64 URIs, one page each, in order")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>           Output PDF (default output.pdf, \"-\" = stdout)")
	fmt.Fprintln(w, "  -c, --config <name>           Config file name or path")
	fmt.Fprintln(w)
	printDocumentFlags(w)
}

// printBatchUsage prints usage for the batch command.
func printBatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: img2pdf batch <root> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert each immediate subdirectory of root holding images to")
	fmt.Fprintln(w, "<output-dir>/<name>.pdf, several at a time.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --output-dir <dir>        Directory receiving the PDFs (default: root)")
	fmt.Fprintln(w, "  -w, --workers <n>             Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -c, --config <name>           Config file name or path")
	fmt.Fprintln(w)
	printDocumentFlags(w)
}

// printDocumentFlags prints the flags shared by convert and batch.
func printDocumentFlags(w io.Writer) {
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>           Named size: letter, legal, a4, ... (see 'img2pdf sizes')")
	fmt.Fprintln(w, "      --orientation <s>         Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --width <pt>              Custom page width (with --height)")
	fmt.Fprintln(w, "      --height <pt>             Custom page height (with --width)")
	fmt.Fprintln(w, "      --margin <pt>             Margin on every side (default 50)")
	fmt.Fprintln(w, "      --margin-top <pt>         Top margin")
	fmt.Fprintln(w, "      --margin-bottom <pt>      Bottom margin")
	fmt.Fprintln(w, "      --margin-left <pt>        Left margin")
	fmt.Fprintln(w, "      --margin-right <pt>       Right margin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "      --scale <s>               fit (keep ratio), fill (stretch), none (natural size)")
	fmt.Fprintln(w, "      --align <s>               Horizontal: left, center, right")
	fmt.Fprintln(w, "      --valign <s>              Vertical: top, center, bottom")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Border:")
	fmt.Fprintln(w, "      --border-margin <pt>      Distance outside the margins (default 20)")
	fmt.Fprintln(w, "      --border-width <pt>       Stroke width (default 1)")
	fmt.Fprintln(w, "      --no-border               Disable the border")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page Numbers:")
	fmt.Fprintln(w, "      --page-numbers            Print page numbers")
	fmt.Fprintln(w, "      --number-format <s>       1, a, A, i, I (or arabic, roman-upper, ...)")
	fmt.Fprintln(w, "      --number-vertical <s>     top, bottom (default bottom)")
	fmt.Fprintln(w, "      --number-horizontal <s>   left, center, right (default center)")
	fmt.Fprintln(w, "      --number-size <pt>        Font size (default 12)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Style:")
	fmt.Fprintln(w, "      --background <color>      Page background: #rrggbb, #rgb or color name")
	fmt.Fprintln(w, "      --filter <s>              Image filter: greyscale, sepia, negative")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Metadata:")
	fmt.Fprintln(w, "      --title <s>               PDF title")
	fmt.Fprintln(w, "      --author <s>              PDF author")
	fmt.Fprintln(w, "      --subject <s>             PDF subject")
	fmt.Fprintln(w, "      --keywords <s>            PDF keywords")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Checks:")
	fmt.Fprintln(w, "      --verify                  Validate the PDF and its page count")
	fmt.Fprintln(w, "      --optimize                Optimize the PDF before writing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                   Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                 Show per-page details and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  IMG2PDF_CONFIG, IMG2PDF_OUTPUT, IMG2PDF_OUTPUT_DIR, IMG2PDF_WORKERS,")
	fmt.Fprintln(w, "  IMG2PDF_PAGE_SIZE, IMG2PDF_ORIENTATION, IMG2PDF_MARGIN, IMG2PDF_SCALE,")
	fmt.Fprintln(w, "  IMG2PDF_FILTER, IMG2PDF_BACKGROUND, IMG2PDF_NUMBER_FORMAT, IMG2PDF_AUTHOR")
	fmt.Fprintln(w, "  Flags override environment, which overrides the config file.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "batch":
		printBatchUsage(env.Stdout)
	case "sizes":
		fmt.Fprintln(env.Stdout, "Usage: img2pdf sizes")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List named page sizes with their portrait dimensions in points.")
	case "config":
		fmt.Fprintln(env.Stdout, "Usage: img2pdf config")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print a YAML config file holding every default. Save it as")
		fmt.Fprintln(env.Stdout, "<name>.yaml and pass --config <name>.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: img2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: img2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
