package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	img2pdf "github.com/alnah/go-img2pdf"
	"github.com/alnah/go-img2pdf/internal/source"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	args := os.Args[1:]
	configureMaxProcs(isVerbose(args), os.Stderr)
	os.Exit(runMain(args, DefaultEnv()))
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota, logging
// only in verbose mode.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// isVerbose reports whether -v or --verbose appears before a "--" terminator.
func isVerbose(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}

// runMain runs a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := run(ctx, args, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	return exitCodeFor(err)
}

// run dispatches to a command. Arguments that look like an image or a
// directory without a command name are converted directly.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "convert":
		return runConvert(ctx, rest, env)
	case "batch":
		return runBatch(ctx, rest, env)
	case "sizes":
		return runSizes(env)
	case "config":
		return runConfig(env)
	case "completion":
		return runCompletion(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "img2pdf %s\n", Version)
		return nil
	case "help", "-h", "--help":
		runHelp(rest, env)
		return nil
	}

	if looksLikeInput(cmd) {
		return runConvert(ctx, args, env)
	}

	printUsage(env.Stderr)
	return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

// looksLikeInput reports whether arg is an image file, a data URI or an
// existing directory.
func looksLikeInput(arg string) bool {
	if source.IsImageFile(arg) || source.IsDir(arg) {
		return true
	}
	return img2pdf.ParseSource(arg).Kind() == source.KindDataURI
}
