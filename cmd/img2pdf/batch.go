package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	img2pdf "github.com/alnah/go-img2pdf"
	"github.com/alnah/go-img2pdf/internal/config"
	"github.com/alnah/go-img2pdf/internal/source"
	"golang.org/x/sync/errgroup"
)

// Worker count bounds for the batch command.
const (
	maxWorkers     = 32
	maxAutoWorkers = 8
)

// batchJob is one subdirectory converted into its own PDF.
type batchJob struct {
	Dir    string
	Output string
}

// runBatch converts every image subdirectory of a root into one PDF each.
func runBatch(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBatchFlags(args)
	if err != nil {
		return usageError(err)
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	switch {
	case len(positional) == 0:
		return fmt.Errorf("%w: pass the root directory", ErrNoInput)
	case len(positional) > 1:
		return fmt.Errorf("%w: batch takes one root directory, got %d arguments", ErrUsage, len(positional))
	}
	root := positional[0]

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	mergeFlags(&flags.document, cfg)

	jobs, err := discoverJobs(root, resolveOutputDir(flags.outputDir, cfg, root))
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return withHint(fmt.Errorf("%w: no subdirectory of %s holds images", img2pdf.ErrNoImages, root))
	}

	conv, err := newConverter(cfg, flags.common.verbose, env)
	if err != nil {
		return withHint(err)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	workers = resolvePoolSize(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	results := convertBatch(ctx, conv, jobs, workers)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}
	return nil
}

// resolveOutputDir determines where batch PDFs are written.
// Priority: --output-dir flag > config/env output.dir > the root itself.
func resolveOutputDir(flagDir string, cfg *config.Config, root string) string {
	if flagDir != "" {
		return flagDir
	}
	if cfg.Output.Dir != "" {
		return cfg.Output.Dir
	}
	return root
}

// discoverJobs lists the immediate subdirectories of root that hold at
// least one image, in filename order. Nested directories are not visited.
func discoverJobs(root, outputDir string) ([]batchJob, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	var jobs []batchJob
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(root, e.Name())
		sources, err := source.ScanDir(dir)
		if err != nil {
			return nil, err
		}
		if len(sources) == 0 {
			continue
		}
		jobs = append(jobs, batchJob{
			Dir:    dir,
			Output: filepath.Join(outputDir, e.Name()+".pdf"),
		})
	}
	return jobs, nil
}

// convertBatch converts jobs concurrently, at most workers at a time.
// Results keep the job order; one failure does not stop the others.
func convertBatch(ctx context.Context, conv Converter, jobs []batchJob, workers int) []ConversionResult {
	results := make([]ConversionResult, len(jobs))

	var g errgroup.Group
	g.SetLimit(max(1, min(workers, len(jobs))))

	for i, job := range jobs {
		g.Go(func() error {
			results[i] = convertOne(ctx, conv, img2pdf.Input{Dir: job.Dir, Output: job.Output}, job.Dir)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// resolvePoolSize determines the number of concurrent conversions.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return min(n, maxAutoWorkers)
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
// Returns the number of failures.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d pages, %v)\n", r.InputPath, r.OutputPath, r.Pages, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
