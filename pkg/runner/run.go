package runner

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/SamuelMarks/go-auto-var-rebinding/internal/checker"
	"github.com/SamuelMarks/go-auto-var-rebinding/internal/files"
	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/discover"
	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/filter"
	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/naming"
	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/report"
	"golang.org/x/sync/errgroup"
)

// Options configuration for the runner.
type Options struct {
	// Paths are the directories swept for source files when no explicit
	// discovery source is configured. Defaults to the current directory.
	Paths []string
	// ConfigPath names a YAML discovery table; when set it wins over every
	// other discovery mode.
	ConfigPath string
	// FromLint discovers targets by running the lint tool and parsing its
	// findings. The batch then iterates until the tool reports none.
	FromLint bool
	// Idents narrows sweep discovery to the given identifiers; empty means
	// the curated set.
	Idents []string
	// Pipes also collapses trivial single-stage pipelines in processed files.
	Pipes bool
	// Check analyzes without writing and fails when a rewrite is needed.
	Check bool
	// DryRun prints unified diffs instead of writing files.
	DryRun bool
	// Verify re-runs the lint tool after the batch and reports what remains.
	Verify bool
	// LintCmd overrides the lint invocation for discovery and verification.
	LintCmd string
	// Workers bounds how many files are processed concurrently.
	Workers int
	// ExcludeGlob lists extra path exclusion patterns.
	ExcludeGlob []string
	// UseDefaultExclusions adds the standard Elixir-tree exclusions.
	UseDefaultExclusions bool
	// IncludeTests opts test files into the batch.
	IncludeTests bool
	// ReportPath writes the JSON run report to the given file when set.
	ReportPath string
	// Out receives diffs and the summary table. Defaults to stdout.
	Out io.Writer
	// Reporter collects run statistics; one is created when nil.
	Reporter *report.Reporter
}

// maxPasses bounds the discover-rewrite cycle in lint-driven mode. A pass
// that changes nothing ends the loop earlier.
const maxPasses = 3

// Run executes the batch: discover targets, rewrite repeated bindings file by
// file, and report. The error return covers configuration and discovery
// failures and a failed check; per-file I/O problems are logged, counted, and
// skipped without stopping the batch.
func Run(opts Options) error {
	if opts.Check {
		opts.DryRun = true
	}
	if opts.Reporter == nil {
		opts.Reporter = report.New()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if len(opts.Paths) == 0 {
		opts.Paths = []string{"."}
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	var cfg *discover.Config
	if opts.ConfigPath != "" {
		loaded, err := discover.LoadConfig(opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("discovery failed: %w", err)
		}
		cfg = loaded
	}

	cmdline := opts.LintCmd
	if cmdline == "" && cfg != nil && cfg.LintCmd != "" {
		cmdline = cfg.LintCmd
	}
	if cmdline == "" {
		cmdline = checker.DefaultLintCommand
	}
	lintCmd, err := checker.ParseLintCommand(cmdline)
	if err != nil {
		return err
	}

	globs := opts.ExcludeGlob
	if opts.UseDefaultExclusions {
		globs = append(globs, filter.GetDefaults()...)
	}
	flt := filter.New(globs, opts.IncludeTests)

	tallies := make(map[string]fileTally)

	for pass := 0; pass < maxPasses; pass++ {
		prefix := fmt.Sprintf("[%d/%d]", pass+1, maxPasses)
		if opts.Check {
			log.Printf("%s Analysis mode...", prefix)
		} else {
			log.Printf("%s Discovering rebinding targets...", prefix)
		}

		table, err := discoverTable(opts, cfg, flt, lintCmd)
		if err != nil {
			return fmt.Errorf("discovery failed: %w", err)
		}

		paths := make([]string, 0, len(table))
		for _, path := range table.Paths() {
			if flt.Skips(path) {
				continue
			}
			paths = append(paths, path)
		}
		if len(paths) == 0 {
			log.Println("Codebase is stable.")
			break
		}
		log.Printf("Examining %d files.", len(paths))

		results := processAll(paths, table, opts)

		changed := 0
		for _, res := range results {
			opts.Reporter.IncScanned()
			if res.Err != nil {
				log.Printf("warning: skipping %s: %v", res.Path, res.Err)
				opts.Reporter.IncSkipped()
				continue
			}
			if !res.Changed {
				continue
			}
			if !opts.DryRun {
				if err := os.WriteFile(res.Path, []byte(res.Fixed), 0o644); err != nil {
					log.Printf("warning: failed to write %s: %v", res.Path, err)
					opts.Reporter.IncSkipped()
					continue
				}
			}
			changed++
			opts.Reporter.AddFile(res.Path)
			for range res.Idents {
				opts.Reporter.IncRebound()
			}
			opts.Reporter.AddRegions(res.Regions)
			opts.Reporter.AddPipelines(res.Pipes)
			tally := tallies[res.Path]
			tally.Regions += res.Regions
			tally.Idents += len(res.Idents)
			tally.Pipes += res.Pipes
			tallies[res.Path] = tally
		}

		if opts.Check {
			if changed > 0 {
				log.Printf("[FAIL] %d files have repeated bindings.", changed)
				return fmt.Errorf("check failed: %d files have repeated bindings", changed)
			}
			log.Println("[PASS] No repeated bindings found.")
			return nil
		}

		if changed == 0 {
			log.Println("Codebase is stable.")
			break
		}
		log.Printf("Rewrote %d files.", changed)

		if opts.DryRun {
			printDiffs(opts.Out, results)
			break
		}

		// Static discovery cannot change between passes; only lint-driven
		// runs iterate.
		if !opts.FromLint {
			break
		}
	}

	if opts.Verify {
		remaining, err := checker.Verify(".", lintCmd)
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		log.Printf("Verification: %d redeclaration findings remain.", remaining)
		opts.Reporter.SetRemainingViolations(remaining)
	}

	printSummary(opts.Out, tallies, opts.Reporter.GetData())

	if opts.ReportPath != "" {
		f, err := os.Create(opts.ReportPath)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		if err := opts.Reporter.WriteJSON(f); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// discoverTable resolves the discovery table for one pass: the YAML config
// when given, else the parsed lint findings, else a sweep pairing collected
// source files with the identifier set.
func discoverTable(opts Options, cfg *discover.Config, flt *filter.Filter, lintCmd checker.Command) (discover.Table, error) {
	switch {
	case cfg != nil:
		return cfg.Table(), nil
	case opts.FromLint:
		out, err := lintCmd.Run(".")
		if err != nil {
			return nil, err
		}
		return discover.ParseLintReport(out), nil
	default:
		idents := opts.Idents
		if len(idents) == 0 {
			idents = naming.Known()
		}
		var all []string
		for _, dir := range opts.Paths {
			collected, err := files.CollectSourceFiles(dir, flt)
			if err != nil {
				return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
			}
			for _, rel := range collected {
				all = append(all, filepath.Join(dir, rel))
			}
		}
		return discover.Sweep(all, idents), nil
	}
}

// processAll runs processFile over every path with a bounded worker pool and
// returns results in path order.
func processAll(paths []string, table discover.Table, opts Options) []fileResult {
	results := make([]fileResult, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(opts.Workers)
	for i, path := range paths {
		i, path := i, path // per-iteration copies; required while go.mod is below go 1.22
		g.Go(func() error {
			results[i] = processFile(path, table[path], opts.Pipes)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
