package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/runner"
)

// version is stamped at build time, defaults to dev.
var version = "dev"

// main is the entry point for the application.
// It delegates execution to run() and exits with a fatal error if execution fails.
func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run initializes the configuration parser, parses the arguments, and starts
// the batch. It serves as the testable entry point for the application.
//
// args: The command line arguments (excluding the executable name).
// stdout: The writer to use for regular output (logging goes to standard log).
func run(args []string, stdout io.Writer) error {
	var cfg Config

	exited := false
	parser, err := kong.New(&cfg,
		kong.Name("autorebind"),
		kong.Description("A tool to rewrite repeated Elixir variable bindings into distinct names."),
		kong.Writers(stdout, io.Discard), // Redirect stdout, suppress stderr for clean tests unless needed
		kong.Exit(func(int) { exited = true }),
		kong.Vars{"version": version},
	)
	if err != nil {
		return err
	}

	// Parse the provided arguments
	_, err = parser.Parse(args)
	if err != nil {
		return err
	}
	if exited {
		// --version and --help print inside the parser and stop here.
		return nil
	}

	if cfg.ConfigPath != "" && cfg.FromLint {
		return fmt.Errorf("--config and --from-lint are mutually exclusive")
	}

	log.SetOutput(stdout)
	log.Printf("Starting rebinding on paths: %v", cfg.Paths)
	log.Printf("Mode: Check=%v, DryRun=%v, FromLint=%v, Pipes=%v",
		cfg.Check, cfg.DryRun, cfg.FromLint, cfg.Pipes)

	return runner.Run(runner.Options{
		Paths:                cfg.Paths,
		ConfigPath:           cfg.ConfigPath,
		FromLint:             cfg.FromLint,
		Idents:               cfg.Vars,
		Pipes:                cfg.Pipes,
		Check:                cfg.Check,
		DryRun:               cfg.DryRun,
		Verify:               cfg.Verify,
		LintCmd:              cfg.LintCmd,
		Workers:              cfg.Workers,
		ExcludeGlob:          cfg.ExcludeGlob,
		UseDefaultExclusions: cfg.UseDefaultExclusions,
		IncludeTests:         cfg.IncludeTests,
		ReportPath:           cfg.Report,
		Out:                  stdout,
	})
}
