// Package main provides the entry point for the autorebind tool.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/runner"
)

// CLI represents the command-line interface for autorebind.
type CLI struct {
	Paths        []string `arg:"" optional:"" help:"Directories to sweep for Elixir sources." default:"."`
	Config       string   `name:"config" help:"YAML discovery table mapping files to identifiers."`
	FromLint     bool     `name:"from-lint" help:"Discover targets by running the lint tool."`
	Var          []string `name:"var" help:"Identifiers to rebind (defaults to the curated set)."`
	Pipes        bool     `name:"pipes" help:"Collapse single-stage pipelines into direct calls."`
	DryRun       bool     `name:"dry-run" help:"Print changes to stdout instead of writing files."`
	ExcludeGlob  []string `name:"exclude-glob" help:"Glob patterns for files/folders to exclude."`
	IncludeTests bool     `name:"include-tests" help:"Process test files as well."`
}

// Run executes the main logic of the application.
// It validates the discovery flags and hands the batch to the runner.
//
// cli: the parsed CLI configuration.
func Run(cli CLI) error {
	if cli.Config != "" && cli.FromLint {
		return fmt.Errorf("--config and --from-lint are mutually exclusive")
	}
	return runner.Run(runner.Options{
		Paths:                cli.Paths,
		ConfigPath:           cli.Config,
		FromLint:             cli.FromLint,
		Idents:               cli.Var,
		Pipes:                cli.Pipes,
		DryRun:               cli.DryRun,
		ExcludeGlob:          cli.ExcludeGlob,
		UseDefaultExclusions: true,
		IncludeTests:         cli.IncludeTests,
	})
}

// main verifies the flags and calls Run.
func main() {
	var cli CLI
	ctx := kong.Parse(&cli)
	err := Run(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
}
