package main

import "github.com/alecthomas/kong"

// Config holds the complete configuration mapping to CLI flags.
type Config struct {
	// Paths to sweep for Elixir source files when no explicit discovery
	// source is given.
	Paths []string `arg:"" optional:"" help:"Directories to sweep for Elixir sources." default:"."`

	// ConfigPath names a YAML discovery table mapping files to identifiers.
	// It wins over every other discovery mode.
	ConfigPath string `name:"config" help:"YAML discovery table mapping files to identifiers."`

	// FromLint discovers rewrite targets by running the lint tool and parsing
	// its redeclaration findings. The batch iterates until the tool reports
	// none.
	FromLint bool `name:"from-lint" help:"Discover targets by running the lint tool."`

	// Vars lists the identifiers to rebind in sweep mode. Empty means the
	// curated set.
	Vars []string `name:"var" help:"Identifiers to rebind (defaults to the curated set)."`

	// Pipes also collapses trivial single-stage pipelines into direct calls.
	Pipes bool `name:"pipes" help:"Collapse single-stage pipelines into direct calls."`

	// Check enables CI/Linter mode.
	// If true, the tool reports files with repeated bindings with a non-zero
	// exit code, without modifying files. Implies --dry-run.
	Check bool `name:"check" help:"Repo verification mode. Exits with 1 if rewrites are needed. Implies --dry-run."`

	// DryRun enables preview mode.
	DryRun bool `name:"dry-run" help:"Print changes to stdout instead of writing files."`

	// Verify re-runs the lint tool after the batch and reports how many
	// redeclaration findings remain.
	Verify bool `name:"verify" help:"Re-run the lint tool after rewriting."`

	// LintCmd overrides the lint invocation used for discovery and
	// verification. Empty falls back to the config file's lint_cmd, then to
	// the built-in default.
	LintCmd string `name:"lint-cmd" help:"Lint command for discovery and verification."`

	// Workers bounds how many files are processed concurrently.
	Workers int `name:"workers" help:"Number of files processed concurrently." default:"1"`

	// ExcludeGlob is a list of path glob patterns to exclude from the batch.
	ExcludeGlob []string `name:"exclude-glob" help:"Glob patterns to exclude files (e.g. 'priv/*')."`

	// UseDefaultExclusions applies the default list of ignored directories
	// (_build, deps, etc).
	// If true (default), standard noise filters are applied.
	// Disable with --no-default-exclusions to sweep everything.
	UseDefaultExclusions bool `name:"default-exclusions" help:"Use standard exclusion list (_build, deps, etc)." default:"true"`

	// IncludeTests opts test files into the batch.
	IncludeTests bool `name:"include-tests" help:"Process test files as well."`

	// Report writes the JSON run report to the given file.
	Report string `name:"report" help:"Write a JSON run report to this file."`

	// Get the version of the package, defaults to `dev`
	Version kong.VersionFlag `name:"version" help:"Print version information and exit."`
}
