package filter

// DefaultExcludeGlobs defines directory and file patterns that are skipped
// during traversal by default to keep the batch away from code nobody owns.
//
// The list covers build output, fetched dependencies, and tooling state; none
// of these hold first-party source, and a rewrite there would be undone by
// the next clean build anyway.
var DefaultExcludeGlobs = []string{
	// Build output and coverage artifacts.
	"_build",
	"cover",
	"doc",

	// Fetched dependencies: third-party source, not ours to rewrite.
	"deps",
	"node_modules",

	// Version control and editor state.
	".git",
	".elixir_ls",

	// Release bundles and static assets under priv are generated or binary.
	"priv",
}

// GetDefaults returns the default exclusion globs.
func GetDefaults() []string {
	// Return a copy to prevent mutation of the global slice
	dst := make([]string, len(DefaultExcludeGlobs))
	copy(dst, DefaultExcludeGlobs)
	return dst
}
