package filter

import (
	"path/filepath"
	"strings"
)

// Filter determines whether specific paths should be excluded from the batch.
// It uses glob patterns matched against relative paths, their base names, and
// their individual path segments, so a bare directory name like "deps"
// excludes everything beneath it.
type Filter struct {
	excludeGlobs []string
	includeTests bool
}

// New creates a new Filter with the provided glob patterns.
//
// excludeGlobs: patterns to match against paths (e.g., "deps", "*_backup.ex").
// includeTests: when false, test files and test directories are excluded too.
func New(excludeGlobs []string, includeTests bool) *Filter {
	return &Filter{
		excludeGlobs: excludeGlobs,
		includeTests: includeTests,
	}
}

// Excludes checks if path matches any configured exclusion glob. The match is
// tried against the path as given, its base name, and each path segment, so
// callers can exclude whole directories without spelling out "dir/**".
//
// path: a file or directory path, absolute or relative.
func (f *Filter) Excludes(path string) bool {
	for _, pattern := range f.excludeGlobs {
		if matched, err := filepath.Match(pattern, path); err == nil && matched {
			return true
		}

		base := filepath.Base(path)
		if matched, err := filepath.Match(pattern, base); err == nil && matched {
			return true
		}

		for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
			if matched, err := filepath.Match(pattern, segment); err == nil && matched {
				return true
			}
		}
	}
	return false
}

// Skips reports whether the batch should pass over the file entirely, either
// because an exclusion glob matches or because it is a test file and tests
// were not opted in.
//
// path: the source file path to check.
func (f *Filter) Skips(path string) bool {
	if f.Excludes(path) {
		return true
	}
	if !f.includeTests && IsTestPath(path) {
		return true
	}
	return false
}
