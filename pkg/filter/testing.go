package filter

import (
	"path/filepath"
	"strings"
)

// IsTestPath reports whether the path belongs to a test suite.
//
// It detects:
//   - ExUnit test scripts: any file ending in _test.exs
//   - Test trees: any path with a "test" directory segment, which also
//     covers support code under test/support
//
// Test code is skipped unless the run opts in via include-tests.
//
// path: the file path to classify, absolute or relative.
func IsTestPath(path string) bool {
	if strings.HasSuffix(path, "_test.exs") {
		return true
	}
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == "test" {
			return true
		}
	}
	return false
}
