// Package files provides utilities for filesystem traversal and file collection.
package files

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/filter"
)

// CollectSourceFiles collects all Elixir source files in the directory tree
// rooted at dir. It traverses the tree using filepath.WalkDir, pruning
// directories the filter excludes and dropping files the filter skips.
// Collected paths are relative to dir, the same form lint reports and
// discovery tables use. Only files ending with ".ex" or ".exs" are collected.
//
// dir: root directory to traverse.
// f: decides which directories are pruned and which files are skipped.
func CollectSourceFiles(dir string, f *filter.Filter) ([]string, error) {
	var collected []string
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	err = filepath.WalkDir(absDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(absDir, path)
		if err != nil {
			return err
		}

		// Skip root '.' check if needed, but filepath.Rel(".") is "."
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if f.Excludes(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if f.Skips(rel) {
			return nil
		}
		name := d.Name()
		if strings.HasSuffix(name, ".ex") || strings.HasSuffix(name, ".exs") {
			collected = append(collected, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return collected, nil
}
