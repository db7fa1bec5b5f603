// Package discover produces the normalized discovery table the orchestrator
// consumes: a mapping of file path to the set of identifiers worth rewriting
// in that file. A YAML configuration file, the parsed output of the lint
// tool, and the sweep that pairs every file with the curated identifier set
// all normalize into the same Table.
package discover

import (
	"sort"
)

// Table maps a file path to the identifiers to scan for in that file.
// Identifier sets are deduplicated and sorted.
type Table map[string][]string

// Add records ident for path, keeping the identifier set sorted and free of
// duplicates.
func (t Table) Add(path, ident string) {
	idents := t[path]
	for _, existing := range idents {
		if existing == ident {
			return
		}
	}
	idents = append(idents, ident)
	sort.Strings(idents)
	t[path] = idents
}

// Paths returns the table's file paths in sorted order.
func (t Table) Paths() []string {
	paths := make([]string, 0, len(t))
	for path := range t {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Merge folds other into t.
func (t Table) Merge(other Table) {
	for path, idents := range other {
		for _, ident := range idents {
			t.Add(path, ident)
		}
	}
}

// Sweep pairs every file with the full identifier set. The assignment
// scanner's single-binding early exit makes the broad pairing safe: files
// that never rebind an identifier come back unchanged.
func Sweep(files []string, idents []string) Table {
	table := make(Table, len(files))
	for _, path := range files {
		for _, ident := range idents {
			table.Add(path, ident)
		}
	}
	return table
}
