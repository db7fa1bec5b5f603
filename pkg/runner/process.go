package runner

import (
	"log"
	"os"
	"strings"

	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/analysis"
	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/pipeline"
	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/rewrite"
)

// fileResult carries the outcome of one file through the pass.
type fileResult struct {
	Path    string
	Orig    string
	Fixed   string
	Changed bool
	// Idents are the identifiers that had at least one region rewritten.
	Idents []string
	// Regions counts the function bodies that were rewritten.
	Regions int
	// Pipes counts collapsed single-stage pipelines.
	Pipes int
	Err   error
}

// RebindStats summarizes what RebindSource changed.
type RebindStats struct {
	Idents  []string
	Regions int
}

// RebindSource rewrites every repeated binding of the given identifiers in
// src and returns the new text. Regions are located once; rewrites never add
// or remove lines, so each rewritten body splices back into the same line
// range and later identifiers see earlier rewrites.
func RebindSource(path, src string, idents []string) (string, RebindStats) {
	lines := strings.Split(src, "\n")
	regions := analysis.LocateRegions(lines)
	for _, r := range regions {
		if r.Unterminated {
			log.Printf("warning: %s: %s %s at line %d has no closing end; treating body as running to end of file",
				path, r.Kind, r.Name, r.StartLine+1)
		}
	}

	var stats RebindStats
	for _, ident := range idents {
		m := analysis.NewMatcher(ident)
		rewritten := 0
		for _, r := range regions {
			body := r.Slice(lines)
			sites := m.Sites(body)
			if len(sites) < 2 {
				continue
			}
			plan := rewrite.BuildPlan(ident, sites, len(body))
			fixed, changed := rewrite.Rebind(body, m, plan)
			if !changed {
				continue
			}
			copy(lines[r.StartLine:r.EndLine+1], fixed)
			rewritten++
		}
		if rewritten > 0 {
			stats.Idents = append(stats.Idents, ident)
			stats.Regions += rewritten
		}
	}
	return strings.Join(lines, "\n"), stats
}

// processFile reads one file and computes its rewrite. It never writes; the
// caller decides what to do with the result. Read failures are recorded on
// the result rather than returned so a bad file cannot stop the batch.
func processFile(path string, idents []string, pipes bool) fileResult {
	res := fileResult{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Orig = string(data)

	fixed, stats := RebindSource(path, res.Orig, idents)
	res.Idents = stats.Idents
	res.Regions = stats.Regions

	if pipes {
		var count int
		fixed, count = pipeline.Apply(fixed)
		res.Pipes = count
	}

	res.Fixed = fixed
	res.Changed = fixed != res.Orig
	return res
}
