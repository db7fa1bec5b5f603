package runner

import (
	"fmt"
	"io"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// printDiffs writes a unified diff for every changed file. Results arrive in
// path order, so the output is deterministic.
func printDiffs(w io.Writer, results []fileResult) {
	for _, res := range results {
		if res.Err != nil || !res.Changed {
			continue
		}
		edits := myers.ComputeEdits(span.URIFromPath(res.Path), res.Orig, res.Fixed)
		unified := gotextdiff.ToUnified(res.Path, res.Path, res.Orig, edits)
		fmt.Fprint(w, unified)
	}
}
