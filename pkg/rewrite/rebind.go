package rewrite

import (
	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/analysis"
)

// Rebind applies plan to a region's lines and returns the rewritten lines
// together with whether anything changed. The input slice is never modified.
//
// For each binding, the site line's leading identifier becomes the binding's
// name and whole-word references to the previously active name move to it
// across the live range, through the next site's line. A site line reached as
// the bound of an earlier range keeps its leading binder untouched; only the
// text after the = is rewritten there, since the binder is renamed by its own
// binding. After the loop the trailing return-value reference is resolved to
// the final binding's name.
//
// Plans with fewer than two bindings leave the region untouched: a single
// binding is not a redeclaration.
func Rebind(regionLines []string, m *analysis.Matcher, plan Plan) ([]string, bool) {
	if len(plan.Bindings) < 2 {
		return regionLines, false
	}
	lines := make([]string, len(regionLines))
	copy(lines, regionLines)
	changed := false

	for _, b := range plan.Bindings {
		rewritten := m.RewriteBinder(lines[b.Site], b.To)
		if rewritten != lines[b.Site] {
			lines[b.Site] = rewritten
			changed = true
		}

		refs := analysis.NewMatcher(b.From)
		for ln := b.Site + 1; ln <= b.End && ln < len(lines); ln++ {
			line := lines[ln]
			if m.IsSite(line) {
				// The bounding assignment keeps its binder for its own
				// rename; only its right-hand side carries this range's
				// references.
				binder, rest, ok := m.SplitBinder(line)
				if ok {
					lines[ln] = binder + refs.ReplaceRefs(rest, b.To)
				}
			} else {
				lines[ln] = refs.ReplaceRefs(line, b.To)
			}
			if lines[ln] != line {
				changed = true
			}
		}
	}

	if resolveTrailing(lines, m, plan) {
		changed = true
	}
	return lines, changed
}
