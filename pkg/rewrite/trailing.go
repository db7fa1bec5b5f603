package rewrite

import (
	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/analysis"
)

// resolveTrailing rewrites the region's trailing reference to the original
// identifier, the one standing for the function's implicit result after the
// last assignment. Scanning backward from the region's last line down to,
// but not including, the final site line, the first line shaped like a bare
// reference, a pipeline head, or a tagged pair payload has its references
// replaced with the final binding's name. Only that one line is rewritten;
// a region whose result flows through several branch exits is beyond what
// the backward scan can tell apart, so any earlier candidates are left
// alone. Reports whether a line changed.
func resolveTrailing(lines []string, m *analysis.Matcher, plan Plan) bool {
	if len(plan.Bindings) == 0 {
		return false
	}
	lastSite := plan.Bindings[len(plan.Bindings)-1].Site
	for ln := len(lines) - 1; ln > lastSite; ln-- {
		if !m.IsTrailingRef(lines[ln]) {
			continue
		}
		rewritten := m.ReplaceRefs(lines[ln], plan.Trailing)
		if rewritten == lines[ln] {
			return false
		}
		lines[ln] = rewritten
		return true
	}
	return false
}
