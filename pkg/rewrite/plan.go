// Package rewrite turns the assignment sites found in one region into a
// rewrite plan and applies it: each repeated binding of an identifier gets a
// fresh deterministic name, references across each binding's live range move
// to that name, and the trailing return-value reference after the last
// binding is resolved to the final name. The rewrite is purely textual and
// order-preserving; lines are never added, removed, or reordered.
package rewrite

import (
	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/analysis"
	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/naming"
)

// Binding is the rewrite for one assignment site: the site line's leading
// identifier becomes To, and whole-word references to From across the site's
// live range become To as well. From is the original identifier for the first
// site and the previous binding's name after that, so each range only moves
// references that belong to it.
type Binding struct {
	// Site is the region-relative line index of the assignment.
	Site int
	// End is the first region line past the binding's live range: the next
	// site's line, or the region's line count for the final binding.
	End int
	// From is the name in-range references currently carry.
	From string
	// To is the fresh name chosen for this binding.
	To string
}

// Plan is the complete rewrite for one (region, identifier) pair.
type Plan struct {
	// Ident is the identifier being split into distinct bindings.
	Ident string
	// Bindings holds one entry per assignment site, in textual order.
	Bindings []Binding
	// Trailing is the name a trailing return-value reference resolves to:
	// the final binding's name.
	Trailing string
}

// BuildPlan derives the rewrite plan for ident given its assignment-site
// line indexes within a region of lineCount lines. Sites must be ascending,
// as returned by the assignment scanner. Fewer than two sites yields an
// empty plan: a single binding is not a redeclaration.
func BuildPlan(ident string, sites []int, lineCount int) Plan {
	plan := Plan{Ident: ident}
	if len(sites) < 2 {
		return plan
	}
	ranges := analysis.LiveRanges(sites, lineCount)
	plan.Bindings = make([]Binding, len(ranges))
	prev := ident
	for i, r := range ranges {
		name := naming.NameFor(ident, i)
		plan.Bindings[i] = Binding{Site: r.Site, End: r.End, From: prev, To: name}
		prev = name
	}
	plan.Trailing = prev
	return plan
}
