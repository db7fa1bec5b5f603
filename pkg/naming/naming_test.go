package naming

import (
	"fmt"
	"testing"
)

func TestNameFor(t *testing.T) {
	tests := []struct {
		name     string
		ident    string
		ordinal  int
		expected string
	}{
		{"CuratedFirst", "recommendations", 0, "initial_recommendations"},
		{"CuratedSecond", "recommendations", 1, "base_recommendations"},
		{"CuratedLast", "recommendations", 8, "final_recommendations"},
		{"CuratedOverflow", "recommendations", 9, "recommendations_10"},
		{"CuratedFactors", "factors", 2, "risk_factors"},
		{"CuratedAlertsThird", "alerts", 2, "warning_alerts"},
		{"CuratedImprovementsLast", "improvements", 5, "final_improvements"},
		{"GenericFirst", "scratch", 0, "initial_scratch"},
		{"GenericSecond", "scratch", 1, "base_scratch"},
		{"GenericLast", "scratch", 6, "final_scratch"},
		{"GenericOverflow", "scratch", 7, "scratch_8"},
		{"GenericDeepOverflow", "scratch", 41, "scratch_42"},
		{"NegativeOrdinal", "scratch", -1, "scratch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NameFor(tt.ident, tt.ordinal); got != tt.expected {
				t.Errorf("NameFor(%q, %d) = %q, want %q", tt.ident, tt.ordinal, got, tt.expected)
			}
		})
	}
}

// TestNameForDistinct verifies the registry invariant: for any identifier the
// sequence entries are pairwise distinct and never equal to the identifier
// itself, deep enough to cross into the numbered continuation.
func TestNameForDistinct(t *testing.T) {
	idents := append(Known(), "scratch", "acc")
	for _, ident := range idents {
		seen := map[string]int{}
		for i := 0; i < 20; i++ {
			got := NameFor(ident, i)
			if got == ident {
				t.Errorf("NameFor(%q, %d) returned the identifier itself", ident, i)
			}
			if prev, dup := seen[got]; dup {
				t.Errorf("NameFor(%q): ordinals %d and %d both map to %q", ident, prev, i, got)
			}
			seen[got] = i
		}
	}
}

func TestNamesFor(t *testing.T) {
	got := NamesFor("gaps", 3)
	want := []string{"initial_gaps", "coverage_gaps", "skill_gaps"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("NamesFor(gaps, 3) = %v, want %v", got, want)
	}

	if names := NamesFor("gaps", 0); names != nil {
		t.Errorf("NamesFor(gaps, 0) = %v, want nil", names)
	}
}

func TestKnown(t *testing.T) {
	known := Known()
	if len(known) != 17 {
		t.Fatalf("Known() returned %d identifiers, want 17", len(known))
	}
	for i := 1; i < len(known); i++ {
		if known[i-1] >= known[i] {
			t.Errorf("Known() not sorted: %q before %q", known[i-1], known[i])
		}
	}
	for _, ident := range []string{"recommendations", "risk_factors", "improvements"} {
		if !IsKnown(ident) {
			t.Errorf("IsKnown(%q) = false, want true", ident)
		}
	}
	if IsKnown("scratch") {
		t.Errorf("IsKnown(scratch) = true, want false")
	}
}
