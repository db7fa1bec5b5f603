package filter

import (
	"testing"
)

// TestGetDefaults checks that the default exclusion list contains expected
// members and is returned as a safe copy.
func TestGetDefaults(t *testing.T) {
	d := GetDefaults()

	if len(d) == 0 {
		t.Fatal("GetDefaults returned empty list")
	}

	foundDeps := false
	foundBuild := false
	for _, s := range d {
		switch s {
		case "deps":
			foundDeps = true
		case "_build":
			foundBuild = true
		}
	}

	if !foundDeps {
		t.Error("Default globs missing 'deps'")
	}
	if !foundBuild {
		t.Error("Default globs missing '_build'")
	}

	// Ensure it's a copy
	d[0] = "mutated"
	d2 := GetDefaults()
	if d2[0] == "mutated" {
		t.Error("GetDefaults returned reference to mutable global, expected copy")
	}
}
