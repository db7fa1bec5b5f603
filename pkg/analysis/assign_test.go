package analysis

import (
	"testing"
)

func TestMatcherIsSite(t *testing.T) {
	tests := []struct {
		name  string
		ident string
		line  string
		want  bool
	}{
		{"PlainAssignment", "results", "    results = compute(data)", true},
		{"NoIndent", "results", "results = []", true},
		{"TightSpacing", "results", "results=compute(data)", true},
		{"EmptyRHS", "results", "  results =", true},
		{"Comparison", "results", "  results == expected", false},
		{"StrictComparison", "results", "  results === expected", false},
		{"MatchOperator", "results", "  results =~ ~r/ok/", false},
		{"NotEquals", "results", "  results != expected", false},
		{"RHSOnly", "results", "  total = results + 1", false},
		{"PrefixedIdent", "results", "  all_results = compute(data)", false},
		{"SuffixedIdent", "results", "  results_by_id = index(data)", false},
		{"FieldAccess", "results", "  acc.results = 1", false},
		{"PatternTuple", "results", "  {:ok, results} = fetch()", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.ident)
			if got := m.IsSite(tt.line); got != tt.want {
				t.Errorf("IsSite(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestMatcherSites(t *testing.T) {
	m := NewMatcher("data")
	region := []string{
		"  def shape(input) do",
		"    data = load(input)",
		"    data = transform(data)",
		"    total = Enum.count(data)",
		"    data = annotate(data, total)",
		"    data",
		"  end",
	}
	got := m.Sites(region)
	want := []int{1, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("Sites() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sites()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMatcherRewriteBinder(t *testing.T) {
	tests := []struct {
		name  string
		ident string
		line  string
		to    string
		want  string
	}{
		{
			name:  "PreservesIndent",
			ident: "data",
			line:  "    data = load(input)",
			to:    "raw_data",
			want:  "    raw_data = load(input)",
		},
		{
			name:  "PreservesTightSpacing",
			ident: "data",
			line:  "data=load(input)",
			to:    "raw_data",
			want:  "raw_data=load(input)",
		},
		{
			name:  "LeavesRHSAlone",
			ident: "data",
			line:  "  data = merge(data, extra)",
			to:    "raw_data",
			want:  "  raw_data = merge(data, extra)",
		},
		{
			name:  "NonSiteUnchanged",
			ident: "data",
			line:  "  total = Enum.count(data)",
			to:    "raw_data",
			want:  "  total = Enum.count(data)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.ident)
			if got := m.RewriteBinder(tt.line, tt.to); got != tt.want {
				t.Errorf("RewriteBinder(%q, %q) = %q, want %q", tt.line, tt.to, got, tt.want)
			}
		})
	}
}

func TestMatcherSplitBinder(t *testing.T) {
	m := NewMatcher("data")

	binder, rest, ok := m.SplitBinder("  data = merge(data, extra)")
	if !ok {
		t.Fatalf("SplitBinder() ok = false, want true")
	}
	if binder != "  data =" {
		t.Errorf("SplitBinder() binder = %q, want %q", binder, "  data =")
	}
	if rest != " merge(data, extra)" {
		t.Errorf("SplitBinder() rest = %q, want %q", rest, " merge(data, extra)")
	}

	if _, _, ok := m.SplitBinder("  total = Enum.count(data)"); ok {
		t.Errorf("SplitBinder() ok = true for a non-site line, want false")
	}
}

func TestMatcherReplaceRefs(t *testing.T) {
	tests := []struct {
		name  string
		ident string
		line  string
		to    string
		want  string
	}{
		{
			name:  "AllOccurrences",
			ident: "data",
			line:  "  combine(data, data)",
			to:    "raw_data",
			want:  "  combine(raw_data, raw_data)",
		},
		{
			name:  "WholeWordOnly",
			ident: "data",
			line:  "  merge(user_data, data, data_set)",
			to:    "raw_data",
			want:  "  merge(user_data, raw_data, data_set)",
		},
		{
			name:  "NoOccurrences",
			ident: "data",
			line:  "  cleanup(user_data)",
			to:    "raw_data",
			want:  "  cleanup(user_data)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.ident)
			if got := m.ReplaceRefs(tt.line, tt.to); got != tt.want {
				t.Errorf("ReplaceRefs(%q, %q) = %q, want %q", tt.line, tt.to, got, tt.want)
			}
		})
	}
}

func TestMatcherCountRefs(t *testing.T) {
	m := NewMatcher("data")
	if got := m.CountRefs("  combine(data, user_data, data)"); got != 2 {
		t.Errorf("CountRefs() = %d, want 2", got)
	}
	if got := m.CountRefs("  noop()"); got != 0 {
		t.Errorf("CountRefs() = %d, want 0", got)
	}
}

func TestMatcherIsTrailingRef(t *testing.T) {
	tests := []struct {
		name  string
		ident string
		line  string
		want  bool
	}{
		{"BareReturn", "results", "    results", true},
		{"BareWithTrailingSpace", "results", "    results  ", true},
		{"PipelineHead", "results", "    results |> Enum.sort()", true},
		{"TaggedTuple", "results", "    {:ok, results}", true},
		{"TaggedTupleSpaced", "results", "    { :reply, results }", true},
		{"FunctionArg", "results", "    format(results)", false},
		{"DifferentIdent", "results", "    totals", false},
		{"TupleWrongSlot", "results", "    {results, :ok}", false},
		{"InterpolatedUse", "results", `    "got #{results}"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.ident)
			if got := m.IsTrailingRef(tt.line); got != tt.want {
				t.Errorf("IsTrailingRef(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
