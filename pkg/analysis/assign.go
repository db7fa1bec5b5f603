package analysis

import (
	"regexp"
)

// Matcher recognizes assignment sites, binder positions, and whole-word
// references for a single identifier. The compiled expressions are shared
// across every region and file scanned for that identifier.
type Matcher struct {
	ident string
	// site matches a line whose leftmost non-whitespace token is the
	// identifier followed by a single =. The character class after the =
	// excludes the comparison forms == and === and the match operator =~;
	// != and <= and >= cannot match because their first rune is not =.
	site *regexp.Regexp
	// binder captures the indentation and the = of a site line so the
	// identifier between them can be renamed in place.
	binder *regexp.Regexp
	// word matches the identifier on word boundaries anywhere in a line.
	word *regexp.Regexp
	// bare, pipe, and tuple are the trailing-reference shapes: the
	// identifier alone on a line, heading a pipeline, or as the payload of
	// a tagged pair such as {:ok, ident}.
	bare  *regexp.Regexp
	pipe  *regexp.Regexp
	tuple *regexp.Regexp
}

// NewMatcher compiles the matching expressions for ident.
func NewMatcher(ident string) *Matcher {
	q := regexp.QuoteMeta(ident)
	return &Matcher{
		ident:  ident,
		site:   regexp.MustCompile(`^\s*` + q + `\s*=(?:[^=~]|$)`),
		binder: regexp.MustCompile(`^(\s*)` + q + `(\s*=)`),
		word:   regexp.MustCompile(`\b` + q + `\b`),
		bare:   regexp.MustCompile(`^\s*` + q + `\s*$`),
		pipe:   regexp.MustCompile(`^\s*` + q + `\s*\|>`),
		tuple:  regexp.MustCompile(`^\s*\{\s*:[a-zA-Z_][a-zA-Z0-9_]*\s*,\s*` + q + `\s*\}`),
	}
}

// Ident returns the identifier the matcher was built for.
func (m *Matcher) Ident() string {
	return m.ident
}

// IsSite reports whether line is an assignment site for the identifier:
// the identifier is the line's leftmost token and is followed by a plain =,
// not a comparison or match operator.
func (m *Matcher) IsSite(line string) bool {
	return m.site.MatchString(line)
}

// Sites returns the indexes of every assignment-site line within the given
// region lines, in ascending order. Indexes are relative to the slice, so
// callers working in whole-file coordinates add the region's start line.
func (m *Matcher) Sites(regionLines []string) []int {
	var sites []int
	for i, line := range regionLines {
		if m.IsSite(line) {
			sites = append(sites, i)
		}
	}
	return sites
}

// RewriteBinder replaces the leading identifier of a site line with name,
// preserving the indentation and the spacing around the =. Lines that are
// not sites are returned unchanged.
func (m *Matcher) RewriteBinder(line, name string) string {
	return m.binder.ReplaceAllString(line, "${1}"+name+"${2}")
}

// SplitBinder splits a site line after its leading binder, returning the
// binder text (indentation, identifier, =) and the remainder of the line.
// ok is false when the line carries no leading binder.
func (m *Matcher) SplitBinder(line string) (binder, rest string, ok bool) {
	loc := m.binder.FindStringIndex(line)
	if loc == nil {
		return "", line, false
	}
	return line[:loc[1]], line[loc[1]:], true
}

// CountRefs returns the number of whole-word occurrences of the identifier
// in line.
func (m *Matcher) CountRefs(line string) int {
	return len(m.word.FindAllStringIndex(line, -1))
}

// ReplaceRefs replaces every whole-word occurrence of the identifier in line
// with name. Identifiers that merely contain the matcher's identifier as a
// substring (user_data when matching data) are never touched.
func (m *Matcher) ReplaceRefs(line, name string) string {
	return m.word.ReplaceAllString(line, name)
}

// IsTrailingRef reports whether line has one of the shapes the trailing
// resolution step rewrites: the bare identifier, the identifier heading a
// pipeline, or the identifier as the second element of a tagged pair.
func (m *Matcher) IsTrailingRef(line string) bool {
	return m.bare.MatchString(line) || m.pipe.MatchString(line) || m.tuple.MatchString(line)
}
