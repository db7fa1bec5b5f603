// Package analysis locates function-scoped regions in Elixir source text and
// finds assignment sites within them. It is a line-oriented pseudo-parse: no
// syntax tree is built, only enough block-token tracking to delimit
// definition bodies reliably in regular code.
package analysis

import (
	"regexp"
	"strings"
)

// Kind is the definition form that opened a region. The rewriter treats both
// identically; the kind exists for matching and log output.
type Kind int

const (
	// KindDef is an ordinary definition (def).
	KindDef Kind = iota
	// KindDefp is a private definition (defp).
	KindDefp
)

// String returns the source keyword for the kind.
func (k Kind) String() string {
	if k == KindDefp {
		return "defp"
	}
	return "def"
}

// Region is one function-level definition body: a contiguous span of lines
// from the definition head to its matching end marker. Regions are produced
// in file order, non-overlapping, and outermost-only; a nested definition
// inside an open region is depth-counted, never split out.
type Region struct {
	// Kind is the definition keyword that opened the region.
	Kind Kind
	// Name is the defined function's name, for log output.
	Name string
	// StartLine is the 0-based index of the head line within the file.
	StartLine int
	// EndLine is the 0-based index of the matching end marker, inclusive.
	// For an unterminated region it is the file's last line.
	EndLine int
	// Unterminated marks a head with no matching end before end of file.
	// The region still covers through EndLine; callers should warn.
	Unterminated bool
}

// Slice returns the region's lines out of the whole-file line slice.
func (r Region) Slice(lines []string) []string {
	return lines[r.StartLine : r.EndLine+1]
}

// LineCount returns the number of lines the region spans.
func (r Region) LineCount() int {
	return r.EndLine - r.StartLine + 1
}

// defHeadRe matches a definition head: def or defp, then the function name
// (which may end in ? or !). Longer def* keywords (defmodule, defmacro, ...)
// never match because whitespace must follow def/defp directly.
var defHeadRe = regexp.MustCompile(`^\s*(defp?)\s+([a-zA-Z_][a-zA-Z0-9_]*[?!]?)`)

// fnTokenRe and endTokenRe count the block tokens that adjust nesting depth
// within a region.
var (
	fnTokenRe  = regexp.MustCompile(`\bfn\b`)
	endTokenRe = regexp.MustCompile(`\bend\b`)
)

// LocateRegions scans whole-file lines and returns every outermost definition
// body. A region starts at a line matching a def/defp head whose block opens
// on the same line (the line ends with the do keyword after comment
// stripping); the one-liner keyword form (def foo, do: expr) opens no block
// and is skipped. From the head, a nesting counter tracks line-ending do
// tokens and fn tokens against end tokens, so inner blocks, nested
// definitions included, cannot close the outer region early. A head with no
// matching end yields a region extending to the last line, flagged
// Unterminated.
func LocateRegions(lines []string) []Region {
	var regions []Region
	for i := 0; i < len(lines); {
		code := codeText(lines[i])
		head := defHeadRe.FindStringSubmatch(code)
		if head == nil || !endsWithDo(code) {
			i++
			continue
		}

		kind := KindDef
		if head[1] == "defp" {
			kind = KindDefp
		}
		region := Region{Kind: kind, Name: head[2], StartLine: i}

		// The head opens its block no matter what else the line carries,
		// so stray end-like tokens in guards cannot zero the depth out.
		depth := blockDelta(code)
		if depth < 1 {
			depth = 1
		}
		j := i + 1
		for j < len(lines) && depth > 0 {
			depth += blockDelta(codeText(lines[j]))
			if depth <= 0 {
				break
			}
			j++
		}
		if j >= len(lines) {
			region.EndLine = len(lines) - 1
			region.Unterminated = true
			regions = append(regions, region)
			break
		}
		region.EndLine = j
		regions = append(regions, region)
		i = j + 1
	}
	return regions
}

// blockDelta returns the net nesting change a line contributes: +1 when the
// line ends with the block-opening do keyword (def, if, case, cond, for,
// with, receive, try, quote, ...), +1 per fn token, -1 per end token. A
// one-line lambda (fn x -> x end) nets zero.
func blockDelta(code string) int {
	delta := 0
	if endsWithDo(code) {
		delta++
	}
	delta += len(fnTokenRe.FindAllStringIndex(code, -1))
	delta -= len(endTokenRe.FindAllStringIndex(code, -1))
	return delta
}

// endsWithDo reports whether the line's code ends with the do keyword,
// i.e. opens a block. The do: keyword-list form does not.
func endsWithDo(code string) bool {
	trimmed := strings.TrimRight(code, " \t")
	if trimmed == "do" {
		return true
	}
	return strings.HasSuffix(trimmed, " do") || strings.HasSuffix(trimmed, "\tdo")
}

// codeText returns the line with a trailing # comment removed and the
// interiors of quoted literals blanked to spaces, so do/fn/end tokens inside
// strings never reach the depth counter. Double- and single-quoted state is
// tracked with backslash escapes; multi-line strings and heredocs are not,
// which is an accepted regularity assumption of the pseudo-parse.
func codeText(line string) string {
	var out []byte
	inDouble := false
	inSingle := false
	escaped := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if escaped {
			escaped = false
			out = append(out, ' ')
			continue
		}
		switch {
		case ch == '\\' && (inDouble || inSingle):
			escaped = true
			out = append(out, ' ')
		case ch == '"' && !inSingle:
			inDouble = !inDouble
			out = append(out, ch)
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
			out = append(out, ch)
		case inDouble || inSingle:
			out = append(out, ' ')
		case ch == '#':
			return string(out)
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}
