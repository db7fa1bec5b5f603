// Package pipeline canonicalizes trivial single-stage pipelines into direct
// calls: a line whose whole content is one value piped into one call, such as
// items |> Enum.count(), becomes Enum.count(items). Multi-stage pipelines
// never match because every rule is anchored to the full line.
package pipeline

import (
	"regexp"
	"strings"
)

type rule struct {
	re   *regexp.Regexp
	repl string
}

// rules are tried in order; the first match wins. Each captures the
// indentation, the piped value, the call name, and any existing arguments.
var rules = []rule{
	{
		re:   regexp.MustCompile(`^(\s*)(\w+)\s*\|>\s*Enum\.(count|empty\?|length)\(\)\s*$`),
		repl: `${1}Enum.${3}(${2})`,
	},
	{
		re:   regexp.MustCompile(`^(\s*)(\w+)\s*\|>\s*Enum\.(map|filter|reduce|flat_map|find|sort|sort_by|take|drop|join|split|reject|uniq|reverse|sum|max|min)\(([^)]+)\)\s*$`),
		repl: `${1}Enum.${3}(${2}, ${4})`,
	},
	{
		re:   regexp.MustCompile(`^(\s*)(\w+)\s*\|>\s*Map\.(get|put|merge|delete|has_key\?|keys|values)\(([^)]+)\)\s*$`),
		repl: `${1}Map.${3}(${2}, ${4})`,
	},
	{
		re:   regexp.MustCompile(`^(\s*)(\w+)\s*\|>\s*String\.(trim|downcase|upcase|capitalize|reverse|length)\(\)\s*$`),
		repl: `${1}String.${3}(${2})`,
	},
	{
		re:   regexp.MustCompile(`^(\s*)(\w+)\s*\|>\s*(length|hd|tl)\(\)\s*$`),
		repl: `${1}${3}(${2})`,
	},
	{
		re:   regexp.MustCompile(`^(\s*)(\w+)\s*\|>\s*elem\((\d+)\)\s*$`),
		repl: `${1}elem(${2}, ${3})`,
	},
}

// Simplify rewrites line if it is a recognized single-stage pipeline and
// reports whether it did.
func Simplify(line string) (string, bool) {
	for _, r := range rules {
		if r.re.MatchString(line) {
			return r.re.ReplaceAllString(line, r.repl), true
		}
	}
	return line, false
}

// Apply runs Simplify over every line of src and returns the rewritten text
// and the number of lines changed.
func Apply(src string) (string, int) {
	lines := strings.Split(src, "\n")
	count := 0
	for i, line := range lines {
		if rewritten, ok := Simplify(line); ok {
			lines[i] = rewritten
			count++
		}
	}
	return strings.Join(lines, "\n"), count
}
