package discover

import (
	"regexp"
	"strings"
)

// locationRe matches the file-and-line position the lint tool prints with
// each issue, such as lib/myapp/worker.ex:24:7.
var locationRe = regexp.MustCompile(`([^\s:"]+\.exs?):(\d+)`)

// redeclaredRe matches the diagnostic line naming the shadowed variable.
var redeclaredRe = regexp.MustCompile(`Variable "([^"]+)" was declared more than once`)

// ParseLintReport extracts a discovery table from the lint tool's textual
// output. The tool prints a file location for each issue and a diagnostic
// line naming the redeclared variable; the parser carries the most recent
// location forward and attributes each diagnostic to it. Lines in any other
// shape are ignored, so the parser tolerates banners, summaries, and issue
// kinds it does not know.
func ParseLintReport(output string) Table {
	table := make(Table)
	currentPath := ""
	for _, line := range strings.Split(output, "\n") {
		if loc := locationRe.FindStringSubmatch(line); loc != nil {
			currentPath = loc[1]
		}
		diag := redeclaredRe.FindStringSubmatch(line)
		if diag == nil || currentPath == "" {
			continue
		}
		table.Add(currentPath, diag[1])
	}
	return table
}
