package runner

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/SamuelMarks/go-auto-var-rebinding/pkg/report"
)

// fileTally accumulates per-file rewrite counts across passes.
type fileTally struct {
	Regions int
	Idents  int
	Pipes   int
}

// printSummary renders one row per changed file and a totals footer.
func printSummary(w io.Writer, tallies map[string]fileTally, data report.Data) {
	paths := make([]string, 0, len(tallies))
	for path := range tallies {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Regions", "Identifiers", "Pipelines"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for _, path := range paths {
		tally := tallies[path]
		table.Append([]string{
			path,
			strconv.Itoa(tally.Regions),
			strconv.Itoa(tally.Idents),
			strconv.Itoa(tally.Pipes),
		})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%d changed / %d scanned", len(data.FilesChanged), data.FilesScanned),
		strconv.Itoa(data.RegionsRewritten),
		strconv.Itoa(data.IdentifiersRebound),
		strconv.Itoa(data.PipelinesSimplified),
	})
	table.Render()
}
