package analysis

// LiveRange is the span of region lines over which one assignment site's
// value is the identifier's current value: from the site line itself up to,
// but not including, the next site line. The final site's range runs through
// the end of the region. Ranges over a region's sites partition its lines
// from the first site onward.
type LiveRange struct {
	// Site is the assignment-site line index that opens the range.
	Site int
	// End is the first line index past the range: the next site's line,
	// or the region's line count for the final range.
	End int
}

// LiveRanges derives the live ranges for sites within a region of lineCount
// lines. Sites must be ascending region-relative line indexes, as returned
// by Matcher.Sites. A region with no sites has no ranges.
func LiveRanges(sites []int, lineCount int) []LiveRange {
	if len(sites) == 0 {
		return nil
	}
	ranges := make([]LiveRange, len(sites))
	for i, site := range sites {
		end := lineCount
		if i+1 < len(sites) {
			end = sites[i+1]
		}
		ranges[i] = LiveRange{Site: site, End: end}
	}
	return ranges
}
