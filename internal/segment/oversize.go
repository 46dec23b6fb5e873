package segment

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NeedsSplit reports whether a document exceeds the size or page thresholds
// and should be processed in parts. A page count of 0 means unknown and only
// the byte size is considered.
func NeedsSplit(sizeBytes int64, pages int, maxMB, maxPages int) bool {
	if maxMB > 0 && sizeBytes > int64(maxMB)<<20 {
		return true
	}
	if maxPages > 0 && pages > maxPages {
		return true
	}
	return false
}

// PageRange is an inclusive page span [Start, End].
type PageRange struct {
	Start int
	End   int
}

// PageRanges divides total pages into consecutive ranges of at most per
// pages each.
func PageRanges(total, per int) []PageRange {
	if total <= 0 || per <= 0 {
		return nil
	}
	var ranges []PageRange
	for start := 1; start <= total; start += per {
		end := start + per - 1
		if end > total {
			end = total
		}
		ranges = append(ranges, PageRange{Start: start, End: end})
	}
	return ranges
}

// SplitPlan names the part files a page-range split of path would produce.
// Actual file splitting is not implemented yet; the indexer logs the plan
// and processes the oversized document with limited-content extraction.
//
// TODO: perform the real pdfseparate/pdfunite split and index each part.
func SplitPlan(path string, total, per int) []string {
	ranges := PageRanges(total, per)
	if ranges == nil {
		return nil
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, fmt.Sprintf("%s_p%03d-%03d%s", base, r.Start, r.End, ext))
	}
	return parts
}
