package tools

import (
	"fmt"
	"strings"
	"time"
)

// Character budgets for truncatable free-text fields.
const (
	descriptionBudget = 500
	bioBudget         = 150
	snippetBudget     = 80

	ellipsis = "..."
)

// truncate caps s at budget characters, appending an ellipsis when anything
// was cut. Rune-safe so multi-byte text never splits mid-character.
func truncate(s string, budget int) string {
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget]) + ellipsis
}

// orNA substitutes "N/A" for absent values.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// formatDate renders an RFC 3339 timestamp as a date. Unparseable input is
// passed through untouched rather than failing the render.
func formatDate(iso string) string {
	ts, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return ts.Format("Jan 2, 2006")
}

// formatDateTime renders an RFC 3339 timestamp as a date and time.
func formatDateTime(iso string) string {
	ts, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return ts.Format("Jan 2, 2006 3:04 PM")
}

// joinBlocks separates primary list entries with a blank line.
func joinBlocks(blocks []string) string {
	return strings.Join(blocks, "\n\n")
}

// pageOrDefault normalizes a page argument to its 1-based default.
func pageOrDefault(page int) int {
	if page <= 0 {
		return defaultPageNumber
	}
	return page
}

// pageSizeOrDefault normalizes a page-size argument to the shared default.
func pageSizeOrDefault(size int) int {
	if size <= 0 {
		return defaultPageSize
	}
	return size
}

// numberedList renders items as a single-newline-separated numbered sub-list.
func numberedList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return strings.Join(lines, "\n")
}
