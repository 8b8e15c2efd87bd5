// Package pagination provides the pure page arithmetic behind property
// search results: offsets, total page counts and the sliding window of page
// buttons shown by the UI.
package pagination

// PageSize is the fixed number of properties per result page.
const PageSize = 12

// windowSize is the maximum number of page buttons shown at once.
const windowSize = 7

// Offset converts a 1-based page number into a zero-based record offset.
// Page numbers below 1 are clamped to 1.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}

// TotalPages returns ceil(total/PageSize). A total of zero yields zero pages
// so callers render an empty state rather than a phantom single page.
func TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// Window returns the page numbers to render as pagination buttons: all pages
// when there are at most seven, otherwise a seven-wide window centered on the
// current page and clamped at both ends.
func Window(currentPage, totalPages int) []int {
	if totalPages <= 0 {
		return nil
	}

	count := windowSize
	if totalPages < count {
		count = totalPages
	}

	start := 1
	switch {
	case totalPages <= windowSize || currentPage <= 4:
		start = 1
	case currentPage >= totalPages-3:
		start = totalPages - windowSize + 1
	default:
		start = currentPage - 3
	}

	pages := make([]int, count)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}
