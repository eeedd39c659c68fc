package util

// Calculate turns a 1-based page and a page size into an offset and limit.
// Out-of-range sizes fall back to 10.
func Calculate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	from = (page - 1) * size
	return from, size
}

// Page returns the slice of items for page/size, empty past the end.
func Page[T any](items []T, page, size int) []T {
	from, limit := Calculate(page, size)
	if from >= len(items) {
		return []T{}
	}
	to := from + limit
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}
