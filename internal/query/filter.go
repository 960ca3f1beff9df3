package query

import (
	"strings"

	"golang.org/x/text/cases"
)

// FilterByName keeps the records whose name contains query, ignoring case.
// Matches keep their relative order. An empty query returns records as is.
func (e *Engine[T]) FilterByName(records []T, query string) []T {
	if query == "" {
		return records
	}
	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]T, 0, len(records))
	for _, r := range records {
		if strings.Contains(fold.String(e.name(r)), needle) {
			out = append(out, r)
		}
	}
	return out
}
