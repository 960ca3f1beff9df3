package query

import "github.com/mesh-intelligence/adboard/pkg/types"

// Paginate returns the records on page (zero-based) of the given size and
// the number of placeholder rows needed to keep the table at a constant
// height. The first page is never padded. A page past the end yields an
// empty slice and a full page of padding.
func Paginate[T any](records []T, page, size int) ([]T, int) {
	if page < 0 || size <= 0 {
		return []T{}, 0
	}
	// Bound the page before multiplying; page*size may overflow.
	if len(records) == 0 || page >= PageCount(len(records), size) {
		if page == 0 {
			return []T{}, 0
		}
		return []T{}, size
	}
	start := page * size
	end := min(start+size, len(records))
	padding := 0
	if page > 0 {
		padding = max(0, (page+1)*size-len(records))
	}
	return records[start:end:end], padding
}

// PageCount returns how many pages of size hold total rows; at least one.
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total-1)/size + 1
}

// Result is the evaluated table view.
type Result[T any] struct {
	View      types.ViewState `json:"view"`
	Rows      []T             `json:"rows"`
	EmptyRows int             `json:"empty_rows"`
	Total     int             `json:"total"`     // Rows left after filtering.
	NotFound  bool            `json:"not_found"` // A non-empty filter matched nothing.
}

// From is the 1-based position of the first visible row, 0 when none.
// Rows are only present for an in-range page, so the product cannot overflow.
func (r Result[T]) From() int {
	if len(r.Rows) == 0 {
		return 0
	}
	return r.View.Page*r.View.RowsPerPage + 1
}

// To is the 1-based position of the last visible row, 0 when none.
func (r Result[T]) To() int {
	if len(r.Rows) == 0 {
		return 0
	}
	return r.From() + len(r.Rows) - 1
}

// Apply sorts, filters, and paginates records for view v. The view is
// expected to be validated by the caller.
func (e *Engine[T]) Apply(records []T, v types.ViewState) Result[T] {
	sorted := e.SortStable(records, v.Sort.Field, v.Sort.Order)
	filtered := e.FilterByName(sorted, v.Filter)
	rows, padding := Paginate(filtered, v.Page, v.RowsPerPage)
	return Result[T]{
		View:      v,
		Rows:      rows,
		EmptyRows: padding,
		Total:     len(filtered),
		NotFound:  len(filtered) == 0 && v.Filter != "",
	}
}
