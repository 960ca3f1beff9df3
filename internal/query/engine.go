// Package query evaluates a table view over an in-memory record collection:
// stable sort by a column, case-insensitive name filter, and the page window.
// Every operation is pure; inputs are never reordered in place, so an Engine
// can be shared freely between goroutines.
package query

import (
	"cmp"
	"slices"

	"github.com/mesh-intelligence/adboard/pkg/types"
)

// Column is a sortable field of T with a typed comparator.
type Column[T any] struct {
	Field   string
	compare func(a, b T) int
}

// By returns a Column ordering records by the value key extracts.
// Strings compare lexicographically, numbers numerically.
func By[T any, K cmp.Ordered](field string, key func(T) K) Column[T] {
	return Column[T]{
		Field: field,
		compare: func(a, b T) int {
			return cmp.Compare(key(a), key(b))
		},
	}
}

// Engine holds the column table and name accessor for one record type.
type Engine[T any] struct {
	columns     map[string]Column[T]
	fields      []string
	name        func(T) string
	defaultSort types.SortDirective
}

// New builds an Engine. name extracts the text the filter matches against.
// The first column is the default ascending sort.
func New[T any](name func(T) string, columns ...Column[T]) *Engine[T] {
	e := &Engine[T]{
		columns: make(map[string]Column[T], len(columns)),
		name:    name,
	}
	for _, c := range columns {
		if _, dup := e.columns[c.Field]; !dup {
			e.fields = append(e.fields, c.Field)
		}
		e.columns[c.Field] = c
	}
	if len(e.fields) > 0 {
		e.defaultSort = types.SortDirective{Field: e.fields[0], Order: types.OrderAsc}
	}
	return e
}

// Fields returns the sortable field names in column order.
func (e *Engine[T]) Fields() []string {
	return slices.Clone(e.fields)
}

// HasField reports whether field is a sortable column.
func (e *Engine[T]) HasField(field string) bool {
	_, ok := e.columns[field]
	return ok
}

// DefaultSort is the directive used for an empty order_by.
func (e *Engine[T]) DefaultSort() types.SortDirective {
	return e.defaultSort
}

// Compare returns -1, 0, or 1 comparing a and b on field. The sign is
// flipped for descending order. An unknown field compares equal.
func (e *Engine[T]) Compare(a, b T, field string, order types.Order) int {
	return e.comparator(field, order)(a, b)
}

// comparator selects the column once for a whole sort.
func (e *Engine[T]) comparator(field string, order types.Order) func(a, b T) int {
	col, ok := e.columns[field]
	if !ok {
		return func(T, T) int { return 0 }
	}
	if order.Descending() {
		return func(a, b T) int { return -col.compare(a, b) }
	}
	return col.compare
}

// SortStable returns a sorted copy of records. Records that compare equal
// keep their input order in both directions.
func (e *Engine[T]) SortStable(records []T, field string, order types.Order) []T {
	out := slices.Clone(records)
	slices.SortStableFunc(out, e.comparator(field, order))
	return out
}
