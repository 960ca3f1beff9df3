package types

import "fmt"

// Order is the direction of a sort directive.
type Order string

// Sort orders.
const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Descending reports whether o sorts from largest to smallest.
func (o Order) Descending() bool {
	return o == OrderDesc
}

// SortDirective selects the field a table is ordered by and the direction.
type SortDirective struct {
	Field string `json:"field"`
	Order Order  `json:"order"`
}

// String renders the directive in order_by syntax, e.g. "name desc".
func (d SortDirective) String() string {
	if d.Order.Descending() {
		return d.Field + " desc"
	}
	return d.Field
}

// ViewState is the presentation state a table query is evaluated against:
// the sort directive, the name filter text, and the page window. It is a
// value; the transition methods return a modified copy.
type ViewState struct {
	Sort        SortDirective `json:"sort"`
	Filter      string        `json:"filter,omitempty"`
	Page        int           `json:"page"`
	RowsPerPage int           `json:"rows_per_page"`
}

// NewViewState returns the initial view: ascending by field, first page,
// no filter.
func NewViewState(field string, rowsPerPage int) ViewState {
	return ViewState{
		Sort:        SortDirective{Field: field, Order: OrderAsc},
		RowsPerPage: rowsPerPage,
	}
}

// ToggleSort applies a click on a column header. Clicking the active
// ascending column flips it to descending; any other click sorts the
// clicked column ascending. The page is left unchanged.
func (v ViewState) ToggleSort(field string) ViewState {
	isAsc := v.Sort.Field == field && v.Sort.Order == OrderAsc
	if isAsc {
		v.Sort = SortDirective{Field: field, Order: OrderDesc}
	} else {
		v.Sort = SortDirective{Field: field, Order: OrderAsc}
	}
	return v
}

// WithSort replaces the sort directive.
func (v ViewState) WithSort(d SortDirective) ViewState {
	v.Sort = d
	return v
}

// WithFilter sets the name filter and returns to the first page.
func (v ViewState) WithFilter(text string) ViewState {
	v.Filter = text
	v.Page = 0
	return v
}

// WithRowsPerPage changes the page size and returns to the first page.
func (v ViewState) WithRowsPerPage(n int) ViewState {
	v.RowsPerPage = n
	v.Page = 0
	return v
}

// WithPage moves to page n.
func (v ViewState) WithPage(n int) ViewState {
	v.Page = n
	return v
}

// Validate checks the page window and sort order.
func (v ViewState) Validate() error {
	if v.Page < 0 {
		return ErrInvalidPage
	}
	if v.RowsPerPage <= 0 {
		return ErrInvalidPageSize
	}
	switch v.Sort.Order {
	case OrderAsc, OrderDesc:
	default:
		return fmt.Errorf("%w: order %q", ErrInvalidSort, v.Sort.Order)
	}
	return nil
}
