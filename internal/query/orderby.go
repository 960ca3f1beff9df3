package query

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/ordering"

	"github.com/mesh-intelligence/adboard/pkg/types"
)

// ParseOrderBy parses an order_by string such as "name" or "status desc"
// into a sort directive. An empty string yields the default sort. Only a
// single known field is accepted.
func (e *Engine[T]) ParseOrderBy(s string) (types.SortDirective, error) {
	if strings.TrimSpace(s) == "" {
		return e.defaultSort, nil
	}

	var orderBy ordering.OrderBy
	if err := orderBy.UnmarshalString(s); err != nil {
		return types.SortDirective{}, fmt.Errorf("%w: %v", types.ErrInvalidSort, err)
	}
	if len(orderBy.Fields) != 1 {
		return types.SortDirective{}, fmt.Errorf("%w: %q must name exactly one field", types.ErrInvalidSort, s)
	}

	if err := orderBy.ValidateForPaths(e.fields...); err != nil {
		return types.SortDirective{}, fmt.Errorf("%w: %v (valid: %s)",
			types.ErrInvalidSort, err, strings.Join(e.fields, ", "))
	}

	field := orderBy.Fields[0]
	d := types.SortDirective{Field: field.Path, Order: types.OrderAsc}
	if field.Desc {
		d.Order = types.OrderDesc
	}
	return d, nil
}
