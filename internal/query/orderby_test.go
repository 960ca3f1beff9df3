package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/adboard/pkg/types"
)

func TestParseOrderBy(t *testing.T) {
	e := NewAdConfigEngine()

	tests := []struct {
		name    string
		input   string
		want    types.SortDirective
		wantErr bool
	}{
		{name: "empty uses default", input: "", want: types.SortDirective{Field: types.FieldName, Order: types.OrderAsc}},
		{name: "blank uses default", input: "   ", want: types.SortDirective{Field: types.FieldName, Order: types.OrderAsc}},
		{name: "bare field is ascending", input: "status", want: types.SortDirective{Field: types.FieldStatus, Order: types.OrderAsc}},
		{name: "desc suffix", input: "unit_id desc", want: types.SortDirective{Field: types.FieldUnitID, Order: types.OrderDesc}},
		{name: "unknown field", input: "id", wantErr: true},
		{name: "unknown field with direction", input: "created desc", wantErr: true},
		{name: "field names are case sensitive", input: "Name", wantErr: true},
		{name: "two fields", input: "name, status desc", wantErr: true},
		{name: "bad direction", input: "name sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ParseOrderBy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, types.ErrInvalidSort)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOrderByRoundTripsDirectiveString(t *testing.T) {
	e := NewAdConfigEngine()
	for _, field := range types.SortableFields {
		for _, order := range []types.Order{types.OrderAsc, types.OrderDesc} {
			d := types.SortDirective{Field: field, Order: order}
			got, err := e.ParseOrderBy(d.String())
			require.NoError(t, err)
			assert.Equal(t, d, got)
		}
	}
}

func TestParseOrderByNamesValidFields(t *testing.T) {
	_, err := NewAdConfigEngine().ParseOrderBy("id")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidSort)
	assert.Contains(t, err.Error(), "id")
	assert.Contains(t, err.Error(), "name, format, unit_id, status")
}
