package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/adboard/pkg/types"
)

func TestStatusCell(t *testing.T) {
	assert.Equal(t, types.StatusActive, statusCell(types.AdConfig{Status: types.StatusActive}))
	assert.Contains(t, statusCell(types.AdConfig{Status: types.StatusInactive}), types.StatusInactive)
}

func TestSortLabel(t *testing.T) {
	asc := types.SortDirective{Field: types.FieldName, Order: types.OrderAsc}
	desc := types.SortDirective{Field: types.FieldName, Order: types.OrderDesc}

	assert.Equal(t, "Name ▲", sortLabel("Name", types.FieldName, asc))
	assert.Equal(t, "Name ▼", sortLabel("Name", types.FieldName, desc))
	assert.Equal(t, "Status", sortLabel("Status", types.FieldStatus, asc))
}

func TestCheckbox(t *testing.T) {
	assert.Equal(t, "[x]", checkbox(true, false))
	assert.Equal(t, "[-]", checkbox(false, true))
	assert.Equal(t, "[ ]", checkbox(false, false))
}
