package board

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/adboard/internal/catalog"
	"github.com/mesh-intelligence/adboard/internal/logger"
	"github.com/mesh-intelligence/adboard/pkg/types"
)

func newSampleBoard(t *testing.T) *Board {
	t.Helper()
	c, err := catalog.Load(catalog.Sample())
	require.NoError(t, err)
	return New(c, nil)
}

func rowNames(p Page) []string {
	out := make([]string, len(p.Rows))
	for i, r := range p.Rows {
		out[i] = r.Name
	}
	return out
}

func TestRenderInitialView(t *testing.T) {
	b := newSampleBoard(t)

	page, err := b.Render(types.NewViewState(types.FieldName, 5), Selection{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Banner Ad 1", "Interstitial Ad 1", "Rewarded Ad 1"}, rowNames(page))
	assert.Equal(t, 0, page.EmptyRows)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 3, page.RowCount)
	assert.Equal(t, 1, page.From)
	assert.Equal(t, 3, page.To)
	assert.Equal(t, 1, page.PageCount)
	assert.False(t, page.NotFound)
	assert.Equal(t, 0, page.Selected)
	assert.False(t, page.AllSelected)
}

func TestRenderFilterAndPaging(t *testing.T) {
	b := newSampleBoard(t)
	v := types.NewViewState(types.FieldName, 5)

	page, err := b.Render(v.WithFilter("reward"), Selection{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rewarded Ad 1"}, rowNames(page))
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 3, page.RowCount)

	page, err = b.Render(v.WithRowsPerPage(2).WithPage(1), Selection{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rewarded Ad 1"}, rowNames(page))
	assert.Equal(t, 1, page.EmptyRows)
	assert.Equal(t, 2, page.PageCount)

	page, err = b.Render(v.WithFilter("video"), Selection{})
	require.NoError(t, err)
	assert.Empty(t, page.Rows)
	assert.True(t, page.NotFound)
}

func TestRenderRejectsInvalidView(t *testing.T) {
	b := newSampleBoard(t)
	v := types.NewViewState(types.FieldName, 5)

	_, err := b.Render(v.WithPage(-1), Selection{})
	assert.ErrorIs(t, err, types.ErrInvalidPage)

	_, err = b.Render(v.WithRowsPerPage(0), Selection{})
	assert.ErrorIs(t, err, types.ErrInvalidPageSize)

	_, err = b.Render(v.ToggleSort("id"), Selection{})
	assert.ErrorIs(t, err, types.ErrInvalidSort)
}

func TestRenderMarksSelection(t *testing.T) {
	b := newSampleBoard(t)
	v := types.NewViewState(types.FieldName, 5)

	page, err := b.Render(v, NewSelection("2"))
	require.NoError(t, err)
	assert.False(t, page.Rows[0].Selected)
	assert.True(t, page.Rows[1].Selected)
	assert.Equal(t, 1, page.Selected)
	assert.False(t, page.AllSelected)

	page, err = b.Render(v, b.SelectAll(true))
	require.NoError(t, err)
	assert.Equal(t, 3, page.Selected)
	assert.True(t, page.AllSelected)
	for _, r := range page.Rows {
		assert.True(t, r.Selected)
	}

	assert.Equal(t, 0, b.SelectAll(false).Len())
}

func TestEditAndDeleteArePlaceholders(t *testing.T) {
	c, err := catalog.Load(catalog.Sample())
	require.NoError(t, err)
	var buf bytes.Buffer
	b := New(c, logger.New(&logger.Config{Level: logger.InfoLevel, Output: &buf}))

	rec, err := b.Edit("1")
	assert.ErrorIs(t, err, types.ErrNotImplemented)
	assert.Equal(t, "Banner Ad 1", rec.Name)

	err = b.Delete("2")
	assert.ErrorIs(t, err, types.ErrNotImplemented)
	assert.Equal(t, 3, b.Catalog().Len(), "delete does not modify the catalog")

	err = b.Create()
	assert.ErrorIs(t, err, types.ErrNotImplemented)
	assert.Equal(t, 3, b.Catalog().Len(), "create does not modify the catalog")

	assert.Contains(t, buf.String(), "create requested")
	assert.Contains(t, buf.String(), "edit requested")
	assert.Contains(t, buf.String(), "delete requested")

	_, err = b.Edit("99")
	assert.ErrorIs(t, err, types.ErrNotFound)
	err = b.Delete("")
	assert.ErrorIs(t, err, types.ErrInvalidID)
}
