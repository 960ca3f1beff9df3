package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/adboard/pkg/types"
)

var sampleAdConfigs = []types.AdConfig{
	{ID: "1", Name: "Banner Ad 1", Format: types.FormatBanner, UnitID: "ca-app-pub-xxx/yyy1", Status: types.StatusActive},
	{ID: "2", Name: "Interstitial Ad 1", Format: types.FormatInterstitial, UnitID: "ca-app-pub-xxx/yyy2", Status: types.StatusInactive},
	{ID: "3", Name: "Rewarded Ad 1", Format: types.FormatRewarded, UnitID: "ca-app-pub-xxx/yyy3", Status: types.StatusActive},
}

func TestPaginate(t *testing.T) {
	seq := []int{1, 2, 3}

	tests := []struct {
		name        string
		page, size  int
		wantRows    []int
		wantPadding int
	}{
		{name: "first page holds everything", page: 0, size: 5, wantRows: []int{1, 2, 3}, wantPadding: 0},
		{name: "first page is never padded", page: 0, size: 2, wantRows: []int{1, 2}, wantPadding: 0},
		{name: "partial last page is padded", page: 1, size: 2, wantRows: []int{3}, wantPadding: 1},
		{name: "exact fit", page: 2, size: 1, wantRows: []int{3}, wantPadding: 0},
		{name: "past the end is a blank page", page: 3, size: 2, wantRows: []int{}, wantPadding: 2},
		{name: "page after the last", page: 2, size: 2, wantRows: []int{}, wantPadding: 2},
		{name: "huge page does not overflow", page: math.MaxInt/2 + 1, size: 2, wantRows: []int{}, wantPadding: 2},
		{name: "max page", page: math.MaxInt, size: 25, wantRows: []int{}, wantPadding: 25},
		{name: "huge size holds everything", page: 0, size: math.MaxInt, wantRows: []int{1, 2, 3}, wantPadding: 0},
		{name: "negative page degrades to empty", page: -1, size: 2, wantRows: []int{}, wantPadding: 0},
		{name: "zero size degrades to empty", page: 0, size: 0, wantRows: []int{}, wantPadding: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, padding := Paginate(seq, tt.page, tt.size)
			assert.Equal(t, tt.wantRows, rows)
			assert.Equal(t, tt.wantPadding, padding)
		})
	}
}

func TestPaginateDoesNotExposeCallerCapacity(t *testing.T) {
	seq := []int{1, 2, 3, 4}
	rows, _ := Paginate(seq, 0, 2)
	rows = append(rows, 99)
	assert.Equal(t, []int{1, 2, 3, 4}, seq)
	assert.Equal(t, []int{1, 2, 99}, rows)
}

func TestPaginateCoverage(t *testing.T) {
	for n := 0; n <= 12; n++ {
		seq := make([]int, n)
		for i := range seq {
			seq[i] = i
		}
		for size := 1; size <= 5; size++ {
			var joined []int
			for page := 0; page < PageCount(n, size); page++ {
				rows, _ := Paginate(seq, page, size)
				joined = append(joined, rows...)
			}
			if n == 0 {
				assert.Empty(t, joined)
				continue
			}
			assert.Equal(t, seq, joined, "n=%d size=%d", n, size)
		}
	}
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, PageCount(0, 5))
	assert.Equal(t, 1, PageCount(3, 5))
	assert.Equal(t, 2, PageCount(3, 2))
	assert.Equal(t, 3, PageCount(25, 10))
	assert.Equal(t, 1, PageCount(10, 0))
	assert.Equal(t, 1, PageCount(3, math.MaxInt))
}

func TestApplySampleScenarios(t *testing.T) {
	e := NewAdConfigEngine()
	view := types.NewViewState(types.FieldName, 5)

	t.Run("sort by name ascending", func(t *testing.T) {
		res := e.Apply(sampleAdConfigs, view)
		assert.Equal(t, []string{"Banner Ad 1", "Interstitial Ad 1", "Rewarded Ad 1"}, names(res.Rows))
		assert.Equal(t, 0, res.EmptyRows)
		assert.Equal(t, 3, res.Total)
		assert.False(t, res.NotFound)
		assert.Equal(t, 1, res.From())
		assert.Equal(t, 3, res.To())
	})

	t.Run("filter by reward", func(t *testing.T) {
		res := e.Apply(sampleAdConfigs, view.WithFilter("reward"))
		assert.Equal(t, []string{"Rewarded Ad 1"}, names(res.Rows))
		assert.Equal(t, 1, res.Total)
	})

	t.Run("sort by status descending keeps ties stable", func(t *testing.T) {
		res := e.Apply(sampleAdConfigs, view.ToggleSort(types.FieldStatus).ToggleSort(types.FieldStatus))
		assert.Equal(t, []string{"Interstitial Ad 1", "Banner Ad 1", "Rewarded Ad 1"}, names(res.Rows))
	})

	t.Run("second page of two", func(t *testing.T) {
		res := e.Apply(sampleAdConfigs, view.WithRowsPerPage(2).WithPage(1))
		assert.Equal(t, []string{"Rewarded Ad 1"}, names(res.Rows))
		assert.Equal(t, 1, res.EmptyRows)
		assert.Equal(t, 3, res.From())
		assert.Equal(t, 3, res.To())
	})

	t.Run("filter with no match reports not found", func(t *testing.T) {
		res := e.Apply(sampleAdConfigs, view.WithFilter("native"))
		assert.Empty(t, res.Rows)
		assert.True(t, res.NotFound)
		assert.Equal(t, 0, res.From())
		assert.Equal(t, 0, res.To())
	})

	t.Run("empty collection without filter is not a miss", func(t *testing.T) {
		res := e.Apply(nil, view)
		assert.Empty(t, res.Rows)
		assert.False(t, res.NotFound)
	})
}
