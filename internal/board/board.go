// Package board models the ad configuration screen of the admin dashboard:
// it evaluates a view over the catalog, tracks row selection, and exposes the
// row actions.
package board

import (
	"fmt"

	"github.com/mesh-intelligence/adboard/internal/catalog"
	"github.com/mesh-intelligence/adboard/internal/logger"
	"github.com/mesh-intelligence/adboard/internal/query"
	"github.com/mesh-intelligence/adboard/pkg/types"
)

// Row is a visible table row.
type Row struct {
	types.AdConfig
	Selected bool `json:"selected"`
}

// Page is one rendered state of the table.
type Page struct {
	View        types.ViewState `json:"view"`
	Rows        []Row           `json:"rows"`
	EmptyRows   int             `json:"empty_rows"`
	Total       int             `json:"total"`
	RowCount    int             `json:"row_count"` // Records in the catalog, unfiltered.
	NotFound    bool            `json:"not_found"`
	From        int             `json:"from"`
	To          int             `json:"to"`
	PageCount   int             `json:"page_count"`
	Selected    int             `json:"selected"`
	AllSelected bool            `json:"all_selected"`
}

// Board binds a catalog to the query engine.
type Board struct {
	catalog *catalog.Catalog
	engine  *query.Engine[types.AdConfig]
	log     logger.Logger
}

// New returns a Board over c. A nil log discards messages.
func New(c *catalog.Catalog, log logger.Logger) *Board {
	if log == nil {
		log = logger.Discard()
	}
	return &Board{
		catalog: c,
		engine:  query.NewAdConfigEngine(),
		log:     log,
	}
}

// Engine returns the query engine, for parsing order_by strings.
func (b *Board) Engine() *query.Engine[types.AdConfig] {
	return b.engine
}

// Catalog returns the records the board is built from.
func (b *Board) Catalog() *catalog.Catalog {
	return b.catalog
}

// Render evaluates v against the catalog and marks the selected rows.
// Returns an error wrapping a types error if v is invalid or sorts by an
// unknown field.
func (b *Board) Render(v types.ViewState, sel Selection) (Page, error) {
	if err := v.Validate(); err != nil {
		return Page{}, err
	}
	if !b.engine.HasField(v.Sort.Field) {
		return Page{}, fmt.Errorf("%w: unknown field %q", types.ErrInvalidSort, v.Sort.Field)
	}

	res := b.engine.Apply(b.catalog.Records(), v)
	rows := make([]Row, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = Row{AdConfig: r, Selected: sel.Has(r.ID)}
	}

	b.log.Debug("rendered view",
		"order_by", v.Sort.String(), "filter", v.Filter, "page", v.Page,
		"rows_per_page", v.RowsPerPage, "total", res.Total)

	return Page{
		View:        v,
		Rows:        rows,
		EmptyRows:   res.EmptyRows,
		Total:       res.Total,
		RowCount:    b.catalog.Len(),
		NotFound:    res.NotFound,
		From:        res.From(),
		To:          res.To(),
		PageCount:   query.PageCount(res.Total, v.RowsPerPage),
		Selected:    sel.Len(),
		AllSelected: sel.AllOf(b.catalog.IDs()),
	}, nil
}

// SelectAll returns a selection holding every record when checked, and an
// empty selection otherwise.
func (b *Board) SelectAll(checked bool) Selection {
	if !checked {
		return Selection{}
	}
	return Selection{}.SelectAll(b.catalog.IDs())
}

// Create is the "New Ad Config" action. Creating records is not supported
// yet, so it always reports ErrNotImplemented.
func (b *Board) Create() error {
	b.log.Info("create requested")
	return fmt.Errorf("create: %w", types.ErrNotImplemented)
}

// Edit is the row edit action. It resolves the record and reports
// ErrNotImplemented; editing is not supported yet.
func (b *Board) Edit(id string) (types.AdConfig, error) {
	rec, err := b.catalog.Get(id)
	if err != nil {
		return types.AdConfig{}, fmt.Errorf("edit %q: %w", id, err)
	}
	b.log.Info("edit requested", "id", rec.ID, "name", rec.Name)
	return rec, fmt.Errorf("edit %q: %w", id, types.ErrNotImplemented)
}

// Delete is the row delete action. It resolves the record and reports
// ErrNotImplemented; the catalog is never modified.
func (b *Board) Delete(id string) error {
	rec, err := b.catalog.Get(id)
	if err != nil {
		return fmt.Errorf("delete %q: %w", id, err)
	}
	b.log.Info("delete requested", "id", rec.ID)
	return fmt.Errorf("delete %q: %w", id, types.ErrNotImplemented)
}
