package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/adboard/internal/board"
	"github.com/mesh-intelligence/adboard/pkg/types"
)

// listFlags holds the view state given on the list command line.
type listFlags struct {
	orderBy     string
	toggle      string
	filter      string
	page        int
	rowsPerPage int
	selected    []string
	selectAll   bool
}

func newListCmd() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the ad configuration table",
		Long: `List renders one page of the ad configuration table.

Rows are ordered by --order-by (a field name, optionally followed by "desc"),
filtered by a case-insensitive match on the name, and cut to the requested
page. --toggle applies a column header click on top of --order-by.

Sortable fields: name, format, unit_id, status

Example:
  adboard list
  adboard list --order-by "status desc"
  adboard list --filter reward
  adboard list --rows-per-page 10 --page 1
  adboard list --select 1,3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, lf)
		},
	}

	cmd.Flags().StringVar(&lf.orderBy, "order-by", "", `sort directive, e.g. "name" or "status desc" (default from config)`)
	cmd.Flags().StringVar(&lf.toggle, "toggle", "", "toggle sorting on a column as a header click would")
	cmd.Flags().StringVar(&lf.filter, "filter", "", "show only rows whose name contains this text")
	cmd.Flags().IntVar(&lf.page, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&lf.rowsPerPage, "rows-per-page", 0, "rows per page (default from config)")
	cmd.Flags().StringSliceVar(&lf.selected, "select", nil, "IDs of rows to mark selected")
	cmd.Flags().BoolVar(&lf.selectAll, "select-all", false, "mark every row selected")
	return cmd
}

func runList(cmd *cobra.Command, lf listFlags) error {
	b, err := openBoard()
	if err != nil {
		return err
	}

	orderBy := cfg.OrderBy
	if cmd.Flags().Changed("order-by") {
		orderBy = lf.orderBy
	}
	sort, err := b.Engine().ParseOrderBy(orderBy)
	if err != nil {
		return err
	}

	rowsPerPage := cfg.RowsPerPage
	if cmd.Flags().Changed("rows-per-page") {
		if err := cfg.CheckRowsPerPage(lf.rowsPerPage); err != nil {
			return fmt.Errorf("rows per page %d (options: %v): %w", lf.rowsPerPage, cfg.RowsPerPageOptions, err)
		}
		rowsPerPage = lf.rowsPerPage
	}

	view := types.NewViewState(sort.Field, rowsPerPage).
		WithSort(sort).
		WithFilter(lf.filter).
		WithPage(lf.page)
	if lf.toggle != "" {
		view = view.ToggleSort(lf.toggle)
	}

	sel := board.NewSelection()
	if lf.selectAll {
		sel = b.SelectAll(true)
	}
	for _, id := range lf.selected {
		if _, err := b.Catalog().Get(id); err != nil {
			return fmt.Errorf("select %q: %w", id, err)
		}
		sel = sel.SelectAll([]string{id})
	}

	page, err := b.Render(view, sel)
	if err != nil {
		return err
	}

	if flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), page)
	}
	renderPage(cmd.OutOrStdout(), page, cfg.RowsPerPageOptions)
	return nil
}
