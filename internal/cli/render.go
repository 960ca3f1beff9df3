package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mesh-intelligence/adboard/internal/board"
	"github.com/mesh-intelligence/adboard/pkg/types"
)

// columns are the table headers for the sortable fields, in display order.
var columns = []struct {
	field string
	title string
}{
	{types.FieldName, "Name"},
	{types.FieldFormat, "Format"},
	{types.FieldUnitID, "Unit ID"},
	{types.FieldStatus, "Status"},
}

var (
	summaryStyle  = lipgloss.NewStyle().Bold(true)
	noResultStyle = lipgloss.NewStyle().Italic(true)
	inactiveStyle = lipgloss.NewStyle().Faint(true)
)

// renderPage writes the summary line, the table, and the pagination footer.
func renderPage(w io.Writer, p board.Page, options []int) {
	fmt.Fprintln(w, summaryStyle.Render(summaryLine(p)))

	headers := []string{checkbox(p.AllSelected, p.Selected > 0)}
	for _, c := range columns {
		headers = append(headers, sortLabel(c.title, c.field, p.View.Sort))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, r := range p.Rows {
		t.Row(checkbox(r.Selected, false), r.Name, r.Format, r.UnitID, statusCell(r.AdConfig))
	}
	for i := 0; i < p.EmptyRows; i++ {
		t.Row("", "", "", "", "")
	}
	fmt.Fprintln(w, t.Render())

	if p.NotFound {
		fmt.Fprintln(w, noResultStyle.Render(fmt.Sprintf("No results found for %q. Try checking for typos or using complete words.", p.View.Filter)))
	}
	fmt.Fprintln(w, footerLine(p, options))
}

func summaryLine(p board.Page) string {
	parts := []string{fmt.Sprintf("Sort: %s %s", p.View.Sort.Field, p.View.Sort.Order)}
	if p.View.Filter != "" {
		parts = append(parts, fmt.Sprintf("Filter: %s", p.View.Filter))
	}
	if p.Selected > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", p.Selected))
	}
	parts = append(parts, fmt.Sprintf("Total: %d", p.Total))
	return strings.Join(parts, " • ")
}

func footerLine(p board.Page, options []int) string {
	opts := make([]string, len(options))
	for i, o := range options {
		opts[i] = fmt.Sprint(o)
	}
	return fmt.Sprintf("Rows per page: %d [%s]  %d–%d of %d  Page %d of %d",
		p.View.RowsPerPage, strings.Join(opts, ", "),
		p.From, p.To, p.Total, p.View.Page+1, p.PageCount)
}

// sortLabel marks the active sort column with its direction.
func sortLabel(title, field string, sort types.SortDirective) string {
	if sort.Field != field {
		return title
	}
	if sort.Order.Descending() {
		return title + " ▼"
	}
	return title + " ▲"
}

// statusCell dims ad units that are not serving.
func statusCell(a types.AdConfig) string {
	if a.Active() {
		return a.Status
	}
	return inactiveStyle.Render(a.Status)
}

func checkbox(checked, partial bool) string {
	switch {
	case checked:
		return "[x]"
	case partial:
		return "[-]"
	default:
		return "[ ]"
	}
}
