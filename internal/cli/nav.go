package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/adboard/internal/board"
)

func newNavCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nav",
		Short: "Print the dashboard navigation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nav := board.DefaultNav()
			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), nav)
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("Title", "Path", "Icon", "Info")
			for _, item := range nav {
				t.Row(item.Title, item.Path, board.IconPath(item.Icon), item.Info)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}
