package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create an ad configuration (not implemented)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBoard()
			if err != nil {
				return err
			}
			err = b.Create()
			if isNotImplemented(err) {
				fmt.Fprintln(cmd.OutOrStdout(), "Creating ad configurations is not available yet")
			}
			return err
		},
	}
}

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an ad configuration (not implemented)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBoard()
			if err != nil {
				return err
			}
			rec, err := b.Edit(args[0])
			if isNotImplemented(err) {
				fmt.Fprintf(cmd.OutOrStdout(), "Editing %q (%s) is not available yet\n", rec.Name, rec.ID)
			}
			return actionError("edit", args[0], err)
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an ad configuration (not implemented)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBoard()
			if err != nil {
				return err
			}
			err = b.Delete(args[0])
			if isNotImplemented(err) {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleting %s is not available yet\n", args[0])
			}
			return actionError("delete", args[0], err)
		},
	}
}

// actionError rewords a missing record for the command line and passes
// other errors through.
func actionError(action, id string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("%s: no ad configuration with ID %q", action, id)
	}
	return err
}
