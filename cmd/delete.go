package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <plan>",
		Aliases: []string{"rm"},
		Short:   "Delete a plan and its recorded position",
		Args:    cobra.ExactArgs(1),
		RunE:    runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	if err := st.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Removed plan %s\n", color.GreenString("✓"), args[0])
	return nil
}
