package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file> [name]",
		Short: "Import a file as a new plan",
		Long: `Copies the given file into the plan directory and starts its cursor at
the first entry. The plan is named after the file unless a name is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	var name string
	if len(args) == 2 {
		name = args[1]
	}
	name, err = st.Add(args[0], name)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Added plan %s\n", color.GreenString("✓"), name)
	return nil
}
