package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <plan> [count]",
		Short: "Print the next entries of a plan",
		Long: `Prints up to count entries (default 1) starting at the plan's current
entry, without moving the cursor. Description lines are re-indented to a
single tab.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	num := 1
	if len(args) == 2 {
		var err error
		num, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid entry count '%s'", args[1])
		}
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	return st.Show(cmd.OutOrStdout(), args[0], num)
}
