package cmd

import (
	"github.com/spf13/cobra"
)

// runSummary backs the bare invocation: with a plan name it summarizes that
// plan, without one it summarizes every plan in the directory in listing
// order.
func runSummary(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		return st.Summary(cmd.OutOrStdout(), args[0])
	}
	names, err := st.Plans()
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := st.Summary(cmd.OutOrStdout(), name); err != nil {
			return err
		}
	}
	return nil
}
