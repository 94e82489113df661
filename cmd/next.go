package cmd

import (
	"github.com/spf13/cobra"
)

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next <plan>",
		Short: "Advance a plan to its next entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runNext,
	}
}

func runNext(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	entry, err := st.Next(args[0])
	if err != nil {
		return err
	}
	log.Debugf("plan %s now at entry %d", args[0], entry)
	return nil
}
