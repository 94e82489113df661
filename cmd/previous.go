package cmd

import (
	"github.com/spf13/cobra"
)

func newPrevCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "prev <plan>",
		Aliases: []string{"previous"},
		Short:   "Move a plan back to its previous entry",
		Args:    cobra.ExactArgs(1),
		RunE:    runPrev,
	}
}

func runPrev(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	entry, err := st.Previous(args[0])
	if err != nil {
		return err
	}
	log.Debugf("plan %s now at entry %d", args[0], entry)
	return nil
}
