package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <plan> <entry>",
		Short: "Jump a plan to the given entry",
		Long: `Sets the plan's current entry. The value is clamped to the plan's
bounds: anything before the first entry becomes 1, anything past the
last entry becomes one past the end.`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	target, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid entry number '%s'", args[1])
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	entry, err := st.Set(args[0], target)
	if err != nil {
		return err
	}
	log.Debugf("plan %s now at entry %d", args[0], entry)
	return nil
}
