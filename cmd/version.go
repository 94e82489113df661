package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridable at build time:
//
//	go build -ldflags "-X github.com/ianprime0509/reading/cmd.version=..."
var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "reading %s (commit %s, built %s)\n", version, commit, date)
			return nil
		},
	}
}
