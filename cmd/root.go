package cmd

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootVerbose bool
	rootPlanDir string
)

var log = logrus.New()

// NewRootCmd builds the reading command tree. Invoked bare it summarizes
// every plan; invoked with a plan name it summarizes just that plan.
func NewRootCmd() *cobra.Command {
	log.SetLevel(logrus.WarnLevel)

	cmd := &cobra.Command{
		Use:   "reading [plan]",
		Short: "Track your position in entry-delimited reading plans",
		Long: `reading tracks how far you have gotten through "plans": flat text files
whose entries are one unindented title line followed by indented
description lines. Each plan remembers the entry you are currently on.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if rootVerbose {
				log.SetLevel(logrus.DebugLevel)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.NoColor {
				color.NoColor = true
			}
			return nil
		},
		RunE: runSummary,
	}

	cmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&rootPlanDir, "plan-dir", "", "Plan directory (overrides READING_PLAN_DIR and the config file)")

	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newNextCmd())
	cmd.AddCommand(newPrevCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newTUICmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
