package cmd

import (
	"fmt"
	"os"

	"github.com/ianprime0509/reading/pkg/plan"
)

// openStore resolves the plan directory and returns a Store over it. The
// --plan-dir flag wins over the environment and the config file.
func openStore() (*plan.Store, error) {
	if rootPlanDir != "" {
		if err := os.MkdirAll(rootPlanDir, 0755); err != nil {
			return nil, fmt.Errorf("create plan directory %s: %w", rootPlanDir, err)
		}
		log.Debugf("using plan directory %s (from --plan-dir)", rootPlanDir)
		return plan.NewStore(rootPlanDir), nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dir, err := plan.DefaultDir(cfg.PlansDirectory)
	if err != nil {
		return nil, err
	}
	log.Debugf("using plan directory %s", dir)
	return plan.NewStore(dir), nil
}
