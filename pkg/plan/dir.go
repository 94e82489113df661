package plan

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir resolves the plan directory and ensures it exists, creating
// missing parents as needed.
//
// The following locations are tried, in this order:
//  1. $READING_PLAN_DIR
//  2. configured, if non-empty (the config file's plans_directory)
//  3. $XDG_DATA_HOME/reading
//  4. $HOME/.local/share/reading
func DefaultDir(configured string) (string, error) {
	var dir string
	switch {
	case os.Getenv("READING_PLAN_DIR") != "":
		dir = os.Getenv("READING_PLAN_DIR")
	case configured != "":
		dir = configured
	case os.Getenv("XDG_DATA_HOME") != "":
		dir = filepath.Join(os.Getenv("XDG_DATA_HOME"), "reading")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not find plan directory: %w", err)
		}
		dir = filepath.Join(home, ".local", "share", "reading")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create plan directory %s: %w", dir, err)
	}
	return dir, nil
}
