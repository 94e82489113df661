package main

import (
	"os"

	"github.com/ianprime0509/reading/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
