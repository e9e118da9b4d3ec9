package main

import (
	"fmt"
	"os"

	"reef/interpreter-go/pkg/driver"
)

func runEntry(path string, opts cliOptions) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}
	pipeline := driver.New(cfg, os.Stdout, os.Stderr)
	if err := pipeline.RunFile(path); err != nil {
		pipeline.Report(err)
		return 1
	}
	return 0
}
