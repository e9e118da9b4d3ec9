package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"reef/interpreter-go/pkg/driver"
)

// runRepl reads one line at a time and feeds each through a single shared
// pipeline, so variables declared on one line are visible on the next.
// Errors are reported and the loop keeps reading; only EOF ends it.
func runRepl(opts cliOptions) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}
	pipeline := driver.New(cfg, os.Stdout, os.Stderr)

	fmt.Fprintln(os.Stdout, cliToolVersion)
	input := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stdout, ">> ")
		if !input.Scan() {
			break
		}
		line := strings.TrimSpace(input.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}
		if err := pipeline.RunSource("repl", line); err != nil {
			pipeline.Report(err)
		}
	}
	if err := input.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input: %v\n", err)
		return 1
	}
	return 0
}
