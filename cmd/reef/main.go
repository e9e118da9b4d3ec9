package main

import (
	"fmt"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"

	"reef/interpreter-go/pkg/driver"
)

const cliToolVersion = "reef-cli 0.1.0"

// cliOptions carries flag overrides on top of the reef.yml config.
type cliOptions struct {
	debug      int
	debugSet   bool
	plain      bool
	configPath string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, remaining, err := parseOptions(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage()
		return 1
	}
	if len(remaining) == 0 {
		printUsage()
		return 1
	}

	switch remaining[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		if len(remaining) != 2 {
			printUsage()
			return 1
		}
		return runEntry(remaining[1], opts)
	case "repl":
		if len(remaining) > 1 {
			fmt.Fprintln(os.Stderr, "reef repl does not take arguments")
			return 1
		}
		return runRepl(opts)
	default:
		if len(remaining) != 1 {
			printUsage()
			return 1
		}
		return runEntry(remaining[0], opts)
	}
}

func parseOptions(args []string) (cliOptions, []string, error) {
	opts := cliOptions{configPath: driver.DefaultConfigFile}
	argv := append([]string{"reef"}, args...)
	parsed, optind, err := getopt.Getopts(argv, "d:pc:")
	if err != nil {
		return opts, nil, err
	}
	for _, opt := range parsed {
		switch opt.Option {
		case 'd':
			level, err := strconv.Atoi(opt.Value)
			if err != nil || level < 0 {
				return opts, nil, fmt.Errorf("invalid -d level %q", opt.Value)
			}
			opts.debug = level
			opts.debugSet = true
		case 'p':
			opts.plain = true
		case 'c':
			opts.configPath = opt.Value
		}
	}
	return opts, argv[optind:], nil
}

// loadConfig merges the config file with flag overrides.
func loadConfig(opts cliOptions) (driver.Config, error) {
	cfg, err := driver.LoadConfig(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if opts.debugSet {
		cfg.Debug = opts.debug
	}
	if opts.plain {
		cfg.Plain = true
	}
	return cfg, nil
}
