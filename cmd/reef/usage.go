package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  reef [-d level] [-p] [-c config] run <file.reef>")
	fmt.Fprintln(os.Stderr, "  reef [-d level] [-p] [-c config] <file.reef>")
	fmt.Fprintln(os.Stderr, "  reef [-d level] [-p] [-c config] repl")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -d level   debug level: 1 dumps the AST, 2 also dumps tokens")
	fmt.Fprintln(os.Stderr, "  -p         plain output (no color)")
	fmt.Fprintln(os.Stderr, "  -c config  config file path (default reef.yml)")
}
