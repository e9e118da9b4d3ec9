// Package driver wires the scan, parse, and evaluate stages together and
// owns everything around them: configuration, the parse cache, debug dumps,
// and error reporting. The core packages never touch a file or exit the
// process; this one decides what failures mean.
package driver

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"reef/interpreter-go/pkg/ast"
	"reef/interpreter-go/pkg/interpreter"
	"reef/interpreter-go/pkg/parser"
	"reef/interpreter-go/pkg/scanner"
	"reef/interpreter-go/pkg/token"
)

// Pipeline runs source texts through the interpreter. The evaluator inside
// it persists, so successive RunSource calls share one scope chain — that is
// what makes the REPL's variables survive between lines.
type Pipeline struct {
	cfg    Config
	cache  *programCache
	eval   *interpreter.Evaluator
	out    io.Writer
	errOut io.Writer
	errc   *color.Color
}

// New constructs a pipeline writing program output to out and diagnostics
// to errOut.
func New(cfg Config, out, errOut io.Writer) *Pipeline {
	errc := color.New(color.FgHiRed)
	if cfg.Plain {
		errc.DisableColor()
	}
	return &Pipeline{
		cfg:    cfg,
		cache:  newProgramCache(),
		eval:   interpreter.New(out, cfg.Plain),
		out:    out,
		errOut: errOut,
		errc:   errc,
	}
}

// RunFile reads a source file and runs it.
func (p *Pipeline) RunFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return p.RunSource(path, string(src))
}

// RunSource runs one source text through scan, parse, and evaluate. A parse
// error is reported but does not stop the run: the statements built before
// the error still evaluate, mirroring the reference driver. Lexical and
// runtime errors are returned and end the run.
func (p *Pipeline) RunSource(name, src string) error {
	tokens, err := scanner.New(src).Scan()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	var dumps []string
	if p.cfg.Debug >= 2 {
		dumps = append(dumps, token.Dump(tokens))
	}

	program, cached := p.cache.get(src)
	if !cached {
		var parseErr error
		program, parseErr = parser.New(tokens).Parse()
		if parseErr != nil {
			p.Report(parseErr)
		} else {
			p.cache.put(src, program)
		}
	}

	if p.cfg.Debug >= 1 {
		dumps = append(dumps, dumpProgram(program))
		p.writeDump(strings.Join(dumps, "\n"))
	}

	if err := p.eval.Evaluate(program); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Report prints an error the way the reference interpreter did: one red
// line on the diagnostic stream.
func (p *Pipeline) Report(err error) {
	fmt.Fprintln(p.errOut, p.errc.Sprintf("[error] %v", err))
}

func (p *Pipeline) writeDump(contents string) {
	if err := os.WriteFile(p.cfg.DumpFile, []byte(contents), 0o644); err != nil {
		fmt.Fprintf(p.errOut, "failed to write %s: %v\n", p.cfg.DumpFile, err)
	}
}

// dumpProgram renders the parsed statements one per line, matching the
// token dump's shape.
func dumpProgram(program []ast.Statement) string {
	var b strings.Builder
	b.WriteString("[\n")
	for _, stmt := range program {
		fmt.Fprintf(&b, "\t%s,\n", stmt)
	}
	b.WriteString("]\n")
	return b.String()
}
