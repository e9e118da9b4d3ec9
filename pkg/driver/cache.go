package driver

import (
	"github.com/zeebo/blake3"

	"reef/interpreter-go/pkg/ast"
)

// programCache memoizes parsed programs by a digest of the source text, so
// a REPL line that repeats is not rescanned and reparsed. Programs are
// read-only after parsing, so handing the same statements out twice is safe.
type programCache struct {
	programs map[[32]byte][]ast.Statement
}

func newProgramCache() *programCache {
	return &programCache{programs: map[[32]byte][]ast.Statement{}}
}

func (c *programCache) get(src string) ([]ast.Statement, bool) {
	program, ok := c.programs[blake3.Sum256([]byte(src))]
	return program, ok
}

func (c *programCache) put(src string, program []ast.Statement) {
	c.programs[blake3.Sum256([]byte(src))] = program
}
