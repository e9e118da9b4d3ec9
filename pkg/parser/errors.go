package parser

import (
	"fmt"

	"reef/interpreter-go/pkg/token"
)

// SyntaxError reports an expected-token mismatch. Position is the index into
// the token sequence at which the mismatch was detected.
type SyntaxError struct {
	Position int
	Message  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: at %d, %s", e.Position, e.Message)
}

// UnknownTokenError means statement dispatch had no rule for the current
// token.
type UnknownTokenError struct {
	Position int
	Token    token.Token
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token %s at %d", e.Token, e.Position)
}

// OutOfBoundsError means the token stream ran out in the middle of a
// construct.
type OutOfBoundsError struct {
	Position int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("token stream exhausted at %d", e.Position)
}
