package token

import (
	"fmt"
	"strings"
)

// Kind identifies the lexical category of a token.
type Kind int

const (
	Comment Kind = iota
	String
	Keyword
	Number
	Identifier
	Delimiter
	BinaryOperator
	ComparisonOperator
	Equals
	EndOfFile
)

func (k Kind) String() string {
	switch k {
	case Comment:
		return "Comment"
	case String:
		return "String"
	case Keyword:
		return "Keyword"
	case Number:
		return "Number"
	case Identifier:
		return "Identifier"
	case Delimiter:
		return "Delimiter"
	case BinaryOperator:
		return "BinaryOperator"
	case ComparisonOperator:
		return "ComparisonOperator"
	case Equals:
		return "Equals"
	case EndOfFile:
		return "EndOfFile"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is one lexical unit of reef source text. The scanner produces tokens
// and the parser consumes them; they never change after that. Line is the
// 1-based source line the token started on.
type Token struct {
	Kind    Kind
	Literal string
	Line    int
}

func (t Token) String() string {
	switch t.Kind {
	case Equals, EndOfFile:
		return t.Kind.String()
	default:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Literal)
	}
}

// keywords is the fixed keyword set, initialized once for the process.
var keywords = map[string]struct{}{
	"continue": {},
	"struct":   {},
	"elseif":   {},
	"return":   {},
	"typeof":   {},
	"false":    {},
	"break":    {},
	"true":     {},
	"else":     {},
	"then":     {},
	"type":     {},
	"for":      {},
	"fun":      {},
	"nil":      {},
	"not":      {},
	"and":      {},
	"var":      {},
	"log":      {},
	"do":       {},
	"if":       {},
	"or":       {},
}

// IsKeyword reports whether ident names a language keyword.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// Dump renders a token sequence one token per line, the form the driver
// writes to its debug file.
func Dump(tokens []Token) string {
	var b strings.Builder
	b.WriteString("[\n")
	for _, t := range tokens {
		fmt.Fprintf(&b, "\t%s,\n", t)
	}
	b.WriteString("]\n")
	return b.String()
}
