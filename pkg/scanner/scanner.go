// Package scanner turns raw reef source text into a flat token sequence.
package scanner

import (
	"fmt"
	"strings"

	"reef/interpreter-go/pkg/token"
)

// Error reports a character the scanner has no rule for. Scanning stops at
// the first one; the caller decides how to surface it.
type Error struct {
	Line int
	Char byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("unrecognized character %q on line %d", e.Char, e.Line)
}

// Scanner walks the source buffer left to right exactly once, tracking the
// cursor offset and the current line. There is no backtracking; `--`
// comments are the only construct that needs a one-byte lookahead.
type Scanner struct {
	src    string
	pos    int
	line   int
	tokens []token.Token
}

// New constructs a scanner over src.
func New(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// Scan consumes the whole source buffer and returns its tokens. The last
// token is always EndOfFile. The only error is an unrecognized character.
func (s *Scanner) Scan() ([]token.Token, error) {
	for s.pos < len(s.src) {
		if err := s.next(); err != nil {
			return nil, err
		}
	}
	s.emit(token.EndOfFile, "")
	return s.tokens, nil
}

func (s *Scanner) next() error {
	c := s.src[s.pos]
	switch {
	case c == '\n':
		s.line++
		s.pos++
	case isLetter(c):
		s.scanIdent()
	case isDigit(c):
		s.scanNumber()
	case c == '"':
		s.scanString()
	case c == '-':
		s.scanHyphen()
	case c == '+' || c == '*' || c == '/':
		s.emit(token.BinaryOperator, string(c))
		s.pos++
	case c == '<' || c == '>':
		s.emit(token.ComparisonOperator, string(c))
		s.pos++
	case c == '=':
		s.emit(token.Equals, "=")
		s.pos++
	case isDelimiter(c):
		s.emit(token.Delimiter, string(c))
		s.pos++
	case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
		s.pos++
	default:
		return &Error{Line: s.line, Char: c}
	}
	return nil
}

// scanIdent consumes a maximal alphanumeric/underscore run and emits either
// a Keyword or an Identifier, depending on the keyword table.
func (s *Scanner) scanIdent() {
	start := s.pos
	for s.pos < len(s.src) && (isLetter(s.src[s.pos]) || isDigit(s.src[s.pos])) {
		s.pos++
	}
	sym := s.src[start:s.pos]
	if token.IsKeyword(sym) {
		s.emit(token.Keyword, sym)
	} else {
		s.emit(token.Identifier, sym)
	}
}

// scanNumber consumes digits plus '.' and '_'. Underscores are separators
// and are dropped from the literal; conversion to a float happens later, at
// AST construction.
func (s *Scanner) scanNumber() {
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if !isDigit(c) && c != '.' && c != '_' {
			break
		}
		s.pos++
	}
	sym := strings.ReplaceAll(s.src[start:s.pos], "_", "")
	s.emit(token.Number, sym)
}

// scanString consumes up to the next '"' with no escape processing. The
// closing quote is consumed as part of the token.
func (s *Scanner) scanString() {
	s.pos++ // opening quote
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != '"' {
		s.pos++
	}
	sym := s.src[start:s.pos]
	if s.pos < len(s.src) {
		s.pos++ // closing quote
	}
	s.emit(token.String, sym)
}

// scanHyphen decides between a `--` comment, which runs to the end of the
// line and produces nothing, and a plain minus operator.
func (s *Scanner) scanHyphen() {
	s.pos++
	if s.pos < len(s.src) && s.src[s.pos] == '-' {
		for s.pos < len(s.src) && s.src[s.pos] != '\n' {
			s.pos++
		}
		return
	}
	s.emit(token.BinaryOperator, "-")
}

func (s *Scanner) emit(kind token.Kind, literal string) {
	s.tokens = append(s.tokens, token.Token{Kind: kind, Literal: literal, Line: s.line})
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isDelimiter(c byte) bool {
	switch c {
	case '.', ',', ';', ':', '{', '}', '(', ')':
		return true
	}
	return false
}
