// Package parser assembles a token sequence into statements by recursive
// descent, one statement at a time, with one-token lookahead.
//
// Expression parsing is deliberately precedence-free: after a literal,
// identifier, or group is parsed, the next token decides whether the rest of
// the input is reparsed as the right-hand side of a binary or comparison
// expression. Chains therefore associate strictly to the right; `1 + 2 * 3`
// groups as `1 + (2 * 3)` by recursion alone, and `1 - 2 - 3` groups as
// `1 - (2 - 3)`. Conventional precedence would be a behavior change, not a
// fix.
package parser

import (
	"fmt"
	"strconv"

	"reef/interpreter-go/pkg/ast"
	"reef/interpreter-go/pkg/token"
)

// Parser holds the token cursor and the statements built so far.
type Parser struct {
	tokens  []token.Token
	pos     int
	program []ast.Statement
}

// New constructs a parser over the scanner's output.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token sequence. It stops at the first error and
// returns it together with every statement built before that point; there is
// no resynchronization.
func (p *Parser) Parse() ([]ast.Statement, error) {
	for !p.atEnd() {
		stmt, err := p.statement()
		if err != nil {
			return p.program, err
		}
		p.program = append(p.program, stmt)
	}
	return p.program, nil
}

func (p *Parser) statement() (ast.Statement, error) {
	t := p.cur()
	switch {
	case t.Kind == token.Keyword && t.Literal == "var":
		return p.variableDeclaration()
	case t.Kind == token.Keyword && t.Literal == "log":
		return p.logStatement()
	case t.Kind == token.Keyword && t.Literal == "if":
		return p.ifStatement()
	case t.Kind == token.Delimiter && t.Literal == "{":
		return p.blockStatement()
	case t.Kind == token.Identifier:
		if p.lookahead(1).Kind == token.Equals {
			return p.variableReassignment()
		}
		return p.expressionStatement()
	case t.Kind == token.Delimiter && t.Literal == ";":
		p.advance()
		return &ast.EmptyStatement{}, nil
	case startsExpression(t):
		return p.expressionStatement()
	default:
		return nil, &UnknownTokenError{Position: p.pos, Token: t}
	}
}

// startsExpression reports whether t can open an expression statement or a
// call-site argument.
func startsExpression(t token.Token) bool {
	switch t.Kind {
	case token.String, token.Number, token.Identifier:
		return true
	case token.Keyword:
		return t.Literal == "true" || t.Literal == "false"
	case token.BinaryOperator:
		return t.Literal == "-"
	case token.Delimiter:
		return t.Literal == "("
	}
	return false
}

func (p *Parser) variableDeclaration() (ast.Statement, error) {
	p.advance() // var
	if p.atEnd() {
		return nil, &OutOfBoundsError{Position: p.pos}
	}
	name := p.cur()
	if name.Kind != token.Identifier {
		return nil, &SyntaxError{Position: p.pos, Message: "expected an identifier after keyword `var`"}
	}
	p.advance()
	if err := p.expect(token.Equals, "="); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(";"); err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{Name: name.Literal, Value: value}, nil
}

func (p *Parser) variableReassignment() (ast.Statement, error) {
	name := p.cur()
	p.advance()
	if err := p.expect(token.Equals, "="); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(";"); err != nil {
		return nil, err
	}
	return &ast.VariableReassignment{Name: name.Literal, Value: value}, nil
}

func (p *Parser) logStatement() (ast.Statement, error) {
	p.advance() // log
	args, err := p.callArguments()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(";"); err != nil {
		return nil, err
	}
	return &ast.LogStatement{Arguments: args}, nil
}

// callArguments collects comma-separated expressions, stopping at the first
// token that cannot start an expression. Zero arguments is fine.
func (p *Parser) callArguments() ([]ast.Expression, error) {
	var args []ast.Expression
	for startsExpression(p.cur()) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, expr)
		if t := p.cur(); t.Kind == token.Delimiter && t.Literal == "," {
			p.advance()
			continue
		}
		break
	}
	return args, nil
}

func (p *Parser) ifStatement() (ast.Statement, error) {
	p.advance() // if
	if err := p.expectDelimiter("("); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(")"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	if t := p.cur(); t.Kind != token.Delimiter || t.Literal != "{" {
		return nil, &SyntaxError{Position: p.pos, Message: fmt.Sprintf("expected `{` after `then`, got %s", t)}
	}
	body, err := p.blockStatement()
	if err != nil {
		return nil, err
	}
	return &ast.IfStatement{Condition: condition, Body: body}, nil
}

func (p *Parser) blockStatement() (ast.Statement, error) {
	p.advance() // {
	var statements []ast.Statement
	for {
		if p.atEnd() {
			return nil, &OutOfBoundsError{Position: p.pos}
		}
		if t := p.cur(); t.Kind == token.Delimiter && t.Literal == "}" {
			p.advance()
			break
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return &ast.BlockStatement{Statements: statements}, nil
}

func (p *Parser) expressionStatement() (ast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(";"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr}, nil
}

// expression is the base rule. A leading minus hands the rest of the input
// to the unary rule; otherwise a primary is parsed and the next token
// decides whether everything after it becomes a right-recursive binary or
// comparison expression.
func (p *Parser) expression() (ast.Expression, error) {
	if t := p.cur(); t.Kind == token.BinaryOperator && t.Literal == "-" {
		return p.unary()
	}
	left, err := p.primary()
	if err != nil {
		return nil, err
	}
	switch t := p.cur(); t.Kind {
	case token.BinaryOperator:
		op, err := binaryOpFor(t.Literal, p.pos)
		if err != nil {
			return nil, err
		}
		p.advance()
		right, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Left: left, Right: right, Operator: op}, nil
	case token.ComparisonOperator:
		op, err := compareOpFor(t.Literal, p.pos)
		if err != nil {
			return nil, err
		}
		p.advance()
		right, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.ComparisonExpression{Left: left, Right: right, Operator: op}, nil
	}
	return left, nil
}

// unary wraps the expression parsed from the remaining input, so `-1 + 2`
// negates the whole right-recursive parse of `1 + 2`.
func (p *Parser) unary() (ast.Expression, error) {
	p.advance() // -
	t := p.cur()
	ok := t.Kind == token.Number || t.Kind == token.Identifier ||
		(t.Kind == token.Delimiter && t.Literal == "(")
	if !ok {
		return nil, &SyntaxError{Position: p.pos, Message: fmt.Sprintf("expected a number, identifier, or group after unary `-`, got %s", t)}
	}
	operand, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpression{Op: ast.UnaryMinus, Operand: operand}, nil
}

func (p *Parser) primary() (ast.Expression, error) {
	t := p.cur()
	switch t.Kind {
	case token.Keyword:
		switch t.Literal {
		case "true":
			p.advance()
			return &ast.BooleanLiteral{Value: true}, nil
		case "false":
			p.advance()
			return &ast.BooleanLiteral{Value: false}, nil
		case "nil":
			p.advance()
			return &ast.NilLiteral{}, nil
		}
		return nil, &UnknownTokenError{Position: p.pos, Token: t}
	case token.String:
		p.advance()
		return &ast.StringLiteral{Value: t.Literal}, nil
	case token.Number:
		value, err := strconv.ParseFloat(t.Literal, 64)
		if err != nil {
			return nil, &SyntaxError{Position: p.pos, Message: fmt.Sprintf("malformed number literal %q", t.Literal)}
		}
		p.advance()
		return &ast.NumberLiteral{Value: value}, nil
	case token.Identifier:
		p.advance()
		return &ast.Identifier{Name: t.Literal}, nil
	case token.Delimiter:
		if t.Literal == "(" {
			return p.group()
		}
		return nil, &UnknownTokenError{Position: p.pos, Token: t}
	case token.EndOfFile:
		return nil, &OutOfBoundsError{Position: p.pos}
	default:
		return nil, &UnknownTokenError{Position: p.pos, Token: t}
	}
}

func (p *Parser) group() (ast.Expression, error) {
	p.advance() // (
	inner, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(")"); err != nil {
		return nil, err
	}
	return &ast.GroupExpression{Inner: inner}, nil
}

func binaryOpFor(literal string, pos int) (ast.BinaryOp, error) {
	switch literal {
	case "+":
		return ast.Plus, nil
	case "-":
		return ast.Minus, nil
	case "*":
		return ast.Multiply, nil
	case "/":
		return ast.Divide, nil
	case "%":
		return ast.Modulus, nil
	}
	return 0, &SyntaxError{Position: pos, Message: fmt.Sprintf("unknown binary operator %q", literal)}
}

func compareOpFor(literal string, pos int) (ast.CompareOp, error) {
	switch literal {
	case "<":
		return ast.LessThan, nil
	case ">":
		return ast.GreaterThan, nil
	case "==":
		return ast.EqualTo, nil
	case "!=":
		return ast.NotEqualTo, nil
	case "<=":
		return ast.LessThanOrEqual, nil
	case ">=":
		return ast.GreaterThanOrEqual, nil
	case "and":
		return ast.And, nil
	case "or":
		return ast.Or, nil
	}
	return 0, &SyntaxError{Position: pos, Message: fmt.Sprintf("unknown comparison operator %q", literal)}
}

//-----------------------------------------------------------------------------
// Cursor helpers
//-----------------------------------------------------------------------------

func (p *Parser) cur() token.Token {
	return p.lookahead(0)
}

func (p *Parser) lookahead(distance int) token.Token {
	if p.pos+distance >= len(p.tokens) {
		return token.Token{Kind: token.EndOfFile}
	}
	return p.tokens[p.pos+distance]
}

func (p *Parser) atEnd() bool {
	return p.cur().Kind == token.EndOfFile
}

func (p *Parser) advance() {
	p.pos++
}

// expect consumes the current token when it matches kind and display, and
// produces a SyntaxError (or an OutOfBoundsError at end of stream) when it
// does not.
func (p *Parser) expect(kind token.Kind, display string) error {
	if p.atEnd() {
		return &OutOfBoundsError{Position: p.pos}
	}
	t := p.cur()
	if t.Kind != kind {
		return &SyntaxError{Position: p.pos, Message: fmt.Sprintf("expected %s, got %s", display, t)}
	}
	p.advance()
	return nil
}

func (p *Parser) expectDelimiter(literal string) error {
	if p.atEnd() {
		return &OutOfBoundsError{Position: p.pos}
	}
	t := p.cur()
	if t.Kind != token.Delimiter || t.Literal != literal {
		return &SyntaxError{Position: p.pos, Message: fmt.Sprintf("expected `%s`, got %s", literal, t)}
	}
	p.advance()
	return nil
}

func (p *Parser) expectKeyword(literal string) error {
	if p.atEnd() {
		return &OutOfBoundsError{Position: p.pos}
	}
	t := p.cur()
	if t.Kind != token.Keyword || t.Literal != literal {
		return &SyntaxError{Position: p.pos, Message: fmt.Sprintf("expected keyword `%s`, got %s", literal, t)}
	}
	p.advance()
	return nil
}
