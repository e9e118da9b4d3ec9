// Package ast defines the statement and expression nodes produced by the
// parser and walked by the evaluator. Trees are strict: every node is owned
// by its parent and nothing is mutated after parsing.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is anything that can appear in a parsed program. String renders the
// node for the driver's debug dump.
type Node interface {
	String() string
}

// Statement nodes form the program, in source order.
type Statement interface {
	Node
	statementNode()
}

// Expression nodes produce runtime values when evaluated.
type Expression interface {
	Node
	expressionNode()
}

//-----------------------------------------------------------------------------
// Operators
//-----------------------------------------------------------------------------

// BinaryOp is an arithmetic operator.
type BinaryOp int

const (
	Plus BinaryOp = iota
	Minus
	Multiply
	Divide
	Modulus
)

func (op BinaryOp) String() string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Modulus:
		return "%"
	default:
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
}

// CompareOp is a comparison or logical operator. The grammar defines the
// full set even though the scanner only ever produces `<` and `>` from
// source text.
type CompareOp int

const (
	LessThan CompareOp = iota
	GreaterThan
	EqualTo
	NotEqualTo
	LessThanOrEqual
	GreaterThanOrEqual
	And
	Or
)

func (op CompareOp) String() string {
	switch op {
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	case EqualTo:
		return "=="
	case NotEqualTo:
		return "!="
	case LessThanOrEqual:
		return "<="
	case GreaterThanOrEqual:
		return ">="
	case And:
		return "and"
	case Or:
		return "or"
	default:
		return fmt.Sprintf("CompareOp(%d)", int(op))
	}
}

// UnaryOp is a prefix operator. Minus is the only one the grammar has.
type UnaryOp int

const UnaryMinus UnaryOp = iota

func (op UnaryOp) String() string { return "-" }

//-----------------------------------------------------------------------------
// Statements
//-----------------------------------------------------------------------------

// EmptyStatement is a bare `;`.
type EmptyStatement struct{}

func (s *EmptyStatement) statementNode() {}
func (s *EmptyStatement) String() string { return ";" }

// BlockStatement is `{ ... }`. Children run strictly in order, in the same
// scope as the enclosing statement.
type BlockStatement struct {
	Statements []Statement
}

func (s *BlockStatement) statementNode() {}
func (s *BlockStatement) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for _, stmt := range s.Statements {
		b.WriteString(stmt.String())
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}

// ExpressionStatement is any expression followed by `;`.
type ExpressionStatement struct {
	Expression Expression
}

func (s *ExpressionStatement) statementNode() {}
func (s *ExpressionStatement) String() string { return s.Expression.String() + ";" }

// LogStatement is `log expr, expr, ...;`. Zero arguments is legal.
type LogStatement struct {
	Arguments []Expression
}

func (s *LogStatement) statementNode() {}
func (s *LogStatement) String() string {
	parts := make([]string, len(s.Arguments))
	for i, arg := range s.Arguments {
		parts[i] = arg.String()
	}
	return "log " + strings.Join(parts, ", ") + ";"
}

// IfStatement is `if (condition) then { ... }`. The body must be a
// BlockStatement; the evaluator enforces that, not the parser.
type IfStatement struct {
	Condition Expression
	Body      Statement
}

func (s *IfStatement) statementNode() {}
func (s *IfStatement) String() string {
	return fmt.Sprintf("if (%s) then %s", s.Condition, s.Body)
}

// VariableDeclaration is `var name = expr;`.
type VariableDeclaration struct {
	Name  string
	Value Expression
}

func (s *VariableDeclaration) statementNode() {}
func (s *VariableDeclaration) String() string {
	return fmt.Sprintf("var %s = %s;", s.Name, s.Value)
}

// VariableReassignment is `name = expr;` for an already-declared name.
type VariableReassignment struct {
	Name  string
	Value Expression
}

func (s *VariableReassignment) statementNode() {}
func (s *VariableReassignment) String() string {
	return fmt.Sprintf("%s = %s;", s.Name, s.Value)
}

// ForLoop is `for (condition) do { ... }`. Grammar-only: the parser never
// builds one from source and the evaluator reports it as unhandled.
type ForLoop struct {
	Condition Expression
	Body      Statement
}

func (s *ForLoop) statementNode() {}
func (s *ForLoop) String() string {
	return fmt.Sprintf("for (%s) do %s", s.Condition, s.Body)
}

// FunctionDeclaration is `fun name(params) { ... }`. Grammar-only.
type FunctionDeclaration struct {
	Name       string
	Parameters []string
	Body       Statement
}

func (s *FunctionDeclaration) statementNode() {}
func (s *FunctionDeclaration) String() string {
	return fmt.Sprintf("fun %s(%s) %s", s.Name, strings.Join(s.Parameters, ", "), s.Body)
}

//-----------------------------------------------------------------------------
// Expressions
//-----------------------------------------------------------------------------

// NumberLiteral holds the literal already converted to a 64-bit float.
type NumberLiteral struct {
	Value float64
}

func (e *NumberLiteral) expressionNode() {}
func (e *NumberLiteral) String() string  { return strconv.FormatFloat(e.Value, 'f', -1, 64) }

type StringLiteral struct {
	Value string
}

func (e *StringLiteral) expressionNode() {}
func (e *StringLiteral) String() string  { return strconv.Quote(e.Value) }

type Identifier struct {
	Name string
}

func (e *Identifier) expressionNode() {}
func (e *Identifier) String() string  { return e.Name }

type BooleanLiteral struct {
	Value bool
}

func (e *BooleanLiteral) expressionNode() {}
func (e *BooleanLiteral) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

type NilLiteral struct{}

func (e *NilLiteral) expressionNode() {}
func (e *NilLiteral) String() string  { return "nil" }

// GroupExpression is a parenthesised sub-expression.
type GroupExpression struct {
	Inner Expression
}

func (e *GroupExpression) expressionNode() {}
func (e *GroupExpression) String() string  { return "(" + e.Inner.String() + ")" }

// UnaryExpression is a prefix minus applied to the expression parsed from
// the rest of the input.
type UnaryExpression struct {
	Op      UnaryOp
	Operand Expression
}

func (e *UnaryExpression) expressionNode() {}
func (e *UnaryExpression) String() string  { return fmt.Sprintf("(%s%s)", e.Op, e.Operand) }

// BinaryExpression is arithmetic over two sub-expressions. Chains associate
// to the right; there is no precedence table.
type BinaryExpression struct {
	Left     Expression
	Right    Expression
	Operator BinaryOp
}

func (e *BinaryExpression) expressionNode() {}
func (e *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Operator, e.Right)
}

// ComparisonExpression compares two sub-expressions.
type ComparisonExpression struct {
	Left     Expression
	Right    Expression
	Operator CompareOp
}

func (e *ComparisonExpression) expressionNode() {}
func (e *ComparisonExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Operator, e.Right)
}

// FunctionCall is `name(args)`. Grammar-only, like FunctionDeclaration.
type FunctionCall struct {
	Name      string
	Arguments []Expression
}

func (e *FunctionCall) expressionNode() {}
func (e *FunctionCall) String() string {
	parts := make([]string, len(e.Arguments))
	for i, arg := range e.Arguments {
		parts[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(parts, ", "))
}
