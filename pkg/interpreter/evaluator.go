// Package interpreter executes a parsed program by walking its statement
// sequence. The only observable outputs are lines written to the evaluator's
// writer and mutations of its scope chain.
package interpreter

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"

	"reef/interpreter-go/pkg/ast"
	"reef/interpreter-go/pkg/runtime"
)

// RuntimeError is a fatal evaluation failure. Nothing inside the pipeline
// recovers from one; it propagates to the driver, which decides whether the
// process exits or a REPL keeps reading.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func errorf(format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

// Evaluator walks statement sequences against a persistent scope chain. One
// evaluator can run many programs in a row (the REPL does), sharing the same
// root scope across them.
type Evaluator struct {
	out    io.Writer
	scopes *runtime.ScopeSet
	scope  runtime.ScopeID
	diag   *color.Color
}

// New constructs an evaluator writing program output to out. With plain set,
// expression-statement diagnostics are emitted without color codes.
func New(out io.Writer, plain bool) *Evaluator {
	diag := color.New(color.FgHiGreen)
	if plain {
		diag.DisableColor()
	}
	e := &Evaluator{out: out, scopes: runtime.NewScopeSet(), diag: diag}
	e.scope = e.scopes.Root()
	return e
}

// Evaluate executes program in order, stopping at the first runtime error.
func (e *Evaluator) Evaluate(program []ast.Statement) error {
	for _, stmt := range program {
		if err := e.statement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) statement(stmt ast.Statement) error {
	switch stmt := stmt.(type) {
	case *ast.EmptyStatement:
		return nil
	case *ast.ExpressionStatement:
		v, err := e.expression(stmt.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.out, e.diag.Sprintf("[expr_stmt] %s", runtime.Format(v)))
		return nil
	case *ast.LogStatement:
		return e.logStatement(stmt)
	case *ast.IfStatement:
		return e.ifStatement(stmt)
	case *ast.VariableDeclaration:
		v, err := e.expression(stmt.Value)
		if err != nil {
			return err
		}
		if err := e.scopes.Define(e.scope, stmt.Name, v); err != nil {
			return &RuntimeError{Message: err.Error()}
		}
		return nil
	case *ast.VariableReassignment:
		v, err := e.expression(stmt.Value)
		if err != nil {
			return err
		}
		if err := e.scopes.Assign(e.scope, stmt.Name, v); err != nil {
			return &RuntimeError{Message: err.Error()}
		}
		return nil
	case *ast.BlockStatement:
		// Blocks run in the caller's scope; no child scope is pushed.
		for _, s := range stmt.Statements {
			if err := e.statement(s); err != nil {
				return err
			}
		}
		return nil
	default:
		return errorf("unhandled statement %s", stmt)
	}
}

func (e *Evaluator) logStatement(stmt *ast.LogStatement) error {
	parts := make([]string, 0, len(stmt.Arguments))
	for _, arg := range stmt.Arguments {
		v, err := e.expression(arg)
		if err != nil {
			return err
		}
		parts = append(parts, runtime.Format(v))
	}
	fmt.Fprintln(e.out, strings.Join(parts, " "))
	return nil
}

func (e *Evaluator) ifStatement(stmt *ast.IfStatement) error {
	cond, err := e.expression(stmt.Condition)
	if err != nil {
		return err
	}
	b, ok := cond.(runtime.BoolValue)
	if !ok {
		return errorf("if statement condition didn't evaluate to a boolean")
	}
	if !b.Val {
		return nil
	}
	body, ok := stmt.Body.(*ast.BlockStatement)
	if !ok {
		return errorf("expected a block statement following if statement condition")
	}
	return e.statement(body)
}

func (e *Evaluator) expression(expr ast.Expression) (runtime.Value, error) {
	switch expr := expr.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: expr.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: expr.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: expr.Value}, nil
	case *ast.NilLiteral:
		return runtime.None, nil
	case *ast.Identifier:
		v, ok := e.scopes.Lookup(e.scope, expr.Name)
		if !ok {
			return nil, errorf("no variable called %s exists", expr.Name)
		}
		return v, nil
	case *ast.GroupExpression:
		return e.expression(expr.Inner)
	case *ast.UnaryExpression:
		v, err := e.expression(expr.Operand)
		if err != nil {
			return nil, err
		}
		n, ok := v.(runtime.NumberValue)
		if !ok {
			return nil, errorf("can't perform a unary operation on %s", runtime.Format(v))
		}
		return runtime.NumberValue{Val: -n.Val}, nil
	case *ast.BinaryExpression:
		return e.binaryExpression(expr)
	case *ast.ComparisonExpression:
		return e.comparisonExpression(expr)
	default:
		return nil, errorf("unable to evaluate expression %s", expr)
	}
}

// binaryExpression applies arithmetic to two Number operands. Division and
// modulus follow IEEE-754: dividing by zero yields an infinity or NaN, never
// an error.
func (e *Evaluator) binaryExpression(expr *ast.BinaryExpression) (runtime.Value, error) {
	left, err := e.expression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.expression(expr.Right)
	if err != nil {
		return nil, err
	}
	ln, ok := left.(runtime.NumberValue)
	if !ok {
		return nil, errorf("cannot perform binary operations on anything that isn't a number")
	}
	rn, ok := right.(runtime.NumberValue)
	if !ok {
		return nil, errorf("cannot perform binary operations on anything that isn't a number")
	}
	switch expr.Operator {
	case ast.Plus:
		return runtime.NumberValue{Val: ln.Val + rn.Val}, nil
	case ast.Minus:
		return runtime.NumberValue{Val: ln.Val - rn.Val}, nil
	case ast.Multiply:
		return runtime.NumberValue{Val: ln.Val * rn.Val}, nil
	case ast.Divide:
		return runtime.NumberValue{Val: ln.Val / rn.Val}, nil
	case ast.Modulus:
		return runtime.NumberValue{Val: math.Mod(ln.Val, rn.Val)}, nil
	default:
		return nil, errorf("unknown binary operator %s", expr.Operator)
	}
}

// comparisonExpression evaluates both sides before looking at the operator;
// `and`/`or` do not short-circuit. Ordering operators are part of the
// grammar but have never been implemented.
func (e *Evaluator) comparisonExpression(expr *ast.ComparisonExpression) (runtime.Value, error) {
	left, err := e.expression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.expression(expr.Right)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.And, ast.Or:
		lb, lok := left.(runtime.BoolValue)
		rb, rok := right.(runtime.BoolValue)
		if !lok || !rok {
			return nil, errorf("expected both sides of comparison expression to evaluate to a boolean")
		}
		if expr.Operator == ast.And {
			return runtime.BoolValue{Val: lb.Val && rb.Val}, nil
		}
		return runtime.BoolValue{Val: lb.Val || rb.Val}, nil
	case ast.EqualTo:
		return runtime.BoolValue{Val: runtime.Equal(left, right)}, nil
	case ast.NotEqualTo:
		return runtime.BoolValue{Val: !runtime.Equal(left, right)}, nil
	default:
		return nil, errorf("comparison operator %s is not implemented", expr.Operator)
	}
}
