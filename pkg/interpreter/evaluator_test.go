package interpreter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"reef/interpreter-go/pkg/ast"
	"reef/interpreter-go/pkg/parser"
	"reef/interpreter-go/pkg/scanner"
)

func parseProgram(t *testing.T, src string) []ast.Statement {
	t.Helper()
	tokens, err := scanner.New(src).Scan()
	if err != nil {
		t.Fatalf("Scan(%q) failed: %v", src, err)
	}
	program, err := parser.New(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return program
}

func run(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	if err := New(&out, true).Evaluate(parseProgram(t, src)); err != nil {
		t.Fatalf("Evaluate(%q) failed: %v", src, err)
	}
	return out.String()
}

func runError(t *testing.T, src string) error {
	t.Helper()
	var out bytes.Buffer
	err := New(&out, true).Evaluate(parseProgram(t, src))
	if err == nil {
		t.Fatalf("Evaluate(%q) succeeded, expected a runtime error", src)
	}
	var runtimeErr *RuntimeError
	if !errors.As(err, &runtimeErr) {
		t.Fatalf("error type = %T, want *RuntimeError", err)
	}
	return err
}

func TestLogAddition(t *testing.T) {
	if got := run(t, "log 1 + 2;"); got != "3\n" {
		t.Errorf("output = %q, want \"3\\n\"", got)
	}
}

func TestVariableChain(t *testing.T) {
	if got := run(t, "var x = 5; var y = x + 1; log y;"); got != "6\n" {
		t.Errorf("output = %q, want \"6\\n\"", got)
	}
}

func TestEmptyLogPrintsEmptyLine(t *testing.T) {
	if got := run(t, "log;"); got != "\n" {
		t.Errorf("output = %q, want a single newline", got)
	}
}

func TestLogJoinsWithSpaces(t *testing.T) {
	if got := run(t, `log 1, "and", 2;`); got != "1 and 2\n" {
		t.Errorf("output = %q, want \"1 and 2\\n\"", got)
	}
}

func TestIfTrueRunsBody(t *testing.T) {
	if got := run(t, "if (true) then { log 1; }"); got != "1\n" {
		t.Errorf("output = %q, want \"1\\n\"", got)
	}
}

func TestIfFalseSkipsBody(t *testing.T) {
	if got := run(t, "if (false) then { log 1; }"); got != "" {
		t.Errorf("output = %q, want empty", got)
	}
}

func TestExpressionStatementDiagnostic(t *testing.T) {
	if got := run(t, "1 + 2;"); got != "[expr_stmt] 3\n" {
		t.Errorf("output = %q, want \"[expr_stmt] 3\\n\"", got)
	}
}

// Arithmetic chains group to the right: 1 - 2 - 3 is 1 - (2 - 3).
func TestRightAssociativeArithmetic(t *testing.T) {
	if got := run(t, "log 1 - 2 - 3;"); got != "2\n" {
		t.Errorf("output = %q, want \"2\\n\"", got)
	}
	if got := run(t, "log 8 / 4 / 2;"); got != "4\n" {
		t.Errorf("output = %q, want \"4\\n\"", got)
	}
}

func TestUnaryMinus(t *testing.T) {
	if got := run(t, "log -5;"); got != "-5\n" {
		t.Errorf("output = %q, want \"-5\\n\"", got)
	}
	// The unary wraps the whole remainder: -(1 + 2).
	if got := run(t, "log -1 + 2;"); got != "-3\n" {
		t.Errorf("output = %q, want \"-3\\n\"", got)
	}
}

func TestGroupExpression(t *testing.T) {
	if got := run(t, "log (1 + 2) * 3;"); got != "9\n" {
		t.Errorf("output = %q, want \"9\\n\"", got)
	}
}

func TestDivisionByZeroIsIEEE(t *testing.T) {
	if got := run(t, "log 1 / 0;"); got != "+Inf\n" {
		t.Errorf("output = %q, want \"+Inf\\n\"", got)
	}
	if got := run(t, "log 0 / 0;"); got != "NaN\n" {
		t.Errorf("output = %q, want \"NaN\\n\"", got)
	}
}

func TestBlocksShareEnclosingScope(t *testing.T) {
	// No child scope per block: the declaration inside the block lands in
	// the caller's scope and stays visible after it.
	if got := run(t, "{ var x = 1; } log x;"); got != "1\n" {
		t.Errorf("output = %q, want \"1\\n\"", got)
	}
}

func TestReassignment(t *testing.T) {
	if got := run(t, "var x = 1; x = x + 1; log x;"); got != "2\n" {
		t.Errorf("output = %q, want \"2\\n\"", got)
	}
}

func TestNilEvaluatesToNone(t *testing.T) {
	if got := run(t, "var x = nil; log x;"); got != "None\n" {
		t.Errorf("output = %q, want \"None\\n\"", got)
	}
}

func TestStringLogging(t *testing.T) {
	if got := run(t, `var greeting = "hello"; log greeting;`); got != "hello\n" {
		t.Errorf("output = %q, want \"hello\\n\"", got)
	}
}

func TestReassignUndeclaredFails(t *testing.T) {
	err := runError(t, "x = 5;")
	if !strings.Contains(err.Error(), "doesn't exist") {
		t.Errorf("error = %q, want a reassignment failure", err)
	}
}

func TestRedeclarationFails(t *testing.T) {
	err := runError(t, "var x = 1; var x = 2;")
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %q, want a redeclaration failure", err)
	}
}

func TestUndefinedVariableFails(t *testing.T) {
	runError(t, "log ghost;")
}

func TestBinaryOnNonNumberFails(t *testing.T) {
	runError(t, `log "a" + "b";`)
}

func TestUnaryOnNonNumberFails(t *testing.T) {
	runError(t, `var s = "str"; log -s;`)
}

func TestIfConditionMustBeBoolean(t *testing.T) {
	runError(t, "if (1) then { log 1; }")
}

func TestOrderingOperatorsUnimplemented(t *testing.T) {
	err := runError(t, "log 1 < 2;")
	if !strings.Contains(err.Error(), "not implemented") {
		t.Errorf("error = %q, want an unimplemented-operator failure", err)
	}
	runError(t, "log 2 > 1;")
}

func TestAndOrRequireBooleans(t *testing.T) {
	var out bytes.Buffer
	program := []ast.Statement{&ast.LogStatement{Arguments: []ast.Expression{
		&ast.ComparisonExpression{
			Left:     &ast.BooleanLiteral{Value: true},
			Right:    &ast.BooleanLiteral{Value: false},
			Operator: ast.And,
		},
	}}}
	if err := New(&out, true).Evaluate(program); err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if out.String() != "false\n" {
		t.Errorf("output = %q, want \"false\\n\"", out.String())
	}

	bad := []ast.Statement{&ast.ExpressionStatement{Expression: &ast.ComparisonExpression{
		Left:     &ast.NumberLiteral{Value: 1},
		Right:    &ast.BooleanLiteral{Value: true},
		Operator: ast.Or,
	}}}
	if err := New(&out, true).Evaluate(bad); err == nil {
		t.Fatal("`or` on a number succeeded")
	}
}

func TestEqualityAcrossKinds(t *testing.T) {
	var out bytes.Buffer
	program := []ast.Statement{&ast.LogStatement{Arguments: []ast.Expression{
		&ast.ComparisonExpression{
			Left:     &ast.NumberLiteral{Value: 1},
			Right:    &ast.StringLiteral{Value: "1"},
			Operator: ast.EqualTo,
		},
		&ast.ComparisonExpression{
			Left:     &ast.NumberLiteral{Value: 1},
			Right:    &ast.NumberLiteral{Value: 1},
			Operator: ast.NotEqualTo,
		},
	}}}
	if err := New(&out, true).Evaluate(program); err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if out.String() != "false false\n" {
		t.Errorf("output = %q, want \"false false\\n\"", out.String())
	}
}

func TestIfBodyMustBeBlock(t *testing.T) {
	var out bytes.Buffer
	program := []ast.Statement{&ast.IfStatement{
		Condition: &ast.BooleanLiteral{Value: true},
		Body:      &ast.ExpressionStatement{Expression: &ast.NumberLiteral{Value: 1}},
	}}
	if err := New(&out, true).Evaluate(program); err == nil {
		t.Fatal("non-block if body succeeded")
	}
}

func TestGrammarOnlyNodesAreUnhandled(t *testing.T) {
	var out bytes.Buffer
	forLoop := []ast.Statement{&ast.ForLoop{
		Condition: &ast.BooleanLiteral{Value: true},
		Body:      &ast.BlockStatement{},
	}}
	if err := New(&out, true).Evaluate(forLoop); err == nil {
		t.Fatal("for loop evaluated, expected an unhandled-statement error")
	}
	call := []ast.Statement{&ast.ExpressionStatement{Expression: &ast.FunctionCall{Name: "f"}}}
	if err := New(&out, true).Evaluate(call); err == nil {
		t.Fatal("function call evaluated, expected an error")
	}
}

func TestEvaluationIsDeterministic(t *testing.T) {
	const src = "var x = 2; var y = x * x; log y, x; y = y + 1; log y; 1 + 1;"
	first := run(t, src)
	second := run(t, src)
	if first != second {
		t.Errorf("independent runs diverged: %q vs %q", first, second)
	}
}

func TestScopePersistsAcrossPrograms(t *testing.T) {
	var out bytes.Buffer
	eval := New(&out, true)
	if err := eval.Evaluate(parseProgram(t, "var x = 1;")); err != nil {
		t.Fatalf("first program failed: %v", err)
	}
	if err := eval.Evaluate(parseProgram(t, "log x;")); err != nil {
		t.Fatalf("second program failed: %v", err)
	}
	if out.String() != "1\n" {
		t.Errorf("output = %q, want \"1\\n\"", out.String())
	}
}
