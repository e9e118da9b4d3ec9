// Package runtime holds the values the evaluator produces and the scope
// arena it binds variables in.
package runtime

import "strconv"

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindNone
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBool:
		return "Boolean"
	case KindNone:
		return "None"
	case KindError:
		return "Error"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a runtime value. All implementations are small comparable
// structs; values are copied freely and never shared mutably.
type Value interface {
	Kind() Kind
}

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

// NoneValue is the no-value result of a statement.
type NoneValue struct{}

func (NoneValue) Kind() Kind { return KindNone }

// None is the shared no-value singleton.
var None = NoneValue{}

// ErrorValue carries a recoverable evaluation error as a value.
type ErrorValue struct {
	Message string
}

func (v ErrorValue) Kind() Kind { return KindError }

// Format renders a value the way reef prints it: floats in their shortest
// form (3 not 3.000000), booleans lowercase, None spelled out.
func Format(v Value) string {
	switch v := v.(type) {
	case NumberValue:
		return strconv.FormatFloat(v.Val, 'f', -1, 64)
	case StringValue:
		return v.Val
	case BoolValue:
		if v.Val {
			return "true"
		}
		return "false"
	case ErrorValue:
		return "Error: " + v.Message
	default:
		return "None"
	}
}

// Equal reports structural equality. Values of different kinds are unequal
// rather than an error, and NaN is unequal to itself, matching IEEE-754.
func Equal(a, b Value) bool {
	return a == b
}
