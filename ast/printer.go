package ast

import (
	"fmt"
	"strings"
)

// Printer renders an expression tree as a parenthesized Lisp-like string,
// e.g. `(* (- 123) (group 45.67))`. It exists only as a debugging and
// testing aid — parser determinism tests compare Printer output instead of
// walking node-by-node — and is never consulted by the resolver or
// evaluator. Dispatch is a type switch rather than a Visitor interface per
// consumer.
type Printer struct{}

// Print renders expr.
func (Printer) Print(expr Expr) string {
	var b strings.Builder
	printExpr(&b, expr)
	return b.String()
}

func printExpr(b *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *Assign:
		parenthesize(b, "= "+e.Name.Lexeme, e.Value)
	case *Binary:
		parenthesize(b, e.Operator.Lexeme, e.Left, e.Right)
	case *Call:
		parenthesize(b, "call", append([]Expr{e.Callee}, e.Args...)...)
	case *Get:
		parenthesize(b, "get ."+e.Name.Lexeme, e.Object)
	case *Grouping:
		parenthesize(b, "group", e.Expression)
	case *Literal:
		b.WriteString(literalString(e.Value))
	case *Logical:
		parenthesize(b, e.Operator.Lexeme, e.Left, e.Right)
	case *Set:
		parenthesize(b, "set ."+e.Name.Lexeme, e.Object, e.Value)
	case *Super:
		b.WriteString("(super." + e.Method.Lexeme + ")")
	case *This:
		b.WriteString("this")
	case *Unary:
		parenthesize(b, e.Operator.Lexeme, e.Right)
	case *Variable:
		b.WriteString(e.Name.Lexeme)
	default:
		fmt.Fprintf(b, "<unknown expr %T>", expr)
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...Expr) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		printExpr(b, e)
	}
	b.WriteByte(')')
}

func literalString(v any) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case float64:
		return fmt.Sprintf("%g", val)
	case string:
		return val
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
