/*
Package ast defines the Lox abstract syntax tree: the Expr and Stmt node
sets. Nodes are read-once, write-once after construction, and dispatched
by type switch rather than by a Visitor interface per consumer.

Every Expr carries a stable ID, stamped once at construction by NewID, so
the resolver can key its expression → depth side-table on node identity
without relying on pointer addresses leaking into test output or
requiring nodes to be comparable.
*/
package ast

import "github.com/akashmaji946/lox/token"

// ID is a node's stable identity, assigned once when the node is built and
// never reused. It is the resolver side-table's key type.
type ID int64

var nextID ID

// NewID hands out the next monotonically increasing node ID. The
// interpreter is single-threaded, so a bare counter is safe.
func NewID() ID {
	nextID++
	return nextID
}

// Expr is any Lox expression node.
type Expr interface {
	ID() ID
	exprNode()
}

type exprBase struct{ id ID }

func (e exprBase) ID() ID   { return e.id }
func (exprBase) exprNode() {}

func newExprBase() exprBase { return exprBase{id: NewID()} }

// Assign is `name = value`.
type Assign struct {
	exprBase
	Name  token.Token
	Value Expr
}

// NewAssign builds an Assign node with a freshly stamped ID.
func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{exprBase: newExprBase(), Name: name, Value: value}
}

// Binary is `left op right` for arithmetic and comparison operators.
type Binary struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewBinary(left Expr, operator token.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Operator: operator, Right: right}
}

// Call is `callee(args...)`. Paren is the closing ')' token, used to
// anchor "Expected N arguments but got M." runtime errors at a line.
type Call struct {
	exprBase
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, Paren: paren, Args: args}
}

// Get is `object.name`, a property read.
type Get struct {
	exprBase
	Object Expr
	Name   token.Token
}

func NewGet(object Expr, name token.Token) *Get {
	return &Get{exprBase: newExprBase(), Object: object, Name: name}
}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so printers and future precedence-sensitive passes can tell
// `(a)` from `a`.
type Grouping struct {
	exprBase
	Expression Expr
}

func NewGrouping(expression Expr) *Grouping {
	return &Grouping{exprBase: newExprBase(), Expression: expression}
}

// Literal is a constant nil, boolean, number, or string.
type Literal struct {
	exprBase
	Value any
}

func NewLiteral(value any) *Literal {
	return &Literal{exprBase: newExprBase(), Value: value}
}

// Logical is `left and right` / `left or right`, kept separate from
// Binary because the operands short-circuit.
type Logical struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogical(left Expr, operator token.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Operator: operator, Right: right}
}

// Set is `object.name = value`, a property write.
type Set struct {
	exprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}

// Super is `super.method`.
type Super struct {
	exprBase
	Keyword token.Token
	Method  token.Token
}

func NewSuper(keyword, method token.Token) *Super {
	return &Super{exprBase: newExprBase(), Keyword: keyword, Method: method}
}

// This is the `this` keyword used as an expression.
type This struct {
	exprBase
	Keyword token.Token
}

func NewThis(keyword token.Token) *This {
	return &This{exprBase: newExprBase(), Keyword: keyword}
}

// Unary is `op right` for prefix `!` and `-`.
type Unary struct {
	exprBase
	Operator token.Token
	Right    Expr
}

func NewUnary(operator token.Token, right Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Operator: operator, Right: right}
}

// Variable is a bare identifier used as an expression.
type Variable struct {
	exprBase
	Name token.Token
}

func NewVariable(name token.Token) *Variable {
	return &Variable{exprBase: newExprBase(), Name: name}
}
