/*
Package callable defines Lox's three callable runtime kinds — NativeFn,
LoxFunction, LoxClass — and Instance, the value a class produces. Classes
support single inheritance, with method binding and `this`/`super`
dispatch.

Calling a LoxFunction or LoxClass needs to run statements back in the
evaluator, which would make eval and callable import each other.
Interpreter is the narrow seam that breaks the cycle: eval.Evaluator
implements it, callable only depends on its signature.
*/
package callable

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/environment"
	"github.com/akashmaji946/lox/values"
)

// Interpreter is the callback surface a Callable needs to execute its
// body. eval.Evaluator is the sole implementation.
type Interpreter interface {
	// ExecuteBlock runs statements with env as the current scope. A
	// *control.Return surfaced from inside unwinds through the returned
	// error; any other non-nil error is a runtime error.
	ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error
}

// Callable is any Lox value that can appear as the callee of a Call
// expression.
type Callable interface {
	values.Value
	Arity() int
	Call(interp Interpreter, args []values.Value) (values.Value, error)
}
