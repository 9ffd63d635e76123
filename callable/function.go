package callable

import (
	"fmt"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/control"
	"github.com/akashmaji946/lox/environment"
	"github.com/akashmaji946/lox/values"
)

// LoxFunction is a user-defined function or method: a declaration plus the
// environment that was current when it was declared (the closure), plus
// an initializer flag for bound-`this`-always-wins `init` semantics.
type LoxFunction struct {
	Declaration   *ast.Function
	Closure       *environment.Environment
	IsInitializer bool
}

// NewFunction builds a LoxFunction closing over env.
func NewFunction(decl *ast.Function, env *environment.Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{Declaration: decl, Closure: env, IsInitializer: isInitializer}
}

func (*LoxFunction) Type() values.Type { return values.TypeFunction }

func (f *LoxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

func (f *LoxFunction) Arity() int { return len(f.Declaration.Params) }

// Call binds each parameter to its argument in a fresh scope chained to the
// closure, then runs the body. A `return` sentinel from ExecuteBlock
// supplies the result; falling off the
// end yields nil, except an initializer which always returns its bound
// `this` regardless of how it returned.
func (f *LoxFunction) Call(interp Interpreter, args []values.Value) (values.Value, error) {
	env := environment.New(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.ExecuteBlock(f.Declaration.Body, env)
	if ret, ok := control.AsReturn(err); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return values.Nil{}, nil
}

// Bind produces a copy of f whose closure additionally defines `this` as
// instance, one scope below the method's original closure — the reason
// `super.m` indexes `this` at depth d-1 relative to the `super` scope.
func (f *LoxFunction) Bind(instance *Instance) *LoxFunction {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}
