package eval

import (
	"fmt"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/callable"
	"github.com/akashmaji946/lox/control"
	"github.com/akashmaji946/lox/environment"
	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/values"
)

// Execute runs one statement for its side effect. A non-nil error is
// either a runtime failure or a *control.Return unwinding out of a
// function body; callers other than ExecuteBlock/Call should treat both
// the same way, by simply propagating.
func (e *Evaluator) Execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return e.ExecuteBlock(s.Statements, environment.New(e.env))
	case *ast.Class:
		return e.executeClass(s)
	case *ast.Expression:
		_, err := e.Evaluate(s.Expr)
		return err
	case *ast.Function:
		fn := callable.NewFunction(s, e.env, false)
		e.env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.If:
		cond, err := e.Evaluate(s.Condition)
		if err != nil {
			return err
		}
		if values.Truthy(cond) {
			return e.Execute(s.Then)
		}
		if s.Else != nil {
			return e.Execute(s.Else)
		}
		return nil
	case *ast.Print:
		v, err := e.Evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.Writer, v.String())
		return nil
	case *ast.Return:
		var value values.Value = values.Nil{}
		if s.Value != nil {
			v, err := e.Evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &control.Return{Value: value}
	case *ast.Var:
		var value values.Value = values.Nil{}
		if s.Initializer != nil {
			v, err := e.Evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		e.env.Define(s.Name.Lexeme, value)
		return nil
	case *ast.While:
		for {
			cond, err := e.Evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !values.Truthy(cond) {
				return nil
			}
			if err := e.Execute(s.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExecuteBlock runs statements in env, always restoring the prior
// environment before returning — including when a statement panics or
// returns a *control.Return, so a function body that exits early never
// leaks its scope into the caller. It satisfies callable.Interpreter, the
// seam LoxFunction and LoxClass use to run Lox code without eval
// importing callable's callers.
func (e *Evaluator) ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := e.env
	e.env = env
	defer func() { e.env = previous }()

	for _, stmt := range statements {
		if err := e.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// executeClass binds the class name before its body is evaluated so
// methods can recursively reference it, requires that a superclass (if
// any) is itself a class, and wraps the method closures in a `super`
// scope only when one exists.
func (e *Evaluator) executeClass(s *ast.Class) error {
	var superclass *callable.LoxClass
	if s.Superclass != nil {
		sup, err := e.Evaluate(s.Superclass)
		if err != nil {
			return err
		}
		var ok bool
		superclass, ok = sup.(*callable.LoxClass)
		if !ok {
			return reporter.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
	}

	e.env.Define(s.Name.Lexeme, values.Nil{})

	methodEnv := e.env
	if superclass != nil {
		methodEnv = environment.New(e.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*callable.LoxFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = callable.NewFunction(m, methodEnv, m.Name.Lexeme == "init")
	}

	class := callable.NewClass(s.Name.Lexeme, superclass, methods)
	return e.env.Assign(s.Name, class)
}
