package eval

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/callable"
	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/token"
	"github.com/akashmaji946/lox/values"
)

// Evaluate computes an expression's runtime value.
func (e *Evaluator) Evaluate(expr ast.Expr) (values.Value, error) {
	switch ex := expr.(type) {
	case *ast.Assign:
		return e.evalAssign(ex)
	case *ast.Binary:
		return e.evalBinary(ex)
	case *ast.Call:
		return e.evalCall(ex)
	case *ast.Get:
		return e.evalGet(ex)
	case *ast.Grouping:
		return e.Evaluate(ex.Expression)
	case *ast.Literal:
		return values.FromLiteral(ex.Value), nil
	case *ast.Logical:
		return e.evalLogical(ex)
	case *ast.Set:
		return e.evalSet(ex)
	case *ast.Super:
		return e.evalSuper(ex)
	case *ast.This:
		return e.lookupVariable(ex, ex.Keyword)
	case *ast.Unary:
		return e.evalUnary(ex)
	case *ast.Variable:
		return e.lookupVariable(ex, ex.Name)
	}
	return values.Nil{}, nil
}

// lookupVariable reads name through the resolver's recorded lexical
// distance when one exists for expr, falling back to a global lookup
// otherwise.
func (e *Evaluator) lookupVariable(expr ast.Expr, name token.Token) (values.Value, error) {
	if distance, ok := e.locals[expr.ID()]; ok {
		return e.env.GetAt(distance, name.Lexeme), nil
	}
	return e.globals.Get(name)
}

func (e *Evaluator) evalAssign(expr *ast.Assign) (values.Value, error) {
	value, err := e.Evaluate(expr.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := e.locals[expr.ID()]; ok {
		e.env.AssignAt(distance, expr.Name, value)
		return value, nil
	}
	if err := e.globals.Assign(expr.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (e *Evaluator) evalLogical(expr *ast.Logical) (values.Value, error) {
	left, err := e.Evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	if expr.Operator.Kind == token.Or {
		if values.Truthy(left) {
			return left, nil
		}
	} else if !values.Truthy(left) {
		return left, nil
	}
	return e.Evaluate(expr.Right)
}

func (e *Evaluator) evalUnary(expr *ast.Unary) (values.Value, error) {
	right, err := e.Evaluate(expr.Right)
	if err != nil {
		return nil, err
	}
	switch expr.Operator.Kind {
	case token.Bang:
		return values.Boolean(!values.Truthy(right)), nil
	case token.Minus:
		n, err := checkNumberOperand(expr.Operator, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	}
	return values.Nil{}, nil
}

// evalBinary implements the arithmetic, comparison, `+` overload, and
// equality operators.
func (e *Evaluator) evalBinary(expr *ast.Binary) (values.Value, error) {
	left, err := e.Evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Kind {
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		l, r, err := checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		switch expr.Operator.Kind {
		case token.Greater:
			return values.Boolean(l > r), nil
		case token.GreaterEqual:
			return values.Boolean(l >= r), nil
		case token.Less:
			return values.Boolean(l < r), nil
		default:
			return values.Boolean(l <= r), nil
		}
	case token.Minus:
		l, r, err := checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.Star:
		l, r, err := checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case token.Slash:
		l, r, err := checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		// Treat anything closer to zero than this tolerance as a division
		// by zero, since IEEE division would otherwise silently yield
		// +/-Inf rather than signal a Lox-level runtime error.
		const zeroTolerance = 1e-15
		if r > -zeroTolerance && r < zeroTolerance {
			return nil, reporter.NewRuntimeError(expr.Operator, "Float division must be non-zero.")
		}
		return l / r, nil
	case token.Plus:
		return evalPlus(expr.Operator, left, right)
	case token.BangEqual:
		return values.Boolean(!values.Equal(left, right)), nil
	case token.EqualEqual:
		return values.Boolean(values.Equal(left, right)), nil
	}
	return values.Nil{}, nil
}

// evalPlus handles the `+` overload: number+number adds, string+string
// concatenates, anything else fails.
func evalPlus(operator token.Token, left, right values.Value) (values.Value, error) {
	if l, ok := left.(values.Number); ok {
		if r, ok := right.(values.Number); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(values.String); ok {
		if r, ok := right.(values.String); ok {
			return l + r, nil
		}
	}
	return nil, reporter.NewRuntimeError(operator, "Operands must be two numbers or two strings.")
}

func checkNumberOperand(operator token.Token, operand values.Value) (values.Number, error) {
	if n, ok := operand.(values.Number); ok {
		return n, nil
	}
	return 0, reporter.NewRuntimeError(operator, "Operand must be a number.")
}

func checkNumberOperands(operator token.Token, left, right values.Value) (values.Number, values.Number, error) {
	l, lok := left.(values.Number)
	r, rok := right.(values.Number)
	if !lok || !rok {
		return 0, 0, reporter.NewRuntimeError(operator, "Operands must be numbers.")
	}
	return l, r, nil
}

func (e *Evaluator) evalCall(expr *ast.Call) (values.Value, error) {
	callee, err := e.Evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]values.Value, len(expr.Args))
	for i, a := range expr.Args {
		v, err := e.Evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(callable.Callable)
	if !ok {
		return nil, reporter.NewRuntimeError(expr.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, reporter.NewRuntimeError(expr.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(e, args)
}

func (e *Evaluator) evalGet(expr *ast.Get) (values.Value, error) {
	obj, err := e.Evaluate(expr.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*callable.Instance)
	if !ok {
		return nil, reporter.NewRuntimeError(expr.Name, "Only instances have properties.")
	}
	return instance.Get(expr.Name)
}

func (e *Evaluator) evalSet(expr *ast.Set) (values.Value, error) {
	obj, err := e.Evaluate(expr.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*callable.Instance)
	if !ok {
		return nil, reporter.NewRuntimeError(expr.Name, "Only instances have fields.")
	}
	value, err := e.Evaluate(expr.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(expr.Name, value)
	return value, nil
}

// evalSuper implements `super.method` dispatch: the resolver records
// `super`'s distance, and `this` always lives exactly one scope closer to
// the method body.
func (e *Evaluator) evalSuper(expr *ast.Super) (values.Value, error) {
	distance := e.locals[expr.ID()]
	superclass := e.env.GetAt(distance, "super").(*callable.LoxClass)
	object := e.env.GetAt(distance-1, "this").(*callable.Instance)

	method, ok := superclass.FindMethod(expr.Method.Lexeme)
	if !ok {
		return nil, reporter.NewRuntimeError(expr.Method, "Undefined property '%s'.", expr.Method.Lexeme)
	}
	return method.Bind(object), nil
}
