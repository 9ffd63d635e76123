/*
Package resolver implements the static scope-resolution pass: one walk
over the parsed statement list that computes, for every variable-bearing
expression, the lexical distance to its binding, and flags compile-time
misuses (double declaration, bad `this`/`super`/`return`, self-inheriting
classes) as resolve errors.

Every resolve violation is reported through the shared reporter sink and
accumulated in a *multierror.Error, never a panic — so one run surfaces
every resolve error in the statement list, not just the first.
*/
package resolver

import (
	"github.com/hashicorp/go-multierror"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/token"
)

// FunctionKind tracks what, if any, function body the resolver is
// currently inside, used to validate `return` and initializer rules.
type FunctionKind int

const (
	FunctionNone FunctionKind = iota
	FunctionPlain
	FunctionMethod
	FunctionInitializer
)

// ClassKind tracks what, if any, class body the resolver is currently
// inside, used to validate `this`/`super`.
type ClassKind int

const (
	ClassNone ClassKind = iota
	ClassPlain
	ClassSubclass
)

// Resolver performs the single static pass. Construct one per top-level
// Resolve call; it is not meant to be reused across runs.
type Resolver struct {
	rep    *reporter.Reporter
	scopes []map[string]bool
	locals map[ast.ID]int

	currentFunction FunctionKind
	currentClass    ClassKind

	errs *multierror.Error
}

// New creates a Resolver reporting through rep.
func New(rep *reporter.Reporter) *Resolver {
	return &Resolver{
		rep:    rep,
		locals: make(map[ast.ID]int),
	}
}

// Locals returns the expression-identity → depth side-table populated by
// Resolve. Absence of a key means "resolve against the global
// environment".
func (r *Resolver) Locals() map[ast.ID]int {
	return r.locals
}

// Resolve walks the whole statement list, reporting every resolve error it
// finds (never aborting early), and returns their aggregate — nil if none.
func (r *Resolver) Resolve(statements []ast.Stmt) error {
	for _, s := range statements {
		r.resolveStmt(s)
	}
	return r.errs.ErrorOrNil()
}

func (r *Resolver) fail(line int, message string) {
	r.rep.Error(line, message)
	r.errs = multierror.Append(r.errs, &resolveError{line: line, message: message})
}

type resolveError struct {
	line    int
	message string
}

func (e *resolveError) Error() string { return e.message }

// --- scope stack -----------------------------------------------------

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.fail(name.Line, "Already variable with this name in this scope.")
		return
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal records the lexical distance from the innermost scope to
// the one binding name, whenever found. Depth 0 is a valid, present
// result — it must never be treated as "not found".
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any tracked scope: leave unannotated, meaning global.
}

// --- statements --------------------------------------------------------

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		for _, inner := range s.Statements {
			r.resolveStmt(inner)
		}
		r.endScope()
	case *ast.Class:
		r.resolveClass(s)
	case *ast.Expression:
		r.resolveExpr(s.Expr)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, FunctionPlain)
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.Print:
		r.resolveExpr(s.Expr)
	case *ast.Return:
		r.resolveReturn(s)
	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	}
}

func (r *Resolver) resolveReturn(s *ast.Return) {
	if r.currentFunction == FunctionNone {
		r.fail(s.Keyword.Line, "Can't return from top-level code.")
	}
	// Resolve the value whenever present, not only when absent.
	if s.Value != nil {
		if r.currentFunction == FunctionInitializer {
			r.fail(s.Keyword.Line, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind FunctionKind) {
	enclosing := r.currentFunction
	r.currentFunction = kind
	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	for _, s := range fn.Body {
		r.resolveStmt(s)
	}
	r.endScope()
	r.currentFunction = enclosing
}

func (r *Resolver) resolveClass(c *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = ClassPlain

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.fail(c.Superclass.Name.Line, "A class can't inherit from itself.")
		} else {
			r.currentClass = ClassSubclass
			r.resolveExpr(c.Superclass)
		}
	}

	r.declare(c.Name)
	r.define(c.Name)

	if c.Superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range c.Methods {
		kind := FunctionMethod
		// String equality, not identity: "init" is a method name, not a
		// distinct token kind.
		if method.Name.Lexeme == "init" {
			kind = FunctionInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()
	if c.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

// --- expressions ---------------------------------------------------------

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Literal:
		// Literals never reference a scope; nothing to resolve.
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.Super:
		if r.currentClass == ClassNone {
			r.fail(e.Keyword.Line, "Can't use 'super' outside of a class.")
		} else if r.currentClass != ClassSubclass {
			r.fail(e.Keyword.Line, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.This:
		if r.currentClass == ClassNone {
			r.fail(e.Keyword.Line, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, exists := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; exists && !defined {
				r.fail(e.Name.Line, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	}
}
