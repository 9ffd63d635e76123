/*
Package eval walks the resolved AST and computes its runtime effect. It is
the innermost layer of the pipeline: the REPL and the CLI driver both
build one Evaluator, feed it a resolved statement list, and drain its
errors through the shared reporter.Reporter.

The Evaluator struct (a globals environment, a current environment, a
locals side-table, and shared output/diagnostic plumbing) dispatches
Evaluate/Execute by type switch over the resolved environment.Environment
chain plus the resolver's locals map.
*/
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/environment"
	"github.com/akashmaji946/lox/reporter"
)

// Evaluator is the tree-walking runtime. Construct one with New per
// program run; it is not safe to reuse concurrently.
type Evaluator struct {
	globals *environment.Environment
	env     *environment.Environment
	locals  map[ast.ID]int

	rep    *reporter.Reporter
	Writer io.Writer
}

// New builds an Evaluator with clock registered in its global scope and
// locals populated from a prior resolver pass.
func New(rep *reporter.Reporter, locals map[ast.ID]int) *Evaluator {
	globals := environment.New(nil)
	registerNatives(globals)

	return &Evaluator{
		globals: globals,
		env:     globals,
		locals:  locals,
		rep:     rep,
		Writer:  os.Stdout,
	}
}

// SetWriter redirects `print` output, used by tests to capture results
// instead of writing to the real stdout.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// AddLocals merges a resolver pass's side table into this Evaluator's.
// The REPL calls this once per line, since each line is resolved on its
// own but all of them share one long-lived Evaluator; ast.ID is a
// monotonically increasing global counter, so keys from different passes
// never collide.
func (e *Evaluator) AddLocals(locals map[ast.ID]int) {
	for id, depth := range locals {
		e.locals[id] = depth
	}
}

// Interpret runs every statement in order, stopping at the first runtime
// error and reporting it through the shared reporter. It never panics on
// a Lox-level failure.
func (e *Evaluator) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := e.Execute(stmt); err != nil {
			if rerr, ok := err.(*reporter.RuntimeError); ok {
				e.rep.RuntimeErrorf(rerr)
			}
			return
		}
	}
}
