package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/reporter"
)

// parse lexes and parses src in one step, returning the resulting
// statements and the reporter that observed the run.
func parse(t *testing.T, src string) ([]ast.Stmt, *reporter.Reporter) {
	t.Helper()
	rep := reporter.New()
	toks := lexer.New(src, rep).ScanTokens()
	stmts := New(toks, rep).Parse()
	return stmts, rep
}

// printExpr renders expr via ast.Printer, for tests that only care about
// expression shape, not statement plumbing.
func printExpr(t *testing.T, expr ast.Expr) string {
	t.Helper()
	return (&ast.Printer{}).Print(expr)
}

func exprOf(t *testing.T, stmts []ast.Stmt) ast.Expr {
	t.Helper()
	require.Len(t, stmts, 1)
	es, ok := stmts[0].(*ast.Expression)
	require.True(t, ok, "expected an expression statement, got %T", stmts[0])
	return es.Expr
}

func TestParser_Precedence(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"factor before term", "1 + 2 * 3;", "(+ 1 (* 2 3))"},
		{"unary binds tighter than factor", "-1 * 2;", "(* (- 1) 2)"},
		{"comparison chains left", "1 < 2 == true;", "(== (< 1 2) true)"},
		{"grouping overrides precedence", "(1 + 2) * 3;", "(* (group (+ 1 2)) 3)"},
		{"logical or lower than and", "true or false and false;", "(or true (and false false))"},
		{"call binds tighter than unary", "-clock();", "(- (call clock))"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stmts, rep := parse(t, tc.src)
			require.False(t, rep.HadError)
			got := printExpr(t, exprOf(t, stmts))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParser_VarDeclaration(t *testing.T) {
	stmts, rep := parse(t, "var a = 1; var b;")
	require.False(t, rep.HadError)
	require.Len(t, stmts, 2)

	a, ok := stmts[0].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "a", a.Name.Lexeme)
	assert.Equal(t, "1", printExpr(t, a.Initializer))

	b, ok := stmts[1].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "b", b.Name.Lexeme)
	assert.Nil(t, b.Initializer)
}

func TestParser_Assignment(t *testing.T) {
	stmts, rep := parse(t, "a = b = 3;")
	require.False(t, rep.HadError)
	expr := exprOf(t, stmts)

	outer, ok := expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Name.Lexeme)

	inner, ok := outer.Value.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParser_InvalidAssignmentTarget(t *testing.T) {
	stmts, rep := parse(t, "1 = 2;")
	assert.True(t, rep.HadError)
	// Parsing continues: the statement is still produced, as the value was
	// fully parsed before the target was checked.
	require.Len(t, stmts, 1)
}

func TestParser_IfElse(t *testing.T) {
	stmts, rep := parse(t, `if (true) print 1; else print 2;`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	ifStmt, ok := stmts[0].(*ast.If)
	require.True(t, ok)
	assert.Equal(t, "true", printExpr(t, ifStmt.Condition))
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParser_DanglingElseBindsToNearestIf(t *testing.T) {
	stmts, rep := parse(t, `if (a) if (b) print 1; else print 2;`)
	require.False(t, rep.HadError)

	outer, ok := stmts[0].(*ast.If)
	require.True(t, ok)
	assert.Nil(t, outer.Else)

	inner, ok := outer.Then.(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, inner.Else)
}

func TestParser_ForDesugarsIntoWhile(t *testing.T) {
	stmts, rep := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, rep.HadError)
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.Block)
	require.True(t, ok, "for with an initializer desugars into an outer block")
	require.Len(t, block.Statements, 2)

	_, ok = block.Statements[0].(*ast.Var)
	assert.True(t, ok, "first statement is the initializer")

	while, ok := block.Statements[1].(*ast.While)
	require.True(t, ok, "second statement is the desugared while loop")
	assert.Equal(t, "(< i 3)", printExpr(t, while.Condition))

	body, ok := while.Body.(*ast.Block)
	require.True(t, ok, "a for with an increment wraps the body in a block")
	require.Len(t, body.Statements, 2)
}

func TestParser_ForWithoutClauses(t *testing.T) {
	stmts, rep := parse(t, `for (;;) print 1;`)
	require.False(t, rep.HadError)

	while, ok := stmts[0].(*ast.While)
	require.True(t, ok, "no initializer means no wrapping block")
	assert.Equal(t, "true", printExpr(t, while.Condition))
}

func TestParser_FunctionDeclaration(t *testing.T) {
	stmts, rep := parse(t, `fun add(a, b) { return a + b; }`)
	require.False(t, rep.HadError)

	fn, ok := stmts[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
	require.Len(t, fn.Body, 1)

	ret, ok := fn.Body[0].(*ast.Return)
	require.True(t, ok)
	assert.Equal(t, "(+ a b)", printExpr(t, ret.Value))
}

func TestParser_ClassWithSuperclassAndMethods(t *testing.T) {
	stmts, rep := parse(t, `
		class Cake < Pastry {
			init(flavor) { this.flavor = flavor; }
			describe() { return this.flavor; }
		}
	`)
	require.False(t, rep.HadError)

	class, ok := stmts[0].(*ast.Class)
	require.True(t, ok)
	assert.Equal(t, "Cake", class.Name.Lexeme)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "Pastry", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 2)
	assert.Equal(t, "init", class.Methods[0].Name.Lexeme)
	assert.Equal(t, "describe", class.Methods[1].Name.Lexeme)
}

func TestParser_CallChainAndPropertyAccess(t *testing.T) {
	stmts, rep := parse(t, `a.b(1, 2).c;`)
	require.False(t, rep.HadError)
	expr := exprOf(t, stmts)

	get, ok := expr.(*ast.Get)
	require.True(t, ok)
	assert.Equal(t, "c", get.Name.Lexeme)

	call, ok := get.Object.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
}

func TestParser_SuperExpression(t *testing.T) {
	stmts, rep := parse(t, `
		class A { greet() { return "a"; } }
		class B < A { greet() { return super.greet(); } }
	`)
	require.False(t, rep.HadError)

	class, ok := stmts[1].(*ast.Class)
	require.True(t, ok)
	method := class.Methods[0]
	ret := method.Body[0].(*ast.Return)
	call := ret.Value.(*ast.Call)
	super, ok := call.Callee.(*ast.Super)
	require.True(t, ok)
	assert.Equal(t, "greet", super.Method.Lexeme)
}

func TestParser_MissingSemicolonReportsError(t *testing.T) {
	_, rep := parse(t, `var a = 1`)
	assert.True(t, rep.HadError)
}

func TestParser_SynchronizeRecoversAfterError(t *testing.T) {
	// The first statement is broken, but the parser should recover at the
	// following `;` and still produce the second, valid statement.
	stmts, rep := parse(t, `var = ; var ok = 1;`)
	assert.True(t, rep.HadError)

	var found bool
	for _, s := range stmts {
		if v, ok := s.(*ast.Var); ok && v.Name.Lexeme == "ok" {
			found = true
		}
	}
	assert.True(t, found, "parser should recover and still parse the statement after the error")
}

func TestParser_TooManyArgumentsReportsWithoutAborting(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"

	stmts, rep := parse(t, src)
	assert.True(t, rep.HadError)
	require.Len(t, stmts, 1, "the call is still fully parsed despite the arity error")
}
