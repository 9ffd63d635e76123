package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/reporter"
)

func resolveSrc(t *testing.T, src string) (*reporter.Reporter, *Resolver) {
	t.Helper()
	rep := reporter.New()
	toks := lexer.New(src, rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()
	require.False(t, rep.HadError, "parse error before resolving")

	res := New(rep)
	res.Resolve(stmts)
	return rep, res
}

func TestResolver_LocalVariableGetsDepth(t *testing.T) {
	rep, res := resolveSrc(t, `
		var a = "global";
		{
			var b = a;
			print b;
		}
	`)
	assert.False(t, rep.HadError)
	// b is declared and read within the same block scope, so it resolves
	// to depth 0 — which must be recorded, not treated as "not found".
	var sawDepthZero bool
	for _, depth := range res.Locals() {
		if depth == 0 {
			sawDepthZero = true
		}
	}
	assert.True(t, sawDepthZero)
}

func TestResolver_ReadOwnInitializerIsError(t *testing.T) {
	_, rep := resolveAndReport(t, `{ var a = a; }`)
	assert.True(t, rep.HadError)
}

func TestResolver_RedeclarationInSameScopeIsError(t *testing.T) {
	_, rep := resolveAndReport(t, `{ var a = 1; var a = 2; }`)
	assert.True(t, rep.HadError)
}

func TestResolver_RedeclarationAtGlobalScopeIsAllowed(t *testing.T) {
	_, rep := resolveAndReport(t, `var a = 1; var a = 2;`)
	assert.False(t, rep.HadError)
}

func TestResolver_ReturnOutsideFunctionIsError(t *testing.T) {
	_, rep := resolveAndReport(t, `return 1;`)
	assert.True(t, rep.HadError)
}

func TestResolver_ReturnValueFromInitializerIsError(t *testing.T) {
	_, rep := resolveAndReport(t, `
		class Thing {
			init() {
				return 1;
			}
		}
	`)
	assert.True(t, rep.HadError)
}

func TestResolver_BareReturnFromInitializerIsAllowed(t *testing.T) {
	_, rep := resolveAndReport(t, `
		class Thing {
			init() {
				return;
			}
		}
	`)
	assert.False(t, rep.HadError)
}

func TestResolver_ThisOutsideClassIsError(t *testing.T) {
	_, rep := resolveAndReport(t, `
		fun f() {
			print this;
		}
	`)
	assert.True(t, rep.HadError)
}

func TestResolver_SuperOutsideClassIsError(t *testing.T) {
	_, rep := resolveAndReport(t, `
		fun f() {
			print super.x;
		}
	`)
	assert.True(t, rep.HadError)
}

func TestResolver_SuperWithoutSuperclassIsError(t *testing.T) {
	_, rep := resolveAndReport(t, `
		class A {
			f() {
				print super.f;
			}
		}
	`)
	assert.True(t, rep.HadError)
}

func TestResolver_ClassInheritingFromItselfIsError(t *testing.T) {
	_, rep := resolveAndReport(t, `class A < A {}`)
	assert.True(t, rep.HadError)
}

func TestResolver_CollectsMultipleErrorsInOnePass(t *testing.T) {
	// Two independent resolve violations in one program: a top-level
	// return and a same-scope redeclaration. Both must be reported, not
	// just the first one encountered.
	rep, res := resolveSrc(t, `
		return 1;
		{ var a = 1; var a = 2; }
	`)
	assert.True(t, rep.HadError)
	require.NotNil(t, res.errs)
	assert.Len(t, res.errs.Errors, 2)
}

func TestResolver_MethodNamedInitIsInitializer(t *testing.T) {
	_, rep := resolveAndReport(t, `
		class Thing {
			init() {
				return;
			}
		}
	`)
	assert.False(t, rep.HadError)

	// Returning a value is rejected in a method named init but allowed in
	// any other method, which is what marks init as the initializer.
	_, rep = resolveAndReport(t, `
		class Thing {
			init() {
				return 1;
			}
		}
	`)
	assert.True(t, rep.HadError)

	_, rep = resolveAndReport(t, `
		class Thing {
			other() {
				return 1;
			}
		}
	`)
	assert.False(t, rep.HadError)
}

// resolveAndReport is a thin wrapper kept distinct from resolveSrc for
// tests that only care about the reporter, not the locals table.
func resolveAndReport(t *testing.T, src string) (*Resolver, *reporter.Reporter) {
	t.Helper()
	rep, res := resolveSrc(t, src)
	return res, rep
}
