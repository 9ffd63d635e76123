package callable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/environment"
	"github.com/akashmaji946/lox/token"
	"github.com/akashmaji946/lox/values"
)

func ident(name string) token.Token {
	return token.New(token.Identifier, name, 1)
}

func TestNativeFn_CallInvokesFn(t *testing.T) {
	calls := 0
	fn := &NativeFn{Name: "probe", Arg: 1, Fn: func(args []values.Value) (values.Value, error) {
		calls++
		return args[0], nil
	}}
	// NativeFn.Call never touches its Interpreter argument, so a nil
	// interface value is a valid stand-in here.
	v, err := fn.Call(nil, []values.Value{values.Number(42)})
	require.NoError(t, err)
	assert.Equal(t, values.Number(42), v)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, fn.Arity())
}

func TestLoxFunction_BindDefinesThisOneScopeDeeper(t *testing.T) {
	closure := environment.New(nil)
	decl := ast.NewFunction(ident("greet"), nil, nil)
	fn := NewFunction(decl, closure, false)

	instance := NewInstance(NewClass("Thing", nil, nil))
	bound := fn.Bind(instance)

	assert.Same(t, instance, bound.Closure.GetAt(0, "this"))
	assert.NotSame(t, closure, bound.Closure)
}

func TestLoxClass_FindMethodWalksSuperclassChain(t *testing.T) {
	base := NewClass("Base", nil, map[string]*LoxFunction{
		"speak": NewFunction(ast.NewFunction(ident("speak"), nil, nil), nil, false),
	})
	derived := NewClass("Derived", base, map[string]*LoxFunction{})

	method, ok := derived.FindMethod("speak")
	assert.True(t, ok)
	assert.Equal(t, "speak", method.Declaration.Name.Lexeme)

	_, ok = derived.FindMethod("missing")
	assert.False(t, ok)
}

func TestLoxClass_ArityIsInitArity(t *testing.T) {
	withInit := NewClass("WithInit", nil, map[string]*LoxFunction{
		"init": NewFunction(ast.NewFunction(ident("init"), []token.Token{ident("a"), ident("b")}, nil), nil, true),
	})
	assert.Equal(t, 2, withInit.Arity())

	withoutInit := NewClass("Plain", nil, map[string]*LoxFunction{})
	assert.Equal(t, 0, withoutInit.Arity())
}

func TestInstance_GetFieldShadowsMethod(t *testing.T) {
	class := NewClass("Thing", nil, map[string]*LoxFunction{
		"value": NewFunction(ast.NewFunction(ident("value"), nil, nil), nil, false),
	})
	instance := NewInstance(class)
	instance.Set(ident("value"), values.Number(99))

	v, err := instance.Get(ident("value"))
	require.NoError(t, err)
	assert.Equal(t, values.Number(99), v)
}

func TestInstance_GetMethodIsBound(t *testing.T) {
	closure := environment.New(nil)
	class := NewClass("Thing", nil, map[string]*LoxFunction{
		"method": NewFunction(ast.NewFunction(ident("method"), nil, nil), closure, false),
	})
	instance := NewInstance(class)

	v, err := instance.Get(ident("method"))
	require.NoError(t, err)
	bound, ok := v.(*LoxFunction)
	require.True(t, ok)
	assert.Same(t, instance, bound.Closure.GetAt(0, "this"))
}

func TestInstance_GetUndefinedPropertyIsRuntimeError(t *testing.T) {
	instance := NewInstance(NewClass("Empty", nil, map[string]*LoxFunction{}))
	_, err := instance.Get(ident("missing"))
	assert.Error(t, err)
}
