/*
Package environment implements Lox's chained lexical scope: a name→value
map with an optional parent link, forming the cactus stack that makes
closures possible. GetAt/AssignAt are direct-distance operations that let
the resolver's recorded depths bypass the Get/Assign fallback search.
*/
package environment

import (
	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/token"
	"github.com/akashmaji946/lox/values"
)

// Environment is one lexical scope frame.
type Environment struct {
	values    map[string]values.Value
	enclosing *Environment
}

// New creates a scope whose parent is enclosing (nil for the global scope).
func New(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]values.Value), enclosing: enclosing}
}

// Define binds name to value in this scope, overwriting any existing
// binding for name in this scope. Define is always permitted, even over
// an existing name — the resolver is what forbids redeclaration in
// non-global scopes, not the environment.
func (e *Environment) Define(name string, value values.Value) {
	e.values[name] = value
}

// Get resolves name by name, searching this scope then delegating to the
// parent chain.
func (e *Environment) Get(name token.Token) (values.Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, reporter.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign updates an existing binding for name, searching this scope then
// the parent chain, without ever creating a new binding.
func (e *Environment) Assign(name token.Token, value values.Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return reporter.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// ancestor walks distance parent links up the chain.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name directly from the scope distance levels up, without
// falling back further — the resolver guarantees the binding exists there.
func (e *Environment) GetAt(distance int, name string) values.Value {
	return e.ancestor(distance).values[name]
}

// AssignAt writes name directly into the scope distance levels up.
func (e *Environment) AssignAt(distance int, name token.Token, value values.Value) {
	e.ancestor(distance).values[name.Lexeme] = value
}
