package callable

import (
	"fmt"

	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/token"
	"github.com/akashmaji946/lox/values"
)

// LoxClass is a class value: a name, an optional superclass, and an
// immutable methods table, supporting single inheritance and method
// dispatch through the superclass chain.
type LoxClass struct {
	Name       string
	Superclass *LoxClass
	Methods    map[string]*LoxFunction
}

// NewClass builds a class. methods is taken as-is and never mutated again
// after construction.
func NewClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	return &LoxClass{Name: name, Superclass: superclass, Methods: methods}
}

func (*LoxClass) Type() values.Type { return values.TypeClass }
func (c *LoxClass) String() string  { return c.Name }

// FindMethod looks up name in this class's methods, then walks the
// superclass chain. Both property access and `super.method` lookups use
// this.
func (c *LoxClass) FindMethod(name string) (*LoxFunction, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of `init` if defined, else 0.
func (c *LoxClass) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if an `init` method exists, binds it
// to the instance and invokes it before returning the instance.
func (c *LoxClass) Call(interp Interpreter, args []values.Value) (values.Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object produced by calling a class: a back-pointer
// to its class and a mutable field map.
type Instance struct {
	Class  *LoxClass
	Fields map[string]values.Value
}

// NewInstance creates an instance of class with no fields set.
func NewInstance(class *LoxClass) *Instance {
	return &Instance{Class: class, Fields: make(map[string]values.Value)}
}

func (*Instance) Type() values.Type { return values.TypeInstance }
func (i *Instance) String() string  { return fmt.Sprintf("%s instance", i.Class.Name) }

// Get resolves a property read: fields shadow methods, and a found method
// is bound to this instance before being returned.
func (i *Instance) Get(name token.Token) (values.Value, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if method, ok := i.Class.FindMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, reporter.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

// Set stores into the instance's field map.
func (i *Instance) Set(name token.Token, value values.Value) {
	i.Fields[name.Lexeme] = value
}
