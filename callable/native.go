package callable

import "github.com/akashmaji946/lox/values"

// NativeFn wraps a host-implemented function exposed to Lox programs: a
// name, a fixed arity, and a Go callback. The only native registered by
// default is `clock`.
type NativeFn struct {
	Name  string
	Arg   int
	Fn    func(args []values.Value) (values.Value, error)
}

func (*NativeFn) Type() values.Type { return values.TypeNative }
func (*NativeFn) String() string    { return "<native fn>" }
func (n *NativeFn) Arity() int      { return n.Arg }

func (n *NativeFn) Call(_ Interpreter, args []values.Value) (values.Value, error) {
	return n.Fn(args)
}
