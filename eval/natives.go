package eval

import (
	"time"

	"github.com/akashmaji946/lox/callable"
	"github.com/akashmaji946/lox/environment"
	"github.com/akashmaji946/lox/values"
)

// registerNatives defines every host-implemented function Lox programs can
// call. The only one is `clock`, seconds since the Unix epoch as a float
// so timing code can subtract two readings directly.
func registerNatives(globals *environment.Environment) {
	globals.Define("clock", &callable.NativeFn{
		Name: "clock",
		Arg:  0,
		Fn: func(args []values.Value) (values.Value, error) {
			return values.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}
