// Package control carries non-error control-flow signals out of statement
// execution: a dedicated unwind channel for `return` that is never
// confused with the runtime-error channel, since conflating the two would
// silently swallow real errors raised inside a function body. Return
// implements the error interface purely so
// it can travel through the same `error` return values execution already
// uses, but callers must type-assert for it explicitly rather than treat
// it as a failure.
package control

import "github.com/akashmaji946/lox/values"

// Return unwinds execution to the nearest enclosing function call,
// carrying the value a `return` statement produced.
type Return struct {
	Value values.Value
}

func (*Return) Error() string { return "return" }

// AsReturn reports whether err is a *Return signal and, if so, returns it.
func AsReturn(err error) (*Return, bool) {
	ret, ok := err.(*Return)
	return ret, ok
}
