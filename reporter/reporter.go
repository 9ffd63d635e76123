/*
Package reporter is the single sink for every diagnostic the interpreter
produces: lexical, parse, resolve, and runtime errors. Every diagnostic is
stamped with a source position, and two sticky flags (HadError,
HadRuntimeError) let the CLI driver and the REPL each decide, from one
place, whether to keep going.

Colored rendering uses github.com/fatih/color the same way repl.go colors
its banner: errors in red, everything else left to the caller.
*/
package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/lox/token"
)

// RuntimeError is the error type carried out of the evaluator when a Lox
// program fails at runtime. It always carries the token whose line should
// be reported, rendered as "<msg>\n[line N]".
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// NewRuntimeError builds a RuntimeError anchored at tok.
func NewRuntimeError(tok token.Token, format string, a ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, a...)}
}

// Reporter accumulates the two sticky error flags and writes
// human-readable diagnostics to Err.
type Reporter struct {
	Out             io.Writer
	Err             io.Writer
	HadError        bool
	HadRuntimeError bool

	red *color.Color
}

// New creates a Reporter with Out set to stdout and Err set to stderr.
// Diagnostics go to Err in red through fatih/color; the Reporter itself
// never writes to Out.
func New() *Reporter {
	return &Reporter{
		Out: os.Stdout,
		Err: os.Stderr,
		red: color.New(color.FgRed),
	}
}

// Reset clears both sticky flags. The REPL calls this between lines so a
// mistyped line does not poison the ones that follow.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// Error reports a compile-time diagnostic anchored at a bare line number —
// used by the lexer, which has no token to point at yet.
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// ErrorAtToken reports a compile-time diagnostic anchored at a token,
// rendered as "Error at '<lexeme>'" or "Error at end".
func (r *Reporter) ErrorAtToken(tok token.Token, message string) {
	if tok.Kind == token.EOF {
		r.report(tok.Line, " at end", message)
		return
	}
	r.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
}

func (r *Reporter) report(line int, where, message string) {
	r.HadError = true
	r.red.Fprintf(r.Err, "[line %d] Error%s: %s\n", line, where, message)
}

// RuntimeErrorf reports a runtime failure and sets HadRuntimeError.
func (r *Reporter) RuntimeErrorf(err *RuntimeError) {
	r.HadRuntimeError = true
	r.red.Fprintf(r.Err, "%s\n", err.Error())
}
