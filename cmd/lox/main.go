// Command lox is the interpreter's entry point: no arguments starts the
// REPL, one argument runs that file, and anything else is a usage error.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/lox/eval"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/repl"
	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/resolver"
)

const (
	exitCompileError = 65
	exitRuntimeError = 70
	exitUsageError   = 64
)

func main() {
	args := os.Args[1:]

	switch {
	case len(args) == 0:
		runPrompt()
	case len(args) == 1:
		runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(exitUsageError)
	}
}

func runPrompt() {
	session := repl.New(banner, version, author, separator, "> ")
	session.Start(os.Stdout)
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsageError)
	}

	rep := reporter.New()

	toks := lexer.New(string(src), rep).ScanTokens()
	statements := parser.New(toks, rep).Parse()
	if rep.HadError {
		os.Exit(exitCompileError)
	}

	res := resolver.New(rep)
	res.Resolve(statements)
	if rep.HadError {
		os.Exit(exitCompileError)
	}

	interp := eval.New(rep, res.Locals())
	interp.Interpret(statements)
	if rep.HadRuntimeError {
		os.Exit(exitRuntimeError)
	}
}

const (
	banner    = "lox"
	version   = "0.1.0"
	author    = "akashmaji946"
	separator = "----------------------------------------"
)
