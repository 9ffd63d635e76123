/*
Package repl implements the Read-Eval-Print Loop for the Lox interpreter.
The REPL provides an interactive environment where users can:
- Enter Lox code line by line
- See immediate diagnostics and program output
- Navigate command history using arrow keys
- Receive colored feedback distinguishing errors from output

The REPL uses the readline library for enhanced line editing capabilities.
Each line gets a fresh lexer, parser, and resolver, but all lines run on
one long-lived evaluator, so state (variables, functions, classes)
persists across the whole session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lox/eval"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/resolver"
)

// Color definitions for REPL output. blueColor frames banners and
// separators, greenColor highlights the banner text itself, cyanColor
// carries usage instructions, and redColor is left to reporter.Reporter
// for diagnostics so error coloring stays consistent with file mode.
var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl is a configurable interactive session. Construct one with New and
// call Start.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New creates a Repl instance with the given display configuration.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// PrintBanner writes the startup banner and usage instructions to writer.
func (r *Repl) PrintBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	cyanColor.Fprintf(writer, "%s\n", "Type Lox statements and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "An empty line, 'exit', or 'quit' ends the session.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop against writer until the user exits:
// empty input ends the session, and every line is lexed, parsed,
// resolved, and evaluated against state carried over from previous
// lines.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	rep := reporter.New()
	rep.Out = writer
	rep.Err = writer
	res := resolver.New(rep)
	interp := eval.New(rep, res.Locals())
	interp.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" || line == "exit" || line == "quit" {
			return
		}
		rl.SaveHistory(line)

		r.evalLine(rep, interp, line)
	}
}

// evalLine runs one line through the pipeline, resetting the reporter's
// sticky flags first so one bad line doesn't poison the rest of the
// session.
func (r *Repl) evalLine(rep *reporter.Reporter, interp *eval.Evaluator, line string) {
	rep.Reset()

	toks := lexer.New(line, rep).ScanTokens()
	if rep.HadError {
		return
	}

	statements := parser.New(toks, rep).Parse()
	if rep.HadError {
		return
	}

	res := resolver.New(rep)
	res.Resolve(statements)
	if rep.HadError {
		return
	}
	interp.AddLocals(res.Locals())

	interp.Interpret(statements)
}
