/*
Package repl implements an interactive read-eval-print loop over the
lexer/parser/eval pipeline, persisting one global environment across
lines so later input sees earlier declarations. Grounded on go-mix's
repl package for the overall shape (readline-backed loop, colored
output) — generalized from go-mix's
per-request parser/evaluator pairing to this dialect's persistent
interpreter (one *eval.Interpreter lives for the whole session).
*/
package repl

import (
	"io"
	"strings"

	"github.com/OxenFxc/lua-ast-parser/diag"
	"github.com/OxenFxc/lua-ast-parser/eval"
	"github.com/OxenFxc/lua-ast-parser/parser"
	"github.com/OxenFxc/lua-ast-parser/value"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session: its banner/prompt configuration plus
// one interpreter whose global environment persists across lines.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string

	it *eval.Interpreter
}

// New creates a Repl; its interpreter is created when Start begins the
// session.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop until the user exits or EOF (Ctrl+D) is reached.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)
	r.it = eval.New(diag.New("", "repl"), eval.DefaultOptions())

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("bye\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("bye\n"))
			return
		}
		rl.SaveHistory(line)
		r.evalLine(w, line)
	}
}

// evalLine parses and runs one line against the session's persistent
// interpreter. it.Run recovers *BudgetError panics internally and
// returns them as a plain error, so this needs no recover of its own.
func (r *Repl) evalLine(w io.Writer, line string) {
	d := diag.New(line, "repl")
	prog := parser.Parse(line, d, parser.DefaultOptions())
	if d.HasErrors() {
		redColor.Fprintln(w, d.RenderColored())
		return
	}

	results, err := r.it.Run(prog)
	if err != nil {
		redColor.Fprintf(w, "%v\n", err)
		return
	}
	if len(results) == 0 {
		return
	}
	strs := make([]string, len(results))
	for i, v := range results {
		strs[i] = value.ToString(v)
	}
	yellowColor.Fprintln(w, strings.Join(strs, "\t"))
}
