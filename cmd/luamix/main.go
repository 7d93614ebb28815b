/*
Command luamix is the CLI front end over the parser/printer/eval
pipeline: `run` executes a script, `parse` reports diagnostics (and
optionally dumps the AST), `print` round-trips a script through the
parser and printer, and `repl` starts an interactive session.
Grounded on go-mix's main package for the overall mode-dispatch shape
(REPL vs. file execution), rebuilt on spf13/cobra for subcommand
parsing in place of go-mix's hand-rolled os.Args[1] switch, per
SPEC_FULL.md's CLI wiring.
*/
package main

import (
	"fmt"
	"os"

	"github.com/OxenFxc/lua-ast-parser/diag"
	"github.com/OxenFxc/lua-ast-parser/eval"
	"github.com/OxenFxc/lua-ast-parser/internal/config"
	"github.com/OxenFxc/lua-ast-parser/parser"
	"github.com/OxenFxc/lua-ast-parser/printer"
	"github.com/OxenFxc/lua-ast-parser/repl"
	"github.com/OxenFxc/lua-ast-parser/value"
	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	version = "v0.1.0"
	banner  = "luamix"
	line    = "----------------------------------------------------------------"
)

var log = logrus.WithField("component", "cli")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "luamix",
		Short:   "Lexer, parser, printer, and evaluator for a Lua-like scripting language",
		Version: version,
	}
	root.AddCommand(newRunCmd(), newParseCmd(), newPrintCmd(), newReplCmd())
	return root
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			repl.New(banner, version, line, "luamix >>> ").Start(os.Stdout)
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	var batch bool
	var maxSteps, maxDepth int
	var strict bool
	cmd := &cobra.Command{
		Use:   "run <file...>",
		Short: "Evaluate one or more scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := config.Load(".luamixrc.yaml")
			opts := cfg.Evaluate.ToOptions()
			if cmd.Flags().Changed("max-steps") {
				opts.MaxSteps = maxSteps
			}
			if cmd.Flags().Changed("max-call-depth") {
				opts.MaxCallDepth = maxDepth
			}
			if cmd.Flags().Changed("strict") {
				opts.Strict = strict
			}
			popts := cfg.Parse.ToOptions()
			if !batch || len(args) == 1 {
				for _, f := range args {
					if err := runFile(f, popts, opts); err != nil {
						return err
					}
				}
				return nil
			}
			// Batch mode runs each file concurrently, each with its own
			// interpreter instance (no shared mutable state across files,
			// per spec.md §5's resource model).
			g, _ := errgroup.WithContext(cmd.Context())
			for _, f := range args {
				f := f
				g.Go(func() error { return runFile(f, popts, opts) })
			}
			return g.Wait()
		},
	}
	cmd.Flags().BoolVar(&batch, "batch", false, "run multiple files concurrently")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "abort after this many executed statements (0 = unlimited)")
	cmd.Flags().IntVar(&maxDepth, "max-call-depth", 0, "abort once call depth exceeds this (0 = default)")
	cmd.Flags().BoolVar(&strict, "strict", false, "error on reads of undefined variables instead of returning nil")
	return cmd
}

func runFile(path string, popts parser.Options, opts eval.Options) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	d := diag.New(string(src), path)
	prog := parser.Parse(string(src), d, popts)
	if d.HasErrors() {
		fmt.Fprintln(os.Stderr, d.RenderColored())
		return fmt.Errorf("%s: parse failed", path)
	}
	it := eval.New(d, opts)
	results, err := it.Run(prog)
	if err != nil {
		log.WithField("file", path).Error(err)
		return err
	}
	for _, v := range results {
		fmt.Println(value.ToString(v))
	}
	return nil
}

func newParseCmd() *cobra.Command {
	var dumpAST bool
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Report diagnostics for a script, optionally dumping its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			cfg, _ := config.Load(".luamixrc.yaml")
			d := diag.New(string(src), args[0])
			prog := parser.Parse(string(src), d, cfg.Parse.ToOptions())
			if d.HasErrors() {
				fmt.Println(d.RenderColored())
			}
			if dumpAST {
				repr.Println(prog)
			}
			if d.HasErrors() {
				return fmt.Errorf("%s: parse failed", args[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST")
	return cmd
}

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <file>",
		Short: "Re-emit a script's source from its parsed AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			cfg, _ := config.Load(".luamixrc.yaml")
			d := diag.New(string(src), args[0])
			prog := parser.Parse(string(src), d, cfg.Parse.ToOptions())
			if d.HasErrors() {
				fmt.Fprintln(os.Stderr, d.RenderColored())
				return fmt.Errorf("%s: parse failed", args[0])
			}
			fmt.Print(printer.Print(prog, cfg.Print.ToOptions()))
			return nil
		},
	}
	return cmd
}
