/*
Package config loads the optional `.luamixrc.yaml` file that seeds
default parser/printer/evaluator options (spec.md §6's option schemas),
so a project can pin its house style (indent width, quote style,
evaluator budgets) without repeating flags on every invocation.
Grounded on the Option-schema shape spec.md §6 defines; YAML as the
file format is the ecosystem's default for this kind of project
dotfile (mirrored from SPEC_FULL.md's wiring of gopkg.in/yaml.v3,
carried over from go-mix's own declared-but-unused transitive
dependency).
*/
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OxenFxc/lua-ast-parser/eval"
	"github.com/OxenFxc/lua-ast-parser/parser"
	"github.com/OxenFxc/lua-ast-parser/printer"
)

// Parse mirrors the `parse` option schema (spec.md §6).
type Parse struct {
	SkipComments bool `yaml:"skip_comments"`
	SkipNewlines bool `yaml:"skip_newlines"`
	StrictMode   bool `yaml:"strict_mode"`
}

// Print mirrors the `print` option schema (spec.md §6).
type Print struct {
	Indent             string `yaml:"indent"`
	MaxLineLength      int    `yaml:"max_line_length"`
	QuoteStyle         string `yaml:"quote_style"`
	Semicolons         string `yaml:"semicolons"`
	InsertFinalNewline bool   `yaml:"insert_final_newline"`
}

// Evaluate mirrors the `evaluate` option schema (spec.md §6).
type Evaluate struct {
	MaxSteps     int  `yaml:"max_steps"`
	MaxCallDepth int  `yaml:"max_call_depth"`
	Strict       bool `yaml:"strict"`
}

// Config is the full `.luamixrc.yaml` document.
type Config struct {
	Parse    Parse    `yaml:"parse"`
	Print    Print    `yaml:"print"`
	Evaluate Evaluate `yaml:"evaluate"`
}

// Default returns spec.md's stated defaults for every option, used
// whenever no config file is present or a field is left unset in one.
func Default() Config {
	return Config{
		Parse:    Parse{SkipComments: true, SkipNewlines: true},
		Print:    Print{Indent: "  ", MaxLineLength: 80, QuoteStyle: "auto", Semicolons: "omit", InsertFinalNewline: true},
		Evaluate: Evaluate{MaxCallDepth: 200},
	}
}

// ToOptions converts the `parse` config section to parser.Options.
func (p Parse) ToOptions() parser.Options {
	return parser.Options{SkipComments: p.SkipComments, SkipNewlines: p.SkipNewlines, StrictMode: p.StrictMode}
}

// ToOptions converts the `print` config section to printer.Options,
// mapping its string-valued QuoteStyle/Semicolons fields to the
// printer package's enums (unrecognized or empty values fall back to
// the printer's own defaults, auto/omit).
func (p Print) ToOptions() printer.Options {
	opts := printer.Options{
		Indent:             p.Indent,
		MaxLineLength:      p.MaxLineLength,
		InsertFinalNewline: p.InsertFinalNewline,
	}
	switch p.QuoteStyle {
	case "single":
		opts.QuoteStyle = printer.QuoteSingle
	case "double":
		opts.QuoteStyle = printer.QuoteDouble
	default:
		opts.QuoteStyle = printer.QuoteAuto
	}
	switch p.Semicolons {
	case "insert":
		opts.Semicolons = printer.SemicolonsInsert
	case "preserve":
		opts.Semicolons = printer.SemicolonsPreserve
	default:
		opts.Semicolons = printer.SemicolonsOmit
	}
	return opts
}

// ToOptions converts the `evaluate` config section to eval.Options.
func (e Evaluate) ToOptions() eval.Options {
	return eval.Options{MaxSteps: e.MaxSteps, MaxCallDepth: e.MaxCallDepth, Strict: e.Strict}
}

// Load reads and parses path, falling back to Default() if the file
// does not exist; any other read or parse error is returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
