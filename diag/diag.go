/*
Package diag implements the severity-tagged diagnostic collector
described in spec.md §4.1. It is the shared mutable state the lexer
and parser write to: they record entries and keep going (spec.md
§4.4.3's failure model). The evaluator records nothing here; it
returns a RuntimeError at the point of failure.
*/
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/OxenFxc/lua-ast-parser/pos"
)

// Severity classifies a diagnostic entry.
type Severity int

const (
	Hint Severity = iota
	Info
	Warning
	Error
)

// String renders the severity the way rendered entries show it:
// upper-case, e.g. "ERROR".
func (s Severity) String() string {
	switch s {
	case Hint:
		return "HINT"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

var severityColor = map[Severity]*color.Color{
	Hint:    color.New(color.FgCyan),
	Info:    color.New(color.FgBlue),
	Warning: color.New(color.FgYellow),
	Error:   color.New(color.FgRed),
}

// Entry is a single recorded diagnostic: a severity, a message, the
// span it refers to, and a source-tag identifying which stage
// produced it (e.g. "lexer", "parser", "eval").
type Entry struct {
	Severity Severity
	Message  string
	Span     pos.Span
	Source   string
}

// Collector gathers entries in insertion order and owns the source
// text they refer to, so it can render the offending line alongside
// each entry. A Collector is owned exclusively by the pipeline
// instance that created it — spec.md §5's resource model has no
// locking here because no two agents ever share one.
type Collector struct {
	Tag     string
	source  string
	lines   []string
	entries []Entry
}

// New creates a collector over the given source text. tag identifies
// this pipeline run in entries that don't specify their own Source;
// if tag is empty, a short tag derived from a random UUID is used so
// that diagnostics from concurrently-run batch files (SPEC_FULL.md §5)
// never collide once merged into one report.
func New(source, tag string) *Collector {
	if tag == "" {
		tag = uuid.NewString()[:8]
	}
	return &Collector{
		Tag:    tag,
		source: source,
		lines:  strings.Split(source, "\n"),
	}
}

// Record appends a new entry. source overrides the collector's
// default Tag for this entry only; pass "" to use the default.
func (c *Collector) Record(sev Severity, message string, span pos.Span, source string) {
	if source == "" {
		source = c.Tag
	}
	c.entries = append(c.entries, Entry{Severity: sev, Message: message, Span: span, Source: source})
}

// Errorf is a convenience wrapper around Record for Severity Error.
func (c *Collector) Errorf(span pos.Span, source, format string, args ...any) {
	c.Record(Error, fmt.Sprintf(format, args...), span, source)
}

// Entries returns all recorded entries in insertion order.
func (c *Collector) Entries() []Entry {
	return c.entries
}

// ErrorCount returns the number of Error-severity entries.
func (c *Collector) ErrorCount() int {
	n := 0
	for _, e := range c.entries {
		if e.Severity == Error {
			n++
		}
	}
	return n
}

// HasErrors reports whether any Error-severity entry was recorded;
// callers treat a parse/print/evaluate result as a failure exactly
// when this is true (spec.md §4.4.3).
func (c *Collector) HasErrors() bool {
	return c.ErrorCount() > 0
}

// line returns the 1-indexed source line, or "" if out of range (can
// happen for a synthetic span produced by a partially-built subtree).
func (c *Collector) line(n int) string {
	if n < 1 || n > len(c.lines) {
		return ""
	}
	return c.lines[n-1]
}

// Render formats one entry per spec.md §4.1:
//
//	<line>:<col> [<SEVERITY>] (<source>) <message>
//	<offending source line>
//	<caret at start column>
func (c *Collector) Render(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d [%s] (%s) %s\n", e.Span.Start.Line, e.Span.Start.Column, e.Severity, e.Source, e.Message)
	b.WriteString(c.line(e.Span.Start.Line))
	b.WriteByte('\n')
	if col := e.Span.Start.Column; col >= 1 {
		b.WriteString(strings.Repeat(" ", col-1))
	}
	b.WriteByte('^')
	return b.String()
}

// RenderAll renders every entry in insertion order, separated by blank
// lines.
func (c *Collector) RenderAll() string {
	parts := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		parts = append(parts, c.Render(e))
	}
	return strings.Join(parts, "\n\n")
}

// RenderColored is RenderAll with the severity tag colorized for
// terminal output (used by cmd/luamix and repl).
func (c *Collector) RenderColored() string {
	parts := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		col := severityColor[e.Severity]
		header := fmt.Sprintf("%d:%d [%s] (%s) %s", e.Span.Start.Line, e.Span.Start.Column, e.Severity, e.Source, e.Message)
		body := c.line(e.Span.Start.Line) + "\n"
		if sc := e.Span.Start.Column; sc >= 1 {
			body += strings.Repeat(" ", sc-1)
		}
		body += "^"
		parts = append(parts, col.Sprint(header)+"\n"+body)
	}
	return strings.Join(parts, "\n\n")
}
