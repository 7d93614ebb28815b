// Package pos defines the source-position types shared by every stage
// of the pipeline: the scanner stamps them on cursor snapshots, the
// lexer stamps them on tokens, the parser stamps them on AST nodes,
// and the diagnostics collector uses them to render a caret under the
// offending source line.
package pos

import "fmt"

// Position is a 1-based line/column pair over the logical source text.
// Line and column both start at 1; a zero value is never a valid
// Position produced by the scanner.
type Position struct {
	Line   int
	Column int
}

// String renders a Position as "line:column", the form used by
// diagnostic rendering.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Less reports whether p sorts before other in source order.
func (p Position) Less(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Span is a half-open source range: Start and End as line/column
// positions, plus the matching byte offsets into the source buffer.
// StartOffset/EndOffset follow Go's usual half-open convention
// ([StartOffset, EndOffset)); End is the position immediately past the
// span's last character, matching Start == End for a zero-width span
// (e.g. the EOF token).
type Span struct {
	Start       Position
	End         Position
	StartOffset int
	EndOffset   int
}

// Join returns the smallest span that encloses both a and b. It is
// used to build a parent node's span from its first and last
// sub-node's spans, preserving the invariant that every node's span
// encloses the spans of all of its sub-nodes.
func Join(a, b Span) Span {
	start, startOff := a.Start, a.StartOffset
	if b.StartOffset < startOff {
		start, startOff = b.Start, b.StartOffset
	}
	end, endOff := a.End, a.EndOffset
	if b.EndOffset > endOff {
		end, endOff = b.End, b.EndOffset
	}
	return Span{Start: start, End: end, StartOffset: startOff, EndOffset: endOff}
}
