/*
Package lexer drives a scanner.Scanner into a flat token stream, per
spec.md §4.3. Token classification (keyword vs. identifier, operator
matching) lives here; character-level reading lives in package
scanner.
*/
package lexer

import "github.com/OxenFxc/lua-ast-parser/pos"

// Kind tags a Token. It is a closed set, per spec.md §9's "closed
// tagged variant" guidance — adding a kind means updating every
// switch that dispatches on it.
type Kind int

const (
	EOF Kind = iota
	INVALID
	NEWLINE
	COMMENT

	NUMBER
	STRING
	BOOLEAN
	NIL
	IDENTIFIER

	// Keywords
	KwIf
	KwThen
	KwElse
	KwElseif
	KwEnd
	KwWhile
	KwDo
	KwFor
	KwIn
	KwRepeat
	KwUntil
	KwFunction
	KwLocal
	KwReturn
	KwBreak
	KwGoto
	KwAnd
	KwOr
	KwNot

	// Operators and punctuators
	Plus        // +
	Minus       // -
	Star        // *
	Slash       // /
	DSlash      // //
	Percent     // %
	Caret       // ^
	Hash        // #
	Assign      // =
	Eq          // ==
	Ne          // ~=
	Lt          // <
	Le          // <=
	Gt          // >
	Ge          // >=
	Dot         // .
	Concat      // ..
	Ellipsis    // ...
	LParen      // (
	RParen      // )
	LBrace      // {
	RBrace      // }
	LBracket    // [
	RBracket    // ]
	Comma       // ,
	Semicolon   // ;
	Colon       // :
	DoubleColon // ::
)

var kindNames = map[Kind]string{
	EOF: "EOF", INVALID: "INVALID", NEWLINE: "NEWLINE", COMMENT: "COMMENT",
	NUMBER: "NUMBER", STRING: "STRING", BOOLEAN: "BOOLEAN", NIL: "NIL", IDENTIFIER: "IDENTIFIER",
	KwIf: "if", KwThen: "then", KwElse: "else", KwElseif: "elseif", KwEnd: "end",
	KwWhile: "while", KwDo: "do", KwFor: "for", KwIn: "in", KwRepeat: "repeat", KwUntil: "until",
	KwFunction: "function", KwLocal: "local", KwReturn: "return", KwBreak: "break",
	KwGoto: "goto", KwAnd: "and", KwOr: "or", KwNot: "not",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", DSlash: "//", Percent: "%", Caret: "^", Hash: "#",
	Assign: "=", Eq: "==", Ne: "~=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	Dot: ".", Concat: "..", Ellipsis: "...",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
	Comma: ",", Semicolon: ";", Colon: ":", DoubleColon: "::",
}

// String renders the Kind's canonical surface spelling (or its tag
// name for non-literal kinds), used in diagnostics and by the printer.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Keywords maps reserved words to their Kind, used to distinguish
// keywords from identifiers once an identifier-shaped lexeme has been
// read.
var Keywords = map[string]Kind{
	"if": KwIf, "then": KwThen, "else": KwElse, "elseif": KwElseif, "end": KwEnd,
	"while": KwWhile, "do": KwDo, "for": KwFor, "in": KwIn, "repeat": KwRepeat, "until": KwUntil,
	"function": KwFunction, "local": KwLocal, "return": KwReturn, "break": KwBreak,
	"goto": KwGoto, "and": KwAnd, "or": KwOr, "not": KwNot,
	"true": BOOLEAN, "false": BOOLEAN, "nil": NIL,
}

// Token is one lexical token: its Kind, the exact source substring it
// was read from (Lexeme), and its Span. Decoded additionally carries
// the escape-processed payload for STRING tokens (spec.md §4.2 — "the
// scanner processes escapes; stored as decoded string plus the raw
// lexeme"); it is unused for every other Kind.
type Token struct {
	Kind    Kind
	Lexeme  string
	Decoded string
	Span    pos.Span
}

// Is reports whether the token has the given kind.
func (t Token) Is(k Kind) bool { return t.Kind == k }
