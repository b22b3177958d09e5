package compiler

import (
	"fmt"
	"regexp"
)

// TokenKind identifies the lexical category of a token.
type TokenKind int

const (
	EOF TokenKind = iota // sentinel: end of input

	KEYWORDS // if else while return debugger const mut
	MARKS    // ? :  (ternary punctuation; . , ; match their own kinds first)

	// Literals and names
	ID         // identifier
	STRING_LIT // string literal "..."
	NUMBER_LIT // decimal integer literal
	BOOL_LIT   // true | false

	// Paired delimiters
	LPAREN   // (
	RPAREN   // )
	LBRACKET // {
	RBRACKET // }

	// Punctuation
	SEMICOLON // ;
	COMMA     // ,
	DOT       // .

	// Layout (emitted, not skipped; the parser filters them)
	WHITESPACE // spaces and tabs
	CRLF       // one or more newlines, each optionally preceded by \r

	// Operators and annotations  (order matters: TYPE_ASSERT before the
	// bare ':' mark, ASSIGN_OP before BINARY_OP)
	TYPE_ASSERT // : string | : number | : boolean
	ASSIGN_OP   // = += -= *= /=
	UNARY_OP    // ! (one or more) or ~
	BINARY_OP   // + - * /
)

var tokenKindNames = map[TokenKind]string{
	EOF:         "EOF",
	KEYWORDS:    "KEYWORDS",
	MARKS:       "MARKS",
	ID:          "ID",
	STRING_LIT:  "STRING_LIT",
	NUMBER_LIT:  "NUMBER_LIT",
	BOOL_LIT:    "BOOL_LIT",
	LPAREN:      "LPAREN",
	RPAREN:      "RPAREN",
	LBRACKET:    "LBRACKET",
	RBRACKET:    "RBRACKET",
	SEMICOLON:   "SEMICOLON",
	COMMA:       "COMMA",
	DOT:         "DOT",
	WHITESPACE:  "WHITESPACE",
	CRLF:        "CRLF",
	TYPE_ASSERT: "TYPE_ASSERT",
	ASSIGN_OP:   "ASSIGN_OP",
	UNARY_OP:    "UNARY_OP",
	BINARY_OP:   "BINARY_OP",
}

func (k TokenKind) String() string {
	if n, ok := tokenKindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one lexical unit. Line is 1-based, Col is 0-based; both point
// at the first character of the matched text.
type Token struct {
	Kind  TokenKind
	Value string
	Line  uint32
	Col   uint32
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q (line %d, col %d)", t.Kind, t.Value, t.Line, t.Col)
}

// matcher pairs a token kind with its anchored pattern.
type matcher struct {
	kind TokenKind
	re   *regexp.Regexp
}

// matchers is the ordered matcher table. The lexer tries each pattern in
// turn and takes the first match anchored at the start of the remaining
// input, so order is load-bearing:
//   - keywords and bool literals before ID, or they would lex as names;
//   - NUMBER_LIT before ID, whose \w+ also covers digits;
//   - single-character punctuation kinds before the generic MARKS class,
//     which therefore only ever yields '?' and ':';
//   - TYPE_ASSERT before SEMICOLON/MARKS, so ": string" is one token;
//   - ASSIGN_OP before BINARY_OP, so "+=" never splits.
var matchers = []matcher{
	{KEYWORDS, regexp.MustCompile(`^(if|else|while|return|debugger|const|mut)\b`)},
	{BOOL_LIT, regexp.MustCompile(`^(true|false)\b`)},
	{NUMBER_LIT, regexp.MustCompile(`^\d+`)},
	{STRING_LIT, regexp.MustCompile(`^"[^"]*"`)},
	{ID, regexp.MustCompile(`^\w+`)},
	{LPAREN, regexp.MustCompile(`^\(`)},
	{RPAREN, regexp.MustCompile(`^\)`)},
	{LBRACKET, regexp.MustCompile(`^\{`)},
	{RBRACKET, regexp.MustCompile(`^\}`)},
	{WHITESPACE, regexp.MustCompile(`^[ \t]+`)},
	{CRLF, regexp.MustCompile(`^(\r?\n)+`)},
	{TYPE_ASSERT, regexp.MustCompile(`^:[ \t]*(string|number|boolean)\b`)},
	{SEMICOLON, regexp.MustCompile(`^;`)},
	{COMMA, regexp.MustCompile(`^,`)},
	{DOT, regexp.MustCompile(`^\.`)},
	{ASSIGN_OP, regexp.MustCompile(`^[+\-*/]?=`)},
	{UNARY_OP, regexp.MustCompile(`^(!+|~)`)},
	{BINARY_OP, regexp.MustCompile(`^[+\-*/]`)},
	{MARKS, regexp.MustCompile(`^[?:.,;]`)},
}
