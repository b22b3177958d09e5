package compiler

import (
	"fmt"
	"strconv"
	"strings"
)

// LexError reports input that no matcher pattern anchors at.
type LexError struct {
	Pos     int
	Line    int
	Col     int
	Preview string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d (offset %d): no token matches %q",
		e.Line, e.Col, e.Pos, e.Preview)
}

// UnexpectedTokenError reports a parser mismatch between the production
// being parsed and the token actually seen.
type UnexpectedTokenError struct {
	Expected string
	Actual   string
	Line     uint32
	Col      uint32
	Frame    string // caret code frame, may be empty
}

func (e *UnexpectedTokenError) Error() string {
	msg := fmt.Sprintf("line %d: expected %s, got %s", e.Line, e.Expected, e.Actual)
	if e.Frame != "" {
		msg += "\n" + e.Frame
	}
	return msg
}

// StructuralError reports a violated parser invariant, such as an unknown
// statement keyword inside a block.
type StructuralError struct {
	Msg   string
	Line  uint32
	Col   uint32
	Frame string
}

func (e *StructuralError) Error() string {
	msg := fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	if e.Frame != "" {
		msg += "\n" + e.Frame
	}
	return msg
}

// EmissionError reports an AST invariant that held at parse time but was
// violated before emission, e.g. a binary expression missing an operand.
type EmissionError struct {
	Msg  string
	Node Node
}

func (e *EmissionError) Error() string {
	if e.Node != nil {
		pos := e.Node.Pos()
		return fmt.Sprintf("emit error at line %d, column %d: %s", pos.Line, pos.Col, e.Msg)
	}
	return "emit error: " + e.Msg
}

// formatCodeFrame renders the offending source line with a caret under
// the given 1-based line / 0-based column.
func formatCodeFrame(source string, line, col int) string {
	if source == "" || line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}

	lineText := strings.TrimRight(lines[line-1], "\r")
	if col < 0 {
		col = 0
	}
	if col > len([]rune(lineText)) {
		col = len([]rune(lineText))
	}

	label := strconv.Itoa(line)
	gutter := strings.Repeat(" ", len(label))
	caret := strings.Repeat(" ", col)

	return fmt.Sprintf("  --> line %d, column %d\n %s | %s\n %s | %s^",
		line, col, label, lineText, gutter, caret)
}
