package compiler

import (
	"strings"
	"unicode/utf8"
)

// Lexer holds all mutable state for a single scanning pass over src.
// Layout tokens (WHITESPACE, CRLF) are returned like any other token;
// callers decide what to filter.
type Lexer struct {
	src    string
	cursor int // byte offset of the unconsumed remainder
	pos    int // characters consumed since the origin
	line   int // current 1-based source line
	col    int // current 0-based source column

	current    Token
	hasCurrent bool
}

// Snapshot captures the full observable lexer state. Restoring one
// returns the lexer to a byte-identical prior state.
type Snapshot struct {
	cursor     int
	pos        int
	line       int
	col        int
	current    Token
	hasCurrent bool
}

func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Pos reports the number of characters consumed so far.
func (l *Lexer) Pos() int { return l.pos }

// Line reports the current 1-based line.
func (l *Lexer) Line() int { return l.line }

// Col reports the current 0-based column.
func (l *Lexer) Col() int { return l.col }

// Current returns the last token produced by GetToken. Before the first
// call it returns the zero Token.
func (l *Lexer) Current() Token {
	return l.current
}

// Save captures the current state. Restore with Restore.
func (l *Lexer) Save() Snapshot {
	return Snapshot{
		cursor:     l.cursor,
		pos:        l.pos,
		line:       l.line,
		col:        l.col,
		current:    l.current,
		hasCurrent: l.hasCurrent,
	}
}

// Restore rewinds the lexer to a previously saved state.
func (l *Lexer) Restore(s Snapshot) {
	l.cursor = s.cursor
	l.pos = s.pos
	l.line = s.line
	l.col = s.col
	l.current = s.current
	l.hasCurrent = s.hasCurrent
}

// GetToken consumes and returns the next token. At end of input it keeps
// returning EOF with an empty value.
func (l *Lexer) GetToken() (Token, error) {
	if l.cursor >= len(l.src) {
		tok := Token{Kind: EOF, Value: "", Line: uint32(l.line), Col: uint32(l.col)}
		l.current = tok
		l.hasCurrent = true
		return tok, nil
	}

	remaining := l.src[l.cursor:]
	for _, m := range matchers {
		loc := m.re.FindStringIndex(remaining)
		if loc == nil {
			continue
		}
		value := remaining[:loc[1]]
		tok := Token{Kind: m.kind, Value: value, Line: uint32(l.line), Col: uint32(l.col)}

		width := utf8.RuneCountInString(value)
		l.cursor += len(value)
		l.pos += width
		if m.kind == CRLF {
			l.line += strings.Count(value, "\n")
			l.col = 0
		} else {
			l.col += width
		}

		l.current = tok
		l.hasCurrent = true
		return tok, nil
	}

	return Token{}, &LexError{
		Pos:     l.pos,
		Line:    l.line,
		Col:     l.col,
		Preview: preview(remaining),
	}
}

// Peek returns the next token without observable state change: it runs
// GetToken against a private snapshot and rewinds.
func (l *Lexer) Peek() (Token, error) {
	snap := l.Save()
	tok, err := l.GetToken()
	l.Restore(snap)
	return tok, err
}

// Expect reports whether the next token has the given kind. With move
// set, the token is consumed; otherwise this is a pure lookahead.
func (l *Lexer) Expect(kind TokenKind, move bool) (bool, error) {
	if !move {
		tok, err := l.Peek()
		if err != nil {
			return false, err
		}
		return tok.Kind == kind, nil
	}
	tok, err := l.GetToken()
	if err != nil {
		return false, err
	}
	return tok.Kind == kind, nil
}

// Skip advances n tokens.
func (l *Lexer) Skip(n int) error {
	for i := 0; i < n; i++ {
		if _, err := l.GetToken(); err != nil {
			return err
		}
	}
	return nil
}

// SkipOf collects tokens while their kind is in kinds. With fromCurrent
// set, the walk starts at the current token instead of a fresh read. On
// return the current token is the first non-matching one.
func (l *Lexer) SkipOf(kinds []TokenKind, fromCurrent bool) ([]Token, error) {
	var collected []Token
	var tok Token
	if fromCurrent && l.hasCurrent {
		tok = l.current
	} else {
		var err error
		tok, err = l.GetToken()
		if err != nil {
			return nil, err
		}
	}
	for kindIn(tok.Kind, kinds) {
		collected = append(collected, tok)
		var err error
		tok, err = l.GetToken()
		if err != nil {
			return collected, err
		}
	}
	return collected, nil
}

// SkipTo advances until a token's kind is in kinds or EOF is reached,
// collecting everything skipped on the way. The matching token becomes
// the current token and is not collected.
func (l *Lexer) SkipTo(kinds []TokenKind) ([]Token, error) {
	var collected []Token
	for {
		tok, err := l.GetToken()
		if err != nil {
			return collected, err
		}
		if tok.Kind == EOF || kindIn(tok.Kind, kinds) {
			return collected, nil
		}
		collected = append(collected, tok)
	}
}

// SkipToValueOf advances until a token matches both kind and value, or
// EOF is reached.
func (l *Lexer) SkipToValueOf(kind TokenKind, value string) ([]Token, error) {
	var collected []Token
	for {
		tok, err := l.GetToken()
		if err != nil {
			return collected, err
		}
		if tok.Kind == EOF || (tok.Kind == kind && tok.Value == value) {
			return collected, nil
		}
		collected = append(collected, tok)
	}
}

func kindIn(k TokenKind, kinds []TokenKind) bool {
	for _, kind := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// preview clips the unconsumed remainder for error messages.
func preview(remaining string) string {
	const max = 24
	if nl := strings.IndexByte(remaining, '\n'); nl >= 0 && nl < max {
		return remaining[:nl]
	}
	if len(remaining) > max {
		return remaining[:max]
	}
	return remaining
}
