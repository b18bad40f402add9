// Package cursor tokenizes one view literal and exposes the positionable
// token cursor the speculative parser runs on.
//
// Tokens come from the participle lexer. The cursor itself is an index
// over the token slice: Fork returns an independent position snapshot,
// Commit advances a cursor to a fork's position, and Group extracts the
// contents of a balanced parenthesized group as a bounded sub-cursor. A
// dropped fork has no observable effect on the cursor it came from.
package cursor

import (
	"errors"

	"github.com/alecthomas/participle/v2/lexer"
)

var def = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Char", Pattern: `'(?:\\.|[^'\\])*'`},
	{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[-\[\](){}<>=,.:;!&|*+/%^~#@?]`},
})

var (
	symbols   = def.Symbols()
	identType = symbols["Ident"]
	punctType = symbols["Punct"]
	wsType    = symbols["Whitespace"]
)

// IsIdent reports whether t is an identifier token.
func IsIdent(t lexer.Token) bool {
	return t.Type == identType
}

// IsPunct reports whether t is the punctuation s.
func IsPunct(t lexer.Token, s string) bool {
	return t.Type == punctType && t.Value == s
}

// Cursor is a position over a literal's token slice. Forks and group
// sub-cursors share the backing slice and never mutate it; only the
// position index moves.
type Cursor struct {
	src  string // literal source text, addressed by token offsets
	toks []lexer.Token
	pos  int
	end  int         // exclusive bound; group cursors stop at their closing paren
	eof  lexer.Token // token reported once pos reaches end
}

// Lex tokenizes one literal, dropping whitespace. Token positions are
// shifted by base so every diagnostic anchors at a real file position;
// offsets stay literal-relative for source slicing.
func Lex(src string, base lexer.Position) (*Cursor, error) {
	lx, err := def.LexString(base.Filename, src)
	if err != nil {
		return nil, lexError(err, base)
	}
	var toks []lexer.Token
	for {
		t, err := lx.Next()
		if err != nil {
			return nil, lexError(err, base)
		}
		t.Pos = shift(base, t.Pos)
		if t.EOF() {
			return &Cursor{src: src, toks: toks, end: len(toks), eof: t}, nil
		}
		if t.Type == wsType {
			continue
		}
		toks = append(toks, t)
	}
}

// shift maps a literal-relative position to a file position. Columns only
// move on the literal's first line; the offset is kept literal-relative.
func shift(base, p lexer.Position) lexer.Position {
	out := p
	out.Filename = base.Filename
	out.Line = base.Line + p.Line - 1
	if p.Line == 1 {
		out.Column = base.Column + p.Column - 1
	}
	return out
}

// Peek returns the current token without consuming it. At the end of the
// cursor it returns the cursor's end token: the real EOF for a top-level
// cursor, the closing paren for a group cursor.
func (c *Cursor) Peek() lexer.Token {
	if c.pos >= c.end {
		return c.eof
	}
	return c.toks[c.pos]
}

// Next consumes and returns the current token.
func (c *Cursor) Next() lexer.Token {
	t := c.Peek()
	if c.pos < c.end {
		c.pos++
	}
	return t
}

// EOF reports whether the cursor is exhausted.
func (c *Cursor) EOF() bool {
	return c.pos >= c.end
}

// Pos returns the position of the current token.
func (c *Cursor) Pos() lexer.Position {
	return c.Peek().Pos
}

// Fork returns an independent snapshot of the cursor. Consuming from the
// fork does not move the original.
func (c *Cursor) Fork() *Cursor {
	cp := *c
	return &cp
}

// Commit advances c to the fork's position. The fork must originate from c
// (or share its bounds); this is the only way a speculative parse becomes
// visible on the real cursor.
func (c *Cursor) Commit(fork *Cursor) {
	c.pos = fork.pos
}

// Group consumes a parenthesized group and returns a sub-cursor over its
// content plus the opening paren token. The current token must be "(".
func (c *Cursor) Group() (*Cursor, lexer.Token, error) {
	open := c.Peek()
	depth := 0
	for i := c.pos; i < c.end; i++ {
		switch {
		case IsPunct(c.toks[i], "("):
			depth++
		case IsPunct(c.toks[i], ")"):
			depth--
			if depth == 0 {
				inner := &Cursor{
					src:  c.src,
					toks: c.toks,
					pos:  c.pos + 1,
					end:  i,
					eof:  c.toks[i],
				}
				c.pos = i + 1
				return inner, open, nil
			}
		}
	}
	return nil, open, &UnclosedGroupError{Pos: open.Pos}
}

// Src returns the literal source text spanning from the start of from to
// the end of to.
func (c *Cursor) Src(from, to lexer.Token) string {
	return c.src[from.Pos.Offset : to.Pos.Offset+len(to.Value)]
}

// UnclosedGroupError reports a "(" with no matching ")".
type UnclosedGroupError struct {
	Pos lexer.Position
}

func (e *UnclosedGroupError) Error() string {
	return e.Pos.String() + `: unclosed "("`
}

// LexError is a tokenization failure with a file-anchored position.
type LexError struct {
	Pos     lexer.Position
	Message string
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.Message
}

// lexError re-anchors the participle lexer's literal-relative position at
// the literal's place in the file.
func lexError(err error, base lexer.Position) error {
	var perr interface {
		Position() lexer.Position
		Message() string
	}
	if errors.As(err, &perr) {
		return &LexError{Pos: shift(base, perr.Position()), Message: perr.Message()}
	}
	return err
}
