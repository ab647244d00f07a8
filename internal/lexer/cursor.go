package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"github.com/Nertivia/markup/ast"
)

// Cursor is a byte position in the text being tokenized.
type Cursor struct {
	Src string
	Off uint32
	// Limit is the exclusive upper bound for Off; defaults to len(Src).
	Limit uint32
}

// NewCursor creates a new cursor at the start of src.
func NewCursor(src string) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("len text overflow: %w", err))
	}
	return Cursor{
		Src:   src,
		Off:   0,
		Limit: limit,
	}
}

// EOF reports whether the cursor reached the end of the text.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Src[c.Off]
}

// Rest returns the unread part of the text.
func (c *Cursor) Rest() string {
	if c.EOF() {
		return ""
	}
	return c.Src[c.Off:c.Limit]
}

// Advance moves the cursor n bytes forward, never past Limit.
func (c *Cursor) Advance(n int) {
	un, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("advance overflow: %w", err))
	}
	c.Off = min(c.Off+un, c.Limit)
}

// BumpRune moves the cursor past the current rune. Invalid UTF-8 bytes are
// skipped one at a time.
func (c *Cursor) BumpRune() {
	if c.EOF() {
		return
	}
	if c.Src[c.Off] < utf8.RuneSelf {
		c.Off++
		return
	}
	_, size := utf8.DecodeRuneInString(c.Rest())
	c.Advance(size)
}

// Mark is a saved cursor position used to build spans.
type Mark uint32

// Mark saves the current cursor position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span between m and the current position.
func (c *Cursor) SpanFrom(m Mark) ast.Span {
	return ast.Span{
		Start: uint32(m),
		End:   c.Off,
	}
}
