package token

import (
	"github.com/Nertivia/markup/ast"
)

// Token represents a single markup token with its location.
type Token struct {
	Kind Kind
	Span ast.Span
	Text string
}

// IsDelimiter reports whether the token opens or closes a symmetric pair.
func (t Token) IsDelimiter() bool {
	switch t.Kind {
	case Bold, Underline, Italic, Strikethrough, Spoiler:
		return true
	default:
		return false
	}
}

// IsRawFence reports whether the token starts a construct whose content is
// never scanned for markup.
func (t Token) IsRawFence() bool {
	switch t.Kind {
	case Code, CodeBlock, CustomStart:
		return true
	default:
		return false
	}
}

// IsColor reports whether the token is a colour directive of either spelling.
func (t Token) IsColor() bool { return t.Kind == Color || t.Kind == Egg }
