package markup

import (
	"errors"
	"unicode/utf8"

	"github.com/Nertivia/markup/ast"
	"github.com/Nertivia/markup/internal/lexer"
	"github.com/Nertivia/markup/internal/parser"
)

type (
	Entity = ast.Entity
	Kind   = ast.Kind
	Span   = ast.Span
	Params = ast.Params
)

const (
	KindText          = ast.Text
	KindLink          = ast.Link
	KindBold          = ast.Bold
	KindItalic        = ast.Italic
	KindSpoiler       = ast.Spoiler
	KindUnderline     = ast.Underline
	KindStrikethrough = ast.Strikethrough
	KindCode          = ast.Code
	KindEmoji         = ast.Emoji
	KindEmojiName     = ast.EmojiName
	KindCodeBlock     = ast.CodeBlock
	KindBlockquote    = ast.Blockquote
	KindColor         = ast.Color
	KindCustom        = ast.Custom
)

var (
	// ErrInvalidUTF8 reports input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrUnknownKind reports an entity kind name that does not exist or
	// cannot be disabled.
	ErrUnknownKind = errors.New("unknown entity kind")
	// ErrInvalidEgg reports a malformed "§" palette entry.
	ErrInvalidEgg = errors.New("invalid egg")
)

// Parse tokenizes text and resolves it into the root text entity, which
// always spans the whole text.
func Parse(text string) Entity {
	return parser.Build(text, lexer.Tokenize(text), parser.Options{})
}

// ParseBytes is Parse for a byte slice that has not been validated yet.
func ParseBytes(src []byte) (Entity, error) {
	if !utf8.Valid(src) {
		return Entity{}, ErrInvalidUTF8
	}
	return Parse(string(src)), nil
}

// Densify returns a copy of e in which every gap between entities is a text
// leaf, so that the tree partitions the input.
func Densify(e Entity) Entity {
	return ast.Densify(e)
}
