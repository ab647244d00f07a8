package token

import "strconv"

// Kind represents the category of a markup token.
type Kind uint8

const (
	// Invalid is the zero Kind; the lexer never produces it.
	Invalid Kind = iota

	// Escape represents a backslash followed by one markup character.
	Escape // \* \/ \_ \~ \` \[ \] \\
	// Bold represents the bold delimiter.
	Bold // **
	// Underline represents the underline delimiter.
	Underline // __
	// Italic represents one of the three italic spellings.
	Italic // _ * //
	// Strikethrough represents the strikethrough delimiter.
	Strikethrough // ~~
	// CodeBlock represents a code block fence.
	CodeBlock // ```
	// Code represents an inline code fence of one or two backticks.
	Code // ` ``
	// Spoiler represents the spoiler delimiter.
	Spoiler // ||
	// Link represents a bare http(s) URL.
	Link // https://example.com
	// LinkContained represents a URL wrapped in angle brackets.
	LinkContained // <https://example.com>
	// Emoji represents one emoji grapheme cluster.
	Emoji
	// Color represents a hex or reset colour directive.
	Color // [#f00] [#ff0000] [#reset]
	// CustomStart opens a custom expression.
	CustomStart // [label:
	// CustomEnd closes a custom expression.
	CustomEnd // ]
	// EmojiName represents an emoji shortcode.
	EmojiName // :name:
	// Newline represents a line break.
	Newline // \n \r\n
	// Egg represents the legacy colour shorthand.
	Egg // §0 .. §f §r
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	Escape:        "Escape",
	Bold:          "Bold",
	Underline:     "Underline",
	Italic:        "Italic",
	Strikethrough: "Strikethrough",
	CodeBlock:     "CodeBlock",
	Code:          "Code",
	Spoiler:       "Spoiler",
	Link:          "Link",
	LinkContained: "LinkContained",
	Emoji:         "Emoji",
	Color:         "Color",
	CustomStart:   "CustomStart",
	CustomEnd:     "CustomEnd",
	EmojiName:     "EmojiName",
	Newline:       "Newline",
	Egg:           "Egg",
}

// String returns the Go name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
