package ast

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Kind is the entity variant.
type Kind uint8

const (
	Text Kind = iota
	Link
	Bold
	Italic
	Spoiler
	Underline
	Strikethrough
	Code
	Emoji
	EmojiName
	CodeBlock
	Blockquote
	Color
	Custom
)

var kindNames = [...]string{
	Text:          "text",
	Link:          "link",
	Bold:          "bold",
	Italic:        "italic",
	Spoiler:       "spoiler",
	Underline:     "underline",
	Strikethrough: "strikethrough",
	Code:          "code",
	Emoji:         "emoji",
	EmojiName:     "emoji_name",
	CodeBlock:     "codeblock",
	Blockquote:    "blockquote",
	Color:         "color",
	Custom:        "custom",
}

// String returns the wire name of the kind ("emoji_name", "codeblock", ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind converts a wire name back to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return Text, fmt.Errorf("unknown entity kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown entity kind %d", k)
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

var (
	_ msgpack.CustomEncoder = Kind(0)
	_ msgpack.CustomDecoder = (*Kind)(nil)
)

// EncodeMsgpack writes the kind by name so decoders in other languages need no enum table.
func (k Kind) EncodeMsgpack(enc *msgpack.Encoder) error {
	b, err := k.MarshalText()
	if err != nil {
		return err
	}
	return enc.EncodeString(string(b))
}

func (k *Kind) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return k.UnmarshalText([]byte(s))
}
