package lexer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Nertivia/markup/internal/token"
)

// pattern is one alternative of the token grammar. match returns the byte
// length of the token at the start of s, or 0 when the alternative does not
// apply there.
type pattern struct {
	kind  token.Kind
	match func(s string) int
}

const (
	// non-space run, a dot, then the URL-safe tail; trailing punctuation such
	// as ")" is left out by backtracking.
	urlBody  = `[^\s\x0b\p{Z}\x{feff}]+\.[\p{L}\p{M}\p{Nl}0-9/\\#?=+&%@!;:._~-]+`
	hexDigit = `[0-9A-Fa-f\x{ff10}-\x{ff19}\x{ff21}-\x{ff26}\x{ff41}-\x{ff46}]`

	escapable = "\\*/_~`[]"
)

var (
	linkRe          = regexp.MustCompile(`^https?://` + urlBody)
	linkContainedRe = regexp.MustCompile(`^<https?://` + urlBody + `>`)
	colorRe         = regexp.MustCompile(`^\[#(?:` + hexDigit + `{3}|` + hexDigit + `{6}|reset)\]`)
	customStartRe   = regexp.MustCompile(`^\[(?:[^\n\r\x{2028}\x{2029}]|[\p{L}\p{N}!-/_]+):`)
	emojiNameRe     = regexp.MustCompile(`^:\w+:`)
)

// patterns lists the alternatives in priority order: at a given position the
// first one that matches wins.
var patterns = [...]pattern{
	{token.Escape, matchEscape},
	{token.Bold, literal("**")},
	{token.Underline, literal("__")},
	{token.Italic, literal("_", "*", "//")},
	{token.Strikethrough, literal("~~")},
	{token.CodeBlock, literal("```")},
	{token.Code, literal("``", "`")},
	{token.Spoiler, literal("||")},
	{token.Link, re(linkRe)},
	{token.LinkContained, re(linkContainedRe)},
	{token.Emoji, matchEmoji},
	{token.Color, re(colorRe)},
	{token.CustomStart, re(customStartRe)},
	{token.CustomEnd, literal("]")},
	{token.EmojiName, re(emojiNameRe)},
	{token.Newline, literal("\r\n", "\n")},
	{token.Egg, matchEgg},
}

// triggers marks the bytes a token can start with. Everything else is plain
// text and skipped without trying the pattern table.
var triggers = func() (t [256]bool) {
	for _, b := range []byte("\\*_/~`|h<[]:\r\n#0123456789") {
		t[b] = true
	}
	for b := utf8.RuneSelf; b < len(t); b++ {
		t[b] = true
	}
	return t
}()

func literal(alts ...string) func(string) int {
	return func(s string) int {
		for _, a := range alts {
			if strings.HasPrefix(s, a) {
				return len(a)
			}
		}
		return 0
	}
}

func re(r *regexp.Regexp) func(string) int {
	return func(s string) int {
		loc := r.FindStringIndex(s)
		if loc == nil {
			return 0
		}
		return loc[1]
	}
}

func matchEscape(s string) int {
	if len(s) >= 2 && s[0] == '\\' && strings.IndexByte(escapable, s[1]) >= 0 {
		return 2
	}
	return 0
}

const eggSign = "§"

func matchEgg(s string) int {
	if !strings.HasPrefix(s, eggSign) || len(s) <= len(eggSign) {
		return 0
	}
	c := s[len(eggSign)]
	if ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || c == 'r' {
		return len(eggSign) + 1
	}
	return 0
}
