package lexer

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/Nertivia/markup/internal/emoji"
)

// matchEmoji matches one emoji at the start of s. The candidate never extends
// past the first extended grapheme cluster; inside it the longest of these
// forms wins, in order: tag sequence, ZWJ sequence, regional indicator pair,
// modifier pair, keycap, emoji + VS16, single presentation or pictographic rune.
func matchEmoji(s string) int {
	r, _ := utf8.DecodeRuneInString(s)
	if !emoji.IsEmoji(r) {
		return 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	rs := []rune(cluster)
	n := emojiSequence(rs)
	size := 0
	for _, r := range rs[:n] {
		size += utf8.RuneLen(r)
	}
	return size
}

// emojiSequence returns how many runes of rs form an emoji, 0 if none.
func emojiSequence(rs []rune) int {
	if n := tagSequence(rs); n > 0 {
		return n
	}
	if n := zwjSequence(rs); n > 0 {
		return n
	}
	switch {
	case len(rs) >= 2 && emoji.IsRegionalIndicator(rs[0]) && emoji.IsRegionalIndicator(rs[1]):
		return 2
	case len(rs) >= 2 && emoji.IsModifierBase(rs[0]) && emoji.IsModifier(rs[1]):
		return 2
	case len(rs) >= 3 && emoji.IsKeycapBase(rs[0]) && rs[1] == emoji.VS16 && rs[2] == emoji.Keycap:
		return 3
	case len(rs) >= 2 && emoji.IsEmoji(rs[0]) && rs[1] == emoji.VS16:
		return 2
	case len(rs) >= 1 && (emoji.IsPresentation(rs[0]) || emoji.IsPictographic(rs[0])):
		return 1
	}
	return 0
}

// element returns the end of the emoji element starting at i, or i itself.
func element(rs []rune, i int) int {
	switch {
	case i >= len(rs):
		return i
	case i+1 < len(rs) && emoji.IsModifierBase(rs[i]) && emoji.IsModifier(rs[i+1]):
		return i + 2
	case i+1 < len(rs) && emoji.IsEmoji(rs[i]) && rs[i+1] == emoji.VS16:
		return i + 2
	case emoji.IsEmoji(rs[i]):
		return i + 1
	}
	return i
}

// tagSequence matches element tag+ cancel-tag, e.g. subdivision flags.
func tagSequence(rs []rune) int {
	i := element(rs, 0)
	if i == 0 {
		return 0
	}
	j := i
	for j < len(rs) && emoji.IsTag(rs[j]) {
		j++
	}
	if j == i || j >= len(rs) || rs[j] != emoji.TagEnd {
		return 0
	}
	return j + 1
}

// zwjSequence matches element (ZWJ element)+.
func zwjSequence(rs []rune) int {
	i := element(rs, 0)
	if i == 0 {
		return 0
	}
	joined := false
	for i < len(rs) && rs[i] == emoji.ZWJ {
		next := element(rs, i+1)
		if next == i+1 {
			break
		}
		i = next
		joined = true
	}
	if !joined {
		return 0
	}
	return i
}
