package emoji

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

const (
	// ZWJ joins emoji into a single sequence.
	ZWJ    = '\u200d'
	// VS16 requests emoji presentation for the preceding character.
	VS16   = '\ufe0f'
	// Keycap is the combining enclosing keycap.
	Keycap = '\u20e3'
	// TagEnd terminates an emoji tag sequence.
	TagEnd = '\U000e007f'
)

var extendedPictographic = [][2]rune{
	{0x00a9, 0x00a9}, {0x00ae, 0x00ae}, {0x203c, 0x203c}, {0x2049, 0x2049},
	{0x2122, 0x2122}, {0x2139, 0x2139}, {0x2194, 0x2199}, {0x21a9, 0x21aa},
	{0x231a, 0x231b}, {0x2328, 0x2328}, {0x2388, 0x2388}, {0x23cf, 0x23cf},
	{0x23e9, 0x23f3}, {0x23f8, 0x23fa}, {0x24c2, 0x24c2}, {0x25aa, 0x25ab},
	{0x25b6, 0x25b6}, {0x25c0, 0x25c0}, {0x25fb, 0x25fe}, {0x2600, 0x2605},
	{0x2607, 0x2612}, {0x2614, 0x2685}, {0x2690, 0x2705}, {0x2708, 0x2712},
	{0x2714, 0x2714}, {0x2716, 0x2716}, {0x271d, 0x271d}, {0x2721, 0x2721},
	{0x2728, 0x2728}, {0x2733, 0x2734}, {0x2744, 0x2744}, {0x2747, 0x2747},
	{0x274c, 0x274c}, {0x274e, 0x274e}, {0x2753, 0x2755}, {0x2757, 0x2757},
	{0x2763, 0x2767}, {0x2795, 0x2797}, {0x27a1, 0x27a1}, {0x27b0, 0x27b0},
	{0x27bf, 0x27bf}, {0x2934, 0x2935}, {0x2b05, 0x2b07}, {0x2b1b, 0x2b1c},
	{0x2b50, 0x2b50}, {0x2b55, 0x2b55}, {0x3030, 0x3030}, {0x303d, 0x303d},
	{0x3297, 0x3297}, {0x3299, 0x3299},
	{0x1f000, 0x1f0ff}, {0x1f10d, 0x1f10f}, {0x1f12f, 0x1f12f}, {0x1f16c, 0x1f171},
	{0x1f17e, 0x1f17f}, {0x1f18e, 0x1f18e}, {0x1f191, 0x1f19a}, {0x1f1ad, 0x1f1e5},
	{0x1f201, 0x1f20f}, {0x1f21a, 0x1f21a}, {0x1f22f, 0x1f22f}, {0x1f232, 0x1f23a},
	{0x1f23c, 0x1f23f}, {0x1f249, 0x1f3fa}, {0x1f400, 0x1f53d}, {0x1f546, 0x1f64f},
	{0x1f680, 0x1f6ff}, {0x1f774, 0x1f77f}, {0x1f7d5, 0x1f7ff}, {0x1f80c, 0x1f80f},
	{0x1f848, 0x1f84f}, {0x1f85a, 0x1f85f}, {0x1f888, 0x1f88f}, {0x1f8ae, 0x1f8ff},
	{0x1f90c, 0x1f93a}, {0x1f93c, 0x1f945}, {0x1f947, 0x1faff}, {0x1fc00, 0x1fffd},
}

var emojiPresentation = [][2]rune{
	{0x231a, 0x231b}, {0x23e9, 0x23ec}, {0x23f0, 0x23f0}, {0x23f3, 0x23f3},
	{0x25fd, 0x25fe}, {0x2614, 0x2615}, {0x2648, 0x2653}, {0x267f, 0x267f},
	{0x2693, 0x2693}, {0x26a1, 0x26a1}, {0x26aa, 0x26ab}, {0x26bd, 0x26be},
	{0x26c4, 0x26c5}, {0x26ce, 0x26ce}, {0x26d4, 0x26d4}, {0x26ea, 0x26ea},
	{0x26f2, 0x26f3}, {0x26f5, 0x26f5}, {0x26fa, 0x26fa}, {0x26fd, 0x26fd},
	{0x2705, 0x2705}, {0x270a, 0x270b}, {0x2728, 0x2728}, {0x274c, 0x274c},
	{0x274e, 0x274e}, {0x2753, 0x2755}, {0x2757, 0x2757}, {0x2795, 0x2797},
	{0x27b0, 0x27b0}, {0x27bf, 0x27bf}, {0x2b1b, 0x2b1c}, {0x2b50, 0x2b50},
	{0x2b55, 0x2b55},
	{0x1f004, 0x1f004}, {0x1f0cf, 0x1f0cf}, {0x1f18e, 0x1f18e}, {0x1f191, 0x1f19a},
	{0x1f1e6, 0x1f1ff}, {0x1f201, 0x1f201}, {0x1f21a, 0x1f21a}, {0x1f22f, 0x1f22f},
	{0x1f232, 0x1f236}, {0x1f238, 0x1f23a}, {0x1f250, 0x1f251}, {0x1f300, 0x1f320},
	{0x1f32d, 0x1f335}, {0x1f337, 0x1f37c}, {0x1f37e, 0x1f393}, {0x1f3a0, 0x1f3ca},
	{0x1f3cf, 0x1f3d3}, {0x1f3e0, 0x1f3f0}, {0x1f3f4, 0x1f3f4}, {0x1f3f8, 0x1f43e},
	{0x1f440, 0x1f440}, {0x1f442, 0x1f4fc}, {0x1f4ff, 0x1f53d}, {0x1f54b, 0x1f54e},
	{0x1f550, 0x1f567}, {0x1f57a, 0x1f57a}, {0x1f595, 0x1f596}, {0x1f5a4, 0x1f5a4},
	{0x1f5fb, 0x1f64f}, {0x1f680, 0x1f6c5}, {0x1f6cc, 0x1f6cc}, {0x1f6d0, 0x1f6d2},
	{0x1f6d5, 0x1f6d7}, {0x1f6dc, 0x1f6df}, {0x1f6eb, 0x1f6ec}, {0x1f6f4, 0x1f6fc},
	{0x1f7e0, 0x1f7eb}, {0x1f7f0, 0x1f7f0}, {0x1f90c, 0x1f93a}, {0x1f93c, 0x1f945},
	{0x1f947, 0x1f9ff}, {0x1fa70, 0x1fa7c}, {0x1fa80, 0x1fa88}, {0x1fa90, 0x1fabd},
	{0x1fabf, 0x1fac5}, {0x1face, 0x1fadb}, {0x1fae0, 0x1fae8}, {0x1faf0, 0x1faf8},
}

var modifierBase = [][2]rune{
	{0x261d, 0x261d}, {0x26f9, 0x26f9}, {0x270a, 0x270d}, {0x1f385, 0x1f385},
	{0x1f3c2, 0x1f3c4}, {0x1f3c7, 0x1f3c7}, {0x1f3ca, 0x1f3cc}, {0x1f442, 0x1f443},
	{0x1f446, 0x1f450}, {0x1f466, 0x1f478}, {0x1f47c, 0x1f47c}, {0x1f481, 0x1f483},
	{0x1f485, 0x1f487}, {0x1f48f, 0x1f48f}, {0x1f491, 0x1f491}, {0x1f4aa, 0x1f4aa},
	{0x1f574, 0x1f575}, {0x1f57a, 0x1f57a}, {0x1f590, 0x1f590}, {0x1f595, 0x1f596},
	{0x1f645, 0x1f647}, {0x1f64b, 0x1f64f}, {0x1f6a3, 0x1f6a3}, {0x1f6b4, 0x1f6b6},
	{0x1f6c0, 0x1f6c0}, {0x1f6cc, 0x1f6cc}, {0x1f90c, 0x1f90c}, {0x1f90f, 0x1f90f},
	{0x1f918, 0x1f91f}, {0x1f926, 0x1f926}, {0x1f930, 0x1f939}, {0x1f93c, 0x1f93e},
	{0x1f977, 0x1f977}, {0x1f9b5, 0x1f9b6}, {0x1f9b8, 0x1f9b9}, {0x1f9bb, 0x1f9bb},
	{0x1f9cd, 0x1f9cf}, {0x1f9d1, 0x1f9dd}, {0x1fac3, 0x1fac5}, {0x1faf0, 0x1faf8},
}

var (
	// ExtendedPictographic is the Extended_Pictographic property.
	ExtendedPictographic = build(extendedPictographic)
	// Presentation is the Emoji_Presentation property.
	Presentation         = build(emojiPresentation)
	// ModifierBase is the Emoji_Modifier_Base property.
	ModifierBase         = build(modifierBase)
	// Modifier is the Emoji_Modifier property (skin tones).
	Modifier             = build([][2]rune{{0x1f3fb, 0x1f3ff}})
	// RegionalIndicator is the Regional_Indicator property.
	RegionalIndicator    = build([][2]rune{{0x1f1e6, 0x1f1ff}})
	// KeycapBase are the characters that may start a keycap sequence.
	KeycapBase           = rangetable.New('#', '*', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9')
	// Tag are the tag characters of an emoji tag sequence, excluding TagEnd.
	Tag                  = build([][2]rune{{0xe0020, 0xe007e}})

	// Emoji approximates the Emoji property as the union of the sets above.
	Emoji = rangetable.Merge(ExtendedPictographic, Presentation, Modifier, RegionalIndicator, KeycapBase)
)

func build(ranges [][2]rune) *unicode.RangeTable {
	var runes []rune
	for _, r := range ranges {
		for c := r[0]; c <= r[1]; c++ {
			runes = append(runes, c)
		}
	}
	return rangetable.New(runes...)
}

// IsEmoji reports whether r has the Emoji property.
func IsEmoji(r rune) bool { return unicode.Is(Emoji, r) }

// IsPresentation reports whether r is displayed as emoji by default.
func IsPresentation(r rune) bool { return unicode.Is(Presentation, r) }

// IsPictographic reports whether r is Extended_Pictographic.
func IsPictographic(r rune) bool { return unicode.Is(ExtendedPictographic, r) }

// IsModifierBase reports whether r accepts a skin tone modifier.
func IsModifierBase(r rune) bool { return unicode.Is(ModifierBase, r) }

// IsModifier reports whether r is a skin tone modifier.
func IsModifier(r rune) bool { return unicode.Is(Modifier, r) }

// IsRegionalIndicator reports whether r is a regional indicator letter.
func IsRegionalIndicator(r rune) bool { return unicode.Is(RegionalIndicator, r) }

// IsKeycapBase reports whether r may start a keycap sequence.
func IsKeycapBase(r rune) bool { return unicode.Is(KeycapBase, r) }

// IsTag reports whether r is a tag character (U+E0020..U+E007E).
func IsTag(r rune) bool { return unicode.Is(Tag, r) }
