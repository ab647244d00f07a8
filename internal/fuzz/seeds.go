package fuzztests

import "testing"

const maxSeedBytes = 64 << 10 // 64 KiB

// markupSeeds touches every construct at least once, plus the edge cases
// around nesting, raw content and line handling.
var markupSeeds = []string{
	"",
	"plain text",
	"**bold** __underline__ _italic_ *italic* //italic// ~~strike~~ ||spoiler||",
	"**a _b** c_",
	"**a **b** c**",
	"`code **not bold**` ``two `ticks``` ```go\nfunc main() {}\n```",
	"```\r\ncrlf\r\n```",
	"\\*escaped\\* \\` \\[ \\]",
	"https://example.com/path?q=1 <https://example.com> (https://x.y/z)",
	"http://x",
	"✨ 👍🏽 👨‍👩‍👧 🇳🇱 1️⃣ 🏴󠁧󠁢󠁳󠁣󠁴󠁿 ©",
	":smile: :not a name: ::",
	"[#f00]red [#FF0011]also [#reset]none [#ff]",
	"§6gold §rreset §zmissing",
	"[@:user] [!: b **c** ] [unclosed: x",
	"> quote\n> more\nplain\n> again",
	"> **bold\n> still** [#0f0]green\n",
	"\r\n\n\r",
	"a\xffb\xc3",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range markupSeeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
