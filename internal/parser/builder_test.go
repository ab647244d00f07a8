package parser_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nertivia/markup/ast"
	"github.com/Nertivia/markup/internal/lexer"
	"github.com/Nertivia/markup/internal/parser"
	"github.com/Nertivia/markup/internal/testkit"
	"github.com/Nertivia/markup/internal/token"
)

func TestBuildNestedDelimiters(t *testing.T) {
	text := "__~~**//italic bold  ``code`` strikethrough underline//**~~__"
	want := ent(ast.Text, sp(0, 61), sp(0, 61),
		ent(ast.Underline, sp(2, 59), sp(0, 61),
			ent(ast.Strikethrough, sp(4, 57), sp(2, 59),
				ent(ast.Bold, sp(6, 55), sp(4, 57),
					ent(ast.Italic, sp(8, 53), sp(6, 55),
						ent(ast.Code, sp(23, 27), sp(21, 29)),
					),
				),
			),
		),
	)
	got := parse(text)
	require.Equal(t, want, got, ast.Sprint(text, got))
}

func TestBuildComplexBlockquote(t *testing.T) {
	text := "> blockquote **bold //italic bold// bold** __underline__ ** <- unmatched marker should be safely ignored ``code//not italic because code//`` trailing text"
	want := ent(ast.Text, sp(0, 154), sp(0, 154),
		ent(ast.Blockquote, sp(2, 154), sp(0, 154),
			ent(ast.Bold, sp(15, 40), sp(13, 42),
				ent(ast.Italic, sp(22, 33), sp(20, 35)),
			),
			ent(ast.Underline, sp(45, 54), sp(43, 56)),
			ent(ast.Code, sp(107, 138), sp(105, 140)),
		),
	)
	got := parse(text)
	require.Equal(t, want, got, ast.Sprint(text, got))
}

func TestBuildBlockquoteStopsAtUnquotedLine(t *testing.T) {
	text := "\n> a blockquote!\n    > not a blockquote\n  "
	want := ent(ast.Text, sp(0, 42), sp(0, 42),
		ent(ast.Blockquote, sp(3, 16), sp(0, 17)),
	)
	got := parse(text)
	require.Equal(t, want, got, ast.Sprint(text, got))
}

func TestBuildBlockquoteContinues(t *testing.T) {
	text := "\n> hello world!\n> hello world 2!"
	want := ent(ast.Text, sp(0, 32), sp(0, 32),
		ent(ast.Blockquote, sp(3, 32), sp(0, 32)),
	)
	got := parse(text)
	require.Equal(t, want, got, ast.Sprint(text, got))
}

func TestBuildBlockquoteSpansRawNewline(t *testing.T) {
	// the break after "a" is inside the code span, so "b` c" is still quoted
	text := "> `a\nb` c\nd"
	want := ent(ast.Text, sp(0, 11), sp(0, 11),
		ent(ast.Blockquote, sp(2, 9), sp(0, 10),
			ent(ast.Code, sp(3, 6), sp(2, 7)),
		),
	)
	got := parse(text)
	require.Equal(t, want, got, ast.Sprint(text, got))

	text = "a*\n> `\\]\n`\n> ````js\n"
	got = parse(text)
	require.NoError(t, testkit.CheckTree(text, got))
	require.Equal(t, "text[\"a*\", blockquote[code[\"]\", \"\\n\"], \"\\n> ````js\"]]",
		shape(text, ast.Densify(got)), ast.Sprint(text, got))
}

func TestBuildUnmatchedDecaysToText(t *testing.T) {
	for _, text := range []string{"", "abc ]", "_hello world!*", "** a", "``a`", "[a: b", "```language\nhello"} {
		got := parse(text)
		require.Equal(t, ast.Leaf(ast.Text, ast.SpanOf(0, len(text))), got, "input %q:\n%s", text, ast.Sprint(text, got))
	}
}

func TestBuildDensifiedShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello world!", `"hello world!"`},
		{"bold", "**hello world!**", `text[bold["hello world!"]]`},
		{"italic slashes", "//hello world!//", `text[italic["hello world!"]]`},
		{"italic asterisk", "*hello world!*", `text[italic["hello world!"]]`},
		{"italic underscore", "_hello world!_", `text[italic["hello world!"]]`},
		{"italic mixed", "_hello world!*", `"_hello world!*"`},
		{"underline", "__hello world!__", `text[underline["hello world!"]]`},
		{"strikethrough", "~~hello world!~~", `text[strikethrough["hello world!"]]`},
		{"spoiler", "hello ||secret|| world", `text["hello ", spoiler["secret"], " world"]`},
		{"code", "``hello world!``", `text[code["hello world!"]]`},
		{"code single", "`hello world!`", `text[code["hello world!"]]`},
		{"code mixed open", "``hello world!`", `"` + "``hello world!`" + `"`},
		{"code mixed close", "`hello world!``", `"` + "`hello world!``" + `"`},
		{"codeblocks", "```\nhello world!\n```\n\n```language\nhello world!\n```",
			`text[codeblock(lang="")["hello world!\n"], "\n\n", codeblock(lang="language")["hello world!\n"]]`},
		{"codeblock crlf tag", "```go\r\nx```", `text[codeblock(lang="go")["x"]]`},
		{"blockquote inline", "> hello world!", `text[blockquote["hello world!"]]`},
		{"blockquote line", "\n> hello world!\n", `text[blockquote["hello world!"]]`},
		{"blockquote lines", "\n> hello world!\n> hello world 2!", `text[blockquote["hello world!\n> hello world 2!"]]`},
		{"blockquote bold", "> **hello world!**", `text[blockquote[bold["hello world!"]]]`},
		{"blockquote disabled by indentation", "  > hi", `"  > hi"`},
		{"custom", "[name: hello world!]", `text[custom(name)[" hello world!"]]`},
		{"custom symbol", "[@: hello world!]", `text[custom(@)[" hello world!"]]`},
		{"escape", `\[@: hello world!]`, `text["[", "@: hello world!]"]`},
		{"escape in code", "`` hello \\`` world! ``", "text[code[\" hello \", \"`\", \"` world! \"]]"},
		{"escape in codeblock", "``` hello \\``` world! ```", "text[codeblock(lang=nil)[\" hello \", \"`\", \"`` world! \"]]"},
		{"escape in custom", `[name: hello \] world! ]`, `text[custom(name)[" hello ", "]", " world! "]]`},
		{"emoji", "hello ✨ world", `text["hello ", emoji["✨"], " world"]`},
		{"emoji name", "hello :sparkles: world", `text["hello ", emoji_name["sparkles"], " world"]`},
		{"link", "hello https://example.com world", `text["hello ", link["https://example.com"], " world"]`},
		{"link contained", "hello <https://example.com> world", `text["hello ", link["https://example.com"], " world"]`},
		{"link trailing paren", "hello https://example.com) world", `text["hello ", link["https://example.com"], ") world"]`},
		{"link query", "hello https://example.com/example?example=123) world",
			`text["hello ", link["https://example.com/example?example=123"], ") world"]`},
		{"link hash", "hello https://example.com/example#123) world",
			`text["hello ", link["https://example.com/example#123"], ") world"]`},
		{"color", "hello [#f00] red world", `text["hello ", color(#f00)[" red world"]]`},
		{"color in scope", "hello **[#f00] red** world", `text["hello ", bold[color(#f00)[" red"]], " world"]`},
		{"color reset", "hello **[#f00] red [#reset] not red** world",
			`text["hello ", bold[color(#f00)[" red "], color(reset)[" not red"]], " world"]`},
		{"color ends with blockquote", "> [#f00] hello red world\nnot red",
			`text[blockquote[color(#f00)[" hello red world"]], "not red"]`},
		{"color around blockquote", "[#f01] hello red [#reset] not red\n> [#f02] hello red [#reset] not red world\nno style",
			`text[color(#f01)[" hello red "], color(reset)[" not red"], blockquote[color(#f02)[" hello red "], color(reset)[" not red world"]], "no style"]`},
		{"color before crlf blockquote", "a [#f00] b\r\n> c", `text["a ", color(#f00)[" b"], blockquote["c"]]`},
		{"color layers", "[#f01] 1 [#f02] 2 [#f03] 3 ",
			`text[color(#f01)[" 1 "], color(#f02)[" 2 "], color(#f03)[" 3 "]]`},
		{"color and codeblock", "[#f01] 1 ```2```[#f03] 3",
			`text[color(#f01)[" 1 "], codeblock(lang=nil)["2"], color(#f03)[" 3"]]`},
		{"color and code", "[#f01] 1 `2` 3 [#f04] 4 [#f05] 5",
			`text[color(#f01)[" 1 ", code["2"], " 3 ", color(#f04)[" 4 "], color(#f05)[" 5"]]]`},
		{"color and custom", "[#f01] 1 [test: hello world!]",
			`text[color(#f01)[" 1 "], custom(test)[" hello world!"]]`},
		{"color over entities", "**bold** [#ff0011] **test `code`**",
			`text[bold["bold"], " ", color(#ff0011)[" ", bold["test ", code["code"]]]]`},
		{"eggs", "§0 1 §r 2 §k 3", `text[color(#000)[" 1 "], color(reset)[" 2 §k 3"]]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(tt.input)
			require.NoError(t, testkit.CheckTree(tt.input, tree), ast.Sprint(tt.input, tree))
			dense := ast.Densify(tree)
			require.NoError(t, testkit.CheckCoverage(dense), ast.Sprint(tt.input, dense))
			require.Equal(t, tt.want, shape(tt.input, dense), ast.Sprint(tt.input, dense))
		})
	}
}

func TestBuildEmojiSequences(t *testing.T) {
	const (
		flag   = "\U0001F3F3\uFE0F\u200D\U0001F308"
		keycap = "1\uFE0F\u20E3"
		wave   = "\U0001F44B\U0001F3FD"
	)
	text := "hello " + flag + keycap + wave + " 1 world"
	want := `text["hello ", emoji[` + strconv.Quote(flag) + `], emoji[` + strconv.Quote(keycap) +
		`], emoji[` + strconv.Quote(wave) + `], " 1 world"]`
	require.Equal(t, want, shape(text, ast.Densify(parse(text))))
}

func TestBuildLeaves(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"1__2**3**4__5", []string{"1", "2", "3", "4", "5"}},
		{"> 1__2__3\n4 ```not\n5\n``` 6\n7", []string{"1", "2", "3", "4 ", "5\n", " 6\n7"}},
		{"```js\nlet x = 0;\n```\n\n```\njust text\n```", []string{"let x = 0;\n", "\n\n", "just text\n"}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ast.Leaves(tt.input, ast.Densify(parse(tt.input))), "input %q", tt.input)
	}
}

func TestBuildCodeBlockLang(t *testing.T) {
	text := "```js\nlet x = 0;\n```"
	got := parse(text)
	require.Len(t, got.Children, 1)
	cb := got.Children[0]
	require.Equal(t, ast.CodeBlock, cb.Kind)
	require.NotNil(t, cb.Params.Lang)
	require.Equal(t, "js", *cb.Params.Lang)
	require.Equal(t, sp(6, 17), cb.InnerSpan)
	require.Equal(t, sp(0, 20), cb.OuterSpan)
}

func TestBuildStackUnwinding(t *testing.T) {
	// the italic opened inside the bold can no longer close once bold closes
	text := "**a _b** c_"
	got := parse(text)
	want := ent(ast.Text, sp(0, 11), sp(0, 11),
		ent(ast.Bold, sp(2, 6), sp(0, 8)),
	)
	require.Equal(t, want, got, ast.Sprint(text, got))
}

func TestBuildCustomSwallowsClosers(t *testing.T) {
	text := "**[a: x** y]"
	got := parse(text)
	want := ent(ast.Text, sp(0, 12), sp(0, 12),
		ast.Entity{Kind: ast.Custom, InnerSpan: sp(5, 11), OuterSpan: sp(2, 12), Params: ast.Params{CustomKind: "a"}},
	)
	require.Equal(t, want, got, ast.Sprint(text, got))
}

func TestBuildNoBlockquote(t *testing.T) {
	text := "> **hi**"
	got := parser.Build(text, lexer.Tokenize(text), parser.Options{NoBlockquote: true})
	want := ent(ast.Text, sp(0, 8), sp(0, 8),
		ent(ast.Bold, sp(4, 6), sp(2, 8)),
	)
	require.Equal(t, want, got, ast.Sprint(text, got))
}

func TestBuildCustomEggs(t *testing.T) {
	text := "§6x§0y"
	got := parser.Build(text, lexer.Tokenize(text), parser.Options{Eggs: map[byte]string{'6': "#FFAA00"}})
	require.Equal(t, `text[color(#FFAA00)["x§0y"]]`, shape(text, ast.Densify(got)))
}

func TestDefaultEggsIsCopy(t *testing.T) {
	eggs := parser.DefaultEggs()
	require.Len(t, eggs, 17)
	require.Equal(t, "#reset", eggs['r'])
	eggs['0'] = "#123"
	require.Equal(t, "#000", parser.DefaultEggs()['0'])
}

func TestBuildPanicsOnInvalidTokens(t *testing.T) {
	require.Panics(t, func() {
		parser.Build("a", []token.Token{{Kind: token.Invalid, Span: sp(0, 1), Text: "a"}}, parser.Options{})
	})
	require.Panics(t, func() {
		parser.Build("ab", []token.Token{{Kind: token.Bold, Span: sp(1, 1)}}, parser.Options{})
	})
	require.Panics(t, func() {
		parser.Build("ab", []token.Token{{Kind: token.Bold, Span: sp(1, 3), Text: "**"}}, parser.Options{})
	})
}
