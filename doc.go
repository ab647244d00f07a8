// Package markup parses a lightweight inline markup dialect into a tree of
// typed, span-annotated entities.
//
// The dialect covers bold (**), italic (_, * or //), underline (__),
// strikethrough (~~), spoilers (||), inline code (` or ``), code blocks
// (```lang), blockquote lines ("> "), custom expressions ([label: ...]),
// emoji and :shortcodes:, bare and <bracketed> links, and colour directives
// ([#f00], [#reset] and the legacy §0-§f, §r shorthand).
//
// Parsing never fails on valid UTF-8: delimiters that find no partner are
// left as plain text. The result is a root text entity covering the whole
// input whose descendants carry byte offsets into it:
//
//	text := "hello **world**"
//	root := markup.Parse(text)
//	for _, leaf := range ast.Leaves(text, markup.Densify(root)) { ... }
//
// Parse returns the sparse tree, in which plain text between entities has
// no node of its own; Densify fills every gap with a text leaf. A Parser
// adds options, tracing and parallel batch parsing on top of the same
// pipeline.
package markup
