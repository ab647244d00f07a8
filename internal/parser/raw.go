package parser

import (
	"regexp"
	"slices"

	"github.com/Nertivia/markup/ast"
	"github.com/Nertivia/markup/internal/token"
)

// langRe matches the language tag line right after a code block fence.
var langRe = regexp.MustCompile(`^(\w*)\r?\n`)

// closing returns the index of the first token after b.pos accepted by ok,
// or -1.
func (b *builder) closing(ok func(token.Token) bool) int {
	i := slices.IndexFunc(b.toks[b.pos+1:], ok)
	if i < 0 {
		return -1
	}
	return b.pos + 1 + i
}

// escapes turns the escape tokens strictly between b.pos and end into text
// leaves. Nothing else inside raw content is markup.
func (b *builder) escapes(end int) []ast.Entity {
	var out []ast.Entity
	for _, t := range b.toks[b.pos+1 : end] {
		if t.Kind == token.Escape {
			out = append(out, escapeLeaf(t))
		}
	}
	return out
}

// raw handles the fences whose content is not scanned for markup.
func (b *builder) raw(tok token.Token) {
	switch tok.Kind {
	case token.Code:
		b.code(tok)
	case token.CodeBlock:
		b.codeBlock(tok)
	case token.CustomStart:
		b.custom(tok)
	}
}

// code matches a fence of one or two backticks with the next fence of the
// same length. An unmatched fence is plain text. Inline code leaves colour
// regions open.
func (b *builder) code(tok token.Token) {
	j := b.closing(func(t token.Token) bool {
		return t.Kind == token.Code && t.Text == tok.Text
	})
	if j < 0 {
		return
	}
	end := b.toks[j]
	b.push(ast.Entity{
		Kind:      ast.Code,
		InnerSpan: ast.Span{Start: tok.Span.End, End: end.Span.Start},
		OuterSpan: tok.Span.Cover(end.Span),
		Children:  b.escapes(j),
	})
	b.pos = j
}

// codeBlock matches a triple-backtick fence with the next one. A word run
// ending its line right after the opening fence is the language tag.
func (b *builder) codeBlock(tok token.Token) {
	j := b.closing(func(t token.Token) bool {
		return t.Kind == token.CodeBlock
	})
	if j < 0 {
		return
	}
	end := b.toks[j]

	innerStart := tok.Span.End
	var lang *string
	if m := langRe.FindStringSubmatch(b.text[tok.Span.End:]); m != nil {
		lang = ast.Lang(m[1])
		innerStart += offset(len(m[0]))
	}

	b.resolveColor(ast.Span{Start: b.lastEnd(), End: tok.Span.Start})
	b.push(ast.Entity{
		Kind:      ast.CodeBlock,
		InnerSpan: ast.Span{Start: innerStart, End: end.Span.Start},
		OuterSpan: tok.Span.Cover(end.Span),
		Children:  b.escapes(j),
		Params:    ast.Params{Lang: lang},
	})
	b.pos = j
}

// custom matches "[label:" with the next "]". The label becomes the custom
// kind; an unmatched opener is plain text.
func (b *builder) custom(tok token.Token) {
	j := b.closing(func(t token.Token) bool {
		return t.Kind == token.CustomEnd
	})
	if j < 0 {
		return
	}
	end := b.toks[j]

	b.resolveColor(ast.Span{Start: b.lastEnd(), End: tok.Span.Start})
	b.push(ast.Entity{
		Kind:      ast.Custom,
		InnerSpan: ast.Span{Start: tok.Span.End, End: end.Span.Start},
		OuterSpan: tok.Span.Cover(end.Span),
		Children:  b.escapes(j),
		Params:    ast.Params{CustomKind: tok.Text[1 : len(tok.Text)-1]},
	})
	b.pos = j
}
