package parser

import (
	"slices"
	"strings"

	"github.com/Nertivia/markup/ast"
)

const quotePrefix = "> "

// line handles a line boundary: the start of the text, a newline token, or
// the end of the text. nl is the boundary's span.
//
// An open blockquote continues while the following line starts with "> "
// and closes at the first line that does not. With no blockquote open, a
// following "> " line opens one whose marker covers the boundary and prefix.
//
// Newlines inside inline code, code blocks and custom expressions are
// consumed with their construct and are not boundaries, so a blockquote
// runs across an unquoted line whose break is inside such a span.
func (b *builder) line(nl ast.Span) {
	if b.opts.NoBlockquote {
		return
	}
	quoted := strings.HasPrefix(b.text[nl.End:], quotePrefix)

	if i := slices.IndexFunc(b.markers, isBlockquote); i >= 0 {
		m := b.markers[i]
		inner := ast.Span{Start: m.span.End, End: nl.Start}
		// colour never runs past the end of a quoted line
		b.resolveColor(inner)
		if quoted {
			return
		}

		outer := ast.Span{Start: m.span.Start, End: nl.End}
		children := b.takeContained(outer, outerSpan)
		b.unwind(i)
		b.push(ast.Entity{
			Kind:      ast.Blockquote,
			InnerSpan: inner,
			OuterSpan: outer,
			Children:  children,
		})
		return
	}

	if !quoted {
		return
	}
	// colour before the quote ends with the previous line, newline excluded
	b.resolveColor(ast.Span{Start: b.lastEnd(), End: nl.Start})
	b.markers = append(b.markers, marker{
		kind: ast.Blockquote,
		span: ast.Span{Start: nl.Start, End: nl.End + offset(len(quotePrefix))},
	})
}

func isBlockquote(m marker) bool {
	return m.kind == ast.Blockquote
}
