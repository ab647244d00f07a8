package parser

import (
	"github.com/Nertivia/markup/ast"
	"github.com/Nertivia/markup/internal/token"
)

// colorDirective opens a colour region. A reset first resolves colour over
// its own span and then opens a region with the value "reset".
func (b *builder) colorDirective(tok token.Token) {
	var value string
	switch tok.Kind {
	case token.Color:
		value = tok.Text[1 : len(tok.Text)-1]
	case token.Egg:
		v, ok := b.opts.Eggs[tok.Text[len(tok.Text)-1]]
		if !ok {
			return
		}
		value = v
	}

	if value == resetDirective {
		value = ResetColor
		b.resolveColor(tok.Span)
	}
	b.markers = append(b.markers, marker{kind: ast.Color, span: tok.Span, data: value})
}

// resolveColor closes the most recent colour marker that opened inside span,
// extending its region to span.End, then repeats on the part of span before
// that marker. Regions closed this way are siblings: each directive ends the
// one before it. Reports whether a marker was closed.
func (b *builder) resolveColor(span ast.Span) bool {
	i := -1
	for j := len(b.markers) - 1; j >= 0; j-- {
		m := b.markers[j]
		if m.kind == ast.Color && m.span.Start >= span.Start && m.span.End <= span.End {
			i = j
			break
		}
	}
	if i < 0 {
		return false
	}

	m := b.markers[i]
	inner := ast.Span{Start: m.span.End, End: span.End}
	outer := ast.Span{Start: m.span.Start, End: span.End}

	children := b.takeContained(outer, innerSpan)
	b.unwind(i)
	b.resolveColor(ast.Span{Start: span.Start, End: outer.Start})

	b.push(ast.Entity{
		Kind:      ast.Color,
		InnerSpan: inner,
		OuterSpan: outer,
		Children:  children,
		Params:    ast.Params{Color: m.data},
	})
	return true
}
