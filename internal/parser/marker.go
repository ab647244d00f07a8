package parser

import (
	"slices"

	"github.com/Nertivia/markup/ast"
	"github.com/Nertivia/markup/internal/token"
	"github.com/Nertivia/markup/internal/trace"
)

// marker is an opening delimiter still waiting for its partner.
type marker struct {
	kind ast.Kind // Bold, Italic, Underline, Strikethrough, Spoiler, Blockquote or Color
	span ast.Span // the opening delimiter
	data string   // delimiter spelling, or the colour value
}

var delimiterKinds = map[token.Kind]ast.Kind{
	token.Bold:          ast.Bold,
	token.Italic:        ast.Italic,
	token.Underline:     ast.Underline,
	token.Strikethrough: ast.Strikethrough,
	token.Spoiler:       ast.Spoiler,
}

// delimiter closes the open marker with the same kind and spelling, or opens
// a new one. "_", "*" and "//" are all italic but only close themselves.
func (b *builder) delimiter(tok token.Token) {
	kind := delimiterKinds[tok.Kind]
	i := slices.IndexFunc(b.markers, func(m marker) bool {
		return m.kind == kind && m.data == tok.Text
	})
	if i < 0 {
		b.markers = append(b.markers, marker{kind: kind, span: tok.Span, data: tok.Text})
		return
	}

	m := b.markers[i]
	inner := ast.Span{Start: m.span.End, End: tok.Span.Start}
	outer := m.span.Cover(tok.Span)

	b.resolveColor(inner)
	children := b.takeContained(outer, innerSpan)
	b.unwind(i)
	b.push(ast.Entity{
		Kind:      kind,
		InnerSpan: inner,
		OuterSpan: outer,
		Children:  children,
	})
}

// unwind pops the marker at i together with every marker pushed after it.
// Those later markers can no longer close without crossing the entity that
// is being closed.
func (b *builder) unwind(i int) {
	b.drop("unwound", b.markers[i+1:])
	b.markers = b.markers[:i]
}

// drop reports discarded markers to the tracer.
func (b *builder) drop(reason string, ms []marker) {
	if !b.tracing {
		return
	}
	for _, m := range ms {
		extra := map[string]string{"span": m.span.String()}
		if m.data != "" {
			extra["data"] = m.data
		}
		trace.Point(b.opts.Tracer, trace.ScopeMarker, reason, m.kind.String(), b.opts.TraceParent, extra)
	}
}
