package parser

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/Nertivia/markup/ast"
	"github.com/Nertivia/markup/internal/token"
	"github.com/Nertivia/markup/internal/trace"
)

// builder is the state of one Build call.
type builder struct {
	text     string
	toks     []token.Token
	pos      int          // index of the token being handled
	markers  []marker     // open markers, most recent last
	entities []ast.Entity // resolved entities at the current level
	opts     Options
	tracing  bool // marker events are emitted
}

// Build resolves toks, produced by tokenizing text, into the root text
// entity. The root always spans the whole text; markers left open at the
// end are discarded.
func Build(text string, toks []token.Token, opts Options) ast.Entity {
	if opts.Eggs == nil {
		opts.Eggs = defaultEggs
	}
	b := builder{
		text:    text,
		toks:    toks,
		opts:    opts,
		tracing: opts.Tracer != nil && opts.Tracer.Level().ShouldEmit(trace.ScopeMarker),
	}
	return b.build()
}

func (b *builder) build() ast.Entity {
	end := offset(len(b.text))

	b.line(ast.Span{})
	for b.pos = 0; b.pos < len(b.toks); b.pos++ {
		b.dispatch(b.toks[b.pos])
	}
	b.line(ast.Span{Start: end, End: end})

	// the tail after the last entity first, then whatever still spans the
	// whole text
	b.resolveColor(ast.Span{Start: b.lastEnd(), End: end})
	if len(b.entities) > 0 {
		b.resolveColor(ast.Span{Start: 0, End: end})
	}
	b.drop("unmatched", b.markers)
	b.markers = nil

	root := ast.Leaf(ast.Text, ast.SpanOf(0, len(b.text)))
	root.Children = b.entities
	return root
}

func (b *builder) dispatch(tok token.Token) {
	if tok.Span.End <= tok.Span.Start || int(tok.Span.End) > len(b.text) {
		panic(fmt.Errorf("token %s has invalid span %s", tok.Kind, tok.Span))
	}

	switch {
	case tok.IsDelimiter():
		b.delimiter(tok)
	case tok.IsColor():
		b.colorDirective(tok)
	case tok.IsRawFence():
		b.raw(tok)
	default:
		b.inline(tok)
	}
}

func (b *builder) inline(tok token.Token) {
	switch tok.Kind {
	case token.Newline:
		b.line(tok.Span)
	case token.CustomEnd:
		// a close without an open is plain text
	case token.Emoji:
		b.push(ast.Leaf(ast.Emoji, tok.Span))
	case token.EmojiName:
		b.push(ast.Entity{Kind: ast.EmojiName, InnerSpan: shrink(tok.Span), OuterSpan: tok.Span})
	case token.Link:
		b.push(ast.Leaf(ast.Link, tok.Span))
	case token.LinkContained:
		b.push(ast.Entity{Kind: ast.Link, InnerSpan: shrink(tok.Span), OuterSpan: tok.Span})
	case token.Escape:
		b.push(escapeLeaf(tok))
	default:
		panic(fmt.Errorf("unhandled token kind %s at %s", tok.Kind, tok.Span))
	}
}

// offset converts a byte length to a span offset.
func offset(n int) uint32 {
	off, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return off
}

func (b *builder) push(e ast.Entity) {
	b.entities = append(b.entities, e)
}

// lastEnd is where the most recently resolved entity ends, 0 if none.
func (b *builder) lastEnd() uint32 {
	if len(b.entities) == 0 {
		return 0
	}
	return b.entities[len(b.entities)-1].OuterSpan.End
}

// takeContained removes from the resolved list every entity whose selected
// span lies within outer and returns them in order.
func (b *builder) takeContained(outer ast.Span, sel func(ast.Entity) ast.Span) []ast.Entity {
	var in, rest []ast.Entity
	for _, e := range b.entities {
		if outer.Contains(sel(e)) {
			in = append(in, e)
		} else {
			rest = append(rest, e)
		}
	}
	b.entities = rest
	return in
}

func innerSpan(e ast.Entity) ast.Span { return e.InnerSpan }

func outerSpan(e ast.Entity) ast.Span { return e.OuterSpan }

// shrink drops the one-byte delimiter on each side of sp.
func shrink(sp ast.Span) ast.Span {
	return ast.Span{Start: sp.Start + 1, End: sp.End - 1}
}

// escapeLeaf keeps the backslash in the outer span only.
func escapeLeaf(tok token.Token) ast.Entity {
	return ast.Entity{
		Kind:      ast.Text,
		InnerSpan: ast.Span{Start: tok.Span.Start + 1, End: tok.Span.End},
		OuterSpan: tok.Span,
	}
}
