package parser_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Nertivia/markup/ast"
	"github.com/Nertivia/markup/internal/lexer"
	"github.com/Nertivia/markup/internal/parser"
)

func parse(text string) ast.Entity {
	return parser.Build(text, lexer.Tokenize(text), parser.Options{})
}

func sp(start, end uint32) ast.Span {
	return ast.Span{Start: start, End: end}
}

func ent(kind ast.Kind, inner, outer ast.Span, children ...ast.Entity) ast.Entity {
	return ast.Entity{Kind: kind, InnerSpan: inner, OuterSpan: outer, Children: children}
}

// shape renders a tree compactly: childless text as its quoted inner text,
// everything else as kind(params)[children].
func shape(src string, e ast.Entity) string {
	if e.Kind == ast.Text && len(e.Children) == 0 {
		return strconv.Quote(e.Content(src))
	}
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	switch e.Kind {
	case ast.CodeBlock:
		if e.Params.Lang == nil {
			sb.WriteString("(lang=nil)")
		} else {
			fmt.Fprintf(&sb, "(lang=%q)", *e.Params.Lang)
		}
	case ast.Color:
		fmt.Fprintf(&sb, "(%s)", e.Params.Color)
	case ast.Custom:
		fmt.Fprintf(&sb, "(%s)", e.Params.CustomKind)
	}
	sb.WriteString("[")
	for i, c := range e.Children {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(shape(src, c))
	}
	sb.WriteString("]")
	return sb.String()
}
