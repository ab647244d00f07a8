package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const (
	defaultExcerptWidth = 40
	kindColumnWidth     = len("strikethrough")
)

var kindColors = map[Kind][]color.Attribute{
	Text:       {color.FgWhite},
	Link:       {color.FgBlue, color.Underline},
	Code:       {color.FgGreen},
	CodeBlock:  {color.FgGreen, color.Bold},
	Emoji:      {color.FgYellow},
	EmojiName:  {color.FgYellow},
	Color:      {color.FgMagenta},
	Custom:     {color.FgCyan},
	Blockquote: {color.FgHiBlack},
}

// Printer writes an indented view of a tree, one entity per line:
//
//	text          0-16
//	  bold        0-16  inner 2-14
//	    text      2-14  "hello world!"
type Printer struct {
	// Color enables ANSI colouring of kind names regardless of the terminal.
	Color bool
	// Width caps the display width of leaf excerpts; 0 means 40 columns.
	Width int
}

// Fprint writes the tree rooted at e to w.
func (p Printer) Fprint(w io.Writer, src string, e Entity) error {
	var sb strings.Builder
	Walk(e, func(n Entity, depth int) bool {
		p.writeLine(&sb, src, n, depth)
		return true
	})
	_, err := io.WriteString(w, sb.String())
	return err
}

func (p Printer) writeLine(sb *strings.Builder, src string, e Entity, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))

	name := runewidth.FillRight(e.Kind.String(), kindColumnWidth-2*min(depth, kindColumnWidth/2))
	if p.Color {
		attrs, ok := kindColors[e.Kind]
		if !ok {
			attrs = []color.Attribute{color.Bold}
		}
		// a fresh Color per line: EnableColor mutates it
		c := color.New(attrs...)
		c.EnableColor()
		name = c.Sprint(name)
	}
	sb.WriteString(name)
	sb.WriteString(" ")
	sb.WriteString(e.OuterSpan.String())
	if e.InnerSpan != e.OuterSpan {
		sb.WriteString("  inner ")
		sb.WriteString(e.InnerSpan.String())
	}
	if params := formatParams(e); params != "" {
		sb.WriteString("  ")
		sb.WriteString(params)
	}
	if e.IsLeaf() {
		sb.WriteString("  ")
		sb.WriteString(strconv.Quote(p.excerpt(e.Content(src))))
	}
	sb.WriteString("\n")
}

func (p Printer) excerpt(s string) string {
	width := p.Width
	if width <= 0 {
		width = defaultExcerptWidth
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func formatParams(e Entity) string {
	switch e.Kind {
	case CodeBlock:
		if e.Params.Lang == nil {
			return "lang=<none>"
		}
		return fmt.Sprintf("lang=%q", *e.Params.Lang)
	case Color:
		return "color=" + e.Params.Color
	case Custom:
		return fmt.Sprintf("type=%q", e.Params.CustomKind)
	case Blockquote:
		if e.Params.BorderColor != "" {
			return "border=" + e.Params.BorderColor
		}
	}
	return ""
}

// Sprint returns the uncoloured dump of e.
func Sprint(src string, e Entity) string {
	var sb strings.Builder
	_ = Printer{}.Fprint(&sb, src, e)
	return sb.String()
}
