package lexer

import (
	"github.com/Nertivia/markup/internal/token"
)

// Lexer splits markup text into tokens. It holds no per-call state and may be
// shared between goroutines.
type Lexer struct {
	opts     Options
	patterns []pattern
}

func New(opts Options) *Lexer {
	ps := make([]pattern, 0, len(patterns))
	for _, p := range patterns {
		if opts.Disabled[p.kind] {
			continue
		}
		ps = append(ps, p)
	}
	return &Lexer{
		opts:     opts,
		patterns: ps,
	}
}

var defaultLexer = New(Options{})

// Tokenize scans text with the default pattern table.
func Tokenize(text string) []token.Token {
	return defaultLexer.Tokenize(text)
}

// Tokenize scans text once, left to right, and returns every token ordered by
// Span.Start. At each position the first matching pattern wins; positions
// where nothing matches are plain text and produce no token.
func (lx *Lexer) Tokenize(text string) []token.Token {
	cursor := NewCursor(text)
	var toks []token.Token

scan:
	for !cursor.EOF() {
		if triggers[cursor.Peek()] {
			rest := cursor.Rest()
			for _, p := range lx.patterns {
				n := p.match(rest)
				if n == 0 {
					continue
				}
				m := cursor.Mark()
				cursor.Advance(n)
				toks = append(toks, token.Token{
					Kind: p.kind,
					Span: cursor.SpanFrom(m),
					Text: rest[:n],
				})
				continue scan
			}
		}
		cursor.BumpRune()
	}
	return toks
}
