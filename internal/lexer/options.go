package lexer

import (
	"github.com/Nertivia/markup/internal/token"
)

type Options struct {
	// Disabled kinds are never produced; their syntax stays plain text.
	Disabled map[token.Kind]bool
}
