package markup

import (
	"fmt"
	"io"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/Nertivia/markup/ast"
	"github.com/Nertivia/markup/internal/parser"
	"github.com/Nertivia/markup/internal/token"
	"github.com/Nertivia/markup/internal/trace"
)

// Options configures a Parser. The zero value parses every construct with
// the default palette, returns sparse trees and does not trace.
type Options struct {
	// Densify runs Densify on every result.
	Densify bool `toml:"densify"`
	// NoBlockquotes turns off "> " line handling ("blockquotes = false").
	NoBlockquotes bool `toml:"-"`
	// Disable lists entity kinds, by name, whose syntax is kept as plain
	// text. "color" also disables the "§" shorthand.
	Disable []string `toml:"disable"`
	// Jobs bounds ParseAll parallelism; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`
	// Eggs overrides "§" palette entries. Keys are 0-9, a-f or r; values
	// are "#rgb", "#rrggbb" or "reset".
	Eggs map[string]string `toml:"eggs"`
	// Trace configures the tracer.
	Trace TraceOptions `toml:"trace"`
}

// TraceOptions selects what a Parser traces and where to.
type TraceOptions struct {
	// Level is off, phase, detail or debug; empty means off.
	Level string `toml:"level"`
	// Format is text or ndjson; empty means text.
	Format string `toml:"format"`
	// Output receives the events; nil means stderr. Parser.Close closes it
	// when it is an io.Closer.
	Output io.Writer `toml:"-"`
}

type optionsFile struct {
	Densify     bool              `toml:"densify"`
	Blockquotes bool              `toml:"blockquotes"`
	Disable     []string          `toml:"disable"`
	Jobs        int               `toml:"jobs"`
	Eggs        map[string]string `toml:"eggs"`
	Trace       struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	} `toml:"trace"`
}

// LoadOptions decodes TOML options from r and validates them. Keys that are
// not options are rejected.
func LoadOptions(r io.Reader) (Options, error) {
	var f optionsFile
	meta, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return Options{}, fmt.Errorf("options: failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Options{}, fmt.Errorf("options: unknown key %q", undecoded[0].String())
	}

	opts := Options{
		Densify: f.Densify,
		Disable: f.Disable,
		Jobs:    f.Jobs,
		Eggs:    f.Eggs,
	}
	if meta.IsDefined("blockquotes") {
		opts.NoBlockquotes = !f.Blockquotes
	}
	if meta.IsDefined("trace") {
		opts.Trace.Level = f.Trace.Level
		opts.Trace.Format = f.Trace.Format
	}
	if _, err := opts.compile(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// disableTokens maps the disableable entity kinds to the tokens that
// produce them.
var disableTokens = map[ast.Kind][]token.Kind{
	ast.Bold:          {token.Bold},
	ast.Italic:        {token.Italic},
	ast.Underline:     {token.Underline},
	ast.Strikethrough: {token.Strikethrough},
	ast.Spoiler:       {token.Spoiler},
	ast.Code:          {token.Code},
	ast.CodeBlock:     {token.CodeBlock},
	ast.Link:          {token.Link, token.LinkContained},
	ast.Emoji:         {token.Emoji},
	ast.EmojiName:     {token.EmojiName},
	ast.Color:         {token.Color, token.Egg},
	ast.Custom:        {token.CustomStart},
}

var eggColorRe = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// settings is the validated form of Options.
type settings struct {
	lexer map[token.Kind]bool
	build parser.Options
	trace trace.Config
	jobs  int
	dense bool
}

func (o Options) compile() (settings, error) {
	s := settings{
		build: parser.Options{NoBlockquote: o.NoBlockquotes},
		jobs:  o.Jobs,
		dense: o.Densify,
	}
	if o.Jobs < 0 {
		return settings{}, fmt.Errorf("options: jobs must not be negative, got %d", o.Jobs)
	}

	for _, name := range o.Disable {
		kind, err := ast.ParseKind(name)
		if err != nil {
			return settings{}, fmt.Errorf("options: disable %q: %w", name, ErrUnknownKind)
		}
		if kind == ast.Blockquote {
			s.build.NoBlockquote = true
			continue
		}
		toks, ok := disableTokens[kind]
		if !ok {
			return settings{}, fmt.Errorf("options: disable %q: %w", name, ErrUnknownKind)
		}
		if s.lexer == nil {
			s.lexer = make(map[token.Kind]bool)
		}
		for _, k := range toks {
			s.lexer[k] = true
		}
	}

	if len(o.Eggs) > 0 {
		eggs := parser.DefaultEggs()
		for key, value := range o.Eggs {
			if len(key) != 1 || !isEggKey(key[0]) {
				return settings{}, fmt.Errorf("options: egg key %q: %w", key, ErrInvalidEgg)
			}
			switch {
			case value == parser.ResetColor:
				value = "#" + parser.ResetColor
			case !eggColorRe.MatchString(value):
				return settings{}, fmt.Errorf("options: egg %q value %q: %w", key, value, ErrInvalidEgg)
			}
			eggs[key[0]] = value
		}
		s.build.Eggs = eggs
	}

	level, err := trace.ParseLevel(o.Trace.Level)
	if err != nil {
		return settings{}, fmt.Errorf("options: %w", err)
	}
	format, err := trace.ParseFormat(o.Trace.Format)
	if err != nil {
		return settings{}, fmt.Errorf("options: %w", err)
	}
	s.trace = trace.Config{Level: level, Format: format, Output: o.Trace.Output}
	return s, nil
}

func isEggKey(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || c == 'r'
}
