package markup

import (
	"context"
	"runtime"
	"strconv"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/Nertivia/markup/ast"
	"github.com/Nertivia/markup/internal/lexer"
	"github.com/Nertivia/markup/internal/parser"
	"github.com/Nertivia/markup/internal/trace"
)

// Parser parses documents with a fixed set of Options. It is safe for
// concurrent use; Close releases the trace output.
type Parser struct {
	lexer   *lexer.Lexer
	build   parser.Options
	tracer  trace.Tracer
	jobs    int
	densify bool
}

// New validates opts and returns a Parser.
func New(opts Options) (*Parser, error) {
	s, err := opts.compile()
	if err != nil {
		return nil, err
	}
	tr, err := trace.New(s.trace)
	if err != nil {
		return nil, err
	}
	s.build.Tracer = tr
	return &Parser{
		lexer:   lexer.New(lexer.Options{Disabled: s.lexer}),
		build:   s.build,
		tracer:  tr,
		jobs:    s.jobs,
		densify: s.dense,
	}, nil
}

// Parse parses one document.
func (p *Parser) Parse(text string) Entity {
	return p.parse(text, 0)
}

// ParseBytes parses src after checking that it is valid UTF-8.
func (p *Parser) ParseBytes(src []byte) (Entity, error) {
	if !utf8.Valid(src) {
		return Entity{}, ErrInvalidUTF8
	}
	return p.parse(string(src), 0), nil
}

// ParseAll parses texts in parallel and returns the trees in input order.
// On cancellation it returns the context error and no results.
func (p *Parser) ParseAll(ctx context.Context, texts []string) ([]Entity, error) {
	batch := trace.Begin(p.tracer, trace.ScopeBatch, "batch", 0).
		WithExtra("documents", strconv.Itoa(len(texts)))

	results := make([]Entity, len(texts))
	if len(texts) == 0 {
		batch.End("")
		return results, nil
	}

	jobs := p.jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(texts)))
	for i, text := range texts {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// each goroutine owns results[i]
			results[i] = p.parse(text, batch.ID())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		batch.End(err.Error())
		return nil, err
	}
	batch.End("")
	return results, nil
}

// Close flushes the tracer and closes its output.
func (p *Parser) Close() error {
	return p.tracer.Close()
}

func (p *Parser) parse(text string, parent uint64) Entity {
	doc := trace.Begin(p.tracer, trace.ScopeDocument, "document", parent)

	pass := trace.Begin(p.tracer, trace.ScopePass, "tokenize", doc.ID())
	toks := p.lexer.Tokenize(text)
	pass.End("")

	opts := p.build
	pass = trace.Begin(p.tracer, trace.ScopePass, "build", doc.ID())
	opts.TraceParent = pass.ID()
	root := parser.Build(text, toks, opts)
	pass.End("")

	if p.densify {
		pass = trace.Begin(p.tracer, trace.ScopePass, "densify", doc.ID())
		root = ast.Densify(root)
		pass.End("")
	}

	if p.tracer.Enabled() {
		doc.WithExtra("bytes", strconv.Itoa(len(text))).
			WithExtra("tokens", strconv.Itoa(len(toks))).
			WithExtra("entities", strconv.Itoa(countEntities(root)))
	}
	doc.End("")
	return root
}

// countEntities counts the descendants of root.
func countEntities(root Entity) int {
	n := -1
	ast.Walk(root, func(Entity, int) bool {
		n++
		return true
	})
	return n
}
