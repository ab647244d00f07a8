package ast_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Nertivia/markup/ast"
)

// "```go\nx``` [#f00]y"
func sampleTree() ast.Entity {
	return ast.Entity{
		Kind:      ast.Text,
		InnerSpan: sp(0, 18),
		OuterSpan: sp(0, 18),
		Children: []ast.Entity{
			{
				Kind:      ast.CodeBlock,
				InnerSpan: sp(6, 7),
				OuterSpan: sp(0, 10),
				Params:    ast.Params{Lang: ast.Lang("go")},
			},
			{
				Kind:      ast.Color,
				InnerSpan: sp(17, 18),
				OuterSpan: sp(11, 18),
				Params:    ast.Params{Color: "#f00"},
			},
		},
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	text := "```go\nx``` [#f00]y"
	data, err := ast.MarshalMsgpack(text, sampleTree())
	require.NoError(t, err)

	doc, err := ast.UnmarshalMsgpack(data)
	require.NoError(t, err)
	require.Equal(t, ast.NewDocument(text, sampleTree()), doc)
	require.Equal(t, "go", *doc.Root.Children[0].Params.Lang)
}

func TestDocumentEmptyLang(t *testing.T) {
	root := ast.Entity{
		Kind: ast.CodeBlock, InnerSpan: sp(4, 5), OuterSpan: sp(0, 8),
		Params: ast.Params{Lang: ast.Lang("")},
	}
	var buf bytes.Buffer
	require.NoError(t, ast.Encode(&buf, ast.NewDocument("```\nx```", root)))
	doc, err := ast.Decode(&buf)
	require.NoError(t, err)
	require.NotNil(t, doc.Root.Params.Lang)
	require.Equal(t, "", *doc.Root.Params.Lang)
}

func TestDocumentSchemaMismatch(t *testing.T) {
	data, err := msgpack.Marshal(&ast.Document{Schema: 99, Text: "x", Root: ast.Leaf(ast.Text, sp(0, 1))})
	require.NoError(t, err)
	_, err = ast.UnmarshalMsgpack(data)
	if !errors.Is(err, ast.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestDocumentDecodeGarbage(t *testing.T) {
	if _, err := ast.UnmarshalMsgpack([]byte{0xc1}); err == nil {
		t.Fatalf("expected decode error")
	}
}
