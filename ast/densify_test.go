package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nertivia/markup/ast"
)

func sp(start, end uint32) ast.Span { return ast.Span{Start: start, End: end} }

func TestDensifyFillsGaps(t *testing.T) {
	// "a **b** `c` d"
	root := ast.Entity{
		Kind:      ast.Text,
		InnerSpan: sp(0, 13),
		OuterSpan: sp(0, 13),
		Children: []ast.Entity{
			{Kind: ast.Bold, InnerSpan: sp(4, 5), OuterSpan: sp(2, 7)},
			{Kind: ast.Code, InnerSpan: sp(9, 10), OuterSpan: sp(8, 11)},
		},
	}

	want := ast.Entity{
		Kind:      ast.Text,
		InnerSpan: sp(0, 13),
		OuterSpan: sp(0, 13),
		Children: []ast.Entity{
			ast.Leaf(ast.Text, sp(0, 2)),
			{Kind: ast.Bold, InnerSpan: sp(4, 5), OuterSpan: sp(2, 7), Children: []ast.Entity{ast.Leaf(ast.Text, sp(4, 5))}},
			ast.Leaf(ast.Text, sp(7, 8)),
			{Kind: ast.Code, InnerSpan: sp(9, 10), OuterSpan: sp(8, 11), Children: []ast.Entity{ast.Leaf(ast.Text, sp(9, 10))}},
			ast.Leaf(ast.Text, sp(11, 13)),
		},
	}

	dense := ast.Densify(root)
	require.Equal(t, want, dense)
	require.Equal(t, dense, ast.Densify(dense))
	require.Equal(t, []string{"a ", "b", " ", "c", " d"}, ast.Leaves("a **b** `c` d", dense))

	// the input is not modified
	require.Len(t, root.Children, 2)
	require.Nil(t, root.Children[0].Children)
}

func TestDensifyLeaves(t *testing.T) {
	leaf := ast.Leaf(ast.Text, sp(0, 3))
	require.Equal(t, leaf, ast.Densify(leaf))

	// childless entities of other kinds get their inner text as a leaf
	for _, kind := range []ast.Kind{ast.Emoji, ast.Link} {
		got := ast.Densify(ast.Leaf(kind, sp(0, 4)))
		require.Equal(t, []ast.Entity{ast.Leaf(ast.Text, sp(0, 4))}, got.Children, kind.String())
	}

	empty := ast.Entity{Kind: ast.Bold, InnerSpan: sp(2, 2), OuterSpan: sp(0, 4)}
	require.Nil(t, ast.Densify(empty).Children)
}
