package testkit_test

import (
	"strings"
	"testing"

	"github.com/Nertivia/markup/ast"
	"github.com/Nertivia/markup/internal/testkit"
)

func sp(start, end uint32) ast.Span { return ast.Span{Start: start, End: end} }

func root(end uint32, children ...ast.Entity) ast.Entity {
	e := ast.Leaf(ast.Text, sp(0, end))
	e.Children = children
	return e
}

func TestCheckTreeAccepts(t *testing.T) {
	// "**a** `b`"
	tree := root(9,
		ast.Entity{Kind: ast.Bold, InnerSpan: sp(2, 3), OuterSpan: sp(0, 5)},
		ast.Entity{Kind: ast.Code, InnerSpan: sp(7, 8), OuterSpan: sp(6, 9)},
	)
	if err := testkit.CheckTree("**a** `b`", tree); err != nil {
		t.Fatalf("valid tree rejected: %v", err)
	}
}

func TestCheckTreeRejects(t *testing.T) {
	const text = "0123456789"
	tests := []struct {
		name string
		tree ast.Entity
		want string
	}{
		{"root kind", ast.Leaf(ast.Bold, sp(0, 10)), "root kind"},
		{"root span", root(9), "root spans"},
		{"inner outside outer", root(10, ast.Entity{Kind: ast.Bold, InnerSpan: sp(1, 6), OuterSpan: sp(2, 5)}), "outside outer"},
		{"overlap", root(10, ast.Leaf(ast.Emoji, sp(0, 4)), ast.Leaf(ast.Emoji, sp(3, 5))), "overlaps"},
		{"unsorted", root(10, ast.Leaf(ast.Emoji, sp(5, 6)), ast.Leaf(ast.Emoji, sp(1, 2))), "precedes"},
		{"raw child in delimiters", root(10, ast.Entity{
			Kind: ast.Code, InnerSpan: sp(1, 9), OuterSpan: sp(0, 10),
			Children: []ast.Entity{ast.Leaf(ast.Text, sp(0, 2))},
		}), "parent bound"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := testkit.CheckTree(text, tt.tree)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestCheckCoverage(t *testing.T) {
	dense := root(5,
		ast.Leaf(ast.Text, sp(0, 1)),
		ast.Entity{Kind: ast.Italic, InnerSpan: sp(2, 3), OuterSpan: sp(1, 4),
			Children: []ast.Entity{ast.Leaf(ast.Text, sp(2, 3))}},
		ast.Leaf(ast.Text, sp(4, 5)),
	)
	if err := testkit.CheckCoverage(dense); err != nil {
		t.Fatalf("dense tree rejected: %v", err)
	}

	sparse := root(5, ast.Entity{Kind: ast.Italic, InnerSpan: sp(2, 3), OuterSpan: sp(1, 4)})
	if err := testkit.CheckCoverage(sparse); err == nil {
		t.Fatalf("sparse tree accepted")
	}
}
