package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/Nertivia/markup/ast"
)

// CheckTree runs the structural invariants on a parsed tree:
// 1) root is a text entity with inner == outer == [0, len(text))
// 2) every entity has inner within outer, and both within the text
// 3) children are sorted by outer start and pairwise non-overlapping
// 4) every child's outer span lies within its parent's outer span, and within
// the parent's inner span for raw-content kinds (code, codeblock, custom)
func CheckTree(text string, root ast.Entity) error {
	lenText, err := safecast.Conv[uint32](len(text))
	if err != nil {
		return fmt.Errorf("len text overflow: %w", err)
	}
	whole := ast.Span{Start: 0, End: lenText}

	// 1) root shape
	if root.Kind != ast.Text {
		return fmt.Errorf("root kind is %s, want text", root.Kind)
	}
	if root.InnerSpan != whole || root.OuterSpan != whole {
		return fmt.Errorf("root spans inner=%s outer=%s, want %s", root.InnerSpan, root.OuterSpan, whole)
	}
	return checkEntity(whole, root, "root")
}

func checkEntity(whole ast.Span, e ast.Entity, path string) error {
	// 2) span sanity
	if e.InnerSpan.Start > e.InnerSpan.End || e.OuterSpan.Start > e.OuterSpan.End {
		return fmt.Errorf("%s: inverted span inner=%s outer=%s", path, e.InnerSpan, e.OuterSpan)
	}
	if !e.OuterSpan.Contains(e.InnerSpan) {
		return fmt.Errorf("%s: inner %s is outside outer %s", path, e.InnerSpan, e.OuterSpan)
	}
	if !whole.Contains(e.OuterSpan) {
		return fmt.Errorf("%s: outer %s is outside the text %s", path, e.OuterSpan, whole)
	}

	bound := e.OuterSpan
	switch e.Kind {
	case ast.Code, ast.CodeBlock, ast.Custom:
		bound = e.InnerSpan
	}

	for i, c := range e.Children {
		cpath := fmt.Sprintf("%s/%d:%s", path, i, c.Kind)
		// 3) order and overlap
		if i > 0 {
			prev := e.Children[i-1]
			if c.OuterSpan.Start < prev.OuterSpan.End {
				return fmt.Errorf("%s: outer %s overlaps or precedes previous sibling %s", cpath, c.OuterSpan, prev.OuterSpan)
			}
		}
		// 4) containment
		if !bound.Contains(c.OuterSpan) {
			return fmt.Errorf("%s: outer %s is outside parent bound %s", cpath, c.OuterSpan, bound)
		}
		if err := checkEntity(whole, c, cpath); err != nil {
			return err
		}
	}
	return nil
}

// CheckCoverage verifies that a densified tree accounts for every byte: in
// each entity other than a childless text leaf, the children's outer spans
// tile the inner span without gaps.
func CheckCoverage(root ast.Entity) error {
	return checkCoverage(root, "root")
}

func checkCoverage(e ast.Entity, path string) error {
	if e.Kind == ast.Text && len(e.Children) == 0 {
		return nil
	}
	cursor := e.InnerSpan.Start
	for i, c := range e.Children {
		cpath := fmt.Sprintf("%s/%d:%s", path, i, c.Kind)
		if c.OuterSpan.Start != cursor {
			return fmt.Errorf("%s: starts at %d, want %d (gap or overlap)", cpath, c.OuterSpan.Start, cursor)
		}
		cursor = c.OuterSpan.End
		if err := checkCoverage(c, cpath); err != nil {
			return err
		}
	}
	if cursor != e.InnerSpan.End {
		return fmt.Errorf("%s: children end at %d, inner span ends at %d", path, cursor, e.InnerSpan.End)
	}
	return nil
}
