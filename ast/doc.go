// Package ast defines the entity tree produced by the markup parser.
// Invariants:
//   - Spans are byte offsets into the parsed string; entities never store text.
//   - Entity.OuterSpan contains Entity.InnerSpan; the difference is delimiter syntax.
//   - Children are sorted by OuterSpan.Start, do not overlap and lie inside the parent.
//   - The root returned by the parser is a Text entity covering the whole input.
//
// A renderer walks the tree top-down and slices the parsed text with
// Span.Slice or Entity.Content.
package ast
