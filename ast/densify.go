package ast

// Densify returns a copy of e in which every gap between children (and before
// the first and after the last, within InnerSpan) is filled with a Text leaf.
// Childless Text entities are returned as is. Densify is idempotent.
func Densify(e Entity) Entity {
	if e.Kind == Text && len(e.Children) == 0 {
		return e
	}

	var children []Entity
	cursor := e.InnerSpan.Start
	for _, c := range e.Children {
		if c.OuterSpan.Start > cursor {
			children = append(children, Leaf(Text, Span{Start: cursor, End: c.OuterSpan.Start}))
		}
		children = append(children, Densify(c))
		cursor = c.OuterSpan.End
	}
	if e.InnerSpan.End > cursor {
		children = append(children, Leaf(Text, Span{Start: cursor, End: e.InnerSpan.End}))
	}

	e.Children = children
	return e
}
