package ast

// Params holds the variant-specific fields of an entity. Only the fields that
// belong to the entity's Kind are ever set.
type Params struct {
	// Lang is the code block language tag. Nil when the opening fence is not
	// followed by a tag line, empty when the fence ends its line directly.
	Lang *string `json:"lang,omitempty" msgpack:"lang,omitempty"`
	// BorderColor is reserved for blockquotes and never filled by the parser.
	BorderColor string `json:"borderColor,omitempty" msgpack:"borderColor,omitempty"`
	// Color is "reset" or "#" followed by 3 or 6 hex digits.
	Color string `json:"color,omitempty" msgpack:"color,omitempty"`
	// CustomKind is the label of a custom expression, e.g. "@" for "[@:...]".
	CustomKind string `json:"type,omitempty" msgpack:"type,omitempty"`
}

// Entity is one node of the markup tree.
type Entity struct {
	Kind      Kind     `json:"type" msgpack:"type"`
	InnerSpan Span     `json:"innerSpan" msgpack:"innerSpan"`
	OuterSpan Span     `json:"outerSpan" msgpack:"outerSpan"`
	Children  []Entity `json:"entities" msgpack:"entities"`
	Params    Params   `json:"params" msgpack:"params"`
}

// Leaf returns a childless entity whose inner and outer spans are both sp.
func Leaf(kind Kind, sp Span) Entity {
	return Entity{Kind: kind, InnerSpan: sp, OuterSpan: sp}
}

// IsLeaf reports whether e has no children.
func (e Entity) IsLeaf() bool { return len(e.Children) == 0 }

// Content returns the inner text of e within src.
func (e Entity) Content(src string) string {
	return e.InnerSpan.Slice(src)
}

// Lang returns a pointer to a copy of lang, for building code block params.
func Lang(lang string) *string {
	return &lang
}

// Walk visits e and its descendants in pre-order. Returning false from fn
// skips the children of the visited entity.
func Walk(e Entity, fn func(e Entity, depth int) bool) {
	walk(e, 0, fn)
}

func walk(e Entity, depth int, fn func(Entity, int) bool) {
	if !fn(e, depth) {
		return
	}
	for _, c := range e.Children {
		walk(c, depth+1, fn)
	}
}

// Leaves returns the inner text of every childless entity, left to right.
// On a densified tree the result accounts for every content byte of src.
func Leaves(src string, e Entity) []string {
	var out []string
	Walk(e, func(n Entity, _ int) bool {
		if n.IsLeaf() {
			out = append(out, n.Content(src))
		}
		return true
	})
	return out
}
