package ast

import "encoding/json"

// MarshalJSON writes an entity in the wire shape, with "entities" always an
// array.
func (e Entity) MarshalJSON() ([]byte, error) {
	type plain Entity
	p := plain(e)
	if p.Children == nil {
		p.Children = []Entity{}
	}
	return json.Marshal(p)
}

// UnmarshalJSON reads the wire shape; an empty "entities" array becomes nil.
func (e *Entity) UnmarshalJSON(data []byte) error {
	type plain Entity
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if len(p.Children) == 0 {
		p.Children = nil
	}
	*e = Entity(p)
	return nil
}
