package activetext

import (
	"slices"
	"sort"
)

// Registry maps each enabled type to its elements, ordered by location.
// Every range is valid in the Result's final text.
type Registry struct {
	types    []ElementType
	elements map[TypeKey][]Element
}

func newRegistry(enabled []ElementType) *Registry {
	r := &Registry{
		types:    append([]ElementType(nil), enabled...),
		elements: make(map[TypeKey][]Element, len(enabled)),
	}
	for _, t := range enabled {
		r.elements[t.Key()] = nil
	}
	return r
}

func (r *Registry) set(t ElementType, elements []Element) {
	r.elements[t.Key()] = elements
}

// Types returns the registered types in priority order.
func (r *Registry) Types() []ElementType {
	return slices.Clone(r.types)
}

// Elements returns the elements of t.
func (r *Registry) Elements(t ElementType) []Element {
	return slices.Clone(r.elements[t.Key()])
}

// All returns every element, type by type in priority order.
func (r *Registry) All() []Element {
	var out []Element
	for _, t := range r.types {
		out = append(out, r.elements[t.Key()]...)
	}
	return out
}

// Len returns the total number of elements.
func (r *Registry) Len() int {
	n := 0
	for _, els := range r.elements {
		n += len(els)
	}
	return n
}

// ElementAt returns the element whose range contains the UTF-16 offset.
// Types are searched in priority order and the first hit wins.
func (r *Registry) ElementAt(offset int) (Element, bool) {
	for _, t := range r.types {
		for _, el := range r.elements[t.Key()] {
			if el.Range.Contains(offset) {
				return el, true
			}
		}
	}
	return Element{}, false
}

// Entity 是 element 的扁平 JSON 表示
type Entity struct {
	Type    string `json:"type"`
	Pattern string `json:"pattern,omitempty"`
	Offset  int    `json:"offset"`
	Length  int    `json:"length"`
	Value   string `json:"value"`
	Display string `json:"display,omitempty"`
}

// NewEntity flattens el.
func NewEntity(el Element) Entity {
	ent := Entity{
		Type:    el.Type.Kind.String(),
		Pattern: el.Type.Pattern,
		Offset:  el.Range.Location,
		Length:  el.Range.Length,
	}
	if el.Matched != nil {
		ent.Value = el.Matched.Value()
	}
	switch m := el.Matched.(type) {
	case URLElement:
		if m.Trimmed != m.Original {
			ent.Display = m.Trimmed
		}
	case PreviewElement:
		if m.Preview != m.Original {
			ent.Display = m.Preview
		}
	}
	return ent
}

// Entities returns every element flattened and sorted by offset; elements at
// the same offset keep priority order.
func (r *Registry) Entities() []Entity {
	all := r.All()
	out := make([]Entity, 0, len(all))
	for _, el := range all {
		out = append(out, NewEntity(el))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}
