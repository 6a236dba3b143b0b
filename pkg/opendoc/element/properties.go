package element

import (
	"iter"
	"sort"
)

// Property is a single name/value pair.
type Property struct {
	Name  string
	Value Value
}

// P is shorthand for building a Property from a Go value. It panics when v
// cannot be converted, which makes it suitable for literals only.
func P(name string, v any) Property {
	return Property{Name: name, Value: MustValue(v)}
}

// Properties is an ordered bag of formatting properties. Names are unique;
// insertion order is kept so rendering is deterministic.
type Properties struct {
	names  []string
	values map[string]Value
}

// NewProperties builds a bag from v, which may be nil, a map[string]any,
// a []Property, a Properties or *Properties. Maps are read in sorted key
// order. A *Properties is used as is, not copied.
func NewProperties(v any) (*Properties, error) {
	switch t := v.(type) {
	case nil:
		return &Properties{}, nil
	case *Properties:
		if t == nil {
			return &Properties{}, nil
		}
		return t, nil
	case Properties:
		return t.Clone(), nil
	case []Property:
		p := &Properties{}
		for _, prop := range t {
			p.Set(prop.Name, prop.Value)
		}
		return p, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		p := &Properties{}
		for _, k := range keys {
			val, err := ValueOf(t[k])
			if err != nil {
				return nil, &ModelError{
					Kind:    KindTypeMismatch,
					Op:      "NewProperties",
					Message: "property " + k,
					Cause:   err,
				}
			}
			p.Set(k, val)
		}
		return p, nil
	}
	return nil, typeMismatch("NewProperties", v)
}

// Get returns the value stored under name.
func (p *Properties) Get(name string) (Value, bool) {
	if p == nil || p.values == nil {
		return Null(), false
	}
	v, ok := p.values[name]
	return v, ok
}

// Has reports whether name is set.
func (p *Properties) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Set stores value under name. Replacing an existing name keeps its position.
func (p *Properties) Set(name string, value Value) *Properties {
	if p.values == nil {
		p.values = make(map[string]Value)
	}
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = value
	return p
}

// Delete removes name from the bag.
func (p *Properties) Delete(name string) {
	if _, ok := p.Get(name); !ok {
		return
	}
	delete(p.values, name)
	for i, n := range p.names {
		if n == name {
			p.names = append(p.names[:i], p.names[i+1:]...)
			break
		}
	}
}

func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Names returns the property names in insertion order.
func (p *Properties) Names() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.names...)
}

// All iterates over the bag in insertion order.
func (p *Properties) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if p == nil {
			return
		}
		for _, name := range p.names {
			if !yield(name, p.values[name]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the bag.
func (p *Properties) Clone() *Properties {
	out := &Properties{}
	for name, v := range p.All() {
		if v.kind == KindArray {
			v = Array(v.a.Clone())
		}
		out.Set(name, v)
	}
	return out
}
