package schema

import (
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// Implementors maps an interface name to the concrete types implementing it.
// A missing entry means no known implementors.
type Implementors map[string][]string

// Of returns the implementors of the named interface in declaration order.
func (i Implementors) Of(name string) []string {
	return i[name]
}

// Link builds the implementor index from the interfaces each concrete type
// declares. Implementor lists follow the order of concrete. Interface names
// that match no definition in interfaces are ignored, and a relation
// declared twice is recorded once.
func Link(concrete, interfaces []*ast.Definition) Implementors {
	known := lo.KeyBy(lo.Compact(interfaces), func(d *ast.Definition) string {
		return d.Name
	})
	index := make(Implementors)
	for _, c := range concrete {
		if c == nil {
			continue
		}
		for _, name := range c.Interfaces {
			if _, ok := known[name]; !ok {
				continue
			}
			if lo.Contains(index[name], c.Name) {
				continue
			}
			index[name] = append(index[name], c.Name)
		}
	}
	return index
}
