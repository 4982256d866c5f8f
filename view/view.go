package view

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlapi/schema"
)

// Kind labels reported by View.Kind. They double as the noun used in
// default deprecation messages.
const (
	KindType      = "Type"
	KindInterface = "Interface"
	KindInput     = "Input Type"
	KindScalar    = "Scalar"
	KindEnum      = "Enum"
	KindEnumValue = "Enum Value"
	KindUnion     = "Union Type"
	KindField     = "Field"
	KindArgument  = "Argument"
)

// View is the contract shared by every documented element.
type View interface {
	// Kind returns the element label, e.g. "Type" or "Enum Value".
	Kind() string
	// Name returns the element name as declared in the schema.
	Name() string
	// Description returns the sanitized rich-text description, or nil.
	Description() *string
	// DescriptionText returns the plain-text description, or nil.
	DescriptionText() *string
	// Deprecated returns the deprecation reason, or "" when the element
	// is not deprecated.
	Deprecated() string
	// IsDeprecated reports whether the element carries @deprecated.
	IsDeprecated() bool
}

// element implements View for any schema element. node is what the
// directive extractor inspects; desc points at the element's description
// field so the graph can find its plain-text variant.
type element struct {
	g    *schema.Graph
	kind string
	name string
	desc *string
	node any
}

func (e element) Kind() string { return e.kind }

func (e element) Name() string { return e.name }

func (e element) Description() *string {
	rich, _ := e.g.Description(e.desc)
	return rich
}

func (e element) DescriptionText() *string {
	_, plain := e.g.Description(e.desc)
	return plain
}

func (e element) Deprecated() string {
	reason, _ := schema.Deprecated(e.node, e.kind)
	return e.g.Text(reason)
}

func (e element) IsDeprecated() bool {
	_, ok := schema.Deprecated(e.node, e.kind)
	return ok
}

func definition(g *schema.Graph, kind string, def *ast.Definition) element {
	return element{g: g, kind: kind, name: def.Name, desc: &def.Description, node: def}
}

// New returns the view for a named type definition, selected by its kind.
// It returns nil for definitions the documentation does not cover.
func New(g *schema.Graph, def *ast.Definition) View {
	k, ok := schema.KindOf(def)
	if !ok {
		return nil
	}
	switch k {
	case schema.KindObject:
		return NewObject(g, def)
	case schema.KindInterface:
		return NewInterface(g, def)
	case schema.KindEnum:
		return NewEnum(g, def)
	case schema.KindUnion:
		return NewUnion(g, def)
	case schema.KindInput:
		return NewInput(g, def)
	case schema.KindScalar:
		return NewScalar(g, def)
	default:
		return nil
	}
}

// Lookup returns the view for the named definition of g.
func Lookup(g *schema.Graph, name string) (View, bool) {
	def, ok := g.Definition(name)
	if !ok {
		return nil, false
	}
	v := New(g, def)
	return v, v != nil
}
