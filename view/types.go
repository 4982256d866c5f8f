package view

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlapi/schema"
)

// Object is the view of an object type, root operation types included.
type Object struct {
	element
	def *ast.Definition
}

// NewObject returns the view of an object type definition.
func NewObject(g *schema.Graph, def *ast.Definition) *Object {
	return &Object{element: definition(g, KindType, def), def: def}
}

// Fields returns the field views in declaration order.
func (o *Object) Fields() []*Field { return fields(o.g, o.def.Fields) }

// Interfaces returns the names of the interfaces the type implements.
func (o *Object) Interfaces() []string { return o.def.Interfaces }

// Interface is the view of an interface type.
type Interface struct {
	element
	def *ast.Definition
}

// NewInterface returns the view of an interface definition.
func NewInterface(g *schema.Graph, def *ast.Definition) *Interface {
	return &Interface{element: definition(g, KindInterface, def), def: def}
}

// Fields returns the field views in declaration order.
func (i *Interface) Fields() []*Field { return fields(i.g, i.def.Fields) }

// Implementors returns the object types implementing the interface, in
// declaration order.
func (i *Interface) Implementors() []string {
	return i.g.Implementors().Of(i.def.Name)
}

// Input is the view of an input object type.
type Input struct {
	element
	def *ast.Definition
}

// NewInput returns the view of an input object definition.
func NewInput(g *schema.Graph, def *ast.Definition) *Input {
	return &Input{element: definition(g, KindInput, def), def: def}
}

// Fields returns the input field views in declaration order.
func (i *Input) Fields() []*InputField {
	out := make([]*InputField, 0, len(i.def.Fields))
	for _, f := range i.def.Fields {
		if f != nil {
			out = append(out, &InputField{Field: newField(i.g, f)})
		}
	}
	return out
}

// Enum is the view of an enum type.
type Enum struct {
	element
	def *ast.Definition
}

// NewEnum returns the view of an enum definition.
func NewEnum(g *schema.Graph, def *ast.Definition) *Enum {
	return &Enum{element: definition(g, KindEnum, def), def: def}
}

// Values returns the enum value views in declaration order.
func (e *Enum) Values() []*EnumValue {
	out := make([]*EnumValue, 0, len(e.def.EnumValues))
	for _, v := range e.def.EnumValues {
		if v == nil {
			continue
		}
		out = append(out, &EnumValue{element{
			g:    e.g,
			kind: KindEnumValue,
			name: v.Name,
			desc: &v.Description,
			node: v,
		}})
	}
	return out
}

// EnumValue is the view of a single enum value.
type EnumValue struct {
	element
}

// TypeLink is a member reference of a union.
type TypeLink struct {
	// Type is the member as written.
	Type string
	// BasicType is the link target.
	BasicType string
}

// Union is the view of a union type.
type Union struct {
	element
	def *ast.Definition
}

// NewUnion returns the view of a union definition.
func NewUnion(g *schema.Graph, def *ast.Definition) *Union {
	return &Union{element: definition(g, KindUnion, def), def: def}
}

// Types returns the union members in declaration order. Members are always
// named object types, so Type and BasicType are equal.
func (u *Union) Types() []TypeLink {
	out := make([]TypeLink, 0, len(u.def.Types))
	for _, name := range u.def.Types {
		ref := schema.Resolve(ast.NamedType(name, nil))
		out = append(out, TypeLink{Type: ref.Display, BasicType: ref.Base})
	}
	return out
}

// Scalar is the view of a custom scalar.
type Scalar struct {
	element
}

// NewScalar returns the view of a scalar definition.
func NewScalar(g *schema.Graph, def *ast.Definition) *Scalar {
	return &Scalar{definition(g, KindScalar, def)}
}
