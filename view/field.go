package view

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlapi/schema"
)

// constraints holds the accessors shared by fields and arguments: the
// resolved type reference and the validation directives.
type constraints struct {
	graph *schema.Graph
	ref   *ast.Type
	node  any
}

// Type returns the full type signature, e.g. "[Student!]!".
func (c constraints) Type() string { return schema.Resolve(c.ref).Display }

// BasicType returns the named type underneath every wrapper.
func (c constraints) BasicType() string { return schema.Resolve(c.ref).Base }

// Range returns the arguments of @range, or nil.
func (c constraints) Range() schema.Args {
	args, _ := schema.Directive(c.node, schema.DirectiveRange)
	return c.graph.Args(args)
}

// Length returns the arguments of every @length, in declaration order.
func (c constraints) Length() []schema.Args {
	all, _ := schema.Directives(c.node, schema.DirectiveLength)
	for i, args := range all {
		all[i] = c.graph.Args(args)
	}
	return all
}

// Mask returns the arguments of @mask, or nil.
func (c constraints) Mask() schema.Args {
	args, _ := schema.Directive(c.node, schema.DirectiveMask)
	return c.graph.Args(args)
}

// Field is the view of a field of an object or interface type.
type Field struct {
	element
	constraints
	def *ast.FieldDefinition
}

func newField(g *schema.Graph, f *ast.FieldDefinition) *Field {
	return &Field{
		element:     element{g: g, kind: KindField, name: f.Name, desc: &f.Description, node: f},
		constraints: constraints{graph: g, ref: f.Type, node: f},
		def:         f,
	}
}

// fields returns the views of list, leaving out the introspection fields
// a resolved schema adds to the query type.
func fields(g *schema.Graph, list ast.FieldList) []*Field {
	out := make([]*Field, 0, len(list))
	for _, f := range list {
		if f != nil && !strings.HasPrefix(f.Name, "__") {
			out = append(out, newField(g, f))
		}
	}
	return out
}

// Arguments returns the argument views in declaration order.
func (f *Field) Arguments() []*Argument {
	out := make([]*Argument, 0, len(f.def.Arguments))
	for _, a := range f.def.Arguments {
		if a == nil {
			continue
		}
		out = append(out, &Argument{
			element:     element{g: f.g, kind: KindArgument, name: a.Name, desc: &a.Description, node: a},
			constraints: constraints{graph: f.g, ref: a.Type, node: a},
			def:         a,
		})
	}
	return out
}

// InputField is the view of a field of an input object. It reports the
// "Field" kind like any other field, but never has arguments.
type InputField struct {
	*Field
}

// Arguments always returns an empty list.
func (f *InputField) Arguments() []*Argument { return []*Argument{} }

// DefaultValue returns the default value in SDL syntax, or "".
func (f *InputField) DefaultValue() string { return literal(f.def.DefaultValue) }

// Argument is the view of a field argument.
type Argument struct {
	element
	constraints
	def *ast.ArgumentDefinition
}

// DefaultValue returns the default value in SDL syntax, or "".
func (a *Argument) DefaultValue() string { return literal(a.def.DefaultValue) }

func literal(v *ast.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}
