package view

import (
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlapi/schema"
)

// Section titles, in page order.
const (
	SectionQuery        = "Query"
	SectionMutation     = "Mutation"
	SectionSubscription = "Subscription"
	SectionTypes        = "Types"
	SectionInterfaces   = "Interfaces"
	SectionEnums        = "Enums"
	SectionUnions       = "Unions"
	SectionInputTypes   = "Input Types"
	SectionScalars      = "Scalars"
)

// Section is a titled group of views.
type Section struct {
	Title string
	Views []View
}

// Page is the root of the view tree handed to renderers.
type Page struct {
	g *schema.Graph
}

// NewPage returns the page for g.
func NewPage(g *schema.Graph) *Page {
	return &Page{g: g}
}

// Graph returns the underlying schema graph.
func (p *Page) Graph() *schema.Graph { return p.g }

// Description returns the sanitized description of the schema definition.
func (p *Page) Description() *string {
	rich, _ := p.g.SchemaDescription()
	return rich
}

// DescriptionText returns the plain-text description of the schema
// definition.
func (p *Page) DescriptionText() *string {
	_, plain := p.g.SchemaDescription()
	return plain
}

// Query returns the query root type, or nil.
func (p *Page) Query() *Object { return p.root(ast.Query) }

// Mutation returns the mutation root type, or nil.
func (p *Page) Mutation() *Object { return p.root(ast.Mutation) }

// Subscription returns the subscription root type, or nil.
func (p *Page) Subscription() *Object { return p.root(ast.Subscription) }

func (p *Page) root(op ast.Operation) *Object {
	def, ok := p.g.Root(op)
	if !ok {
		return nil
	}
	return NewObject(p.g, def)
}

// Types returns the object types that are not root operation types.
func (p *Page) Types() []*Object {
	defs := lo.Reject(p.g.Definitions(schema.KindObject), func(d *ast.Definition, _ int) bool {
		return p.g.IsRoot(d.Name)
	})
	return lo.Map(defs, func(d *ast.Definition, _ int) *Object { return NewObject(p.g, d) })
}

// Interfaces returns the interface types.
func (p *Page) Interfaces() []*Interface {
	return lo.Map(p.g.Definitions(schema.KindInterface), func(d *ast.Definition, _ int) *Interface {
		return NewInterface(p.g, d)
	})
}

// Enums returns the enum types.
func (p *Page) Enums() []*Enum {
	return lo.Map(p.g.Definitions(schema.KindEnum), func(d *ast.Definition, _ int) *Enum {
		return NewEnum(p.g, d)
	})
}

// Unions returns the union types.
func (p *Page) Unions() []*Union {
	return lo.Map(p.g.Definitions(schema.KindUnion), func(d *ast.Definition, _ int) *Union {
		return NewUnion(p.g, d)
	})
}

// InputTypes returns the input object types.
func (p *Page) InputTypes() []*Input {
	return lo.Map(p.g.Definitions(schema.KindInput), func(d *ast.Definition, _ int) *Input {
		return NewInput(p.g, d)
	})
}

// Scalars returns the custom scalars.
func (p *Page) Scalars() []*Scalar {
	return lo.Map(p.g.Definitions(schema.KindScalar), func(d *ast.Definition, _ int) *Scalar {
		return NewScalar(p.g, d)
	})
}

// Sections returns every section in page order: Query, Mutation,
// Subscription, Types, Interfaces, Enums, Unions, Input Types, Scalars.
// Root sections hold at most one view. Empty sections are included.
func (p *Page) Sections() []Section {
	return []Section{
		{Title: SectionQuery, Views: rootViews(p.Query())},
		{Title: SectionMutation, Views: rootViews(p.Mutation())},
		{Title: SectionSubscription, Views: rootViews(p.Subscription())},
		{Title: SectionTypes, Views: views(p.Types())},
		{Title: SectionInterfaces, Views: views(p.Interfaces())},
		{Title: SectionEnums, Views: views(p.Enums())},
		{Title: SectionUnions, Views: views(p.Unions())},
		{Title: SectionInputTypes, Views: views(p.InputTypes())},
		{Title: SectionScalars, Views: views(p.Scalars())},
	}
}

func rootViews(o *Object) []View {
	if o == nil {
		return nil
	}
	return []View{o}
}

func views[T View](list []T) []View {
	return lo.Map(list, func(v T, _ int) View { return v })
}
