package schema

import (
	"cmp"
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlapi/sanitize"
)

// Default root operation type names, used when a document has no schema
// definition.
const (
	DefaultQuery        = "Query"
	DefaultMutation     = "Mutation"
	DefaultSubscription = "Subscription"
)

// resolvedCacheSize bounds the sanitizer cache of graphs built from a
// resolved schema, where descriptions are sanitized on every access.
const resolvedCacheSize = 4096

// Graph is the documentation view of a schema: its named type definitions
// grouped by kind in declaration order, a name index, the root operation
// types and the derived interface implementor index.
//
// A Graph is built once and never mutated afterwards, so it can be read
// from several goroutines.
type Graph struct {
	defs         map[Kind][]*ast.Definition
	byName       map[string]*ast.Definition
	index        map[string]Kind
	roots        map[ast.Operation]string
	implementors Implementors
	description  *string
	sanitizer    *sanitize.Sanitizer
	// walker holds the plain-text variants of description fields. It is
	// nil for graphs built from a resolved schema.
	walker *sanitize.Walker
}

// Option configures a Graph.
type Option func(*Graph)

// WithSanitizer sets the sanitizer used for descriptions and string leaves.
func WithSanitizer(s *sanitize.Sanitizer) Option {
	return func(g *Graph) {
		if s != nil {
			g.sanitizer = s
		}
	}
}

func newGraph(opts ...Option) *Graph {
	g := &Graph{
		defs:   make(map[Kind][]*ast.Definition),
		byName: make(map[string]*ast.Definition),
		index:  make(map[string]Kind),
		roots: map[ast.Operation]string{
			ast.Query:        DefaultQuery,
			ast.Mutation:     DefaultMutation,
			ast.Subscription: DefaultSubscription,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGraph builds a graph from a raw schema document.
//
// The document is modified in place: type extensions are merged into their
// base definitions (and removed from doc.Extensions), then every string in
// the document is sanitized once. Description fields also get a plain-text
// variant, available through Description.
func NewGraph(doc *ast.SchemaDocument, opts ...Option) *Graph {
	g := newGraph(opts...)
	if g.sanitizer == nil {
		g.sanitizer = sanitize.Default()
	}
	g.walker = sanitize.NewWalker(g.sanitizer, sanitize.WithSkip("Position"))
	if doc == nil {
		return g
	}

	mergeExtensions(doc)
	g.walker.Walk(doc)

	for _, def := range doc.Definitions {
		g.add(def)
	}
	for _, sd := range doc.Schema {
		if sd == nil {
			continue
		}
		if g.description == nil && sd.Description != "" {
			g.description = &sd.Description
		}
		for _, op := range sd.OperationTypes {
			if op != nil && op.Type != "" {
				g.roots[op.Operation] = op.Type
			}
		}
	}
	g.link()
	return g
}

// FromSchema builds a graph from a resolved schema. Built-in and
// introspection types are left out, and definitions are ordered by their
// position in the source files.
//
// The schema is not modified: descriptions, deprecation reasons and
// directive arguments are sanitized when they are read, through a cached
// sanitizer.
func FromSchema(s *ast.Schema, opts ...Option) *Graph {
	g := newGraph(opts...)
	if g.sanitizer == nil {
		cached, err := sanitize.New(sanitize.WithCache(resolvedCacheSize))
		if err != nil {
			cached = sanitize.Default()
		}
		g.sanitizer = cached
	}
	if s == nil {
		return g
	}

	defs := make([]*ast.Definition, 0, len(s.Types))
	for name, def := range s.Types {
		if def == nil || builtIn(def) || strings.HasPrefix(name, "__") {
			continue
		}
		defs = append(defs, def)
	}
	slices.SortFunc(defs, byPosition)
	for _, def := range defs {
		g.add(def)
	}

	if s.Description != "" {
		g.description = &s.Description
	}
	for op, def := range map[ast.Operation]*ast.Definition{
		ast.Query:        s.Query,
		ast.Mutation:     s.Mutation,
		ast.Subscription: s.Subscription,
	} {
		if def != nil {
			g.roots[op] = def.Name
		}
	}
	g.link()
	return g
}

func (g *Graph) add(def *ast.Definition) {
	k, ok := KindOf(def)
	if !ok || def.Name == "" {
		return
	}
	if _, dup := g.byName[def.Name]; dup {
		return
	}
	g.defs[k] = append(g.defs[k], def)
	g.byName[def.Name] = def
	g.index[def.Name] = k
}

// link computes the implementor index by scanning the interfaces declared
// by every object type, root operation types included.
func (g *Graph) link() {
	g.implementors = Link(g.defs[KindObject], g.defs[KindInterface])
}

// Definitions returns the definitions of kind k in declaration order.
func (g *Graph) Definitions(k Kind) []*ast.Definition {
	return g.defs[k]
}

// Definition returns the definition with the given name.
func (g *Graph) Definition(name string) (*ast.Definition, bool) {
	def, ok := g.byName[name]
	return def, ok
}

// Lookup returns the kind of the named definition.
func (g *Graph) Lookup(name string) (Kind, bool) {
	k, ok := g.index[name]
	return k, ok
}

// Len returns the number of named definitions in the graph.
func (g *Graph) Len() int {
	return len(g.byName)
}

// RootName returns the name of the root type for op.
func (g *Graph) RootName(op ast.Operation) string {
	return g.roots[op]
}

// Root returns the root object type for op, if the schema defines one.
func (g *Graph) Root(op ast.Operation) (*ast.Definition, bool) {
	def, ok := g.byName[g.roots[op]]
	if !ok || def.Kind != ast.Object {
		return nil, false
	}
	return def, true
}

// IsRoot reports whether name is one of the root operation types.
func (g *Graph) IsRoot(name string) bool {
	for _, root := range g.roots {
		if root == name {
			return true
		}
	}
	return false
}

// Implementors returns the derived implementor index.
func (g *Graph) Implementors() Implementors {
	return g.implementors
}

// Sanitizer returns the sanitizer the graph was built with.
func (g *Graph) Sanitizer() *sanitize.Sanitizer {
	return g.sanitizer
}

// Resolved reports whether the graph was built from a resolved schema.
func (g *Graph) Resolved() bool {
	return g.walker == nil
}

// Description returns the sanitized rich and plain-text forms of a
// description field belonging to one of the graph's elements. Both are nil
// when the element has no description.
func (g *Graph) Description(field *string) (rich, plain *string) {
	if field == nil || *field == "" {
		return nil, nil
	}
	if g.walker == nil {
		return g.sanitizer.RichPtr(field), g.sanitizer.PlainPtr(field)
	}
	r := *field
	p, ok := g.walker.Text(field)
	if !ok {
		p = g.sanitizer.Plain(r)
	}
	return &r, &p
}

// Text returns a directive string of one of the graph's elements in the
// form documents carry it. Raw-form graphs were sanitized when built; the
// resolved form is sanitized here.
func (g *Graph) Text(text string) string {
	if g.walker != nil {
		return text
	}
	return g.sanitizer.Rich(text)
}

// Args applies Text to every string held by args. The result is a copy
// for resolved graphs and args itself otherwise.
func (g *Graph) Args(args Args) Args {
	if args == nil || g.walker != nil {
		return args
	}
	out := make(Args, len(args))
	for k, v := range args {
		out[k] = g.value(v)
	}
	return out
}

func (g *Graph) value(v any) any {
	switch v := v.(type) {
	case string:
		return g.Text(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = g.value(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = g.value(e)
		}
		return out
	default:
		return v
	}
}

// SchemaDescription returns the description of the schema definition.
func (g *Graph) SchemaDescription() (rich, plain *string) {
	return g.Description(g.description)
}

func byPosition(a, b *ast.Definition) int {
	pa, pb := a.Position, b.Position
	switch {
	case pa == nil && pb == nil:
		return cmp.Compare(a.Name, b.Name)
	case pa == nil:
		return 1
	case pb == nil:
		return -1
	}
	return cmp.Or(
		cmp.Compare(sourceName(pa), sourceName(pb)),
		cmp.Compare(pa.Line, pb.Line),
		cmp.Compare(pa.Column, pb.Column),
		cmp.Compare(a.Name, b.Name),
	)
}

func sourceName(p *ast.Position) string {
	if p.Src == nil {
		return ""
	}
	return p.Src.Name
}
