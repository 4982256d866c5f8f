package gen

import (
	"context"

	"github.com/syssam/gqlapi/schema"
	"github.com/syssam/gqlapi/view"
)

type (
	// Generator is the interface that wraps the Generate method.
	Generator interface {
		// Generate renders and writes the documentation of the graph.
		Generate(context.Context, *Graph) error
	}

	// GenerateFunc type is an adapter to allow the use of ordinary
	// functions as Generator. If f is a function with the appropriate
	// signature, GenerateFunc(f) is a Generator that calls f.
	GenerateFunc func(context.Context, *Graph) error

	// Hook defines the "generate middleware". A function that gets a
	// Generator and returns a Generator. For example:
	//
	//	hook := func(next gen.Generator) gen.Generator {
	//		return gen.GenerateFunc(func(ctx context.Context, g *gen.Graph) error {
	//			log.Println("documenting", g.Title)
	//			return next.Generate(ctx, g)
	//		})
	//	}
	Hook func(Generator) Generator
)

// Generate calls f(ctx, g).
func (f GenerateFunc) Generate(ctx context.Context, g *Graph) error {
	return f(ctx, g)
}

// Graph is the data handed to generators and templates: the generation
// config, the view tree of the page and the schema graph behind it.
type Graph struct {
	*Config
	Page   *view.Page
	Schema *schema.Graph
}

// NewGraph creates a new Graph for the given config and schema graph.
func NewGraph(c *Config, sg *schema.Graph) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if sg == nil {
		return nil, NewConfigError("Schema", nil, "schema graph cannot be nil")
	}
	if c.Target == "" {
		return nil, NewConfigError("Target", nil, "missing target directory in config")
	}
	return &Graph{Config: c, Page: view.NewPage(sg), Schema: sg}, nil
}

// Gen generates the documentation files of the graph, running the
// configured hooks around the default generator.
func (g *Graph) Gen(ctx context.Context) error {
	var gen Generator = GenerateFunc(generate)
	for i := len(g.Hooks) - 1; i >= 0; i-- {
		gen = g.Hooks[i](gen)
	}
	return gen.Generate(ctx, g)
}

// Generate builds a Graph from cfg and sg and generates its files.
func Generate(ctx context.Context, cfg *Config, sg *schema.Graph) error {
	g, err := NewGraph(cfg, sg)
	if err != nil {
		return err
	}
	return g.Gen(ctx)
}

// generate is the default generator.
func generate(ctx context.Context, g *Graph) error {
	return NewWriter(g).WithWorkers(g.workers()).WriteAll(ctx)
}

// Overview returns the sanitized description shown in the page header:
// the configured description if any, otherwise the schema description.
func (g *Graph) Overview() *string {
	if g.Description != "" {
		return g.Schema.Sanitizer().RichPtr(&g.Description)
	}
	return g.Page.Description()
}

// OverviewText returns the plain-text form of Overview.
func (g *Graph) OverviewText() *string {
	if g.Description != "" {
		return g.Schema.Sanitizer().PlainPtr(&g.Description)
	}
	return g.Page.DescriptionText()
}

// Documented reports whether name has its own entry on the page.
func (g *Graph) Documented(name string) bool {
	_, ok := g.Schema.Lookup(name)
	return ok
}

// funcs returns the template functions bound to the graph.
func (g *Graph) funcs() map[string]any {
	return map[string]any{
		"documented": g.Documented,
	}
}
