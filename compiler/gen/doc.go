// Package gen renders the documentation page of a GraphQL schema.
//
// The generation pipeline follows this flow:
//
//	schema.Graph (definitions, roots, implementors)
//	        ↓
//	   view.Page (sections of element views)
//	        ↓
//	   Graph (page + Config)
//	        ↓
//	   Hooks → default Generator
//	        ↓
//	   Writer (one file per format, rendered in parallel)
//
// # Formats
//
// Three formats are supported:
//
//   - html: a single self-contained page (html/template)
//   - markdown: the same content as Markdown tables (text/template)
//   - json: the view tree as a JSON document ([PageJSON])
//
// HTML and Markdown use embedded templates which can be replaced per
// format with [WithTemplateFile]. Templates get the sprig function library
// and the page helpers listed in [Funcs].
//
// # Usage
//
//	cfg, err := gen.NewConfig(
//		gen.WithTitle("Library API"),
//		gen.WithTarget("docs"),
//		gen.WithFormats("html", "markdown"),
//	)
//	if err != nil {
//		return err
//	}
//	if err := gen.Generate(ctx, cfg, schema.NewGraph(doc)); err != nil {
//		return err
//	}
//
// Files are written with an atomic rename, so a page being served is never
// observed half written.
package gen
