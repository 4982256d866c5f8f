// Package gqlapi generates browsable API documentation from GraphQL schemas.
//
// The pipeline is split into small packages:
//
//   - [sanitize]: text sanitizing (plain, rich and Markdown) and the
//     cycle-safe graph walker that normalizes every string of a schema tree
//   - [schema]: the schema graph, type reference resolution, directive
//     extraction and the interface implementor index
//   - [view]: read-only, render-oriented projections of schema elements
//   - [compiler/load]: reading SDL files, gqlgen.yml discovery and remote
//     introspection
//   - [compiler/gen]: rendering views to HTML, Markdown and JSON
//
// The gqlapi command in cmd/gqlapi runs the pipeline from the command line
// (from-file, from-url and watch).
//
// # Quick Start
//
//	sources, err := load.Sources("./graph/*.graphqls")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := load.ParseDocument(sources...)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg, err := gen.NewConfig(
//	    gen.WithTitle("Library API"),
//	    gen.WithTarget("./docs"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = gen.Generate(ctx, cfg, schema.NewGraph(doc))
//
// # Errors
//
// Core packages never fail: absent descriptions, unknown directives and
// dangling interface names produce empty results. Loading and rendering
// failures are reported with [LoadError], [IntrospectionError] and
// [RenderError], which match the sentinels [ErrSchemaLoad],
// [ErrIntrospection] and [ErrRender] through errors.Is.
package gqlapi
