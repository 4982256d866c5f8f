// Package schema holds the documentation model of a GraphQL schema.
//
// The type system itself is represented with the gqlparser AST
// (github.com/vektah/gqlparser/v2/ast). This package adds what the AST does
// not provide:
//
//   - [Graph]: definitions grouped by [Kind] in declaration order, a name
//     index and the root operation types, built either from a raw document
//     ([NewGraph]) or from a resolved schema ([FromSchema])
//   - [Resolve]: the display signature and base type of a wrapped type
//     reference
//   - [Directive], [Directives] and [Deprecated]: directive argument
//     extraction for any element that can carry directives
//   - [Link] and [Implementors]: the reverse index from interfaces to the
//     object types implementing them
//
// None of these operations fail. Missing descriptions, unknown directives
// and interface names without a definition all produce empty results.
//
// # Raw and resolved input
//
// A raw document is sanitized once, in place, when the graph is built: every
// string goes through the rich sanitizer, and description fields also get a
// plain-text variant. A resolved schema is left untouched and descriptions
// are sanitized on access.
//
// Both forms resolve implementors the same way, by scanning the interfaces
// each object type declares. The possible-types index of a resolved schema
// is not consulted, so both forms agree on partially resolved input.
package schema
