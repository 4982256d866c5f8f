// Package view exposes a schema graph as a tree of read-only views for
// documentation renderers.
//
// Every view implements [View]. Role-specific views add a fixed set of
// accessors: [Object] and [Interface] have fields, [Interface] also has
// implementors, [Input] has input fields, [Field] and [Argument] expose their
// type signature and validation directives, [Enum] has values and [Union]
// has member types. [Page] groups the definitions into sections in a stable
// order.
//
// Views hold a reference to the graph and to the AST element they describe.
// Every attribute is computed when it is read, so repeated reads return the
// same result and views can be created and dropped freely while rendering.
package view
