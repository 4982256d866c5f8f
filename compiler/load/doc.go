// Package load reads GraphQL schemas for documentation.
//
// Schemas come from three places:
//
//   - SDL files, given as paths, directories or doublestar glob patterns
//     ([Sources]), parsed into a raw document ([ParseDocument]) or a
//     validated schema ([LoadSchema])
//   - the schema list of a gqlgen project ([LoadGQLGenConfig])
//   - a running API, through the introspection query ([Introspector]) or a
//     saved introspection result ([DecodeIntrospection]); both are turned
//     into a raw document with [Document]
//
// Errors are reported as *gqlapi.LoadError or *gqlapi.IntrospectionError.
package load
