package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

const librarySDL = `
"""
Library API
"""
schema {
  query: Root
  mutation: Mutation
}

directive @range(min: Int, max: Int) on FIELD_DEFINITION | ARGUMENT_DEFINITION | INPUT_FIELD_DEFINITION
directive @length(min: Int, max: Int) repeatable on FIELD_DEFINITION | ARGUMENT_DEFINITION | INPUT_FIELD_DEFINITION
directive @mask(pattern: String) on FIELD_DEFINITION | INPUT_FIELD_DEFINITION

"The <b>root</b> query<script>alert(1)</script>"
type Root {
  "All students"
  students(first: Int = 10 @range(min: 1, max: 100)): [Student!]!
  search(term: String!): [SearchResult]
}

type Mutation {
  enroll(student: ID!, course: ID!): Course
}

interface Named {
  name: String!
}

interface Dated {
  createdAt: String
}

type Student implements Named {
  name: String! @length(min: 1) @length(max: 10)
  nickname: String @deprecated
}

type Course implements Named & Dated {
  name: String!
  createdAt: String
  title: String @deprecated(reason: "Use name")
}

type Book {
  isbn: String @mask(pattern: "999-9")
}

union SearchResult = Student | Course

enum Level {
  BEGINNER
  ADVANCED @deprecated
}

input StudentInput {
  name: String! @length(min: 1)
  level: Level = BEGINNER
}

scalar Date

extend type Book implements Named {
  name: String!
}
`

// parseDocument parses sdl without validating it.
func parseDocument(t *testing.T, sdl string) *ast.SchemaDocument {
	t.Helper()
	doc, err := parser.ParseSchema(&ast.Source{Name: "library.graphql", Input: sdl})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	require.NotNil(t, doc)
	return doc
}

// loadSchema parses and validates sdl.
func loadSchema(t *testing.T, sdl string) *ast.Schema {
	t.Helper()
	s, err := gqlparser.LoadSchema(&ast.Source{Name: "library.graphql", Input: sdl})
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	require.NotNil(t, s)
	return s
}

func names(defs []*ast.Definition) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.Name)
	}
	return out
}
