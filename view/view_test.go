package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/syssam/gqlapi/schema"
)

const campusSDL = `
directive @range(min: Int, max: Int) on FIELD_DEFINITION | ARGUMENT_DEFINITION | INPUT_FIELD_DEFINITION
directive @length(min: Int, max: Int) repeatable on FIELD_DEFINITION | ARGUMENT_DEFINITION | INPUT_FIELD_DEFINITION
directive @mask(pattern: String) on FIELD_DEFINITION | INPUT_FIELD_DEFINITION

"Entry point"
type Query {
  "Students by page"
  students(first: Int = 10 @range(min: 1, max: 100), "Name filter" name: String): [Student!]!
  search(term: String!): [SearchResult]
}

type Mutation {
  enroll(student: ID!, course: ID!): Course
}

"Anything with a <i>name</i>"
interface Named {
  name: String!
}

type Student implements Named {
  name: String! @length(min: 1) @length(max: 10)
  nickname: String @deprecated
  phone: String @mask(pattern: "999-9999")
}

type Course implements Named {
  name: String!
  title: String @deprecated(reason: "Use name")
}

type Book {
  isbn: String
}

union SearchResult = Student | Course

enum Level {
  BEGINNER
  "Past the basics"
  ADVANCED @deprecated
}

input StudentInput {
  name: String! @length(min: 1)
  level: Level = BEGINNER
}

scalar Date
`

func rawGraph(t *testing.T) *schema.Graph {
	t.Helper()
	doc, err := parser.ParseSchema(&ast.Source{Name: "campus.graphql", Input: campusSDL})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return schema.NewGraph(doc)
}

func resolvedGraph(t *testing.T) *schema.Graph {
	t.Helper()
	s, err := gqlparser.LoadSchema(&ast.Source{Name: "campus.graphql", Input: campusSDL})
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	return schema.FromSchema(s)
}

func lookup[T View](t *testing.T, g *schema.Graph, name string) T {
	t.Helper()
	v, ok := Lookup(g, name)
	require.True(t, ok, "definition %s", name)
	typed, ok := v.(T)
	require.True(t, ok, "view of %s has type %T", name, v)
	return typed
}

func TestKinds(t *testing.T) {
	g := rawGraph(t)
	tests := map[string]string{
		"Student":      KindType,
		"Named":        KindInterface,
		"StudentInput": KindInput,
		"Date":         KindScalar,
		"Level":        KindEnum,
		"SearchResult": KindUnion,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			v, ok := Lookup(g, name)
			require.True(t, ok)
			assert.Equal(t, want, v.Kind())
			assert.Equal(t, name, v.Name())
		})
	}

	_, ok := Lookup(g, "Missing")
	assert.False(t, ok)
	assert.Nil(t, New(g, nil))
	assert.Nil(t, New(g, &ast.Definition{Kind: ast.DefinitionKind("DIRECTIVE"), Name: "x"}))
}

func TestObject(t *testing.T) {
	for name, g := range map[string]*schema.Graph{"raw": rawGraph(t), "resolved": resolvedGraph(t)} {
		t.Run(name, func(t *testing.T) {
			student := lookup[*Object](t, g, "Student")
			assert.Equal(t, []string{"Named"}, student.Interfaces())
			assert.Nil(t, student.Description())
			assert.Nil(t, student.DescriptionText())
			assert.False(t, student.IsDeprecated())
			assert.Empty(t, student.Deprecated())

			fields := student.Fields()
			require.Len(t, fields, 3)

			nameField := fields[0]
			assert.Equal(t, KindField, nameField.Kind())
			assert.Equal(t, "String!", nameField.Type())
			assert.Equal(t, "String", nameField.BasicType())
			assert.Equal(t, []schema.Args{{"min": int64(1)}, {"max": int64(10)}}, nameField.Length())
			assert.Nil(t, nameField.Range())
			assert.Empty(t, nameField.Arguments())

			nickname := fields[1]
			assert.True(t, nickname.IsDeprecated())
			assert.Equal(t, "This Field is deprecated", nickname.Deprecated())

			phone := fields[2]
			assert.Equal(t, schema.Args{"pattern": "999-9999"}, phone.Mask())

			course := lookup[*Object](t, g, "Course")
			assert.Equal(t, "Use name", course.Fields()[1].Deprecated())
		})
	}
}

func TestFieldArguments(t *testing.T) {
	for name, g := range map[string]*schema.Graph{"raw": rawGraph(t), "resolved": resolvedGraph(t)} {
		t.Run(name, func(t *testing.T) {
			query := lookup[*Object](t, g, "Query")
			require.Len(t, query.Fields(), 2, "introspection fields are hidden")
			students := query.Fields()[0]
			assert.Equal(t, "[Student!]!", students.Type())
			assert.Equal(t, "Student", students.BasicType())
			require.NotNil(t, students.Description())
			assert.Equal(t, "Students by page", *students.Description())

			args := students.Arguments()
			require.Len(t, args, 2)
			first := args[0]
			assert.Equal(t, KindArgument, first.Kind())
			assert.Equal(t, "first", first.Name())
			assert.Equal(t, "Int", first.Type())
			assert.Equal(t, "10", first.DefaultValue())
			assert.Equal(t, schema.Args{"min": int64(1), "max": int64(100)}, first.Range())
			assert.Nil(t, first.Length())

			filter := args[1]
			assert.Empty(t, filter.DefaultValue())
			require.NotNil(t, filter.DescriptionText())
			assert.Equal(t, "Name filter", *filter.DescriptionText())
		})
	}
}

func TestDirectiveText(t *testing.T) {
	const sdl = `
directive @mask(pattern: String) on FIELD_DEFINITION

type Query {
  old: String @deprecated(reason: "Use <b>new</b><script>alert(1)</script> & co")
  code: String @mask(pattern: "<script>alert(2)</script>9-9")
}
`
	doc, err := parser.ParseSchema(&ast.Source{Name: "directives.graphql", Input: sdl})
	require.NoError(t, err)
	s, err := gqlparser.LoadSchema(&ast.Source{Name: "directives.graphql", Input: sdl})
	require.NoError(t, err)

	raw := lookup[*Object](t, schema.NewGraph(doc), "Query").Fields()
	resolved := lookup[*Object](t, schema.FromSchema(s), "Query").Fields()
	require.Len(t, raw, 2)
	require.Len(t, resolved, 2)

	assert.NotContains(t, resolved[0].Deprecated(), "<script>")
	assert.Contains(t, resolved[0].Deprecated(), "<b>new</b>")
	assert.Equal(t, raw[0].Deprecated(), resolved[0].Deprecated(), "both forms sanitize deprecation reasons")

	pattern, ok := resolved[1].Mask().String("pattern")
	require.True(t, ok)
	assert.NotContains(t, pattern, "<script>")
	assert.Equal(t, raw[1].Mask(), resolved[1].Mask(), "both forms sanitize directive arguments")
}

func TestInterface(t *testing.T) {
	for name, g := range map[string]*schema.Graph{"raw": rawGraph(t), "resolved": resolvedGraph(t)} {
		t.Run(name, func(t *testing.T) {
			named := lookup[*Interface](t, g, "Named")
			assert.Equal(t, []string{"Student", "Course"}, named.Implementors())
			require.Len(t, named.Fields(), 1)

			require.NotNil(t, named.Description())
			assert.Equal(t, "Anything with a <i>name</i>", *named.Description())
			require.NotNil(t, named.DescriptionText())
			assert.Equal(t, "Anything with a name", *named.DescriptionText())
		})
	}
}

func TestInput(t *testing.T) {
	g := rawGraph(t)
	input := lookup[*Input](t, g, "StudentInput")
	fields := input.Fields()
	require.Len(t, fields, 2)

	name := fields[0]
	assert.Equal(t, KindField, name.Kind())
	assert.Equal(t, []schema.Args{{"min": int64(1)}}, name.Length())
	assert.NotNil(t, name.Arguments())
	assert.Empty(t, name.Arguments())
	assert.Empty(t, name.DefaultValue())

	level := fields[1]
	assert.Equal(t, "Level", level.Type())
	assert.Equal(t, "BEGINNER", level.DefaultValue())
}

func TestEnum(t *testing.T) {
	g := rawGraph(t)
	level := lookup[*Enum](t, g, "Level")
	values := level.Values()
	require.Len(t, values, 2)

	assert.Equal(t, KindEnumValue, values[0].Kind())
	assert.Equal(t, "BEGINNER", values[0].Name())
	assert.False(t, values[0].IsDeprecated())

	assert.Equal(t, "This Enum Value is deprecated", values[1].Deprecated())
	require.NotNil(t, values[1].Description())
	assert.Equal(t, "Past the basics", *values[1].Description())
}

func TestUnion(t *testing.T) {
	g := rawGraph(t)
	union := lookup[*Union](t, g, "SearchResult")
	assert.Equal(t, []TypeLink{
		{Type: "Student", BasicType: "Student"},
		{Type: "Course", BasicType: "Course"},
	}, union.Types())
}

func TestScalar(t *testing.T) {
	date := lookup[*Scalar](t, rawGraph(t), "Date")
	assert.Equal(t, KindScalar, date.Kind())
	assert.False(t, date.IsDeprecated())

	doc, err := parser.ParseSchema(&ast.Source{Name: "scalar.graphql", Input: `scalar Timestamp @deprecated(reason: "Use String")`})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	ts := lookup[*Scalar](t, schema.NewGraph(doc), "Timestamp")
	assert.True(t, ts.IsDeprecated())
	assert.Equal(t, "Use String", ts.Deprecated())
}

func TestStableAccess(t *testing.T) {
	g := rawGraph(t)
	named := lookup[*Interface](t, g, "Named")
	first := named.Description()
	second := named.Description()
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
	assert.Equal(t, named.Implementors(), named.Implementors())
}

func TestPageSections(t *testing.T) {
	for name, g := range map[string]*schema.Graph{"raw": rawGraph(t), "resolved": resolvedGraph(t)} {
		t.Run(name, func(t *testing.T) {
			page := NewPage(g)
			require.NotNil(t, page.Query())
			assert.Equal(t, "Query", page.Query().Name())
			require.NotNil(t, page.Mutation())
			assert.Nil(t, page.Subscription())

			got := make(map[string][]string)
			var order []string
			for _, s := range page.Sections() {
				order = append(order, s.Title)
				names := []string{}
				for _, v := range s.Views {
					names = append(names, v.Name())
				}
				got[s.Title] = names
			}

			want := map[string][]string{
				SectionQuery:        {"Query"},
				SectionMutation:     {"Mutation"},
				SectionSubscription: {},
				SectionTypes:        {"Student", "Course", "Book"},
				SectionInterfaces:   {"Named"},
				SectionEnums:        {"Level"},
				SectionUnions:       {"SearchResult"},
				SectionInputTypes:   {"StudentInput"},
				SectionScalars:      {"Date"},
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("sections mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, []string{
				"Query", "Mutation", "Subscription", "Types", "Interfaces",
				"Enums", "Unions", "Input Types", "Scalars",
			}, order)
		})
	}
}

func TestPageSchemaRoots(t *testing.T) {
	doc, err := parser.ParseSchema(&ast.Source{Name: "roots.graphql", Input: `
"""
Campus API
"""
schema { query: Root }
type Root { ping: String }
type Query { unused: String }
`})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	page := NewPage(schema.NewGraph(doc))
	require.NotNil(t, page.Query())
	assert.Equal(t, "Root", page.Query().Name())
	require.Len(t, page.Types(), 1)
	assert.Equal(t, "Query", page.Types()[0].Name())
	require.NotNil(t, page.DescriptionText())
	assert.Equal(t, "Campus API", *page.DescriptionText())
}
