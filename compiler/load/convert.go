package load

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// IntrospectionSchema is the "__schema" object of an introspection result.
type IntrospectionSchema struct {
	Description      *string          `json:"description"`
	QueryType        *NamedRef        `json:"queryType"`
	MutationType     *NamedRef        `json:"mutationType"`
	SubscriptionType *NamedRef        `json:"subscriptionType"`
	Types            []*FullType      `json:"types"`
	Directives       []*DirectiveType `json:"directives"`
}

// NamedRef names a root operation type.
type NamedRef struct {
	Name string `json:"name"`
}

// FullType is an introspected named type.
type FullType struct {
	Kind          string        `json:"kind"`
	Name          string        `json:"name"`
	Description   *string       `json:"description"`
	Fields        []*FieldValue `json:"fields"`
	InputFields   []*InputValue `json:"inputFields"`
	Interfaces    []*TypeRef    `json:"interfaces"`
	EnumValues    []*EnumValue  `json:"enumValues"`
	PossibleTypes []*TypeRef    `json:"possibleTypes"`
}

// FieldValue is an introspected field.
type FieldValue struct {
	Name              string        `json:"name"`
	Description       *string       `json:"description"`
	Args              []*InputValue `json:"args"`
	Type              *TypeRef      `json:"type"`
	IsDeprecated      bool          `json:"isDeprecated"`
	DeprecationReason *string       `json:"deprecationReason"`
}

// InputValue is an introspected argument or input field.
type InputValue struct {
	Name              string   `json:"name"`
	Description       *string  `json:"description"`
	Type              *TypeRef `json:"type"`
	DefaultValue      *string  `json:"defaultValue"`
	IsDeprecated      bool     `json:"isDeprecated"`
	DeprecationReason *string  `json:"deprecationReason"`
}

// EnumValue is an introspected enum value.
type EnumValue struct {
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	IsDeprecated      bool    `json:"isDeprecated"`
	DeprecationReason *string `json:"deprecationReason"`
}

// TypeRef is an introspected, possibly wrapped, type reference.
type TypeRef struct {
	Kind   string   `json:"kind"`
	Name   *string  `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

// DirectiveType is an introspected directive definition.
type DirectiveType struct {
	Name         string        `json:"name"`
	Description  *string       `json:"description"`
	Locations    []string      `json:"locations"`
	Args         []*InputValue `json:"args"`
	IsRepeatable bool          `json:"isRepeatable"`
}

// DecodeIntrospection decodes a saved introspection result. Both the full
// response ({"data": {"__schema": ...}}) and its data object
// ({"__schema": ...}) are accepted.
func DecodeIntrospection(data []byte) (*IntrospectionSchema, error) {
	var wrapped struct {
		Data *struct {
			Schema *IntrospectionSchema `json:"__schema"`
		} `json:"data"`
		Schema *IntrospectionSchema `json:"__schema"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decode introspection: %w", err)
	}
	switch {
	case wrapped.Data != nil && wrapped.Data.Schema != nil:
		return wrapped.Data.Schema, nil
	case wrapped.Schema != nil:
		return wrapped.Schema, nil
	default:
		return nil, errors.New("decode introspection: no __schema object")
	}
}

// builtinScalars are defined by every GraphQL server and left out of
// converted documents.
var builtinScalars = map[string]bool{
	"String": true, "Int": true, "Float": true, "Boolean": true, "ID": true,
}

// builtinDirectives are defined by every GraphQL server.
var builtinDirectives = map[string]bool{
	"skip": true, "include": true, "deprecated": true, "specifiedBy": true, "oneOf": true,
}

// Document converts an introspection result into a raw schema document
// named after source. Introspection and built-in types are left out.
// Deprecation flags become @deprecated directives and default values are
// parsed back into literals.
func Document(s *IntrospectionSchema, source string) *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}
	if s == nil {
		return doc
	}
	src := &ast.Source{Name: source}
	pos := &ast.Position{Src: src}

	var ops ast.OperationTypeDefinitionList
	for _, root := range []struct {
		op  ast.Operation
		ref *NamedRef
	}{
		{ast.Query, s.QueryType},
		{ast.Mutation, s.MutationType},
		{ast.Subscription, s.SubscriptionType},
	} {
		if root.ref != nil && root.ref.Name != "" {
			ops = append(ops, &ast.OperationTypeDefinition{Operation: root.op, Type: root.ref.Name, Position: pos})
		}
	}
	if len(ops) > 0 {
		doc.Schema = append(doc.Schema, &ast.SchemaDefinition{
			Description:    deref(s.Description),
			OperationTypes: ops,
			Position:       pos,
		})
	}

	for _, t := range s.Types {
		if t == nil || strings.HasPrefix(t.Name, "__") || builtinScalars[t.Name] {
			continue
		}
		if def := definition(t, pos); def != nil {
			doc.Definitions = append(doc.Definitions, def)
		}
	}
	for _, d := range s.Directives {
		if d == nil || builtinDirectives[d.Name] {
			continue
		}
		doc.Directives = append(doc.Directives, directiveDefinition(d, pos))
	}
	return doc
}

func definition(t *FullType, pos *ast.Position) *ast.Definition {
	def := &ast.Definition{
		Name:        t.Name,
		Description: deref(t.Description),
		Position:    pos,
	}
	switch t.Kind {
	case "OBJECT":
		def.Kind = ast.Object
	case "INTERFACE":
		def.Kind = ast.Interface
	case "UNION":
		def.Kind = ast.Union
	case "ENUM":
		def.Kind = ast.Enum
	case "INPUT_OBJECT":
		def.Kind = ast.InputObject
	case "SCALAR":
		def.Kind = ast.Scalar
	default:
		return nil
	}
	for _, i := range t.Interfaces {
		if name := BaseTypeName(i); name != "" {
			def.Interfaces = append(def.Interfaces, name)
		}
	}
	if def.Kind == ast.Union {
		for _, p := range t.PossibleTypes {
			if name := BaseTypeName(p); name != "" {
				def.Types = append(def.Types, name)
			}
		}
	}
	for _, f := range t.Fields {
		if f == nil {
			continue
		}
		fd := &ast.FieldDefinition{
			Name:        f.Name,
			Description: deref(f.Description),
			Type:        typeOf(f.Type),
			Directives:  deprecation(f.IsDeprecated, f.DeprecationReason),
			Position:    pos,
		}
		for _, a := range f.Args {
			if a == nil {
				continue
			}
			fd.Arguments = append(fd.Arguments, &ast.ArgumentDefinition{
				Name:         a.Name,
				Description:  deref(a.Description),
				Type:         typeOf(a.Type),
				DefaultValue: defaultValue(a.DefaultValue),
				Directives:   deprecation(a.IsDeprecated, a.DeprecationReason),
				Position:     pos,
			})
		}
		def.Fields = append(def.Fields, fd)
	}
	for _, f := range t.InputFields {
		if f == nil {
			continue
		}
		def.Fields = append(def.Fields, &ast.FieldDefinition{
			Name:         f.Name,
			Description:  deref(f.Description),
			Type:         typeOf(f.Type),
			DefaultValue: defaultValue(f.DefaultValue),
			Directives:   deprecation(f.IsDeprecated, f.DeprecationReason),
			Position:     pos,
		})
	}
	for _, v := range t.EnumValues {
		if v == nil {
			continue
		}
		def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
			Name:        v.Name,
			Description: deref(v.Description),
			Directives:  deprecation(v.IsDeprecated, v.DeprecationReason),
			Position:    pos,
		})
	}
	return def
}

func directiveDefinition(d *DirectiveType, pos *ast.Position) *ast.DirectiveDefinition {
	dd := &ast.DirectiveDefinition{
		Name:         d.Name,
		Description:  deref(d.Description),
		IsRepeatable: d.IsRepeatable,
		Position:     pos,
	}
	for _, loc := range d.Locations {
		dd.Locations = append(dd.Locations, ast.DirectiveLocation(loc))
	}
	for _, a := range d.Args {
		if a == nil {
			continue
		}
		dd.Arguments = append(dd.Arguments, &ast.ArgumentDefinition{
			Name:         a.Name,
			Description:  deref(a.Description),
			Type:         typeOf(a.Type),
			DefaultValue: defaultValue(a.DefaultValue),
			Position:     pos,
		})
	}
	return dd
}

// typeOf converts an introspected type reference. NON_NULL wrappers become
// the NonNull flag of the type they wrap.
func typeOf(ref *TypeRef) *ast.Type {
	if ref == nil {
		return nil
	}
	switch ref.Kind {
	case "NON_NULL":
		t := typeOf(ref.OfType)
		if t != nil {
			t.NonNull = true
		}
		return t
	case "LIST":
		return &ast.Type{Elem: typeOf(ref.OfType)}
	default:
		return &ast.Type{NamedType: deref(ref.Name)}
	}
}

// BaseTypeName returns the named type under every wrapper of ref.
func BaseTypeName(ref *TypeRef) string {
	for ref != nil && ref.Name == nil {
		ref = ref.OfType
	}
	if ref == nil {
		return ""
	}
	return *ref.Name
}

func deprecation(deprecated bool, reason *string) ast.DirectiveList {
	if !deprecated {
		return nil
	}
	d := &ast.Directive{Name: "deprecated"}
	if r := deref(reason); r != "" {
		d.Arguments = ast.ArgumentList{{
			Name:  "reason",
			Value: &ast.Value{Kind: ast.StringValue, Raw: r},
		}}
	}
	return ast.DirectiveList{d}
}

// defaultValue parses an introspected default value, which is a literal in
// GraphQL syntax. Unparsable values are kept verbatim.
func defaultValue(raw *string) *ast.Value {
	if raw == nil || *raw == "" {
		return nil
	}
	doc, err := parser.ParseSchema(&ast.Source{Input: "input Default { value: Default = " + *raw + " }"})
	if err != nil || len(doc.Definitions) != 1 || len(doc.Definitions[0].Fields) != 1 {
		return &ast.Value{Kind: ast.EnumValue, Raw: *raw}
	}
	v := doc.Definitions[0].Fields[0].DefaultValue
	if v == nil {
		return &ast.Value{Kind: ast.EnumValue, Raw: *raw}
	}
	clearPositions(v)
	return v
}

func clearPositions(v *ast.Value) {
	v.Position = nil
	for _, c := range v.Children {
		c.Position = nil
		if c.Value != nil {
			clearPositions(c.Value)
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
