package schema

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Directive names with a dedicated view attribute.
const (
	DirectiveDeprecated = "deprecated"
	DirectiveRange      = "range"
	DirectiveLength     = "length"
	DirectiveMask       = "mask"
)

// Args maps directive argument names to their literal values. Values are
// int64, float64, string, bool, []any, map[string]any or nil.
type Args map[string]any

// Int returns an integer argument.
func (a Args) Int(name string) (int64, bool) {
	v, ok := a[name].(int64)
	return v, ok
}

// String returns a string or enum argument.
func (a Args) String(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok
}

// Annotated is implemented by elements outside the gqlparser AST that
// carry directives.
type Annotated interface {
	Annotations() ast.DirectiveList
}

// Directive returns the arguments of the first directive named name
// (case-insensitive) attached to element. It reports false when the element
// has no such directive or cannot carry directives at all, as is the case
// for built-in scalars.
func Directive(element any, name string) (Args, bool) {
	list, ok := annotations(element)
	if !ok {
		return nil, false
	}
	for _, d := range list {
		if d != nil && strings.EqualFold(d.Name, name) {
			return argsOf(d), true
		}
	}
	return nil, false
}

// Directives returns the arguments of every directive named name attached
// to element, in declaration order. It supports repeatable directives.
func Directives(element any, name string) ([]Args, bool) {
	list, ok := annotations(element)
	if !ok {
		return nil, false
	}
	var all []Args
	for _, d := range list {
		if d != nil && strings.EqualFold(d.Name, name) {
			all = append(all, argsOf(d))
		}
	}
	if len(all) == 0 {
		return nil, false
	}
	return all, true
}

// Deprecated returns the deprecation reason of element. Without an explicit
// reason the message reads "This <kind> is deprecated".
func Deprecated(element any, kind string) (string, bool) {
	args, ok := Directive(element, DirectiveDeprecated)
	if !ok {
		return "", false
	}
	if reason, ok := args.String("reason"); ok && reason != "" {
		return reason, true
	}
	return "This " + kind + " is deprecated", true
}

func annotations(element any) (ast.DirectiveList, bool) {
	switch e := element.(type) {
	case *ast.Definition:
		if e == nil || builtIn(e) {
			return nil, false
		}
		return e.Directives, true
	case *ast.FieldDefinition:
		if e == nil {
			return nil, false
		}
		return e.Directives, true
	case *ast.ArgumentDefinition:
		if e == nil {
			return nil, false
		}
		return e.Directives, true
	case *ast.EnumValueDefinition:
		if e == nil {
			return nil, false
		}
		return e.Directives, true
	case ast.DirectiveList:
		return e, true
	case Annotated:
		return e.Annotations(), true
	default:
		return nil, false
	}
}

func argsOf(d *ast.Directive) Args {
	args := make(Args, len(d.Arguments))
	for _, a := range d.Arguments {
		if a == nil {
			continue
		}
		args[a.Name] = literal(a.Value)
	}
	return args
}

// literal converts an argument value. Variables cannot appear in a type
// system document, so they resolve to nil.
func literal(v *ast.Value) any {
	if v == nil {
		return nil
	}
	out, err := v.Value(nil)
	if err != nil {
		return v.Raw
	}
	return out
}

// builtIn reports whether def comes from the GraphQL prelude.
func builtIn(def *ast.Definition) bool {
	if def.BuiltIn {
		return true
	}
	return def.Position != nil && def.Position.Src != nil && def.Position.Src.BuiltIn
}
