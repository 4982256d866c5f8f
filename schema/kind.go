package schema

import "github.com/vektah/gqlparser/v2/ast"

// Kind is the category of a named type definition.
type Kind uint8

// Definition kinds, in documentation order.
const (
	KindObject Kind = iota + 1
	KindInterface
	KindEnum
	KindUnion
	KindInput
	KindScalar
)

// Kinds lists every definition kind in documentation order.
var Kinds = []Kind{KindObject, KindInterface, KindEnum, KindUnion, KindInput, KindScalar}

// KindOf returns the kind of a definition. It reports false for nil
// definitions and kinds the documentation does not cover.
func KindOf(def *ast.Definition) (Kind, bool) {
	if def == nil {
		return 0, false
	}
	switch def.Kind {
	case ast.Object:
		return KindObject, true
	case ast.Interface:
		return KindInterface, true
	case ast.Enum:
		return KindEnum, true
	case ast.Union:
		return KindUnion, true
	case ast.InputObject:
		return KindInput, true
	case ast.Scalar:
		return KindScalar, true
	default:
		return 0, false
	}
}

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	case KindInput:
		return "input"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}
