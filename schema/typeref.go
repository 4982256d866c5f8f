package schema

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Reference is a resolved type reference.
type Reference struct {
	// Display is the full signature in SDL syntax, e.g. "[Student!]!".
	Display string
	// Base is the innermost named type, e.g. "Student". It is the target
	// of cross-links.
	Base string
}

// Resolve computes the display signature and base type of a possibly
// wrapped type reference. A nil reference resolves to the zero Reference.
func Resolve(t *ast.Type) Reference {
	if t == nil {
		return Reference{}
	}
	return Reference{
		Display: Signature(t),
		Base:    BaseName(t),
	}
}

// BaseName strips every list and non-null wrapper from t and returns the
// named type underneath.
func BaseName(t *ast.Type) string {
	for t != nil && t.NamedType == "" {
		t = t.Elem
	}
	if t == nil {
		return ""
	}
	return t.NamedType
}

// Signature renders t left to right: lists in brackets, non-null as a "!"
// suffix.
func Signature(t *ast.Type) string {
	var b strings.Builder
	writeSignature(&b, t)
	return b.String()
}

func writeSignature(b *strings.Builder, t *ast.Type) {
	if t == nil {
		return
	}
	if t.NamedType != "" {
		b.WriteString(t.NamedType)
	} else {
		b.WriteByte('[')
		writeSignature(b, t.Elem)
		b.WriteByte(']')
	}
	if t.NonNull {
		b.WriteByte('!')
	}
}
