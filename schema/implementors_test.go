package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vektah/gqlparser/v2/ast"
)

func object(name string, interfaces ...string) *ast.Definition {
	return &ast.Definition{Kind: ast.Object, Name: name, Interfaces: interfaces}
}

func iface(name string) *ast.Definition {
	return &ast.Definition{Kind: ast.Interface, Name: name}
}

func TestLink(t *testing.T) {
	tests := []struct {
		name       string
		concrete   []*ast.Definition
		interfaces []*ast.Definition
		want       Implementors
	}{
		{
			name:       "declaration order",
			concrete:   []*ast.Definition{object("Student", "Named"), object("Course", "Named", "Dated"), object("Book")},
			interfaces: []*ast.Definition{iface("Named"), iface("Dated")},
			want:       Implementors{"Named": {"Student", "Course"}, "Dated": {"Course"}},
		},
		{
			name:       "unknown interface ignored",
			concrete:   []*ast.Definition{object("Student", "Named", "Ghost")},
			interfaces: []*ast.Definition{iface("Named")},
			want:       Implementors{"Named": {"Student"}},
		},
		{
			name:       "duplicate declaration recorded once",
			concrete:   []*ast.Definition{object("Student", "Named", "Named")},
			interfaces: []*ast.Definition{iface("Named")},
			want:       Implementors{"Named": {"Student"}},
		},
		{
			name:       "interface without implementors",
			concrete:   []*ast.Definition{object("Book")},
			interfaces: []*ast.Definition{iface("Named")},
			want:       Implementors{},
		},
		{
			name:       "nil entries",
			concrete:   []*ast.Definition{nil, object("Student", "Named")},
			interfaces: []*ast.Definition{nil, iface("Named")},
			want:       Implementors{"Named": {"Student"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Link(tt.concrete, tt.interfaces)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImplementorsOf(t *testing.T) {
	idx := Link([]*ast.Definition{object("Student", "Named")}, []*ast.Definition{iface("Named")})
	assert.Equal(t, []string{"Student"}, idx.Of("Named"))
	assert.Nil(t, idx.Of("Dated"))
}
