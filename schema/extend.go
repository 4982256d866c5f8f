package schema

import "github.com/vektah/gqlparser/v2/ast"

// mergeExtensions folds "extend ..." definitions into the definitions they
// extend. Extensions without a matching base definition of the same kind
// are dropped. doc.Extensions is cleared so a document is merged once.
func mergeExtensions(doc *ast.SchemaDocument) {
	if len(doc.Extensions) == 0 {
		return
	}
	base := make(map[string]*ast.Definition, len(doc.Definitions))
	for _, def := range doc.Definitions {
		if def == nil {
			continue
		}
		if _, ok := base[def.Name]; !ok {
			base[def.Name] = def
		}
	}
	for _, ext := range doc.Extensions {
		if ext == nil {
			continue
		}
		def, ok := base[ext.Name]
		if !ok || def.Kind != ext.Kind {
			continue
		}
		def.Interfaces = append(def.Interfaces, ext.Interfaces...)
		def.Fields = append(def.Fields, ext.Fields...)
		def.EnumValues = append(def.EnumValues, ext.EnumValues...)
		def.Types = append(def.Types, ext.Types...)
		def.Directives = append(def.Directives, ext.Directives...)
	}
	doc.Extensions = nil
}
