package gen

import (
	"fmt"
	"html"
	htmltemplate "html/template"
	"maps"
	"slices"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/gqlapi/sanitize"
	"github.com/syssam/gqlapi/schema"
)

var titleCase = cases.Title(language.English)

// Funcs returns the functions available to text templates: the sprig
// library plus the page helpers.
//
//	anchor       joins its arguments into a URL-safe fragment id
//	heading      title-cases a label
//	text         dereferences an optional string
//	cell         flattens optional text for a Markdown table cell
//	inline       flattens a string for a Markdown table cell
//	literal      decodes the entities of sanitized text for code and HTML output
//	markdown     renders Markdown text as sanitized HTML
//	constraints  describes the @range, @length and @mask directives of a field
//	documented   reports whether a type has its own entry on the page
func Funcs(s *sanitize.Sanitizer) template.FuncMap {
	funcs := sprig.TxtFuncMap()
	maps.Copy(funcs, template.FuncMap{
		"anchor":      Anchor,
		"heading":     Heading,
		"text":        deref,
		"cell":        Cell,
		"inline":      Inline,
		"literal":     html.UnescapeString,
		"markdown":    func(text *string) string { return s.Markdown(deref(text)) },
		"constraints": Constraints,
		"documented":  func(string) bool { return false },
	})
	return funcs
}

// HTMLFuncs returns Funcs for html/template. Descriptions are sanitized
// before they reach a template, so "rich" and "markdown" mark their output
// as safe HTML.
func HTMLFuncs(s *sanitize.Sanitizer) htmltemplate.FuncMap {
	funcs := htmltemplate.FuncMap(Funcs(s))
	funcs["rich"] = func(text *string) htmltemplate.HTML {
		return htmltemplate.HTML(deref(text)) //nolint:gosec
	}
	funcs["markdown"] = func(text *string) htmltemplate.HTML {
		return htmltemplate.HTML(s.Markdown(deref(text))) //nolint:gosec
	}
	return funcs
}

// Anchor returns a fragment id for the given name parts.
func Anchor(parts ...string) string {
	return inflect.Parameterize(strings.Join(parts, " "))
}

// Heading title-cases a label such as a kind or section name.
func Heading(s string) string {
	return titleCase.String(s)
}

// Cell returns text fit for a single Markdown table cell.
func Cell(text *string) string {
	return Inline(deref(text))
}

// Inline returns s on one line with pipes escaped, so that it can be
// placed in a Markdown table cell.
func Inline(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// Constrained is implemented by fields and arguments that expose
// validation directives.
type Constrained interface {
	Range() schema.Args
	Length() []schema.Args
	Mask() schema.Args
}

// Constraints returns one line per validation directive of c, e.g.
// "range(max: 100, min: 1)".
func Constraints(c Constrained) []string {
	var lines []string
	if args := c.Range(); args != nil {
		lines = append(lines, "range("+formatArgs(args)+")")
	}
	for _, args := range c.Length() {
		lines = append(lines, "length("+formatArgs(args)+")")
	}
	if args := c.Mask(); args != nil {
		lines = append(lines, "mask("+formatArgs(args)+")")
	}
	return lines
}

func formatArgs(args schema.Args) string {
	keys := slices.Sorted(maps.Keys(args))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+formatValue(args[k]))
	}
	return strings.Join(parts, ", ")
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return `"` + v + `"`
	case []any:
		parts := make([]string, 0, len(v))
		for _, e := range v {
			parts = append(parts, formatValue(e))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
