package gen

import (
	"encoding/json"
	"io"

	"github.com/samber/lo"

	"github.com/syssam/gqlapi/schema"
	"github.com/syssam/gqlapi/view"
)

// DefaultTitle is the page title used when none is configured.
const DefaultTitle = "GraphQL API"

type (
	// PageJSON is the machine-readable form of the page.
	PageJSON struct {
		Title           string        `json:"title"`
		Description     *string       `json:"description,omitempty"`
		DescriptionText *string       `json:"descriptionText,omitempty"`
		Sections        []SectionJSON `json:"sections"`
	}

	// SectionJSON is a titled group of elements.
	SectionJSON struct {
		Title    string        `json:"title"`
		Elements []ElementJSON `json:"elements"`
	}

	// ElementJSON describes a named type, field, argument or enum value.
	// Attributes that do not apply to the element's kind are omitted.
	ElementJSON struct {
		Kind            string        `json:"kind"`
		Name            string        `json:"name"`
		Description     *string       `json:"description,omitempty"`
		DescriptionText *string       `json:"descriptionText,omitempty"`
		Deprecated      *string       `json:"deprecated,omitempty"`
		Type            string        `json:"type,omitempty"`
		BasicType       string        `json:"basicType,omitempty"`
		DefaultValue    string        `json:"defaultValue,omitempty"`
		Range           schema.Args   `json:"range,omitempty"`
		Length          []schema.Args `json:"length,omitempty"`
		Mask            schema.Args   `json:"mask,omitempty"`
		Interfaces      []string      `json:"interfaces,omitempty"`
		Implementors    []string      `json:"implementors,omitempty"`
		Types           []LinkJSON    `json:"types,omitempty"`
		Fields          []ElementJSON `json:"fields,omitempty"`
		Arguments       []ElementJSON `json:"arguments,omitempty"`
		Values          []ElementJSON `json:"values,omitempty"`
	}

	// LinkJSON is a member type of a union.
	LinkJSON struct {
		Type      string `json:"type"`
		BasicType string `json:"basicType"`
	}
)

// PageOf returns the machine-readable form of g's page.
func PageOf(g *Graph) *PageJSON {
	title := g.Title
	if title == "" {
		title = DefaultTitle
	}
	p := &PageJSON{
		Title:           title,
		Description:     g.Overview(),
		DescriptionText: g.OverviewText(),
	}
	for _, s := range g.Page.Sections() {
		p.Sections = append(p.Sections, SectionJSON{
			Title:    s.Title,
			Elements: lo.Map(s.Views, func(v view.View, _ int) ElementJSON { return elementOf(v) }),
		})
	}
	return p
}

func writeJSON(w io.Writer, g *Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(PageOf(g))
}

func elementOf(v view.View) ElementJSON {
	e := ElementJSON{
		Kind:            v.Kind(),
		Name:            v.Name(),
		Description:     v.Description(),
		DescriptionText: v.DescriptionText(),
	}
	if v.IsDeprecated() {
		reason := v.Deprecated()
		e.Deprecated = &reason
	}
	switch v := v.(type) {
	case *view.Object:
		e.Interfaces = v.Interfaces()
		e.Fields = lo.Map(v.Fields(), func(f *view.Field, _ int) ElementJSON { return fieldOf(f) })
	case *view.Interface:
		e.Implementors = v.Implementors()
		e.Fields = lo.Map(v.Fields(), func(f *view.Field, _ int) ElementJSON { return fieldOf(f) })
	case *view.Input:
		e.Fields = lo.Map(v.Fields(), func(f *view.InputField, _ int) ElementJSON {
			out := fieldOf(f.Field)
			out.Arguments = nil
			out.DefaultValue = f.DefaultValue()
			return out
		})
	case *view.Enum:
		e.Values = lo.Map(v.Values(), func(ev *view.EnumValue, _ int) ElementJSON { return elementOf(ev) })
	case *view.Union:
		e.Types = lo.Map(v.Types(), func(t view.TypeLink, _ int) LinkJSON {
			return LinkJSON{Type: t.Type, BasicType: t.BasicType}
		})
	}
	return e
}

func fieldOf(f *view.Field) ElementJSON {
	e := elementOf(f)
	e.Type = f.Type()
	e.BasicType = f.BasicType()
	e.Range = f.Range()
	e.Length = f.Length()
	e.Mask = f.Mask()
	e.Arguments = lo.Map(f.Arguments(), func(a *view.Argument, _ int) ElementJSON {
		out := elementOf(a)
		out.Type = a.Type()
		out.BasicType = a.BasicType()
		out.DefaultValue = a.DefaultValue()
		out.Range = a.Range()
		out.Length = a.Length()
		out.Mask = a.Mask()
		return out
	})
	return e
}
