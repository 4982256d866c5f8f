package gen

import (
	"embed"
	htmltemplate "html/template"
	"io"
	"os"
	"text/template"

	"github.com/syssam/gqlapi/sanitize"
)

//go:embed template/*
var templateDir embed.FS

// defaultTemplates maps a templated format to its embedded file.
var defaultTemplates = map[Format]string{
	FormatHTML:     "template/page.html.tmpl",
	FormatMarkdown: "template/page.md.tmpl",
}

// Template is a parsed page template of either flavour.
type Template interface {
	Execute(w io.Writer, data any) error
}

// ParseTemplate parses text as the page template of format f. HTML
// templates use html/template with contextual escaping; Markdown templates
// use text/template. Both get the sprig functions and the page helpers.
// extra adds or overrides functions.
func ParseTemplate(f Format, name, text string, s *sanitize.Sanitizer, extra map[string]any) (Template, error) {
	switch f {
	case FormatHTML:
		funcs := HTMLFuncs(s)
		for k, v := range extra {
			funcs[k] = v
		}
		t, err := htmltemplate.New(name).Funcs(funcs).Parse(text)
		if err != nil {
			return nil, err
		}
		return t, nil
	case FormatMarkdown:
		funcs := Funcs(s)
		for k, v := range extra {
			funcs[k] = v
		}
		t, err := template.New(name).Funcs(funcs).Parse(text)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, NewConfigError("Format", string(f), "format has no template")
	}
}

// loadTemplate returns the template of format f: the configured file if
// any, otherwise the embedded default.
func (g *Graph) loadTemplate(f Format) (Template, error) {
	path, custom := g.Templates[f]
	var (
		text []byte
		err  error
	)
	if custom {
		text, err = os.ReadFile(path)
	} else {
		path = defaultTemplates[f]
		text, err = templateDir.ReadFile(path)
	}
	if err != nil {
		return nil, NewGenerationError(PhaseTemplate, path, "read template", err)
	}
	tmpl, err := ParseTemplate(f, string(f), string(text), g.Schema.Sanitizer(), g.funcs())
	if err != nil {
		return nil, NewGenerationError(PhaseTemplate, path, "parse template", err)
	}
	return tmpl, nil
}
