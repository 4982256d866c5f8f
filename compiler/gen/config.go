package gen

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/samber/lo"
)

// Format is an output format of the documentation page.
type Format string

// Supported formats.
const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Formats lists the supported formats in rendering order.
var Formats = []Format{FormatHTML, FormatMarkdown, FormatJSON}

// Ext returns the file extension of the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	default:
		return ".html"
	}
}

// ParseFormat parses a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHTML, FormatMarkdown, FormatJSON:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", NewConfigError("Format", s, "unsupported format; use html, markdown, or json")
	}
}

// FormatOf returns the format selected by a file extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML, true
	case ".md", ".markdown":
		return FormatMarkdown, true
	case ".json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// DefaultBasename is the base name of output files when none is set.
const DefaultBasename = "API"

type (
	// Config holds the global configuration for page generation.
	Config struct {
		// Title is the API name shown in the page title and header.
		Title string
		// Description overrides the schema description in the page header.
		Description string
		// Target is the output directory.
		Target string
		// Basename is the output file name without extension.
		Basename string
		// Formats lists the formats to render. Defaults to html.
		Formats []Format
		// Templates maps a format to a template file replacing the
		// embedded default.
		Templates map[Format]string
		// Hooks wrap the default generator.
		Hooks []Hook
		// Workers bounds the number of formats rendered in parallel.
		Workers int
	}
)

// formats returns the configured formats, de-duplicated, or html.
func (c *Config) formats() []Format {
	if len(c.Formats) == 0 {
		return []Format{FormatHTML}
	}
	return lo.Uniq(c.Formats)
}

// OutputPath returns the path of the file rendered for f.
func (c *Config) OutputPath(f Format) string {
	base := c.Basename
	if base == "" {
		base = DefaultBasename
	}
	return filepath.Join(c.Target, base+f.Ext())
}

// Outputs returns the paths of every file a generation run writes.
func (c *Config) Outputs() []string {
	var paths []string
	for _, f := range c.formats() {
		paths = append(paths, c.OutputPath(f))
	}
	return paths
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
