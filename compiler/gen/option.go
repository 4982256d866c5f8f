package gen

import (
	"errors"
	"path/filepath"
	"strings"
)

// Option configures page generation.
type Option func(*Config) error

// WithTitle sets the API name.
// The title is shown in the page title and header.
func WithTitle(title string) Option {
	return func(c *Config) error {
		c.Title = title
		return nil
	}
}

// WithDescription sets the API description shown in the page header.
// An empty description keeps the schema description.
func WithDescription(description string) Option {
	return func(c *Config) error {
		c.Description = description
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithBasename sets the output file name, without extension.
func WithBasename(name string) Option {
	return func(c *Config) error {
		if name == "" || strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
			return NewConfigError("Basename", name, "base name must be a plain file name")
		}
		c.Basename = name
		return nil
	}
}

// WithOutputFile sets the output directory and base name from a file path.
// A known extension also selects the format when none is set yet.
func WithOutputFile(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("OutputFile", nil, "output file cannot be empty")
		}
		dir, file := filepath.Split(path)
		if file == "" {
			return NewConfigError("OutputFile", path, "output file must name a file")
		}
		if dir == "" {
			dir = "."
		}
		c.Target = filepath.Clean(dir)
		c.Basename = strings.TrimSuffix(file, filepath.Ext(file))
		if f, ok := FormatOf(file); ok && len(c.Formats) == 0 {
			c.Formats = []Format{f}
		}
		return nil
	}
}

// WithFormats sets the output formats by name.
// Supported names: "html", "markdown" (or "md"), "json".
func WithFormats(names ...string) Option {
	return func(c *Config) error {
		if len(names) == 0 {
			return NewConfigError("Formats", nil, "at least one format is required")
		}
		formats := make([]Format, 0, len(names))
		for _, name := range names {
			f, err := ParseFormat(name)
			if err != nil {
				return err
			}
			formats = append(formats, f)
		}
		c.Formats = formats
		return nil
	}
}

// WithTemplateFile replaces the embedded template of a format with the
// template file at path. The JSON format has no template.
func WithTemplateFile(format, path string) Option {
	return func(c *Config) error {
		f, err := ParseFormat(format)
		if err != nil {
			return err
		}
		if f == FormatJSON {
			return NewConfigError("TemplateFile", format, "json output is not templated")
		}
		if path == "" {
			return NewConfigError("TemplateFile", nil, "template path cannot be empty")
		}
		if c.Templates == nil {
			c.Templates = make(map[Format]string)
		}
		c.Templates[f] = path
		return nil
	}
}

// WithHooks adds generation hooks.
// Hooks wrap the default generator in the order given.
func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// WithWorkers sets the number of formats rendered in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
