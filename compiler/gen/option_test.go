package gen

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/gqlapi"
)

func TestWithTitle(t *testing.T) {
	t.Run("sets title", func(t *testing.T) {
		c := &Config{}
		err := WithTitle("Library API")(c)

		require.NoError(t, err)
		assert.Equal(t, "Library API", c.Title)
	})

	t.Run("empty title is allowed", func(t *testing.T) {
		c := &Config{Title: "existing"}
		err := WithTitle("")(c)

		require.NoError(t, err)
		assert.Equal(t, "", c.Title)
	})
}

func TestWithDescription(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithDescription("Courses and students")(c))
	assert.Equal(t, "Courses and students", c.Description)
}

func TestWithTarget(t *testing.T) {
	t.Run("sets target directory", func(t *testing.T) {
		c := &Config{}
		err := WithTarget("./docs")(c)

		require.NoError(t, err)
		assert.Equal(t, "./docs", c.Target)
	})

	t.Run("empty target returns error", func(t *testing.T) {
		c := &Config{}
		err := WithTarget("")(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithBasename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "reference", false},
		{"empty", "", true},
		{"path", "docs/reference", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithBasename(tt.input)(c)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, c.Basename)
			}
		})
	}
}

func TestWithOutputFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		target   string
		basename string
		formats  []Format
	}{
		{"html file", "API.html", ".", "API", []Format{FormatHTML}},
		{"nested markdown", filepath.Join("docs", "api.md"), "docs", "api", []Format{FormatMarkdown}},
		{"json", filepath.Join("out", "schema.json"), "out", "schema", []Format{FormatJSON}},
		{"unknown extension", filepath.Join("out", "schema.txt"), "out", "schema", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithOutputFile(tt.path)(c)

			require.NoError(t, err)
			assert.Equal(t, tt.target, c.Target)
			assert.Equal(t, tt.basename, c.Basename)
			assert.Equal(t, tt.formats, c.Formats)
		})
	}

	t.Run("keeps explicit formats", func(t *testing.T) {
		c := &Config{Formats: []Format{FormatJSON}}
		require.NoError(t, WithOutputFile("API.html")(c))
		assert.Equal(t, []Format{FormatJSON}, c.Formats)
	})

	t.Run("rejects directories", func(t *testing.T) {
		c := &Config{}
		assert.True(t, IsConfigError(WithOutputFile("docs/")(c)))
		assert.True(t, IsConfigError(WithOutputFile("")(c)))
	})
}

func TestWithFormats(t *testing.T) {
	tests := []struct {
		name     string
		formats  []string
		expected []Format
		wantErr  bool
	}{
		{"html", []string{"html"}, []Format{FormatHTML}, false},
		{"md alias", []string{"md"}, []Format{FormatMarkdown}, false},
		{"all", []string{"HTML", " markdown ", "json"}, []Format{FormatHTML, FormatMarkdown, FormatJSON}, false},
		{"invalid", []string{"pdf"}, nil, true},
		{"empty", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithFormats(tt.formats...)(c)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, c.Formats)
			}
		})
	}
}

func TestWithTemplateFile(t *testing.T) {
	t.Run("sets template per format", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithTemplateFile("html", "page.tmpl")(c))
		require.NoError(t, WithTemplateFile("md", "page.md.tmpl")(c))

		assert.Equal(t, map[Format]string{
			FormatHTML:     "page.tmpl",
			FormatMarkdown: "page.md.tmpl",
		}, c.Templates)
	})

	t.Run("rejects json and empty paths", func(t *testing.T) {
		c := &Config{}
		assert.True(t, IsConfigError(WithTemplateFile("json", "page.tmpl")(c)))
		assert.True(t, IsConfigError(WithTemplateFile("html", "")(c)))
		assert.True(t, IsConfigError(WithTemplateFile("pdf", "page.tmpl")(c)))
		assert.Nil(t, c.Templates)
	})
}

func TestWithHooks(t *testing.T) {
	t.Run("adds hooks", func(t *testing.T) {
		hook := func(next Generator) Generator { return next }
		c := &Config{}
		err := WithHooks(hook)(c)

		require.NoError(t, err)
		assert.Equal(t, 1, len(c.Hooks))
	})

	t.Run("appends to existing hooks", func(t *testing.T) {
		hook1 := func(next Generator) Generator { return next }
		hook2 := func(next Generator) Generator { return next }
		c := &Config{Hooks: []Hook{hook1}}
		err := WithHooks(hook2)(c)

		require.NoError(t, err)
		assert.Equal(t, 2, len(c.Hooks))
	})
}

func TestWithWorkers(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithWorkers(4)(c))
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 4, c.workers())

	err := WithWorkers(0)(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gqlapi.ErrInvalidConfig))
	assert.Positive(t, (&Config{}).workers())
}

func TestConfigOutputs(t *testing.T) {
	c := &Config{Target: "docs"}
	assert.Equal(t, []string{filepath.Join("docs", "API.html")}, c.Outputs())

	c.Basename = "library"
	c.Formats = []Format{FormatMarkdown, FormatJSON, FormatMarkdown}
	assert.Equal(t, []string{
		filepath.Join("docs", "library.md"),
		filepath.Join("docs", "library.json"),
	}, c.Outputs())
}

func TestConfigApply(t *testing.T) {
	t.Run("applies multiple options", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithTitle("Library API"),
			WithTarget("./docs"),
			WithFormats("markdown"),
		)

		require.NoError(t, err)
		assert.Equal(t, "Library API", c.Title)
		assert.Equal(t, "./docs", c.Target)
		assert.Equal(t, []Format{FormatMarkdown}, c.Formats)
	})

	t.Run("stops on first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithFormats("pdf"),   // Error
			WithTarget("./docs"), // Should not be applied
		)

		require.Error(t, err)
		assert.Empty(t, c.Formats)
		assert.Empty(t, c.Target)
	})
}

func TestConfigApplyAll(t *testing.T) {
	t.Run("collects all errors", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithFormats("pdf"), // Error
			WithTarget(""),     // Error
		)

		require.Error(t, err)
		// errors.Join returns an error with Unwrap() []error
		unwrapper, ok := err.(interface{ Unwrap() []error })
		require.True(t, ok, "error should implement Unwrap() []error")
		assert.Equal(t, 2, len(unwrapper.Unwrap()))
	})

	t.Run("returns nil when all succeed", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithTitle("Library API"),
			WithTarget("./docs"),
		)

		require.NoError(t, err)
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("creates config with options", func(t *testing.T) {
		c, err := NewConfig(
			WithTitle("Library API"),
			WithTarget("./docs"),
		)

		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "Library API", c.Title)
		assert.Equal(t, "./docs", c.Target)
	})

	t.Run("returns error on invalid option", func(t *testing.T) {
		c, err := NewConfig(
			WithTarget(""),
		)

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestMustNewConfig(t *testing.T) {
	t.Run("returns config on success", func(t *testing.T) {
		c := MustNewConfig(
			WithTarget("./docs"),
		)

		require.NotNil(t, c)
		assert.Equal(t, "./docs", c.Target)
	})

	t.Run("panics on error", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNewConfig(WithTarget(""))
		})
	})
}
