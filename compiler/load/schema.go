package load

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/syssam/gqlapi"
)

// SchemaExtensions are the file extensions picked up when a directory is
// given as a schema path.
var SchemaExtensions = []string{"graphql", "graphqls", "gql"}

// Sources expands the given file paths, directories and glob patterns
// (doublestar syntax, e.g. "schema/**/*.graphql") into schema sources.
// Sources are sorted by path and every file is read once.
func Sources(patterns ...string) ([]*ast.Source, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := expand(pattern)
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	paths = lo.Uniq(paths)
	slices.Sort(paths)

	sources := make([]*ast.Source, 0, len(paths))
	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, gqlapi.NewLoadError(path, err)
		}
		sources = append(sources, &ast.Source{Name: path, Input: string(b)})
	}
	return sources, nil
}

func expand(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, gqlapi.NewLoadError(pattern, errors.New("empty schema path"))
	}
	if info, err := os.Stat(pattern); err == nil {
		if !info.IsDir() {
			return []string{filepath.Clean(pattern)}, nil
		}
		pattern = filepath.Join(pattern, "**", "*.{"+strings.Join(SchemaExtensions, ",")+"}")
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, gqlapi.NewLoadError(pattern, err)
	}
	if len(matches) == 0 {
		return nil, gqlapi.NewLoadError(pattern, fmt.Errorf("no schema files match: %w", fs.ErrNotExist))
	}
	return matches, nil
}

// ParseDocument parses the sources into a single raw schema document.
// The document is not validated.
func ParseDocument(sources ...*ast.Source) (*ast.SchemaDocument, error) {
	if len(sources) == 0 {
		return nil, gqlapi.NewLoadError("", errors.New("no schema sources"))
	}
	doc, err := parser.ParseSchemas(sources...)
	if err != nil {
		return nil, gqlapi.NewLoadError(names(sources), err)
	}
	return doc, nil
}

// LoadSchema parses and validates the sources into a resolved schema.
func LoadSchema(sources ...*ast.Source) (*ast.Schema, error) {
	if len(sources) == 0 {
		return nil, gqlapi.NewLoadError("", errors.New("no schema sources"))
	}
	s, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, gqlapi.NewLoadError(names(sources), err)
	}
	return s, nil
}

func names(sources []*ast.Source) string {
	return strings.Join(lo.Map(sources, func(s *ast.Source, _ int) string { return s.Name }), ", ")
}
