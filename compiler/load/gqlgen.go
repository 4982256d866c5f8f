package load

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/syssam/gqlapi"
)

// DefaultGQLGenConfig is the file name gqlgen uses for its configuration.
const DefaultGQLGenConfig = "gqlgen.yml"

// GQLGenConfig is the subset of a gqlgen.yml configuration needed to find
// the schema files of a gqlgen project.
type GQLGenConfig struct {
	// SchemaFilename lists schema files or glob patterns, relative to the
	// configuration file.
	SchemaFilename StringList `yaml:"schema,omitempty"`

	dir string
}

// StringList is a YAML type that can be either a string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("expected string or list, got %v", node.Kind)
	}
}

// LoadGQLGenConfig loads a gqlgen.yml configuration file. A missing file
// yields gqlgen's default schema location.
func LoadGQLGenConfig(path string) (*GQLGenConfig, error) {
	cfg := &GQLGenConfig{dir: filepath.Dir(path)}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.SchemaFilename = StringList{"schema.graphql"}
			return cfg, nil
		}
		return nil, gqlapi.NewLoadError(path, fmt.Errorf("read gqlgen config: %w", err))
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, gqlapi.NewLoadError(path, fmt.Errorf("parse gqlgen config: %w", err))
	}
	if len(cfg.SchemaFilename) == 0 {
		cfg.SchemaFilename = StringList{"schema.graphql"}
	}
	return cfg, nil
}

// SchemaPatterns returns the schema patterns resolved against the
// directory of the configuration file.
func (c *GQLGenConfig) SchemaPatterns() []string {
	out := make([]string, 0, len(c.SchemaFilename))
	for _, p := range c.SchemaFilename {
		if !filepath.IsAbs(p) {
			p = filepath.Join(c.dir, p)
		}
		out = append(out, p)
	}
	return out
}
