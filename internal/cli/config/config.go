// Package config loads CLI settings from gqlapi.yaml, GQLAPI_* environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/syssam/gqlapi"
	"github.com/syssam/gqlapi/compiler/load"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "GQLAPI"

// Config represents the settings shared by all commands.
type Config struct {
	Name        string            `mapstructure:"name"`
	Description string            `mapstructure:"description"`
	Formats     []string          `mapstructure:"format"`
	Templates   map[string]string `mapstructure:"template"`
	Workers     int               `mapstructure:"workers"`
	GQLGen      string            `mapstructure:"gqlgen"`
	Validate    bool              `mapstructure:"validate"`

	// Headers come from the config file; HeaderFlags are "Key: Value" or
	// "Key=Value" pairs from --header and take precedence.
	Headers     map[string]string `mapstructure:"headers"`
	HeaderFlags []string          `mapstructure:"header"`
	Timeout     time.Duration     `mapstructure:"timeout"`
	Retries     int               `mapstructure:"retries"`

	Verbose bool `mapstructure:"verbose"`
	Quiet   bool `mapstructure:"quiet"`
}

// Load reads the configuration. When path is empty, gqlapi.yaml in the
// working directory is used if present. Flags in fs are bound so that flags
// set on the command line override the environment, which overrides the
// file.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("gqlgen", load.DefaultGQLGenConfig)
	v.SetDefault("timeout", load.DefaultTimeout)
	v.SetDefault("retries", load.DefaultRetries)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gqlapi")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: read config: %w", gqlapi.ErrInvalidConfig, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: unmarshal config: %w", gqlapi.ErrInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", gqlapi.ErrInvalidConfig, c.Workers)
	}
	if c.Retries < 0 {
		return fmt.Errorf("%w: retries must not be negative, got %d", gqlapi.ErrInvalidConfig, c.Retries)
	}
	if c.Verbose && c.Quiet {
		return fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", gqlapi.ErrInvalidConfig)
	}
	_, err := c.HTTPHeaders()
	return err
}

// HTTPHeaders merges the configured headers with the --header flags.
func (c *Config) HTTPHeaders() (map[string]string, error) {
	out := make(map[string]string, len(c.Headers)+len(c.HeaderFlags))
	for k, v := range c.Headers {
		out[k] = v
	}
	for _, h := range c.HeaderFlags {
		k, v, ok := splitHeader(h)
		if !ok {
			return nil, fmt.Errorf("%w: invalid header %q, expected Key=Value", gqlapi.ErrInvalidConfig, h)
		}
		out[k] = v
	}
	return out, nil
}

func splitHeader(h string) (string, string, bool) {
	i := strings.IndexAny(h, ":=")
	if i <= 0 {
		return "", "", false
	}
	k := strings.TrimSpace(h[:i])
	if k == "" {
		return "", "", false
	}
	return k, strings.TrimSpace(h[i+1:]), true
}

// Logger builds the CLI logger: a development logger when verbose, a no-op
// logger when quiet and a production logger reporting warnings otherwise.
func (c *Config) Logger() (*zap.Logger, error) {
	switch {
	case c.Quiet:
		return zap.NewNop(), nil
	case c.Verbose:
		return zap.NewDevelopment()
	default:
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		return zc.Build()
	}
}
