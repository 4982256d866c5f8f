package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/gqlapi"
	"github.com/syssam/gqlapi/compiler/gen"
	"github.com/syssam/gqlapi/compiler/load"
	"github.com/syssam/gqlapi/internal/cli/config"
	"github.com/syssam/gqlapi/schema"
)

// runner carries the resolved settings of one command invocation.
type runner struct {
	cmd    *cobra.Command
	cfg    *config.Config
	logger *zap.Logger
}

func newRunner(cmd *cobra.Command) (*runner, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return &runner{cmd: cmd, cfg: cfg, logger: logger}, nil
}

// addDocFlags registers the flags shared by every generating command.
func addDocFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("name", "n", "", "API name used as the page title")
	flags.StringP("description", "d", "", "description shown instead of the schema description")
	flags.StringSliceP("format", "f", nil, "output formats: html, markdown, json (default from the output file extension)")
	flags.StringToString("template", nil, "custom template per format, e.g. html=page.tmpl")
	flags.Int("workers", 0, "files rendered in parallel (default GOMAXPROCS)")
}

// addSchemaFlags registers the flags of commands reading local schema files.
func addSchemaFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("gqlgen", load.DefaultGQLGenConfig, "gqlgen config used when no schema path is given")
	flags.Bool("validate", false, "validate the schema and document the resolved form")
}

// schemaPatterns returns paths, or the schema list of the gqlgen project
// when paths is empty.
func (r *runner) schemaPatterns(paths []string) ([]string, error) {
	if len(paths) > 0 {
		return paths, nil
	}
	gc, err := load.LoadGQLGenConfig(r.cfg.GQLGen)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("using gqlgen schema", zap.String("config", r.cfg.GQLGen), zap.Strings("schema", gc.SchemaPatterns()))
	return gc.SchemaPatterns(), nil
}

// fileGraph builds the schema graph from local files. A single .json path
// is read as a saved introspection result.
func (r *runner) fileGraph(paths []string) (*schema.Graph, error) {
	if len(paths) == 1 && strings.EqualFold(filepath.Ext(paths[0]), ".json") {
		return introspectionFile(paths[0])
	}

	sources, err := load.Sources(paths...)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("loaded schema sources", zap.Int("count", len(sources)))

	if r.cfg.Validate {
		s, err := load.LoadSchema(sources...)
		if err != nil {
			return nil, err
		}
		return schema.FromSchema(s), nil
	}
	doc, err := load.ParseDocument(sources...)
	if err != nil {
		return nil, err
	}
	return schema.NewGraph(doc), nil
}

func introspectionFile(path string) (*schema.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gqlapi.NewLoadError(path, err)
	}
	is, err := load.DecodeIntrospection(data)
	if err != nil {
		return nil, gqlapi.NewLoadError(path, err)
	}
	return schema.NewGraph(load.Document(is, path)), nil
}

// urlGraph introspects a running server.
func (r *runner) urlGraph(ctx context.Context, url string) (*schema.Graph, error) {
	headers, err := r.cfg.HTTPHeaders()
	if err != nil {
		return nil, err
	}
	opts := []load.IntrospectOption{
		load.WithTimeout(r.cfg.Timeout),
		load.WithRetries(r.cfg.Retries),
	}
	for k, v := range headers {
		opts = append(opts, load.WithHeader(k, v))
	}

	r.logger.Info("introspecting", zap.String("url", load.NormalizeURL(url)))
	doc, err := load.NewIntrospector(opts...).Introspect(ctx, url)
	if err != nil {
		return nil, err
	}
	return schema.NewGraph(doc), nil
}

// genConfig builds the generator configuration from the loaded settings
// followed by opts. Formats are applied first so that an output file
// extension only decides the format when none was configured.
func (r *runner) genConfig(opts ...gen.Option) (*gen.Config, error) {
	var base []gen.Option
	if len(r.cfg.Formats) > 0 {
		base = append(base, gen.WithFormats(r.cfg.Formats...))
	}
	for format, path := range r.cfg.Templates {
		base = append(base, gen.WithTemplateFile(format, path))
	}
	base = append(base,
		gen.WithTitle(r.cfg.Name),
		gen.WithDescription(r.cfg.Description),
		gen.WithHooks(r.logHook()),
	)
	if r.cfg.Workers > 0 {
		base = append(base, gen.WithWorkers(r.cfg.Workers))
	}
	return gen.NewConfig(append(base, opts...)...)
}

// logHook logs every generation run with its duration.
func (r *runner) logHook() gen.Hook {
	return func(next gen.Generator) gen.Generator {
		return gen.GenerateFunc(func(ctx context.Context, g *gen.Graph) error {
			start := time.Now()
			err := next.Generate(ctx, g)
			fields := []zap.Field{
				zap.Strings("files", g.Outputs()),
				zap.Int("definitions", g.Schema.Len()),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				r.logger.Error("generation failed", append(fields, zap.Error(err))...)
				return err
			}
			r.logger.Info("generated", fields...)
			return nil
		})
	}
}

// generate writes the documentation for sg and reports the written files.
func (r *runner) generate(ctx context.Context, cfg *gen.Config, sg *schema.Graph) error {
	if err := gen.Generate(ctx, cfg, sg); err != nil {
		return err
	}
	success := color.New(color.FgGreen)
	for _, path := range cfg.Outputs() {
		success.Fprintf(r.cmd.OutOrStdout(), "✓ Wrote %s\n", path)
	}
	return nil
}
