package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/gqlapi/compiler/gen"
	"github.com/syssam/gqlapi/compiler/load"
	"github.com/syssam/gqlapi/internal/watch"
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <outputdir> [path...]",
		Short: "Regenerate documentation when schema files change",
		Long: `Generate documentation into outputdir, then regenerate it whenever one
of the schema files changes. Paths are read as by from-file; the directories
behind them are watched recursively. Failed regenerations are logged and
watching continues.`,
		Example: `  gqlapi watch docs graph/schema
  gqlapi watch docs --gqlgen gqlgen.yml -f html -f markdown`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = r.logger.Sync() }()

			basename, err := cmd.Flags().GetString("basename")
			if err != nil {
				return err
			}
			cfg, err := r.genConfig(gen.WithTarget(args[0]), gen.WithBasename(basename))
			if err != nil {
				return err
			}
			patterns, err := r.schemaPatterns(args[1:])
			if err != nil {
				return err
			}

			regenerate := func(ctx context.Context, _ []string) error {
				sg, err := r.fileGraph(patterns)
				if err != nil {
					return err
				}
				return r.generate(ctx, cfg, sg)
			}
			ctx := cmd.Context()
			if err := regenerate(ctx, nil); err != nil {
				return err
			}

			exts := load.SchemaExtensions
			if len(patterns) == 1 && strings.EqualFold(filepath.Ext(patterns[0]), ".json") {
				exts = []string{"json"}
			}
			w, err := watch.New(patterns, regenerate,
				watch.WithExtensions(exts...),
				watch.WithLogger(r.logger),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			color.New(color.FgCyan, color.Bold).Fprintln(out, "Watching schema")
			for _, dir := range w.Dirs() {
				color.New(color.FgWhite).Fprintf(out, "   %s\n", dir)
			}
			color.New(color.FgYellow).Fprintln(out, "Press Ctrl+C to stop")
			r.logger.Info("watching", zap.Strings("dirs", w.Dirs()))

			if err := w.Run(ctx); err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			color.New(color.FgGreen).Fprintln(out, "Stopped watching")
			return nil
		},
	}

	addDocFlags(cmd)
	addSchemaFlags(cmd)
	cmd.Flags().String("basename", gen.DefaultBasename, "output file name without extension")
	return cmd
}
