package commands

import (
	"github.com/spf13/cobra"

	"github.com/syssam/gqlapi/compiler/gen"
)

// NewFromFileCommand creates the from-file command
func NewFromFileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-file <outputfile> [path...]",
		Short: "Document a schema read from SDL files",
		Long: `Document a schema read from SDL files.

Paths may be files, directories or glob patterns such as schema/**/*.graphql.
Without paths the schema list of the gqlgen project is used. A single .json
path is read as a saved introspection result.`,
		Example: `  gqlapi from-file API.html schema.graphql --name "Library API"
  gqlapi from-file docs/API.md graph/ --validate
  gqlapi from-file docs/API -f html -f json --gqlgen gqlgen.yml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = r.logger.Sync() }()

			cfg, err := r.genConfig(gen.WithOutputFile(args[0]))
			if err != nil {
				return err
			}
			patterns, err := r.schemaPatterns(args[1:])
			if err != nil {
				return err
			}
			sg, err := r.fileGraph(patterns)
			if err != nil {
				return err
			}
			return r.generate(cmd.Context(), cfg, sg)
		},
	}

	addDocFlags(cmd)
	addSchemaFlags(cmd)
	return cmd
}
