package commands

import (
	"github.com/spf13/cobra"

	"github.com/syssam/gqlapi/compiler/gen"
	"github.com/syssam/gqlapi/compiler/load"
)

// NewFromURLCommand creates the from-url command
func NewFromURLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-url <outputfile> <url>",
		Short: "Document the schema of a running GraphQL server",
		Long: `Document the schema of a running GraphQL server.

The schema is fetched with the standard introspection query. A URL without a
scheme is requested over http.`,
		Example: `  gqlapi from-url API.html localhost:8080/query --name "Library API"
  gqlapi from-url docs/API.md https://api.example.com/graphql --header "Authorization: Bearer $TOKEN"`,
		Args: cobra.ExactArgs(2),
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
			sg, err := r.urlGraph(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			return r.generate(cmd.Context(), cfg, sg)
		},
	}

	addDocFlags(cmd)
	flags := cmd.Flags()
	flags.StringArrayP("header", "H", nil, `HTTP header sent with the query, as "Key: Value" or Key=Value (repeatable)`)
	flags.Duration("timeout", load.DefaultTimeout, "request timeout")
	flags.Int("retries", load.DefaultRetries, "retries on temporary failures")
	return cmd
}
