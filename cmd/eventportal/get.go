package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aalemi-dev/eventportal/eventportal"
)

// lookup is one read-only "get" subcommand.
type lookup struct {
	use   string
	short string
	args  []string

	// params registers --params; only set where the API takes a query string.
	params bool

	run func(ctx context.Context, c eventportal.Catalog, args []string, params string) (any, error)
}

var lookups = []lookup{
	{
		use: "domains", short: "List application domains", params: true,
		run: func(ctx context.Context, c eventportal.Catalog, _ []string, params string) (any, error) {
			return c.GetApplicationDomains(ctx, params)
		},
	},
	{
		use: "domain", short: "Show an application domain", args: []string{"domainID"}, params: true,
		run: func(ctx context.Context, c eventportal.Catalog, args []string, params string) (any, error) {
			return c.GetApplicationDomainByID(ctx, args[0], params)
		},
	},
	{
		use: "domain-id", short: "Resolve an application domain name to its id", args: []string{"name"},
		run: func(ctx context.Context, c eventportal.Catalog, args []string, _ string) (any, error) {
			return c.GetApplicationDomainID(ctx, args[0])
		},
	},
	{
		use: "schemas", short: "List schemas", params: true,
		run: func(ctx context.Context, c eventportal.Catalog, _ []string, params string) (any, error) {
			return c.GetSchemas(ctx, params)
		},
	},
	{
		use: "schema", short: "Show a schema", args: []string{"schemaID"},
		run: func(ctx context.Context, c eventportal.Catalog, args []string, _ string) (any, error) {
			return c.GetSchemaByID(ctx, args[0])
		},
	},
	{
		use: "schema-versions", short: "List the versions of a schema", args: []string{"schemaID"}, params: true,
		run: func(ctx context.Context, c eventportal.Catalog, args []string, params string) (any, error) {
			return c.GetSchemaVersions(ctx, args[0], params)
		},
	},
	{
		use: "schema-version", short: "Show a schema version", args: []string{"versionID"},
		run: func(ctx context.Context, c eventportal.Catalog, args []string, _ string) (any, error) {
			return c.GetSchemaVersionByID(ctx, args[0])
		},
	},
	{
		use: "events", short: "List events", params: true,
		run: func(ctx context.Context, c eventportal.Catalog, _ []string, params string) (any, error) {
			return c.GetEvents(ctx, params)
		},
	},
	{
		use: "event", short: "Show an event", args: []string{"eventID"},
		run: func(ctx context.Context, c eventportal.Catalog, args []string, _ string) (any, error) {
			return c.GetEventByID(ctx, args[0])
		},
	},
	{
		use: "event-versions", short: "List the versions of an event", args: []string{"eventID"}, params: true,
		run: func(ctx context.Context, c eventportal.Catalog, args []string, params string) (any, error) {
			return c.GetEventVersions(ctx, args[0], params)
		},
	},
	{
		use: "event-version", short: "Show an event version", args: []string{"versionID"}, params: true,
		run: func(ctx context.Context, c eventportal.Catalog, args []string, params string) (any, error) {
			return c.GetEventVersionByID(ctx, args[0], params)
		},
	},
	{
		use: "applications", short: "List applications", params: true,
		run: func(ctx context.Context, c eventportal.Catalog, _ []string, params string) (any, error) {
			return c.GetApplications(ctx, params)
		},
	},
	{
		use: "application", short: "Show an application", args: []string{"applicationID"},
		run: func(ctx context.Context, c eventportal.Catalog, args []string, _ string) (any, error) {
			return c.GetApplicationByID(ctx, args[0])
		},
	},
	{
		use: "application-versions", short: "List the versions of an application", args: []string{"applicationID"}, params: true,
		run: func(ctx context.Context, c eventportal.Catalog, args []string, params string) (any, error) {
			return c.GetApplicationVersions(ctx, args[0], params)
		},
	},
	{
		use: "application-version", short: "Show an application version", args: []string{"versionID"},
		run: func(ctx context.Context, c eventportal.Catalog, args []string, _ string) (any, error) {
			return c.GetApplicationVersionByID(ctx, args[0])
		},
	},
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Read catalog objects and versions",
		Long: `Read catalog objects and versions. List commands return a single page;
use --params to pass a raw query string such as "pageSize=100&pageNumber=2".`,
	}

	for _, l := range lookups {
		cmd.AddCommand(newLookupCmd(opts, l))
	}
	return cmd
}

func newLookupCmd(opts *rootOptions, l lookup) *cobra.Command {
	var params string

	use := l.use
	for _, arg := range l.args {
		use += " <" + arg + ">"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: l.short,
		Args:  cobra.ExactArgs(len(l.args)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withCatalog(cmd.Context(), func(ctx context.Context, catalog eventportal.Catalog) error {
				value, err := l.run(ctx, catalog, args, params)
				if err != nil {
					return err
				}
				return printValue(cmd.OutOrStdout(), opts.output, value)
			})
		},
	}
	if l.params {
		cmd.Flags().StringVar(&params, "params", "", "Raw query string appended to the request")
	}
	return cmd
}
