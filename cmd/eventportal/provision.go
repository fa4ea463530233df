package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/aalemi-dev/eventportal/logger"
	"github.com/aalemi-dev/eventportal/metrics"
	"github.com/aalemi-dev/eventportal/minio"
	"github.com/aalemi-dev/eventportal/observability"
	"github.com/aalemi-dev/eventportal/provision"
	"github.com/aalemi-dev/eventportal/schema_registry"
)

// errNoDomain is returned when neither a plan nor a domain name is given.
var errNoDomain = errors.New("define the application domain name with --domain or $" + provision.DomainEnvVar)

type provisionOptions struct {
	planPath    string
	domain      string
	overwrite   bool
	concurrency int
	dryRun      bool
	metricsAddr string

	registry schema_registry.Config
	minio    minio.ConnectionConfig
}

func newProvisionCmd(root *rootOptions) *cobra.Command {
	opts := &provisionOptions{}

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create the catalog described by a plan",
		Long: `Create an application domain and the schemas, events and applications of a
plan. Objects that already exist are reused. Versions that already exist fail
the run unless --overwrite is set, in which case DRAFT versions are patched.

Without --plan the built-in sample catalog is provisioned into the domain
named by --domain or $SOLACE_APPLICATION_DOMAIN.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := opts.loadPlan()
			if err != nil {
				return err
			}
			if opts.dryRun {
				if err := plan.Validate(); err != nil {
					return err
				}
				return printYAML(cmd.OutOrStdout(), plan)
			}
			return opts.run(cmd.Context(), root, plan, cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.planPath, "plan", "f", "", "YAML plan file; default is the built-in sample catalog")
	flags.StringVarP(&opts.domain, "domain", "d", os.Getenv(provision.DomainEnvVar), "Application domain name, overrides the plan")
	flags.BoolVar(&opts.overwrite, "overwrite", false, "Patch versions that already exist in DRAFT state")
	flags.IntVar(&opts.concurrency, "concurrency", provision.DefaultConcurrency, "Objects created in parallel within a phase")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Validate and print the effective plan as YAML without calling the API")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running")

	flags.StringVar(&opts.registry.URL, "schema-registry-url", os.Getenv("SCHEMA_REGISTRY_URL"), "Schema registry URL for registry content sources")
	flags.StringVar(&opts.registry.Username, "schema-registry-username", os.Getenv("SCHEMA_REGISTRY_USERNAME"), "Schema registry basic auth user")
	opts.registry.Password = os.Getenv("SCHEMA_REGISTRY_PASSWORD")

	flags.StringVar(&opts.minio.Endpoint, "minio-endpoint", os.Getenv("MINIO_ENDPOINT"), "MinIO/S3 endpoint (host:port) for object content sources")
	flags.StringVar(&opts.minio.Region, "minio-region", os.Getenv("MINIO_REGION"), "MinIO/S3 region")
	flags.BoolVar(&opts.minio.UseSSL, "minio-ssl", true, "Use HTTPS towards MinIO/S3")
	opts.minio.AccessKeyID = os.Getenv("MINIO_ACCESS_KEY_ID")
	opts.minio.SecretAccessKey = os.Getenv("MINIO_SECRET_ACCESS_KEY")

	return cmd
}

func (o *provisionOptions) loadPlan() (*provision.Plan, error) {
	if o.planPath == "" {
		if o.domain == "" {
			return nil, errNoDomain
		}
		return provision.DefaultPlan(o.domain), nil
	}

	plan, err := provision.LoadPlan(o.planPath)
	if err != nil {
		return nil, err
	}
	return plan.WithDomainName(o.domain), nil
}

// modules returns the fx options needed on top of the core modules. The
// schema registry and MinIO clients are only wired when configured.
func (o *provisionOptions) modules() fx.Option {
	options := []fx.Option{
		fx.Supply(metrics.Config{
			Address:               metrics.Ptr(o.metricsAddr),
			ServiceName:           serviceName,
			DisableRuntimeMetrics: o.metricsAddr == "",
		}),
		metrics.FXModule,
		fx.Provide(func(obs *metrics.OperationObserver) observability.Observer { return obs }),

		fx.Supply(provision.Config{
			DomainName:  o.domain,
			Overwrite:   o.overwrite,
			Concurrency: o.concurrency,
		}),
		fx.Provide(func(l *logger.LoggerClient) provision.Logger { return l }),
		provision.FXModule,
	}

	if o.registry.URL != "" {
		options = append(options,
			fx.Supply(o.registry),
			fx.Provide(func(l *logger.LoggerClient) schema_registry.Logger { return l }),
			schema_registry.FXModule,
		)
	}
	if o.minio.Endpoint != "" {
		options = append(options,
			fx.Supply(minio.Config{Connection: o.minio}),
			fx.Provide(func(l *logger.LoggerClient) minio.Logger { return l }),
			minio.FXModule,
		)
	}
	return fx.Options(options...)
}

func (o *provisionOptions) run(ctx context.Context, root *rootOptions, plan *provision.Plan, cmd *cobra.Command) error {
	var provisioner *provision.Provisioner
	app := fx.Options(root.coreModules(), o.modules(), fx.Populate(&provisioner))

	return runApp(ctx, app, func(ctx context.Context) error {
		result, err := provisioner.Run(ctx, plan)
		if err != nil {
			return err
		}
		return printValue(cmd.OutOrStdout(), root.output, result)
	})
}
