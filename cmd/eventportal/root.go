package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalemi-dev/eventportal/eventportal"
	"github.com/aalemi-dev/eventportal/logger"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error.
	ExitCodeError = 1
	// ExitCodeAuth indicates a missing, rejected or insufficient token.
	ExitCodeAuth = 2
	// ExitCodeConflict indicates the catalog holds something the command
	// refused to change: a non-draft version or an ambiguous name.
	ExitCodeConflict = 3
)

// rootOptions holds the global flags shared by every subcommand.
type rootOptions struct {
	version string

	token     string
	baseURL   string
	timeout   time.Duration
	logLevel  string
	logFormat string
	output    string

	traceEndpoint string
	traceInsecure bool
}

// newRootCmd builds the command tree. It keeps no package state so tests
// can build as many trees as they like.
func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{version: version}

	cmd := &cobra.Command{
		Use:   "eventportal",
		Short: "Provision and inspect a Solace Event Portal catalog",
		Long: `eventportal creates application domains, schemas, events and applications
in Solace Event Portal from a declarative plan, reusing objects that already
exist, and looks up what is already there.

The API token is read from --token or the SOLACE_CLOUD_TOKEN environment variable.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate(`{{printf "eventportal version %s\n" .Version}}`)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.token, "token", "", "Solace Cloud API token (default $"+eventportal.TokenEnvVar+")")
	flags.StringVar(&opts.baseURL, "base-url", eventportal.DefaultBaseURL, "Event Portal architecture API base URL")
	flags.DurationVar(&opts.timeout, "timeout", eventportal.DefaultTimeout, "Timeout of each API request")
	flags.StringVar(&opts.logLevel, "log-level", logger.Warning, "Log level: debug, info, warning or error")
	flags.StringVar(&opts.logFormat, "log-format", logger.EncodingConsole, "Log encoding: console or json")
	flags.StringVarP(&opts.output, "output", "o", outputYAML, "Output format: yaml or json")
	flags.StringVar(&opts.traceEndpoint, "trace-endpoint", "", "OTLP HTTP collector address (host:port); empty disables export")
	flags.BoolVar(&opts.traceInsecure, "trace-insecure", false, "Disable TLS towards the trace collector")

	cmd.AddCommand(
		newProvisionCmd(opts),
		newGetCmd(opts),
		newStateCmd(opts),
		newVersionCmd(opts),
	)
	return cmd
}

// exitCode maps an error to a process exit code for scripting.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, eventportal.ErrMissingToken):
		return ExitCodeAuth
	case errors.Is(err, eventportal.ErrImmutableVersion), errors.Is(err, eventportal.ErrAmbiguousMatch):
		return ExitCodeConflict
	}

	switch eventportal.KindOf(err) {
	case eventportal.KindUnauthorized, eventportal.KindForbidden:
		return ExitCodeAuth
	case eventportal.KindVersionConflict, eventportal.KindDuplicateName, eventportal.KindConflict:
		return ExitCodeConflict
	}
	return ExitCodeError
}
