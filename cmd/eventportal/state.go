package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalemi-dev/eventportal/eventportal"
)

type stateFunc func(ctx context.Context, parentID, version string) (eventportal.State, error)

// stateLookup returns the state operation of family, or nil for an unknown family.
func stateLookup(c eventportal.Catalog, family string) stateFunc {
	switch family {
	case "schema":
		return c.GetSchemaState
	case "event":
		return c.GetEventState
	case "application":
		return c.GetApplicationState
	}
	return nil
}

var stateFamilies = []string{"schema", "event", "application"}

func newStateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "state <schema|event|application> <parentID> <version>",
		Short: "Print the lifecycle state of a version",
		Long: `Print the lifecycle state (DRAFT, RELEASED, DEPRECATED, RETIRED) of one
version of a schema, event or application. A version that does not exist
prints UNKNOWN.`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: stateFamilies,
		RunE: func(cmd *cobra.Command, args []string) error {
			family := strings.ToLower(args[0])
			if !slices.Contains(stateFamilies, family) {
				return fmt.Errorf("unknown family %q, want one of %s", args[0], strings.Join(stateFamilies, ", "))
			}

			return opts.withCatalog(cmd.Context(), func(ctx context.Context, catalog eventportal.Catalog) error {
				state, err := stateLookup(catalog, family)(ctx, args[1], args[2])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), state)
				return err
			})
		},
	}
}
