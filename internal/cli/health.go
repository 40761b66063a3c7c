package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// NewHealthCommand creates the health command.
func NewHealthCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "health",
		Short:         "Ping the configured rule backends",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			settings, err := LoadSettings(rootOpts)
			if err != nil {
				return err
			}
			rt, err := NewRuntime(ctx, settings, rootOpts.Verbose, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			names := make([]string, 0, len(rt.Checks))
			for name := range rt.Checks {
				names = append(names, name)
			}
			slices.Sort(names)

			status := make(map[string]string, len(names))
			var failed []error
			for _, name := range names {
				if err := rt.Checks[name](ctx); err != nil {
					rt.Log.Error("backend unhealthy", logger.Component(name), logger.Error(err))
					status[name] = err.Error()
					failed = append(failed, fmt.Errorf("%s: %w", name, err))
					continue
				}
				status[name] = "ok"
			}

			if err := writeJSON(cmd.OutOrStdout(), status); err != nil {
				return err
			}
			return errors.Join(failed...)
		},
	}
}
