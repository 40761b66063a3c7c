package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewKindsCommand creates the kinds command.
func NewKindsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "kinds",
		Short:         "List the registered rule kinds",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := LoadSettings(rootOpts)
			if err != nil {
				return err
			}
			rt, err := NewRuntime(cmd.Context(), settings, rootOpts.Verbose, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			for _, kind := range rt.Registry.Kinds() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), kind); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
