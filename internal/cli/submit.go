package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// NewSubmitCommand creates the submit command.
func NewSubmitCommand(rootOpts *RootOptions) *cobra.Command {
	var flags formFlags

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate every field and print the submitted values",
		Long: `Apply the values document on top of the definition's initial values and
submit the form. On success the value map is printed as JSON and the exit
code is 0. When any field fails, the error map is printed instead and the
exit code is 1.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, rootOpts, flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			values, err := s.controller.Submit(ctx).AwaitContext(ctx)
			var submitErr *form.SubmitError
			if errors.As(err, &submitErr) {
				if werr := writeJSON(cmd.OutOrStdout(), normalizeErrors(submitErr.Errors)); werr != nil {
					return werr
				}
				return ErrValidationFailed
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), values)
		},
	}

	cmd.Flags().StringVarP(&flags.formPath, "form", "f", "", "form definition file (YAML or JSON)")
	cmd.Flags().StringVar(&flags.valuesPath, "values", "", "values document (YAML or JSON)")
	_ = cmd.MarkFlagRequired("form")

	return cmd
}
