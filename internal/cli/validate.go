package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		flags  formFlags
		fields []string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Print the error map for all or selected fields",
		Long: `Validate the form without submitting it. The error map is printed as JSON;
fields without messages map to an empty list. Use --field to restrict the
run to specific field codes.`,
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

			var codes []string
			if cmd.Flags().Changed("field") {
				codes = fields
			}

			errs, err := s.controller.ValidateFields(ctx, codes...).AwaitContext(ctx)
			if err != nil {
				return err
			}
			if err := writeJSON(cmd.OutOrStdout(), normalizeErrors(errs)); err != nil {
				return err
			}
			if form.HasErrors(errs) {
				return ErrValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.formPath, "form", "f", "", "form definition file (YAML or JSON)")
	cmd.Flags().StringVar(&flags.valuesPath, "values", "", "values document (YAML or JSON)")
	cmd.Flags().StringSliceVar(&fields, "field", nil, "field codes to validate, repeatable")
	_ = cmd.MarkFlagRequired("form")

	return cmd
}
