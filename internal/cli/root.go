package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned by submit and validate when at least one
// field has error messages. main maps it to exit code 1.
var ErrValidationFailed = errors.New("validation failed")

// RootOptions holds global flags and the variable source for all commands.
type RootOptions struct {
	Verbose  bool
	EnvFiles []string
	Environ  map[string]string // nil reads the process environment
}

// Option adjusts RootOptions before the command tree is built.
type Option func(*RootOptions)

// WithEnvironment replaces the process environment, mainly for tests.
func WithEnvironment(vars map[string]string) Option {
	return func(o *RootOptions) { o.Environ = vars }
}

// NewRootCommand creates the formcheck command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	rootOpts := &RootOptions{}
	for _, opt := range opts {
		opt(rootOpts)
	}

	cmd := &cobra.Command{
		Use:   "formcheck",
		Short: "Validate form values against a form definition",
		Long: `formcheck loads a YAML or JSON form definition, applies a values document
and runs the same rule engine the form controller uses.

Remote rule kinds are enabled by FORMCHECK_PG_URL (kind "unique"),
FORMCHECK_REDIS_URL (kind "uniqueRedis") and FORMCHECK_MONGO_URL
(kind "uniqueMongo").`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "debug logging to stderr")
	cmd.PersistentFlags().StringSliceVar(&rootOpts.EnvFiles, "env-file", []string{".env"}, "dotenv files to read, missing files are skipped")

	cmd.AddCommand(NewSubmitCommand(rootOpts))
	cmd.AddCommand(NewValidateCommand(rootOpts))
	cmd.AddCommand(NewKindsCommand(rootOpts))
	cmd.AddCommand(NewHealthCommand(rootOpts))

	return cmd
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrValidationFailed):
		return 1
	default:
		return 2
	}
}
