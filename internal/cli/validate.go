package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crossbind/crossbind/internal/config"
)

// NewValidateCommand creates the validate command. It loads a configuration
// and reports whether it is usable, with each problem's error code.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config>",
		Short: "Validate a conversion configuration",
		Long: "Loads a configuration (a CUE package directory, a .cue file, or a\n" +
			"YAML file) and reports every problem found.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   opts.Verbose,
			}

			cfg, err := config.Load(args[0])
			if err != nil {
				var loadErr *config.LoadError
				if errors.As(err, &loadErr) {
					formatter.Error(loadErr.Code, loadErr.Message, nil)
					return NewExitError(ExitFailure, loadErr.Error())
				}
				formatter.Error(config.ErrCodeGeneric, err.Error(), nil)
				return WrapExitError(ExitFailure, "validation failed", err)
			}

			if opts.Format == "json" {
				return formatter.Success(map[string]any{
					"valid":   true,
					"crate":   cfg.Crate,
					"edition": cfg.EditionOrDefault(),
				})
			}
			return formatter.Success(fmt.Sprintf("Configuration valid: crate %s, edition %s", cfg.Crate, cfg.EditionOrDefault()))
		},
	}

	return cmd
}
