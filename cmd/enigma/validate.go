package main

import (
	"fmt"

	apperrors "github.com/reglet-dev/enigma/internal/application/errors"
	"github.com/reglet-dev/enigma/internal/infrastructure/config"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate CONFIG",
		Short: "Check a machine description",
		Long: `Validate loads CONFIG and builds its machine, then lists findings that
make the description unusable as a historical machine: reflectors that
are not involutions, moving rotors without notches, or a rotor pool too
small for its slots and pawls.

Findings are warnings unless --strict is given.`,
		Args: cobra.ExactArgs(1),
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			cfg, err := cc.Container.MachineLoader().LoadConfig(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			findings := multierr.Errors(config.Lint(cfg))
			for _, f := range findings {
				fmt.Fprintf(out, "warning: %v\n", f) //nolint:errcheck // Best-effort terminal output
			}

			if strict && len(findings) > 0 {
				details := make([]string, len(findings))
				for i, f := range findings {
					details[i] = f.Error()
				}
				return apperrors.NewValidationError("machine",
					fmt.Sprintf("%d lint findings in %s", len(findings), args[0]), details...)
			}

			fmt.Fprintf(out, "%s: valid (%d rotors, %d slots, %d pawls)\n", //nolint:errcheck // Best-effort terminal output
				args[0], len(cfg.Rotors), cfg.Slots, cfg.Pawls)
			cc.Logger.Debug("machine description validated", "path", args[0], "findings", len(findings))
			return nil
		}),
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when lint findings are reported")

	return cmd
}
