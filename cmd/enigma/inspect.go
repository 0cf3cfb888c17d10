package main

import (
	"github.com/reglet-dev/enigma/internal/infrastructure/output"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInspectCmd())
}

func newInspectCmd() *cobra.Command {
	var (
		format  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "inspect CONFIG",
		Short: "Show the rotor pool of a machine description",
		Args:  cobra.ExactArgs(1),
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			cfg, err := cc.Container.MachineLoader().LoadConfig(args[0])
			if err != nil {
				return err
			}
			m, err := cfg.Build()
			if err != nil {
				return err
			}

			formatter, err := cc.Container.Formatters().Create(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if table, ok := formatter.(*output.TableFormatter); ok && noColor {
				table.EnableColor = false
			}

			return formatter.Format(output.NewMachineView(args[0], m))
		}),
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json, yaml")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored table output")

	return cmd
}
