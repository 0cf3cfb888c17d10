package main

import (
	"fmt"
	"io"
	"os"

	"github.com/reglet-dev/enigma/internal/application/dto"
	"github.com/reglet-dev/enigma/internal/infrastructure/output"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newConvertCmd())
}

func newConvertCmd() *cobra.Command {
	opts := DefaultCommonOptions()

	cmd := &cobra.Command{
		Use:   "convert CONFIG [INPUT [OUTPUT]]",
		Short: "Encipher or decipher messages",
		Long: `Convert reads a machine description from CONFIG, then converts INPUT
line by line. Setting lines configure a new machine, blank lines are kept,
and every other line is converted and printed in groups of five symbols.

INPUT and OUTPUT default to standard input and output; '-' selects them
explicitly.`,
		Example: `  enigma convert default.conf message.txt
  enigma convert default.conf - out.txt < message.txt
  enigma convert default.yaml message.txt --format json`,
		Args: cobra.RangeArgs(1, 3),
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			opts.Resolve(cmd, cc.Container.Settings())
			if err := opts.ValidateFlags(); err != nil {
				return err
			}

			ctx, cancel := opts.ApplyToContext(cc.Context)
			defer cancel()

			in, inputName, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			out, closeOut, err := openOutput(cmd, args)
			if err != nil {
				return err
			}

			writer, err := output.NewFormatterFactory(opts.GroupSize).NewTranscriptWriter(out, opts.Format)
			if err != nil {
				_ = closeOut()
				return err
			}

			resp, err := cc.Container.ConvertUseCase().Execute(ctx, dto.ConvertRequest{
				ConfigPath: args[0],
				Input:      in,
				InputName:  inputName,
			}, writer)
			if cerr := closeOut(); err == nil && cerr != nil {
				return fmt.Errorf("failed to close output: %w", cerr)
			}
			if err != nil {
				return err
			}

			cc.Logger.Debug("converted",
				"run_id", resp.RunID.String(),
				"lines", resp.Lines,
				"messages", resp.Messages,
				"duration", resp.Duration)
			return nil
		}),
	}

	opts.RegisterFlags(cmd)

	return cmd
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, string, func(), error) {
	if len(args) < 2 || args[1] == "-" {
		return cmd.InOrStdin(), "stdin", func() {}, nil
	}

	f, err := os.Open(args[1])
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, args[1], func() {
		_ = f.Close() // Best-effort cleanup
	}, nil
}

func openOutput(cmd *cobra.Command, args []string) (io.Writer, func() error, error) {
	if len(args) < 3 || args[2] == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := os.Create(args[2])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, f.Close, nil
}
