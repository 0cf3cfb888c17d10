package main

import (
	"fmt"
	"slices"

	"github.com/reglet-dev/enigma/internal/application/dto"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newBatchCmd())
}

type batchOptions struct {
	CommonOptions
	Jobs   int
	Suffix string
}

func newBatchCmd() *cobra.Command {
	opts := batchOptions{CommonOptions: DefaultCommonOptions()}

	cmd := &cobra.Command{
		Use:   "batch CONFIG INPUT...",
		Short: "Convert several input files concurrently",
		Long: `Batch converts each INPUT with the machine described by CONFIG and
writes the transcript next to it, named INPUT plus the output suffix.
Inputs are independent: each starts with no configured machine.`,
		Example: `  enigma batch default.conf day1.txt day2.txt
  enigma batch default.conf *.txt --jobs 4 --suffix .dec --format yaml`,
		Args: cobra.MinimumNArgs(2),
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			settings := cc.Container.Settings()
			opts.Resolve(cmd, settings)
			if !cmd.Flags().Changed("jobs") {
				opts.Jobs = settings.Jobs
			}
			if !cmd.Flags().Changed("suffix") {
				opts.Suffix = settings.Suffix
			}
			if err := opts.validate(); err != nil {
				return err
			}

			ctx, cancel := opts.ApplyToContext(cc.Context)
			defer cancel()

			resp, err := cc.Container.BatchUseCase().Execute(ctx, dto.BatchConvertRequest{
				ConfigPath: args[0],
				Inputs:     slices.Clone(args[1:]),
				Suffix:     opts.Suffix,
				Format:     opts.Format,
				Jobs:       opts.Jobs,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range resp.Results {
				fmt.Fprintf(out, "%s -> %s (%d messages)\n", r.Input, r.Output, r.Response.Messages) //nolint:errcheck // Best-effort terminal output
			}
			cc.Logger.Debug("batch complete",
				"run_id", resp.RunID.String(),
				"inputs", len(resp.Results),
				"duration", resp.Duration)
			return nil
		}),
	}

	opts.RegisterFlags(cmd)
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Inputs converted at once (0 for one per CPU)")
	cmd.Flags().StringVar(&opts.Suffix, "suffix", ".out", "Suffix appended to each input to name its output")

	return cmd
}

func (opts *batchOptions) validate() error {
	if err := opts.ValidateFlags(); err != nil {
		return err
	}
	if opts.Jobs < 0 {
		return fmt.Errorf("invalid jobs: %d (must not be negative)", opts.Jobs)
	}
	if opts.Suffix == "" {
		return fmt.Errorf("output suffix must not be empty")
	}
	return nil
}
