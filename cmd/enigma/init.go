package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/reglet-dev/enigma/internal/templates"
	"github.com/spf13/cobra"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	preset        string
	format        string
	force         bool
	noInteractive bool
}

func init() {
	rootCmd.AddCommand(newInitCmd())
}

func newInitCmd() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a machine description for a historical Enigma",
		Long: `Init writes the rotor pool of a historical machine as a description
file that convert, batch and validate accept. Without PATH the description
is printed to standard output.

Supported presets:
  m3      Enigma M3, three rotors from I to VIII, reflectors B and C
  m4      Enigma M4 (naval), adds the Beta and Gamma fourth wheels`,
		Example: `  enigma init naval.conf --preset m4
  enigma init m3.yaml --preset m3
  enigma init --preset m4 --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(cc, cmd, opts, path)
		}),
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Machine preset: m3, m4 (prompted when not set)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Description format: conf, yaml (default: from PATH extension)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&opts.noInteractive, "no-interactive", false, "Disable interactive prompts")

	return cmd
}

func runInit(cc *CommandContext, cmd *cobra.Command, opts *InitOptions, path string) error {
	if opts.preset == "" && !opts.noInteractive {
		err := huh.NewSelect[string]().
			Title("Select a machine").
			Options(
				huh.NewOption("Enigma M3 (three rotors)", "m3"),
				huh.NewOption("Enigma M4 (naval, four rotors)", "m4").Selected(true),
			).
			Value(&opts.preset).
			Run()
		if err != nil {
			return err
		}
	}
	if opts.preset == "" {
		opts.preset = "m4"
	}

	format := opts.format
	if format == "" {
		format = "conf"
		if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
			format = "yaml"
		}
	}

	data, err := templates.Preset(opts.preset)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := templates.Render(&buf, format, data); err != nil {
		return err
	}

	if path == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if !opts.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file already exists: %s (use --force to overwrite)", path)
		}
	}

	//nolint:gosec // G306: Machine descriptions are not secret
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	slog.Debug("created file", "path", path)

	cfg, err := cc.Container.MachineLoader().LoadConfig(path)
	if err != nil {
		return fmt.Errorf("generated description does not load: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s in %s (%d rotors, %d slots)\n", //nolint:errcheck // Best-effort terminal output
		data.Title, path, len(cfg.Rotors), cfg.Slots)
	return nil
}
