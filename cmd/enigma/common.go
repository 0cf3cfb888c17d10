package main

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/reglet-dev/enigma/internal/infrastructure/system"
	"github.com/spf13/cobra"
)

// CommonOptions contains flags shared by the converting commands.
type CommonOptions struct {
	// Output
	Format    string
	GroupSize int

	// Execution
	Timeout time.Duration
}

// DefaultCommonOptions returns defaults matching system.DefaultConfig.
func DefaultCommonOptions() CommonOptions {
	d := system.DefaultConfig()
	return CommonOptions{
		Format:    d.Format,
		GroupSize: d.GroupSize,
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Transcript format: text, json, yaml")
	cmd.Flags().IntVar(&opts.GroupSize, "group-size", opts.GroupSize,
		"Symbols per group in text output (0 to disable grouping)")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Global timeout for the whole run (0 to disable)")
}

// Resolve fills options whose flags were not given from settings.
func (opts *CommonOptions) Resolve(cmd *cobra.Command, settings *system.Config) {
	if !cmd.Flags().Changed("format") {
		opts.Format = settings.Format
	}
	if !cmd.Flags().Changed("group-size") {
		opts.GroupSize = settings.GroupSize
	}
}

// ApplyToContext applies timeout to context.
// Returns new context and cancel function.
func (opts *CommonOptions) ApplyToContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	// No timeout - return no-op cancel
	return ctx, func() {}
}

// ValidateFlags validates common options.
func (opts *CommonOptions) ValidateFlags() error {
	validFormats := []string{"text", "json", "yaml"}
	if !slices.Contains(validFormats, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: text, json, yaml)", opts.Format)
	}
	if opts.GroupSize < 0 {
		return fmt.Errorf("invalid group size: %d (must not be negative)", opts.GroupSize)
	}
	if opts.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %s", opts.Timeout)
	}
	return nil
}
