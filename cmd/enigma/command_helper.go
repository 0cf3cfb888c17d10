package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/enigma/internal/infrastructure/container"
	"github.com/reglet-dev/enigma/internal/infrastructure/system"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with settings loading and
// container initialization.
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		settings, err := system.Load(viper.GetViper())
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		logger := slog.Default()
		c := container.New(container.Options{
			Logger:   logger,
			Settings: settings,
		})

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return handler(&CommandContext{
			Container: c,
			Logger:    logger,
			Context:   ctx,
		}, cmd, args)
	}
}
