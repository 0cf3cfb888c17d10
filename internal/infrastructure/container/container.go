// Package container provides dependency injection for the application.
package container

import (
	"log/slog"

	"github.com/reglet-dev/enigma/internal/application/services"
	"github.com/reglet-dev/enigma/internal/infrastructure/adapters"
	"github.com/reglet-dev/enigma/internal/infrastructure/output"
	"github.com/reglet-dev/enigma/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	machineLoader  *adapters.MachineLoaderAdapter
	formatters     *output.FormatterFactory
	convertUseCase *services.ConvertMessagesUseCase
	batchUseCase   *services.BatchConvertUseCase
	settings       *system.Config
	logger         *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger   *slog.Logger
	Settings *system.Config
}

// New creates a new dependency injection container.
func New(opts Options) *Container {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Settings == nil {
		opts.Settings = system.DefaultConfig()
	}

	machineLoader := adapters.NewMachineLoaderAdapter()
	formatters := output.NewFormatterFactory(opts.Settings.GroupSize)

	// Wire up use cases
	convertUseCase := services.NewConvertMessagesUseCase(machineLoader, opts.Logger)
	batchUseCase := services.NewBatchConvertUseCase(machineLoader, formatters, convertUseCase, opts.Logger)

	return &Container{
		machineLoader:  machineLoader,
		formatters:     formatters,
		convertUseCase: convertUseCase,
		batchUseCase:   batchUseCase,
		settings:       opts.Settings,
		logger:         opts.Logger,
	}
}

// ConvertUseCase returns the convert messages use case.
func (c *Container) ConvertUseCase() *services.ConvertMessagesUseCase {
	return c.convertUseCase
}

// BatchUseCase returns the batch convert use case.
func (c *Container) BatchUseCase() *services.BatchConvertUseCase {
	return c.batchUseCase
}

// MachineLoader returns the machine loader.
func (c *Container) MachineLoader() *adapters.MachineLoaderAdapter {
	return c.machineLoader
}

// Formatters returns the output formatter factory.
func (c *Container) Formatters() *output.FormatterFactory {
	return c.formatters
}

// Settings returns the user settings.
func (c *Container) Settings() *system.Config {
	return c.settings
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
