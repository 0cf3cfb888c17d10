// Package adapters provides infrastructure adapters that implement application ports.
// These adapters wrap existing infrastructure components to satisfy port interfaces.
package adapters

import (
	"github.com/reglet-dev/enigma/internal/application/ports"
	infraconfig "github.com/reglet-dev/enigma/internal/infrastructure/config"
)

// Ensure adapters implement ports at compile time
var (
	_ ports.MachineLoader = (*MachineLoaderAdapter)(nil)
	_ ports.MachineSource = (*infraconfig.MachineConfig)(nil)
)

// MachineLoaderAdapter adapts config.MachineLoader to ports.MachineLoader.
type MachineLoaderAdapter struct {
	loader *infraconfig.MachineLoader
}

// NewMachineLoaderAdapter creates a new machine loader adapter.
func NewMachineLoaderAdapter() *MachineLoaderAdapter {
	return &MachineLoaderAdapter{
		loader: infraconfig.NewMachineLoader(),
	}
}

// Load loads a machine description.
func (a *MachineLoaderAdapter) Load(path string) (ports.MachineSource, error) {
	cfg, err := a.loader.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads a machine description as its concrete type, for
// callers that inspect or lint it.
func (a *MachineLoaderAdapter) LoadConfig(path string) (*infraconfig.MachineConfig, error) {
	return a.loader.Load(path)
}
