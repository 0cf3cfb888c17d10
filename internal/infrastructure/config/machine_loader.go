package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MachineLoader loads machine descriptions from files. Files ending in
// .yaml or .yml are read as YAML, anything else as the text format.
type MachineLoader struct{}

// NewMachineLoader creates a new machine loader.
func NewMachineLoader() *MachineLoader {
	return &MachineLoader{}
}

// Load loads, parses and validates the machine description at path.
func (l *MachineLoader) Load(path string) (*MachineConfig, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	cfg, err := l.LoadFromReader(file, formatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// LoadFromReader parses a description in the given format ("conf" or
// "yaml") and checks that it builds a machine.
func (l *MachineLoader) LoadFromReader(r io.Reader, format string) (*MachineConfig, error) {
	var (
		cfg *MachineConfig
		err error
	)
	switch format {
	case "yaml":
		cfg, err = ParseYAML(r)
	case "conf", "":
		cfg, err = ParseConf(r)
	default:
		return nil, fmt.Errorf("unsupported configuration format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid machine description: %w", err)
	}
	return cfg, nil
}

func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "conf"
	}
}
