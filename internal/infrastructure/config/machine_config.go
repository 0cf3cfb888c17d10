// Package config provides infrastructure for loading machine descriptions.
// This package handles the text and YAML description formats, setup
// directives, and linting of a loaded description.
package config

import (
	"fmt"

	"github.com/reglet-dev/enigma/internal/domain/entities"
	"github.com/reglet-dev/enigma/internal/domain/values"
)

// RotorSpec describes one rotor of the pool.
type RotorSpec struct {
	Name    string `yaml:"name" json:"name"`
	Kind    string `yaml:"kind" json:"kind"`
	Notches string `yaml:"notches,omitempty" json:"notches,omitempty"`
	Cycles  string `yaml:"cycles" json:"cycles"`

	// Line is where the rotor was described; 0 when unknown.
	Line int `yaml:"-" json:"-"`
}

// MachineConfig is a parsed machine description. It holds only text, so
// every Build produces a machine with rotors of its own.
type MachineConfig struct {
	Alphabet string      `yaml:"alphabet" json:"alphabet"`
	Slots    int         `yaml:"slots" json:"slots"`
	Pawls    int         `yaml:"pawls" json:"pawls"`
	Rotors   []RotorSpec `yaml:"rotors" json:"rotors"`

	// Source names the file the description came from.
	Source string `yaml:"-" json:"-"`
}

// LineError attaches a 1-based line number to an error.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func atLine(line int, err error) error {
	if line <= 0 {
		return err
	}
	return &LineError{Line: line, Err: err}
}

// ParsedAlphabet parses the alphabet field.
func (c *MachineConfig) ParsedAlphabet() (*values.Alphabet, error) {
	return values.ParseAlphabet(c.Alphabet)
}

// Build creates a new machine from the description. Each call creates new
// rotor objects.
func (c *MachineConfig) Build() (*entities.Machine, error) {
	alpha, err := c.ParsedAlphabet()
	if err != nil {
		return nil, err
	}

	pool := make([]*entities.Rotor, 0, len(c.Rotors))
	for _, spec := range c.Rotors {
		r, err := spec.build(alpha)
		if err != nil {
			return nil, atLine(spec.Line, err)
		}
		pool = append(pool, r)
	}

	return entities.NewMachine(alpha, c.Slots, c.Pawls, pool)
}

// Validate checks that the description builds.
func (c *MachineConfig) Validate() error {
	_, err := c.Build()
	return err
}

func (s RotorSpec) build(alpha *values.Alphabet) (*entities.Rotor, error) {
	kind, err := entities.ParseRotorKind(s.Kind)
	if err != nil {
		return nil, values.NewCipherError(values.KindBadRotorName, "rotor %s: %v", s.Name, err)
	}
	perm, err := entities.NewPermutation(s.Cycles, alpha)
	if err != nil {
		return nil, fmt.Errorf("rotor %s: %w", s.Name, err)
	}
	return entities.NewRotor(s.Name, kind, perm, s.Notches)
}
