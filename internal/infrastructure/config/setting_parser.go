package config

import (
	"errors"
	"strings"

	"github.com/reglet-dev/enigma/internal/domain/entities"
	"github.com/reglet-dev/enigma/internal/domain/values"
)

// SettingPrefix starts a setup directive in message input.
const SettingPrefix = "*"

// Setting is a parsed setup directive:
//
//	* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
//
// It names one rotor per slot, reflector first, then the initial setting of
// the non-reflector rotors, then the plugboard cycles.
type Setting struct {
	Rotors    []string
	Positions string
	Plugboard string
}

// IsSettingLine reports whether line is a setup directive.
func IsSettingLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), SettingPrefix)
}

// ParseSetting parses a setup directive for a machine with slots rotor
// slots.
func ParseSetting(line string, slots int) (*Setting, error) {
	body, ok := strings.CutPrefix(strings.TrimSpace(line), SettingPrefix)
	if !ok {
		return nil, values.NewCipherError(values.KindInvalidSetting, "setting line must start with %q", SettingPrefix)
	}
	fields := strings.Fields(body)

	names := fields
	if len(names) > slots {
		names = fields[:slots]
	}
	for i, name := range names {
		if strings.HasPrefix(name, "(") {
			return nil, values.NewCipherError(values.KindRotorCount,
				"expected %d rotor names, got %d", slots, i)
		}
	}
	if len(names) < slots {
		return nil, values.NewCipherError(values.KindRotorCount,
			"expected %d rotor names, got %d", slots, len(names))
	}
	for i, name := range names {
		for _, prev := range names[:i] {
			if strings.EqualFold(prev, name) {
				return nil, values.NewCipherError(values.KindDuplicateRotor, "rotor %s named twice", name)
			}
		}
	}

	if len(fields) == slots {
		return nil, values.NewCipherError(values.KindInvalidSetting, "missing rotor setting")
	}
	positions := fields[slots]
	if strings.HasPrefix(positions, "(") {
		return nil, values.NewCipherError(values.KindInvalidSetting, "missing rotor setting before plugboard %s", positions)
	}

	plugboard := fields[slots+1:]
	for _, cycle := range plugboard {
		if !strings.HasPrefix(cycle, "(") || !strings.HasSuffix(cycle, ")") {
			return nil, values.NewCipherError(values.KindMalformedCycles, "plugboard token %q is not a cycle", cycle)
		}
	}

	return &Setting{
		Rotors:    append([]string(nil), names...),
		Positions: positions,
		Plugboard: strings.Join(plugboard, " "),
	}, nil
}

// Apply installs the rotors, sets them and adds the plugboard to m.
func (s *Setting) Apply(m *entities.Machine) error {
	if err := m.InsertRotors(s.Rotors); err != nil {
		return err
	}
	if err := m.SetRotors(s.Positions); err != nil {
		return err
	}
	plugboard, err := entities.NewPermutation(s.Plugboard, m.Alphabet())
	if err != nil {
		return err
	}
	return m.SetPlugboard(plugboard)
}

// String renders the directive in input form.
func (s *Setting) String() string {
	parts := append([]string{SettingPrefix}, s.Rotors...)
	parts = append(parts, s.Positions)
	if s.Plugboard != "" {
		parts = append(parts, s.Plugboard)
	}
	return strings.Join(parts, " ")
}

// IsSetting reports whether line is a setup directive.
func (c *MachineConfig) IsSetting(line string) bool {
	return IsSettingLine(line)
}

// Configure builds a new machine and applies the setup directive to it.
// Rotor names are checked against the pool before a missing setting is
// reported, so "* B Beta III IV AXLE" fails on the name AXLE.
func (c *MachineConfig) Configure(directive string) (*entities.Machine, error) {
	m, err := c.Build()
	if err != nil {
		return nil, err
	}
	setting, err := ParseSetting(directive, c.Slots)
	if err != nil {
		if names := directiveNames(directive, c.Slots); errors.Is(err, values.ErrInvalidSetting) && names != nil {
			if ierr := m.InsertRotors(names); ierr != nil {
				return nil, ierr
			}
		}
		return nil, err
	}
	if err := setting.Apply(m); err != nil {
		return nil, err
	}
	return m, nil
}

// directiveNames returns the first slots tokens of a setup directive, or
// nil when the line is not a directive or names fewer rotors.
func directiveNames(line string, slots int) []string {
	body, ok := strings.CutPrefix(strings.TrimSpace(line), SettingPrefix)
	if !ok {
		return nil
	}
	fields := strings.Fields(body)
	if len(fields) < slots {
		return nil
	}
	return fields[:slots]
}
