package config

import (
	"fmt"

	"github.com/reglet-dev/enigma/internal/domain/entities"
	"go.uber.org/multierr"
)

// Lint reports every inconsistency in a description that still builds
// but cannot be used the way a historical machine would be. The result
// combines all findings; use multierr.Errors to list them.
func Lint(cfg *MachineConfig) error {
	alpha, err := cfg.ParsedAlphabet()
	if err != nil {
		return err
	}

	var (
		errs       error
		reflectors int
		others     int
		moving     int
	)
	for _, spec := range cfg.Rotors {
		r, err := spec.build(alpha)
		if err != nil {
			errs = multierr.Append(errs, atLine(spec.Line, err))
			continue
		}

		switch r.Kind() {
		case entities.RotorReflector:
			reflectors++
			if !r.Permutation().Involution() {
				errs = multierr.Append(errs, atLine(spec.Line,
					fmt.Errorf("reflector %s has cycles longer than 2: %s", r.Name(), r.Permutation())))
			}
		case entities.RotorMoving:
			others++
			moving++
			if r.Notches() == "" {
				errs = multierr.Append(errs, atLine(spec.Line,
					fmt.Errorf("moving rotor %s has no notches", r.Name())))
			}
		default:
			others++
		}
	}

	if reflectors == 0 {
		errs = multierr.Append(errs, fmt.Errorf("rotor pool has no reflector"))
	}
	if others < cfg.Slots-1 {
		errs = multierr.Append(errs,
			fmt.Errorf("rotor pool has %d non-reflector rotors, %d slots need %d", others, cfg.Slots, cfg.Slots-1))
	}
	if moving < cfg.Pawls {
		errs = multierr.Append(errs,
			fmt.Errorf("rotor pool has %d moving rotors for %d pawls", moving, cfg.Pawls))
	}

	return errs
}
