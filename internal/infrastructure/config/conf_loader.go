package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reglet-dev/enigma/internal/domain/values"
)

type token struct {
	text string
	line int
}

// ParseConf reads the text description format:
//
//	A-Z 5 3
//	I MQ (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
//	Beta N (ALBEVFCYODJWUGNMQTZSKPR) (HIX)
//	B R (AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)
//
// The header holds the alphabet, slot count and pawl count. Each rotor is
// a name, a type (M followed by notch symbols, N, or R) and its cycles.
// Cycles may continue on following lines.
func ParseConf(r io.Reader) (*MachineConfig, error) {
	tokens, err := tokenize(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if len(tokens) < 3 {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].line
		}
		return nil, atLine(line, values.NewCipherError(values.KindInvalidMachine,
			"header needs an alphabet, a slot count and a pawl count"))
	}

	cfg := &MachineConfig{Alphabet: tokens[0].text}
	if cfg.Slots, err = parseCount(tokens[1], "slot"); err != nil {
		return nil, err
	}
	if cfg.Pawls, err = parseCount(tokens[2], "pawl"); err != nil {
		return nil, err
	}

	rest := tokens[3:]
	for len(rest) > 0 {
		var spec RotorSpec
		spec, rest, err = parseRotor(rest)
		if err != nil {
			return nil, err
		}
		cfg.Rotors = append(cfg.Rotors, spec)
	}

	return cfg, nil
}

func tokenize(r io.Reader) ([]token, error) {
	var tokens []token
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		for _, f := range strings.Fields(scanner.Text()) {
			tokens = append(tokens, token{text: f, line: line})
		}
	}
	return tokens, scanner.Err()
}

func parseCount(t token, what string) (int, error) {
	n, err := strconv.Atoi(t.text)
	if err != nil {
		return 0, atLine(t.line, values.NewCipherError(values.KindInvalidMachine,
			"%s count %q is not a number", what, t.text))
	}
	return n, nil
}

func parseRotor(tokens []token) (RotorSpec, []token, error) {
	name := tokens[0]
	if strings.HasPrefix(name.text, "(") {
		return RotorSpec{}, nil, atLine(name.line, values.NewCipherError(values.KindMalformedCycles,
			"cycles %s do not follow a rotor description", name.text))
	}
	if strings.ContainsAny(name.text, "()*") {
		return RotorSpec{}, nil, atLine(name.line, values.NewCipherError(values.KindBadRotorName,
			"invalid rotor name %q", name.text))
	}
	if len(tokens) < 2 {
		return RotorSpec{}, nil, atLine(name.line, values.NewCipherError(values.KindInvalidMachine,
			"rotor %s has no type", name.text))
	}

	typ := tokens[1]
	spec := RotorSpec{Name: name.text, Line: name.line}
	switch {
	case strings.HasPrefix(typ.text, "M"):
		spec.Kind = "moving"
		spec.Notches = typ.text[1:]
	case typ.text == "N":
		spec.Kind = "fixed"
	case typ.text == "R":
		spec.Kind = "reflector"
	default:
		return RotorSpec{}, nil, atLine(typ.line, values.NewCipherError(values.KindInvalidMachine,
			"rotor %s has invalid type %q", name.text, typ.text))
	}

	rest := tokens[2:]
	var cycles []string
	for len(rest) > 0 && strings.HasPrefix(rest[0].text, "(") {
		if !strings.HasSuffix(rest[0].text, ")") {
			return RotorSpec{}, nil, atLine(rest[0].line, values.NewCipherError(values.KindMalformedCycles,
				"rotor %s cycle %s is not closed", name.text, rest[0].text))
		}
		cycles = append(cycles, rest[0].text)
		rest = rest[1:]
	}
	spec.Cycles = strings.Join(cycles, " ")

	return spec, rest, nil
}
