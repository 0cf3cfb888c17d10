package entities

import (
	"strings"

	"github.com/reglet-dev/enigma/internal/domain/values"
)

// Machine is a rotor cipher machine: a reflector and a row of rotors in
// numbered slots, plus a plugboard.
// Slot 0 holds the reflector and the remaining slots run left to right.
//
// Invariants Enforced:
// - the number of installed rotors equals the slot count
// - slot 0 holds a reflector and no other slot does
// - installed rotor names are distinct
// - installed rotating rotors never outnumber the pawls
//
// A Machine is not safe for concurrent use.
type Machine struct {
	alphabet  *values.Alphabet
	numRotors int
	pawls     int
	pool      []*Rotor
	rotors    []*Rotor
	plugboard *Permutation
}

// NewMachine creates a machine over alphabet with numRotors slots and
// pawls pawls, 1 < numRotors and 0 <= pawls < numRotors. pool holds every
// rotor that may be installed.
func NewMachine(alphabet *values.Alphabet, numRotors, pawls int, pool []*Rotor) (*Machine, error) {
	if alphabet.Size() == 0 {
		return nil, values.NewCipherError(values.KindInvalidMachine, "machine has an empty alphabet")
	}
	if numRotors < 2 {
		return nil, values.NewCipherError(values.KindInvalidMachine, "machine needs at least 2 rotor slots, got %d", numRotors)
	}
	if pawls < 0 || pawls >= numRotors {
		return nil, values.NewCipherError(values.KindInvalidMachine,
			"pawl count %d out of range [0, %d)", pawls, numRotors)
	}

	for i, r := range pool {
		if !r.Alphabet().Equals(alphabet) {
			return nil, values.NewCipherError(values.KindInvalidMachine,
				"rotor %s uses alphabet %s, machine uses %s", r.Name(), r.Alphabet(), alphabet)
		}
		for _, prev := range pool[:i] {
			if prev.NamedAs(r.Name()) {
				return nil, values.NewCipherError(values.KindDuplicateRotor, "rotor %s defined twice", r.Name())
			}
		}
	}

	plugboard, err := NewPermutation("", alphabet)
	if err != nil {
		return nil, err
	}

	return &Machine{
		alphabet:  alphabet,
		numRotors: numRotors,
		pawls:     pawls,
		pool:      append([]*Rotor(nil), pool...),
		plugboard: plugboard,
	}, nil
}

// Alphabet returns the machine's alphabet.
func (m *Machine) Alphabet() *values.Alphabet { return m.alphabet }

// NumRotors returns the number of rotor slots.
func (m *Machine) NumRotors() int { return m.numRotors }

// NumPawls returns the number of pawls, and so of rotating rotors allowed.
func (m *Machine) NumPawls() int { return m.pawls }

// Pool returns the rotors available for installation.
func (m *Machine) Pool() []*Rotor { return append([]*Rotor(nil), m.pool...) }

// Rotors returns the installed rotors, reflector first.
func (m *Machine) Rotors() []*Rotor { return append([]*Rotor(nil), m.rotors...) }

// Plugboard returns the plugboard permutation.
func (m *Machine) Plugboard() *Permutation { return m.plugboard }

// Rotor returns the pool rotor named name, ignoring case.
func (m *Machine) Rotor(name string) (*Rotor, bool) {
	for _, r := range m.pool {
		if r.NamedAs(name) {
			return r, true
		}
	}
	return nil, false
}

// InsertRotors installs the rotors named by names, reflector first,
// replacing whatever was installed. Every installed rotor starts at
// setting 0. Nothing changes if any check fails.
func (m *Machine) InsertRotors(names []string) error {
	if len(names) != m.numRotors {
		return values.NewCipherError(values.KindRotorCount,
			"machine has %d rotor slots, got %d rotor names", m.numRotors, len(names))
	}

	installed := make([]*Rotor, 0, len(names))
	moving := 0
	for i, name := range names {
		r, ok := m.Rotor(name)
		if !ok {
			return values.NewCipherError(values.KindBadRotorName, "bad rotor name %s", name)
		}
		for _, prev := range installed {
			if prev == r {
				return values.NewCipherError(values.KindDuplicateRotor, "rotor %s used twice", r.Name())
			}
		}
		if i == 0 && !r.Reflecting() {
			return values.NewCipherError(values.KindMissingReflector, "rotor %s in slot 0 is not a reflector", r.Name())
		}
		if i > 0 && r.Reflecting() {
			return values.NewCipherError(values.KindMissingReflector, "reflector %s must be placed in slot 0", r.Name())
		}
		if r.Rotates() {
			moving++
		}
		installed = append(installed, r)
	}

	if moving > m.pawls {
		return values.NewCipherError(values.KindTooManyMovingRotors,
			"%d moving rotors installed, machine has %d pawls", moving, m.pawls)
	}

	for _, r := range installed {
		r.setting = 0
	}
	m.rotors = installed
	return nil
}

// SetRotors sets the installed rotors from setting, one symbol per
// non-reflector slot read left to right. The reflector goes to 0.
func (m *Machine) SetRotors(setting string) error {
	if len(m.rotors) == 0 {
		return values.NewCipherError(values.KindInvalidSetting, "no rotors installed")
	}

	symbols := []rune(setting)
	if len(symbols) != len(m.rotors)-1 {
		return values.NewCipherError(values.KindInvalidSetting,
			"setting %q must have %d symbols", setting, len(m.rotors)-1)
	}

	positions := make([]int, len(m.rotors))
	for i, c := range symbols {
		n, ok := m.alphabet.Normalize(c)
		if !ok {
			return values.NewCipherError(values.KindInvalidSetting, "setting symbol %q not in alphabet %s", c, m.alphabet)
		}
		positions[i+1], _ = m.alphabet.ToInt(n)
	}

	for i, r := range m.rotors {
		if err := r.Set(positions[i]); err != nil {
			return err
		}
	}
	return nil
}

// SetPlugboard adds the cycles of plugboard to the machine's plugboard.
// The plugboard only ever grows; build a new machine to clear it.
func (m *Machine) SetPlugboard(plugboard *Permutation) error {
	return m.plugboard.Merge(plugboard)
}

// Validate checks the installation invariants.
func (m *Machine) Validate() error {
	if len(m.rotors) != m.numRotors {
		return values.NewCipherError(values.KindRotorCount,
			"%d of %d rotor slots filled", len(m.rotors), m.numRotors)
	}
	if !m.rotors[0].Reflecting() {
		return values.NewCipherError(values.KindMissingReflector, "rotor %s in slot 0 is not a reflector", m.rotors[0].Name())
	}
	moving := 0
	for _, r := range m.rotors {
		if r.Rotates() {
			moving++
		}
	}
	if moving > m.pawls {
		return values.NewCipherError(values.KindTooManyMovingRotors,
			"%d moving rotors installed, machine has %d pawls", moving, m.pawls)
	}
	return nil
}

// Positions returns the current setting of every installed rotor as
// symbols, reflector first.
func (m *Machine) Positions() string {
	var b strings.Builder
	for _, r := range m.rotors {
		b.WriteRune(r.SettingSymbol())
	}
	return b.String()
}

// advance steps the rotors for one keystroke.
//
// The rightmost rotor always moves. A moving rotor at a notch moves
// together with its left neighbor when that neighbor can rotate, which
// makes a middle rotor step twice in a row (double stepping). Notches are
// read before anything moves and each rotor moves at most once.
func (m *Machine) advance() {
	n := len(m.rotors)
	step := make([]bool, n)
	step[n-1] = true
	for i := 1; i < n; i++ {
		r := m.rotors[i]
		if r.Rotates() && m.rotors[i-1].Rotates() && r.AtNotch() {
			step[i] = true
			step[i-1] = true
		}
	}
	for i, ok := range step {
		if ok {
			m.rotors[i].Advance()
		}
	}
}

// Convert advances the rotors and then returns the encoding of index c.
func (m *Machine) Convert(c int) int {
	if len(m.rotors) == 0 {
		return m.plugboard.Permute(m.plugboard.Permute(c))
	}

	m.advance()

	c = m.plugboard.Permute(c)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		c = m.rotors[i].ConvertForward(c)
	}
	for i := 1; i < len(m.rotors); i++ {
		c = m.rotors[i].ConvertBackward(c)
	}
	return m.plugboard.Permute(c)
}

// ConvertMessage encodes msg one symbol at a time, advancing the rotors
// for each. Symbols are matched case-insensitively against the alphabet
// and anything outside it (spaces, punctuation) is dropped.
func (m *Machine) ConvertMessage(msg string) string {
	var b strings.Builder
	b.Grow(len(msg))
	for _, c := range msg {
		sym, ok := m.alphabet.Normalize(c)
		if !ok {
			continue
		}
		i, _ := m.alphabet.ToInt(sym)
		b.WriteRune(m.alphabet.At(m.Convert(i)))
	}
	return b.String()
}
