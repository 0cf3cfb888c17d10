package entities

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/reglet-dev/enigma/internal/domain/values"
)

// RotorKind tags the behavior of a rotor.
type RotorKind int

const (
	RotorUnknown RotorKind = iota
	// RotorReflector never moves and sends the signal back through the stack.
	RotorReflector
	// RotorFixed never moves.
	RotorFixed
	// RotorMoving advances under a pawl and carries to its left neighbor
	// at its notches.
	RotorMoving
)

// ParseRotorKind parses "reflector", "fixed" or "moving".
func ParseRotorKind(s string) (RotorKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reflector":
		return RotorReflector, nil
	case "fixed":
		return RotorFixed, nil
	case "moving":
		return RotorMoving, nil
	default:
		return RotorUnknown, fmt.Errorf("invalid rotor kind: %s", s)
	}
}

// String returns the string representation
func (k RotorKind) String() string {
	switch k {
	case RotorReflector:
		return "reflector"
	case RotorFixed:
		return "fixed"
	case RotorMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// Rotor is a substitution wheel with a rotational setting.
//
// The three kinds share one representation and differ only in the methods
// that switch on kind: only moving rotors rotate or sit at notches, and a
// reflector's setting is pinned to zero.
//
// A rotor belongs to at most one machine at a time; sharing one between
// machines is the caller's responsibility and is not synchronized.
type Rotor struct {
	name    string
	kind    RotorKind
	perm    *Permutation
	notches []int
	setting int
}

// NewReflector creates a reflector. Its permutation must have no fixed
// points.
func NewReflector(name string, perm *Permutation) (*Rotor, error) {
	r, err := newRotor(name, RotorReflector, perm)
	if err != nil {
		return nil, err
	}
	if !perm.Derangement() {
		return nil, values.NewCipherError(values.KindMalformedCycles,
			"reflector %s maps a symbol to itself: %s", name, perm)
	}
	return r, nil
}

// NewFixedRotor creates a rotor that never moves.
func NewFixedRotor(name string, perm *Permutation) (*Rotor, error) {
	return newRotor(name, RotorFixed, perm)
}

// NewMovingRotor creates a rotor with notches at the positions named by
// the symbols in notches.
func NewMovingRotor(name string, perm *Permutation, notches string) (*Rotor, error) {
	r, err := newRotor(name, RotorMoving, perm)
	if err != nil {
		return nil, err
	}
	for _, n := range notches {
		i, err := perm.Alphabet().ToInt(n)
		if err != nil {
			return nil, values.NewCipherError(values.KindInvalidSymbol,
				"rotor %s notch %q not in alphabet %s", name, n, perm.Alphabet())
		}
		if !slices.Contains(r.notches, i) {
			r.notches = append(r.notches, i)
		}
	}
	return r, nil
}

// NewRotor creates a rotor of the given kind. notches is ignored unless
// kind is RotorMoving.
func NewRotor(name string, kind RotorKind, perm *Permutation, notches string) (*Rotor, error) {
	switch kind {
	case RotorReflector:
		return NewReflector(name, perm)
	case RotorFixed:
		return NewFixedRotor(name, perm)
	case RotorMoving:
		return NewMovingRotor(name, perm, notches)
	default:
		return nil, values.NewCipherError(values.KindBadRotorName, "rotor %s has unknown kind", name)
	}
}

func newRotor(name string, kind RotorKind, perm *Permutation) (*Rotor, error) {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return nil, values.NewCipherError(values.KindBadRotorName, "invalid rotor name %q", name)
	}
	if perm == nil {
		return nil, values.NewCipherError(values.KindMalformedCycles, "rotor %s has no permutation", name)
	}
	return &Rotor{name: name, kind: kind, perm: perm}, nil
}

// Name returns the rotor's name.
func (r *Rotor) Name() string { return r.name }

// Kind returns the rotor's kind.
func (r *Rotor) Kind() RotorKind { return r.kind }

// Permutation returns the rotor's permutation at setting zero.
func (r *Rotor) Permutation() *Permutation { return r.perm }

// Alphabet returns the alphabet the rotor is wired over.
func (r *Rotor) Alphabet() *values.Alphabet { return r.perm.Alphabet() }

// Size returns the number of positions.
func (r *Rotor) Size() int { return r.perm.Size() }

// Setting returns the current position.
func (r *Rotor) Setting() int { return r.setting }

// SettingSymbol returns the current position as a symbol.
func (r *Rotor) SettingSymbol() rune { return r.Alphabet().At(r.setting) }

// Rotates reports whether the rotor can advance.
func (r *Rotor) Rotates() bool { return r.kind == RotorMoving }

// Reflecting reports whether the rotor is a reflector.
func (r *Rotor) Reflecting() bool { return r.kind == RotorReflector }

// NamedAs reports whether name refers to this rotor, ignoring case.
func (r *Rotor) NamedAs(name string) bool { return strings.EqualFold(r.name, name) }

// Set moves the rotor to position posn.
func (r *Rotor) Set(posn int) error {
	if r.kind == RotorReflector && posn != 0 {
		return values.NewCipherError(values.KindInvalidSetting, "reflector %s has only one position", r.name)
	}
	if posn < 0 || posn >= r.Size() {
		return values.NewCipherError(values.KindInvalidSetting,
			"rotor %s position %d out of range [0, %d)", r.name, posn, r.Size())
	}
	r.setting = posn
	return nil
}

// SetSymbol moves the rotor to the position named by symbol c.
func (r *Rotor) SetSymbol(c rune) error {
	posn, err := r.Alphabet().ToInt(c)
	if err != nil {
		return values.NewCipherError(values.KindInvalidSetting, "rotor %s setting %q not in alphabet", r.name, c)
	}
	return r.Set(posn)
}

// ConvertForward maps index c through the rotor entering from the right.
func (r *Rotor) ConvertForward(c int) int {
	return r.perm.Wrap(r.perm.Permute(c+r.setting) - r.setting)
}

// ConvertBackward maps index c through the rotor entering from the left.
func (r *Rotor) ConvertBackward(c int) int {
	return r.perm.Wrap(r.perm.Invert(c+r.setting) - r.setting)
}

// AtNotch reports whether a moving rotor sits at one of its notches.
func (r *Rotor) AtNotch() bool {
	if r.kind != RotorMoving {
		return false
	}
	return slices.Contains(r.notches, r.setting)
}

// Advance moves a moving rotor one position; it is a no-op for other kinds.
func (r *Rotor) Advance() {
	if r.kind != RotorMoving {
		return
	}
	r.setting = r.perm.Wrap(r.setting + 1)
}

// Notches returns the notch positions as symbols.
func (r *Rotor) Notches() string {
	var b strings.Builder
	for _, n := range r.notches {
		b.WriteRune(r.Alphabet().At(n))
	}
	return b.String()
}

// String returns a short description, e.g. "III (moving, notches V)".
func (r *Rotor) String() string {
	if r.kind == RotorMoving {
		return fmt.Sprintf("%s (%s, notches %s)", r.name, r.kind, r.Notches())
	}
	return fmt.Sprintf("%s (%s)", r.name, r.kind)
}
