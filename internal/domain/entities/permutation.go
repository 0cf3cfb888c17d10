// Package entities contains domain entities for the cipher machine.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"slices"
	"strings"
	"unicode"

	"github.com/reglet-dev/enigma/internal/domain/values"
)

// Permutation is a bijection on the indices of an alphabet, described in
// cycle notation: "(ABD)(CE)" maps A->B, B->D, D->A, C->E and E->C.
// Symbols that appear in no cycle map to themselves.
//
// The cycles are compiled into forward and inverse lookup tables whenever
// they change, so Permute and Invert are constant-time.
type Permutation struct {
	alphabet *values.Alphabet
	cycles   [][]rune
	forward  []int
	inverse  []int
}

// NewPermutation creates the permutation described by cycles over alphabet.
// Whitespace between cycles is ignored. A symbol outside the alphabet, a
// symbol that appears twice, an empty cycle or unbalanced parentheses are
// reported as MalformedCycles.
func NewPermutation(cycles string, alphabet *values.Alphabet) (*Permutation, error) {
	if alphabet.Size() == 0 {
		return nil, values.NewCipherError(values.KindInvalidSymbol, "permutation over an empty alphabet")
	}

	parsed, err := parseCycles(cycles, alphabet)
	if err != nil {
		return nil, err
	}

	p := &Permutation{alphabet: alphabet}
	if err := p.compile(parsed); err != nil {
		return nil, err
	}
	return p, nil
}

// MustNewPermutation creates a permutation or panics (for tests only)
func MustNewPermutation(cycles string, alphabet *values.Alphabet) *Permutation {
	p, err := NewPermutation(cycles, alphabet)
	if err != nil {
		panic(err)
	}
	return p
}

// parseCycles splits cycle text into its cycles.
func parseCycles(text string, alphabet *values.Alphabet) ([][]rune, error) {
	var (
		cycles [][]rune
		cur    []rune
		open   bool
	)

	for _, r := range text {
		switch {
		case r == '(':
			if open {
				return nil, values.NewCipherError(values.KindMalformedCycles, "nested '(' in %q", text)
			}
			open = true
			cur = nil
		case r == ')':
			if !open {
				return nil, values.NewCipherError(values.KindMalformedCycles, "unbalanced ')' in %q", text)
			}
			if len(cur) == 0 {
				return nil, values.NewCipherError(values.KindMalformedCycles, "empty cycle in %q", text)
			}
			cycles = append(cycles, cur)
			open = false
		case unicode.IsSpace(r):
			if open {
				return nil, values.NewCipherError(values.KindMalformedCycles, "whitespace inside cycle in %q", text)
			}
		default:
			if !open {
				return nil, values.NewCipherError(values.KindMalformedCycles, "symbol %q outside a cycle in %q", r, text)
			}
			if !alphabet.Contains(r) {
				return nil, values.NewCipherError(values.KindMalformedCycles, "symbol %q not in alphabet %s", r, alphabet)
			}
			cur = append(cur, r)
		}
	}

	if open {
		return nil, values.NewCipherError(values.KindMalformedCycles, "unterminated cycle in %q", text)
	}
	return cycles, nil
}

// compile rebuilds the lookup tables from cycles. The receiver is left
// untouched when the cycles are not disjoint.
func (p *Permutation) compile(cycles [][]rune) error {
	n := p.alphabet.Size()
	forward := make([]int, n)
	inverse := make([]int, n)
	for i := range forward {
		forward[i] = i
		inverse[i] = i
	}

	mapped := make([]bool, n)
	for _, cycle := range cycles {
		for i, r := range cycle {
			from, err := p.alphabet.ToInt(r)
			if err != nil {
				return values.NewCipherError(values.KindMalformedCycles, "symbol %q not in alphabet %s", r, p.alphabet)
			}
			if mapped[from] {
				return values.NewCipherError(values.KindMalformedCycles, "symbol %c already mapped", r)
			}
			mapped[from] = true

			to, err := p.alphabet.ToInt(cycle[(i+1)%len(cycle)])
			if err != nil {
				return values.NewCipherError(values.KindMalformedCycles, "symbol %q not in alphabet %s", r, p.alphabet)
			}
			forward[from] = to
			inverse[to] = from
		}
	}

	p.cycles = cycles
	p.forward = forward
	p.inverse = inverse
	return nil
}

// AddCycle appends the cycle c0->c1->...->cm->c0, where cycle is the
// symbol sequence c0c1...cm (with or without enclosing parentheses).
// A symbol that is already part of another cycle is rejected.
func (p *Permutation) AddCycle(cycle string) error {
	cycle = strings.TrimSpace(cycle)
	if !strings.HasPrefix(cycle, "(") {
		cycle = "(" + cycle + ")"
	}
	parsed, err := parseCycles(cycle, p.alphabet)
	if err != nil {
		return err
	}
	return p.compile(append(slices.Clone(p.cycles), parsed...))
}

// SetCycles replaces every cycle of the permutation with those described
// by cycles. It is used when a description spans several lines.
func (p *Permutation) SetCycles(cycles string) error {
	parsed, err := parseCycles(cycles, p.alphabet)
	if err != nil {
		return err
	}
	return p.compile(parsed)
}

// Merge adds every cycle of other to p. Both permutations must share an
// alphabet and their cycles must be disjoint.
func (p *Permutation) Merge(other *Permutation) error {
	if other == nil || len(other.cycles) == 0 {
		return nil
	}
	if !p.alphabet.Equals(other.alphabet) {
		return values.NewCipherError(values.KindMalformedCycles,
			"cannot merge permutations over alphabets %s and %s", p.alphabet, other.alphabet)
	}
	return p.compile(append(slices.Clone(p.cycles), other.cycles...))
}

// Wrap returns i modulo the alphabet size, in [0, Size()).
func (p *Permutation) Wrap(i int) int {
	r := i % p.Size()
	if r < 0 {
		r += p.Size()
	}
	return r
}

// Size returns the size of the alphabet being permuted.
func (p *Permutation) Size() int {
	return p.alphabet.Size()
}

// Alphabet returns the alphabet the permutation is defined over.
func (p *Permutation) Alphabet() *values.Alphabet {
	return p.alphabet
}

// Permute applies the permutation to i modulo the alphabet size.
func (p *Permutation) Permute(i int) int {
	return p.forward[p.Wrap(i)]
}

// Invert applies the inverse permutation to i modulo the alphabet size.
func (p *Permutation) Invert(i int) int {
	return p.inverse[p.Wrap(i)]
}

// PermuteSymbol applies the permutation to symbol r.
// r is assumed to be in the alphabet; any other rune is returned as is.
func (p *Permutation) PermuteSymbol(r rune) rune {
	i, err := p.alphabet.ToInt(r)
	if err != nil {
		return r
	}
	return p.alphabet.At(p.forward[i])
}

// InvertSymbol applies the inverse permutation to symbol r.
func (p *Permutation) InvertSymbol(r rune) rune {
	i, err := p.alphabet.ToInt(r)
	if err != nil {
		return r
	}
	return p.alphabet.At(p.inverse[i])
}

// Derangement reports whether no symbol maps to itself.
func (p *Permutation) Derangement() bool {
	for i, to := range p.forward {
		if to == i {
			return false
		}
	}
	return true
}

// Involution reports whether applying the permutation twice is the
// identity, i.e. every cycle has length one or two.
func (p *Permutation) Involution() bool {
	for i, to := range p.forward {
		if p.forward[to] != i {
			return false
		}
	}
	return true
}

// Cycles returns the cycles in canonical notation, "(ABD) (CE)".
func (p *Permutation) Cycles() string {
	parts := make([]string, len(p.cycles))
	for i, c := range p.cycles {
		parts[i] = "(" + string(c) + ")"
	}
	return strings.Join(parts, " ")
}

// String returns the cycle notation.
func (p *Permutation) String() string {
	return p.Cycles()
}
