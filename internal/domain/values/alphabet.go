// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinAlphabetSize is the smallest alphabet a machine can work with.
const MinAlphabetSize = 2

// reservedSymbols are used by the configuration and setting grammars.
const reservedSymbols = "()*"

// Alphabet is an ordered, finite set of distinct symbols, each mapped to a
// dense index in 0..Size()-1.
// An Alphabet is immutable once constructed and is shared by reference by
// every permutation, rotor and machine built over it.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
	ranged  bool
}

// NewCharacterRange creates the alphabet of every character from first to
// last inclusive, in code point order.
func NewCharacterRange(first, last rune) (*Alphabet, error) {
	if last < first {
		return nil, NewCipherError(KindInvalidSymbol, "empty character range %c-%c", first, last)
	}
	symbols := make([]rune, 0, last-first+1)
	for r := first; r <= last; r++ {
		symbols = append(symbols, r)
	}
	a, err := newAlphabet(symbols)
	if err != nil {
		return nil, err
	}
	a.ranged = true
	return a, nil
}

// NewSymbolList creates an alphabet from an explicit ordered list of
// symbols, for example "0123456789".
func NewSymbolList(symbols string) (*Alphabet, error) {
	return newAlphabet([]rune(symbols))
}

// ParseAlphabet parses the textual alphabet form used by
// configuration files: "A-Z" is a character range, anything else is an
// explicit symbol list.
func ParseAlphabet(spec string) (*Alphabet, error) {
	spec = strings.TrimSpace(spec)
	if utf8.RuneCountInString(spec) == 3 {
		runes := []rune(spec)
		if runes[1] == '-' {
			return NewCharacterRange(runes[0], runes[2])
		}
	}
	return NewSymbolList(spec)
}

// MustParseAlphabet parses an alphabet or panics (for tests only)
func MustParseAlphabet(spec string) *Alphabet {
	a, err := ParseAlphabet(spec)
	if err != nil {
		panic(err)
	}
	return a
}

func newAlphabet(symbols []rune) (*Alphabet, error) {
	if len(symbols) < MinAlphabetSize {
		return nil, NewCipherError(KindInvalidSymbol,
			"alphabet must have at least %d symbols, got %d", MinAlphabetSize, len(symbols))
	}

	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if unicode.IsSpace(r) || strings.ContainsRune(reservedSymbols, r) {
			return nil, NewCipherError(KindInvalidSymbol, "reserved character %q in alphabet", r)
		}
		if _, dup := index[r]; dup {
			return nil, NewCipherError(KindInvalidSymbol, "symbol %c appears twice in alphabet", r)
		}
		index[r] = i
	}

	return &Alphabet{symbols: symbols, index: index}, nil
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	if a == nil {
		return 0
	}
	return len(a.symbols)
}

// Contains reports whether r is a symbol of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	if a == nil {
		return false
	}
	_, ok := a.index[r]
	return ok
}

// ToInt returns the index of symbol r.
func (a *Alphabet) ToInt(r rune) (int, error) {
	if a == nil {
		return 0, NewCipherError(KindInvalidSymbol, "empty alphabet")
	}
	i, ok := a.index[r]
	if !ok {
		return 0, NewCipherError(KindInvalidSymbol, "symbol %q not in alphabet %s", r, a)
	}
	return i, nil
}

// ToSymbol returns the symbol at index i.
func (a *Alphabet) ToSymbol(i int) (rune, error) {
	if i < 0 || i >= a.Size() {
		return 0, NewCipherError(KindInvalidSymbol, "index %d out of range [0, %d)", i, a.Size())
	}
	return a.symbols[i], nil
}

// Symbols returns the symbols in index order.
func (a *Alphabet) Symbols() string {
	if a == nil {
		return ""
	}
	return string(a.symbols)
}

// String returns the textual form: "A-Z" for ranges, the symbol
// list otherwise.
func (a *Alphabet) String() string {
	if a == nil {
		return ""
	}
	if a.ranged {
		return string(a.symbols[0]) + "-" + string(a.symbols[len(a.symbols)-1])
	}
	return string(a.symbols)
}

// Equals checks if two alphabets hold the same symbols in the same order.
func (a *Alphabet) Equals(other *Alphabet) bool {
	return a.Symbols() == other.Symbols()
}

// Normalize maps r onto the alphabet: r itself when it is a symbol,
// otherwise its upper-case form when that is. ok is false when neither is.
func (a *Alphabet) Normalize(r rune) (rune, bool) {
	if a.Contains(r) {
		return r, true
	}
	if u := unicode.ToUpper(r); a.Contains(u) {
		return u, true
	}
	return 0, false
}

// At returns the symbol at index i, wrapping i into range.
func (a *Alphabet) At(i int) rune {
	n := a.Size()
	i %= n
	if i < 0 {
		i += n
	}
	return a.symbols[i]
}
