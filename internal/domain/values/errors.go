package values

import "fmt"

// ErrorKind classifies a cipher configuration failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidSymbol
	KindMalformedCycles
	KindBadRotorName
	KindMissingReflector
	KindTooManyMovingRotors
	KindDuplicateRotor
	KindInvalidSetting
	KindRotorCount
	KindInvalidMachine
)

// String returns the stable name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidSymbol:
		return "invalid symbol"
	case KindMalformedCycles:
		return "malformed cycles"
	case KindBadRotorName:
		return "bad rotor name"
	case KindMissingReflector:
		return "missing reflector"
	case KindTooManyMovingRotors:
		return "too many moving rotors"
	case KindDuplicateRotor:
		return "duplicate rotor"
	case KindInvalidSetting:
		return "invalid setting"
	case KindRotorCount:
		return "wrong rotor count"
	case KindInvalidMachine:
		return "invalid machine"
	default:
		return "unknown"
	}
}

// CipherError reports a violated machine invariant.
// Every error raised by the alphabet, permutation, rotor and machine types
// is a *CipherError, so callers can branch on Kind with errors.As, or on
// one of the Err* sentinels with errors.Is.
type CipherError struct {
	Kind    ErrorKind
	Message string
}

func (e *CipherError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any *CipherError of the same kind, so the Err* sentinels
// work with errors.Is regardless of message.
func (e *CipherError) Is(target error) bool {
	t, ok := target.(*CipherError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewCipherError creates a CipherError with a formatted message.
func NewCipherError(kind ErrorKind, format string, args ...any) *CipherError {
	return &CipherError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Sentinels for errors.Is.
var (
	ErrInvalidSymbol       = &CipherError{Kind: KindInvalidSymbol}
	ErrMalformedCycles     = &CipherError{Kind: KindMalformedCycles}
	ErrBadRotorName        = &CipherError{Kind: KindBadRotorName}
	ErrMissingReflector    = &CipherError{Kind: KindMissingReflector}
	ErrTooManyMovingRotors = &CipherError{Kind: KindTooManyMovingRotors}
	ErrDuplicateRotor      = &CipherError{Kind: KindDuplicateRotor}
	ErrInvalidSetting      = &CipherError{Kind: KindInvalidSetting}
	ErrRotorCount          = &CipherError{Kind: KindRotorCount}
	ErrInvalidMachine      = &CipherError{Kind: KindInvalidMachine}
)
