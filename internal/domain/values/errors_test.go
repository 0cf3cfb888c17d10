package values

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CipherError_Error(t *testing.T) {
	err := NewCipherError(KindBadRotorName, "bad rotor name %s", "IX")
	assert.Equal(t, "bad rotor name: bad rotor name IX", err.Error())
}

func Test_CipherError_Is(t *testing.T) {
	err := fmt.Errorf("setup: %w", NewCipherError(KindDuplicateRotor, "rotor I used twice"))

	assert.ErrorIs(t, err, ErrDuplicateRotor)
	assert.NotErrorIs(t, err, ErrBadRotorName)
	assert.False(t, errors.Is(err, errors.New("duplicate rotor")))
}

func Test_ErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindInvalidSymbol, "invalid symbol"},
		{KindMalformedCycles, "malformed cycles"},
		{KindBadRotorName, "bad rotor name"},
		{KindMissingReflector, "missing reflector"},
		{KindTooManyMovingRotors, "too many moving rotors"},
		{KindDuplicateRotor, "duplicate rotor"},
		{KindInvalidSetting, "invalid setting"},
		{KindRotorCount, "wrong rotor count"},
		{KindInvalidMachine, "invalid machine"},
		{KindUnknown, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}
