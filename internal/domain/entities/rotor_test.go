package entities

import (
	"testing"

	"github.com/reglet-dev/enigma/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cyclesI    = "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)"
	cyclesIII  = "(ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)"
	cyclesIV   = "(AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)"
	cyclesBeta = "(ALBEVFCYODJWUGNMQTZSKPR) (HIX)"
	cyclesB    = "(AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)"
)

func mustRotor(t *testing.T, name string, kind RotorKind, cycles string, alpha *values.Alphabet, notches string) *Rotor {
	t.Helper()
	r, err := NewRotor(name, kind, MustNewPermutation(cycles, alpha), notches)
	require.NoError(t, err)
	return r
}

func TestParseRotorKind(t *testing.T) {
	tests := []struct {
		in      string
		want    RotorKind
		wantErr bool
	}{
		{"reflector", RotorReflector, false},
		{"FIXED", RotorFixed, false},
		{" moving ", RotorMoving, false},
		{"spinning", RotorUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRotorKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) RotorKind {
	t.Helper()
	k, err := ParseRotorKind(s)
	require.NoError(t, err)
	return k
}

func TestNewRotor_Validation(t *testing.T) {
	perm := MustNewPermutation(cyclesI, upper)

	_, err := NewMovingRotor("", perm, "Q")
	assert.ErrorIs(t, err, values.ErrBadRotorName)

	_, err = NewMovingRotor("I II", perm, "Q")
	assert.ErrorIs(t, err, values.ErrBadRotorName)

	_, err = NewMovingRotor("I", nil, "Q")
	assert.ErrorIs(t, err, values.ErrMalformedCycles)

	_, err = NewMovingRotor("I", perm, "q")
	assert.ErrorIs(t, err, values.ErrInvalidSymbol)

	_, err = NewRotor("I", RotorUnknown, perm, "")
	assert.Error(t, err)

	// Rotor I has S as a fixed point, so it cannot be a reflector.
	_, err = NewReflector("I", perm)
	assert.ErrorIs(t, err, values.ErrMalformedCycles)
}

func TestRotor_KindBehavior(t *testing.T) {
	reflector := mustRotor(t, "B", RotorReflector, cyclesB, upper, "")
	fixed := mustRotor(t, "Beta", RotorFixed, cyclesBeta, upper, "")
	moving := mustRotor(t, "I", RotorMoving, cyclesI, upper, "Q")

	tests := []struct {
		name       string
		rotor      *Rotor
		rotates    bool
		reflecting bool
	}{
		{"reflector", reflector, false, true},
		{"fixed", fixed, false, false},
		{"moving", moving, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rotates, tt.rotor.Rotates())
			assert.Equal(t, tt.reflecting, tt.rotor.Reflecting())
			assert.Equal(t, 0, tt.rotor.Setting())
		})
	}
}

func TestRotor_ReflectorImmobile(t *testing.T) {
	r := mustRotor(t, "B", RotorReflector, cyclesB, upper, "")

	for posn := 1; posn < r.Size(); posn++ {
		err := r.Set(posn)
		require.Error(t, err)
		assert.ErrorIs(t, err, values.ErrInvalidSetting)
	}
	assert.ErrorIs(t, r.Set(-1), values.ErrInvalidSetting)
	assert.NoError(t, r.Set(0))

	r.Advance()
	assert.Equal(t, 0, r.Setting())
	assert.False(t, r.AtNotch())
}

func TestRotor_Set(t *testing.T) {
	r := mustRotor(t, "I", RotorMoving, cyclesI, upper, "Q")

	require.NoError(t, r.Set(25))
	assert.Equal(t, 'Z', r.SettingSymbol())

	assert.ErrorIs(t, r.Set(26), values.ErrInvalidSetting)
	assert.ErrorIs(t, r.Set(-1), values.ErrInvalidSetting)
	assert.Equal(t, 25, r.Setting())

	require.NoError(t, r.SetSymbol('E'))
	assert.Equal(t, 4, r.Setting())
	assert.ErrorIs(t, r.SetSymbol('?'), values.ErrInvalidSetting)
}

func TestRotor_ConvertAtZero(t *testing.T) {
	r := mustRotor(t, "I", RotorMoving, cyclesI, upper, "Q")

	// At setting 0 the rotor is exactly its permutation.
	for i := 0; i < r.Size(); i++ {
		assert.Equal(t, r.Permutation().Permute(i), r.ConvertForward(i))
		assert.Equal(t, r.Permutation().Invert(i), r.ConvertBackward(i))
	}
}

func TestRotor_ConvertWithOffset(t *testing.T) {
	abcd := values.MustParseAlphabet("ABCD")
	r := mustRotor(t, "R", RotorMoving, "(ABCD)", abcd, "C")

	// (ABCD) shifts every symbol by one, so the offset cancels out.
	for posn := 0; posn < 4; posn++ {
		require.NoError(t, r.Set(posn))
		for c := 0; c < 4; c++ {
			assert.Equal(t, (c+1)%4, r.ConvertForward(c))
			assert.Equal(t, (c+3)%4, r.ConvertBackward(c))
		}
	}

	r = mustRotor(t, "I", RotorMoving, cyclesI, upper, "Q")
	require.NoError(t, r.Set(1))
	// B enters at contact C, which is wired to M, leaving at L.
	assert.Equal(t, 11, r.ConvertForward(1))
	assert.Equal(t, 1, r.ConvertBackward(11))
}

func TestRotor_ConvertInverse(t *testing.T) {
	r := mustRotor(t, "III", RotorMoving, cyclesIII, upper, "V")

	for posn := 0; posn < r.Size(); posn++ {
		require.NoError(t, r.Set(posn))
		for c := 0; c < r.Size(); c++ {
			assert.Equal(t, c, r.ConvertBackward(r.ConvertForward(c)))
		}
	}
}

func TestRotor_AdvanceAndNotch(t *testing.T) {
	r := mustRotor(t, "VI", RotorMoving, "(AJQDVLEOZWIYTS) (CGMNHFUX) (BPRK)", upper, "ZM")
	assert.Equal(t, "ZM", r.Notches())

	require.NoError(t, r.SetSymbol('L'))
	assert.False(t, r.AtNotch())

	r.Advance()
	assert.Equal(t, 'M', r.SettingSymbol())
	assert.True(t, r.AtNotch())

	require.NoError(t, r.SetSymbol('Z'))
	assert.True(t, r.AtNotch())
	r.Advance()
	assert.Equal(t, 'A', r.SettingSymbol())
	assert.False(t, r.AtNotch())
}

func TestRotor_FixedNeverMoves(t *testing.T) {
	r := mustRotor(t, "Beta", RotorFixed, cyclesBeta, upper, "")

	require.NoError(t, r.Set(5))
	r.Advance()
	assert.Equal(t, 5, r.Setting())
	assert.False(t, r.AtNotch())
}

func TestRotor_NamedAs(t *testing.T) {
	r := mustRotor(t, "Beta", RotorFixed, cyclesBeta, upper, "")

	assert.True(t, r.NamedAs("BETA"))
	assert.True(t, r.NamedAs("beta"))
	assert.False(t, r.NamedAs("Gamma"))
}

func TestRotor_String(t *testing.T) {
	assert.Equal(t, "I (moving, notches Q)", mustRotor(t, "I", RotorMoving, cyclesI, upper, "Q").String())
	assert.Equal(t, "B (reflector)", mustRotor(t, "B", RotorReflector, cyclesB, upper, "").String())
}
