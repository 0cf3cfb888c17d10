package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	assert.Equal(t, "validation failed: rotors: pool is unusable",
		NewValidationError("rotors", "pool is unusable").Error())
	assert.Equal(t, "validation failed: rotors: pool is unusable (2 issues)",
		NewValidationError("rotors", "pool is unusable", "no reflector", "no notches").Error())
}

func TestExecutionError(t *testing.T) {
	cause := errors.New("bad rotor name IX")

	err := NewExecutionError("msg.in", 3, "invalid setting", cause)
	assert.Equal(t, "msg.in:3: invalid setting: bad rotor name IX", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "line 7: cancelled", NewExecutionError("", 7, "cancelled", nil).Error())
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("input", "message with no configuration", nil)
	assert.Equal(t, "configuration error (input): message with no configuration", err.Error())

	cause := errors.New("no such file")
	wrapped := NewConfigurationError("machine", "failed to load", cause)
	assert.ErrorIs(t, wrapped, cause)

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(NewExecutionError("", 1, "x", wrapped), &cfgErr))
	assert.Equal(t, "machine", cfgErr.Aspect)
}
