package values

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewRunID(t *testing.T) {
	id1 := NewRunID()
	id2 := NewRunID()

	assert.False(t, id1.IsZero(), "new ID should not be zero")
	assert.False(t, id1.Equals(id2), "two new IDs should be different")
}

func Test_ParseRunID(t *testing.T) {
	valid := "123e4567-e89b-12d3-a456-426614174000"

	id, err := ParseRunID(valid)
	require.NoError(t, err)
	assert.Equal(t, valid, id.String())

	for _, bad := range []string{"", "invalid", "123"} {
		_, err := ParseRunID(bad)
		assert.Error(t, err, bad)
	}

	assert.Panics(t, func() { MustParseRunID("invalid") })
}

func Test_RunID_JSON(t *testing.T) {
	original := NewRunID()

	data, err := json.Marshal(struct {
		ID RunID `json:"id"`
	}{original})
	require.NoError(t, err)
	assert.Contains(t, string(data), original.String())

	var decoded RunID
	require.NoError(t, json.Unmarshal([]byte(`"`+original.String()+`"`), &decoded))
	assert.True(t, original.Equals(decoded))

	assert.Error(t, json.Unmarshal([]byte(`"not-a-uuid"`), &decoded))
}
