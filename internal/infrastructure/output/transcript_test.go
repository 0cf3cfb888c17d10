package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/enigma/internal/application/dto"
	"github.com/reglet-dev/enigma/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRunID = "123e4567-e89b-12d3-a456-426614174000"

func sampleRun(t *testing.T, w interface {
	WriteEntry(dto.TranscriptEntry) error
	Finish(*dto.ConvertResponse) error
},
) {
	t.Helper()
	require.NoError(t, w.WriteEntry(dto.TranscriptEntry{
		Line: 1, Kind: dto.EntrySetting, Input: "* B Beta III IV I AXLE", Positions: "AAXLE",
	}))
	require.NoError(t, w.WriteEntry(dto.TranscriptEntry{
		Line: 2, Kind: dto.EntryMessage, Input: "HELLO", Output: "QVPQS", Positions: "AAXMJ",
	}))
	require.NoError(t, w.Finish(&dto.ConvertResponse{
		RunID:    values.MustParseRunID(testRunID),
		Source:   "msg.in",
		Duration: 1500 * time.Microsecond,
		Lines:    2,
		Messages: 1,
	}))
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf, true)

	require.NoError(t, w.WriteEntry(dto.TranscriptEntry{Line: 1, Kind: dto.EntryBlank}))
	assert.Zero(t, buf.Len(), "nothing is written before Finish")

	buf.Reset()
	w = NewJSONWriter(&buf, true)
	sampleRun(t, w)

	var got Transcript
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testRunID, got.RunID)
	assert.Equal(t, "msg.in", got.Source)
	assert.Equal(t, "1.5ms", got.Duration)
	assert.Equal(t, 2, got.Lines)
	assert.Equal(t, 1, got.Messages)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, dto.EntryMessage, got.Entries[1].Kind)
	assert.Equal(t, "QVPQS", got.Entries[1].Output)
	assert.Contains(t, buf.String(), "\n  \"run_id\"")
}

func TestJSONWriter_NoEntries(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf, false)
	require.NoError(t, w.Finish(&dto.ConvertResponse{}))
	assert.Contains(t, buf.String(), `"entries":[]`)
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	sampleRun(t, NewYAMLWriter(&buf))

	var got Transcript
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testRunID, got.RunID)
	assert.Equal(t, 2, got.Lines)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "AAXLE", got.Entries[0].Positions)
	assert.Contains(t, buf.String(), "run_id:")
}
