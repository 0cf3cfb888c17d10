package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/enigma/internal/application/dto"
)

// Transcript is the structured record of a conversion run.
type Transcript struct {
	RunID    string                `json:"run_id" yaml:"run_id"`
	Source   string                `json:"source,omitempty" yaml:"source,omitempty"`
	Duration string                `json:"duration" yaml:"duration"`
	Entries  []dto.TranscriptEntry `json:"entries" yaml:"entries"`
	Lines    int                   `json:"lines" yaml:"lines"`
	Messages int                   `json:"messages" yaml:"messages"`
}

// transcriptBuffer collects entries until the run finishes.
type transcriptBuffer struct {
	entries []dto.TranscriptEntry
}

func (b *transcriptBuffer) WriteEntry(entry dto.TranscriptEntry) error {
	b.entries = append(b.entries, entry)
	return nil
}

func (b *transcriptBuffer) transcript(resp *dto.ConvertResponse) Transcript {
	entries := b.entries
	if entries == nil {
		entries = []dto.TranscriptEntry{}
	}
	return Transcript{
		RunID:    resp.RunID.String(),
		Source:   resp.Source,
		Duration: resp.Duration.Round(time.Microsecond).String(),
		Entries:  entries,
		Lines:    resp.Lines,
		Messages: resp.Messages,
	}
}

// JSONWriter emits the whole transcript as one JSON document when the run
// finishes.
type JSONWriter struct {
	transcriptBuffer
	writer io.Writer
	indent bool
}

// NewJSONWriter creates a new JSON transcript writer.
func NewJSONWriter(w io.Writer, indent bool) *JSONWriter {
	return &JSONWriter{writer: w, indent: indent}
}

// Finish writes the transcript.
func (j *JSONWriter) Finish(resp *dto.ConvertResponse) error {
	encoder := json.NewEncoder(j.writer)
	if j.indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(j.transcript(resp))
}

// YAMLWriter emits the whole transcript as one YAML document when the run
// finishes.
type YAMLWriter struct {
	transcriptBuffer
	writer io.Writer
}

// NewYAMLWriter creates a new YAML transcript writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{writer: w}
}

// Finish writes the transcript.
func (y *YAMLWriter) Finish(resp *dto.ConvertResponse) error {
	encoder := yaml.NewEncoder(y.writer, yaml.Indent(2))

	if err := encoder.Encode(y.transcript(resp)); err != nil {
		return err
	}

	return encoder.Close()
}
