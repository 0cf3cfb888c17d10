package output

import (
	"fmt"
	"io"

	"github.com/reglet-dev/enigma/internal/application/ports"
)

var _ ports.TranscriptWriterFactory = (*FormatterFactory)(nil)

// FormatterFactory creates transcript writers and machine formatters by
// format name.
type FormatterFactory struct {
	groupSize int
}

// NewFormatterFactory creates a new formatter factory. groupSize applies
// to text transcripts.
func NewFormatterFactory(groupSize int) *FormatterFactory {
	return &FormatterFactory{groupSize: groupSize}
}

// NewTranscriptWriter returns a transcript writer for the given format.
func (f *FormatterFactory) NewTranscriptWriter(w io.Writer, format string) (ports.TranscriptWriter, error) {
	switch format {
	case "text", "":
		return NewTextWriter(w, f.groupSize), nil
	case "json":
		return NewJSONWriter(w, true), nil
	case "yaml":
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf(
			"unknown format: %s (supported: %v)",
			format, f.SupportedTranscriptFormats(),
		)
	}
}

// Create returns a machine formatter for the given format name.
func (f *FormatterFactory) Create(format string, writer io.Writer) (MachineFormatter, error) {
	switch format {
	case "table", "":
		return NewTableFormatter(writer), nil
	case "json":
		return NewJSONFormatter(writer, true), nil
	case "yaml":
		return NewYAMLFormatter(writer), nil
	default:
		return nil, fmt.Errorf(
			"unknown format: %s (supported: %v)",
			format, f.SupportedFormats(),
		)
	}
}

// SupportedTranscriptFormats returns the transcript format names.
func (f *FormatterFactory) SupportedTranscriptFormats() []string {
	return []string{"text", "json", "yaml"}
}

// SupportedFormats returns the machine format names.
func (f *FormatterFactory) SupportedFormats() []string {
	return []string{"table", "json", "yaml"}
}
