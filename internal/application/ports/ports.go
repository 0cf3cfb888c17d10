// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"io"

	"github.com/reglet-dev/enigma/internal/application/dto"
	"github.com/reglet-dev/enigma/internal/domain/entities"
)

// MachineSource builds machines from a loaded description.
// Implementations must be safe for concurrent use; every call returns a
// machine with rotors of its own.
type MachineSource interface {
	// IsSetting reports whether an input line is a setup directive.
	IsSetting(line string) bool

	// Configure builds a new machine set up as the directive says.
	Configure(directive string) (*entities.Machine, error)
}

// MachineLoader loads machine descriptions from storage.
type MachineLoader interface {
	Load(path string) (MachineSource, error)
}

// TranscriptWriter receives conversion results as they are produced.
type TranscriptWriter interface {
	// WriteEntry handles one input line.
	WriteEntry(entry dto.TranscriptEntry) error

	// Finish is called once after the last entry.
	Finish(resp *dto.ConvertResponse) error
}

// TranscriptWriterFactory creates transcript writers by format name.
type TranscriptWriterFactory interface {
	NewTranscriptWriter(w io.Writer, format string) (TranscriptWriter, error)
}
