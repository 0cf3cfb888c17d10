package services

import (
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/reglet-dev/enigma/internal/application/dto"
	"github.com/reglet-dev/enigma/internal/application/ports"
	"github.com/reglet-dev/enigma/internal/domain/entities"
	"github.com/reglet-dev/enigma/internal/domain/values"
)

// fakeSource builds a four slot machine over ABCD from directives of the
// form "* R L M N AAA".
type fakeSource struct {
	mu     sync.Mutex
	builds int
}

func (s *fakeSource) IsSetting(line string) bool {
	return strings.HasPrefix(line, "*")
}

func (s *fakeSource) Configure(directive string) (*entities.Machine, error) {
	s.mu.Lock()
	s.builds++
	s.mu.Unlock()

	alpha := values.MustParseAlphabet("ABCD")
	reflector, err := entities.NewReflector("R", entities.MustNewPermutation("(AC) (BD)", alpha))
	if err != nil {
		return nil, err
	}
	pool := []*entities.Rotor{reflector}
	for _, name := range []string{"L", "M", "N"} {
		r, err := entities.NewMovingRotor(name, entities.MustNewPermutation("(ABCD)", alpha), "C")
		if err != nil {
			return nil, err
		}
		pool = append(pool, r)
	}

	m, err := entities.NewMachine(alpha, 4, 3, pool)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(strings.TrimPrefix(directive, "*"))
	if len(fields) != 5 {
		return nil, values.NewCipherError(values.KindRotorCount, "want 4 rotors and a setting")
	}
	if err := m.InsertRotors(fields[:4]); err != nil {
		return nil, err
	}
	if err := m.SetRotors(fields[4]); err != nil {
		return nil, err
	}
	return m, nil
}

type fakeLoader struct {
	source *fakeSource
	err    error
}

func (l *fakeLoader) Load(string) (ports.MachineSource, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.source, nil
}

// recordingWriter keeps entries in memory.
type recordingWriter struct {
	entries  []dto.TranscriptEntry
	finished *dto.ConvertResponse
	failAt   int
}

func (w *recordingWriter) WriteEntry(entry dto.TranscriptEntry) error {
	if w.failAt > 0 && entry.Line == w.failAt {
		return errors.New("disk full")
	}
	w.entries = append(w.entries, entry)
	return nil
}

func (w *recordingWriter) Finish(resp *dto.ConvertResponse) error {
	w.finished = resp
	return nil
}

// outputWriter writes message output one per line.
type outputWriter struct {
	w io.Writer
}

func (w *outputWriter) WriteEntry(entry dto.TranscriptEntry) error {
	if entry.Kind == dto.EntrySetting {
		return nil
	}
	_, err := io.WriteString(w.w, entry.Output+"\n")
	return err
}

func (w *outputWriter) Finish(*dto.ConvertResponse) error { return nil }

type fakeWriterFactory struct{}

func (fakeWriterFactory) NewTranscriptWriter(w io.Writer, format string) (ports.TranscriptWriter, error) {
	if format != "" && format != "text" {
		return nil, errors.New("unsupported format: " + format)
	}
	return &outputWriter{w: w}, nil
}
