// Package output renders conversion transcripts and machine descriptions.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/reglet-dev/enigma/internal/application/dto"
)

// DefaultGroupSize is the number of symbols per group in text output.
const DefaultGroupSize = 5

// TextWriter prints converted messages, one output line per message line.
// Setting lines print nothing and blank lines print an empty line.
type TextWriter struct {
	writer    io.Writer
	groupSize int
}

// NewTextWriter creates a text writer that splits output into groups of
// groupSize symbols. A groupSize of 0 disables grouping.
func NewTextWriter(w io.Writer, groupSize int) *TextWriter {
	if groupSize < 0 {
		groupSize = DefaultGroupSize
	}
	return &TextWriter{writer: w, groupSize: groupSize}
}

// WriteEntry prints one entry.
func (t *TextWriter) WriteEntry(entry dto.TranscriptEntry) error {
	var err error
	switch entry.Kind {
	case dto.EntrySetting:
		return nil
	case dto.EntryBlank:
		_, err = fmt.Fprintln(t.writer)
	default:
		_, err = fmt.Fprintln(t.writer, GroupSymbols(entry.Output, t.groupSize))
	}
	return err
}

// Finish does nothing; text output is written as it arrives.
func (t *TextWriter) Finish(*dto.ConvertResponse) error {
	return nil
}

// GroupSymbols splits s into groups of n symbols separated by single
// spaces. The last group may be shorter. n <= 0 returns s unchanged.
func GroupSymbols(s string, n int) string {
	if n <= 0 {
		return s
	}
	symbols := []rune(s)
	if len(symbols) <= n {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/n)
	for i, r := range symbols {
		if i > 0 && i%n == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
