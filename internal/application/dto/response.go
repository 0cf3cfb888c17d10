package dto

import (
	"time"

	"github.com/reglet-dev/enigma/internal/domain/values"
)

// EntryKind classifies an input line.
type EntryKind string

const (
	// EntryBlank is an empty line, echoed as is.
	EntryBlank EntryKind = "blank"
	// EntrySetting is a setup directive.
	EntrySetting EntryKind = "setting"
	// EntryMessage is a converted message line.
	EntryMessage EntryKind = "message"
)

// TranscriptEntry records what happened to one input line.
type TranscriptEntry struct {
	Kind      EntryKind `json:"kind" yaml:"kind"`
	Input     string    `json:"input" yaml:"input"`
	Output    string    `json:"output,omitempty" yaml:"output,omitempty"`
	Positions string    `json:"positions,omitempty" yaml:"positions,omitempty"`
	Line      int       `json:"line" yaml:"line"`
}

// ConvertResponse summarizes a conversion run.
type ConvertResponse struct {
	RunID    values.RunID  `json:"run_id" yaml:"run_id"`
	Source   string        `json:"source,omitempty" yaml:"source,omitempty"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Lines    int           `json:"lines" yaml:"lines"`
	Messages int           `json:"messages" yaml:"messages"`
}

// BatchResult is the outcome for one input of a batch.
type BatchResult struct {
	Input    string
	Output   string
	Response *ConvertResponse
}

// BatchConvertResponse summarizes a batch run.
type BatchConvertResponse struct {
	RunID    values.RunID
	Results  []BatchResult
	Duration time.Duration
}
