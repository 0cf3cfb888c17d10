// Package dto contains data transfer objects for application layer use cases.
package dto

import (
	"io"
)

// ConvertRequest encapsulates the inputs of one conversion run.
type ConvertRequest struct {
	// ConfigPath locates the machine description.
	ConfigPath string

	// Input holds setting lines, messages and blank lines.
	Input io.Reader

	// InputName labels the input in errors and transcripts.
	InputName string
}

// BatchConvertRequest converts several input files with one machine
// description.
type BatchConvertRequest struct {
	ConfigPath string
	Inputs     []string

	// Suffix is appended to each input path to name its output file.
	Suffix string

	// Format selects the transcript format: text, json or yaml.
	Format string

	// Jobs limits how many inputs are converted at once (0 = one per CPU).
	Jobs int
}
