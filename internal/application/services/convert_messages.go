// Package services contains application use cases.
package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/reglet-dev/enigma/internal/application/dto"
	apperrors "github.com/reglet-dev/enigma/internal/application/errors"
	"github.com/reglet-dev/enigma/internal/application/ports"
	"github.com/reglet-dev/enigma/internal/domain/entities"
	"github.com/reglet-dev/enigma/internal/domain/values"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// ConvertMessagesUseCase converts an input of setting lines and messages.
type ConvertMessagesUseCase struct {
	loader ports.MachineLoader
	logger *slog.Logger
}

// NewConvertMessagesUseCase creates a new convert messages use case.
func NewConvertMessagesUseCase(loader ports.MachineLoader, logger *slog.Logger) *ConvertMessagesUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &ConvertMessagesUseCase{
		loader: loader,
		logger: logger,
	}
}

// Execute loads the machine description and converts req.Input into w.
func (uc *ConvertMessagesUseCase) Execute(
	ctx context.Context,
	req dto.ConvertRequest,
	w ports.TranscriptWriter,
) (*dto.ConvertResponse, error) {
	uc.logger.Debug("loading machine description", "path", req.ConfigPath)

	source, err := uc.loader.Load(req.ConfigPath)
	if err != nil {
		return nil, apperrors.NewConfigurationError("machine", "failed to load machine description", err)
	}

	return uc.Convert(ctx, values.NewRunID(), source, req.Input, req.InputName, w)
}

// Convert streams input line by line. Each setting line replaces the
// current machine with a new one, blank lines are echoed, and every other
// line is converted with the current machine. Entries reach w as soon as
// they are produced.
func (uc *ConvertMessagesUseCase) Convert(
	ctx context.Context,
	runID values.RunID,
	source ports.MachineSource,
	input io.Reader,
	inputName string,
	w ports.TranscriptWriter,
) (*dto.ConvertResponse, error) {
	start := time.Now()
	logger := uc.logger.With("run_id", runID.String())
	if inputName != "" {
		logger = logger.With("input", inputName)
	}

	resp := &dto.ConvertResponse{RunID: runID, Source: inputName}

	var machine *entities.Machine
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.NewExecutionError(inputName, resp.Lines+1, "conversion cancelled", err)
		}

		resp.Lines++
		line := scanner.Text()
		entry := dto.TranscriptEntry{Line: resp.Lines, Input: line}

		switch {
		case strings.TrimSpace(line) == "":
			entry.Kind = dto.EntryBlank

		case source.IsSetting(line):
			m, err := source.Configure(line)
			if err != nil {
				return nil, apperrors.NewExecutionError(inputName, resp.Lines, "invalid setting", err)
			}
			machine = m
			entry.Kind = dto.EntrySetting
			entry.Positions = machine.Positions()
			logger.Debug("machine configured", "line", resp.Lines, "positions", entry.Positions)

		default:
			if machine == nil {
				return nil, apperrors.NewExecutionError(inputName, resp.Lines, "cannot convert",
					apperrors.NewConfigurationError("input", "message with no configuration", nil))
			}
			entry.Kind = dto.EntryMessage
			entry.Output = machine.ConvertMessage(line)
			entry.Positions = machine.Positions()
			resp.Messages++
		}

		if err := w.WriteEntry(entry); err != nil {
			return nil, fmt.Errorf("failed to write line %d: %w", resp.Lines, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewExecutionError(inputName, resp.Lines+1, "failed to read input", err)
	}

	resp.Duration = time.Since(start)
	if err := w.Finish(resp); err != nil {
		return nil, fmt.Errorf("failed to finish transcript: %w", err)
	}

	logger.Info("conversion complete", "lines", resp.Lines, "messages", resp.Messages, "duration", resp.Duration)
	return resp, nil
}
