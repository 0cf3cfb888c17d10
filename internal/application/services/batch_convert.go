package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/reglet-dev/enigma/internal/application/dto"
	apperrors "github.com/reglet-dev/enigma/internal/application/errors"
	"github.com/reglet-dev/enigma/internal/application/ports"
	"github.com/reglet-dev/enigma/internal/domain/values"
	"golang.org/x/sync/errgroup"
)

// DefaultOutputSuffix names batch outputs when no suffix is given.
const DefaultOutputSuffix = ".out"

// BatchConvertUseCase converts several input files concurrently. Every job
// builds its own machines from the shared description.
type BatchConvertUseCase struct {
	loader  ports.MachineLoader
	writers ports.TranscriptWriterFactory
	convert *ConvertMessagesUseCase
	logger  *slog.Logger
}

// NewBatchConvertUseCase creates a new batch convert use case.
func NewBatchConvertUseCase(
	loader ports.MachineLoader,
	writers ports.TranscriptWriterFactory,
	convert *ConvertMessagesUseCase,
	logger *slog.Logger,
) *BatchConvertUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &BatchConvertUseCase{
		loader:  loader,
		writers: writers,
		convert: convert,
		logger:  logger,
	}
}

// Execute converts every input of req. The first failure cancels the
// remaining jobs and is returned.
func (uc *BatchConvertUseCase) Execute(ctx context.Context, req dto.BatchConvertRequest) (*dto.BatchConvertResponse, error) {
	start := time.Now()
	runID := values.NewRunID()

	if len(req.Inputs) == 0 {
		return nil, apperrors.NewValidationError("inputs", "no input files given")
	}

	source, err := uc.loader.Load(req.ConfigPath)
	if err != nil {
		return nil, apperrors.NewConfigurationError("machine", "failed to load machine description", err)
	}

	suffix := req.Suffix
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}
	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	uc.logger.Info("starting batch", "run_id", runID.String(), "inputs", len(req.Inputs), "jobs", jobs)

	results := make([]dto.BatchResult, len(req.Inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, input := range req.Inputs {
		results[i] = dto.BatchResult{Input: input, Output: input + suffix}
		g.Go(func() error {
			resp, err := uc.convertFile(gctx, runID, source, input, results[i].Output, req.Format)
			if err != nil {
				return err
			}
			results[i].Response = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.BatchConvertResponse{
		RunID:    runID,
		Results:  results,
		Duration: time.Since(start),
	}, nil
}

func (uc *BatchConvertUseCase) convertFile(
	ctx context.Context,
	runID values.RunID,
	source ports.MachineSource,
	inputPath, outputPath, format string,
) (resp *dto.ConvertResponse, err error) {
	//nolint:gosec // G304: input paths are given on the command line
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer func() {
		_ = in.Close() // Best-effort cleanup
	}()

	//nolint:gosec // G304: output path derives from a command line input path
	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	tw, err := uc.writers.NewTranscriptWriter(out, format)
	if err != nil {
		return nil, err
	}

	return uc.convert.Convert(ctx, runID, source, in, inputPath, tw)
}
