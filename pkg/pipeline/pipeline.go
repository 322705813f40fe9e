// Package pipeline orchestrates one processing run: input resolution,
// per-line processing, and output dispatch.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/treasurytools/treasuryman/pkg/input"
	"github.com/treasurytools/treasuryman/pkg/output"
	"github.com/treasurytools/treasuryman/pkg/processor"
)

// Options configures a single run.
type Options struct {
	// Verbose enables debug logging and is passed into the Processor.
	Verbose bool

	// InputPath is the source file. Empty means empty input (zero lines).
	InputPath string

	// OutputPath is the destination file. Empty means no output is written.
	OutputPath string

	// Encoding is the input text encoding. Zero value means UTF-8.
	Encoding input.Encoding
}

// Summary describes a completed run.
type Summary struct {
	// RunID uniquely identifies this run in the logs.
	RunID string

	// Stats is the Processor's final state.
	Stats processor.Stats

	// OutputWritten reports whether an output file was produced.
	OutputWritten bool

	// Duration is how long the run took.
	Duration time.Duration
}

// Run executes one full pipeline pass: read input, process every line in
// order, and dispatch the collected results to the output sink.
//
// Input read failures abort the run before any processing. A failure from
// any Process call aborts the whole batch; no partial output is written.
// Serialization and write failures are returned as errors, not fatal
// terminations.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (*Summary, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	start := time.Now()
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	logger.Info("starting treasury processing")

	proc := processor.New(opts.Verbose, logger)

	text, err := resolveInput(opts, logger)
	if err != nil {
		return nil, err
	}

	results, err := processLines(proc, input.SplitLines(text))
	if err != nil {
		return nil, err
	}

	if err := dispatch(ctx, opts.OutputPath, results, logger); err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:         runID,
		Stats:         proc.Stats(),
		OutputWritten: opts.OutputPath != "",
		Duration:      time.Since(start),
	}

	logger.Info("processing complete",
		"processed_count", summary.Stats.ProcessedCount,
		"duration", summary.Duration)

	return summary, nil
}

// resolveInput returns the full input text for the run. With no input path
// the run processes zero lines.
func resolveInput(opts Options, logger *slog.Logger) (string, error) {
	if opts.InputPath == "" {
		logger.Info("no input file specified")
		return "", nil
	}

	logger.Info("reading input from file", "path", opts.InputPath)
	return input.ReadFile(opts.InputPath, opts.Encoding)
}

// processLines runs every line through the processor in input order. The
// first failure aborts the whole batch.
func processLines(proc *processor.Processor, lines []string) ([]processor.Result, error) {
	results := make([]processor.Result, 0, len(lines))

	for i, line := range lines {
		result, err := proc.Process(line)
		if err != nil {
			return nil, fmt.Errorf("processing line %d: %w", i+1, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// dispatch sends the collected results to the output sink.
func dispatch(ctx context.Context, path string, results []processor.Result, logger *slog.Logger) error {
	if path == "" {
		logger.Info("no output file specified")
		return nil
	}

	logger.Info("writing results to file", "path", path, "count", len(results))
	return output.WriteFile(ctx, path, output.NewJSONFormatter(), results)
}
