package processor

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Processor transforms input lines into Results and tracks how many lines it
// has processed. One instance is created per run and is not safe for
// concurrent use.
type Processor struct {
	verbose        bool
	processedCount int
	logger         *slog.Logger
}

// New creates a Processor with a zero processed count.
// A nil logger disables diagnostic output.
func New(verbose bool, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Processor{
		verbose: verbose,
		logger:  logger,
	}
}

// Process transforms a single line into a Result.
//
// Every call increments the processed count by exactly one, including calls
// with empty lines. Item numbers are assigned sequentially from 1 in call
// order. The current transformation never returns an error; callers must
// still abort the batch if one is returned.
func (p *Processor) Process(line string) (Result, error) {
	if p.verbose {
		p.logger.Debug("processing line", "length", len(line))
	}

	p.processedCount++

	return Result{
		Success: true,
		Message: fmt.Sprintf("Successfully processed item #%d", p.processedCount),
		Data: &Data{
			Length:      len(line),
			ProcessedAt: time.Now(),
			ItemNumber:  p.processedCount,
		},
	}, nil
}

// Stats returns a snapshot of the current state. It has no side effects and
// may be called any number of times.
func (p *Processor) Stats() Stats {
	return Stats{
		ProcessedCount: p.processedCount,
		Verbose:        p.verbose,
	}
}
