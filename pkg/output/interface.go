package output

import (
	"context"
	"io"

	"github.com/treasurytools/treasuryman/pkg/processor"
)

// Formatter renders a sequence of results in a specific format.
type Formatter interface {
	// Format renders the results to the given writer, preserving order.
	Format(ctx context.Context, results []processor.Result, w io.Writer) error

	// Name returns the format name (json).
	Name() string
}
