// Package output provides formatting and file output for collected results.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DataDog/zstd"

	"github.com/treasurytools/treasuryman/pkg/processor"
)

// WriteError indicates that the output file could not be written. Nothing is
// recoverable at this point; the run must surface the failure and exit
// non-zero.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing output file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteFile serializes the results with the given formatter and writes them
// to path, fully replacing any existing content. Paths ending in .zst are
// compressed with zstd.
func WriteFile(ctx context.Context, path string, f Formatter, results []processor.Result) error {
	file, err := os.Create(path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	var w io.Writer = file
	var compressor io.WriteCloser
	if strings.HasSuffix(path, ".zst") {
		compressor = zstd.NewWriter(file)
		w = compressor
	}

	if err := f.Format(ctx, results, w); err != nil {
		if compressor != nil {
			compressor.Close()
		}
		file.Close()
		return &WriteError{Path: path, Err: fmt.Errorf("serializing results: %w", err)}
	}

	if compressor != nil {
		if err := compressor.Close(); err != nil {
			file.Close()
			return &WriteError{Path: path, Err: err}
		}
	}

	if err := file.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}
