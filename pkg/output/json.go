package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/treasurytools/treasuryman/pkg/processor"
)

// JSONFormatter renders results as a pretty-printed JSON array.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the results as a JSON array of objects in input order.
// A run with zero results produces an empty array, not null.
func (f *JSONFormatter) Format(ctx context.Context, results []processor.Result, w io.Writer) error {
	if results == nil {
		results = []processor.Result{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(results)
}
