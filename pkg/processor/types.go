// Package processor implements the per-line treasury transformation and its
// running statistics.
package processor

import "time"

// Result is the structured outcome of processing one input line.
//
// The JSON shape is part of the output file contract: downstream consumers
// parse these field names as-is.
type Result struct {
	// Success reports whether processing the line succeeded. The current
	// transformation cannot fail; the field exists for future failure
	// modeling.
	Success bool `json:"success"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`

	// Data carries the structured payload for the line, if any.
	Data *Data `json:"data"`
}

// Data is the payload attached to a successful Result.
type Data struct {
	// Length is the byte length of the processed line.
	Length int `json:"length"`

	// ProcessedAt is the wall-clock time the line was processed.
	ProcessedAt time.Time `json:"processed_at"`

	// ItemNumber is the 1-based sequential number assigned to the line.
	ItemNumber int `json:"item_number"`
}

// Stats is a read-only snapshot of a Processor's state.
type Stats struct {
	// ProcessedCount is the number of Process calls made so far.
	ProcessedCount int `json:"processed_count"`

	// Verbose is the verbosity flag the Processor was constructed with.
	Verbose bool `json:"verbose"`
}
