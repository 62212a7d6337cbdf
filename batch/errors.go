// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates a CSV stream without a header or without data rows.
	ErrEmptyInput = errors.New("batch: empty input")

	// ErrMissingColumn indicates that a required column is absent from the header.
	ErrMissingColumn = errors.New("batch: missing column")

	// ErrBadRecord indicates a data row that cannot be parsed.
	ErrBadRecord = errors.New("batch: bad record")
)

// RowError reports one rejected data row (1-based, header excluded).
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string { return fmt.Sprintf("row %d: %v", e.Row, e.Err) }

func (e *RowError) Unwrap() error { return e.Err }

// RowErrors extracts the *RowError values from an error returned by
// ReadParameters, in row order. It returns nil for other errors.
func RowErrors(err error) []*RowError {
	if err == nil {
		return nil
	}
	var out []*RowError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			var re *RowError
			if errors.As(e, &re) {
				out = append(out, re)
			}
		}
		return out
	}
	var re *RowError
	if errors.As(err, &re) {
		out = append(out, re)
	}

	return out
}
