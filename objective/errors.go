// SPDX-License-Identifier: MIT

package objective

import "github.com/cockroachdb/errors"

// Sentinel errors. Match with errors.Is; facades may wrap them with an
// operation tag.
var (
	// ErrEmptyInput is returned when A or b has no entries.
	ErrEmptyInput = errors.New("objective: empty input")

	// ErrDimensionMismatch is returned when len(b) differs from the row
	// count of A.
	ErrDimensionMismatch = errors.New("objective: dimension mismatch")

	// ErrNaNInf is returned when A or b carries a NaN or ±Inf entry.
	ErrNaNInf = errors.New("objective: NaN or Inf encountered")
)

const opNewLeastSquares = "NewLeastSquares"
