// SPDX-License-Identifier: MIT

package projection

import "github.com/cockroachdb/errors"

// ErrInvalidRadius is returned when τ is negative, NaN or infinite.
var ErrInvalidRadius = errors.New("projection: radius must be finite and non-negative")

const opL1Ball = "L1Ball"
