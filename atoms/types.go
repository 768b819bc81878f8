// SPDX-License-Identifier: MIT

package atoms

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// AtomSet is the active set of a sparse atomic decomposition.
//
// Invariants:
//   - len(coeffs) == number of columns of atoms, after every call.
//   - atoms == nil exactly when the set is empty.
//   - atoms are never mutated in place; insertions and deletions replace the
//     whole matrix, coefficients are overwritten by refits and refinement.
//
// The zero value is not usable; construct with New.
type AtomSet struct {
	atoms  *mat.Dense // d×k, column 0 is the newest atom
	coeffs []float64  // k
	dim    int        // d of the first atom; kept after the set empties

	opts Options
	log  *zap.Logger
}

// StopReason explains why PruneSupport returned.
type StopReason int

const (
	// StopRejected: the cheapest deletion would push the objective above F.
	StopRejected StopReason = iota

	// StopSingular: the least-squares refit of the cheapest deletion was
	// singular or ill-conditioned, so the deletion was rejected.
	StopSingular

	// StopExhausted: the deletion cap was reached.
	StopExhausted

	// StopEmptied: every atom was removed.
	StopEmptied
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopRejected:
		return "rejected"
	case StopSingular:
		return "singular"
	case StopExhausted:
		return "exhausted"
	case StopEmptied:
		return "emptied"
	default:
		return "unknown"
	}
}

// PruneResult summarizes a PruneSupport call.
type PruneResult struct {
	Removed int        // atoms deleted
	Value   float64    // objective at the final recovered vector
	Reason  StopReason // why the loop ended
}

// RefineResult summarizes a ProjectedGradientEnhancement call.
//
// Converged is true when the decrease test fired, which includes a step
// that increased the objective. When false the iteration cap was hit.
type RefineResult struct {
	Steps     int     // gradient/projection steps applied
	Value     float64 // objective at the final coefficients
	Converged bool
}
