// SPDX-License-Identifier: MIT

package atoms

import "github.com/cockroachdb/errors"

// Sentinel errors. Facades wrap them with an operation tag; match them with
// errors.Is.
var (
	// ErrEmptyAtom is returned when AddAtom receives a zero-length vector.
	ErrEmptyAtom = errors.New("atoms: empty atom")

	// ErrDimensionMismatch is returned when an atom, a coefficient vector, a
	// gradient or a design matrix disagrees with the dimensions of the set.
	ErrDimensionMismatch = errors.New("atoms: dimension mismatch")

	// ErrEmptySupport is returned when pruning or refinement is requested on
	// a set without atoms.
	ErrEmptySupport = errors.New("atoms: empty support")

	// ErrNilObjective is returned when a nil objective is passed in.
	ErrNilObjective = errors.New("atoms: nil objective")

	// ErrInvalidParameter is returned for NaN/Inf thresholds, negative radii
	// and non-positive step sizes.
	ErrInvalidParameter = errors.New("atoms: invalid parameter")

	// ErrNaNInf is returned when an atom or coefficient is not finite.
	ErrNaNInf = errors.New("atoms: NaN or Inf encountered")

	// ErrOutOfRange is returned by Atom for an index outside [0, Len()).
	ErrOutOfRange = errors.New("atoms: index out of range")

	// ErrSingularRefit tags a trial deletion whose least-squares refit was
	// singular or ill-conditioned. It is logged, never returned: the trial
	// is rejected and pruning stops.
	ErrSingularRefit = errors.New("atoms: singular refit")
)

// Operation tags for wrapping.
const (
	opAddAtom         = "AddAtom"
	opAtom            = "Atom"
	opSetCoefficients = "SetCoefficients"
	opPrune           = "PruneSupport"
	opRefine          = "ProjectedGradientEnhancement"
)
