// SPDX-License-Identifier: MIT

package atoms

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsity/logging"
)

// New returns an empty AtomSet.
func New(opts ...Option) *AtomSet {
	o := gatherOptions(opts...)

	return &AtomSet{
		opts: o,
		log:  logging.Named(o.logger, "atoms"),
	}
}

// Len returns the number of atoms k.
func (s *AtomSet) Len() int { return len(s.coeffs) }

// Dim returns the atom dimension d, or 0 before the first AddAtom.
// It is remembered after pruning empties the set.
func (s *AtomSet) Dim() int { return s.dim }

// AddAtom prepends atom with coefficient coeff; the new atom gets index 0.
// Duplicates are accepted and left for PruneSupport to remove.
//
// Errors:
//   - ErrEmptyAtom         when len(atom) == 0.
//   - ErrDimensionMismatch when len(atom) differs from Dim().
//   - ErrNaNInf            when atom or coeff is not finite.
func (s *AtomSet) AddAtom(atom []float64, coeff float64) error {
	if len(atom) == 0 {
		return errors.Wrap(ErrEmptyAtom, opAddAtom)
	}
	if s.dim != 0 && len(atom) != s.dim {
		return errors.Wrapf(ErrDimensionMismatch, "%s: atom has %d entries, set has dimension %d",
			opAddAtom, len(atom), s.dim)
	}
	if !finite(atom) || !finite([]float64{coeff}) {
		return errors.Wrap(ErrNaNInf, opAddAtom)
	}

	if s.atoms == nil {
		s.dim = len(atom)
		s.atoms = mat.NewDense(s.dim, 1, append([]float64(nil), atom...))
		s.coeffs = []float64{coeff}

		return nil
	}
	s.atoms = prependColumn(s.atoms, atom)
	s.coeffs = append([]float64{coeff}, s.coeffs...)

	return nil
}

// RecoverVector returns x = atoms · coefficients, or an empty vector when the
// set has no atoms.
func (s *AtomSet) RecoverVector() []float64 {
	if s.atoms == nil {
		return []float64{}
	}

	return mulVec(s.atoms, s.coeffs)
}

// Atoms returns a copy of the d×k atom matrix, or nil when empty.
func (s *AtomSet) Atoms() *mat.Dense {
	if s.atoms == nil {
		return nil
	}

	return mat.DenseCopyOf(s.atoms)
}

// Atom returns a copy of atom i (0 is the newest).
func (s *AtomSet) Atom(i int) ([]float64, error) {
	if i < 0 || i >= s.Len() {
		return nil, errors.Wrapf(ErrOutOfRange, "%s: index %d, len %d", opAtom, i, s.Len())
	}

	return mat.Col(nil, i, s.atoms), nil
}

// Coefficients returns a copy of the coefficient vector.
func (s *AtomSet) Coefficients() []float64 {
	return append([]float64(nil), s.coeffs...)
}

// SetCoefficients replaces every coefficient at once.
//
// Errors:
//   - ErrDimensionMismatch when len(c) != Len().
//   - ErrNaNInf            when c has a non-finite entry.
func (s *AtomSet) SetCoefficients(c []float64) error {
	if len(c) != s.Len() {
		return errors.Wrapf(ErrDimensionMismatch, "%s: got %d coefficients for %d atoms",
			opSetCoefficients, len(c), s.Len())
	}
	if !finite(c) {
		return errors.Wrap(ErrNaNInf, opSetCoefficients)
	}
	s.coeffs = append(s.coeffs[:0], c...)

	return nil
}

func finite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
