// SPDX-License-Identifier: MIT

package atoms

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsity/logging"
	"github.com/katalvlaran/sparsity/objective"
)

// PruneSupport greedily deletes atoms while the objective stays at or below
// threshold.
//
// Implementation:
//   - Stage 1: scoreᵢ = ½‖A·aᵢ‖²·cᵢ², computed once per call.
//   - Stage 2: per trial, g = ∇f(x) and gapᵢ = scoreᵢ − cᵢ·(aᵢ·g); the atom
//     with the smallest gap (lowest index on ties) is the candidate.
//   - Stage 3: refit the remaining coefficients by solving
//     (A·atoms')·c ≈ b and evaluate Fnew = f(atoms'·c).
//   - Stage 4: Fnew > threshold rejects the trial and ends the call with the
//     set untouched by that trial; otherwise commit and drop scoreᵢ.
//
// Behavior highlights:
//   - Removing the last atom needs no refit: the candidate solution is the
//     zero vector of dimension d. If accepted the set becomes empty.
//   - A singular or ill-conditioned refit rejects the trial (StopSingular)
//     and is not reported as an error.
//   - At most WithMaxPruneSteps trials run; the default is the atom count.
//
// Errors:
//   - ErrNilObjective, ErrEmptySupport, ErrInvalidParameter (NaN threshold).
//   - ErrDimensionMismatch when A has a column count other than Dim() or b
//     a length other than A's row count.
//
// Complexity:
//   - Each trial costs one gradient plus O(m·d·k + m·k²) for the refit.
func (s *AtomSet) PruneSupport(threshold float64, f objective.LeastSquaresFunction) (PruneResult, error) {
	if f == nil {
		return PruneResult{}, errors.Wrap(ErrNilObjective, opPrune)
	}
	if math.IsNaN(threshold) {
		return PruneResult{}, errors.Wrapf(ErrInvalidParameter, "%s: threshold is NaN", opPrune)
	}
	if s.Len() == 0 {
		return PruneResult{}, errors.Wrap(ErrEmptySupport, opPrune)
	}
	a, b := f.DesignMatrix(), f.Target()
	rows, cols := a.Dims()
	if cols != s.dim || b.Len() != rows {
		return PruneResult{}, errors.Wrapf(ErrDimensionMismatch,
			"%s: A is %dx%d, b has %d entries, atoms have dimension %d",
			opPrune, rows, cols, b.Len(), s.dim)
	}

	log := s.log.With(
		zap.String(logging.FieldOperation, opPrune),
		zap.Float64(logging.FieldThreshold, threshold),
		zap.Int(logging.FieldDim, s.dim))
	maxSteps := s.opts.maxPruneSteps
	if maxSteps == 0 {
		maxSteps = s.Len()
	}

	score := atomScores(a, s.atoms, s.coeffs)
	res := PruneResult{Reason: StopExhausted}
	for step := 0; step < maxSteps; step++ {
		if s.Len() == 0 {
			break
		}
		x := s.RecoverVector()
		g := f.Gradient(x)
		if len(g) != s.dim {
			return res, errors.Wrapf(ErrDimensionMismatch, "%s: gradient has %d entries, want %d",
				opPrune, len(g), s.dim)
		}

		gap := mulTransVec(s.atoms, g)
		for i := range gap {
			gap[i] = score[i] - s.coeffs[i]*gap[i]
		}
		ind := floats.MinIdx(gap)

		newAtoms, newCoeffs, err := refit(a, b, s.atoms, ind)
		if err != nil {
			log.Debug("prune trial rejected",
				zap.Int(logging.FieldIndex, ind),
				zap.Int(logging.FieldAtoms, s.Len()),
				zap.Error(errors.Mark(err, ErrSingularRefit)))
			res.Reason = StopSingular

			break
		}

		var xNew []float64
		if newAtoms == nil {
			xNew = make([]float64, s.dim)
		} else {
			xNew = mulVec(newAtoms, newCoeffs)
		}
		fNew := f.Evaluate(xNew)
		if !(fNew <= threshold) {
			log.Debug("prune trial rejected",
				zap.Int(logging.FieldIndex, ind),
				zap.Float64(logging.FieldGap, gap[ind]),
				zap.Float64(logging.FieldValueNew, fNew),
				zap.Int(logging.FieldAtoms, s.Len()))
			res.Reason = StopRejected

			break
		}

		s.atoms, s.coeffs = newAtoms, newCoeffs
		score = dropIndex(score, ind)
		res.Removed++
		log.Debug("prune trial accepted",
			zap.Int(logging.FieldIndex, ind),
			zap.Float64(logging.FieldGap, gap[ind]),
			zap.Float64(logging.FieldValueNew, fNew),
			zap.Int(logging.FieldAtoms, s.Len()))
	}
	if s.Len() == 0 {
		res.Reason = StopEmptied
		res.Value = f.Evaluate(make([]float64, s.dim))
	} else {
		res.Value = f.Evaluate(s.RecoverVector())
	}

	log.Debug("prune finished",
		zap.Int(logging.FieldRemoved, res.Removed),
		zap.Int(logging.FieldAtoms, s.Len()),
		zap.Float64(logging.FieldValue, res.Value),
		zap.Stringer(logging.FieldReason, res.Reason))

	return res, nil
}

// atomScores returns ½‖A·aᵢ‖²·cᵢ² for every column aᵢ of atoms.
func atomScores(a mat.Matrix, atoms *mat.Dense, coeffs []float64) []float64 {
	rows, _ := a.Dims()
	ax := mat.NewDense(rows, len(coeffs), nil)
	ax.Mul(a, atoms)

	score := make([]float64, len(coeffs))
	for i, c := range coeffs {
		col := ax.ColView(i)
		score[i] = 0.5 * mat.Dot(col, col) * c * c
	}

	return score
}

// rankTolerance is the machine epsilon scale for the numerical rank test.
const rankTolerance = 0x1p-52

// refit drops column ind from atoms and solves (A·atoms')·c ≈ b. The last
// atom yields (nil, nil, nil). A design of numerical rank below its column
// count, a solver failure or a non-finite solution is returned as an error.
// QR solves of tall systems do not flag exact rank deficiency, so the rank
// is checked on the singular values first.
func refit(a mat.Matrix, b mat.Vector, atoms *mat.Dense, ind int) (*mat.Dense, []float64, error) {
	newAtoms := dropColumn(atoms, ind)
	if newAtoms == nil {
		return nil, nil, nil
	}

	rows, _ := a.Dims()
	_, k := newAtoms.Dims()
	design := mat.NewDense(rows, k, nil)
	design.Mul(a, newAtoms)

	var svd mat.SVD
	if !svd.Factorize(design, mat.SVDNone) {
		return nil, nil, errors.Wrap(ErrSingularRefit, "svd did not converge")
	}
	if r := svd.Rank(rankTolerance * float64(max(rows, k))); r < k {
		return nil, nil, errors.Wrapf(ErrSingularRefit, "design rank %d < %d columns", r, k)
	}

	var sol mat.VecDense
	if err := sol.SolveVec(design, b); err != nil {
		return nil, nil, err
	}
	coeffs := make([]float64, k)
	for i := range coeffs {
		coeffs[i] = sol.AtVec(i)
	}
	if !finite(coeffs) {
		return nil, nil, ErrNaNInf
	}

	return newAtoms, coeffs, nil
}
