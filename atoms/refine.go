// SPDX-License-Identifier: MIT

package atoms

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sparsity/logging"
	"github.com/katalvlaran/sparsity/objective"
	"github.com/katalvlaran/sparsity/projection"
)

// ProjectedGradientEnhancement refines the coefficients by projected
// gradient descent with the atoms held fixed:
//
//	c ← P_τ(c − stepSize · atomsᵀ∇f(atoms·c))
//
// where P_τ is the L1-ball projection selected by WithProjectionMode.
// The loop stops once a step decreases f by less than the tolerance, or
// after maxIterations-1 steps. Every step is kept, including one that
// increases f.
//
// Errors:
//   - ErrNilObjective, ErrEmptySupport.
//   - ErrInvalidParameter when tau is negative or not finite, or stepSize is
//     not a positive finite number.
//   - ErrDimensionMismatch when ∇f has a length other than Dim().
func (s *AtomSet) ProjectedGradientEnhancement(
	f objective.Function,
	tau, stepSize float64,
	opts ...RefineOption,
) (RefineResult, error) {
	if f == nil {
		return RefineResult{}, errors.Wrap(ErrNilObjective, opRefine)
	}
	if tau < 0 || math.IsNaN(tau) || math.IsInf(tau, 0) {
		return RefineResult{}, errors.Wrapf(ErrInvalidParameter, "%s: tau=%v", opRefine, tau)
	}
	if !(stepSize > 0) || math.IsInf(stepSize, 0) {
		return RefineResult{}, errors.Wrapf(ErrInvalidParameter, "%s: stepSize=%v", opRefine, stepSize)
	}
	if s.Len() == 0 {
		return RefineResult{}, errors.Wrap(ErrEmptySupport, opRefine)
	}
	o := gatherRefineOptions(opts...)
	log := s.log.With(
		zap.String(logging.FieldOperation, opRefine),
		zap.Float64(logging.FieldTau, tau),
		zap.Float64(logging.FieldStepSize, stepSize))

	x := s.RecoverVector()
	res := RefineResult{Value: f.Evaluate(x)}
	for iter := 1; iter < o.maxIterations; iter++ {
		g := f.Gradient(x)
		if len(g) != s.dim {
			return res, errors.Wrapf(ErrDimensionMismatch, "%s: gradient has %d entries, want %d",
				opRefine, len(g), s.dim)
		}
		stepped := floats.AddScaledTo(make([]float64, len(s.coeffs)), s.coeffs, -stepSize, mulTransVec(s.atoms, g))

		projected, err := projection.L1Ball(stepped, tau, projection.WithMode(s.opts.mode))
		if err != nil {
			return res, errors.Wrap(err, opRefine)
		}
		s.coeffs = projected

		x = s.RecoverVector()
		valueNew := f.Evaluate(x)
		res.Steps++
		decrease := res.Value - valueNew
		res.Value = valueNew
		log.Debug("refine step",
			zap.Int(logging.FieldIteration, iter),
			zap.Float64(logging.FieldValue, valueNew))

		if decrease < o.tolerance {
			res.Converged = true

			break
		}
	}

	log.Debug("refine finished",
		zap.Int(logging.FieldIteration, res.Steps),
		zap.Float64(logging.FieldValue, res.Value),
		zap.Bool(logging.FieldConverged, res.Converged))

	return res, nil
}
