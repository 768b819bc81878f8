// SPDX-License-Identifier: MIT

package projection

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// L1Ball returns the projection of coeffs onto the L1 ball of radius tau.
// coeffs is never modified; the result is always a fresh slice.
//
// Behavior highlights:
//   - Σ|coeffsᵢ| ≤ tau: the input is already feasible and is returned as a copy.
//   - Signs are preserved; components whose magnitude falls below θ become 0.
//   - An empty input yields an empty result.
//
// Errors:
//   - ErrInvalidRadius when tau < 0, NaN or ±Inf.
func L1Ball(coeffs []float64, tau float64, opts ...Option) ([]float64, error) {
	if tau < 0 || math.IsNaN(tau) || math.IsInf(tau, 0) {
		return nil, errors.Wrapf(ErrInvalidRadius, "%s: tau=%v", opL1Ball, tau)
	}
	o := gatherOptions(opts...)

	out := make([]float64, len(coeffs))
	copy(out, coeffs)

	abs := make([]float64, len(coeffs))
	for i, c := range coeffs {
		abs[i] = math.Abs(c)
	}
	if floats.Sum(abs) <= tau {
		return out, nil
	}

	theta := threshold(abs, tau, o.mode)
	for i, c := range out {
		if c >= 0 {
			out[i] = math.Max(c-theta, 0)
		} else {
			out[i] = math.Min(c+theta, 0)
		}
	}

	return out, nil
}

// threshold computes θ for magnitudes abs whose sum exceeds tau.
// abs is sorted in place.
func threshold(abs []float64, tau float64, mode Mode) float64 {
	sort.Sort(sort.Reverse(sort.Float64Slice(abs)))
	cum := floats.CumSum(make([]float64, len(abs)), abs)

	// Largest index passing the test; falls through to 0 when none does
	// (only possible for tau == 0).
	rho := 0
	for j := len(abs) - 1; j >= 0; j-- {
		if abs[j]-(cum[j]-tau)/float64(j+1) > 0 {
			rho = j
			break
		}
	}

	if mode == ModeExact {
		return (cum[rho] - tau) / float64(rho+1)
	}
	if rho == 0 {
		// cum[0] > tau here, so the division by zero diverges to +Inf.
		return math.Inf(1)
	}

	return (cum[rho] - tau) / float64(rho)
}
