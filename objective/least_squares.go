// SPDX-License-Identifier: MIT

package objective

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LeastSquares is f(x) = ½‖Ax − b‖² with gradient Aᵀ(Ax − b).
//
// A and b are copied at construction, so later changes to the caller's
// buffers never leak into the function.
type LeastSquares struct {
	a *mat.Dense
	b *mat.VecDense
}

var _ LeastSquaresFunction = (*LeastSquares)(nil)

// NewLeastSquares validates and copies A (m×d) and b (length m).
//
// Errors:
//   - ErrEmptyInput        when A is nil or b is empty.
//   - ErrDimensionMismatch when len(b) != m.
//   - ErrNaNInf            when any entry of A or b is not finite.
func NewLeastSquares(a mat.Matrix, b []float64) (*LeastSquares, error) {
	if a == nil || len(b) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, opNewLeastSquares)
	}
	m, d := a.Dims()
	if m == 0 || d == 0 {
		return nil, errors.Wrap(ErrEmptyInput, opNewLeastSquares)
	}
	if len(b) != m {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%s: A has %d rows, b has %d entries",
			opNewLeastSquares, m, len(b))
	}

	ac := mat.DenseCopyOf(a)
	if !allFinite(ac.RawMatrix().Data) || !allFinite(b) {
		return nil, errors.Wrap(ErrNaNInf, opNewLeastSquares)
	}
	bc := make([]float64, m)
	copy(bc, b)

	return &LeastSquares{a: ac, b: mat.NewVecDense(m, bc)}, nil
}

// Dims returns (m, d): the number of observations and the solution dimension.
func (f *LeastSquares) Dims() (m, d int) { return f.a.Dims() }

// DesignMatrix returns A.
func (f *LeastSquares) DesignMatrix() mat.Matrix { return f.a }

// Target returns b.
func (f *LeastSquares) Target() mat.Vector { return f.b }

// Evaluate returns ½‖Ax − b‖². x must have length d.
func (f *LeastSquares) Evaluate(x []float64) float64 {
	r := f.residual(x)

	return 0.5 * mat.Dot(r, r)
}

// Gradient returns Aᵀ(Ax − b). x must have length d.
func (f *LeastSquares) Gradient(x []float64) []float64 {
	_, d := f.a.Dims()
	g := mat.NewVecDense(d, nil)
	g.MulVec(f.a.T(), f.residual(x))

	return g.RawVector().Data
}

// residual computes Ax − b into a fresh vector.
func (f *LeastSquares) residual(x []float64) *mat.VecDense {
	m, _ := f.a.Dims()
	r := mat.NewVecDense(m, nil)
	r.MulVec(f.a, mat.NewVecDense(len(x), x))
	r.SubVec(r, f.b)

	return r
}

func allFinite(v []float64) bool {
	if floats.HasNaN(v) {
		return false
	}
	for _, x := range v {
		if math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
