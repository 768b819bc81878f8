// SPDX-License-Identifier: MIT

// Package objective defines the smooth functions the sparsity solvers
// minimize, and ships the least-squares function used by support pruning.
//
// What lives here?
//
//	Function             — Evaluate(x) and Gradient(x) over the solution space
//	LeastSquaresFunction — Function plus read access to its A and b
//	LeastSquares         — f(x) = ½‖Ax − b‖², the canonical implementation
//
// Capabilities are split so a caller can hand any differentiable Function
// to the projected-gradient refiner, while support pruning, which needs a
// closed-form refit, asks for the richer LeastSquaresFunction.
//
// Functions are read-only from the solvers' point of view and are safe to
// share between goroutines as long as nobody mutates their matrices.
//
//	A := mat.NewDense(3, 2, []float64{1, 0, 0, 1, 1, 1})
//	f, err := objective.NewLeastSquares(A, []float64{1, 2, 3})
//	v := f.Evaluate([]float64{1, 2}) // 0
package objective
