// SPDX-License-Identifier: MIT

package objective

import "gonum.org/v1/gonum/mat"

// Function is a differentiable objective over vectors of a fixed dimension d.
// Implementations must not retain or mutate x.
type Function interface {
	// Evaluate returns f(x).
	Evaluate(x []float64) float64

	// Gradient returns a freshly allocated ∇f(x) of length d.
	Gradient(x []float64) []float64
}

// LeastSquaresFunction is a Function of the form ½‖Ax − b‖² that exposes
// its design matrix A (m×d) and target b (length m).
//
// Returned values are views; callers must treat them as read-only.
type LeastSquaresFunction interface {
	Function

	DesignMatrix() mat.Matrix
	Target() mat.Vector
}
