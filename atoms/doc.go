// SPDX-License-Identifier: MIT

// Package atoms maintains a sparse atomic decomposition x = Σ cᵢ·aᵢ of a
// solution vector and the two procedures that keep it sparse and accurate.
//
// 🚀 What is an AtomSet?
//
//	An ordered list of atoms (columns of a d×k matrix, newest first) paired
//	one-to-one with coefficients. The solution x is never stored; it is
//	recovered on demand as atoms · coefficients.
//
// ✨ Operations:
//   - AddAtom: prepend an atom and its coefficient (forward step).
//   - RecoverVector: x = atoms · coefficients.
//   - PruneSupport: greedy backward step. Repeatedly drop the atom with the
//     smallest estimated objective increase, refit the remaining
//     coefficients by least squares, and keep the deletion only while the
//     objective stays at or below a threshold F (Rao, Shah & Wright,
//     "Forward–backward greedy algorithms for atomic norm regularization",
//     2015, Algorithm 2).
//   - ProjectedGradientEnhancement: gradient descent on the coefficients,
//     projecting onto the L1 ball of radius τ after every step.
//
// ⚙️ Usage:
//
//	f, _ := objective.NewLeastSquares(A, b)
//	set := atoms.New(atoms.WithLogger(logger))
//	_ = set.AddAtom(a1, 0)
//	_ = set.AddAtom(a2, 0)
//	res, err := set.ProjectedGradientEnhancement(f, tau, 0.1)
//	pr, err := set.PruneSupport(F, f)
//	x := set.RecoverVector()
//
// Concurrency:
//
//	An AtomSet is not safe for concurrent mutation; callers serialize access.
//	Objectives are only read and may be shared between AtomSets.
package atoms
