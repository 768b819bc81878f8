// Package sparsity keeps sparse atomic decompositions of least-squares
// solutions small and accurate.
//
// 🚀 What is sparsity?
//
//	A solver grows a list of atoms (candidate basis vectors) and keeps
//	x = Σ cᵢ·aᵢ. This module supplies the machinery around that list:
//		• atoms/      — the active set, greedy support pruning with a
//		                least-squares refit per trial, and projected
//		                gradient refinement of the coefficients
//		• projection/ — projection onto the L1 ball {c : Σ|cᵢ| ≤ τ}
//		• objective/  — the Function contracts and ½‖Ax − b‖²
//		• logging/    — zap loggers and field names for solver traces
//
// ✨ Why?
//
//   - Forward–backward greedy methods for atomic-norm problems need a
//     backward step that is cheap to score and safe to undo.
//   - Dense linear algebra comes from gonum; this module only holds the
//     algorithms built on top of it.
//
// The atom-selection strategy that drives AddAtom lives with the caller;
// examples/sparse_recovery.go shows a coordinate-wise one.
//
//	go get github.com/katalvlaran/sparsity
package sparsity
