// SPDX-License-Identifier: MIT

// Package projection maps coefficient vectors onto the L1 ball
// {c : Σ|cᵢ| ≤ τ}, the feasible set of the atomic-norm constrained
// refinement in package atoms.
//
// The projection sorts |c| in descending order, finds the pivot ρ as the
// largest index with sorted[ρ] − (cum[ρ] − τ)/(ρ+1) > 0, soft-thresholds
// every |cᵢ| by θ and restores the signs.
//
// Two threshold rules are offered:
//
//	ModeSource (default) θ = (cum[ρ] − τ) / ρ
//	ModeExact            θ = (cum[ρ] − τ) / (ρ + 1)
//
// ModeExact is the textbook Euclidean projection and lands exactly on the
// sphere Σ|cᵢ| = τ. ModeSource uses the 0-indexed pivot as the divisor; it
// over-shrinks (Σ|cᵢ| < τ) and collapses the vector to zero when ρ = 0.
// Both rules return feasible points, so both are idempotent.
//
// Complexity: O(k log k) time, O(k) extra space.
package projection
