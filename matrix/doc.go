// Package matrix offers exact dense integer matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of bigint.Int entries with bounds-checked
//     accessors and read-only row views for hot loops.
//   - MulVec for verifying linear systems such as matching equations.
//   - SmithNormalForm and Rank over the integers, used for first homology.
//   - Float, an export to gonum's *mat.Dense for numeric inspection.
//
// Determinism:
//
//	All loops run in fixed row-then-column order; pivot choice in
//	SmithNormalForm breaks ties by the smallest row, then column, index.
//
// Complexity:
//
//   - NewDense/Clone: O(r*c); At/Set: O(1); MulVec: O(r*c).
//   - SmithNormalForm: O(min(r,c) * r * c) entry operations in practice.
package matrix
