// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for the normalization kernels.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Expose the named strategy registry used by front-ends ("vector", "sum").
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"fmt"
	"strings"
)

// Strategy names accepted by LookupMatrixNorm / LookupVectorNorm.
const (
	StrategyVector = "vector"
	StrategySum    = "sum"
)

// ---------- Normalization (public surface → internal implementations) ----------

// VectorNorm returns a copy of X where every line along axis is divided by its
// Euclidean norm. With AxisColumns this is the MOORA ratio system
// x̄_ij = x_ij / sqrt(Σ_i x_ij²).
// An all-zero line yields ErrDegenerateColumn.
// Time: O(r*c). Space: O(r*c).
func VectorNorm(X Matrix, axis Axis) (Matrix, error) { return vectorNorm(X, axis) }

// SumNormMatrix returns a copy of X where every line along axis is divided by
// its sum. A zero-sum line yields ErrDegenerateColumn.
// Time: O(r*c). Space: O(r*c).
func SumNormMatrix(X Matrix, axis Axis) (Matrix, error) { return sumNormMatrix(X, axis) }

// SumNorm returns v divided by its sum, so the result sums to 1.
// This is the default weight normalization.
func SumNorm(v []float64) ([]float64, error) { return sumNorm(v) }

// VectorNormVec returns v divided by its Euclidean norm.
func VectorNormVec(v []float64) ([]float64, error) { return vectorNormVec(v) }

// PushNegatives returns a copy of X where every line whose minimum is
// negative is shifted up by |min|. Non-negative lines are unchanged, so the
// transform is idempotent.
func PushNegatives(X Matrix, axis Axis) (Matrix, error) { return pushNegatives(X, axis) }

// AddOneToZero returns a copy of X where 1 is added to every entry of a line
// whose minimum is exactly 0.
func AddOneToZero(X Matrix, axis Axis) (Matrix, error) { return addOneToZero(X, axis) }

// Log returns the element-wise natural logarithm of X. Any non-positive entry
// yields ErrDegenerateColumn naming its column.
func Log(X Matrix) (Matrix, error) { return logMatrix(X) }

// ---------- Strategy registry ----------

// LookupMatrixNorm resolves a matrix normalization strategy by name
// ("vector" or "sum", case-insensitive).
func LookupMatrixNorm(name string) (MatrixNormFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyVector:
		return VectorNorm, nil
	case StrategySum:
		return SumNormMatrix, nil
	default:
		return nil, fmt.Errorf("LookupMatrixNorm(%q): %w", name, ErrUnknownStrategy)
	}
}

// LookupVectorNorm resolves a weight normalization strategy by name
// ("sum" or "vector", case-insensitive).
func LookupVectorNorm(name string) (VectorNormFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategySum:
		return SumNorm, nil
	case StrategyVector:
		return VectorNormVec, nil
	default:
		return nil, fmt.Errorf("LookupVectorNorm(%q): %w", name, ErrUnknownStrategy)
	}
}
