// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the normalization strategies and corrective transforms used by
//     the MOORA methods as deterministic compositions over the ew* kernels.
//
// Exposed API:
//   - VectorNorm(X, axis)    -> Y   // divide each line by its Euclidean norm
//   - SumNormMatrix(X, axis) -> Y   // divide each line by its sum
//   - SumNorm(v)             -> w   // divide a vector by its sum (weights)
//   - VectorNormVec(v)       -> w   // divide a vector by its Euclidean norm
//   - PushNegatives(X, axis) -> Y   // shift lines with a negative minimum to >= 0
//   - AddOneToZero(X, axis)  -> Y   // add 1 to lines whose minimum is exactly 0
//   - Log(X)                 -> Y   // natural logarithm of every entry (> 0 required)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops; inputs are never mutated.
//   - Degenerate lines are reported with their index (ErrDegenerateColumn).

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opVectorNorm    = "VectorNorm"
	opSumNormMatrix = "SumNormMatrix"
	opSumNorm       = "SumNorm"
	opVectorNormVec = "VectorNormVec"
	opPushNegatives = "PushNegatives"
	opAddOneToZero  = "AddOneToZero"
	opLog           = "Log"
)

// Compile-time assertions: the built-in strategies fit the strategy types.
var (
	_ MatrixNormFunc = VectorNorm
	_ MatrixNormFunc = SumNormMatrix
	_ VectorNormFunc = SumNorm
	_ VectorNormFunc = VectorNormVec
)

// lineErrorf wraps err with the operation tag and the offending line index.
func lineErrorf(op string, axis Axis, k int, err error) error {
	return fmt.Errorf("%s: %s %d: %w", op, axis, k, err)
}

// vectorNorm divides every line of X by its Euclidean norm sqrt(Σ x²).
// Implementation:
//   - Stage 1: Validate X (non-nil) and axis.
//   - Stage 2: Scale each line by its max |x| (all-zero line is rejected).
//   - Stage 3: Reduce squared sums per line, take square roots.
//   - Stage 4: Broadcast-divide into a new matrix.
//
// Behavior highlights:
//   - An all-zero line has norm 0 and would divide to NaN; it is reported as
//     ErrDegenerateColumn with the line index instead.
//
// Inputs:
//   - X: input matrix (r×c); axis: AxisColumns (MOORA default) or AxisRows.
//
// Returns:
//   - Matrix: normalized copy (r×c); every non-degenerate line has unit L2 norm.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidAxis, ErrDegenerateColumn (wrapped with op tag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func vectorNorm(X Matrix, axis Axis) (Matrix, error) {
	// Stage 1 (Validate).
	d, err := validateOperand(opVectorNorm, X, axis)
	if err != nil {
		return nil, err
	}

	// Stage 2 (Scale): divide by max |x| so Σ x² cannot overflow.
	scaled, err := scaleLines(opVectorNorm, d, axis)
	if err != nil {
		return nil, err
	}

	// Stage 3 (Reduce): Σ y² per line, then sqrt.
	norms := ewReduceAxis(scaled, axis, 0, func(acc, v float64) float64 { return acc + v*v })
	for k := range norms {
		norms[k] = math.Sqrt(norms[k])
	}

	// Stage 4 (Apply).
	return ewBroadcastAxis(scaled, axis, norms, func(v, s float64) float64 { return v / s }), nil
}

// scaleLines divides every line of d by its largest absolute value. An
// all-zero line is reported as ErrDegenerateColumn. The result has entries
// in [-1, 1], so the squared or plain sums taken afterwards stay finite for
// any finite input.
func scaleLines(op string, d *Dense, axis Axis) (*Dense, error) {
	scales := ewReduceAxis(d, axis, 0, func(acc, v float64) float64 { return math.Max(acc, math.Abs(v)) })
	for k, s := range scales {
		if s == 0 {
			return nil, lineErrorf(op, axis, k, ErrDegenerateColumn)
		}
	}

	return ewBroadcastAxis(d, axis, scales, func(v, s float64) float64 { return v / s }), nil
}

// scaleVec is scaleLines for a single vector; it returns nil for an
// all-zero vector.
func scaleVec(v []float64) []float64 {
	var scale float64
	for _, x := range v {
		scale = math.Max(scale, math.Abs(x))
	}
	if scale == 0 {
		return nil
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / scale
	}

	return out
}

// sumNormMatrix divides every line of X by its sum. A zero-sum line is
// reported as ErrDegenerateColumn. Time O(r*c), Space O(r*c).
func sumNormMatrix(X Matrix, axis Axis) (Matrix, error) {
	d, err := validateOperand(opSumNormMatrix, X, axis)
	if err != nil {
		return nil, err
	}

	scaled, err := scaleLines(opSumNormMatrix, d, axis)
	if err != nil {
		return nil, err
	}
	sums := ewReduceAxis(scaled, axis, 0, func(acc, v float64) float64 { return acc + v })
	for k, s := range sums {
		if s == 0 {
			return nil, lineErrorf(opSumNormMatrix, axis, k, ErrDegenerateColumn)
		}
	}

	return ewBroadcastAxis(scaled, axis, sums, func(v, s float64) float64 { return v / s }), nil
}

// sumNorm returns v / Σv. The result sums to 1 for any vector with a
// non-zero sum.
//
// Errors:
//   - ErrBadShape for an empty vector; ErrNaNInf for non-finite entries;
//     ErrDegenerateColumn when the sum is 0.
func sumNorm(v []float64) ([]float64, error) {
	if len(v) == 0 {
		return nil, matrixErrorf(opSumNorm, ErrBadShape)
	}
	if err := ValidateFiniteVec(v); err != nil {
		return nil, matrixErrorf(opSumNorm, err)
	}

	out := scaleVec(v)
	if out == nil {
		return nil, matrixErrorf(opSumNorm, ErrDegenerateColumn)
	}
	var sum float64
	for _, x := range out {
		sum += x
	}
	if sum == 0 {
		return nil, matrixErrorf(opSumNorm, ErrDegenerateColumn)
	}
	for i := range out {
		out[i] /= sum
	}

	return out, nil
}

// vectorNormVec returns v / ||v||₂.
func vectorNormVec(v []float64) ([]float64, error) {
	if len(v) == 0 {
		return nil, matrixErrorf(opVectorNormVec, ErrBadShape)
	}
	if err := ValidateFiniteVec(v); err != nil {
		return nil, matrixErrorf(opVectorNormVec, err)
	}

	out := scaleVec(v)
	if out == nil {
		return nil, matrixErrorf(opVectorNormVec, ErrDegenerateColumn)
	}
	var sq float64
	for _, x := range out {
		sq += x * x
	}
	norm := math.Sqrt(sq)
	for i := range out {
		out[i] /= norm
	}

	return out, nil
}

// pushNegatives shifts every line whose minimum is negative by |min|, so the
// line's minimum becomes exactly 0. Lines with min >= 0 are copied unchanged,
// which makes the transform idempotent.
// Complexity: O(r*c).
func pushNegatives(X Matrix, axis Axis) (Matrix, error) {
	d, err := validateOperand(opPushNegatives, X, axis)
	if err != nil {
		return nil, err
	}

	offsets := ewReduceAxis(d, axis, math.Inf(1), math.Min)
	for k, m := range offsets {
		if m < 0 {
			offsets[k] = -m
		} else {
			offsets[k] = 0
		}
	}

	return ewBroadcastAxis(d, axis, offsets, func(v, s float64) float64 { return v + s }), nil
}

// addOneToZero adds 1 to every entry of a line whose minimum is exactly 0.
// Run after pushNegatives, this leaves every entry strictly positive.
// Complexity: O(r*c).
func addOneToZero(X Matrix, axis Axis) (Matrix, error) {
	d, err := validateOperand(opAddOneToZero, X, axis)
	if err != nil {
		return nil, err
	}

	offsets := ewReduceAxis(d, axis, math.Inf(1), math.Min)
	for k, m := range offsets {
		if m == 0 {
			offsets[k] = 1
		} else {
			offsets[k] = 0
		}
	}

	return ewBroadcastAxis(d, axis, offsets, func(v, s float64) float64 { return v + s }), nil
}

// logMatrix takes the natural logarithm of every entry. The first column
// holding a non-positive entry is reported as ErrDegenerateColumn.
func logMatrix(X Matrix) (Matrix, error) {
	d, err := validateOperand(opLog, X, AxisColumns)
	if err != nil {
		return nil, err
	}
	if k := ewFirstAxis(d, AxisColumns, func(v float64) bool { return !(v > 0) }); k >= 0 {
		return nil, lineErrorf(opLog, AxisColumns, k, ErrDegenerateColumn)
	}

	return ewMap(d, math.Log), nil
}
