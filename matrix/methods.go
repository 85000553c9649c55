// Package matrix provides universal operations on any Matrix implementation:
// matrix-vector product, per-axis extrema and approximate comparison. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec   = "MatVec"
	opAxisMax  = "AxisMax"
	opAxisMin  = "AxisMin"
	opAllClose = "AllClose"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec returns y = m·x where y[i] = Σ_j m[i,j]·x[j].
// Stage 1 (Validate): nil-check and len(x) == Cols.
// Stage 2 (Execute): fixed i→j accumulation over the flat buffer.
// Complexity: O(r·c) time, O(r) memory.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var sum float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		sum = 0
		for j = 0; j < d.c; j++ {
			sum += d.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// AxisMax returns the maximum of every line selected by axis.
// Complexity: O(r·c).
func AxisMax(m Matrix, axis Axis) ([]float64, error) {
	d, err := validateOperand(opAxisMax, m, axis)
	if err != nil {
		return nil, err
	}

	return ewReduceAxis(d, axis, math.Inf(-1), math.Max), nil
}

// AxisMin returns the minimum of every line selected by axis.
// Complexity: O(r·c).
func AxisMin(m Matrix, axis Axis) ([]float64, error) {
	d, err := validateOperand(opAxisMin, m, axis)
	if err != nil {
		return nil, err
	}

	return ewReduceAxis(d, axis, math.Inf(1), math.Min), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything. Deterministic. Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}

	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		// Check |a-b| ≤ atol + rtol*|b|; the negated form also rejects NaN.
		if !(math.Abs(da.data[idx]-db.data[idx]) <= atol+rtol*math.Abs(db.data[idx])) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
