// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the kernels.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional array of float64 values.
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Axis selects the direction along which a kernel reduces or broadcasts.
//
//   - AxisColumns — one value per column (reduce over rows). This is the axis
//     every MOORA method normalizes along.
//   - AxisRows    — one value per row (reduce over columns).
type Axis int

const (
	// AxisColumns operates per column.
	AxisColumns Axis = iota

	// AxisRows operates per row.
	AxisRows
)

// String returns the human-readable line name used in error messages.
func (a Axis) String() string {
	switch a {
	case AxisColumns:
		return "column"
	case AxisRows:
		return "row"
	default:
		return "axis(?)"
	}
}

// MatrixNormFunc normalizes a matrix along an axis and returns a new matrix.
// VectorNorm and SumNormMatrix satisfy it.
type MatrixNormFunc func(m Matrix, axis Axis) (Matrix, error)

// VectorNormFunc normalizes a weight vector and returns a new slice.
// SumNorm and VectorNormVec satisfy it.
type VectorNormFunc func(v []float64) ([]float64, error)
