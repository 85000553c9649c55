// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moora/matrix"
)

const epsTight = 1e-12

// ------------------------------
// VectorNorm / SumNormMatrix
// ------------------------------

func TestVectorNorm_ColumnsAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{3, 0, 4, 5})

	Yf, err := matrix.VectorNorm(X, matrix.AxisColumns)
	require.NoError(t, err)
	Ys, err := matrix.VectorNorm(hide{X}, matrix.AxisColumns)
	require.NoError(t, err)

	want := NewFilledDense(t, 2, 2, []float64{0.6, 0, 0.8, 1})
	CompareClose(t, Yf, want, 0, epsTight)
	CompareClose(t, Ys, want, 0, epsTight)

	// Input untouched.
	CompareExact(t, [][]float64{{3, 0}, {4, 5}}, X)
}

func TestVectorNorm_Rows(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{3, 0, 4, 5})
	Y, err := matrix.VectorNorm(X, matrix.AxisRows)
	require.NoError(t, err)

	n1 := math.Sqrt(41)
	want := NewFilledDense(t, 2, 2, []float64{1, 0, 4 / n1, 5 / n1})
	CompareClose(t, Y, want, 0, epsTight)
}

func TestVectorNorm_UnitColumns(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 3, []float64{1, 2, 3, 1, 1, 4, 2, 0, 1})
	Y, err := matrix.VectorNorm(X, matrix.AxisColumns)
	require.NoError(t, err)

	var i, j int
	var sq float64
	for j = 0; j < 3; j++ {
		sq = 0
		for i = 0; i < 3; i++ {
			v := MustAt(t, Y, i, j)
			sq += v * v
		}
		require.InDelta(t, 1.0, sq, epsTight, "column %d", j)
	}
}

func TestVectorNorm_DegenerateColumn(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 0, 2, 3, 0, 4})
	_, err := matrix.VectorNorm(X, matrix.AxisColumns)
	require.ErrorIs(t, err, matrix.ErrDegenerateColumn)
	require.Contains(t, err.Error(), "column 1")
}

func TestVectorNorm_InvalidInputs(t *testing.T) {
	t.Parallel()

	_, err := matrix.VectorNorm(nil, matrix.AxisColumns)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.VectorNorm(typedNil, matrix.AxisColumns)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.VectorNorm(MustDense(t, 1, 1), matrix.Axis(7))
	require.ErrorIs(t, err, matrix.ErrInvalidAxis)
}

func TestSumNormMatrix(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{1, 3, 3, 1})
	Y, err := matrix.SumNormMatrix(X, matrix.AxisColumns)
	require.NoError(t, err)
	CompareClose(t, Y, NewFilledDense(t, 2, 2, []float64{0.25, 0.75, 0.75, 0.25}), 0, epsTight)

	_, err = matrix.SumNormMatrix(NewFilledDense(t, 2, 1, []float64{1, -1}), matrix.AxisColumns)
	require.ErrorIs(t, err, matrix.ErrDegenerateColumn)
}

func TestNormalization_HugeValuesStayFinite(t *testing.T) {
	t.Parallel()

	big := math.MaxFloat64
	X := NewFilledDense(t, 2, 2, []float64{1, big, 1, big})

	Y, err := matrix.VectorNorm(X, matrix.AxisColumns)
	require.NoError(t, err)
	CompareClose(t, Y, NewFilledDense(t, 2, 2, []float64{
		1 / math.Sqrt2, 1 / math.Sqrt2,
		1 / math.Sqrt2, 1 / math.Sqrt2,
	}), 0, epsTight)

	Y, err = matrix.SumNormMatrix(X, matrix.AxisColumns)
	require.NoError(t, err)
	CompareClose(t, Y, NewFilledDense(t, 2, 2, []float64{0.5, 0.5, 0.5, 0.5}), 0, epsTight)

	out, err := matrix.VectorNormVec([]float64{big, big})
	require.NoError(t, err)
	sliceClose(t, out, []float64{1 / math.Sqrt2, 1 / math.Sqrt2}, 0, epsTight)

	out, err = matrix.SumNorm([]float64{big, big, big})
	require.NoError(t, err)
	sliceClose(t, out, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, 0, epsTight)
}

// ------------------------------
// SumNorm / VectorNormVec
// ------------------------------

func TestSumNorm_SumsToOne(t *testing.T) {
	t.Parallel()

	for _, w := range [][]float64{
		{1, 2, 3, 4},
		{0.5},
		{7, 7, 7},
		{1e-9, 3e9, 12},
	} {
		out, err := matrix.SumNorm(w)
		require.NoError(t, err)
		var sum float64
		for _, v := range out {
			sum += v
		}
		require.InDelta(t, 1.0, sum, 1e-12, "w=%v", w)
	}

	out, err := matrix.SumNorm([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	sliceClose(t, out, []float64{0.1, 0.2, 0.3, 0.4}, 0, epsTight)
}

func TestSumNorm_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.SumNorm(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.SumNorm([]float64{0, 0})
	require.ErrorIs(t, err, matrix.ErrDegenerateColumn)
	_, err = matrix.SumNorm([]float64{1, math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestVectorNormVec(t *testing.T) {
	t.Parallel()

	out, err := matrix.VectorNormVec([]float64{3, 4})
	require.NoError(t, err)
	sliceClose(t, out, []float64{0.6, 0.8}, 0, epsTight)

	_, err = matrix.VectorNormVec([]float64{0, 0})
	require.ErrorIs(t, err, matrix.ErrDegenerateColumn)
}

// ------------------------------
// PushNegatives / AddOneToZero / Log
// ------------------------------

func TestPushNegatives_ShiftsOnlyNegativeColumns(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{-2, 1, 3, 4})
	Y, err := matrix.PushNegatives(X, matrix.AxisColumns)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 1}, {5, 4}}, Y)
	CompareExact(t, [][]float64{{-2, 1}, {3, 4}}, X)

	rows, err := matrix.PushNegatives(X, matrix.AxisRows)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 3}, {3, 4}}, rows)
}

func TestPushNegatives_Idempotent(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 3, []float64{-1, 2, -7, 0, -3, 4, 5, 6, -0.5})
	once, err := matrix.PushNegatives(X, matrix.AxisColumns)
	require.NoError(t, err)
	twice, err := matrix.PushNegatives(once, matrix.AxisColumns)
	require.NoError(t, err)
	CompareClose(t, once, twice, 0, 0)

	// A non-negative matrix is a fixed point.
	pos := NewFilledDense(t, 2, 2, []float64{0, 1, 2, 3})
	same, err := matrix.PushNegatives(pos, matrix.AxisColumns)
	require.NoError(t, err)
	CompareClose(t, pos, same, 0, 0)
}

func TestAddOneToZero(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{0, 1, 0.5, 5, 4, 0})
	Y, err := matrix.AddOneToZero(X, matrix.AxisColumns)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 1, 1.5}, {6, 4, 1}}, Y)
}

func TestLog(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 1, 2, []float64{1, math.E})
	Y, err := matrix.Log(X)
	require.NoError(t, err)
	CompareClose(t, Y, NewFilledDense(t, 1, 2, []float64{0, 1}), 0, epsTight)

	_, err = matrix.Log(NewFilledDense(t, 2, 2, []float64{1, 2, 3, 0}))
	require.ErrorIs(t, err, matrix.ErrDegenerateColumn)
	require.Contains(t, err.Error(), "column 1")

	_, err = matrix.Log(NewFilledDense(t, 1, 1, []float64{-1}))
	require.ErrorIs(t, err, matrix.ErrDegenerateColumn)
}

// ------------------------------
// Strategy registry
// ------------------------------

func TestLookupStrategies(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 1, []float64{1, 3})

	mn, err := matrix.LookupMatrixNorm(" Sum ")
	require.NoError(t, err)
	Y, err := mn(X, matrix.AxisColumns)
	require.NoError(t, err)
	CompareClose(t, Y, NewFilledDense(t, 2, 1, []float64{0.25, 0.75}), 0, epsTight)

	_, err = matrix.LookupMatrixNorm("minmax")
	require.ErrorIs(t, err, matrix.ErrUnknownStrategy)

	wn, err := matrix.LookupVectorNorm("vector")
	require.NoError(t, err)
	w, err := wn([]float64{3, 4})
	require.NoError(t, err)
	sliceClose(t, w, []float64{0.6, 0.8}, 0, epsTight)

	_, err = matrix.LookupVectorNorm("")
	require.ErrorIs(t, err, matrix.ErrUnknownStrategy)
}
