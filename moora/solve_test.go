package moora_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moora/criteria"
	"github.com/katalvlaran/moora/matrix"
	"github.com/katalvlaran/moora/moora"
)

func TestSolve_Dispatch(t *testing.T) {
	t.Parallel()

	mtx := [][]float64{{7, 9, 9, 8}, {8, 7, 8, 7}, {9, 6, 8, 9}, {6, 7, 8, 6}}
	dirs := []criteria.Direction{criteria.Max, criteria.Max, criteria.Min, criteria.Max}

	ratio, err := moora.Ratio(mtx, dirs)
	require.NoError(t, err)
	d, err := moora.Solve(moora.MethodRatio, mtx, dirs)
	require.NoError(t, err)
	assert.Equal(t, moora.MethodRatio, d.Method)
	assert.Equal(t, ratio.Rank, d.Rank)
	assert.Equal(t, ratio.Points, d.Points)
	assert.Nil(t, d.RankMatrix)
	assert.Equal(t, 2, d.Best())

	ref, err := moora.RefPoint(mtx, dirs)
	require.NoError(t, err)
	d, err = moora.Solve(moora.MethodRefPoint, mtx, dirs)
	require.NoError(t, err)
	assert.Equal(t, ref.Rank, d.Rank)

	fmf, err := moora.FMF(mtx, dirs)
	require.NoError(t, err)
	d, err = moora.Solve(moora.MethodFMF, mtx, dirs)
	require.NoError(t, err)
	assert.Equal(t, fmf.Points, d.Points)

	multi, err := moora.MultiMOORA(mtx, dirs)
	require.NoError(t, err)
	d, err = moora.Solve(moora.MethodMultiMOORA, mtx, dirs)
	require.NoError(t, err)
	assert.Equal(t, multi.Rank, d.Rank)
	assert.Equal(t, multi.RankMatrix, d.RankMatrix)
	assert.Equal(t, multi.Votes, d.Votes)
	assert.Equal(t, multi.Dominated, d.Dominated)
	assert.Nil(t, d.Points)
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	_, err := moora.Solve(moora.Method(42), sampleMtx, sampleDirs)
	require.ErrorIs(t, err, moora.ErrUnknownMethod)

	_, err = moora.Solve(moora.MethodRatio, nil, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = moora.Solve(moora.MethodMultiMOORA, sampleMtx, sampleDirs)
	require.ErrorIs(t, err, matrix.ErrDegenerateColumn)
}

func TestParseMethod(t *testing.T) {
	t.Parallel()

	cases := map[string]moora.Method{
		"ratio":       moora.MethodRatio,
		"RefPoint":    moora.MethodRefPoint,
		"ref-point":   moora.MethodRefPoint,
		" fmf ":       moora.MethodFMF,
		"MultiMOORA":  moora.MethodMultiMOORA,
		"multi-moora": moora.MethodMultiMOORA,
		"multi":       moora.MethodMultiMOORA,
	}
	for in, want := range cases {
		got, err := moora.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := moora.ParseMethod("topsis")
	require.ErrorIs(t, err, moora.ErrUnknownMethod)

	// String round-trips through ParseMethod.
	for _, m := range moora.Methods() {
		got, err := moora.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	assert.Equal(t, "Method(9)", moora.Method(9).String())
}

func TestDecision_Best(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, moora.Decision{Rank: []int{2, 0, 1}}.Best())
	assert.Equal(t, -1, moora.Decision{}.Best())
}

func TestOptions_PanicOnNilStrategy(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { moora.WithMatrixNorm(nil) })
	assert.Panics(t, func() { moora.WithWeightNorm(nil) })
}

func TestOptions_WeightsCopied(t *testing.T) {
	t.Parallel()

	w := []float64{1, 2, 1}
	opt := moora.WithWeights(w)
	w[1] = 100

	res, err := moora.Ratio(sampleMtx, sampleDirs, opt)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-0.19806442, 0.07457141, 0.25315318}, res.Points, eps)
}

func TestOptions_WeightStrategy(t *testing.T) {
	t.Parallel()

	// Vector-normalized weights only rescale every score by the same factor.
	sum, err := moora.Ratio(sampleMtx, sampleDirs, moora.WithWeights([]float64{1, 2, 1}))
	require.NoError(t, err)
	vec, err := moora.Ratio(sampleMtx, sampleDirs,
		moora.WithWeights([]float64{1, 2, 1}), moora.WithWeightNorm(matrix.VectorNormVec))
	require.NoError(t, err)
	assert.Equal(t, sum.Rank, vec.Rank)
}
