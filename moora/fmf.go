package moora

import (
	"github.com/katalvlaran/moora/criteria"
	"github.com/katalvlaran/moora/matrix"
	"github.com/katalvlaran/moora/rank"
)

// FMF — Full Multiplicative Form.
//
// Description:
//
//	Multiplies the ratios of maximized criteria and divides by those of
//	minimized criteria, computed in log space. Logarithms need strictly
//	positive input, so the raw matrix is first shifted to be non-negative
//	(matrix.PushNegatives) and made zero-free (matrix.AddOneToZero) before
//	normalization.
//
// Algorithm Outline:
//  1. P = AddOneToZero(PushNegatives(mtx)) per column.
//  2. N = mnorm(P) per column; L = ln(N).
//  3. points_i =
//     Σ_j L_ij                               if every criterion is MAX,
//     1 − Σ_j L_ij                           if every criterion is MIN,
//     Σ_{j∈MAX} L_ij − Σ_{j∈MIN} L_ij        otherwise.
//  4. rank = descending rank of points.
//
// The all-MAX case is exactly the general formula with no MIN columns. The
// all-MIN case keeps the historical "1 −" offset; it shifts every score by
// the same constant and so never changes the ranking.
//
// Weights are ignored, but still validated. Only WithMatrixNorm affects FMF.
//
// Errors: same set as Ratio, plus matrix.ErrDegenerateColumn when a
// substituted strategy leaves a non-positive entry for the logarithm.
func FMF(mtx [][]float64, dirs []criteria.Direction, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	d, err := prepare(opFMF, mtx, dirs)
	if err != nil {
		return Result{}, err
	}
	if err = checkIgnoredWeights(opFMF, o, d.Cols()); err != nil {
		return Result{}, err
	}

	nonNeg, err := matrix.PushNegatives(d, matrix.AxisColumns)
	if err != nil {
		return Result{}, mooraErrorf(opFMF, err)
	}
	nonZero, err := matrix.AddOneToZero(nonNeg, matrix.AxisColumns)
	if err != nil {
		return Result{}, mooraErrorf(opFMF, err)
	}
	n, err := normalize(opFMF, o, nonZero)
	if err != nil {
		return Result{}, err
	}

	res, err := fmf(n, dirs)
	if err != nil {
		return Result{}, mooraErrorf(opFMF, err)
	}

	return res, nil
}

// fmf scores an already normalized, strictly positive matrix.
func fmf(n matrix.Matrix, dirs []criteria.Direction) (Result, error) {
	lm, err := matrix.Log(n)
	if err != nil {
		return Result{}, err
	}
	logs, err := rowsOf(lm)
	if err != nil {
		return Result{}, err
	}

	onlyMax := criteria.AllOf(dirs, criteria.Max)
	onlyMin := criteria.AllOf(dirs, criteria.Min)

	points := make([]float64, len(logs))
	for i, row := range logs {
		var maxs, mins float64
		for j, v := range row {
			if dirs[j] == criteria.Max {
				maxs += v
			} else {
				mins += v
			}
		}
		switch {
		case onlyMax:
			points[i] = maxs
		case onlyMin:
			points[i] = 1 - mins
		default:
			points[i] = maxs - mins
		}
	}

	return Result{Rank: rank.Data(points, true), Points: points}, nil
}
