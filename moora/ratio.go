package moora

import (
	"github.com/katalvlaran/moora/criteria"
	"github.com/katalvlaran/moora/matrix"
	"github.com/katalvlaran/moora/rank"
)

// Ratio — MOORA with the ratio system.
//
// Description:
//
//	Every column is turned into dimensionless ratios (by default
//	x̄_ij = x_ij / sqrt(Σ_i x_ij²)). Ratios of maximized criteria are added,
//	those of minimized criteria subtracted, each scaled by its normalized
//	weight. The alternative with the highest net score ranks first.
//
// Algorithm Outline:
//  1. N = mnorm(mtx) per column.
//  2. cw_j = w_j · sign(C_j)   (w_j = 1 when unweighted).
//  3. points_i = Σ_j N_ij · cw_j.
//  4. rank = descending rank of points.
//
// Errors:
//   - matrix.ErrInvalidDimensions / matrix.ErrBadShape / matrix.ErrNaNInf — bad matrix.
//   - criteria.ErrShapeMismatch — criteria or weights length ≠ columns.
//   - criteria.ErrInvalidCriteria, criteria.ErrInvalidWeight.
//   - matrix.ErrDegenerateColumn — a column cannot be normalized.
//
// Example:
//
//	res, _ := Ratio([][]float64{{1, 2, 3}, {1, 1, 4}, {2, 0, 1}},
//	    []criteria.Direction{criteria.Max, criteria.Min, criteria.Max})
//	// res.Rank == [2 1 0]
func Ratio(mtx [][]float64, dirs []criteria.Direction, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	d, err := prepare(opRatio, mtx, dirs)
	if err != nil {
		return Result{}, err
	}
	w, err := resolveWeights(opRatio, o, d.Cols())
	if err != nil {
		return Result{}, err
	}
	n, err := normalize(opRatio, o, d)
	if err != nil {
		return Result{}, err
	}

	res, err := ratio(n, dirs, w)
	if err != nil {
		return Result{}, mooraErrorf(opRatio, err)
	}

	return res, nil
}

// ratio scores an already normalized matrix.
func ratio(n matrix.Matrix, dirs []criteria.Direction, w []float64) (Result, error) {
	cw := criteria.Signs(dirs)
	for j := range cw {
		cw[j] *= weightAt(w, j)
	}

	points, err := matrix.MatVec(n, cw)
	if err != nil {
		return Result{}, err
	}

	return Result{Rank: rank.Data(points, true), Points: points}, nil
}
