package moora

import (
	"math"

	"github.com/katalvlaran/moora/criteria"
	"github.com/katalvlaran/moora/matrix"
	"github.com/katalvlaran/moora/rank"
)

// RefPoint — MOORA with a reference point.
//
// Description:
//
//	Builds the ideal point from the normalized matrix (column maximum for
//	MAX criteria, column minimum for MIN criteria) and scores every
//	alternative by its worst weighted deviation from it (Chebyshev
//	min-max metric). The smallest deviation ranks first: unlike Ratio and
//	FMF the ranking is ascending.
//
// Algorithm Outline:
//  1. N = mnorm(mtx) per column.
//  2. ref_j = max_i N_ij if C_j = MAX, else min_i N_ij.
//  3. points_i = max_j |w_j · (N_ij − ref_j)|   (w_j = 1 when unweighted).
//  4. rank = ascending rank of points.
//
// Weights, when given, are normalized by the weight strategy first.
//
// Errors: same set as Ratio.
func RefPoint(mtx [][]float64, dirs []criteria.Direction, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	d, err := prepare(opRefPoint, mtx, dirs)
	if err != nil {
		return Result{}, err
	}
	w, err := resolveWeights(opRefPoint, o, d.Cols())
	if err != nil {
		return Result{}, err
	}
	n, err := normalize(opRefPoint, o, d)
	if err != nil {
		return Result{}, err
	}

	res, err := refPoint(n, dirs, w)
	if err != nil {
		return Result{}, mooraErrorf(opRefPoint, err)
	}

	return res, nil
}

// refPoint scores an already normalized matrix. dirs must be validated:
// every entry is Max or Min, so "not Max" means Min.
func refPoint(n matrix.Matrix, dirs []criteria.Direction, w []float64) (Result, error) {
	maxs, err := matrix.AxisMax(n, matrix.AxisColumns)
	if err != nil {
		return Result{}, err
	}
	ref, err := matrix.AxisMin(n, matrix.AxisColumns)
	if err != nil {
		return Result{}, err
	}
	for j, dir := range dirs {
		if dir == criteria.Max {
			ref[j] = maxs[j]
		}
	}

	rows, err := rowsOf(n)
	if err != nil {
		return Result{}, err
	}
	points := make([]float64, len(rows))
	for i, row := range rows {
		var worst float64
		for j, v := range row {
			worst = math.Max(worst, math.Abs(weightAt(w, j)*(v-ref[j])))
		}
		points[i] = worst
	}

	return Result{Rank: rank.Data(points, false), Points: points}, nil
}
