// Package moora ranks alternatives with the MOORA family of multi-attribute
// decision making methods.
//
// 🚀 What is MOORA?
//
//	Multi-Objective Optimization by Ratio Analysis scores every alternative
//	(a row of the decision matrix) against every criterion (a column) after
//	normalizing the columns into dimensionless ratios. Four methods are
//	provided:
//	  • Ratio      — weighted sum of ratios, maximized criteria added,
//	                 minimized criteria subtracted. Higher is better.
//	  • RefPoint   — Chebyshev distance to the ideal reference point
//	                 (column max for MAX, column min for MIN). Lower is better.
//	  • FMF        — full multiplicative form: sum of log-ratios of MAX
//	                 columns minus those of MIN columns. Higher is better.
//	  • MultiMOORA — the three methods above, unweighted, combined by
//	                 pairwise dominance voting.
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/moora/criteria"
//	    "github.com/katalvlaran/moora/moora"
//	)
//
//	mtx := [][]float64{{1, 2, 3}, {1, 1, 4}, {2, 0, 1}}
//	dirs := []criteria.Direction{criteria.Max, criteria.Min, criteria.Max}
//
//	res, err := moora.Ratio(mtx, dirs)
//	// res.Rank   == [2 1 0]
//	// res.Points ≈ [0.1021695 0.74549924 1.01261272]
//
//	res, err = moora.Ratio(mtx, dirs, moora.WithWeights([]float64{1, 2, 1}))
//
// Ranks are zero-based (0 is the best alternative) and ties are broken by
// original index, so identical input always yields identical output.
//
// Normalization strategies are injectable (WithMatrixNorm, WithWeightNorm);
// the defaults are matrix.VectorNorm per column and matrix.SumNorm for weights.
//
// Every entry point is a pure, synchronous function over its inputs: nothing
// is mutated, nothing is retained, and calls are safe from many goroutines.
//
// Performance:
//
//   - Ratio, RefPoint, FMF: O(n·m)
//   - MultiMOORA:           O(n·m + n²)
package moora
