// Package rank turns score vectors into zero-based rankings and compares
// rank vectors of two alternatives across several methods.
//
// Ranks are ordinal: a rank vector is always a permutation of 0..n-1, with
// equal scores ordered by their original index. Multi-method voting depends
// on this determinism.
package rank

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrLengthMismatch indicates two rank vectors of different length.
var ErrLengthMismatch = errors.New("rank: vectors have different lengths")

// Data returns zero-based ranks for points.
//
//   - reverse=false ranks ascending: the smallest point gets rank 0.
//   - reverse=true ranks descending: the largest point gets rank 0.
//
// Ties are broken by original index (a stable sort by score, then index).
// NaN points rank after every number in either direction.
// Complexity: O(n log n).
func Data(points []float64, reverse bool) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := points[order[a]], points[order[b]]
		switch {
		case math.IsNaN(pa):
			return false
		case math.IsNaN(pb):
			return true
		case reverse:
			return pa > pb
		default:
			return pa < pb
		}
	})

	ranks := make([]int, len(points))
	for pos, idx := range order {
		ranks[idx] = pos
	}

	return ranks
}

// Dominance compares two rank vectors component by component, where a lower
// rank is favourable. It returns the number of components favouring a minus
// the number favouring b: positive means a wins the majority, negative means
// b does, zero is a draw.
func Dominance(a, b []int) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Dominance: %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}

	var dom int
	for k := range a {
		switch {
		case a[k] < b[k]:
			dom++
		case a[k] > b[k]:
			dom--
		}
	}

	return dom, nil
}

// Dominates reports strict Pareto dominance of rank vector a over b: a is
// no worse in every component and strictly better in at least one.
// Vectors of different length never dominate.
func Dominates(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	strict := false
	for k := range a {
		if a[k] > b[k] {
			return false
		}
		if a[k] < b[k] {
			strict = true
		}
	}

	return strict
}
