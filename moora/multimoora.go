package moora

import (
	"github.com/katalvlaran/moora/criteria"
	"github.com/katalvlaran/moora/rank"
)

// MultiMOORA — aggregation of Ratio, RefPoint and FMF by dominance voting.
//
// Description:
//
//	The matrix is normalized once and scored by the three cores without
//	weights. Each alternative thereby receives a rank vector
//	[Ratio, RefPoint, FMF]. Every unordered pair of alternatives is compared
//	by rank.Dominance and the winner gets one vote; the final ranking orders
//	alternatives by votes, most votes first.
//
// Algorithm Outline:
//  1. N = mnorm(mtx) per column.
//  2. R[:,0] = Ratio(N).Rank, R[:,1] = RefPoint(N).Rank, R[:,2] = FMF(N).Rank.
//  3. For each pair i < j: dom = Dominance(R[i], R[j]);
//     dom > 0 → votes[i]++, otherwise votes[j]++.
//  4. rank = descending rank of votes.
//
// A non-positive dom awards the vote to the later alternative j. Ordinal
// ranks never repeat within a column, so with three methods dom is odd and
// a true draw cannot occur; the rule only matters for custom rank matrices.
//
// FMF here runs on the shared normalized matrix without the shifting applied
// by the standalone FMF, so non-positive normalized entries fail with
// matrix.ErrDegenerateColumn.
//
// Weights are ignored, but still validated.
//
// Complexity: O(n·m) for scoring plus O(n²) comparisons.
func MultiMOORA(mtx [][]float64, dirs []criteria.Direction, opts ...Option) (MultiResult, error) {
	o := gatherOptions(opts...)

	d, err := prepare(opMultiMOORA, mtx, dirs)
	if err != nil {
		return MultiResult{}, err
	}
	if err = checkIgnoredWeights(opMultiMOORA, o, d.Cols()); err != nil {
		return MultiResult{}, err
	}
	n, err := normalize(opMultiMOORA, o, d)
	if err != nil {
		return MultiResult{}, err
	}

	ratioRes, err := ratio(n, dirs, nil)
	if err != nil {
		return MultiResult{}, mooraErrorf(opMultiMOORA, err)
	}
	refRes, err := refPoint(n, dirs, nil)
	if err != nil {
		return MultiResult{}, mooraErrorf(opMultiMOORA, err)
	}
	fmfRes, err := fmf(n, dirs)
	if err != nil {
		return MultiResult{}, mooraErrorf(opMultiMOORA, err)
	}

	alts := d.Rows()
	rm := make([][]int, alts)
	for i := range rm {
		rm[i] = make([]int, 3)
		rm[i][ColRatio] = ratioRes.Rank[i]
		rm[i][ColRefPoint] = refRes.Rank[i]
		rm[i][ColFMF] = fmfRes.Rank[i]
	}

	votes, dominated, err := vote(rm)
	if err != nil {
		return MultiResult{}, mooraErrorf(opMultiMOORA, err)
	}

	points := make([]float64, alts)
	for i, v := range votes {
		points[i] = float64(v)
	}

	return MultiResult{
		Rank:       rank.Data(points, true),
		RankMatrix: rm,
		Votes:      votes,
		Dominated:  dominated,
	}, nil
}

// vote runs the pairwise dominance tournament over the rank matrix.
func vote(rm [][]int) ([]int, []bool, error) {
	votes := make([]int, len(rm))
	dominated := make([]bool, len(rm))

	var i, j int
	for i = 0; i < len(rm); i++ {
		for j = i + 1; j < len(rm); j++ {
			dom, err := rank.Dominance(rm[i], rm[j])
			if err != nil {
				return nil, nil, err
			}
			if dom > 0 {
				votes[i]++
			} else {
				votes[j]++
			}

			if rank.Dominates(rm[i], rm[j]) {
				dominated[j] = true
			} else if rank.Dominates(rm[j], rm[i]) {
				dominated[i] = true
			}
		}
	}

	return votes, dominated, nil
}
