package moora

import (
	"fmt"

	"github.com/katalvlaran/moora/criteria"
)

// Solve runs the selected method and returns its outcome as a Decision.
// It is the single dispatch point used by front-ends that pick the method
// at run time (configuration, CLI flag).
//
// Errors from the method are returned unchanged; an unknown method yields
// ErrUnknownMethod.
func Solve(method Method, mtx [][]float64, dirs []criteria.Direction, opts ...Option) (Decision, error) {
	var (
		res Result
		err error
	)
	switch method {
	case MethodRatio:
		res, err = Ratio(mtx, dirs, opts...)
	case MethodRefPoint:
		res, err = RefPoint(mtx, dirs, opts...)
	case MethodFMF:
		res, err = FMF(mtx, dirs, opts...)
	case MethodMultiMOORA:
		multi, mErr := MultiMOORA(mtx, dirs, opts...)
		if mErr != nil {
			return Decision{}, mErr
		}

		return Decision{
			Method:     method,
			Rank:       multi.Rank,
			RankMatrix: multi.RankMatrix,
			Votes:      multi.Votes,
			Dominated:  multi.Dominated,
		}, nil
	default:
		return Decision{}, mooraErrorf(opSolve, fmt.Errorf("%v: %w", method, ErrUnknownMethod))
	}
	if err != nil {
		return Decision{}, err
	}

	return Decision{Method: method, Rank: res.Rank, Points: res.Points}, nil
}
