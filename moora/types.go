package moora

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMethod is returned by ParseMethod and Solve for an unknown method.
var ErrUnknownMethod = errors.New("moora: unknown method")

// Result is the outcome of a single scoring method.
//
//   - Rank   — zero-based rank per alternative (0 is best).
//   - Points — the raw score per alternative. Its direction depends on the
//     method: higher is better for Ratio and FMF, lower is better for RefPoint.
type Result struct {
	Rank   []int
	Points []float64
}

// MultiResult is the outcome of MultiMOORA.
//
//   - Rank       — final zero-based rank from the dominance votes.
//   - RankMatrix — n×3 per-method ranks, columns [Ratio, RefPoint, FMF].
//   - Votes      — pairwise comparisons won by each alternative.
//   - Dominated  — true when another alternative is no worse in all three
//     methods and strictly better in one.
type MultiResult struct {
	Rank       []int
	RankMatrix [][]int
	Votes      []int
	Dominated  []bool
}

// Column indices of MultiResult.RankMatrix.
const (
	ColRatio = iota
	ColRefPoint
	ColFMF
)

// Method selects one of the four ranking methods for Solve.
type Method int

const (
	// MethodRatio selects Ratio.
	MethodRatio Method = iota

	// MethodRefPoint selects RefPoint.
	MethodRefPoint

	// MethodFMF selects FMF.
	MethodFMF

	// MethodMultiMOORA selects MultiMOORA.
	MethodMultiMOORA
)

var methodNames = [...]string{
	MethodRatio:      "ratio",
	MethodRefPoint:   "refpoint",
	MethodFMF:        "fmf",
	MethodMultiMOORA: "multimoora",
}

// Methods lists every method in declaration order.
func Methods() []Method {
	return []Method{MethodRatio, MethodRefPoint, MethodFMF, MethodMultiMOORA}
}

// String returns the lower-case method name.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod resolves a method name (case-insensitive). "ref-point",
// "multi-moora" and "multi" are accepted as aliases.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ratio":
		return MethodRatio, nil
	case "refpoint", "ref-point":
		return MethodRefPoint, nil
	case "fmf":
		return MethodFMF, nil
	case "multimoora", "multi-moora", "multi":
		return MethodMultiMOORA, nil
	default:
		return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
}

// Decision is the uniform outcome returned by Solve regardless of method.
// Points is set for the single methods; RankMatrix, Votes and Dominated are
// set for MethodMultiMOORA.
type Decision struct {
	Method     Method
	Rank       []int
	Points     []float64
	RankMatrix [][]int
	Votes      []int
	Dominated  []bool
}

// Best returns the index of the alternative ranked 0, or -1 when empty.
func (d Decision) Best() int {
	for i, r := range d.Rank {
		if r == 0 {
			return i
		}
	}

	return -1
}
