package moora

import (
	"fmt"

	"github.com/katalvlaran/moora/criteria"
	"github.com/katalvlaran/moora/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opRatio      = "Ratio"
	opRefPoint   = "RefPoint"
	opFMF        = "FMF"
	opMultiMOORA = "MultiMOORA"
	opSolve      = "Solve"
)

// mooraErrorf wraps err with the entry point tag.
func mooraErrorf(op string, err error) error {
	return fmt.Errorf("moora.%s: %w", op, err)
}

// prepare is the validation boundary shared by every entry point.
// Implementation:
//   - Stage 1: ingest mtx into a Dense (empty → ErrInvalidDimensions, ragged →
//     ErrBadShape, NaN/Inf → ErrNaNInf).
//   - Stage 2: check the criteria (length → ErrShapeMismatch, value →
//     ErrInvalidCriteria).
//
// Nothing numeric runs before both checks pass.
func prepare(op string, mtx [][]float64, dirs []criteria.Direction) (*matrix.Dense, error) {
	d, err := matrix.NewDenseFrom(mtx)
	if err != nil {
		return nil, mooraErrorf(op, err)
	}
	if err = criteria.Validate(dirs, d.Cols()); err != nil {
		return nil, mooraErrorf(op, err)
	}

	return d, nil
}

// resolveWeights validates and normalizes the configured weights. A nil
// result means "unweighted" and is treated as the scalar 1 by the cores.
func resolveWeights(op string, o Options, cols int) ([]float64, error) {
	if o.weights == nil {
		return nil, nil
	}
	if err := criteria.ValidateWeights(o.weights, cols); err != nil {
		return nil, mooraErrorf(op, err)
	}
	w, err := o.wnorm(o.weights)
	if err != nil {
		return nil, mooraErrorf(op, err)
	}
	if len(w) != cols {
		return nil, mooraErrorf(op, fmt.Errorf("weight strategy returned %d values for %d columns: %w", len(w), cols, criteria.ErrShapeMismatch))
	}

	return w, nil
}

// checkIgnoredWeights validates weights for methods that do not use them, so
// a malformed vector fails the same way under every method.
func checkIgnoredWeights(op string, o Options, cols int) error {
	if o.weights == nil {
		return nil
	}
	if err := criteria.ValidateWeights(o.weights, cols); err != nil {
		return mooraErrorf(op, err)
	}

	return nil
}

// normalize runs the configured matrix strategy per column.
func normalize(op string, o Options, d matrix.Matrix) (matrix.Matrix, error) {
	n, err := o.mnorm(d, matrix.AxisColumns)
	if err != nil {
		return nil, mooraErrorf(op, err)
	}
	if n.Rows() != d.Rows() || n.Cols() != d.Cols() {
		return nil, mooraErrorf(op, matrix.ErrDimensionMismatch)
	}

	return n, nil
}

// rowsOf materializes m as row slices for the per-alternative loops.
func rowsOf(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// weightAt returns w[j], or 1 when unweighted.
func weightAt(w []float64, j int) float64 {
	if w == nil {
		return 1
	}

	return w[j]
}
