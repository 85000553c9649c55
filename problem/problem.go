// Package problem holds a complete decision problem (alternative names,
// named and weighted criteria, decision matrix) and decodes it from YAML or
// CSV documents.
//
// YAML layout:
//
//	alternatives: [laptop A, laptop B, laptop C]
//	criteria:
//	  - {name: performance, direction: max, weight: 3}
//	  - {name: price, direction: min, weight: 2}
//	matrix:
//	  - [7, 1200]
//	  - [9, 1500]
//	  - [6, 900]
//
// CSV layout (header cells are name:direction[:weight]):
//
//	alternative,performance:max:3,price:min:2
//	laptop A,7,1200
//	laptop B,9,1500
//	laptop C,6,900
//
// Weights follow an all-or-none rule: either every criterion carries a
// weight or none does.
package problem

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/moora/criteria"
)

var (
	// ErrInvalidProblem indicates a structurally invalid decision problem.
	ErrInvalidProblem = errors.New("problem: invalid decision problem")

	// ErrUnsupportedFormat indicates an input format other than YAML or CSV.
	ErrUnsupportedFormat = errors.New("problem: unsupported format")
)

// Criterion describes one column of the decision matrix.
type Criterion struct {
	Name      string             `yaml:"name" json:"name"`
	Direction criteria.Direction `yaml:"direction" json:"direction"`
	Weight    *float64           `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// Problem is a decision problem: Matrix[i][j] is the value of alternative i
// under criterion j.
type Problem struct {
	Alternatives []string    `yaml:"alternatives,omitempty" json:"alternatives,omitempty"`
	Criteria     []Criterion `yaml:"criteria" json:"criteria"`
	Matrix       [][]float64 `yaml:"matrix" json:"matrix"`
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidProblem)
}

// fillDefaults names unnamed alternatives and criteria by position.
func (p *Problem) fillDefaults() {
	if len(p.Alternatives) == 0 {
		p.Alternatives = make([]string, len(p.Matrix))
	}
	for i, name := range p.Alternatives {
		if name == "" {
			p.Alternatives[i] = fmt.Sprintf("alternative %d", i)
		}
	}
	for j := range p.Criteria {
		if p.Criteria[j].Name == "" {
			p.Criteria[j].Name = fmt.Sprintf("criterion %d", j)
		}
	}
}

// Validate checks the problem structure.
//   - Stage 1: at least one criterion and one alternative.
//   - Stage 2: names are unique and there is one per row.
//   - Stage 3: every row has one value per criterion and directions are valid.
//   - Stage 4: weights are all-or-none, finite and non-negative.
//
// Numeric checks on the matrix itself (NaN, Inf) are left to the ranking
// methods.
func (p *Problem) Validate() error {
	// Stage 1
	if len(p.Criteria) == 0 {
		return invalidf("no criteria")
	}
	if len(p.Matrix) == 0 {
		return invalidf("no alternatives")
	}

	// Stage 2
	if len(p.Alternatives) != len(p.Matrix) {
		return invalidf("%d alternative names for %d rows", len(p.Alternatives), len(p.Matrix))
	}
	if dup, ok := firstDuplicate(p.Alternatives); ok {
		return invalidf("duplicate alternative %q", dup)
	}
	names := make([]string, len(p.Criteria))
	for j, c := range p.Criteria {
		names[j] = c.Name
	}
	if dup, ok := firstDuplicate(names); ok {
		return invalidf("duplicate criterion %q", dup)
	}

	// Stage 3
	for i, row := range p.Matrix {
		if len(row) != len(p.Criteria) {
			return fmt.Errorf("row %q has %d values for %d criteria: %w",
				p.Alternatives[i], len(row), len(p.Criteria), criteria.ErrShapeMismatch)
		}
	}
	if err := criteria.Validate(p.Directions(), len(p.Criteria)); err != nil {
		return err
	}

	// Stage 4
	var weighted int
	for _, c := range p.Criteria {
		if c.Weight != nil {
			weighted++
		}
	}
	if weighted != 0 && weighted != len(p.Criteria) {
		return invalidf("%d of %d criteria carry a weight; give all or none", weighted, len(p.Criteria))
	}
	if w := p.Weights(); w != nil {
		if err := criteria.ValidateWeights(w, len(p.Criteria)); err != nil {
			return err
		}
	}

	return nil
}

// Directions returns the criteria directions in column order.
func (p *Problem) Directions() []criteria.Direction {
	out := make([]criteria.Direction, len(p.Criteria))
	for j, c := range p.Criteria {
		out[j] = c.Direction
	}

	return out
}

// Weights returns the criteria weights, or nil when the first criterion has
// none (unweighted problem).
func (p *Problem) Weights() []float64 {
	if len(p.Criteria) == 0 || p.Criteria[0].Weight == nil {
		return nil
	}
	out := make([]float64, len(p.Criteria))
	for j, c := range p.Criteria {
		if c.Weight != nil {
			out[j] = *c.Weight
		}
	}

	return out
}

// Inputs validates the problem and returns the arguments of the ranking
// methods. The matrix is a deep copy.
func (p *Problem) Inputs() (mtx [][]float64, dirs []criteria.Direction, weights []float64, err error) {
	if err = p.Validate(); err != nil {
		return nil, nil, nil, err
	}

	mtx = make([][]float64, len(p.Matrix))
	for i, row := range p.Matrix {
		mtx[i] = append([]float64(nil), row...)
	}

	return mtx, p.Directions(), p.Weights(), nil
}

func firstDuplicate(names []string) (string, bool) {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return n, true
		}
		seen[n] = struct{}{}
	}

	return "", false
}
