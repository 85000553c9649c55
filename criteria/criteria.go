package criteria

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidCriteria indicates a direction marker other than Max/Min.
	ErrInvalidCriteria = errors.New("criteria: direction must be max (+1) or min (-1)")

	// ErrShapeMismatch indicates a criteria or weights vector whose length
	// differs from the matrix column count.
	ErrShapeMismatch = errors.New("criteria: length does not match matrix columns")

	// ErrInvalidWeight indicates a negative or non-finite weight.
	ErrInvalidWeight = errors.New("criteria: weight must be finite and non-negative")
)

// Direction is the optimization sense of one criterion.
type Direction int8

const (
	// Min prefers lower values.
	Min Direction = -1

	// Max prefers higher values.
	Max Direction = 1
)

// String returns "max" or "min".
func (d Direction) String() string {
	switch d {
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
}

// Valid reports whether d is Max or Min.
func (d Direction) Valid() bool { return d == Max || d == Min }

// Sign returns d as a float64 multiplier (+1 or -1).
func (d Direction) Sign() float64 { return float64(d) }

// ParseDirection accepts "max", "maximize", "+1", "1", "min", "minimize",
// "-1" (case-insensitive, surrounding space ignored).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "+1", "1":
		return Max, nil
	case "min", "minimize", "-1":
		return Min, nil
	default:
		return 0, fmt.Errorf("ParseDirection(%q): %w", s, ErrInvalidCriteria)
	}
}

// MarshalText encodes d as "max" or "min".
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("MarshalText: %d: %w", int8(d), ErrInvalidCriteria)
	}

	return []byte(d.String()), nil
}

// UnmarshalText decodes any form accepted by ParseDirection, so YAML and
// JSON documents may write either max/min or +1/-1.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v

	return nil
}

// Array canonicalizes integer markers into directions. Every value must be
// exactly +1 or -1.
func Array(values []int) ([]Direction, error) {
	out := make([]Direction, len(values))
	for i, v := range values {
		d := Direction(v)
		if v != int(Max) && v != int(Min) {
			return nil, fmt.Errorf("Array: index %d (%d): %w", i, v, ErrInvalidCriteria)
		}
		out[i] = d
	}

	return out, nil
}

// Parse canonicalizes textual markers (see ParseDirection).
func Parse(values []string) ([]Direction, error) {
	out := make([]Direction, len(values))
	for i, s := range values {
		d, err := ParseDirection(s)
		if err != nil {
			return nil, fmt.Errorf("Parse: index %d: %w", i, err)
		}
		out[i] = d
	}

	return out, nil
}

// Validate checks that dirs has exactly cols entries and that each is Max or
// Min. Shape is checked before content.
func Validate(dirs []Direction, cols int) error {
	if len(dirs) != cols {
		return fmt.Errorf("Validate: %d criteria for %d columns: %w", len(dirs), cols, ErrShapeMismatch)
	}
	for i, d := range dirs {
		if !d.Valid() {
			return fmt.Errorf("Validate: index %d (%d): %w", i, int8(d), ErrInvalidCriteria)
		}
	}

	return nil
}

// ValidateWeights checks that w has exactly cols finite, non-negative entries.
func ValidateWeights(w []float64, cols int) error {
	if len(w) != cols {
		return fmt.Errorf("ValidateWeights: %d weights for %d columns: %w", len(w), cols, ErrShapeMismatch)
	}
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("ValidateWeights: index %d (%g): %w", i, v, ErrInvalidWeight)
		}
	}

	return nil
}

// Signs returns the directions as float multipliers.
func Signs(dirs []Direction) []float64 {
	out := make([]float64, len(dirs))
	for i, d := range dirs {
		out[i] = d.Sign()
	}

	return out
}

// AllOf reports whether every direction equals d. An empty slice reports false.
func AllOf(dirs []Direction, d Direction) bool {
	if len(dirs) == 0 {
		return false
	}
	for _, x := range dirs {
		if x != d {
			return false
		}
	}

	return true
}
