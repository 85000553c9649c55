// Package criteria canonicalizes criteria directions and validates weight
// vectors before they reach the ranking algorithms.
//
// A criterion direction says whether higher (Max) or lower (Min) values are
// preferred for a column of the decision matrix. Directions are stored as the
// signed integers +1 / -1 so they can multiply weights directly:
//
//	dirs, err := criteria.Array([]int{1, -1, 1})   // [max min max]
//	dirs, err := criteria.Parse([]string{"max", "min", "max"})
//
// Only the two symbolic values exist; anything else is ErrInvalidCriteria.
// Length checks against the matrix column count report ErrShapeMismatch.
package criteria
