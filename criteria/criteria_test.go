package criteria_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moora/criteria"
)

func TestArray(t *testing.T) {
	t.Parallel()

	dirs, err := criteria.Array([]int{1, -1, 1})
	require.NoError(t, err)
	assert.Equal(t, []criteria.Direction{criteria.Max, criteria.Min, criteria.Max}, dirs)

	for _, bad := range [][]int{{1, 0}, {2}, {-1, -2}} {
		_, err = criteria.Array(bad)
		require.ErrorIs(t, err, criteria.ErrInvalidCriteria, "values=%v", bad)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	dirs, err := criteria.Parse([]string{"MAX", " min ", "+1", "-1", "maximize", "Minimize", "1"})
	require.NoError(t, err)
	assert.Equal(t, []criteria.Direction{
		criteria.Max, criteria.Min, criteria.Max, criteria.Min, criteria.Max, criteria.Min, criteria.Max,
	}, dirs)

	_, err = criteria.Parse([]string{"max", "best"})
	require.ErrorIs(t, err, criteria.ErrInvalidCriteria)
	assert.Contains(t, err.Error(), "index 1")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, criteria.Validate([]criteria.Direction{criteria.Max, criteria.Min}, 2))
	require.ErrorIs(t, criteria.Validate([]criteria.Direction{criteria.Max}, 2), criteria.ErrShapeMismatch)
	require.ErrorIs(t, criteria.Validate([]criteria.Direction{criteria.Max, 0}, 2), criteria.ErrInvalidCriteria)
	require.ErrorIs(t, criteria.Validate([]criteria.Direction{3}, 1), criteria.ErrInvalidCriteria)
}

func TestValidateWeights(t *testing.T) {
	t.Parallel()

	require.NoError(t, criteria.ValidateWeights([]float64{0, 1, 2.5}, 3))
	require.ErrorIs(t, criteria.ValidateWeights([]float64{1}, 3), criteria.ErrShapeMismatch)
	require.ErrorIs(t, criteria.ValidateWeights([]float64{1, -1}, 2), criteria.ErrInvalidWeight)
	require.ErrorIs(t, criteria.ValidateWeights([]float64{math.NaN()}, 1), criteria.ErrInvalidWeight)
}

func TestSignsAndAllOf(t *testing.T) {
	t.Parallel()

	dirs := []criteria.Direction{criteria.Max, criteria.Min}
	assert.Equal(t, []float64{1, -1}, criteria.Signs(dirs))
	assert.False(t, criteria.AllOf(dirs, criteria.Max))
	assert.True(t, criteria.AllOf([]criteria.Direction{criteria.Min, criteria.Min}, criteria.Min))
	assert.False(t, criteria.AllOf(nil, criteria.Max))
	assert.Equal(t, "max", criteria.Max.String())
	assert.Equal(t, "min", criteria.Min.String())
	assert.Equal(t, "Direction(0)", criteria.Direction(0).String())
}

func TestDirectionText(t *testing.T) {
	t.Parallel()

	b, err := criteria.Min.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "min", string(b))

	_, err = criteria.Direction(0).MarshalText()
	require.ErrorIs(t, err, criteria.ErrInvalidCriteria)

	var d criteria.Direction
	require.NoError(t, d.UnmarshalText([]byte("-1")))
	assert.Equal(t, criteria.Min, d)
	require.NoError(t, d.UnmarshalText([]byte("Maximize")))
	assert.Equal(t, criteria.Max, d)
	require.ErrorIs(t, d.UnmarshalText([]byte("up")), criteria.ErrInvalidCriteria)
}
