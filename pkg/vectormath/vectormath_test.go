package vectormath_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moleary1107/etownz-grants-sub008/pkg/vectormath"
)

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	t.Run("identical vectors are maximally similar", func(t *testing.T) {
		t.Parallel()
		v := vectormath.Vector{0.5, 1.2, -3.4}
		sim, err := vectormath.CosineSimilarity(v, v)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, sim, 1e-9)
	})

	t.Run("orthogonal vectors score zero", func(t *testing.T) {
		t.Parallel()
		sim, err := vectormath.CosineSimilarity(vectormath.Vector{1, 0}, vectormath.Vector{0, 1})
		require.NoError(t, err)
		assert.Equal(t, 0.0, sim)
	})

	t.Run("opposite vectors score negative one", func(t *testing.T) {
		t.Parallel()
		sim, err := vectormath.CosineSimilarity(vectormath.Vector{1, 1}, vectormath.Vector{-1, -1})
		require.NoError(t, err)
		assert.InDelta(t, -1.0, sim, 1e-9)
	})

	t.Run("zero vector scores zero without error", func(t *testing.T) {
		t.Parallel()
		sim, err := vectormath.CosineSimilarity(vectormath.Vector{0, 0}, vectormath.Vector{1, 1})
		require.NoError(t, err)
		assert.Equal(t, 0.0, sim)
	})

	t.Run("dimension mismatch fails", func(t *testing.T) {
		t.Parallel()
		_, err := vectormath.CosineSimilarity(vectormath.Vector{1, 2}, vectormath.Vector{1, 2, 3})
		assert.True(t, errors.Is(err, vectormath.ErrDimensionMismatch))
	})
}

func TestAverage(t *testing.T) {
	t.Parallel()

	t.Run("elementwise mean", func(t *testing.T) {
		t.Parallel()
		avg, err := vectormath.Average([]vectormath.Vector{
			{1, 2, 3},
			{3, 4, 5},
		})
		require.NoError(t, err)
		assert.Equal(t, vectormath.Vector{2, 3, 4}, avg)
	})

	t.Run("single vector averages to itself", func(t *testing.T) {
		t.Parallel()
		avg, err := vectormath.Average([]vectormath.Vector{{0.25, 0.75}})
		require.NoError(t, err)
		assert.Equal(t, vectormath.Vector{0.25, 0.75}, avg)
	})

	t.Run("empty input fails", func(t *testing.T) {
		t.Parallel()
		_, err := vectormath.Average(nil)
		assert.True(t, errors.Is(err, vectormath.ErrNoVectors))
	})

	t.Run("mixed dimensions fail", func(t *testing.T) {
		t.Parallel()
		_, err := vectormath.Average([]vectormath.Vector{{1, 2}, {1, 2, 3}})
		assert.True(t, errors.Is(err, vectormath.ErrDimensionMismatch))
	})
}
