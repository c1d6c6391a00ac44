package vectormath

import (
	"fmt"
	"math"
)

// Vector represents a text embedding as a slice of float64 values.
// The dimensionality depends on the model that produced it
// (e.g., 1536 for text-embedding-3-small).
type Vector []float64

// CosineSimilarity returns the cosine of the angle between a and b,
// a semantic-closeness score in [-1, 1].
//
// Returns ErrDimensionMismatch when the vectors have different lengths.
// When either vector has zero magnitude the similarity is 0, not an error:
// a zero vector carries no direction to compare against.
func CosineSimilarity(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0, nil
	}

	return dot / denom, nil
}

// Average returns the elementwise mean of the given vectors.
// Returns ErrNoVectors for an empty input and ErrDimensionMismatch
// when the vectors disagree on dimensionality.
func Average(vectors []Vector) (Vector, error) {
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}

	dims := len(vectors[0])
	sum := make(Vector, dims)
	for _, v := range vectors {
		if len(v) != dims {
			return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, dims, len(v))
		}
		for i, x := range v {
			sum[i] += x
		}
	}

	n := float64(len(vectors))
	for i := range sum {
		sum[i] /= n
	}

	return sum, nil
}
