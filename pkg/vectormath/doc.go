// Package vectormath provides the small set of vector operations the
// embedding pipeline needs: cosine similarity for semantic-closeness scoring
// and elementwise averaging for combining embeddings of merged chunks.
//
// The Vector type is shared across the pipeline packages; it is a plain
// []float64 so callers can construct and inspect vectors without ceremony.
//
// Usage:
//
//	sim, err := vectormath.CosineSimilarity(a, b)
//	if err != nil {
//	    // dimensions differ
//	}
//
//	avg, err := vectormath.Average([]vectormath.Vector{a, b})
//
// Zero-magnitude vectors compare as 0 similarity rather than erroring, so
// degenerate embeddings never abort a merge pass.
package vectormath
