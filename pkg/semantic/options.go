package semantic

import "github.com/moleary1107/etownz-grants-sub008/pkg/chunker"

// Options extends the structural chunking options with the parameters of the
// semantic merge pass.
type Options struct {
	chunker.Options

	// SimilarityThreshold is the minimum cosine similarity between adjacent
	// chunks for them to be merged. Default: 0.8.
	SimilarityThreshold float64

	// MaxChunksToCompare is accepted for forward compatibility but not yet
	// used: the merge is always a full adjacent-pairwise sweep. Reserved for
	// a windowed comparison.
	MaxChunksToCompare int

	// UseSemanticBoundaries enables the merge pass. When false,
	// ChunkTextSemantic returns the structural result without calling the
	// embedder. Default: true.
	UseSemanticBoundaries bool
}

// DefaultOptions returns the standard semantic chunking configuration.
func DefaultOptions() Options {
	return Options{
		Options:               chunker.DefaultOptions(),
		SimilarityThreshold:   0.8,
		UseSemanticBoundaries: true,
	}
}

func (o Options) withDefaults() Options {
	if o.SimilarityThreshold == 0 {
		o.SimilarityThreshold = 0.8
	}
	return o
}
