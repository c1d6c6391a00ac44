package semantic

import (
	"github.com/moleary1107/etownz-grants-sub008/pkg/chunker"
	"github.com/moleary1107/etownz-grants-sub008/pkg/vectormath"
)

// mergeSizeFactor bounds a merged chunk at maxChunkSize * 1.5, allowing
// merges to overshoot the structural target without growing unboundedly.
const mergeSizeFactor = 1.5

// MergeChunks merges structurally adjacent chunks whose embeddings are
// similar enough, in a single left-to-right greedy sweep. The result is
// order-dependent and not globally optimal; simplicity wins over optimality
// here.
//
// vectors[i] is the embedding of chunks[i] and may be nil (or the slice may
// be shorter than chunks). A chunk without an embedding is never merged into
// and never merges forward - it acts as a boundary, degrading gracefully
// instead of failing. Merged chunks get concatenated content, summed counts,
// and a running averaged embedding. The returned sequence is re-finalized.
func MergeChunks(chunks []chunker.TextChunk, vectors []vectormath.Vector, threshold float64, maxChunkSize int) []chunker.TextChunk {
	if len(chunks) == 0 {
		return nil
	}
	if maxChunkSize <= 0 {
		maxChunkSize = chunker.DefaultOptions().MaxChunkSize
	}
	sizeLimit := int(float64(maxChunkSize) * mergeSizeFactor)

	vectorAt := func(i int) vectormath.Vector {
		if i < len(vectors) {
			return vectors[i]
		}
		return nil
	}

	merged := make([]chunker.TextChunk, 0, len(chunks))
	current := chunks[0]
	currentVec := vectorAt(0)

	for i := 1; i < len(chunks); i++ {
		next := chunks[i]
		nextVec := vectorAt(i)

		if shouldMerge(current, next, currentVec, nextVec, threshold, sizeLimit) {
			current.Content += "\n\n" + next.Content
			current.EndIndex = next.EndIndex
			current.Metadata.WordCount += next.Metadata.WordCount
			current.Metadata.CharacterCount += next.Metadata.CharacterCount
			current.Metadata.SentenceCount += next.Metadata.SentenceCount

			if avg, err := vectormath.Average([]vectormath.Vector{currentVec, nextVec}); err == nil {
				currentVec = avg
			}
			continue
		}

		merged = append(merged, current)
		current = next
		currentVec = nextVec
	}
	merged = append(merged, current)

	return chunker.Finalize(merged)
}

func shouldMerge(current, next chunker.TextChunk, currentVec, nextVec vectormath.Vector, threshold float64, sizeLimit int) bool {
	if currentVec == nil || nextVec == nil {
		return false
	}
	if len(current.Content)+len(next.Content) > sizeLimit {
		return false
	}
	sim, err := vectormath.CosineSimilarity(currentVec, nextVec)
	return err == nil && sim >= threshold
}
