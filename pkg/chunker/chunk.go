package chunker

import (
	"fmt"
	"regexp"
	"strings"
)

// TextChunk is a bounded, contiguous (or merged) span of source text prepared
// for downstream embedding and retrieval. StartIndex and EndIndex are offsets
// into the original text; for strategies that re-join sentences or seed
// overlap they are consistent approximations rather than exact byte offsets.
type TextChunk struct {
	ID         string        `json:"id"`
	Content    string        `json:"content"`
	StartIndex int           `json:"start_index"`
	EndIndex   int           `json:"end_index"`
	Metadata   ChunkMetadata `json:"metadata"`
}

// ChunkMetadata carries per-chunk counts plus the chunk's position in the
// final sequence. TotalChunks is unknowable until splitting completes, so
// chunks are produced with a zero placeholder and patched by Finalize.
type ChunkMetadata struct {
	ChunkIndex     int `json:"chunk_index"`
	TotalChunks    int `json:"total_chunks"`
	WordCount      int `json:"word_count"`
	CharacterCount int `json:"character_count"`
	SentenceCount  int `json:"sentence_count"`
}

var sentenceBoundary = regexp.MustCompile(`[.!?]`)

// newChunk builds a chunk with its counts populated and a placeholder
// TotalChunks. The ID encodes position and span so it stays stable for a
// given split of a given text.
func newChunk(content string, index, start, end int) TextChunk {
	return TextChunk{
		ID:         fmt.Sprintf("chunk-%d-%d-%d", index, start, end),
		Content:    content,
		StartIndex: start,
		EndIndex:   end,
		Metadata: ChunkMetadata{
			ChunkIndex:     index,
			WordCount:      len(strings.Fields(content)),
			CharacterCount: len(content),
			SentenceCount:  countSentences(content),
		},
	}
}

// countSentences counts non-empty segments between sentence terminators.
// Like the rest of the package's boundary detection it is a heuristic: it
// over-counts around abbreviations and decimals.
func countSentences(content string) int {
	count := 0
	for _, part := range sentenceBoundary.Split(content, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}

// Finalize runs the second pass over a completed chunk sequence: it assigns
// sequential chunk indexes, back-fills TotalChunks with the final sequence
// length, and rewrites IDs to match. It is called by Split and again by
// consumers that reorder or merge chunks.
func Finalize(chunks []TextChunk) []TextChunk {
	for i := range chunks {
		chunks[i].Metadata.ChunkIndex = i
		chunks[i].Metadata.TotalChunks = len(chunks)
		chunks[i].ID = fmt.Sprintf("chunk-%d-%d-%d", i, chunks[i].StartIndex, chunks[i].EndIndex)
	}
	return chunks
}
