package chunker

import "strings"

// SentenceStrategy splits text on sentence terminators and greedily packs
// whole sentences into chunks up to MaxChunkSize, re-joining them with ". ".
// The re-join is a textual approximation: original terminators and spacing
// are not preserved exactly.
//
// Like ParagraphStrategy, a trailing buffer shorter than MinChunkSize is
// dropped.
type SentenceStrategy struct{}

// Split implements Strategy.
func (SentenceStrategy) Split(text string, opts Options) []TextChunk {
	opts = opts.withDefaults()

	var chunks []TextChunk
	current := ""
	start := 0

	for _, sentence := range splitSentences(text) {
		if current != "" && len(current)+len(sentence)+2 > opts.MaxChunkSize {
			chunks = append(chunks, newChunk(current, len(chunks), start, start+len(current)))

			overlap := overlapSentences(current, opts.ChunkOverlap)
			start += len(current) - len(overlap)
			if overlap != "" {
				current = overlap + ". " + sentence
			} else {
				current = sentence
			}
			continue
		}

		if current == "" {
			current = sentence
		} else {
			current += ". " + sentence
		}
	}

	if current != "" && len(current) >= opts.MinChunkSize {
		chunks = append(chunks, newChunk(current, len(chunks), start, start+len(current)))
	}

	return chunks
}

// splitSentences breaks text on sentence terminators, dropping empty
// segments. The terminators themselves are consumed.
func splitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceBoundary.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}
