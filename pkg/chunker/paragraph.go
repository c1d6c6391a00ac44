package chunker

import (
	"regexp"
	"strings"
)

var paragraphBoundary = regexp.MustCompile(`\n\s*\n`)

// ParagraphStrategy splits text on blank-line boundaries and greedily packs
// whole paragraphs into chunks up to MaxChunkSize. When a paragraph would
// overflow the running buffer, the buffer is emitted and the next one is
// seeded with overlap text from the emitted chunk.
//
// A trailing buffer shorter than MinChunkSize is dropped, discarding the tail
// of the document. Callers that cannot afford to lose trailing text should
// lower MinChunkSize.
type ParagraphStrategy struct{}

// Split implements Strategy.
func (ParagraphStrategy) Split(text string, opts Options) []TextChunk {
	opts = opts.withDefaults()

	var chunks []TextChunk
	current := ""
	start := 0

	for _, paragraph := range paragraphBoundary.Split(text, -1) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		if current != "" && len(current)+len(paragraph)+2 > opts.MaxChunkSize {
			chunks = append(chunks, newChunk(current, len(chunks), start, start+len(current)))

			overlap := overlapTail(current, opts.ChunkOverlap)
			start += len(current) - len(overlap)
			if overlap != "" {
				current = overlap + "\n\n" + paragraph
			} else {
				current = paragraph
			}
			continue
		}

		if current == "" {
			current = paragraph
		} else {
			current += "\n\n" + paragraph
		}
	}

	if current != "" && len(current) >= opts.MinChunkSize {
		chunks = append(chunks, newChunk(current, len(chunks), start, start+len(current)))
	}

	return chunks
}
