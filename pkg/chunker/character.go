package chunker

import "strings"

// CharacterStrategy splits text with a fixed-size sliding window, optionally
// snapping each window's right edge back to the last space so words are not
// cut mid-way. Windows shorter than MinChunkSize after trimming are skipped,
// but the window still advances past them.
type CharacterStrategy struct{}

// Split implements Strategy.
func (CharacterStrategy) Split(text string, opts Options) []TextChunk {
	opts = opts.withDefaults()

	var chunks []TextChunk
	for start := 0; start < len(text); {
		end := min(start+opts.MaxChunkSize, len(text))

		if opts.RespectWordBoundaries && end < len(text) && !isSpace(text[end]) {
			if lastSpace := strings.LastIndex(text[start:end], " "); lastSpace > 0 {
				end = start + lastSpace
			}
		}

		content := strings.TrimSpace(text[start:end])
		if len(content) >= opts.MinChunkSize {
			chunks = append(chunks, newChunk(content, len(chunks), start, end))
		}

		if end >= len(text) {
			break
		}
		// The start+1 floor guarantees forward progress even when the
		// overlap is as large as the window.
		start = max(end-opts.ChunkOverlap, start+1)
	}

	return chunks
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
