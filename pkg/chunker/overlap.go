package chunker

import "strings"

// overlapTail returns the seed text for the next chunk from the trailing
// overlapSize bytes of text. If a sentence boundary falls inside that tail,
// everything up to and including it is trimmed so the next chunk starts at a
// sentence start; a mid-sentence fragment is kept only as a last resort.
func overlapTail(text string, overlapSize int) string {
	if overlapSize <= 0 || text == "" {
		return ""
	}
	if len(text) <= overlapSize {
		return strings.TrimSpace(text)
	}

	tail := text[len(text)-overlapSize:]
	if i := strings.Index(tail, "."); i >= 0 {
		return strings.TrimSpace(tail[i+1:])
	}
	return strings.TrimSpace(tail)
}

// overlapSentences walks the sentences of text from the end backwards,
// accumulating whole sentences until adding one more would exceed
// overlapSize. A sentence is never truncated mid-way, so the result can be
// empty when even the final sentence is longer than the budget.
func overlapSentences(text string, overlapSize int) string {
	if overlapSize <= 0 || text == "" {
		return ""
	}

	sentences := splitSentences(text)
	size := 0
	picked := 0
	for i := len(sentences) - 1; i >= 0; i-- {
		if size+len(sentences[i]) > overlapSize {
			break
		}
		size += len(sentences[i])
		picked++
	}

	if picked == 0 {
		return ""
	}
	return strings.Join(sentences[len(sentences)-picked:], ". ")
}
