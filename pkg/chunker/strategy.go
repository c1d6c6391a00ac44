package chunker

import "strings"

// Strategy turns raw text into an ordered sequence of chunks with placeholder
// TotalChunks. Implementations are boundary-detection heuristics, not
// guarantees: they split on punctuation and blank lines and will misjudge
// abbreviations, decimals, and code blocks.
type Strategy interface {
	Split(text string, opts Options) []TextChunk
}

// Split splits text using the strategy selected by opts and finalizes the
// resulting sequence. Strategy selection is a priority chain:
// paragraph-preserving wins if set, else sentence-preserving, else raw
// character splitting.
func Split(text string, opts Options) []TextChunk {
	opts = opts.withDefaults()

	if strings.TrimSpace(text) == "" {
		return nil
	}

	var strategy Strategy
	switch {
	case opts.PreserveParagraphs:
		strategy = ParagraphStrategy{}
	case opts.PreserveSentences:
		strategy = SentenceStrategy{}
	default:
		strategy = CharacterStrategy{}
	}

	return Finalize(strategy.Split(text, opts))
}
