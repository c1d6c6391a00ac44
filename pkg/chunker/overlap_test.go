package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlapTail(t *testing.T) {
	t.Parallel()

	t.Run("snaps past sentence boundary in the tail", func(t *testing.T) {
		t.Parallel()
		// Tail of 15 is "ta. Gamma delta"; everything through the period goes.
		assert.Equal(t, "Gamma delta", overlapTail("Alpha beta. Gamma delta", 15))
	})

	t.Run("keeps raw tail when no boundary exists", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ghij", overlapTail("abcdefghij", 4))
	})

	t.Run("short text returns whole text", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "abc", overlapTail("abc", 10))
	})

	t.Run("zero overlap returns nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, overlapTail("some text", 0))
	})

	t.Run("boundary at end of tail leaves nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, overlapTail("leading words trailing.", 4))
	})
}

func TestOverlapSentences(t *testing.T) {
	t.Parallel()

	text := "One two. Three four. Five six."

	t.Run("takes whole trailing sentences within budget", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Five six", overlapSentences(text, 12))
	})

	t.Run("larger budget takes more sentences", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "One two. Three four. Five six", overlapSentences(text, 25))
	})

	t.Run("never truncates a sentence mid-way", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, overlapSentences("Supercalifragilistic sentence here.", 5))
	})

	t.Run("zero overlap returns nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, overlapSentences(text, 0))
	})
}
