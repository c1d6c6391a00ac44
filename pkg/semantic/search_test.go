package semantic_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moleary1107/etownz-grants-sub008/pkg/embeddings"
	"github.com/moleary1107/etownz-grants-sub008/pkg/semantic"
	"github.com/moleary1107/etownz-grants-sub008/pkg/vectormath"
)

// searchBatch builds a batch result with the query vector at index 0 and
// candidate vectors following. Nil vectors are omitted, as the client does
// for filtered blanks.
func searchBatch(vectors []vectormath.Vector) *embeddings.BatchResult {
	res := &embeddings.BatchResult{}
	for i, v := range vectors {
		if v == nil {
			continue
		}
		res.Embeddings = append(res.Embeddings, embeddings.IndexedEmbedding{
			Embedding:     v,
			OriginalIndex: i,
		})
	}
	return res
}

func TestPipeline_FindSimilar(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	candidates := []string{"arts council grant", "office furniture", "community funding"}

	t.Run("ranks by similarity above threshold", func(t *testing.T) {
		t.Parallel()
		embedder := &mockEmbedder{}
		embedder.On("EmbedBatch", mock.Anything, []string{"funding", "arts council grant", "office furniture", "community funding"}).
			Return(searchBatch([]vectormath.Vector{
				{1, 0},     // query
				{1, 0},     // similarity 1.0
				{0, 1},     // similarity 0.0
				{0.6, 0.8}, // similarity 0.6
			}), nil)

		p, err := semantic.New(embedder)
		require.NoError(t, err)

		matches, err := p.FindSimilar(ctx, "funding", candidates, 0.5, 0)
		require.NoError(t, err)

		require.Len(t, matches, 2)
		assert.Equal(t, "arts council grant", matches[0].Text)
		assert.Equal(t, 0, matches[0].Index)
		assert.InDelta(t, 1.0, matches[0].Similarity, 1e-9)
		assert.Equal(t, "community funding", matches[1].Text)
		assert.Equal(t, 2, matches[1].Index)
		assert.InDelta(t, 0.6, matches[1].Similarity, 1e-9)
	})

	t.Run("topK truncates the ranking", func(t *testing.T) {
		t.Parallel()
		embedder := &mockEmbedder{}
		embedder.On("EmbedBatch", mock.Anything, mock.Anything).
			Return(searchBatch([]vectormath.Vector{
				{1, 0}, {1, 0}, {0, 1}, {0.6, 0.8},
			}), nil)

		p, err := semantic.New(embedder)
		require.NoError(t, err)

		matches, err := p.FindSimilar(ctx, "funding", candidates, 0.5, 1)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "arts council grant", matches[0].Text)
	})

	t.Run("candidate without embedding is skipped", func(t *testing.T) {
		t.Parallel()
		embedder := &mockEmbedder{}
		embedder.On("EmbedBatch", mock.Anything, mock.Anything).
			Return(searchBatch([]vectormath.Vector{
				{1, 0}, {1, 0}, nil, {0.6, 0.8},
			}), nil)

		p, err := semantic.New(embedder)
		require.NoError(t, err)

		matches, err := p.FindSimilar(ctx, "funding", candidates, -1, 0)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		for _, m := range matches {
			assert.NotEqual(t, 1, m.Index)
		}
	})

	t.Run("blank query fails fast", func(t *testing.T) {
		t.Parallel()
		embedder := &mockEmbedder{}
		p, err := semantic.New(embedder)
		require.NoError(t, err)

		_, err = p.FindSimilar(ctx, "   ", candidates, 0.5, 0)
		assert.True(t, errors.Is(err, semantic.ErrEmptyQuery))
		embedder.AssertNotCalled(t, "EmbedBatch", mock.Anything, mock.Anything)
	})

	t.Run("no candidates returns no matches", func(t *testing.T) {
		t.Parallel()
		embedder := &mockEmbedder{}
		p, err := semantic.New(embedder)
		require.NoError(t, err)

		matches, err := p.FindSimilar(ctx, "funding", nil, 0.5, 0)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("embedder failure propagates", func(t *testing.T) {
		t.Parallel()
		providerErr := errors.New("provider unavailable")
		embedder := &mockEmbedder{}
		embedder.On("EmbedBatch", mock.Anything, mock.Anything).Return(nil, providerErr)

		p, err := semantic.New(embedder)
		require.NoError(t, err)

		_, err = p.FindSimilar(ctx, "funding", candidates, 0.5, 0)
		assert.True(t, errors.Is(err, providerErr))
	})
}
