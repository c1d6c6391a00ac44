package semantic

import (
	"context"
	"sort"
	"strings"

	"github.com/moleary1107/etownz-grants-sub008/pkg/vectormath"
)

// Match is a candidate text that cleared the similarity threshold against a
// query. Index is the candidate's position in the caller's slice.
type Match struct {
	Text       string  `json:"text"`
	Index      int     `json:"index"`
	Similarity float64 `json:"similarity"`
}

// FindSimilar embeds the query and all candidates in one batch call, ranks
// candidates by cosine similarity to the query, filters by threshold, and
// truncates to topK when topK > 0. Blank candidates are skipped (the client
// filters and warns about them); ties keep their original candidate order.
func (p *Pipeline) FindSimilar(ctx context.Context, query string, candidates []string, threshold float64, topK int) ([]Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	batch, err := p.embedder.EmbedBatch(ctx, append([]string{query}, candidates...))
	if err != nil {
		return nil, err
	}

	vectors := make([]vectormath.Vector, len(candidates)+1)
	for _, e := range batch.Embeddings {
		if e.OriginalIndex >= 0 && e.OriginalIndex < len(vectors) {
			vectors[e.OriginalIndex] = e.Embedding
		}
	}

	queryVec := vectors[0]
	if queryVec == nil {
		return nil, ErrEmptyQuery
	}

	var matches []Match
	for i, candidate := range candidates {
		vec := vectors[i+1]
		if vec == nil {
			continue
		}
		sim, err := vectormath.CosineSimilarity(queryVec, vec)
		if err != nil {
			return nil, err
		}
		if sim >= threshold {
			matches = append(matches, Match{Text: candidate, Index: i, Similarity: sim})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if topK > 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}
