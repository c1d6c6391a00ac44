// Package semantic layers embedding-aware operations on top of structural
// chunking: merging adjacent chunks that say the same thing, and ranking
// candidate texts against a query.
//
// # Pipeline
//
// A Pipeline wraps an Embedder (typically *embeddings.Client) and exposes the
// two embedding-backed operations:
//
//	client, _ := embeddings.New(cfg)
//	pipeline, err := semantic.New(client)
//	if err != nil {
//	    return err
//	}
//
//	res, err := pipeline.ChunkTextSemantic(ctx, document, semantic.DefaultOptions())
//	switch res.Mode {
//	case semantic.ModeSemantic:
//	    // merge pass ran
//	case semantic.ModeStructural:
//	    // merge skipped or degraded; res.Degraded holds the cause if any
//	}
//
// # Fail-soft composition
//
// Semantic merging is an enhancement, never a gate: if the embedding call
// fails for any reason, ChunkTextSemantic returns the purely structural chunk
// sequence with Mode set to ModeStructural and the failure recorded in
// Result.Degraded. Callers that need the distinction branch on the tag; the
// baseline result is always available.
//
// # Merging
//
// MergeChunks is a single greedy forward pass: adjacent chunks merge when
// both have embeddings, their cosine similarity clears the threshold, and the
// combined content stays within 1.5x the structural chunk size. A chunk with
// no embedding is a hard boundary rather than an error. Greedy and
// order-dependent by design.
//
// # Similarity search
//
//	matches, err := pipeline.FindSimilar(ctx, query, candidates, 0.75, 10)
//
// embeds the query and candidates in one batch and returns candidates
// scoring at or above the threshold, best first.
package semantic
