// Package embeddings provides a client for OpenAI-compatible embedding
// endpoints with sequential batching, inter-batch throttling, and token usage
// accounting, plus pure heuristics for estimating token counts and costs.
//
// The client is an explicitly constructed object owned by the caller; nothing
// in this package holds global state.
//
// # Usage
//
//	cfg, err := embeddings.LoadConfig() // OPENAI_API_KEY et al from env
//	if err != nil {
//	    return err
//	}
//	client, err := embeddings.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	res, err := client.Embed(ctx, "grant application summary")
//	// res.Embedding, res.Usage.TotalTokens
//
//	batch, err := client.EmbedBatch(ctx, texts)
//	for _, e := range batch.Embeddings {
//	    // e.OriginalIndex maps back into texts
//	}
//
// # Batching and throttling
//
// EmbedBatch partitions inputs into fixed-size batches (100 by default) and
// issues one provider request per batch, strictly sequentially, waiting the
// configured BatchInterval between requests. A failed or empty batch fails
// the whole call; callers needing partial results must re-batch themselves.
//
// # Cost estimation
//
//	tokens := embeddings.EstimateTokens(text)            // ceil(len/4)
//	usd := embeddings.EstimateCost(tokens, cfg.Model)
//
// Both are character-count heuristics tuned for English text, not a
// tokenizer. Known models carry fixed dimension and price tables with a
// documented fallback for unrecognized names.
//
// # Error handling
//
// Validation failures (blank input) and provider failures (non-200 status,
// empty data) surface as sentinel errors; there are no automatic retries and
// no internal timeouts beyond the HTTP client's. Cancellation is the caller's
// context.
package embeddings
