package semantic

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/moleary1107/etownz-grants-sub008/pkg/chunker"
	"github.com/moleary1107/etownz-grants-sub008/pkg/embeddings"
	"github.com/moleary1107/etownz-grants-sub008/pkg/logger"
	"github.com/moleary1107/etownz-grants-sub008/pkg/vectormath"
)

// Embedder is the seam to the embedding provider. *embeddings.Client
// satisfies it; tests substitute a mock.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) (*embeddings.BatchResult, error)
}

// Mode tags which path produced a chunking result.
type Mode string

const (
	// ModeStructural means the chunks come from splitting alone, either
	// because the merge pass was disabled or because it degraded.
	ModeStructural Mode = "structural"
	// ModeSemantic means the merge pass ran over the structural chunks.
	ModeSemantic Mode = "semantic"
)

// Result is a chunking outcome with its provenance made explicit. When the
// semantic enhancement fails, Chunks holds the structural sequence, Mode is
// ModeStructural, and Degraded carries the cause; the soft-failure path is
// visible here rather than hidden in a recover.
type Result struct {
	Chunks   []chunker.TextChunk
	Mode     Mode
	Degraded error
}

// Pipeline orchestrates structural chunking, batch embedding, and the
// semantic merge pass. Each invocation operates on its own local state, so a
// Pipeline is safe for concurrent use.
type Pipeline struct {
	embedder Embedder
	log      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger for degradation warnings.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// New creates a pipeline around the given embedder.
func New(embedder Embedder, opts ...Option) (*Pipeline, error) {
	if embedder == nil {
		return nil, ErrEmbedderNotSet
	}

	p := &Pipeline{
		embedder: embedder,
		log:      logger.New(logger.WithAttr(slog.String("component", "semantic"))),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// ChunkText splits text structurally, with no embedding calls.
func ChunkText(text string, opts Options) []chunker.TextChunk {
	return chunker.Split(text, opts.Options)
}

// ChunkTextSemantic splits text structurally and then merges adjacent chunks
// whose embeddings clear the similarity threshold. Any failure in the
// embedding phase degrades to the structural result instead of erroring: the
// returned Result carries ModeStructural and the cause in Degraded. A
// semantic-enhancement failure never blocks the baseline outcome.
func (p *Pipeline) ChunkTextSemantic(ctx context.Context, text string, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	structural := ChunkText(text, opts)
	if !opts.UseSemanticBoundaries || len(structural) <= 1 {
		return &Result{Chunks: structural, Mode: ModeStructural}, nil
	}

	log := p.log.With(slog.String("run_id", uuid.NewString()))

	texts := make([]string, len(structural))
	for i, c := range structural {
		texts[i] = c.Content
	}

	batch, err := p.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		log.WarnContext(ctx, "semantic merge degraded to structural chunks",
			slog.Int("chunks", len(structural)),
			logger.Error(err))
		return &Result{Chunks: structural, Mode: ModeStructural, Degraded: err}, nil
	}

	vectors := make([]vectormath.Vector, len(structural))
	for _, e := range batch.Embeddings {
		if e.OriginalIndex >= 0 && e.OriginalIndex < len(vectors) {
			vectors[e.OriginalIndex] = e.Embedding
		}
	}

	merged := MergeChunks(structural, vectors, opts.SimilarityThreshold, opts.MaxChunkSize)
	log.DebugContext(ctx, "semantic merge complete",
		slog.Int("structural", len(structural)),
		slog.Int("merged", len(merged)))

	return &Result{Chunks: merged, Mode: ModeSemantic}, nil
}
