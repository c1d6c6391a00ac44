package embeddings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/moleary1107/etownz-grants-sub008/pkg/logger"
	"github.com/moleary1107/etownz-grants-sub008/pkg/vectormath"
)

const (
	defaultBatchSize     = 100
	defaultBatchInterval = 100 * time.Millisecond
	defaultHTTPTimeout   = 30 * time.Second
)

// Usage accumulates the provider's token accounting for one call. For batched
// calls it is the sum across all issued requests.
type Usage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Result is the outcome of embedding a single text.
type Result struct {
	Embedding vectormath.Vector `json:"embedding"`
	Usage     Usage             `json:"usage"`
}

// IndexedEmbedding pairs an embedding with the position of its source text in
// the caller's original input slice, so filtered blanks don't shift the
// mapping.
type IndexedEmbedding struct {
	Embedding     vectormath.Vector `json:"embedding"`
	OriginalIndex int               `json:"original_index"`
}

// BatchResult is the outcome of embedding a batch of texts.
type BatchResult struct {
	Embeddings []IndexedEmbedding `json:"embeddings"`
	Usage      Usage              `json:"usage"`
}

// Client talks to an OpenAI-compatible embeddings endpoint. It is explicitly
// constructed and owned by the caller; there is no package-level instance.
// All methods are safe for concurrent use: every call operates on its own
// local state and the limiter is internally synchronized.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	batchSize  int
	limiter    *rate.Limiter
	httpClient *http.Client
	log        *slog.Logger
}

// New creates an embedding client from cfg, applying defaults for unset
// optional fields. Returns ErrAPIKeyRequired when no key is configured.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1/embeddings"
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.BatchInterval <= 0 {
		cfg.BatchInterval = defaultBatchInterval
	}
	if cfg.HTTPClient == nil {
		timeout := cfg.HTTPTimeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.New(logger.WithAttr(slog.String("component", "embeddings")))
	}

	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		batchSize:  cfg.BatchSize,
		limiter:    rate.NewLimiter(rate.Every(cfg.BatchInterval), 1),
		httpClient: cfg.HTTPClient,
		log:        cfg.Logger,
	}, nil
}

// Model returns the model name used for every request.
func (c *Client) Model() string {
	return c.model
}

// Dimensions returns the embedding vector width for the client's model.
func (c *Client) Dimensions() int {
	return ModelDimensions(c.model)
}

// Embed converts a single text into a vector embedding.
// Returns ErrEmptyText for blank input and ErrEmptyResponse when the
// provider responds without data.
func (c *Client) Embed(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	resp, err := c.request(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, ErrEmptyResponse
	}

	return &Result{
		Embedding: vectormath.Vector(resp.Data[0].Embedding),
		Usage:     resp.Usage,
	}, nil
}

// EmbedBatch converts multiple texts into vectors. Inputs are partitioned
// into fixed-size batches issued strictly sequentially, with the configured
// interval between requests; this throttle is deliberate, not a missed
// parallelism opportunity. Token usage is accumulated across batches.
//
// Blank inputs are filtered out up front and logged as a warning; the
// returned embeddings carry each text's original index so the caller's
// mapping survives the filtering. If any batch comes back empty the whole
// call fails - there is no partial-success path.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) (*BatchResult, error) {
	type input struct {
		text  string
		index int
	}

	kept := make([]input, 0, len(texts))
	for i, text := range texts {
		if strings.TrimSpace(text) != "" {
			kept = append(kept, input{text: text, index: i})
		}
	}
	if dropped := len(texts) - len(kept); dropped > 0 {
		c.log.WarnContext(ctx, "dropped blank inputs from embedding batch",
			slog.Int("dropped", dropped),
			slog.Int("remaining", len(kept)))
	}

	result := &BatchResult{Embeddings: make([]IndexedEmbedding, 0, len(kept))}
	if len(kept) == 0 {
		return result, nil
	}

	for start := 0; start < len(kept); start += c.batchSize {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		batch := kept[start:min(start+c.batchSize, len(kept))]
		batchTexts := make([]string, len(batch))
		for i, in := range batch {
			batchTexts[i] = in.text
		}

		resp, err := c.request(ctx, batchTexts)
		if err != nil {
			return nil, err
		}
		if len(resp.Data) == 0 {
			return nil, fmt.Errorf("%w: batch starting at input %d", ErrEmptyResponse, batch[0].index)
		}
		if len(resp.Data) != len(batch) {
			return nil, fmt.Errorf("%w: got %d embeddings for %d inputs", ErrUnexpectedResponse, len(resp.Data), len(batch))
		}

		for i, item := range resp.Data {
			result.Embeddings = append(result.Embeddings, IndexedEmbedding{
				Embedding:     vectormath.Vector(item.Embedding),
				OriginalIndex: batch[i].index,
			})
		}
		result.Usage.PromptTokens += resp.Usage.PromptTokens
		result.Usage.TotalTokens += resp.Usage.TotalTokens
	}

	return result, nil
}

// Provider wire contract.

type apiRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type apiDataItem struct {
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
}

type apiResponse struct {
	Data  []apiDataItem `json:"data"`
	Model string        `json:"model"`
	Usage Usage         `json:"usage"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// request issues one embeddings call. No retries: provider errors propagate
// to the caller immediately.
func (c *Client) request(ctx context.Context, texts []string) (*apiResponse, error) {
	body, err := json.Marshal(apiRequest{Model: c.model, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embeddings request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp apiErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			msg := errResp.Error.Message
			if strings.Contains(msg, "rate limit") {
				return nil, fmt.Errorf("%w: %s", ErrRateLimitExceeded, msg)
			}
			if strings.Contains(msg, "context length") {
				return nil, fmt.Errorf("%w: %s", ErrContextLengthExceeded, msg)
			}
			return nil, fmt.Errorf("provider error: %s", msg)
		}
		return nil, fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	return &parsed, nil
}
