package embeddings

import "errors"

// Domain errors for embedding operations. Provider failures are wrapped with
// fmt.Errorf("%w: ...") so callers can match them with errors.Is while still
// seeing the provider's message.
var (
	ErrAPIKeyRequired        = errors.New("API key is required")
	ErrEmptyText             = errors.New("text cannot be empty")
	ErrEmptyResponse         = errors.New("provider returned no embedding data")
	ErrUnexpectedResponse    = errors.New("provider returned an unexpected response")
	ErrRateLimitExceeded     = errors.New("rate limit exceeded")
	ErrContextLengthExceeded = errors.New("text exceeds maximum context length")
)
