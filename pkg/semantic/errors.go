package semantic

import "errors"

// Domain errors for the semantic pipeline.
var (
	ErrEmbedderNotSet = errors.New("embedder not set")
	ErrEmptyQuery     = errors.New("query cannot be empty")
)
