package vectormath

import "errors"

// Domain errors for vector operations. Callers can inspect them with
// errors.Is after unwrapping whatever context was added on top.
var (
	ErrDimensionMismatch = errors.New("vector dimensions do not match")
	ErrNoVectors         = errors.New("no vectors to average")
)
