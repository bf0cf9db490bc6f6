package domain

import (
	"errors"
	"fmt"
)

// Configuration errors: invalid caller-supplied parameters, rejected before
// any work is done.
var (
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
	ErrInvalidOverlap   = errors.New("chunk overlap must be non-negative and smaller than chunk size")
	ErrNegativeTopK     = errors.New("topK must be non-negative")
)

// ErrDimensionMismatch indicates stored or queried embeddings of differing
// dimensionality. This is a programming defect, not a user error.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// DimensionError wraps ErrDimensionMismatch with the offending sizes.
func DimensionError(want, got int) error {
	return fmt.Errorf("%w: want %d, got %d", ErrDimensionMismatch, want, got)
}
