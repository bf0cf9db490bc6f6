// Package hash implements a deterministic hash-projection embedder. It is
// not a trained model: vectors carry no semantic meaning beyond character
// and position overlap, but they are a pure function of the input text,
// which keeps retrieval reproducible without any network dependency.
package hash

import (
	"math"
	"strings"
)

// Dimension is the fixed size of every produced vector.
const Dimension = 384

// Embedder projects text onto a fixed-size unit vector.
type Embedder struct{}

func NewEmbedder() *Embedder { return &Embedder{} }

// Name returns the identifier of this embedder implementation.
func (e *Embedder) Name() string { return "hash" }

// Dimension returns the dimensionality of the produced embedding vectors.
func (e *Embedder) Dimension() int { return Dimension }

// Embed lower-cases the text, splits it on whitespace, and scatters each
// character's code point into the accumulator at (wordIdx + charIdx*7) mod
// Dimension, then L2-normalizes. Text with no characters to accumulate
// yields the zero vector rather than dividing by a zero norm.
func (e *Embedder) Embed(text string) ([]float64, error) {
	vec := make([]float64, Dimension)
	words := strings.Fields(strings.ToLower(text))
	for idx, word := range words {
		for i, r := range []rune(word) {
			vec[(idx+i*7)%Dimension] += float64(r) / 1000.0
		}
	}
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return vec, nil
	}
	for i := range vec {
		vec[i] /= norm
	}
	return vec, nil
}
