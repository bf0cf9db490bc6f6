// Package retriever ranks stored chunks against a query embedding by
// brute-force cosine similarity. The corpus is small and in-memory, so a
// linear scan beats any index in both simplicity and constant factors.
package retriever

import (
	"sort"

	"github.com/MockingJ4y/rag-knowledge-assistant/internal/domain"
)

// Retriever embeds queries and scores them against a vector store.
type Retriever struct {
	embedder domain.Embedder
	store    domain.VectorStore
}

func New(embedder domain.Embedder, store domain.VectorStore) *Retriever {
	return &Retriever{embedder: embedder, store: store}
}

// Rank returns the topK highest-scoring records for the query, sorted by
// descending score. Stored and query vectors are unit-normalized, so the
// dot product is the cosine similarity. Ties keep insertion order.
func (r *Retriever) Rank(query string, topK int) ([]domain.RankedResult, error) {
	if topK < 0 {
		return nil, domain.ErrNegativeTopK
	}
	if topK == 0 {
		return nil, nil
	}
	queryVec, err := r.embedder.Embed(query)
	if err != nil {
		return nil, err
	}

	records := r.store.All()
	results := make([]domain.RankedResult, 0, len(records))
	for _, rec := range records {
		if len(rec.Embedding) != len(queryVec) {
			return nil, domain.DimensionError(len(queryVec), len(rec.Embedding))
		}
		results = append(results, domain.RankedResult{Record: rec, Score: dot(queryVec, rec.Embedding)})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
