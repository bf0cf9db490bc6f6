// Package stats derives session statistics from current store contents.
// It holds no state of its own.
package stats

import "github.com/MockingJ4y/rag-knowledge-assistant/internal/domain"

// Compute projects document and chunk counts plus average chunk length from
// the documents and records as they are right now. Empty input yields zeros,
// never a division by zero.
func Compute(documents []domain.Document, records []domain.VectorRecord) domain.Stats {
	st := domain.Stats{
		TotalDocs:   len(documents),
		TotalChunks: len(records),
	}
	if len(records) == 0 {
		return st
	}
	total := 0
	for _, r := range records {
		total += len(r.ChunkText)
	}
	st.AvgChunkSize = float64(total) / float64(len(records))
	return st
}
