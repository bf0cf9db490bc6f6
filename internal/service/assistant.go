// Package service wires the chunking, embedding, storage, and retrieval
// components behind the operations the UI layer calls. The Assistant owns
// all session state; there are no package-level globals.
package service

import (
	"fmt"
	"sync"

	"github.com/MockingJ4y/rag-knowledge-assistant/internal/domain"
	"github.com/MockingJ4y/rag-knowledge-assistant/internal/stats"
)

// Assistant holds the documents and vectors of one session. A single mutex
// serializes mutations so a batch ingest never interleaves with a delete;
// queries read a consistent store snapshot.
type Assistant struct {
	mu        sync.Mutex
	chunker   domain.Chunker
	embedder  domain.Embedder
	store     domain.VectorStore
	retriever domain.Retriever
	documents []domain.Document
}

func NewAssistant(chunker domain.Chunker, embedder domain.Embedder, store domain.VectorStore, retriever domain.Retriever) *Assistant {
	return &Assistant{
		chunker:   chunker,
		embedder:  embedder,
		store:     store,
		retriever: retriever,
	}
}

// Ingest chunks and embeds a document's text and inserts the resulting
// records into the store. It returns the number of chunks created. The
// document text is recorded only as chunks; chunk parameters are validated
// by the chunker before any state changes.
func (a *Assistant) Ingest(doc domain.Document, chunkSize, overlap int) (int, error) {
	chunks, err := a.chunker.Chunk(doc.Text, chunkSize, overlap)
	if err != nil {
		return 0, err
	}

	records := make([]domain.VectorRecord, 0, len(chunks))
	for i, text := range chunks {
		vec, err := a.embedder.Embed(text)
		if err != nil {
			return 0, fmt.Errorf("embed chunk %d of %q: %w", i, doc.Name, err)
		}
		records = append(records, domain.VectorRecord{
			ID:           fmt.Sprintf("%s:%d", doc.ID, i),
			DocumentID:   doc.ID,
			DocumentName: doc.Name,
			ChunkIndex:   i,
			ChunkText:    text,
			Embedding:    vec,
		})
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.store.Insert(records); err != nil {
		return 0, err
	}
	doc.ChunkCount = len(records)
	a.documents = append(a.documents, doc)
	return len(records), nil
}

// DeleteDocument removes a document and every record derived from it.
// Unknown IDs are a no-op.
func (a *Assistant) DeleteDocument(documentID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.store.RemoveByDocument(documentID); err != nil {
		return err
	}
	kept := a.documents[:0]
	for _, d := range a.documents {
		if d.ID != documentID {
			kept = append(kept, d)
		}
	}
	a.documents = kept
	return nil
}

// Clear drops all documents and vectors, returning the session to its
// initial empty state.
func (a *Assistant) Clear() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.store.Clear(); err != nil {
		return err
	}
	a.documents = nil
	return nil
}

// Query ranks all stored chunks against the query text and returns the topK
// best matches.
func (a *Assistant) Query(query string, topK int) ([]domain.RankedResult, error) {
	return a.retriever.Rank(query, topK)
}

// Documents returns a snapshot of the ingested documents in upload order.
func (a *Assistant) Documents() []domain.Document {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.Document, len(a.documents))
	copy(out, a.documents)
	return out
}

// Stats projects counts from the store as it is right now. Both reads
// happen under the mutation lock so an in-flight ingest or delete can never
// show up in one count but not the other.
func (a *Assistant) Stats() domain.Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return stats.Compute(a.documents, a.store.All())
}
