package domain

import "time"

// Document represents a single text document loaded into the session.
type Document struct {
	ID         string
	Name       string
	SizeBytes  int64
	Text       string
	CreatedAt  time.Time
	ChunkCount int
}

// VectorRecord is one embedded chunk together with its provenance.
// Records sharing a DocumentID live and die together.
type VectorRecord struct {
	ID           string // DocumentID + ":" + ChunkIndex
	DocumentID   string
	DocumentName string
	ChunkIndex   int
	ChunkText    string
	Embedding    []float64
}

// RankedResult is a VectorRecord with its similarity score for one query.
// Produced per query, never stored.
type RankedResult struct {
	Record VectorRecord
	Score  float64
}

// Stats is a read-only projection over the current session contents.
type Stats struct {
	TotalDocs    int
	TotalChunks  int
	AvgChunkSize float64
}

// Chunker splits raw document text into retrieval-sized spans.
type Chunker interface {
	Chunk(text string, chunkSize, overlap int) ([]string, error)
}

// Embedder converts free text into a fixed-dimension numeric vector.
type Embedder interface {
	Name() string
	Dimension() int
	Embed(text string) ([]float64, error)
}

// VectorStore holds embedded chunks and supports document-scoped removal.
type VectorStore interface {
	Insert(records []VectorRecord) error
	RemoveByDocument(documentID string) error
	Clear() error
	All() []VectorRecord
	Len() int
}

// Retriever ranks stored records against a query by similarity.
type Retriever interface {
	Rank(query string, topK int) ([]RankedResult, error)
}
