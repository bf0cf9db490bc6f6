package chunker

import (
	"github.com/MockingJ4y/rag-knowledge-assistant/internal/domain"
)

// FixedChunker splits text into fixed-size character spans with overlap.
// The final span may be shorter than the configured size.
type FixedChunker struct{}

func NewFixedChunker() *FixedChunker { return &FixedChunker{} }

// Chunk emits text[cursor : cursor+chunkSize] windows, advancing the cursor
// by chunkSize-overlap each step until a window reaches the end of the text.
// overlap >= chunkSize would make the step non-positive and never terminate,
// so it is rejected up front.
func (c *FixedChunker) Chunk(text string, chunkSize, overlap int) ([]string, error) {
	if chunkSize <= 0 {
		return nil, domain.ErrInvalidChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		return nil, domain.ErrInvalidOverlap
	}
	if len(text) == 0 {
		return nil, nil
	}
	step := chunkSize - overlap
	var chunks []string
	cursor := 0
	for cursor < len(text) {
		end := cursor + chunkSize
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[cursor:end])
		if end == len(text) {
			break
		}
		cursor += step
	}
	return chunks, nil
}
