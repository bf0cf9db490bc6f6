package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MockingJ4y/rag-knowledge-assistant/internal/domain"
)

func TestBuildMessages_IncludesCitationsAndSeparator(t *testing.T) {
	results := []domain.RankedResult{
		{Record: domain.VectorRecord{DocumentName: "guide.txt", ChunkIndex: 0, ChunkText: "first chunk"}, Score: 0.9},
		{Record: domain.VectorRecord{DocumentName: "manual.pdf", ChunkIndex: 4, ChunkText: "second chunk"}, Score: 0.5},
	}

	msgs := BuildMessages(results, "what does the guide say?")
	require.Len(t, msgs, 4)

	assert.Equal(t, "system", msgs[0].Role)

	ctx := msgs[1]
	assert.Equal(t, "user", ctx.Role)
	assert.Contains(t, ctx.Content, `[Document "guide.txt", chunk 1]`)
	assert.Contains(t, ctx.Content, `[Document "manual.pdf", chunk 5]`)
	assert.Contains(t, ctx.Content, "first chunk")
	assert.Contains(t, ctx.Content, "second chunk")
	assert.Contains(t, ctx.Content, chunkSeparator)

	assert.Equal(t, "assistant", msgs[2].Role)
	assert.Equal(t, Message{Role: "user", Content: "what does the guide say?"}, msgs[3])
}

func TestBuildMessages_NoContext(t *testing.T) {
	msgs := BuildMessages(nil, "hello?")
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, "hello?", msgs[1].Content)
}
