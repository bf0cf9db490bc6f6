package llm

import (
	"fmt"
	"strings"

	"github.com/MockingJ4y/rag-knowledge-assistant/internal/domain"
)

const systemPrompt = `You are a knowledge assistant. You answer questions using only the document excerpts provided as context.

Cite the document name and chunk number you drew an answer from. If the context does not contain enough information to answer, say so instead of guessing.`

const chunkSeparator = "\n\n---\n\n"

// Message represents a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildMessages assembles the chat payload from retrieved chunks and the
// user's question. Each chunk carries a document/chunk-number citation
// header so the model can attribute its answer.
func BuildMessages(results []domain.RankedResult, question string) []Message {
	msgs := []Message{{Role: "system", Content: systemPrompt}}

	if len(results) > 0 {
		var ctx strings.Builder
		ctx.WriteString("Context from the uploaded documents:\n\n")
		for i, r := range results {
			if i > 0 {
				ctx.WriteString(chunkSeparator)
			}
			fmt.Fprintf(&ctx, "[Document %q, chunk %d]\n%s",
				r.Record.DocumentName, r.Record.ChunkIndex+1, r.Record.ChunkText)
		}
		msgs = append(msgs, Message{Role: "user", Content: ctx.String()})
		msgs = append(msgs, Message{Role: "assistant", Content: "I've reviewed the document context. What would you like to know?"})
	}

	msgs = append(msgs, Message{Role: "user", Content: question})
	return msgs
}
