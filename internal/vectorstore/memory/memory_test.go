package memory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MockingJ4y/rag-knowledge-assistant/internal/domain"
)

func record(docID string, idx int, embedding []float64) domain.VectorRecord {
	return domain.VectorRecord{
		ID:           fmt.Sprintf("%s:%d", docID, idx),
		DocumentID:   docID,
		DocumentName: docID + ".txt",
		ChunkIndex:   idx,
		ChunkText:    fmt.Sprintf("chunk %d of %s", idx, docID),
		Embedding:    embedding,
	}
}

func TestInsertAndAll_PreservesOrder(t *testing.T) {
	s := NewStore(2)

	err := s.Insert([]domain.VectorRecord{
		record("a", 0, []float64{1, 0}),
		record("a", 1, []float64{0, 1}),
	})
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a:0", all[0].ID)
	assert.Equal(t, "a:1", all[1].ID)
}

func TestInsert_RejectsDimensionMismatch(t *testing.T) {
	s := NewStore(2)

	err := s.Insert([]domain.VectorRecord{
		record("a", 0, []float64{1, 0}),
		record("a", 1, []float64{1, 0, 0}),
	})
	require.ErrorIs(t, err, domain.ErrDimensionMismatch)
	// The whole batch is rejected, not just the offending record.
	assert.Equal(t, 0, s.Len())
}

func TestRemoveByDocument_LeavesOthersUntouched(t *testing.T) {
	s := NewStore(2)

	require.NoError(t, s.Insert([]domain.VectorRecord{
		record("a", 0, []float64{1, 0}),
		record("b", 0, []float64{0, 1}),
		record("a", 1, []float64{1, 0}),
		record("b", 1, []float64{0, 1}),
	}))

	require.NoError(t, s.RemoveByDocument("a"))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "b:0", all[0].ID)
	assert.Equal(t, "b:1", all[1].ID)
	assert.Equal(t, "chunk 0 of b", all[0].ChunkText)
}

func TestRemoveByDocument_UnknownIsNoop(t *testing.T) {
	s := NewStore(2)

	require.NoError(t, s.Insert([]domain.VectorRecord{record("a", 0, []float64{1, 0})}))
	require.NoError(t, s.RemoveByDocument("missing"))
	assert.Equal(t, 1, s.Len())
}

func TestClear_EmptiesStore(t *testing.T) {
	s := NewStore(2)

	require.NoError(t, s.Insert([]domain.VectorRecord{
		record("a", 0, []float64{1, 0}),
		record("b", 0, []float64{0, 1}),
	}))
	require.NoError(t, s.Clear())

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
}

func TestAll_ReturnsSnapshotCopy(t *testing.T) {
	s := NewStore(2)

	require.NoError(t, s.Insert([]domain.VectorRecord{record("a", 0, []float64{1, 0})}))

	snap := s.All()
	snap[0].ChunkText = "mutated"

	assert.Equal(t, "chunk 0 of a", s.All()[0].ChunkText)
}
