package tokenizer

import (
	"errors"
	"strings"
	"testing"

	"github.com/born-ml/strata/internal/backend/cpu"
	"github.com/born-ml/strata/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordTokenizer maps each whitespace-separated word to its length.
type wordTokenizer struct{}

func (wordTokenizer) Encode(text string) ([]int32, error) {
	if strings.Contains(text, "!") {
		return nil, errors.New("unsupported character")
	}
	words := strings.Fields(text)
	ids := make([]int32, len(words))
	for i, w := range words {
		ids[i] = int32(len(w))
	}
	return ids, nil
}

func (wordTokenizer) Decode([]int32) (string, error) { return "", nil }
func (wordTokenizer) VocabSize() int { return 32 }
func (wordTokenizer) Name() string { return "words" }

func TestBatch_Padding(t *testing.T) {
	batch, err := Batch(wordTokenizer{}, []string{"a bb ccc", "dddd", ""}, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, batch.Size)
	assert.Equal(t, 3, batch.SeqLen)
	assert.Equal(t, []int{3, 1, 0}, batch.Lengths)
	assert.Equal(t, []int32{
		1, 2, 3,
		4, PadID, PadID,
		PadID, PadID, PadID,
	}, batch.IDs)

	assert.Equal(t, []int32{4}, batch.Row(1))
	assert.Empty(t, batch.Row(2))
}

func TestBatch_Truncation(t *testing.T) {
	batch, err := Batch(wordTokenizer{}, []string{"a bb ccc dddd", "e"}, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, batch.SeqLen)
	assert.Equal(t, []int32{1, 2, 1, PadID}, batch.IDs)
	assert.Equal(t, []int{2, 1}, batch.Lengths)
}

func TestBatch_AllEmpty(t *testing.T) {
	batch, err := Batch(wordTokenizer{}, []string{"", " "}, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, batch.SeqLen)
	assert.Equal(t, []int32{PadID, PadID}, batch.IDs)
}

func TestBatch_Errors(t *testing.T) {
	_, err := Batch(wordTokenizer{}, nil, 0)
	assert.ErrorIs(t, err, ErrEmptyBatch)

	_, err = Batch(wordTokenizer{}, []string{"ok", "bad!"}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text 1")
}

func TestIndexTensor(t *testing.T) {
	backend := cpu.New()
	batch, err := Batch(wordTokenizer{}, []string{"a bb", "ccc"}, 0)
	require.NoError(t, err)

	indices, err := IndexTensor(batch, backend)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 2}, indices.Shape())
	assert.Equal(t, tensor.Int32, indices.DType())
	assert.Equal(t, []int32{1, 2, 3, PadID}, indices.Data())

	// The tensor owns its storage.
	indices.Data()[0] = 9
	assert.Equal(t, int32(1), batch.IDs[0])
}
