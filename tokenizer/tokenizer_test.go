package tokenizer_test

import (
	"testing"

	"github.com/born-ml/strata/backend/cpu"
	"github.com/born-ml/strata/nn"
	"github.com/born-ml/strata/tensor"
	"github.com/born-ml/strata/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// byteTokenizer emits one token per byte.
type byteTokenizer struct{}

func (byteTokenizer) Encode(text string) ([]int32, error) {
	ids := make([]int32, len(text))
	for i := 0; i < len(text); i++ {
		ids[i] = int32(text[i])
	}
	return ids, nil
}

func (byteTokenizer) Decode(ids []int32) (string, error) {
	b := make([]byte, len(ids))
	for i, id := range ids {
		b[i] = byte(id)
	}
	return string(b), nil
}

func (byteTokenizer) VocabSize() int { return 256 }

func (byteTokenizer) Name() string { return "bytes" }

func TestBatchFeedsEmbedding(t *testing.T) {
	backend := cpu.New()

	batch, err := tokenizer.Batch(byteTokenizer{}, []string{"hello", "hi"}, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, batch.SeqLen)
	assert.Equal(t, []int32{'h', 'i', tokenizer.PadID, tokenizer.PadID}, batch.IDs[4:])

	indices, err := tokenizer.IndexTensor(batch, backend)
	require.NoError(t, err)

	weight := tensor.Zeros[float32](tensor.Shape{256, 2}, backend)
	weight.Set(1, 'h', 0)
	weight.Set(2, 'i', 1)
	embed := nn.NewEmbeddingWithWeight(weight)

	vectors := embed.Forward(indices)
	require.Equal(t, tensor.Shape{2, 4, 2}, vectors.Shape())
	assert.Equal(t, []float32{1, 0}, vectors.Data()[0:2])
	assert.Equal(t, []float32{0, 2}, vectors.Data()[10:12])

	_, err = tokenizer.Batch(byteTokenizer{}, nil, 0)
	assert.ErrorIs(t, err, tokenizer.ErrEmptyBatch)
}
