package nn

import (
	"testing"

	"github.com/born-ml/strata/internal/backend/cpu"
	"github.com/born-ml/strata/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedding_Creation(t *testing.T) {
	backend := cpu.New()
	embed := NewEmbedding(100, 16, newRNG(1), backend)

	assert.Equal(t, 100, embed.NumEmbeddings())
	assert.Equal(t, 16, embed.EmbeddingDim())
	assert.Equal(t, tensor.Shape{100, 16}, embed.Weight().Shape())
	assert.Len(t, embed.Parameters(), 1)
}

func TestEmbedding_ForwardSelectsRows(t *testing.T) {
	backend := cpu.New()
	const (
		num = 10
		dim = 4
	)
	embed := NewEmbedding(num, dim, newRNG(2), backend)
	weight := embed.Weight().Tensor().Data()

	indices := []int32{0, 3, 9, 3, 7, 1}
	input, err := tensor.FromSlice(indices, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	output := embed.Forward(input)
	require.Equal(t, tensor.Shape{2, 3, dim}, output.Shape())

	data := output.Data()
	for pos, idx := range indices {
		got := data[pos*dim : (pos+1)*dim]
		want := weight[int(idx)*dim : (int(idx)+1)*dim]
		assert.Equal(t, want, got, "position %d index %d", pos, idx)
	}
}

func TestEmbedding_WithWeight(t *testing.T) {
	backend := cpu.New()
	weight := fromSlice(t, backend, tensor.Shape{3, 2}, 1, 2, 3, 4, 5, 6)
	embed := NewEmbeddingWithWeight(weight)

	input, err := tensor.FromSlice([]int32{2, 0}, tensor.Shape{1, 2}, backend)
	require.NoError(t, err)

	output := embed.Forward(input)
	assert.Equal(t, tensor.Shape{1, 2, 2}, output.Shape())
	assert.Equal(t, []float32{5, 6, 1, 2}, output.Data())

	assert.Panics(t, func() {
		NewEmbeddingWithWeight(fromSlice(t, backend, tensor.Shape{6}, 1, 2, 3, 4, 5, 6))
	})
}

func TestEmbedding_ModeDoesNotChangeOutput(t *testing.T) {
	backend := cpu.New()
	embed := NewEmbedding(5, 3, newRNG(3), backend)
	input, err := tensor.FromSlice([]int32{4, 2}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)

	train := embed.Forward(input).Data()
	Eval(embed)
	assert.Equal(t, train, embed.Forward(input).Data())
}

func TestEmbedding_ForwardPanics(t *testing.T) {
	backend := cpu.New()
	embed := NewEmbedding(5, 3, newRNG(4), backend)

	tests := []struct {
		name    string
		indices []int32
		shape   tensor.Shape
	}{
		{"index too large", []int32{0, 5}, tensor.Shape{1, 2}},
		{"negative index", []int32{-1, 0}, tensor.Shape{1, 2}},
		{"1D input", []int32{0, 1}, tensor.Shape{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := tensor.FromSlice(tt.indices, tt.shape, backend)
			require.NoError(t, err)
			assert.Panics(t, func() { embed.Forward(input) })
		})
	}
}

func TestEmbedding_StateDictRoundTrip(t *testing.T) {
	backend := cpu.New()
	src := NewEmbedding(4, 2, newRNG(5), backend)
	dst := NewEmbedding(4, 2, newRNG(6), backend)

	require.NoError(t, dst.LoadStateDict(src.StateDict()))
	assert.Equal(t, src.Weight().Tensor().Data(), dst.Weight().Tensor().Data())
	assert.Same(t, dst.Weight(), dst.NamedParameters()["weight"])

	wrong := NewEmbedding(5, 2, newRNG(7), backend)
	assert.ErrorIs(t, dst.LoadStateDict(wrong.StateDict()), ErrShapeMismatch)
}
