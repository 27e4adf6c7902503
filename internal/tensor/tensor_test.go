package tensor_test

import (
	"math/rand"
	"testing"

	"github.com/born-ml/strata/internal/backend/cpu"
	"github.com/born-ml/strata/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	backend := cpu.New()
	data := []float32{1, 2, 3, 4, 5, 6}

	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)
	assert.Equal(t, data, x.Data())

	// The slice is copied.
	data[0] = 100
	assert.Equal(t, float32(1), x.At(0, 0))

	_, err = tensor.FromSlice(data, tensor.Shape{4}, backend)
	assert.Error(t, err)
}

func TestTensor_Indexing(t *testing.T) {
	backend := cpu.New()
	x := tensor.Zeros[int64](tensor.Shape{2, 3}, backend)

	x.Set(7, 1, 2)
	assert.Equal(t, int64(7), x.At(1, 2))
	assert.Equal(t, []int64{0, 0, 0, 0, 0, 7}, x.Data())

	assert.Panics(t, func() { x.At(2, 0) })
	assert.Panics(t, func() { x.At(0) })
	assert.Panics(t, func() { x.Item() })

	single := tensor.Full[float64](tensor.Shape{1}, 3.5, backend)
	assert.InDelta(t, 3.5, single.Item(), 0)
}

func TestTensor_CloneIsIndependent(t *testing.T) {
	backend := cpu.New()
	x := tensor.Ones[float32](tensor.Shape{3}, backend)

	c := x.Clone()
	c.Set(9, 0)

	assert.Equal(t, []float32{1, 1, 1}, x.Data())
	assert.Equal(t, "Tensor[float32][3] on CPU", x.String())
}

func TestTensor_ReshapeCopies(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	y := x.View(3, 2)
	assert.Equal(t, tensor.Shape{3, 2}, y.Shape())
	assert.Equal(t, x.Data(), y.Data())

	y.Set(0, 0, 0)
	assert.Equal(t, float32(1), x.At(0, 0))

	assert.Panics(t, func() { x.Reshape(4, 2) })
}

func TestTensor_MathChain(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{1, 4, 9, 16}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	assert.Equal(t, []float32{1, 2, 3, 4}, x.Sqrt().Data())
	assert.Equal(t, []float32{1, 2, 3, 4}, x.Pow(0.5).Data())
	assert.InDeltaSlice(t, []float32{1, 0.5, 1.0 / 3, 0.25}, x.Rsqrt().Data(), 1e-6)
	assert.Equal(t, []float32{5, 25}, x.SumDim(1, false).Data())
	assert.Equal(t, tensor.Shape{1, 2}, x.SumDim(0, true).Shape())
	assert.Equal(t, []float32{0.5, 2, 4.5, 8}, x.DivScalar(2).Data())
	assert.Equal(t, []float32{1, 2, 3, 4}, x.Div(x.Sqrt()).Data())
}

func TestTensor_LayerNorm(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(1))

	x := tensor.Randn[float64](tensor.Shape{3, 5}, rng, backend)
	w := tensor.Ones[float64](tensor.Shape{5}, backend)
	b := tensor.Zeros[float64](tensor.Shape{5}, backend)

	fused := x.LayerNorm(w, b, 1e-5)
	manual := x.Sub(x.MeanDim(-1, true)).Div(x.VarDim(-1, true).AddScalar(1e-5).Sqrt())
	assert.InDeltaSlice(t, manual.Data(), fused.Data(), 1e-12)
}

func TestRandomCreation_NilRNGPanics(t *testing.T) {
	backend := cpu.New()
	assert.Panics(t, func() { tensor.Randn[float32](tensor.Shape{2}, nil, backend) })
	assert.Panics(t, func() { tensor.Bernoulli[float32](tensor.Shape{2}, 0.5, nil, backend) })
}
