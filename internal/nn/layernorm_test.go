package nn

import (
	"testing"

	"github.com/born-ml/strata/internal/backend/cpu"
	"github.com/born-ml/strata/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerNorm1d_Creation(t *testing.T) {
	backend := cpu.New()
	ln := NewLayerNorm1d(4, DefaultLayerNormEps, true, backend)

	assert.Equal(t, 4, ln.Dim())
	assert.InDelta(t, 1e-5, ln.Eps(), 0)
	assert.True(t, ln.Fused())
	assert.Equal(t, []float32{1, 1, 1, 1}, ln.Weight().Tensor().Data())
	assert.Equal(t, []float32{0, 0, 0, 0}, ln.Bias().Tensor().Data())
	assert.Len(t, ln.Parameters(), 2)

	ln.SetFused(false)
	assert.False(t, ln.Fused())
}

func TestLayerNorm1d_KnownValues(t *testing.T) {
	backend := cpu.New()

	// Row [1, 2, 3, 4]: mean 2.5, population variance 1.25.
	input := fromSlice(t, backend, tensor.Shape{1, 4}, 1, 2, 3, 4)
	want := []float64{-1.3416355, -0.4472118, 0.4472118, 1.3416355}

	for _, fused := range []bool{true, false} {
		ln := NewLayerNorm1d(4, DefaultLayerNormEps, fused, backend)
		output := ln.Forward(input)

		require.Equal(t, tensor.Shape{1, 4}, output.Shape())
		for i, v := range output.Data() {
			assert.InDelta(t, want[i], float64(v), 1e-5, "fused=%v index %d", fused, i)
		}
	}
}

func TestLayerNorm1d_FusedMatchesManual(t *testing.T) {
	backend := cpu.New()
	rng := newRNG(17)

	fused := NewLayerNorm1d(32, DefaultLayerNormEps, true, backend)
	manual := NewLayerNorm1d(32, DefaultLayerNormEps, false, backend)

	// Non-trivial affine parameters shared by both layers.
	gamma := tensor.Randn[float32](tensor.Shape{32}, rng, backend)
	beta := tensor.Randn[float32](tensor.Shape{32}, rng, backend)
	for _, ln := range []*LayerNorm1d[Backend]{fused, manual} {
		require.NoError(t, ln.Weight().Update(gamma))
		require.NoError(t, ln.Bias().Update(beta))
	}

	input := tensor.Randn[float32](tensor.Shape{8, 32}, rng, backend)
	got := fused.Forward(input).Data()
	want := manual.Forward(input).Data()

	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, float64(want[i]), float64(got[i]), 1e-5, "index %d", i)
	}
}

func TestLayerNorm1d_RowStatistics(t *testing.T) {
	backend := cpu.New()
	rng := newRNG(23)
	const dim = 64

	input := tensor.Randn[float32](tensor.Shape{6, dim}, rng, backend).MulScalar(3).AddScalar(7)

	for _, fused := range []bool{true, false} {
		output := NewLayerNorm1d(dim, DefaultLayerNormEps, fused, backend).Forward(input)
		data := output.Data()

		for r := 0; r < 6; r++ {
			row := data[r*dim : (r+1)*dim]
			var mean float64
			for _, v := range row {
				mean += float64(v)
			}
			mean /= dim

			var variance float64
			for _, v := range row {
				d := float64(v) - mean
				variance += d * d
			}
			variance /= dim

			assert.InDelta(t, 0, mean, 1e-5, "fused=%v row %d mean", fused, r)
			assert.InDelta(t, 1, variance, 1e-3, "fused=%v row %d variance", fused, r)
		}
	}
}

func TestLayerNorm1d_AffineParameters(t *testing.T) {
	backend := cpu.New()
	input := fromSlice(t, backend, tensor.Shape{2, 2}, 0, 2, 5, 1)

	for _, fused := range []bool{true, false} {
		ln := NewLayerNorm1d(2, 0, fused, backend)
		require.NoError(t, ln.Weight().Update(fromSlice(t, backend, tensor.Shape{2}, 2, 3)))
		require.NoError(t, ln.Bias().Update(fromSlice(t, backend, tensor.Shape{2}, 1, -1)))

		// With eps 0 every row normalizes to [-1, 1] or [1, -1].
		got := ln.Forward(input).Data()
		assert.InDeltaSlice(t, []float32{-1, 2, 3, -4}, got, 1e-6, "fused=%v", fused)
	}
}

func TestLayerNorm1d_ConstantRow(t *testing.T) {
	backend := cpu.New()
	input := tensor.Full[float32](tensor.Shape{1, 3}, 4, backend)

	for _, fused := range []bool{true, false} {
		output := NewLayerNorm1d(3, DefaultLayerNormEps, fused, backend).Forward(input)
		assert.Equal(t, []float32{0, 0, 0}, output.Data(), "fused=%v", fused)
	}
}

func TestLayerNorm1d_ForwardPanics(t *testing.T) {
	backend := cpu.New()
	ln := NewLayerNorm1d(4, DefaultLayerNormEps, true, backend)

	assert.Panics(t, func() {
		ln.Forward(tensor.Zeros[float32](tensor.Shape{2, 3}, backend))
	})
	assert.Panics(t, func() {
		ln.Forward(tensor.Zeros[float32](tensor.Shape{2, 2, 4}, backend))
	})
}

func TestLayerNorm1d_StateDictRoundTrip(t *testing.T) {
	backend := cpu.New()
	src := NewLayerNorm1d(3, DefaultLayerNormEps, true, backend)
	require.NoError(t, src.Weight().Update(fromSlice(t, backend, tensor.Shape{3}, 1, 2, 3)))

	dst := NewLayerNorm1d(3, DefaultLayerNormEps, true, backend)
	require.NoError(t, dst.LoadStateDict(src.StateDict()))
	assert.Equal(t, []float32{1, 2, 3}, dst.Weight().Tensor().Data())

	err := dst.LoadStateDict(map[string]*tensor.RawTensor{"weight": src.Weight().Tensor().Raw()})
	assert.ErrorIs(t, err, ErrMissingParameter)
}
