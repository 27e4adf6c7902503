package nn

import (
	"math/rand"
	"testing"

	"github.com/born-ml/strata/internal/backend/cpu"
	"github.com/born-ml/strata/internal/tensor"
	"github.com/stretchr/testify/require"
)

type Backend = *cpu.CPUBackend

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func fromSlice(t *testing.T, backend Backend, shape tensor.Shape, data ...float32) *tensor.Tensor[float32, Backend] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, backend)
	require.NoError(t, err)
	return x
}

// matmulRef is a straightforward (n, k) @ (k, m) reference that accumulates in
// float32 in the same order as the CPU backend.
func matmulRef(a, b []float32, n, k, m int) []float32 {
	out := make([]float32, n*m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			var sum float32
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*m+j]
			}
			out[i*m+j] = sum
		}
	}
	return out
}
