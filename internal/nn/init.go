package nn

import (
	"math/rand"

	"github.com/born-ml/strata/internal/tensor"
)

// ScaledUniform draws values from 0.1 * (U[0, 1) - 0.5), i.e. uniformly in
// [-0.05, 0.05). This is the initialization used for Linear weights and biases.
func ScaledUniform[B tensor.Backend](shape tensor.Shape, rng *rand.Rand, backend B) *tensor.Tensor[float32, B] {
	return tensor.Rand[float32](shape, rng, backend).AddScalar(-0.5).MulScalar(0.1)
}

// Normal draws values from the standard normal distribution N(0, 1).
func Normal[B tensor.Backend](shape tensor.Shape, rng *rand.Rand, backend B) *tensor.Tensor[float32, B] {
	return tensor.Randn[float32](shape, rng, backend)
}

// Zeros creates a zero-filled tensor. Commonly used for bias initialization.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return tensor.Zeros[float32](shape, backend)
}

// Ones creates a tensor filled with ones.
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return tensor.Ones[float32](shape, backend)
}
