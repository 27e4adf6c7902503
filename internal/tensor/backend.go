package tensor

import "math/rand"

// Backend defines the operations a compute backend provides to the tensor and layer
// packages. Implementations must return a freshly allocated RawTensor from every
// operation and must never modify their inputs.
//
// Contract violations (incompatible shapes, unsupported dtypes, out-of-range indices)
// panic with an "<op>: <detail>" message.
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// MatMul multiplies two 2D tensors: (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) *RawTensor

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Element-wise operations with a scalar operand.
	AddScalar(x *RawTensor, scalar float64) *RawTensor
	MulScalar(x *RawTensor, scalar float64) *RawTensor
	DivScalar(x *RawTensor, scalar float64) *RawTensor
	PowScalar(x *RawTensor, exponent float64) *RawTensor

	// Element-wise math.
	Sqrt(x *RawTensor) *RawTensor
	Rsqrt(x *RawTensor) *RawTensor

	// Reductions along one dimension. dim may be negative.
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	VarDim(x *RawTensor, dim int, keepDim bool) *RawTensor // population variance

	// OneHot expands integer indices of shape [...] into [..., numClasses] of dtype.
	OneHot(indices *RawTensor, numClasses int, dtype DataType) *RawTensor

	// LayerNorm normalizes x over its last dimension and applies the element-wise
	// affine transform weight*x̂ + bias in a single pass.
	LayerNorm(x, weight, bias *RawTensor, eps float64) *RawTensor

	// Bernoulli draws a mask of 1s (with probability keepProb) and 0s from rng.
	Bernoulli(shape Shape, keepProb float64, rng *rand.Rand, dtype DataType) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
