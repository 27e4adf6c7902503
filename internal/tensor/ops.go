package tensor

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5]
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return t.wrap(t.backend.Add(t.raw, other.raw))
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	return t.wrap(t.backend.Sub(t.raw, other.raw))
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return t.wrap(t.backend.Mul(t.raw, other.raw))
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	return t.wrap(t.backend.Div(t.raw, other.raw))
}

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) → (M, N).
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) *Tensor[T, B] {
	return t.wrap(t.backend.MatMul(t.raw, other.raw))
}

// Reshape returns a tensor with the same elements in a new shape.
// The element count must not change.
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	return t.wrap(t.backend.Reshape(t.raw, Shape(newShape)))
}

// View is an alias of Reshape for contiguous tensors.
func (t *Tensor[T, B]) View(newShape ...int) *Tensor[T, B] {
	return t.Reshape(newShape...)
}

// Transpose permutes the dimensions. With no axes it reverses them.
func (t *Tensor[T, B]) Transpose(axes ...int) *Tensor[T, B] {
	return t.wrap(t.backend.Transpose(t.raw, axes...))
}

// T is a shortcut for 2D transpose. Panics if the tensor is not 2D.
func (t *Tensor[T, B]) T() *Tensor[T, B] {
	if len(t.Shape()) != 2 {
		panic("T() only works for 2D tensors")
	}
	return t.Transpose(1, 0)
}

// AddScalar adds s to every element.
func (t *Tensor[T, B]) AddScalar(s float64) *Tensor[T, B] {
	return t.wrap(t.backend.AddScalar(t.raw, s))
}

// MulScalar multiplies every element by s.
func (t *Tensor[T, B]) MulScalar(s float64) *Tensor[T, B] {
	return t.wrap(t.backend.MulScalar(t.raw, s))
}

// DivScalar divides every element by s.
func (t *Tensor[T, B]) DivScalar(s float64) *Tensor[T, B] {
	return t.wrap(t.backend.DivScalar(t.raw, s))
}

// Pow raises every element to exponent.
func (t *Tensor[T, B]) Pow(exponent float64) *Tensor[T, B] {
	return t.wrap(t.backend.PowScalar(t.raw, exponent))
}

// Sqrt computes the element-wise square root.
func (t *Tensor[T, B]) Sqrt() *Tensor[T, B] {
	return t.wrap(t.backend.Sqrt(t.raw))
}

// Rsqrt computes the element-wise reciprocal square root.
func (t *Tensor[T, B]) Rsqrt() *Tensor[T, B] {
	return t.wrap(t.backend.Rsqrt(t.raw))
}

// SumDim sums along dim. keepDim retains the reduced dimension with size 1.
func (t *Tensor[T, B]) SumDim(dim int, keepDim bool) *Tensor[T, B] {
	return t.wrap(t.backend.SumDim(t.raw, dim, keepDim))
}

// MeanDim averages along dim.
//
// Example:
//
//	x := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	m := x.MeanDim(1, true) // Shape: [2, 1]
func (t *Tensor[T, B]) MeanDim(dim int, keepDim bool) *Tensor[T, B] {
	return t.wrap(t.backend.MeanDim(t.raw, dim, keepDim))
}

// VarDim computes the population variance (divisor N) along dim.
func (t *Tensor[T, B]) VarDim(dim int, keepDim bool) *Tensor[T, B] {
	return t.wrap(t.backend.VarDim(t.raw, dim, keepDim))
}

// LayerNorm normalizes over the last dimension and applies weight and bias, both of
// shape [lastDim], using the backend's fused kernel.
func (t *Tensor[T, B]) LayerNorm(weight, bias *Tensor[T, B], eps float64) *Tensor[T, B] {
	return t.wrap(t.backend.LayerNorm(t.raw, weight.raw, bias.raw, eps))
}

func (t *Tensor[T, B]) wrap(raw *RawTensor) *Tensor[T, B] {
	return New[T, B](raw, t.backend)
}
