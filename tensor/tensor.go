// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/strata/internal/tensor"
)

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// Float is the constraint for the floating point element types.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a generic type-safe tensor.
//
// T is the element type, B the backend that executes every operation. Operations
// never modify their receiver or arguments; each returns a new tensor.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Element-wise addition
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// FromSlice creates a tensor from a slice. The slice length must match the shape.
func FromSlice[T DType, B Backend](data []T, shape Shape, backend B) (*Tensor[T, B], error) {
	return tensor.FromSlice(data, shape, backend)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, backend B) *Tensor[T, B] {
	return tensor.Zeros[T](shape, backend)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, backend B) *Tensor[T, B] {
	return tensor.Ones[T](shape, backend)
}

// Full creates a tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, backend B) *Tensor[T, B] {
	return tensor.Full(shape, value, backend)
}

// Rand creates a tensor with values drawn uniformly from [0, 1) using rng.
func Rand[T Float, B Backend](shape Shape, rng *rand.Rand, backend B) *Tensor[T, B] {
	return tensor.Rand[T](shape, rng, backend)
}

// Randn creates a tensor with values drawn from N(0, 1) using rng.
func Randn[T Float, B Backend](shape Shape, rng *rand.Rand, backend B) *Tensor[T, B] {
	return tensor.Randn[T](shape, rng, backend)
}

// Bernoulli creates a 0/1 mask where each element is 1 with probability keepProb.
func Bernoulli[T Float, B Backend](shape Shape, keepProb float64, rng *rand.Rand, backend B) *Tensor[T, B] {
	return tensor.Bernoulli[T](shape, keepProb, rng, backend)
}

// OneHot expands int32 class indices of shape [...] into [..., numClasses].
func OneHot[B Backend](indices *Tensor[int32, B], numClasses int) *Tensor[float32, B] {
	return tensor.OneHot(indices, numClasses)
}
