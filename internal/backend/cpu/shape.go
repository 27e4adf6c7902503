package cpu

import (
	"fmt"

	"github.com/born-ml/strata/internal/tensor"
)

// Reshape returns a copy of t with a new shape holding the same number of elements.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}
	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			t.Shape(), newShape))
	}

	result := cpu.alloc("reshape", newShape, t.DType())
	copy(result.Data(), t.Data())
	return result
}

// Transpose permutes the dimensions of t. With no axes the dimensions are reversed.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}

	seen := make([]bool, ndim)
	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
		newShape[i] = shape[ax]
	}

	result := cpu.alloc("transpose", newShape, t.DType())

	switch t.DType() {
	case tensor.Float32:
		permute(result.AsFloat32(), t.AsFloat32(), t.Strides(), newShape, axes)
	case tensor.Float64:
		permute(result.AsFloat64(), t.AsFloat64(), t.Strides(), newShape, axes)
	case tensor.Int32:
		permute(result.AsInt32(), t.AsInt32(), t.Strides(), newShape, axes)
	case tensor.Int64:
		permute(result.AsInt64(), t.AsInt64(), t.Strides(), newShape, axes)
	case tensor.Uint8:
		permute(result.AsUint8(), t.AsUint8(), t.Strides(), newShape, axes)
	case tensor.Bool:
		permute(result.AsBool(), t.AsBool(), t.Strides(), newShape, axes)
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %s", t.DType()))
	}

	return result
}

// permute writes src, read through the permuted source strides, into dst in row-major order.
func permute[T tensor.DType](dst, src []T, srcStrides []int, dstShape tensor.Shape, axes []int) {
	dstStrides := dstShape.ComputeStrides()
	permStrides := make([]int, len(axes))
	for i, ax := range axes {
		permStrides[i] = srcStrides[ax]
	}
	for i := range dst {
		dst[i] = src[sourceIndex(i, dstStrides, permStrides)]
	}
}
