package cpu

import (
	"fmt"

	"github.com/born-ml/strata/internal/tensor"
)

// OneHot expands integer indices of shape [...] into [..., numClasses] of the given
// float dtype. Each output row holds a single 1 at the index position.
//
// Panics if indices is not int32/int64 or any index is outside [0, numClasses).
func (cpu *CPUBackend) OneHot(indices *tensor.RawTensor, numClasses int, dtype tensor.DataType) *tensor.RawTensor {
	if numClasses <= 0 {
		panic(fmt.Sprintf("onehot: numClasses must be positive, got %d", numClasses))
	}
	if !dtype.IsFloat() {
		panic(fmt.Sprintf("onehot: unsupported output dtype %s", dtype))
	}

	var idx []int64
	switch indices.DType() {
	case tensor.Int32:
		src := indices.AsInt32()
		idx = make([]int64, len(src))
		for i, v := range src {
			idx[i] = int64(v)
		}
	case tensor.Int64:
		idx = indices.AsInt64()
	default:
		panic(fmt.Sprintf("onehot: indices must be int32 or int64, got %s", indices.DType()))
	}

	outShape := append(indices.Shape().Clone(), numClasses)
	result := cpu.alloc("onehot", outShape, dtype)

	switch dtype {
	case tensor.Float32:
		oneHotKernel(result.AsFloat32(), idx, numClasses)
	case tensor.Float64:
		oneHotKernel(result.AsFloat64(), idx, numClasses)
	}

	return result
}

func oneHotKernel[T tensor.Float](dst []T, idx []int64, numClasses int) {
	for row, v := range idx {
		if v < 0 || v >= int64(numClasses) {
			panic(fmt.Sprintf("onehot: index %d out of range [0, %d) at position %d", v, numClasses, row))
		}
		dst[row*numClasses+int(v)] = 1
	}
}
