package cpu

import (
	"fmt"

	"github.com/born-ml/strata/internal/tensor"
)

// SumDim sums tensor elements along dim (negative values count from the end).
//
// Example:
//
//	x := tensor.Ones[float32](tensor.Shape{2, 3, 4}, backend)
//	y := backend.SumDim(x.Raw(), -1, true)  // shape: [2, 3, 1]
//	z := backend.SumDim(x.Raw(), -1, false) // shape: [2, 3]
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduce("sumdim", x, dim, keepDim, reduceSum)
}

// MeanDim computes the arithmetic mean along dim.
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduce("meandim", x, dim, keepDim, reduceMean)
}

// VarDim computes the population variance (divisor N, not N-1) along dim.
func (cpu *CPUBackend) VarDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduce("vardim", x, dim, keepDim, reduceVar)
}

type reduction int

const (
	reduceSum reduction = iota
	reduceMean
	reduceVar
)

func (cpu *CPUBackend) reduce(op string, x *tensor.RawTensor, dim int, keepDim bool, kind reduction) *tensor.RawTensor {
	requireFloat(op, x)

	shape := x.Shape()
	dim, err := shape.NormalizeDim(dim)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	var outShape tensor.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(tensor.Shape, 0, len(shape)-1)
		outShape = append(outShape, shape[:dim]...)
		outShape = append(outShape, shape[dim+1:]...)
	}

	result := cpu.alloc(op, outShape, x.DType())

	switch x.DType() {
	case tensor.Float32:
		reduceKernel(result.AsFloat32(), x.AsFloat32(), shape, dim, kind)
	case tensor.Float64:
		reduceKernel(result.AsFloat64(), x.AsFloat64(), shape, dim, kind)
	}

	return result
}

// reduceKernel views src as [outer, size, inner] and reduces the middle axis.
// Accumulation is done in float64; variance uses the two-pass formula.
func reduceKernel[T tensor.Float](dst, src []T, shape tensor.Shape, dim int, kind reduction) {
	size := shape[dim]
	inner := 1
	for _, d := range shape[dim+1:] {
		inner *= d
	}
	outer := len(src) / (size * inner)

	for o := 0; o < outer; o++ {
		base := o * size * inner
		for i := 0; i < inner; i++ {
			var sum float64
			for k := 0; k < size; k++ {
				sum += float64(src[base+k*inner+i])
			}

			var v float64
			switch kind {
			case reduceSum:
				v = sum
			case reduceMean:
				v = sum / float64(size)
			case reduceVar:
				mean := sum / float64(size)
				var sq float64
				for k := 0; k < size; k++ {
					d := float64(src[base+k*inner+i]) - mean
					sq += d * d
				}
				v = sq / float64(size)
			}
			dst[o*inner+i] = T(v)
		}
	}
}
