package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/strata/internal/tensor"
)

// AddScalar adds scalar to each element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("addScalar", x, func(v float64) float64 { return v + scalar })
}

// MulScalar multiplies each element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("mulScalar", x, func(v float64) float64 { return v * scalar })
}

// DivScalar divides each element by scalar.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	if scalar == 0 && !x.DType().IsFloat() {
		panic("divScalar: integer division by zero")
	}
	return cpu.unary("divScalar", x, func(v float64) float64 { return v / scalar })
}

// PowScalar raises each element to exponent.
func (cpu *CPUBackend) PowScalar(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	if !x.DType().IsFloat() {
		panic(fmt.Sprintf("powScalar: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}
	switch exponent {
	case 2:
		return cpu.unary("powScalar", x, func(v float64) float64 { return v * v })
	case 0.5:
		return cpu.unary("powScalar", x, math.Sqrt)
	default:
		return cpu.unary("powScalar", x, func(v float64) float64 { return math.Pow(v, exponent) })
	}
}

// unary applies f to every element of x, computing in float64.
func (cpu *CPUBackend) unary(op string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result := cpu.alloc(op, x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		mapKernel(result.AsFloat32(), x.AsFloat32(), f)
	case tensor.Float64:
		mapKernel(result.AsFloat64(), x.AsFloat64(), f)
	case tensor.Int32:
		mapKernel(result.AsInt32(), x.AsInt32(), f)
	case tensor.Int64:
		mapKernel(result.AsInt64(), x.AsInt64(), f)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}

	return result
}

func mapKernel[T number](dst, src []T, f func(float64) float64) {
	for i, v := range src {
		dst[i] = T(f(float64(v)))
	}
}
