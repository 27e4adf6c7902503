package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/strata/internal/tensor"
)

// Sqrt computes the element-wise square root. Negative inputs panic.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	requireFloat("sqrt", x)
	return cpu.unary("sqrt", x, func(v float64) float64 {
		if v < 0 {
			panic(fmt.Sprintf("sqrt: negative value %f", v))
		}
		return math.Sqrt(v)
	})
}

// Rsqrt computes 1/sqrt(x) element-wise. Non-positive inputs panic.
func (cpu *CPUBackend) Rsqrt(x *tensor.RawTensor) *tensor.RawTensor {
	requireFloat("rsqrt", x)
	return cpu.unary("rsqrt", x, func(v float64) float64 {
		if v <= 0 {
			panic(fmt.Sprintf("rsqrt: non-positive value %f", v))
		}
		return 1 / math.Sqrt(v)
	})
}

func requireFloat(op string, x *tensor.RawTensor) {
	if !x.DType().IsFloat() {
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}
}
