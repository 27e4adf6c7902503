package cpu

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/strata/internal/tensor"
)

// Bernoulli draws a 0/1 mask of the given shape: each element is 1 with probability
// keepProb. Elements are drawn from rng in row-major order, so a fixed seed yields a
// fixed mask.
func (cpu *CPUBackend) Bernoulli(shape tensor.Shape, keepProb float64, rng *rand.Rand, dtype tensor.DataType) *tensor.RawTensor {
	if !(keepProb >= 0 && keepProb <= 1) {
		panic(fmt.Sprintf("bernoulli: keep probability %v outside [0, 1]", keepProb))
	}
	if rng == nil {
		panic("bernoulli: nil random source")
	}

	result := cpu.alloc("bernoulli", shape, dtype)

	switch dtype {
	case tensor.Float32:
		bernoulliKernel(result.AsFloat32(), keepProb, rng)
	case tensor.Float64:
		bernoulliKernel(result.AsFloat64(), keepProb, rng)
	default:
		panic(fmt.Sprintf("bernoulli: unsupported dtype %s", dtype))
	}

	return result
}

func bernoulliKernel[T tensor.Float](dst []T, keepProb float64, rng *rand.Rand) {
	for i := range dst {
		if rng.Float64() < keepProb {
			dst[i] = 1
		}
	}
}
